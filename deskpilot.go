package deskpilot

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image/png"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/okarin/deskpilot/pkg/adapters/launcher"
	"github.com/okarin/deskpilot/pkg/adapters/ocr"
	"github.com/okarin/deskpilot/pkg/adapters/robot"
	"github.com/okarin/deskpilot/pkg/backend"
	"github.com/okarin/deskpilot/pkg/capability"
	"github.com/okarin/deskpilot/pkg/dispatch"
	"github.com/okarin/deskpilot/pkg/domain"
	"github.com/okarin/deskpilot/pkg/ports"
)

// Version is the deskpilot release version.
var Version = "0.1.0"

// Engine is the high-level entry point. It detects environment capability
// once at construction, wires the real or simulated backend accordingly, and
// exposes the dispatch surface consumed by the HTTP, MCP and CLI adapters.
type Engine struct {
	flag       capability.Flag
	dispatcher *dispatch.Dispatcher
	screen     ports.ScreenCapturer
	history    ports.HistoryStore
	logger     *slog.Logger

	// construction-time knobs
	forceSimulation bool
	probe           capability.Probe
	real            ports.Backend
	simulated       ports.Backend
	metrics         prometheus.Registerer
	apps            map[string][]string
	ocrLanguages    []string
}

// Option configures the Engine.
type Option func(*Engine)

// WithLogger sets the engine logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// WithForceSimulation forces the simulated backend regardless of what the
// capability probe would report.
func WithForceSimulation(force bool) Option {
	return func(e *Engine) { e.forceSimulation = force }
}

// WithProbe replaces the hardware capability probe.
func WithProbe(probe capability.Probe) Option {
	return func(e *Engine) { e.probe = probe }
}

// WithHistory records every dispatch in the given audit store.
func WithHistory(store ports.HistoryStore) Option {
	return func(e *Engine) { e.history = store }
}

// WithMetrics registers dispatch metrics on the given registerer.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(e *Engine) { e.metrics = reg }
}

// WithApps overlays extra entries on the application launch table.
func WithApps(apps map[string][]string) Option {
	return func(e *Engine) { e.apps = apps }
}

// WithOCRLanguages sets the Tesseract language models for screen reading.
func WithOCRLanguages(langs ...string) Option {
	return func(e *Engine) { e.ocrLanguages = langs }
}

// WithBackends injects both backends directly, bypassing the default robotgo
// wiring. Intended for embedding and tests.
func WithBackends(real, simulated ports.Backend) Option {
	return func(e *Engine) {
		e.real = real
		e.simulated = simulated
	}
}

// WithScreenCapturer injects the capturer used by CapturePNG. Intended for
// embedding and tests; the default is the robotgo controller when real
// control is available.
func WithScreenCapturer(screen ports.ScreenCapturer) Option {
	return func(e *Engine) { e.screen = screen }
}

// New builds an Engine. Capability detection runs exactly once here; the
// resulting flag is immutable for the engine's lifetime. New never fails due
// to missing automation capability — that is a normal environment, served by
// the simulated backend.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{logger: slog.Default()}
	for _, opt := range opts {
		opt(e)
	}

	if e.probe == nil {
		e.probe = robot.Probe
	}
	e.flag = capability.Detect(e.forceSimulation, e.probe)

	if e.simulated == nil {
		e.simulated = backend.NewSimulated(e.logger)
	}
	if e.real == nil && e.flag.RealControlAvailable {
		ctrl := robot.New()
		if e.screen == nil {
			e.screen = ctrl
		}
		e.real = backend.NewReal(
			ctrl,
			e.screen,
			ocr.New(ocr.WithLanguages(e.ocrLanguages...)),
			launcher.New(launcher.WithApps(e.apps), launcher.WithLogger(e.logger)),
			e.logger,
		)
	}

	dispatchOpts := []dispatch.Option{dispatch.WithLogger(e.logger)}
	if e.history != nil {
		dispatchOpts = append(dispatchOpts, dispatch.WithHistory(e.history))
	}
	if e.metrics != nil {
		dispatchOpts = append(dispatchOpts, dispatch.WithMetrics(e.metrics))
	}
	e.dispatcher = dispatch.New(e.flag, e.real, e.simulated, dispatchOpts...)

	if e.flag.RealControlAvailable {
		e.logger.Info("running in actual control mode",
			"screen_width", e.flag.Width,
			"screen_height", e.flag.Height,
		)
	} else {
		e.logger.Info("running in simulation mode, no actual PC control will occur",
			"reason", e.flag.Reason,
		)
	}
	return e, nil
}

// Dispatch interprets and executes a free-text task.
func (e *Engine) Dispatch(ctx context.Context, task string) domain.ActionResult {
	return e.dispatcher.Dispatch(ctx, task)
}

// Execute runs an already-typed action through the active backend.
func (e *Engine) Execute(ctx context.Context, action domain.Action) domain.ActionResult {
	return e.dispatcher.Execute(ctx, action)
}

// ReadScreenText captures the screen and OCRs it through the active backend.
// In simulation mode the returned text describes the simulated outcome.
func (e *Engine) ReadScreenText(ctx context.Context) (string, error) {
	res := e.Execute(ctx, domain.Action{Kind: domain.KindReadScreen})
	if res.Status == domain.StatusFailure {
		return "", errors.New(res.Detail)
	}
	return res.Detail, nil
}

// CapturePNG captures the primary display and encodes it as PNG. It fails in
// simulation mode, where no display is available to capture.
func (e *Engine) CapturePNG(_ context.Context) ([]byte, error) {
	if e.screen == nil {
		return nil, fmt.Errorf("%w: screen capture unavailable in simulation mode", domain.ErrNoDisplay)
	}
	img, err := e.screen.Capture()
	if err != nil {
		return nil, fmt.Errorf("screen capture failed: %w", err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode screen capture: %w", err)
	}
	return buf.Bytes(), nil
}

// History returns up to n recent dispatch records, newest first. With no
// history store configured it returns an empty slice.
func (e *Engine) History(ctx context.Context, n int) ([]domain.Record, error) {
	if e.history == nil {
		return []domain.Record{}, nil
	}
	return e.history.Recent(ctx, n)
}

// Simulated reports whether the engine runs against the simulated backend.
func (e *Engine) Simulated() bool {
	return e.dispatcher.Simulated()
}

// ScreenSize returns the detected primary display size, zero in simulation.
func (e *Engine) ScreenSize() (int, int) {
	return e.flag.Width, e.flag.Height
}
