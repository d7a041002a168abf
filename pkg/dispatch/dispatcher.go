// Package dispatch composes the interpreter, capability flag and backends
// into the single entry point for task execution.
package dispatch

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/okarin/deskpilot/pkg/capability"
	"github.com/okarin/deskpilot/pkg/domain"
	"github.com/okarin/deskpilot/pkg/interpreter"
	"github.com/okarin/deskpilot/pkg/ports"
)

// Dispatcher owns no mutable state: the capability flag is read-only after
// construction and backend selection happens once per call. Dispatch is
// trivially retryable, though re-issuing input actions repeats their side
// effects — not double-submitting is the caller's responsibility.
type Dispatcher struct {
	flag      capability.Flag
	real      ports.Backend
	simulated ports.Backend
	history   ports.HistoryStore
	logger    *slog.Logger
	total     *prometheus.CounterVec
	now       func() time.Time
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithHistory records every dispatch into the given audit store. Store errors
// are logged, never surfaced: the audit trail is best effort.
func WithHistory(store ports.HistoryStore) Option {
	return func(d *Dispatcher) { d.history = store }
}

// WithLogger sets the dispatcher logger.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Dispatcher) { d.logger = logger }
}

// WithMetrics registers the dispatch counter on the given registerer.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(d *Dispatcher) {
		d.total = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "deskpilot_dispatches_total",
				Help: "Total dispatched actions by kind, status and backend",
			},
			[]string{"kind", "status", "simulated"},
		)
		reg.MustRegister(d.total)
	}
}

// New creates a Dispatcher. The real backend may be nil when the capability
// flag reports real control unavailable.
func New(flag capability.Flag, real, simulated ports.Backend, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		flag:      flag,
		real:      real,
		simulated: simulated,
		logger:    slog.Default(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dispatch runs the full text-to-result flow: interpret the task, select the
// backend per the process-wide capability flag, execute, and return the
// backend's envelope unchanged. Unrecognized input fails immediately without
// touching any backend.
func (d *Dispatcher) Dispatch(ctx context.Context, task string) domain.ActionResult {
	action, err := interpreter.Interpret(task)
	if err != nil {
		res := domain.Failure(domain.KindUnrecognized, err.Error(), false)
		d.observe(ctx, task, res)
		return res
	}
	res := d.backend().Execute(ctx, action)
	d.observe(ctx, task, res)
	return res
}

// Execute runs an already-typed action through the active backend, bypassing
// the interpreter. The direct API routes use this path.
func (d *Dispatcher) Execute(ctx context.Context, action domain.Action) domain.ActionResult {
	res := d.backend().Execute(ctx, action)
	d.observe(ctx, action.String(), res)
	return res
}

// Simulated reports whether dispatches run against the simulated backend.
func (d *Dispatcher) Simulated() bool {
	return !d.flag.RealControlAvailable
}

func (d *Dispatcher) backend() ports.Backend {
	if d.flag.RealControlAvailable {
		return d.real
	}
	return d.simulated
}

func (d *Dispatcher) observe(ctx context.Context, task string, res domain.ActionResult) {
	d.logger.Info("dispatch",
		"task", task,
		"kind", res.Kind,
		"status", res.Status,
		"simulated", res.Simulated,
	)
	if d.total != nil {
		d.total.WithLabelValues(string(res.Kind), string(res.Status), strconv.FormatBool(res.Simulated)).Inc()
	}
	if d.history != nil {
		rec := domain.Record{Task: task, Result: res, At: d.now()}
		if err := d.history.Append(ctx, rec); err != nil {
			d.logger.Warn("history append failed", "err", err)
		}
	}
}
