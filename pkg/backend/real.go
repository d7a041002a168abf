package backend

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/okarin/deskpilot/pkg/domain"
	"github.com/okarin/deskpilot/pkg/ports"
)

// Real executes actions against the OS through the automation collaborators.
// It performs no locking: concurrent input actions contend for the one
// physical cursor, which is an accepted limitation for a single-operator
// system. Only ReadScreen is inherently safe to run concurrently.
type Real struct {
	input  ports.Inputter
	screen ports.ScreenCapturer
	ocr    ports.Recognizer
	apps   ports.Launcher
	logger *slog.Logger
}

// NewReal wires the real backend over its collaborators.
func NewReal(input ports.Inputter, screen ports.ScreenCapturer, ocr ports.Recognizer, apps ports.Launcher, logger *slog.Logger) *Real {
	if logger == nil {
		logger = slog.Default()
	}
	return &Real{input: input, screen: screen, ocr: ocr, apps: apps, logger: logger}
}

// Execute performs the action, always reporting Simulated=false. Collaborator
// errors surface as Failure results with the underlying message; nothing here
// is fatal to the process.
func (r *Real) Execute(ctx context.Context, a domain.Action) domain.ActionResult {
	if err := validate(a); err != nil {
		return domain.Failure(a.Kind, err.Error(), false)
	}

	switch a.Kind {
	case domain.KindClick:
		if err := r.checkBounds(a.X, a.Y); err != nil {
			return domain.Failure(a.Kind, err.Error(), false)
		}
		if err := r.input.Click(a.X, a.Y); err != nil {
			return domain.Failure(a.Kind, err.Error(), false)
		}
		return domain.Success(a.Kind, fmt.Sprintf("clicked at (%d, %d)", a.X, a.Y), false)

	case domain.KindMove:
		if err := r.checkBounds(a.X, a.Y); err != nil {
			return domain.Failure(a.Kind, err.Error(), false)
		}
		if err := r.input.MoveTo(a.X, a.Y); err != nil {
			return domain.Failure(a.Kind, err.Error(), false)
		}
		return domain.Success(a.Kind, fmt.Sprintf("moved mouse to (%d, %d)", a.X, a.Y), false)

	case domain.KindTypeText:
		if err := r.input.TypeText(a.Text); err != nil {
			return domain.Failure(a.Kind, err.Error(), false)
		}
		return domain.Success(a.Kind, "typed: "+a.Text, false)

	case domain.KindKeyCombo:
		return r.pressCombo(a)

	case domain.KindOpenApp:
		if err := r.apps.Launch(a.App); err != nil {
			return domain.Failure(a.Kind, err.Error(), false)
		}
		return domain.Success(a.Kind, "opened "+a.App, false)

	case domain.KindReadScreen:
		return r.readScreen(ctx, a)
	}

	return domain.Failure(a.Kind, fmt.Sprintf("unsupported action kind %q", a.Kind), false)
}

// pressCombo presses the keys in listed order and releases them in reverse,
// so modifiers stay held around the keys they modify. A failed press releases
// whatever was already held before reporting the failure.
func (r *Real) pressCombo(a domain.Action) domain.ActionResult {
	for i, key := range a.Keys {
		if err := r.input.KeyDown(key); err != nil {
			r.releaseKeys(a.Keys[:i])
			return domain.Failure(a.Kind, fmt.Sprintf("press %s: %v", key, err), false)
		}
	}
	r.releaseKeys(a.Keys)
	return domain.Success(a.Kind, "pressed "+strings.Join(a.Keys, "+"), false)
}

func (r *Real) releaseKeys(held []string) {
	for i := len(held) - 1; i >= 0; i-- {
		if err := r.input.KeyUp(held[i]); err != nil {
			r.logger.Warn("key release failed", "key", held[i], "err", err)
		}
	}
}

// readScreen captures the display and runs it through OCR. Both steps fail
// loudly; a capture or recognition error never becomes a partial Success.
func (r *Real) readScreen(_ context.Context, a domain.Action) domain.ActionResult {
	img, err := r.screen.Capture()
	if err != nil {
		return domain.Failure(a.Kind, fmt.Sprintf("screen capture failed: %v", err), false)
	}
	text, err := r.ocr.Recognize(img)
	if err != nil {
		return domain.Failure(a.Kind, fmt.Sprintf("text recognition failed: %v", err), false)
	}
	return domain.Success(a.Kind, text, false)
}

func (r *Real) checkBounds(x, y int) error {
	w, h, err := r.screen.Size()
	if err != nil {
		return fmt.Errorf("screen size unavailable: %w", err)
	}
	if x >= w || y >= h {
		return fmt.Errorf("%w: (%d, %d) outside %dx%d", domain.ErrOutOfBounds, x, y, w, h)
	}
	return nil
}
