package backend

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/okarin/deskpilot/pkg/domain"
)

// Simulated is the no-op backend used when real OS control is unavailable or
// explicitly disabled. It never touches the OS: every valid action succeeds
// with a description of what would have happened.
type Simulated struct {
	logger *slog.Logger
}

// NewSimulated creates the simulated backend. A nil logger falls back to
// slog.Default.
func NewSimulated(logger *slog.Logger) *Simulated {
	if logger == nil {
		logger = slog.Default()
	}
	return &Simulated{logger: logger}
}

// Execute echoes the action without performing it. Validation failures are
// reported identically to the real backend.
func (s *Simulated) Execute(_ context.Context, a domain.Action) domain.ActionResult {
	if err := validate(a); err != nil {
		return domain.Failure(a.Kind, err.Error(), true)
	}

	var detail string
	switch a.Kind {
	case domain.KindClick:
		detail = fmt.Sprintf("would click at (%d, %d)", a.X, a.Y)
	case domain.KindMove:
		detail = fmt.Sprintf("would move mouse to (%d, %d)", a.X, a.Y)
	case domain.KindTypeText:
		detail = "would type: " + a.Text
	case domain.KindKeyCombo:
		detail = "would press " + strings.Join(a.Keys, "+")
	case domain.KindOpenApp:
		detail = "would open " + a.App
	case domain.KindReadScreen:
		detail = "would read text from the screen"
	}

	s.logger.Debug("simulated action", "action", a.String())
	return domain.Success(a.Kind, detail, true)
}
