package ports

import (
	"context"
	"image"

	"github.com/okarin/deskpilot/pkg/domain"
)

// Inputter injects mouse and keyboard events into the OS. The real backend
// is a thin adapter over exactly these primitives.
type Inputter interface {
	MoveTo(x, y int) error
	Click(x, y int) error
	KeyDown(key string) error
	KeyUp(key string) error
	TypeText(text string) error
}

// ScreenCapturer captures the primary display. Capture must fail loudly when
// the display is unavailable rather than returning a blank image.
type ScreenCapturer interface {
	Capture() (image.Image, error)
	Size() (width, height int, err error)
}

// Recognizer extracts text from a captured image.
type Recognizer interface {
	Recognize(img image.Image) (string, error)
}

// Launcher resolves an application name to a launch command and spawns it.
type Launcher interface {
	Launch(name string) error
}

// HistoryStore persists the dispatch audit trail.
type HistoryStore interface {
	// Append adds a record to the trail, evicting the oldest entries past
	// the store's limit.
	Append(ctx context.Context, rec domain.Record) error
	// Recent returns up to n records, newest first.
	Recent(ctx context.Context, n int) ([]domain.Record, error)
}
