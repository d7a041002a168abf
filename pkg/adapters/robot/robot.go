// Package robot adapts robotgo to the ports.Inputter and
// ports.ScreenCapturer interfaces.
package robot

import (
	"fmt"
	"image"
	"os"
	"runtime"

	"github.com/go-vgo/robotgo"

	"github.com/okarin/deskpilot/pkg/domain"
)

// Controller drives the OS mouse, keyboard and screen through robotgo.
// The zero value is usable; New exists for symmetry with the other adapters.
type Controller struct{}

// New returns a Controller.
func New() *Controller {
	return &Controller{}
}

// MoveTo moves the mouse cursor to absolute screen coordinates.
func (c *Controller) MoveTo(x, y int) error {
	robotgo.Move(x, y)
	return nil
}

// Click moves to the coordinates and presses the left button once.
func (c *Controller) Click(x, y int) error {
	robotgo.Move(x, y)
	robotgo.Click("left", false)
	return nil
}

// KeyDown presses and holds a key.
func (c *Controller) KeyDown(key string) error {
	return robotgo.KeyToggle(key, "down")
}

// KeyUp releases a held key.
func (c *Controller) KeyUp(key string) error {
	return robotgo.KeyToggle(key, "up")
}

// TypeText injects the string as keystrokes. robotgo paces the injection
// itself; no extra throttling that could drop characters is applied.
func (c *Controller) TypeText(text string) error {
	robotgo.TypeStr(text)
	return nil
}

// Capture grabs the full primary display. It fails loudly when no display
// is reachable instead of handing back a blank image.
func (c *Controller) Capture() (image.Image, error) {
	img := robotgo.CaptureImg()
	if img == nil {
		return nil, domain.ErrNoDisplay
	}
	return img, nil
}

// Size returns the primary display dimensions.
func (c *Controller) Size() (int, int, error) {
	w, h := robotgo.GetScreenSize()
	if w <= 0 || h <= 0 {
		return 0, 0, domain.ErrNoDisplay
	}
	return w, h, nil
}

// Probe is the capability.Probe implementation for real hardware. It checks
// for a display server before touching robotgo, since the underlying C
// libraries may abort outright in headless environments.
func Probe() (int, int, error) {
	if runtime.GOOS == "linux" {
		if os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == "" {
			return 0, 0, fmt.Errorf("%w: no DISPLAY or WAYLAND_DISPLAY set", domain.ErrNoDisplay)
		}
	}
	w, h := robotgo.GetScreenSize()
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("%w: reported screen size %dx%d", domain.ErrNoDisplay, w, h)
	}
	return w, h, nil
}
