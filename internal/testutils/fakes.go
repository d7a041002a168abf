// Package testutils holds fake automation collaborators shared by tests.
package testutils

import (
	"image"
	"sync"
)

// FakeInput records injected input events and can fail on demand.
type FakeInput struct {
	mu     sync.Mutex
	Moves  [][2]int
	Clicks [][2]int
	Downs  []string
	Ups    []string
	Typed  []string

	// Err, when set, is returned by every primitive.
	Err error
}

func (f *FakeInput) MoveTo(x, y int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return f.Err
	}
	f.Moves = append(f.Moves, [2]int{x, y})
	return nil
}

func (f *FakeInput) Click(x, y int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return f.Err
	}
	f.Clicks = append(f.Clicks, [2]int{x, y})
	return nil
}

func (f *FakeInput) KeyDown(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return f.Err
	}
	f.Downs = append(f.Downs, key)
	return nil
}

func (f *FakeInput) KeyUp(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Ups = append(f.Ups, key)
	return nil
}

func (f *FakeInput) TypeText(text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return f.Err
	}
	f.Typed = append(f.Typed, text)
	return nil
}

// FakeScreen serves a fixed image and size.
type FakeScreen struct {
	Img        image.Image
	W, H       int
	CaptureErr error
	SizeErr    error
}

func (f *FakeScreen) Capture() (image.Image, error) {
	if f.CaptureErr != nil {
		return nil, f.CaptureErr
	}
	if f.Img != nil {
		return f.Img, nil
	}
	return image.NewRGBA(image.Rect(0, 0, f.W, f.H)), nil
}

func (f *FakeScreen) Size() (int, int, error) {
	if f.SizeErr != nil {
		return 0, 0, f.SizeErr
	}
	return f.W, f.H, nil
}

// FakeOCR returns a fixed recognition result.
type FakeOCR struct {
	Text string
	Err  error
}

func (f *FakeOCR) Recognize(image.Image) (string, error) {
	if f.Err != nil {
		return "", f.Err
	}
	return f.Text, nil
}

// FakeLauncher records launched application names.
type FakeLauncher struct {
	Launched []string
	Err      error
}

func (f *FakeLauncher) Launch(name string) error {
	if f.Err != nil {
		return f.Err
	}
	f.Launched = append(f.Launched, name)
	return nil
}
