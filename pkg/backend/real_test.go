package backend

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okarin/deskpilot/internal/logging"
	"github.com/okarin/deskpilot/internal/testutils"
	"github.com/okarin/deskpilot/pkg/domain"
)

func newRealForTest(input *testutils.FakeInput, screen *testutils.FakeScreen, ocr *testutils.FakeOCR, apps *testutils.FakeLauncher) *Real {
	if input == nil {
		input = &testutils.FakeInput{}
	}
	if screen == nil {
		screen = &testutils.FakeScreen{W: 1920, H: 1080}
	}
	if ocr == nil {
		ocr = &testutils.FakeOCR{}
	}
	if apps == nil {
		apps = &testutils.FakeLauncher{}
	}
	return NewReal(input, screen, ocr, apps, logging.NewNop())
}

func TestRealClick(t *testing.T) {
	input := &testutils.FakeInput{}
	real := newRealForTest(input, nil, nil, nil)

	res := real.Execute(context.Background(), domain.Action{Kind: domain.KindClick, X: 500, Y: 300})
	require.Equal(t, domain.StatusSuccess, res.Status)
	assert.False(t, res.Simulated)
	assert.Equal(t, [][2]int{{500, 300}}, input.Clicks)
}

func TestRealRejectsOutOfBounds(t *testing.T) {
	input := &testutils.FakeInput{}
	screen := &testutils.FakeScreen{W: 800, H: 600}
	real := newRealForTest(input, screen, nil, nil)

	for _, action := range []domain.Action{
		{Kind: domain.KindClick, X: 800, Y: 10},
		{Kind: domain.KindClick, X: 10, Y: 600},
		{Kind: domain.KindMove, X: 5000, Y: 5000},
	} {
		res := real.Execute(context.Background(), action)
		assert.Equal(t, domain.StatusFailure, res.Status, action.String())
		assert.Contains(t, res.Detail, "out of bounds")
	}
	assert.Empty(t, input.Clicks)
	assert.Empty(t, input.Moves)
}

func TestRealBoundsFailureWhenScreenSizeUnavailable(t *testing.T) {
	screen := &testutils.FakeScreen{SizeErr: domain.ErrNoDisplay}
	real := newRealForTest(nil, screen, nil, nil)

	res := real.Execute(context.Background(), domain.Action{Kind: domain.KindClick, X: 1, Y: 1})
	assert.Equal(t, domain.StatusFailure, res.Status)
	assert.Contains(t, res.Detail, "screen size unavailable")
}

func TestRealTypeTextSurfacesInjectionErrors(t *testing.T) {
	input := &testutils.FakeInput{Err: errors.New("keyboard backend gone")}
	real := newRealForTest(input, nil, nil, nil)

	res := real.Execute(context.Background(), domain.Action{Kind: domain.KindTypeText, Text: "hi"})
	assert.Equal(t, domain.StatusFailure, res.Status)
	assert.Contains(t, res.Detail, "keyboard backend gone")
}

func TestRealKeyComboPressesInOrderReleasesInReverse(t *testing.T) {
	input := &testutils.FakeInput{}
	real := newRealForTest(input, nil, nil, nil)

	res := real.Execute(context.Background(), domain.Action{
		Kind: domain.KindKeyCombo, Keys: []string{"ctrl", "shift", "c"},
	})
	require.Equal(t, domain.StatusSuccess, res.Status)
	assert.Equal(t, []string{"ctrl", "shift", "c"}, input.Downs)
	assert.Equal(t, []string{"c", "shift", "ctrl"}, input.Ups)
}

func TestRealKeyComboReleasesHeldKeysOnFailure(t *testing.T) {
	input := &testutils.FakeInput{}
	failing := &failingInput{FakeInput: input, failOn: "c"}
	real := NewReal(failing, &testutils.FakeScreen{W: 100, H: 100}, &testutils.FakeOCR{}, &testutils.FakeLauncher{}, logging.NewNop())

	res := real.Execute(context.Background(), domain.Action{
		Kind: domain.KindKeyCombo, Keys: []string{"ctrl", "c"},
	})
	assert.Equal(t, domain.StatusFailure, res.Status)
	assert.Equal(t, []string{"ctrl"}, input.Downs)
	assert.Equal(t, []string{"ctrl"}, input.Ups)
}

// failingInput fails KeyDown for one specific key.
type failingInput struct {
	*testutils.FakeInput
	failOn string
}

func (f *failingInput) KeyDown(key string) error {
	if key == f.failOn {
		return errors.New("injection failed")
	}
	return f.FakeInput.KeyDown(key)
}

func TestRealOpenApp(t *testing.T) {
	apps := &testutils.FakeLauncher{}
	real := newRealForTest(nil, nil, nil, apps)

	res := real.Execute(context.Background(), domain.Action{Kind: domain.KindOpenApp, App: "chrome"})
	require.Equal(t, domain.StatusSuccess, res.Status)
	assert.Equal(t, []string{"chrome"}, apps.Launched)
}

func TestRealOpenAppLaunchFailure(t *testing.T) {
	apps := &testutils.FakeLauncher{Err: domain.ErrAppNotFound}
	real := newRealForTest(nil, nil, nil, apps)

	res := real.Execute(context.Background(), domain.Action{Kind: domain.KindOpenApp, App: "ghost"})
	assert.Equal(t, domain.StatusFailure, res.Status)
	assert.Contains(t, res.Detail, "application not found")
}

func TestRealReadScreen(t *testing.T) {
	ocr := &testutils.FakeOCR{Text: "hello"}
	real := newRealForTest(nil, nil, ocr, nil)

	res := real.Execute(context.Background(), domain.Action{Kind: domain.KindReadScreen})
	require.Equal(t, domain.StatusSuccess, res.Status)
	assert.Equal(t, "hello", res.Detail)
	assert.False(t, res.Simulated)
}

func TestRealReadScreenFailsLoudOnCaptureError(t *testing.T) {
	screen := &testutils.FakeScreen{W: 10, H: 10, CaptureErr: domain.ErrNoDisplay}
	real := newRealForTest(nil, screen, nil, nil)

	res := real.Execute(context.Background(), domain.Action{Kind: domain.KindReadScreen})
	assert.Equal(t, domain.StatusFailure, res.Status)
	assert.Contains(t, res.Detail, "screen capture failed")
}

func TestRealReadScreenFailsLoudOnOCRError(t *testing.T) {
	ocr := &testutils.FakeOCR{Err: errors.New("tesseract not installed")}
	real := newRealForTest(nil, nil, ocr, nil)

	res := real.Execute(context.Background(), domain.Action{Kind: domain.KindReadScreen})
	assert.Equal(t, domain.StatusFailure, res.Status)
	assert.Contains(t, res.Detail, "tesseract not installed")
}
