package deskpilot

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okarin/deskpilot/internal/logging"
	"github.com/okarin/deskpilot/internal/testutils"
	"github.com/okarin/deskpilot/pkg/adapters/memory"
	"github.com/okarin/deskpilot/pkg/backend"
	"github.com/okarin/deskpilot/pkg/domain"
)

func newSimEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	opts = append(opts,
		WithForceSimulation(true),
		WithLogger(logging.NewNop()),
	)
	engine, err := New(opts...)
	require.NoError(t, err)
	return engine
}

func TestEngineSimulationScenarios(t *testing.T) {
	engine := newSimEngine(t)
	ctx := context.Background()

	res := engine.Dispatch(ctx, "type Hello, world!")
	assert.Equal(t, domain.StatusSuccess, res.Status)
	assert.Equal(t, domain.KindTypeText, res.Kind)
	assert.Equal(t, "would type: Hello, world!", res.Detail)
	assert.True(t, res.Simulated)

	res = engine.Dispatch(ctx, "click at 500, 300")
	assert.Equal(t, domain.StatusSuccess, res.Status)
	assert.Equal(t, domain.KindClick, res.Kind)
	assert.Contains(t, res.Detail, "500")
	assert.Contains(t, res.Detail, "300")

	res = engine.Dispatch(ctx, "frobnicate the widget")
	assert.Equal(t, domain.StatusFailure, res.Status)
	assert.Equal(t, domain.KindUnrecognized, res.Kind)
	assert.Contains(t, res.Detail, "frobnicate the widget")

	assert.True(t, engine.Simulated())
	w, h := engine.ScreenSize()
	assert.Zero(t, w)
	assert.Zero(t, h)
}

func TestEngineRealBackendThroughFakes(t *testing.T) {
	input := &testutils.FakeInput{}
	screen := &testutils.FakeScreen{W: 1920, H: 1080}
	ocr := &testutils.FakeOCR{Text: "hello"}
	apps := &testutils.FakeLauncher{}

	real := backend.NewReal(input, screen, ocr, apps, logging.NewNop())
	engine, err := New(
		WithLogger(logging.NewNop()),
		WithProbe(func() (int, int, error) { return 1920, 1080, nil }),
		WithBackends(real, backend.NewSimulated(logging.NewNop())),
		WithScreenCapturer(screen),
	)
	require.NoError(t, err)

	ctx := context.Background()
	assert.False(t, engine.Simulated())

	res := engine.Dispatch(ctx, "read screen")
	require.Equal(t, domain.StatusSuccess, res.Status)
	assert.Equal(t, "hello", res.Detail)
	assert.False(t, res.Simulated)

	res = engine.Dispatch(ctx, "press ctrl+c")
	require.Equal(t, domain.StatusSuccess, res.Status)
	assert.Equal(t, []string{"ctrl", "c"}, input.Downs)
	assert.Equal(t, []string{"c", "ctrl"}, input.Ups)

	text, err := engine.ReadScreenText(ctx)
	require.NoError(t, err)
	assert.Equal(t, "hello", text)

	data, err := engine.CapturePNG(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestEngineCapturePNGFailsInSimulation(t *testing.T) {
	engine := newSimEngine(t)
	_, err := engine.CapturePNG(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoDisplay)
}

func TestEngineHistory(t *testing.T) {
	engine := newSimEngine(t, WithHistory(memory.New()))
	ctx := context.Background()

	engine.Dispatch(ctx, "open chrome")
	records, err := engine.History(ctx, 10)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "open chrome", records[0].Task)

	// Without a store the trail is empty, not an error.
	bare := newSimEngine(t)
	records, err = bare.History(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestEngineProbeFailureFallsBackToSimulation(t *testing.T) {
	engine, err := New(
		WithLogger(logging.NewNop()),
		WithProbe(func() (int, int, error) { panic("headless") }),
	)
	require.NoError(t, err)
	assert.True(t, engine.Simulated())

	res := engine.Dispatch(context.Background(), "click at 1, 2")
	assert.Equal(t, domain.StatusSuccess, res.Status)
	assert.True(t, res.Simulated)
}
