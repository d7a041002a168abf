package capability

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectForceSimulationWins(t *testing.T) {
	// The override beats a probe that would succeed.
	flag := Detect(true, func() (int, int, error) { return 1920, 1080, nil })
	assert.False(t, flag.RealControlAvailable)
	assert.Equal(t, "simulation", flag.Mode())
}

func TestDetectProbeSuccess(t *testing.T) {
	flag := Detect(false, func() (int, int, error) { return 1920, 1080, nil })
	assert.True(t, flag.RealControlAvailable)
	assert.Equal(t, 1920, flag.Width)
	assert.Equal(t, 1080, flag.Height)
	assert.Equal(t, "real", flag.Mode())
}

func TestDetectProbeErrorMeansAbsent(t *testing.T) {
	flag := Detect(false, func() (int, int, error) {
		return 0, 0, errors.New("no display server")
	})
	assert.False(t, flag.RealControlAvailable)
	assert.Contains(t, flag.Reason, "no display server")
}

func TestDetectProbePanicIsSwallowed(t *testing.T) {
	flag := Detect(false, func() (int, int, error) {
		panic("display library aborted")
	})
	assert.False(t, flag.RealControlAvailable)
	assert.Contains(t, flag.Reason, "display library aborted")
}

func TestDetectNilProbe(t *testing.T) {
	flag := Detect(false, nil)
	assert.False(t, flag.RealControlAvailable)
}
