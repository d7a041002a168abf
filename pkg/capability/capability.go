// Package capability decides, once at process start, whether real OS
// automation is usable in this environment.
package capability

import "fmt"

// Flag records the outcome of capability detection. It is computed once at
// startup and read-only thereafter.
type Flag struct {
	// RealControlAvailable is true when both a display surface and input
	// injection are usable and simulation is not forced.
	RealControlAvailable bool

	// Width, Height hold the detected primary screen size, zero when
	// running simulated.
	Width, Height int

	// Reason explains why real control is unavailable, for logs only.
	Reason string
}

// Probe checks the process environment for a usable display and input
// subsystem, returning the primary screen size on success.
type Probe func() (width, height int, err error)

// Detect computes the process-wide capability flag. The forceSimulation
// override wins unconditionally. Probe errors and panics are swallowed and
// treated as "capability absent" — absence is a normal outcome here, not an
// error, so Detect never fails.
func Detect(forceSimulation bool, probe Probe) Flag {
	if forceSimulation {
		return Flag{Reason: "simulation forced by configuration"}
	}
	if probe == nil {
		return Flag{Reason: "no capability probe configured"}
	}
	w, h, err := runProbe(probe)
	if err != nil {
		return Flag{Reason: err.Error()}
	}
	return Flag{RealControlAvailable: true, Width: w, Height: h}
}

// runProbe converts probe panics into errors. Display libraries may abort
// instead of returning an error when no display server is reachable.
func runProbe(probe Probe) (w, h int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("capability probe panicked: %v", r)
		}
	}()
	return probe()
}

// Mode returns "real" or "simulation" for logs and service metadata.
func (f Flag) Mode() string {
	if f.RealControlAvailable {
		return "real"
	}
	return "simulation"
}
