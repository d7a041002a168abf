// Package backend provides the two implementations of ports.Backend: Real,
// which drives the OS through the automation collaborators, and Simulated,
// which echoes what would have happened without side effects.
package backend

import (
	"errors"
	"fmt"

	"github.com/okarin/deskpilot/pkg/domain"
)

// validate applies the parameter rules shared by both backends. Simulation
// changes side effects, not validation, so Real and Simulated must reject
// the same inputs for behavior parity on error paths.
func validate(a domain.Action) error {
	switch a.Kind {
	case domain.KindClick, domain.KindMove:
		if a.X < 0 || a.Y < 0 {
			return fmt.Errorf("invalid coordinates (%d, %d)", a.X, a.Y)
		}
	case domain.KindTypeText:
		// Empty text is a valid no-op type.
	case domain.KindKeyCombo:
		if len(a.Keys) == 0 {
			return errors.New("empty key combination")
		}
		for _, k := range a.Keys {
			if k == "" {
				return errors.New("empty key in combination")
			}
		}
	case domain.KindOpenApp:
		if a.App == "" {
			return errors.New("missing application name")
		}
	case domain.KindReadScreen:
	default:
		return fmt.Errorf("unsupported action kind %q", a.Kind)
	}
	return nil
}
