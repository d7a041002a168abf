// Package ports defines the driven-side interfaces of the deskpilot core.
// Adapters implement them; the backend and dispatcher depend only on them.
package ports

import (
	"context"

	"github.com/okarin/deskpilot/pkg/domain"
)

// Backend turns a typed action into either a real OS effect or a no-op
// simulation. Both implementations return the same envelope shape and never
// panic; every failure path is an ActionResult with StatusFailure.
type Backend interface {
	Execute(ctx context.Context, action domain.Action) domain.ActionResult
}
