package repositories

import (
	"context"
)

// UnitOfWork executes a function within one atomic scope. Every lifecycle
// transition that touches more than one document (application accept,
// invitation accept, mentor accept) goes through Do so a crash can never
// leave a half-applied transition.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
