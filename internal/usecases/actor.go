package usecases

import (
	"github.com/google/uuid"
	"team-mentorship.backend/internal/domain/entities"
	domainerrors "team-mentorship.backend/internal/domain/errors"
)

// Actor is the authenticated caller of a usecase. The HTTP layer resolves
// the external token to a canonical internal user id before any usecase
// runs, so ownership checks never compare mixed id schemes.
type Actor struct {
	ID   uuid.UUID
	Role entities.UserRole
}

// IsAdmin reports whether the actor may bypass ownership checks.
func (a Actor) IsAdmin() bool {
	return a.Role == entities.UserRoleAdmin
}

// authorizeOwner is the single ownership gate used by every mutating
// operation: the resource owner or an admin may proceed, nobody else.
func authorizeOwner(actor Actor, ownerID uuid.UUID) error {
	if actor.IsAdmin() || actor.ID == ownerID {
		return nil
	}
	return domainerrors.Forbidden("only the owner may perform this action")
}
