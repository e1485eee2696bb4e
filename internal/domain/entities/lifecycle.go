package entities

import (
	domainerrors "team-mentorship.backend/internal/domain/errors"
)

// RequestStatus is the shared lifecycle state of applications and invitations.
// Records start pending and resolve exactly once.
type RequestStatus string

const (
	StatusPending   RequestStatus = "pending"
	StatusAccepted  RequestStatus = "accepted"
	StatusRejected  RequestStatus = "rejected"
	StatusWithdrawn RequestStatus = "withdrawn"
)

// IsTerminal reports whether no further transitions are allowed.
func (s RequestStatus) IsTerminal() bool {
	return s == StatusAccepted || s == StatusRejected || s == StatusWithdrawn
}

// EnsurePending guards the pending -> accepted/rejected transition. A record
// that was already resolved reports its current status in the error.
func (s RequestStatus) EnsurePending() error {
	if s == StatusPending {
		return nil
	}
	return domainerrors.Conflict(
		"already processed: current status is "+string(s),
		domainerrors.ErrAlreadyProcessed,
	)
}
