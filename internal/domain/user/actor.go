package user

import (
	"errors"

	"github.com/google/uuid"
)

var ErrInvalidRole = errors.New("invalid role")

// Actor is the pre-authenticated requester identity handed to the core by
// the trusted boundary. The core never verifies credentials itself;
// authorization is a pure function of actor vs. resource ownership.
type Actor struct {
	ID   uuid.UUID
	Role Role
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

func (a Actor) Owns(ownerID uuid.UUID) bool {
	return a.ID == ownerID
}

func (a Actor) CanActOn(ownerID uuid.UUID) bool {
	return a.Owns(ownerID) || a.IsAdmin()
}
