package booking

import (
	"booking-engine/internal/domain/user"
	"booking-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrNotOwner        = errs.Mark(errs.New("booking belongs to another user"), errs.ErrForbidden)
	ErrCancelOnly      = errs.Mark(errs.New("customers may only cancel bookings"), errs.ErrForbidden)
	ErrGuestCannotEdit = errs.Mark(errs.New("guests cannot modify bookings"), errs.ErrForbidden)
)

// Actor is the caller of a booking operation. A zero UserID is the guest flow.
type Actor struct {
	UserID uuid.UUID
	Role   user.Role
}

func GuestActor() Actor {
	return Actor{}
}

func (a Actor) IsGuest() bool { return a.UserID == uuid.Nil }
func (a Actor) IsAdmin() bool { return a.Role == user.RoleAdmin }

func (a Actor) UserIDPtr() *uuid.UUID {
	if a.IsGuest() {
		return nil
	}
	id := a.UserID
	return &id
}

// CanView reports whether the actor may read a booking owned by ownerID.
func (a Actor) CanView(ownerID *uuid.UUID) bool {
	if a.IsAdmin() {
		return true
	}
	return !a.IsGuest() && ownerID != nil && *ownerID == a.UserID
}

// AuthorizeStatusChange applies the self-service rule: admins may apply any
// transition, customers may only cancel their own bookings.
func (a Actor) AuthorizeStatusChange(ownerID *uuid.UUID, next Status) error {
	switch {
	case a.IsAdmin():
		return nil
	case a.IsGuest():
		return ErrGuestCannotEdit
	case ownerID == nil || *ownerID != a.UserID:
		return ErrNotOwner
	case next != StatusCancelled:
		return ErrCancelOnly
	default:
		return nil
	}
}
