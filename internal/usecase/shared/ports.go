package shared

import (
	"context"
	"time"

	"booking-engine/internal/domain/notification"
)

// PhoneVerifier checks codes previously sent to a phone. Check leaves the code
// in place; Verify redeems it.
type PhoneVerifier interface {
	Check(ctx context.Context, phone, code string) error
	Verify(ctx context.Context, phone, code string) error
}

type CodeStore interface {
	Save(ctx context.Context, phone, code string, ttl time.Duration) error
	Matches(ctx context.Context, phone, code string) (bool, error)
	// Consume deletes the stored code when it matches and reports whether it did.
	Consume(ctx context.Context, phone, code string) (bool, error)
}

type SMSSender interface {
	SendVerificationCode(ctx context.Context, phone, code string) error
}

// ReservationObserver records the outcome of reservation attempts.
type ReservationObserver interface {
	ObserveReservation(kind notification.ResourceKind, outcome string)
}

type NopObserver struct{}

func (NopObserver) ObserveReservation(notification.ResourceKind, string) {}
