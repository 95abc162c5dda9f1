package commands

import (
	"context"
	"log/slog"

	"booking-engine/internal/domain/booking"
	"booking-engine/internal/domain/notification"
	"booking-engine/internal/infra"
	"booking-engine/internal/pkg/errs"
	"booking-engine/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("booking-engine/usecase/commands")

// BookingDeps groups the collaborators shared by the booking commands.
type BookingDeps struct {
	UoW      shared.UnitOfWork
	Verifier shared.PhoneVerifier
	Emitter  notification.Emitter
	Observer shared.ReservationObserver
	// guest bookings must redeem a phone verification code
	RequireGuestVerification bool
}

// notFoundAs replaces a repository NOT_FOUND with the domain sentinel.
func notFoundAs(err error, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(sentinel, errs.ErrNotFound)
	}
	return err
}

func requiredUUID(v *booking.Validator, field, s string) uuid.UUID {
	if s == "" {
		v.Add(field, "is required")
		return uuid.Nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		v.Add(field, "must be a valid UUID")
		return uuid.Nil
	}
	return id
}

func optionalUUID(v *booking.Validator, field, s string) *uuid.UUID {
	if s == "" {
		return nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		v.Add(field, "must be a valid UUID")
		return nil
	}
	return &id
}

// checkVerification records a missing code. The code itself is checked once the
// rest of the request validated and redeemed only after the booking commits, so
// neither a bad request nor a conflict burns it.
func checkVerification(v *booking.Validator, deps BookingDeps, actor booking.Actor, code string) bool {
	if !deps.RequireGuestVerification || !actor.IsGuest() {
		return false
	}
	if code == "" {
		v.Add("verification_code", "is required")
		return false
	}
	return true
}

// redeemCode runs after commit. The booking stands even if the code was redeemed
// concurrently or Redis is unreachable, so failures are only logged.
func redeemCode(ctx context.Context, verifier shared.PhoneVerifier, phone, code string, bookingID uuid.UUID) {
	if err := verifier.Verify(ctx, phone, code); err != nil {
		slog.WarnContext(ctx, "verification code not redeemed after booking",
			slog.String("booking_id", bookingID.String()),
			slog.Any("error", err),
		)
	}
}

func startSpan(ctx context.Context, name string, kind notification.ResourceKind) (context.Context, trace.Span) {
	return tracer.Start(ctx, name, trace.WithAttributes(attribute.String("booking.resource_kind", string(kind))))
}

// finish classifies err, records it on the span and ends it. observer is nil
// for operations other than creation.
func finish(span trace.Span, observer shared.ReservationObserver, kind notification.ResourceKind, err error) error {
	defer span.End()
	err = shared.Classify(err)
	outcome := shared.OutcomeOf(err)
	span.SetAttributes(attribute.String("booking.outcome", outcome))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, outcome)
	}
	if observer != nil {
		observer.ObserveReservation(kind, outcome)
	}
	return err
}

func emitAll(emitter notification.Emitter, events ...notification.Event) {
	for _, e := range events {
		emitter.Emit(e)
	}
}
