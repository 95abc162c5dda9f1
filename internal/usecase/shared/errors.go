package shared

import (
	"context"
	"errors"

	"booking-engine/internal/domain/booking"
	"booking-engine/internal/infra"
	"booking-engine/internal/pkg/errs"
)

// Outcome labels for ReservationObserver.
const (
	OutcomeCreated             = "created"
	OutcomeValidation          = "validation_error"
	OutcomeNotFound            = "not_found"
	OutcomeCapacityConflict    = "capacity_conflict"
	OutcomeConcurrencyConflict = "concurrency_conflict"
	OutcomeInfrastructure      = "infrastructure_error"
	OutcomeForbidden           = "forbidden"
)

var taxonomy = []error{
	errs.ErrValidation,
	errs.ErrNotFound,
	errs.ErrCapacityConflict,
	errs.ErrConcurrencyConflict,
	errs.ErrInfrastructure,
	errs.ErrForbidden,
	booking.ErrInvalidTransition,
}

// Classify marks err with its place in the error taxonomy. Errors that are
// already classified pass through.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	for _, t := range taxonomy {
		if errs.Is(err, t) {
			return err
		}
	}
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, errs.ErrNotFound)
	case infra.IsTimeout(err), errors.Is(err, context.DeadlineExceeded):
		return errs.Mark(errs.Mark(err, errs.ErrTimeout), errs.ErrInfrastructure)
	case infra.IsRetryable(err):
		return errs.Mark(err, errs.ErrConcurrencyConflict)
	default:
		return errs.Mark(err, errs.ErrInfrastructure)
	}
}

// OutcomeOf maps a classified error to an observer label.
func OutcomeOf(err error) string {
	switch {
	case err == nil:
		return OutcomeCreated
	case errs.Is(err, errs.ErrValidation):
		return OutcomeValidation
	case errs.Is(err, errs.ErrNotFound):
		return OutcomeNotFound
	case errs.Is(err, errs.ErrCapacityConflict):
		return OutcomeCapacityConflict
	case errs.Is(err, errs.ErrConcurrencyConflict):
		return OutcomeConcurrencyConflict
	case errs.Is(err, errs.ErrForbidden):
		return OutcomeForbidden
	default:
		return OutcomeInfrastructure
	}
}
