package httperr

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"

	"booking-engine/internal/domain/booking"
	"booking-engine/internal/domain/capacity"
	"booking-engine/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Status resolves the HTTP status, client message and detail payload of a
// usecase error. Unclassified errors are reported as 500.
func Status(err error) (int, string, any) {
	var (
		ve  *booking.ValidationError
		ce  *capacity.ConflictError
		bve validator.ValidationErrors
	)
	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest, "Validation failed", validationDetail(ve)
	case errors.As(err, &bve):
		return http.StatusBadRequest, "Validation failed", bindingDetail(bve)
	case errors.As(err, &ce):
		return http.StatusConflict, ce.Error(), ce.Detail()
	case errs.Is(err, errs.ErrCapacityConflict):
		return http.StatusConflict, "Capacity conflict", nil
	case errs.Is(err, booking.ErrInvalidTransition):
		return http.StatusConflict, "Invalid status transition", nil
	case errs.Is(err, errs.ErrConcurrencyConflict):
		return http.StatusConflict, "Concurrent update, please retry", gin.H{"retryable": true}
	case errs.Is(err, errs.ErrNotFound):
		return http.StatusNotFound, leafMessage(err, "Not found"), nil
	case errs.Is(err, errs.ErrUnauthenticated):
		return http.StatusUnauthorized, leafMessage(err, "Unauthorized"), nil
	case errs.Is(err, errs.ErrForbidden):
		return http.StatusForbidden, leafMessage(err, "Forbidden"), nil
	case errs.Is(err, errs.ErrDuplicate):
		return http.StatusConflict, leafMessage(err, "Already exists"), nil
	case errs.Is(err, errs.ErrTimeout):
		return http.StatusServiceUnavailable, "Service temporarily unavailable", gin.H{"retryable": true}
	default:
		return http.StatusInternalServerError, "Internal server error", nil
	}
}

// Abort responds with the status derived from err.
func Abort(c *gin.Context, err error) {
	status, msg, detail := Status(err)
	AbortWithError(c, status, err, msg, detail)
}

// AbortBinding responds to a request body or query that failed to bind.
func AbortBinding(c *gin.Context, err error) {
	var (
		bve validator.ValidationErrors
		ute *json.UnmarshalTypeError
	)
	switch {
	case errors.As(err, &bve):
		AbortWithError(c, http.StatusBadRequest, err, "Validation failed", bindingDetail(bve))
	case errors.As(err, &ute) && ute.Field != "":
		fields := []booking.FieldError{{Field: ute.Field, Message: typeMessage(ute.Type)}}
		AbortWithError(c, http.StatusBadRequest, err, "Validation failed", gin.H{"fields": fields})
	default:
		AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
	}
}

func typeMessage(t reflect.Type) string {
	if t == nil {
		return "has the wrong type"
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "must be a number"
	case reflect.String:
		return "must be a string"
	case reflect.Bool:
		return "must be a boolean"
	default:
		return "has the wrong type"
	}
}

func validationDetail(ve *booking.ValidationError) gin.H {
	detail := gin.H{"fields": ve.Fields}
	for k, v := range ve.Detail {
		detail[k] = v
	}
	return detail
}

func bindingDetail(bve validator.ValidationErrors) gin.H {
	fields := make([]booking.FieldError, 0, len(bve))
	for _, fe := range bve {
		fields = append(fields, booking.FieldError{Field: fe.Field(), Message: bindingMessage(fe)})
	}
	return gin.H{"fields": fields}
}

func bindingMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "uuid":
		return "must be a valid UUID"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "oneof":
		return "must be one of " + fe.Param()
	case "len":
		return "must be " + fe.Param() + " characters"
	default:
		return "is invalid"
	}
}

// leafMessage returns the text of domain errors, which is safe to show.
// Infrastructure text is replaced by fallback.
func leafMessage(err error, fallback string) string {
	if errs.Is(err, errs.ErrInfrastructure) {
		return fallback
	}
	return err.Error()
}
