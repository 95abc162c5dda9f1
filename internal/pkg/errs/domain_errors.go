package errs

// Error taxonomy shared by every layer. Concrete errors are marked with one of
// these so handlers can classify them with errors.Is.
var (
	// malformed or missing input, detected before any storage access
	ErrValidation = New("validation failed")
	// referenced resource does not exist or is disabled
	ErrNotFound = New("not found")
	// requested guests/occupancy exceed remaining capacity at commit time
	ErrCapacityConflict = New("capacity conflict")
	// check-and-commit could not be serialized; safe to retry
	ErrConcurrencyConflict = New("concurrency conflict")
	// storage or downstream collaborator failure
	ErrInfrastructure = New("infrastructure failure")
	// storage did not answer in time; safe to retry
	ErrTimeout = New("storage timeout")

	ErrForbidden = New("forbidden")
	// missing or rejected credentials
	ErrUnauthenticated = New("unauthenticated")
	// unique key already taken, e.g. a registered email
	ErrDuplicate = New("already exists")
)
