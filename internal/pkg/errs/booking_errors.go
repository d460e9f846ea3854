package errs

import "errors"

// Sentinel errors shared across the booking engine. Handlers map these to
// HTTP status codes; the engine itself never sees a status code.
var (
	// Lookup errors
	ErrAmenityNotFound     = errors.New("amenity not found")
	ErrReservationNotFound = errors.New("reservation not found")

	// Scheduling-constraint errors (deterministic given current data)
	ErrAmenityNotReservable = errors.New("amenity is not reservable")
	ErrNoRuleForDay         = errors.New("no opening rule for that day")
	ErrInvalidRange         = errors.New("end time must be after start time")
	ErrOutsideHours         = errors.New("requested time is outside opening hours")
	ErrLeadTimeViolation    = errors.New("lead time window violated")
	ErrSlotFull             = errors.New("slot is at capacity")
	ErrDailyLimitReached    = errors.New("daily reservation limit reached")

	// Input errors
	ErrValidation = errors.New("invalid booking input")

	// Infrastructure
	ErrPersistence = errors.New("persistence failure")
)
