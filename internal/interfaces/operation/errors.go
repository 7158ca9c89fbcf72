// Package operation
package operation

import (
	"errors"
	"fmt"
	"strings"
)

// Category roots, every domain error unwraps to exactly one of them
var (
	ErrValidation    = errors.New("validation failed")
	ErrConflict      = errors.New("conflict")
	ErrAuthorization = errors.New("not authorized")
	ErrNotFound      = errors.New("not found")
)

var (
	ErrInvalidField       = fmt.Errorf("%w: invalid field", ErrValidation)
	ErrInvalidReference   = fmt.Errorf("%w: invalid reference", ErrValidation)
	ErrInvalidRoute       = fmt.Errorf("%w: route source and destination must differ and distance must be positive", ErrValidation)
	ErrInvalidTimeWindow  = fmt.Errorf("%w: arrival time must be after departure time", ErrValidation)
	ErrMissingCrew        = fmt.Errorf("%w: flight must have crew assigned", ErrValidation)
	ErrCrewComposition    = fmt.Errorf("%w: crew composition", ErrValidation)
	ErrEmptyOrder         = fmt.Errorf("%w: order must contain at least one ticket", ErrValidation)
	ErrSeatOutOfRange     = fmt.Errorf("%w: seat out of range", ErrValidation)
	ErrFlightInactive     = fmt.Errorf("%w: flight is no longer active", ErrValidation)
	ErrImageNotAccepted   = fmt.Errorf("%w: file is not an accepted image", ErrValidation)
	ErrDuplicateEntity    = fmt.Errorf("%w: duplicate entity", ErrConflict)
	ErrSchedulingConflict = fmt.Errorf("%w: scheduling conflict", ErrConflict)
	ErrSeatTaken          = fmt.Errorf("%w: seat taken", ErrConflict)
	ErrUnauthenticated    = fmt.Errorf("%w: authentication required", ErrAuthorization)
	ErrForbidden          = fmt.Errorf("%w: permission denied", ErrAuthorization)
	ErrPasswordEncode     = errors.New("password encode error")
	ErrOldPassword        = fmt.Errorf("%w: original password mismatch", ErrValidation)

	ErrCountryNotFound      = notFound("country")
	ErrCityNotFound         = notFound("city")
	ErrAirportNotFound      = notFound("airport")
	ErrRouteNotFound        = notFound("route")
	ErrAirplaneTypeNotFound = notFound("airplane type")
	ErrAirplaneNotFound     = notFound("airplane")
	ErrCrewNotFound         = notFound("crew")
	ErrFlightNotFound       = notFound("flight")
	ErrOrderNotFound        = notFound("order")
	ErrUserNotFound         = notFound("user")
)

func notFound(entity string) error {
	return fmt.Errorf("%s %w", entity, ErrNotFound)
}

type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string { return e.Field + " " + e.Reason }

func (e *FieldError) Unwrap() error { return ErrInvalidField }

// InvalidReferenceError is raised when a foreign key points at nothing
type InvalidReferenceError struct {
	Field string
	Id    uint
}

func (e *InvalidReferenceError) Error() string {
	return fmt.Sprintf("%s %d does not exist", e.Field, e.Id)
}

func (e *InvalidReferenceError) Unwrap() error { return ErrInvalidReference }

type DuplicateEntityError struct {
	Entity string
	Fields []string
}

func (e *DuplicateEntityError) Error() string {
	return fmt.Sprintf("%s with this %s already exists", e.Entity, strings.Join(e.Fields, " and "))
}

func (e *DuplicateEntityError) Unwrap() error { return ErrDuplicateEntity }

type CrewCompositionError struct {
	Missing []CrewPosition
}

func (e *CrewCompositionError) Error() string {
	names := make([]string, 0, len(e.Missing))
	for _, position := range e.Missing {
		names = append(names, position.Label())
	}
	return "flight crew must include at least one " + strings.Join(names, " and one ")
}

func (e *CrewCompositionError) Unwrap() error { return ErrCrewComposition }

type ConflictResource string

const (
	ConflictAirplane   ConflictResource = "airplane"
	ConflictCrewMember ConflictResource = "crew member"
)

type SchedulingConflictError struct {
	Resource     ConflictResource
	ResourceId   uint
	ResourceName string
	FlightId     uint
}

func (e *SchedulingConflictError) Error() string {
	return fmt.Sprintf("%s %s (%d) is already assigned to overlapping flight %d", e.Resource, e.ResourceName, e.ResourceId, e.FlightId)
}

func (e *SchedulingConflictError) Unwrap() error { return ErrSchedulingConflict }

type SeatOutOfRangeError struct {
	Dimension string
	Value     int
	Limit     int
}

func (e *SeatOutOfRangeError) Error() string {
	return fmt.Sprintf("%s must be in range 1:%d", e.Dimension, e.Limit)
}

func (e *SeatOutOfRangeError) Unwrap() error { return ErrSeatOutOfRange }

type SeatTakenError struct {
	FlightId uint
	Row      int
	Seat     int
}

func (e *SeatTakenError) Error() string {
	return fmt.Sprintf("row %d seat %d on flight %d is already taken", e.Row, e.Seat, e.FlightId)
}

func (e *SeatTakenError) Unwrap() error { return ErrSeatTaken }

type ErrorCategory int

const (
	NoError ErrorCategory = iota
	ValidationError
	ConflictError
	AuthorizationError
	NotFoundError
	InternalError
)

func (c ErrorCategory) String() string {
	switch c {
	case NoError:
		return "none"
	case ValidationError:
		return "validation"
	case ConflictError:
		return "conflict"
	case AuthorizationError:
		return "authorization"
	case NotFoundError:
		return "not found"
	default:
		return "internal"
	}
}

// CategoryOf maps any error onto the client-facing taxonomy; unknown errors are internal
func CategoryOf(err error) ErrorCategory {
	switch {
	case err == nil:
		return NoError
	case errors.Is(err, ErrValidation):
		return ValidationError
	case errors.Is(err, ErrConflict):
		return ConflictError
	case errors.Is(err, ErrAuthorization):
		return AuthorizationError
	case errors.Is(err, ErrNotFound):
		return NotFoundError
	default:
		return InternalError
	}
}
