// Package service
package service

import (
	"errors"

	"github.com/half-nothing/airport-booking/internal/interfaces/operation"
)

type errorStatus struct {
	target error
	status ApiStatus
}

// errorStatuses is matched in order, specific sentinels before the category roots they wrap
var errorStatuses = []errorStatus{
	{operation.ErrSeatOutOfRange, ApiStatus{StatusName: "SEAT_OUT_OF_RANGE", HttpCode: BadRequest}},
	{operation.ErrInvalidTimeWindow, ApiStatus{StatusName: "INVALID_TIME_WINDOW", HttpCode: BadRequest}},
	{operation.ErrMissingCrew, ApiStatus{StatusName: "MISSING_CREW", HttpCode: BadRequest}},
	{operation.ErrCrewComposition, ApiStatus{StatusName: "CREW_COMPOSITION", HttpCode: BadRequest}},
	{operation.ErrInvalidRoute, ApiStatus{StatusName: "INVALID_ROUTE", HttpCode: BadRequest}},
	{operation.ErrEmptyOrder, ApiStatus{StatusName: "EMPTY_ORDER", HttpCode: BadRequest}},
	{operation.ErrFlightInactive, ApiStatus{StatusName: "FLIGHT_INACTIVE", HttpCode: BadRequest}},
	{operation.ErrInvalidReference, ApiStatus{StatusName: "INVALID_REFERENCE", HttpCode: BadRequest}},
	{operation.ErrImageNotAccepted, ApiStatus{StatusName: "IMAGE_NOT_ACCEPTED", HttpCode: BadRequest}},
	{operation.ErrOldPassword, ApiStatus{StatusName: "OLD_PASSWORD_MISMATCH", HttpCode: BadRequest}},
	{operation.ErrInvalidField, ApiStatus{StatusName: "INVALID_FIELD", HttpCode: BadRequest}},
	{operation.ErrValidation, ApiStatus{StatusName: "VALIDATION_ERROR", HttpCode: BadRequest}},
	{operation.ErrDuplicateEntity, ApiStatus{StatusName: "DUPLICATE_ENTITY", HttpCode: Conflict}},
	{operation.ErrSchedulingConflict, ApiStatus{StatusName: "SCHEDULING_CONFLICT", HttpCode: Conflict}},
	{operation.ErrSeatTaken, ApiStatus{StatusName: "SEAT_TAKEN", HttpCode: Conflict}},
	{operation.ErrConflict, ApiStatus{StatusName: "CONFLICT", HttpCode: Conflict}},
	{operation.ErrUnauthenticated, ErrNotAuthenticated},
	{operation.ErrAuthorization, ErrNoPermission},
	{operation.ErrNotFound, ApiStatus{StatusName: "NOT_FOUND", HttpCode: NotFound}},
}

// StatusOf returns the status a business error is reported with; statuses without a fixed
// description carry the error text. It returns nil for errors outside the domain taxonomy.
func StatusOf(err error) *ApiStatus {
	if err == nil {
		return nil
	}
	for _, candidate := range errorStatuses {
		if errors.Is(err, candidate.target) {
			status := candidate.status
			if status.Description == "" {
				status.Description = err.Error()
			}
			return &status
		}
	}
	return nil
}

type Action int

const (
	ListAction Action = iota
	RetrieveAction
	CreateAction
	ModifyAction
)

func denied[T any](role operation.Role) *ApiResponse[T] {
	if role == operation.Anonymous {
		return NewApiResponse[T](&ErrNotAuthenticated, Unsatisfied, nil)
	}
	return NewApiResponse[T](&ErrNoPermission, Unsatisfied, nil)
}

// CheckPolicy answers 401 to anonymous callers and 403 to authenticated ones when the
// policy of kind refuses action. Retrieval here ignores ownership, see CheckRetrieve.
func CheckPolicy[T any](kind operation.ResourceKind, action Action, header JwtHeader) *ApiResponse[T] {
	policy := operation.PolicyFor(kind)
	role := header.Role()
	var allowed bool
	switch action {
	case ListAction:
		allowed = policy.CanList(role)
	case RetrieveAction:
		allowed = policy.CanRetrieve(role, false)
	case CreateAction:
		allowed = policy.CanCreate(role)
	case ModifyAction:
		allowed = policy.CanModify(role)
	}
	if allowed {
		return nil
	}
	return denied[T](role)
}

// CheckRetrieve applies the retrieve rule once ownership of the record is known.
// Authenticated callers who do not own the record get notFound so its existence is not leaked.
func CheckRetrieve[T any](kind operation.ResourceKind, header JwtHeader, owns bool, notFound error) *ApiResponse[T] {
	role := header.Role()
	if operation.PolicyFor(kind).CanRetrieve(role, owns) {
		return nil
	}
	if role == operation.Authenticated {
		return NewApiResponse[T](StatusOf(notFound), Unsatisfied, nil)
	}
	return denied[T](role)
}
