package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound means the provider answered but had no result for the query.
	ErrNotFound = errors.New("not found")
	// ErrLookupFailed wraps transient provider failures (network, timeout, 429/5xx).
	ErrLookupFailed = errors.New("lookup failed")
	// ErrRoutingFailed wraps non-success or malformed routing responses.
	ErrRoutingFailed = errors.New("routing failed")
	ErrUnknownCity   = errors.New("unknown city")
	ErrInvalidInput  = errors.New("invalid input")
)

type PlanningErrorKind string

const (
	InvalidLocation PlanningErrorKind = "InvalidLocation"
	RoutingFailed   PlanningErrorKind = "RoutingFailed"
)

// PlanningError is the only error the itinerary planner returns for a
// well-formed request. It aborts planning; no partial TripPlan accompanies it.
type PlanningError struct {
	Kind     PlanningErrorKind
	Location string
	Err      error
}

func (e *PlanningError) Error() string {
	switch e.Kind {
	case InvalidLocation:
		return fmt.Sprintf("invalid location %q: %v", e.Location, e.Err)
	case RoutingFailed:
		return fmt.Sprintf("route planning error: %v", e.Err)
	default:
		return fmt.Sprintf("planning error: %v", e.Err)
	}
}

func (e *PlanningError) Unwrap() error { return e.Err }
