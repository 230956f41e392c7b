package order

import (
	"fmt"

	"market/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions:
//
//	Placed ──> InProgress ──> Completed
//
// No transition skips a state and no transition moves backward. Placed is
// the initial state; Completed is terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Placed is the initial status after order conversion. Orders in this
	// status are waiting for an admin to take them or a deliverer to accept.
	Placed

	// InProgress indicates the order is being worked: an admin marked it
	// in progress or a deliverer accepted it.
	InProgress

	// Completed indicates the order has been delivered.
	// This is a final state with no further transitions allowed.
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Placed:     "placed",
		InProgress: "in_progress",
		Completed:  "completed",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Placed:     "placed",
		InProgress: "in_progress",
		Completed:  "completed",
	}
}

// StatusFromString parses a status name as it appears on the wire
// ("placed", "in_progress", "completed"). Returns an error for anything else.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status name", s),
	)
}

// Validate checks if the Status value is one of Placed, InProgress, Completed.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status. It implements fmt.Stringer
// and is safe to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Start transitions the status to InProgress.
//
// Valid transitions:
//   - Placed -> InProgress
//
// Any other source state is rejected: Completed orders cannot be reopened
// and InProgress orders are already started.
func (s Status) Start() (Status, error) {
	if s != Placed {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to start", s.String()),
		)
	}

	return InProgress, nil
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - InProgress -> Completed
//
// Placed orders must pass through InProgress first; Completed orders
// cannot be completed again.
func (s Status) Complete() (Status, error) {
	if s != InProgress {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}

	return Completed, nil
}

// CanTransitionTo reports whether target is reachable from s in one legal step.
func (s Status) CanTransitionTo(target Status) bool {
	switch target {
	case InProgress:
		return s == Placed
	case Completed:
		return s == InProgress
	default:
		return false
	}
}
