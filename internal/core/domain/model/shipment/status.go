package shipment

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment.
// The machine is strictly linear with no alternate terminal state:
//
//	Created ──> Planned ──> Dispatched ──> Delivered
//
// A shipment that never gets planned simply stays Created until it is
// abandoned from outside; abandoning is not a status.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status right after the shipment is recorded.
	// No carrier or cost is known yet.
	Created

	// Planned means a carrier was selected and the freight cost estimated.
	Planned

	// Dispatched means the load left the origin with the planned carrier.
	Dispatched

	// Delivered means the load arrived at the destination.
	// This is the final state.
	Delivered
)

// statusStrings maps every Status value to its string representation.
func statusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Created:    "Created",
		Planned:    "Planned",
		Dispatched: "Dispatched",
		Delivered:  "Delivered",
	}
}

// statusTransitions is the exhaustive transition table. A transition absent
// from this table is rejected regardless of how it is requested.
func statusTransitions() map[Status][]Status {
	return map[Status][]Status{
		Created:    {Planned},
		Planned:    {Dispatched},
		Dispatched: {Delivered},
		Delivered:  {},
	}
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := statusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Validate checks if the Status value is one of the defined states.
func (s Status) Validate() error {
	if s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid shipment status", s))
	}
	if _, ok := statusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid shipment status", s))
	}
	return nil
}

// CanTransitionTo reports whether the transition table permits moving from
// the current status to target.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range statusTransitions()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo moves to target if the transition table allows it.
//
// Returns:
//   - (target, nil) on a listed transition
//   - (0, error) with a StateConflictError otherwise
func (s Status) TransitionTo(target Status) (Status, error) {
	if !s.CanTransitionTo(target) {
		return 0, errs.NewStateConflictErrorWithCause("shipment status",
			fmt.Errorf("cannot transition from %s to %s", s, target))
	}
	return target, nil
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return len(statusTransitions()[s]) == 0 && s != Unknown
}
