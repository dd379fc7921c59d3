package salesorder

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of a sales order.
// It implements a state machine with an explicit transition table covering
// the order-to-cash workflow.
//
// State transitions:
//
//	Created ──> ReleasedToWarehouse ──┬──> Shipped ──> Delivered
//	                                  │
//	                                  └──> PickFailed
//
// Delivered and PickFailed are both terminal. Orders are never destroyed;
// terminal states are retained for audit.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status when a sales order is first recorded.
	Created

	// ReleasedToWarehouse means stock and credit are reserved and the
	// warehouse may start picking.
	ReleasedToWarehouse

	// Shipped means every line was fully picked and a shipment was bound to
	// the order.
	Shipped

	// Delivered means the bound shipment arrived and revenue was recognized.
	// This is a final state.
	Delivered

	// PickFailed means picking failed and the order was aborted with its
	// reservations released. This is a final state.
	PickFailed
)

// statusStrings maps every Status value to its string representation.
func statusStrings() map[Status]string {
	return map[Status]string{
		Unknown:             "Unknown",
		Created:             "Created",
		ReleasedToWarehouse: "ReleasedToWarehouse",
		Shipped:             "Shipped",
		Delivered:           "Delivered",
		PickFailed:          "PickFailed",
	}
}

// statusTransitions is the exhaustive transition table. A transition absent
// from this table is rejected regardless of how it is requested.
func statusTransitions() map[Status][]Status {
	return map[Status][]Status{
		Created:             {ReleasedToWarehouse},
		ReleasedToWarehouse: {Shipped, PickFailed},
		Shipped:             {Delivered},
		Delivered:           {},
		PickFailed:          {},
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
			fmt.Errorf("%d is not a valid sales order status", s))
	}
	if _, ok := statusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid sales order status", s))
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
		return 0, errs.NewStateConflictErrorWithCause("sales order status",
			fmt.Errorf("cannot transition from %s to %s", s, target))
	}
	return target, nil
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return len(statusTransitions()[s]) == 0 && s != Unknown
}
