package purchaseorder

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of a purchase order.
// It implements a state machine with an explicit transition table so that
// orders follow the procurement workflow and nothing else.
//
// State transitions:
//
//	Created ──> ReceivingPending ──> PartiallyReceived* ──> Received
//	                    │                                      ▲
//	                    └──────────────────────────────────────┘
//	        (PartiallyReceived repeats while lines remain open)
//
// Received is terminal: a fully received order accepts no further receipts.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status when a purchase order is first recorded.
	Created

	// ReceivingPending means the order has been released and the warehouse
	// may start confirming receipts against it.
	ReceivingPending

	// PartiallyReceived means at least one receipt was confirmed but some
	// line is still open.
	PartiallyReceived

	// Received means every line is fully received. This is a final state.
	Received
)

// statusStrings maps every Status value to its string representation.
func statusStrings() map[Status]string {
	return map[Status]string{
		Unknown:           "Unknown",
		Created:           "Created",
		ReceivingPending:  "ReceivingPending",
		PartiallyReceived: "PartiallyReceived",
		Received:          "Received",
	}
}

// statusTransitions is the exhaustive transition table. A transition absent
// from this table is rejected regardless of how it is requested.
func statusTransitions() map[Status][]Status {
	return map[Status][]Status{
		Created:           {ReceivingPending},
		ReceivingPending:  {PartiallyReceived, Received},
		PartiallyReceived: {PartiallyReceived, Received},
		Received:          {},
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
			fmt.Errorf("%d is not a valid purchase order status", s))
	}
	if _, ok := statusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid purchase order status", s))
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
		return 0, errs.NewStateConflictErrorWithCause("purchase order status",
			fmt.Errorf("cannot transition from %s to %s", s, target))
	}
	return target, nil
}

// AllowsReceipt reports whether receipts may be confirmed in this status.
// Only ReceivingPending and PartiallyReceived orders accept receipts.
func (s Status) AllowsReceipt() bool {
	return s == ReceivingPending || s == PartiallyReceived
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return len(statusTransitions()[s]) == 0 && s != Unknown
}
