package journal

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Kind classifies a journal entry.
type Kind int

const (
	// KindUnknown represents an invalid or undefined kind.
	// This value (0) helps catch uninitialized Kind values.
	KindUnknown Kind = iota

	// KindRevenue is posted at delivery with the sales order's total value.
	KindRevenue

	// KindCOGS is posted at delivery with the cost of the goods sold, valued
	// at the average cost captured when the order was created.
	KindCOGS

	// KindFreight is posted when a shipment is planned, with the carrier's
	// estimated cost.
	KindFreight
)

// kindStrings maps every Kind value to its string representation.
func kindStrings() map[Kind]string {
	return map[Kind]string{
		KindUnknown: "Unknown",
		KindRevenue: "Revenue",
		KindCOGS:    "COGS",
		KindFreight: "Freight",
	}
}

// String returns the human-readable name of the kind.
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (k Kind) String() string {
	if str, ok := kindStrings()[k]; ok {
		return str
	}
	return "Unknown"
}

// Validate checks if the Kind value is one of the defined kinds.
func (k Kind) Validate() error {
	if k == KindUnknown {
		return errs.NewValueIsInvalidErrorWithCause("kind",
			fmt.Errorf("%d is not a valid journal entry kind", k))
	}
	if _, ok := kindStrings()[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("kind",
			fmt.Errorf("%d is not a valid journal entry kind", k))
	}
	return nil
}
