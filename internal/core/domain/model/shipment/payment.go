package shipment

import (
	"fmt"

	"shiptrack/internal/pkg/errs"
)

// PaymentStatus tracks whether the shipment has been paid for. It is carried
// on the shipment but does not participate in the lifecycle state machine.
type PaymentStatus string

const (
	// PaymentPending means payment has not been received yet.
	PaymentPending PaymentStatus = "PENDING"
	// PaymentPaid means payment was received.
	PaymentPaid PaymentStatus = "PAID"
	// PaymentRefunded means a received payment was returned.
	PaymentRefunded PaymentStatus = "REFUNDED"
)

// Validate checks the payment status against the known set.
func (p PaymentStatus) Validate() error {
	switch p {
	case PaymentPending, PaymentPaid, PaymentRefunded:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("payment",
			fmt.Errorf("%q is not a valid payment status", string(p)))
	}
}
