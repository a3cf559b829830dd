package kernel

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// PaymentMethod is how the client pays. Payment itself is simulated.
type PaymentMethod string

const (
	PaymentMethodPix  PaymentMethod = "pix"
	PaymentMethodCard PaymentMethod = "card"
	PaymentMethodCash PaymentMethod = "cash"
)

func (m PaymentMethod) Validate() error {
	switch m {
	case PaymentMethodPix, PaymentMethodCard, PaymentMethodCash:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("payment method", fmt.Errorf("%q is not supported", string(m)))
}
