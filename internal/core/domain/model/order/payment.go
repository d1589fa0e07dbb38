package order

import (
	"fmt"

	"mezzo/internal/pkg/errs"
)

// PaymentMethod is how the customer chose to pay at checkout. The core only
// records the method; payment processing happens outside the system.
type PaymentMethod int

const (
	// PaymentUnknown represents an invalid or undefined payment method.
	PaymentUnknown PaymentMethod = iota

	// PaymentCash is cash on delivery.
	PaymentCash

	// PaymentInstantTransfer is an instant bank transfer to the number
	// published in the settings.
	PaymentInstantTransfer
)

func getPaymentMethodStrings() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		PaymentUnknown:         "unknown",
		PaymentCash:            "cash",
		PaymentInstantTransfer: "instant_transfer",
	}
}

// PaymentMethodFromString parses the wire representation, e.g. "cash".
func PaymentMethodFromString(s string) (PaymentMethod, error) {
	for method, str := range getPaymentMethodStrings() {
		if str == s && method != PaymentUnknown {
			return method, nil
		}
	}
	return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause(
		"payment method is invalid", fmt.Errorf("%q is not a valid payment method", s))
}

// String returns the wire representation, e.g. "instant_transfer".
func (p PaymentMethod) String() string {
	if str, ok := getPaymentMethodStrings()[p]; ok {
		return str
	}
	return "unknown"
}

// Validate checks that the PaymentMethod is one of the supported methods.
func (p PaymentMethod) Validate() error {
	if _, ok := getPaymentMethodStrings()[p]; !ok || p == PaymentUnknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment method is invalid", fmt.Errorf("%d is not a valid payment method", p))
	}
	return nil
}
