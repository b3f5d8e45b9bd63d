package order

import "fmt"

// Checkout error codes. All are user-correctable gates, never fatal.
const (
	CodeCartRequired    = "cart_required"
	CodeAddressRequired = "address_required"
	CodeSlotUnavailable = "slot_unavailable"
)

// CheckoutError blocks an order commit until the user resolves it.
type CheckoutError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *CheckoutError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newCheckoutError(code, msg string) error {
	return &CheckoutError{Code: code, Message: msg}
}
