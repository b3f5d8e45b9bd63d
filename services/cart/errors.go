package cart

import "fmt"

// Validation error codes. These are user-correctable conditions, reported
// inline by handlers; none of them is fatal.
const (
	CodeMinimumItemsNotMet = "minimum_items_not_met"
	CodeNoSlotSelected     = "no_slot_selected"
	CodeSlotUnavailable    = "slot_unavailable"
	CodeServiceUnavailable = "service_unavailable"
	CodeUnknownService     = "unknown_service"
	CodeCartConflict       = "cart_conflict"
	CodeInvalidItems       = "invalid_items"
)

// ValidationError is a user-correctable rejection of a cart configuration.
type ValidationError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	// Fallback carries the first still-open slot label when the chosen
	// slot has passed its cutoff.
	Fallback string `json:"fallback,omitempty"`
	// ConflictService names the service occupying the cart when a replace
	// confirmation is required.
	ConflictService string `json:"conflictService,omitempty"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newValidationError(code, msg string) *ValidationError {
	return &ValidationError{Code: code, Message: msg}
}
