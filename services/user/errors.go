package user

// AuthError is a phone-verification failure the client can act on.
type AuthError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *AuthError) Error() string {
	return e.Message
}

const (
	// CodeInvalidPhone means the phone number is not a dialable mobile number.
	CodeInvalidPhone = "invalid_phone"
	// CodeSessionNotFound means the verification session expired or never existed.
	CodeSessionNotFound = "session_not_found"
	// CodeOTPInvalid means the submitted code did not match or was already used.
	CodeOTPInvalid = "otp_invalid"
	// CodeSessionNotVerified means registration was attempted before the OTP step.
	CodeSessionNotVerified = "session_not_verified"
	// CodeNameRequired means registration is missing the first name.
	CodeNameRequired = "name_required"
)
