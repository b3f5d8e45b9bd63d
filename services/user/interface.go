package user

import (
	"context"
	"time"

	userRepo "cleancare/database/repository/user"
	"cleancare/services/notification"
)

// AuthResponse is the outcome of a verification step. For a returning
// user VerifyOTP issues the token directly; a new user gets
// NewUser=true and must complete Register before a token is issued.
type AuthResponse struct {
	Status  string `json:"status"`
	UserID  string `json:"userId,omitempty"`
	Token   string `json:"token,omitempty"`
	NewUser bool   `json:"newUser"`
}

const (
	StatusOTPSent     = "otp_sent"
	StatusOTPVerified = "otp_verified"
	StatusComplete    = "complete"
)

// TokenTTL is the lifetime of issued access tokens.
const TokenTTL = 30 * 24 * time.Hour

// AuthService drives the phone-verification sign-in flow.
type AuthService interface {
	// RequestOTP starts a verification session for the phone and sends
	// the code. The returned session id keys the follow-up calls.
	RequestOTP(ctx context.Context, phone string) (string, error)
	// VerifyOTP checks the code. Returning users get a token; new users
	// get an otp_verified response and must call Register.
	VerifyOTP(ctx context.Context, sessionID, code string) (*AuthResponse, error)
	// Register creates the account for a verified new user and issues
	// the token.
	Register(ctx context.Context, sessionID, firstName, lastName string) (*AuthResponse, error)
}

// DefaultAuthService is the production implementation.
type DefaultAuthService struct {
	Users    userRepo.UserRepository
	SMS      notification.SMSSender
	OTP      OTPStore
	Sessions SessionStore
}
