package user

import (
	"context"
	"regexp"
	"testing"

	userRepo "cleancare/database/repository/user"
	"cleancare/models"
)

var codePattern = regexp.MustCompile(`[0-9]{4}`)

// fakeSMS captures outgoing messages so tests can read the delivered code.
type fakeSMS struct {
	phone   string
	message string
}

func (f *fakeSMS) SendSMS(ctx context.Context, phone, message string) error {
	f.phone = phone
	f.message = message
	return nil
}

func (f *fakeSMS) lastCode(t *testing.T) string {
	t.Helper()
	code := codePattern.FindString(f.message)
	if len(code) != otpLength {
		t.Fatalf("no %d-digit code in message %q", otpLength, f.message)
	}
	return code
}

func newAuthFixture(t *testing.T) (*DefaultAuthService, *fakeSMS, *userRepo.MemoryUserRepo) {
	t.Helper()
	users := userRepo.NewMemoryUserRepo()
	sms := &fakeSMS{}
	svc := &DefaultAuthService{
		Users:    users,
		SMS:      sms,
		OTP:      NewMemoryOTPStore(),
		Sessions: NewMemorySessionStore(),
	}
	return svc, sms, users
}

func TestNewUserVerifyThenRegister(t *testing.T) {
	svc, sms, users := newAuthFixture(t)
	ctx := context.Background()

	sessionID, err := svc.RequestOTP(ctx, "9876543210")
	if err != nil {
		t.Fatalf("RequestOTP: %v", err)
	}
	if sms.phone != "9876543210" {
		t.Errorf("SMS sent to %q, want the requested phone", sms.phone)
	}

	resp, err := svc.VerifyOTP(ctx, sessionID, sms.lastCode(t))
	if err != nil {
		t.Fatalf("VerifyOTP: %v", err)
	}
	if resp.Status != StatusOTPVerified || !resp.NewUser {
		t.Fatalf("resp = %+v, want otp_verified new-user handoff", resp)
	}
	if resp.Token != "" {
		t.Error("token issued before registration")
	}

	resp, err = svc.Register(ctx, sessionID, "Asha", "Rao")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if resp.Status != StatusComplete || resp.Token == "" || resp.UserID == "" {
		t.Fatalf("resp = %+v, want complete with token and user id", resp)
	}

	account, err := users.GetByPhone("9876543210")
	if err != nil || account == nil {
		t.Fatalf("account not created: %v", err)
	}
	if account.ID != resp.UserID || account.FirstName != "Asha" {
		t.Errorf("account = %+v, want id %s and first name Asha", account, resp.UserID)
	}
}

func TestReturningUserGetsTokenOnVerify(t *testing.T) {
	svc, sms, users := newAuthFixture(t)
	ctx := context.Background()

	if err := users.Create(&models.User{ID: "u1", Phone: "9876543210", FirstName: "Asha"}); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	sessionID, err := svc.RequestOTP(ctx, "9876543210")
	if err != nil {
		t.Fatalf("RequestOTP: %v", err)
	}

	resp, err := svc.VerifyOTP(ctx, sessionID, sms.lastCode(t))
	if err != nil {
		t.Fatalf("VerifyOTP: %v", err)
	}
	if resp.Status != StatusComplete || resp.UserID != "u1" || resp.Token == "" {
		t.Fatalf("resp = %+v, want complete with token for u1", resp)
	}

	// The session is consumed along with the token issue.
	if _, err := svc.VerifyOTP(ctx, sessionID, sms.lastCode(t)); err == nil {
		t.Error("VerifyOTP succeeded on a consumed session")
	}
}

func TestVerifyOTPRejectsWrongCode(t *testing.T) {
	svc, sms, _ := newAuthFixture(t)
	ctx := context.Background()

	sessionID, err := svc.RequestOTP(ctx, "9876543210")
	if err != nil {
		t.Fatalf("RequestOTP: %v", err)
	}

	wrong := "0000"
	if wrong == sms.lastCode(t) {
		wrong = "0001"
	}
	_, err = svc.VerifyOTP(ctx, sessionID, wrong)
	authErr, ok := err.(*AuthError)
	if !ok || authErr.Code != CodeOTPInvalid {
		t.Fatalf("error = %v, want AuthError %s", err, CodeOTPInvalid)
	}

	// The right code still works; a wrong attempt does not consume it.
	if _, err := svc.VerifyOTP(ctx, sessionID, sms.lastCode(t)); err != nil {
		t.Errorf("VerifyOTP with correct code after wrong attempt: %v", err)
	}
}

func TestOTPCodeIsSingleUse(t *testing.T) {
	svc, sms, _ := newAuthFixture(t)
	ctx := context.Background()

	sessionID, err := svc.RequestOTP(ctx, "9876543210")
	if err != nil {
		t.Fatalf("RequestOTP: %v", err)
	}
	code := sms.lastCode(t)

	if _, err := svc.VerifyOTP(ctx, sessionID, code); err != nil {
		t.Fatalf("first VerifyOTP: %v", err)
	}

	// New-user flow keeps the session for Register, but the code itself
	// is consumed on the first match.
	_, err = svc.VerifyOTP(ctx, sessionID, code)
	authErr, ok := err.(*AuthError)
	if !ok || authErr.Code != CodeOTPInvalid {
		t.Fatalf("replayed code: error = %v, want AuthError %s", err, CodeOTPInvalid)
	}
}

func TestRegisterRequiresVerifiedSession(t *testing.T) {
	svc, _, _ := newAuthFixture(t)
	ctx := context.Background()

	sessionID, err := svc.RequestOTP(ctx, "9876543210")
	if err != nil {
		t.Fatalf("RequestOTP: %v", err)
	}

	_, err = svc.Register(ctx, sessionID, "Asha", "")
	authErr, ok := err.(*AuthError)
	if !ok || authErr.Code != CodeSessionNotVerified {
		t.Fatalf("error = %v, want AuthError %s", err, CodeSessionNotVerified)
	}

	_, err = svc.Register(ctx, "no-such-session", "Asha", "")
	authErr, ok = err.(*AuthError)
	if !ok || authErr.Code != CodeSessionNotFound {
		t.Fatalf("error = %v, want AuthError %s", err, CodeSessionNotFound)
	}
}
