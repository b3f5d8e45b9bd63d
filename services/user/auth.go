package user

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"cleancare/models"
	"cleancare/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const otpLength = 4

var phonePattern = regexp.MustCompile(`^\+?[0-9]{10,13}$`)

// normalizePhone strips spaces and dashes and validates the result as a
// dialable mobile number. Bare 10-digit numbers are accepted as-is.
func normalizePhone(phone string) (string, error) {
	cleaned := strings.NewReplacer(" ", "", "-", "").Replace(strings.TrimSpace(phone))
	if !phonePattern.MatchString(cleaned) {
		return "", &AuthError{Code: CodeInvalidPhone, Message: "enter a valid phone number"}
	}
	return cleaned, nil
}

func (s *DefaultAuthService) RequestOTP(ctx context.Context, phone string) (string, error) {
	normalized, err := normalizePhone(phone)
	if err != nil {
		return "", err
	}

	code, err := utils.GenerateOTPCode(otpLength)
	if err != nil {
		return "", fmt.Errorf("failed to generate OTP: %w", err)
	}

	sessionID := uuid.New().String()
	if err := s.OTP.Store(sessionID, code); err != nil {
		return "", err
	}

	existing, err := s.Users.GetByPhone(normalized)
	if err != nil {
		return "", fmt.Errorf("failed to look up account: %w", err)
	}

	session := utils.AuthSession{
		Phone:     normalized,
		Status:    "pending",
		NewUser:   existing == nil,
		CreatedAt: time.Now(),
	}
	if existing != nil {
		session.UserID = existing.ID
	}
	if err := s.Sessions.Save(sessionID, session); err != nil {
		return "", err
	}

	message := fmt.Sprintf("Your CleanCare verification code is %s. It expires in 5 minutes.", code)
	if err := s.SMS.SendSMS(ctx, normalized, message); err != nil {
		utils.GetLogger().Error("Failed to send OTP SMS", zap.Error(err), zap.String("phone", normalized))
		return "", fmt.Errorf("failed to send verification code")
	}

	utils.GetLogger().Info("OTP requested",
		zap.String("sessionID", sessionID),
		zap.Bool("newUser", session.NewUser),
	)
	return sessionID, nil
}

func (s *DefaultAuthService) VerifyOTP(ctx context.Context, sessionID, code string) (*AuthResponse, error) {
	session, err := s.Sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load auth session: %w", err)
	}
	if session == nil {
		return nil, &AuthError{Code: CodeSessionNotFound, Message: "verification session expired, request a new code"}
	}

	if err := s.OTP.Verify(sessionID, code); err != nil {
		return nil, &AuthError{Code: CodeOTPInvalid, Message: "incorrect or expired code"}
	}

	if session.NewUser {
		// Account does not exist yet; keep the session alive for Register.
		session.Status = StatusOTPVerified
		if err := s.Sessions.Save(sessionID, *session); err != nil {
			return nil, err
		}
		return &AuthResponse{Status: StatusOTPVerified, NewUser: true}, nil
	}

	token, err := utils.GenerateToken(session.UserID, session.Phone, TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	if err := s.Sessions.Delete(sessionID); err != nil {
		utils.GetLogger().Warn("Failed to delete auth session", zap.Error(err))
	}

	return &AuthResponse{Status: StatusComplete, UserID: session.UserID, Token: token}, nil
}

func (s *DefaultAuthService) Register(ctx context.Context, sessionID, firstName, lastName string) (*AuthResponse, error) {
	session, err := s.Sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load auth session: %w", err)
	}
	if session == nil {
		return nil, &AuthError{Code: CodeSessionNotFound, Message: "verification session expired, request a new code"}
	}
	if session.Status != StatusOTPVerified {
		return nil, &AuthError{Code: CodeSessionNotVerified, Message: "verify the code before registering"}
	}
	if strings.TrimSpace(firstName) == "" {
		return nil, &AuthError{Code: CodeNameRequired, Message: "first name is required"}
	}

	now := time.Now()
	account := &models.User{
		ID:        uuid.New().String(),
		Phone:     session.Phone,
		FirstName: strings.TrimSpace(firstName),
		LastName:  strings.TrimSpace(lastName),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Users.Create(account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	token, err := utils.GenerateToken(account.ID, account.Phone, TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	if err := s.Sessions.Delete(sessionID); err != nil {
		utils.GetLogger().Warn("Failed to delete auth session", zap.Error(err))
	}

	utils.GetLogger().Info("User registered", zap.String("userID", account.ID))
	return &AuthResponse{Status: StatusComplete, UserID: account.ID, Token: token, NewUser: true}, nil
}
