package user

import (
	"context"
	"fmt"
	"time"

	"cleancare/utils"

	"github.com/go-redis/redis/v8"
	"golang.org/x/crypto/bcrypt"
)

// OTPTTL is how long a one-time code stays valid.
const OTPTTL = 5 * time.Minute

const otpKeyPrefix = "otp:"

// OTPStore keeps one-time codes hashed at rest. Verify consumes the
// record on a match so a code can be used at most once.
type OTPStore interface {
	Store(sessionID, code string) error
	Verify(sessionID, code string) error
}

// SessionStore tracks the progress of phone-verification flows.
type SessionStore interface {
	Save(sessionID string, session utils.AuthSession) error
	// Get returns nil, nil when the session expired or never existed.
	Get(sessionID string) (*utils.AuthSession, error)
	Delete(sessionID string) error
}

// RedisOTPStore persists bcrypt hashes of codes in the OTP Redis DB.
// Only the hash ever reaches Redis.
type RedisOTPStore struct {
	Client *redis.Client
}

func (s *RedisOTPStore) Store(sessionID, code string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash OTP: %w", err)
	}

	ctx := context.Background()
	if err := s.Client.Set(ctx, otpKeyPrefix+sessionID, hash, OTPTTL).Err(); err != nil {
		return fmt.Errorf("failed to store OTP record: %w", err)
	}
	return nil
}

func (s *RedisOTPStore) Verify(sessionID, code string) error {
	ctx := context.Background()

	storedHash, err := s.Client.Get(ctx, otpKeyPrefix+sessionID).Result()
	if err != nil {
		if err == redis.Nil {
			return fmt.Errorf("OTP not found or expired")
		}
		return fmt.Errorf("failed to retrieve OTP: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(code)); err != nil {
		return fmt.Errorf("OTP does not match")
	}

	if err := s.Client.Del(ctx, otpKeyPrefix+sessionID).Err(); err != nil {
		utils.GetLogger().Error("Failed to delete OTP after verification")
	}
	return nil
}

// RedisSessionStore keeps auth sessions in the auth Redis DB.
type RedisSessionStore struct {
	Client *redis.Client
}

func (s *RedisSessionStore) Save(sessionID string, session utils.AuthSession) error {
	return utils.SaveAuthSession(s.Client, sessionID, session)
}

func (s *RedisSessionStore) Get(sessionID string) (*utils.AuthSession, error) {
	session, err := utils.GetAuthSession(s.Client, sessionID)
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}
	return session, nil
}

func (s *RedisSessionStore) Delete(sessionID string) error {
	return utils.DeleteAuthSession(s.Client, sessionID)
}
