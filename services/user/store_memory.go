package user

import (
	"fmt"
	"sync"

	"cleancare/utils"

	"golang.org/x/crypto/bcrypt"
)

// MemoryOTPStore is an in-memory OTPStore used by tests. Codes are still
// hashed at rest so the contract matches the Redis store.
type MemoryOTPStore struct {
	mu     sync.Mutex
	hashes map[string][]byte
}

// NewMemoryOTPStore creates an empty in-memory OTP store.
func NewMemoryOTPStore() *MemoryOTPStore {
	return &MemoryOTPStore{hashes: make(map[string][]byte)}
}

func (s *MemoryOTPStore) Store(sessionID, code string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash OTP: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.hashes[sessionID] = hash
	return nil
}

func (s *MemoryOTPStore) Verify(sessionID, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	hash, ok := s.hashes[sessionID]
	if !ok {
		return fmt.Errorf("OTP not found or expired")
	}
	if err := bcrypt.CompareHashAndPassword(hash, []byte(code)); err != nil {
		return fmt.Errorf("OTP does not match")
	}
	delete(s.hashes, sessionID)
	return nil
}

// MemorySessionStore is an in-memory SessionStore used by tests.
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]utils.AuthSession
}

// NewMemorySessionStore creates an empty in-memory session store.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]utils.AuthSession)}
}

func (s *MemorySessionStore) Save(sessionID string, session utils.AuthSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = session
	return nil
}

func (s *MemorySessionStore) Get(sessionID string) (*utils.AuthSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, nil
	}
	return &session, nil
}

func (s *MemorySessionStore) Delete(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}
