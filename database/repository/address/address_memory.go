package addressRepo

import (
	"fmt"
	"sync"
	"time"

	"cleancare/models"
)

// MemoryAddressRepo is an in-memory AddressRepository used by tests and
// single-node development runs.
type MemoryAddressRepo struct {
	mu    sync.RWMutex
	addrs []models.Address
}

// NewMemoryAddressRepo creates an empty in-memory address repository.
func NewMemoryAddressRepo() *MemoryAddressRepo {
	return &MemoryAddressRepo{}
}

func (r *MemoryAddressRepo) Insert(addr *models.Address) error {
	if addr == nil || addr.ID == "" {
		return fmt.Errorf("address repository: id is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	addr.CreatedAt = now
	addr.UpdatedAt = now
	r.addrs = append(r.addrs, *addr)
	return nil
}

func (r *MemoryAddressRepo) Update(addr *models.Address) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.addrs {
		if r.addrs[i].ID == addr.ID && r.addrs[i].UserID == addr.UserID {
			addr.CreatedAt = r.addrs[i].CreatedAt
			addr.UpdatedAt = time.Now()
			r.addrs[i] = *addr
			return nil
		}
	}
	return fmt.Errorf("address with id %s: %w", addr.ID, ErrNotFound)
}

func (r *MemoryAddressRepo) GetByID(userID, id string) (*models.Address, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.addrs {
		if a.ID == id && a.UserID == userID {
			out := a
			return &out, nil
		}
	}
	return nil, nil
}

func (r *MemoryAddressRepo) ListByUser(userID string) ([]models.Address, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.Address
	for _, a := range r.addrs {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}
