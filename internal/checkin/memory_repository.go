package checkin

import (
	"context"
	"sync"
	"time"
)

type memoryRepository struct {
	mu       sync.RWMutex
	checkins []CheckIn
}

// NewMemoryRepository builds an in-memory check-in store for testing and
// local runs without a database.
func NewMemoryRepository() Repository {
	return &memoryRepository{}
}

func (r *memoryRepository) Create(_ context.Context, c CheckIn) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkins = append(r.checkins, c)
	return nil
}

func (r *memoryRepository) ListByUser(_ context.Context, userID string) ([]CheckIn, error) {
	return r.filter(func(c CheckIn) bool { return c.UserID == userID }), nil
}

func (r *memoryRepository) ListByShop(_ context.Context, shopID string) ([]CheckIn, error) {
	return r.filter(func(c CheckIn) bool { return c.ShopID == shopID }), nil
}

func (r *memoryRepository) FindByUserSince(_ context.Context, userID string, since time.Time) ([]CheckIn, error) {
	return r.filter(func(c CheckIn) bool {
		return c.UserID == userID && !c.At.Before(since)
	}), nil
}

func (r *memoryRepository) FindContacts(_ context.Context, excludeUserID string, windows []Window) ([]CheckIn, error) {
	if len(windows) == 0 {
		return nil, nil
	}
	return r.filter(func(c CheckIn) bool {
		if c.UserID == excludeUserID {
			return false
		}
		for _, w := range windows {
			if w.Contains(c.ShopID, c.At) {
				return true
			}
		}
		return false
	}), nil
}

func (r *memoryRepository) DeleteAll(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkins = nil
	return nil
}

func (r *memoryRepository) filter(keep func(CheckIn) bool) []CheckIn {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []CheckIn{}
	for _, c := range r.checkins {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}
