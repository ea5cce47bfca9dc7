package shop

import (
	"context"
	"sync"
)

type memoryRepository struct {
	mu    sync.RWMutex
	shops map[string]Shop
}

// NewMemoryRepository builds an in-memory shop store for testing.
func NewMemoryRepository() Repository {
	return &memoryRepository{shops: make(map[string]Shop)}
}

func (r *memoryRepository) Create(_ context.Context, s Shop) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.shops[s.ID] = s
	return nil
}

func (r *memoryRepository) FindByID(_ context.Context, id string) (Shop, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.shops[id]
	if !ok {
		return Shop{}, ErrNotFound
	}
	return s, nil
}

func (r *memoryRepository) List(_ context.Context) ([]Shop, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	shops := make([]Shop, 0, len(r.shops))
	for _, s := range r.shops {
		shops = append(shops, s)
	}
	return shops, nil
}

func (r *memoryRepository) Update(_ context.Context, id string, fields UpdateFields) (Shop, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.shops[id]
	if !ok {
		return Shop{}, ErrNotFound
	}
	if fields.Name != nil {
		s.Name = *fields.Name
	}
	if fields.Address != nil {
		s.Address = *fields.Address
	}
	r.shops[id] = s
	return s, nil
}

func (r *memoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.shops[id]; !ok {
		return ErrNotFound
	}
	delete(r.shops, id)
	return nil
}
