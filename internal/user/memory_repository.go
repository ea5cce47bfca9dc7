package user

import (
	"context"
	"sync"
)

type memoryRepository struct {
	mu    sync.RWMutex
	users map[string]User
}

// NewMemoryRepository builds an in-memory user store for testing and local
// runs without a database.
func NewMemoryRepository() Repository {
	return &memoryRepository{users: make(map[string]User)}
}

func (r *memoryRepository) Create(_ context.Context, u User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Phone == u.Phone {
			return ErrPhoneExists
		}
	}
	r.users[u.ID] = u
	return nil
}

func (r *memoryRepository) FindByID(_ context.Context, id string) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}

func (r *memoryRepository) FindByPhone(_ context.Context, phone string) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Phone == phone {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

func (r *memoryRepository) List(_ context.Context) ([]User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	users := make([]User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, u)
	}
	return users, nil
}

func (r *memoryRepository) Update(_ context.Context, id string, fields UpdateFields) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return User{}, ErrNotFound
	}
	if fields.Phone != nil {
		for otherID, other := range r.users {
			if otherID != id && other.Phone == *fields.Phone {
				return User{}, ErrPhoneExists
			}
		}
		u.Phone = *fields.Phone
	}
	if fields.PasswordHash != nil {
		u.PasswordHash = fields.PasswordHash
	}
	if fields.Name != nil {
		u.Name = *fields.Name
	}
	if fields.Gender != nil {
		u.Gender = *fields.Gender
	}
	if fields.Status != nil {
		u.Status = *fields.Status
	}
	r.users[id] = u
	return u, nil
}

func (r *memoryRepository) UpdateStatus(_ context.Context, id string, status Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return ErrNotFound
	}
	u.Status = status
	r.users[id] = u
	return nil
}

func (r *memoryRepository) ElevateToHigh(_ context.Context, ids []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range ids {
		u, ok := r.users[id]
		if !ok || u.Status == StatusDiagnosed {
			continue
		}
		u.Status = StatusHigh
		r.users[id] = u
	}
	return nil
}

func (r *memoryRepository) DeleteAll(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users = make(map[string]User)
	return nil
}
