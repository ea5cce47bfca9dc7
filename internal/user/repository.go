package user

import (
	"context"
	"errors"
)

var (
	// ErrNotFound indicates the user id or phone has no record.
	ErrNotFound = errors.New("user not found")
	// ErrPhoneExists indicates the unique phone constraint was violated.
	ErrPhoneExists = errors.New("user already exists")
)

// UpdateFields is a per-field patch: nil pointers leave the stored value
// untouched, set pointers overwrite it.
type UpdateFields struct {
	Phone        *string
	PasswordHash []byte
	Name         *string
	Gender       *string
	Status       *Status
}

// Repository persists users.
type Repository interface {
	Create(ctx context.Context, u User) error
	FindByID(ctx context.Context, id string) (User, error)
	FindByPhone(ctx context.Context, phone string) (User, error)
	List(ctx context.Context) ([]User, error)
	Update(ctx context.Context, id string, fields UpdateFields) (User, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
	// ElevateToHigh marks every listed user High unless already Diagnosed.
	ElevateToHigh(ctx context.Context, ids []string) error
	DeleteAll(ctx context.Context) error
}
