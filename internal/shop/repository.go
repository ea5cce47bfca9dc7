package shop

import (
	"context"
	"errors"
)

// ErrNotFound indicates the shop id has no record.
var ErrNotFound = errors.New("shop not found")

// UpdateFields is a per-field patch; nil leaves the stored value untouched.
type UpdateFields struct {
	Name    *string
	Address *string
}

// Repository persists shops.
type Repository interface {
	Create(ctx context.Context, s Shop) error
	FindByID(ctx context.Context, id string) (Shop, error)
	List(ctx context.Context) ([]Shop, error)
	Update(ctx context.Context, id string, fields UpdateFields) (Shop, error)
	Delete(ctx context.Context, id string) error
}
