package checkin

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound indicates no check-in matched.
var ErrNotFound = errors.New("check-in not found")

// Repository persists check-in events.
type Repository interface {
	Create(ctx context.Context, c CheckIn) error
	ListByUser(ctx context.Context, userID string) ([]CheckIn, error)
	ListByShop(ctx context.Context, shopID string) ([]CheckIn, error)
	// FindByUserSince returns the user's check-ins with At >= since.
	FindByUserSince(ctx context.Context, userID string, since time.Time) ([]CheckIn, error)
	// FindContacts returns check-ins by users other than excludeUserID whose
	// (shop, timestamp) fall inside any of the given windows.
	FindContacts(ctx context.Context, excludeUserID string, windows []Window) ([]CheckIn, error)
	DeleteAll(ctx context.Context) error
}
