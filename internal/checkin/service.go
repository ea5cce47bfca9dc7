package checkin

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tracepoint/tracepoint/internal/httpx"
)

// Service records and queries check-in events.
type Service struct {
	repo Repository
}

// NewService creates a check-in service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateInput carries the fields for a new check-in. A zero At means "now".
type CreateInput struct {
	UserID string
	ShopID string
	At     time.Time
}

// Create records one visit. Check-ins are never updated afterwards.
func (s *Service) Create(ctx context.Context, input CreateInput) (CheckIn, error) {
	at := input.At
	if at.IsZero() {
		at = time.Now().UTC()
	}

	c := CheckIn{
		ID:     uuid.NewString(),
		UserID: input.UserID,
		ShopID: input.ShopID,
		At:     at.UTC(),
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return CheckIn{}, httpx.Internal(err)
	}
	return c, nil
}

// ListByUser returns a user's check-in history, newest first.
func (s *Service) ListByUser(ctx context.Context, userID string) ([]CheckIn, error) {
	out, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, httpx.Internal(err)
	}
	return out, nil
}

// ListByShop returns a shop's check-in history, newest first.
func (s *Service) ListByShop(ctx context.Context, shopID string) ([]CheckIn, error) {
	out, err := s.repo.ListByShop(ctx, shopID)
	if err != nil {
		return nil, httpx.Internal(err)
	}
	return out, nil
}
