package shop

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/tracepoint/tracepoint/internal/httpx"
)

// Service manages shop records. CRUD only; shops carry no tracing logic.
type Service struct {
	repo Repository
}

// NewService creates a shop service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateInput carries the fields for a new shop.
type CreateInput struct {
	Name    string
	Address string
}

// UpdateInput is a per-field patch; nil means leave unchanged.
type UpdateInput struct {
	Name    *string
	Address *string
}

func (s *Service) Create(ctx context.Context, input CreateInput) (Shop, error) {
	shop := Shop{
		ID:        uuid.NewString(),
		Name:      input.Name,
		Address:   input.Address,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, shop); err != nil {
		return Shop{}, httpx.Internal(err)
	}
	return shop, nil
}

func (s *Service) Get(ctx context.Context, id string) (Shop, error) {
	shop, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Shop{}, httpx.NotFound("shop not found")
		}
		return Shop{}, httpx.Internal(err)
	}
	return shop, nil
}

func (s *Service) List(ctx context.Context) ([]Shop, error) {
	shops, err := s.repo.List(ctx)
	if err != nil {
		return nil, httpx.Internal(err)
	}
	return shops, nil
}

func (s *Service) Update(ctx context.Context, id string, input UpdateInput) (Shop, error) {
	shop, err := s.repo.Update(ctx, id, UpdateFields{Name: input.Name, Address: input.Address})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Shop{}, httpx.NotFound("shop not found")
		}
		return Shop{}, httpx.Internal(err)
	}
	return shop, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return httpx.NotFound("shop not found")
		}
		return httpx.Internal(err)
	}
	return nil
}
