package user

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tracepoint/tracepoint/internal/auth"
	"github.com/tracepoint/tracepoint/internal/checkin"
	"github.com/tracepoint/tracepoint/internal/httpx"
)

// hashCost matches the cost factor used by the original deployment; changing
// it invalidates no stored hashes but alters the cost of new ones.
const hashCost = 10

const invalidCredentials = "invalid phone or password"

// Service manages the user lifecycle: signup, login, profile updates and the
// destructive bootstrap reset.
type Service struct {
	repo     Repository
	checkins checkin.Repository
	tokens   *auth.Tokens
}

// NewService creates a user service.
func NewService(repo Repository, checkins checkin.Repository, tokens *auth.Tokens) *Service {
	return &Service{repo: repo, checkins: checkins, tokens: tokens}
}

// SignupInput carries the fields accepted at registration.
type SignupInput struct {
	Phone    string
	Password string
	Name     string
	Gender   string
	Status   Status
}

// UpdateInput is a per-field patch; nil means leave unchanged.
type UpdateInput struct {
	Phone    *string
	Password *string
	Name     *string
	Gender   *string
	Status   *Status
}

// Signup registers a new user and returns it along with a fresh bearer token.
// A phone number already in use yields a Conflict.
func (s *Service) Signup(ctx context.Context, input SignupInput) (User, string, error) {
	if _, err := s.repo.FindByPhone(ctx, input.Phone); err == nil {
		return User{}, "", httpx.Conflict("user already exists")
	} else if !errors.Is(err, ErrNotFound) {
		return User{}, "", httpx.Internal(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), hashCost)
	if err != nil {
		return User{}, "", httpx.Internal(err)
	}

	status := input.Status
	if status == "" {
		status = StatusLow
	}
	if !status.Valid() {
		return User{}, "", httpx.Validation("invalid status")
	}

	u := User{
		ID:           uuid.NewString(),
		Phone:        input.Phone,
		PasswordHash: hash,
		Name:         input.Name,
		Gender:       input.Gender,
		Status:       status,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, u); err != nil {
		if errors.Is(err, ErrPhoneExists) {
			return User{}, "", httpx.Conflict("user already exists")
		}
		return User{}, "", httpx.Internal(err)
	}

	token, err := s.tokens.Sign(u.ID, u.Phone)
	if err != nil {
		return User{}, "", httpx.Internal(err)
	}

	return u, token, nil
}

// Login verifies credentials and issues a fresh token. Unknown phone and
// wrong password produce the same Unauthorized message.
func (s *Service) Login(ctx context.Context, phone, password string) (User, string, error) {
	u, err := s.repo.FindByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, "", httpx.Unauthorized(invalidCredentials)
		}
		return User{}, "", httpx.Internal(err)
	}

	if err := bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(password)); err != nil {
		return User{}, "", httpx.Unauthorized(invalidCredentials)
	}

	token, err := s.tokens.Sign(u.ID, u.Phone)
	if err != nil {
		return User{}, "", httpx.Internal(err)
	}

	return u, token, nil
}

// List returns every registered user.
func (s *Service) List(ctx context.Context) ([]User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, httpx.Internal(err)
	}
	return users, nil
}

// Update applies a per-field patch: provided fields overwrite, absent fields
// keep their stored value. A provided password is re-hashed before persisting.
func (s *Service) Update(ctx context.Context, id string, input UpdateInput) (User, error) {
	fields := UpdateFields{
		Phone:  input.Phone,
		Name:   input.Name,
		Gender: input.Gender,
		Status: input.Status,
	}

	if input.Status != nil && !input.Status.Valid() {
		return User{}, httpx.Validation("invalid status")
	}

	if input.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), hashCost)
		if err != nil {
			return User{}, httpx.Internal(err)
		}
		fields.PasswordHash = hash
	}

	u, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			return User{}, httpx.NotFound("user not found")
		case errors.Is(err, ErrPhoneExists):
			return User{}, httpx.Conflict("user already exists")
		default:
			return User{}, httpx.Internal(err)
		}
	}
	return u, nil
}

// Reset unconditionally deletes every user and every check-in. Destructive
// bootstrap operation; callers are expected to gate access.
func (s *Service) Reset(ctx context.Context) error {
	if err := s.repo.DeleteAll(ctx); err != nil {
		return httpx.Internal(err)
	}
	if err := s.checkins.DeleteAll(ctx); err != nil {
		return httpx.Internal(err)
	}
	return nil
}
