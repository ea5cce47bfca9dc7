package user

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tracepoint/tracepoint/internal/auth"
	"github.com/tracepoint/tracepoint/internal/checkin"
	"github.com/tracepoint/tracepoint/internal/httpx"
)

func newTestService() (*Service, Repository, checkin.Repository) {
	repo := NewMemoryRepository()
	checkins := checkin.NewMemoryRepository()
	tokens := auth.NewTokens("test-secret", time.Hour)
	return NewService(repo, checkins, tokens), repo, checkins
}

func TestSignupAndLogin(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	u, token, err := svc.Signup(ctx, SignupInput{Phone: "0900000001", Password: "hunter2", Name: "Ada"})
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if token == "" {
		t.Fatalf("expected a signed token")
	}
	if u.Status != StatusLow {
		t.Fatalf("expected default status Low, got %s", u.Status)
	}
	if bytes.Equal(u.PasswordHash, []byte("hunter2")) {
		t.Fatalf("password stored unhashed")
	}

	logged, token2, err := svc.Login(ctx, "0900000001", "hunter2")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if logged.ID != u.ID {
		t.Fatalf("expected user %s, got %s", u.ID, logged.ID)
	}
	if token2 == "" {
		t.Fatalf("expected a fresh token on login")
	}
}

func TestSignupDuplicatePhoneWritesNothing(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()

	if _, _, err := svc.Signup(ctx, SignupInput{Phone: "0900000001", Password: "first"}); err != nil {
		t.Fatalf("first signup: %v", err)
	}

	_, _, err := svc.Signup(ctx, SignupInput{Phone: "0900000001", Password: "second"})
	var appErr *httpx.Error
	if !errors.As(err, &appErr) || appErr.Kind != httpx.KindConflict {
		t.Fatalf("expected conflict, got %v", err)
	}

	users, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("expected 1 user after duplicate signup, got %d", len(users))
	}
}

func TestLoginUniformUnauthorized(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	if _, _, err := svc.Signup(ctx, SignupInput{Phone: "0900000001", Password: "hunter2"}); err != nil {
		t.Fatalf("signup: %v", err)
	}

	_, _, unknownPhoneErr := svc.Login(ctx, "0999999999", "hunter2")
	_, _, wrongPasswordErr := svc.Login(ctx, "0900000001", "wrong")

	for _, err := range []error{unknownPhoneErr, wrongPasswordErr} {
		var appErr *httpx.Error
		if !errors.As(err, &appErr) || appErr.Kind != httpx.KindUnauthorized {
			t.Fatalf("expected unauthorized, got %v", err)
		}
	}
	if unknownPhoneErr.Error() != wrongPasswordErr.Error() {
		t.Fatalf("unauthorized messages differ: %q vs %q", unknownPhoneErr, wrongPasswordErr)
	}
}

func TestUpdatePreservesAbsentFields(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	created, _, err := svc.Signup(ctx, SignupInput{Phone: "0900000001", Password: "hunter2", Name: "Ada", Gender: "F"})
	if err != nil {
		t.Fatalf("signup: %v", err)
	}

	name := "Grace"
	updated, err := svc.Update(ctx, created.ID, UpdateInput{Name: &name})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if updated.Name != "Grace" {
		t.Fatalf("expected name Grace, got %s", updated.Name)
	}
	if updated.Phone != created.Phone {
		t.Fatalf("phone changed by name-only update")
	}
	if updated.Status != created.Status {
		t.Fatalf("status changed by name-only update")
	}
	if !bytes.Equal(updated.PasswordHash, created.PasswordHash) {
		t.Fatalf("password hash changed by name-only update")
	}
}

func TestUpdateRehashesPassword(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	created, _, err := svc.Signup(ctx, SignupInput{Phone: "0900000001", Password: "old-pass"})
	if err != nil {
		t.Fatalf("signup: %v", err)
	}

	newPass := "new-pass"
	updated, err := svc.Update(ctx, created.ID, UpdateInput{Password: &newPass})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if bytes.Equal(updated.PasswordHash, created.PasswordHash) {
		t.Fatalf("expected password hash to change")
	}

	if _, _, err := svc.Login(ctx, "0900000001", "old-pass"); err == nil {
		t.Fatalf("old password still accepted")
	}
	if _, _, err := svc.Login(ctx, "0900000001", "new-pass"); err != nil {
		t.Fatalf("new password rejected: %v", err)
	}
}

func TestUpdateMissingUser(t *testing.T) {
	svc, _, _ := newTestService()

	name := "Nobody"
	_, err := svc.Update(context.Background(), "missing-id", UpdateInput{Name: &name})
	var appErr *httpx.Error
	if !errors.As(err, &appErr) || appErr.Kind != httpx.KindNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestResetDeletesEverything(t *testing.T) {
	svc, repo, checkins := newTestService()
	ctx := context.Background()

	created, _, err := svc.Signup(ctx, SignupInput{Phone: "0900000001", Password: "hunter2"})
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	err = checkins.Create(ctx, checkin.CheckIn{ID: "c1", UserID: created.ID, ShopID: "s1", At: time.Now().UTC()})
	if err != nil {
		t.Fatalf("create check-in: %v", err)
	}

	if err := svc.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}

	users, _ := repo.List(ctx)
	if len(users) != 0 {
		t.Fatalf("expected zero users after reset, got %d", len(users))
	}
	remaining, _ := checkins.ListByUser(ctx, created.ID)
	if len(remaining) != 0 {
		t.Fatalf("expected zero check-ins after reset, got %d", len(remaining))
	}
}
