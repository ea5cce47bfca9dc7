package exposure

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/tracepoint/tracepoint/internal/checkin"
	"github.com/tracepoint/tracepoint/internal/httpx"
	"github.com/tracepoint/tracepoint/internal/logging"
	"github.com/tracepoint/tracepoint/internal/user"
)

type fixture struct {
	svc      *Service
	users    user.Repository
	checkins checkin.Repository
	now      time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	users := user.NewMemoryRepository()
	checkins := checkin.NewMemoryRepository()
	svc := NewService(users, checkins, logging.Discard())

	// Fixed mid-day reference so window arithmetic is deterministic.
	now := time.Date(2026, time.March, 15, 13, 30, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	return &fixture{svc: svc, users: users, checkins: checkins, now: now}
}

func (f *fixture) addUser(t *testing.T, status user.Status) string {
	t.Helper()
	id := uuid.NewString()
	err := f.users.Create(context.Background(), user.User{
		ID:     id,
		Phone:  id,
		Status: status,
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	return id
}

func (f *fixture) addCheckIn(t *testing.T, userID, shopID string, at time.Time) {
	t.Helper()
	err := f.checkins.Create(context.Background(), checkin.CheckIn{
		ID:     uuid.NewString(),
		UserID: userID,
		ShopID: shopID,
		At:     at,
	})
	if err != nil {
		t.Fatalf("create check-in: %v", err)
	}
}

func (f *fixture) status(t *testing.T, id string) user.Status {
	t.Helper()
	u, err := f.users.FindByID(context.Background(), id)
	if err != nil {
		t.Fatalf("find user: %v", err)
	}
	return u.Status
}

func TestDiagnoseMissingUser(t *testing.T) {
	f := newFixture(t)

	err := f.svc.Diagnose(context.Background(), "missing-id")
	var appErr *httpx.Error
	if !errors.As(err, &appErr) || appErr.Kind != httpx.KindNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDiagnoseElevatesSameDaySameShopContact(t *testing.T) {
	f := newFixture(t)
	a := f.addUser(t, user.StatusLow)
	b := f.addUser(t, user.StatusLow)

	day := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	f.addCheckIn(t, a, "shop-s", day.Add(9*time.Hour))
	f.addCheckIn(t, b, "shop-s", day.Add(21*time.Hour))

	if err := f.svc.Diagnose(context.Background(), a); err != nil {
		t.Fatalf("diagnose: %v", err)
	}

	if got := f.status(t, a); got != user.StatusDiagnosed {
		t.Fatalf("expected A Diagnosed, got %s", got)
	}
	if got := f.status(t, b); got != user.StatusHigh {
		t.Fatalf("expected B High, got %s", got)
	}
}

func TestDiagnoseRespectsMidnightBoundary(t *testing.T) {
	f := newFixture(t)
	a := f.addUser(t, user.StatusLow)
	b := f.addUser(t, user.StatusLow)

	day := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	f.addCheckIn(t, a, "shop-s", day.Add(23*time.Hour+59*time.Minute))
	// One minute past midnight the next day: same shop, different bucket.
	f.addCheckIn(t, b, "shop-s", day.Add(24*time.Hour+time.Minute))

	if err := f.svc.Diagnose(context.Background(), a); err != nil {
		t.Fatalf("diagnose: %v", err)
	}

	if got := f.status(t, b); got != user.StatusLow {
		t.Fatalf("expected B unaffected across midnight, got %s", got)
	}
}

func TestDiagnoseIgnoresDifferentShop(t *testing.T) {
	f := newFixture(t)
	a := f.addUser(t, user.StatusLow)
	b := f.addUser(t, user.StatusLow)

	day := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	f.addCheckIn(t, a, "shop-s", day.Add(9*time.Hour))
	f.addCheckIn(t, b, "shop-t", day.Add(9*time.Hour))

	if err := f.svc.Diagnose(context.Background(), a); err != nil {
		t.Fatalf("diagnose: %v", err)
	}

	if got := f.status(t, b); got != user.StatusLow {
		t.Fatalf("expected B unaffected in different shop, got %s", got)
	}
}

func TestDiagnoseIgnoresCheckInsOlderThanWindow(t *testing.T) {
	f := newFixture(t)
	a := f.addUser(t, user.StatusLow)
	b := f.addUser(t, user.StatusLow)

	old := f.now.Add(-15 * 24 * time.Hour)
	f.addCheckIn(t, a, "shop-s", old)
	f.addCheckIn(t, b, "shop-s", old)

	if err := f.svc.Diagnose(context.Background(), a); err != nil {
		t.Fatalf("diagnose: %v", err)
	}

	if got := f.status(t, b); got != user.StatusLow {
		t.Fatalf("expected B unaffected by 15-day-old overlap, got %s", got)
	}
}

func TestDiagnoseIsIdempotent(t *testing.T) {
	f := newFixture(t)
	a := f.addUser(t, user.StatusDiagnosed)

	if err := f.svc.Diagnose(context.Background(), a); err != nil {
		t.Fatalf("re-diagnose: %v", err)
	}
	if got := f.status(t, a); got != user.StatusDiagnosed {
		t.Fatalf("expected A to stay Diagnosed, got %s", got)
	}
}

func TestDiagnosePreservesDiagnosedContacts(t *testing.T) {
	f := newFixture(t)
	a := f.addUser(t, user.StatusLow)
	b := f.addUser(t, user.StatusDiagnosed)

	day := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	f.addCheckIn(t, a, "shop-s", day.Add(9*time.Hour))
	f.addCheckIn(t, b, "shop-s", day.Add(10*time.Hour))

	if err := f.svc.Diagnose(context.Background(), a); err != nil {
		t.Fatalf("diagnose: %v", err)
	}

	if got := f.status(t, b); got != user.StatusDiagnosed {
		t.Fatalf("expected Diagnosed contact preserved, got %s", got)
	}
}

func TestDiagnoseCollapsesDuplicateOverlaps(t *testing.T) {
	f := newFixture(t)
	a := f.addUser(t, user.StatusLow)
	b := f.addUser(t, user.StatusLow)

	day := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	// Multiple visits by both on the same day must elevate B exactly once.
	f.addCheckIn(t, a, "shop-s", day.Add(9*time.Hour))
	f.addCheckIn(t, a, "shop-s", day.Add(17*time.Hour))
	f.addCheckIn(t, b, "shop-s", day.Add(10*time.Hour))
	f.addCheckIn(t, b, "shop-s", day.Add(18*time.Hour))

	if err := f.svc.Diagnose(context.Background(), a); err != nil {
		t.Fatalf("diagnose: %v", err)
	}
	if got := f.status(t, b); got != user.StatusHigh {
		t.Fatalf("expected B High, got %s", got)
	}
}

func TestDayBucketHalfOpen(t *testing.T) {
	at := time.Date(2026, time.March, 10, 23, 59, 59, 0, time.UTC)
	w := dayBucket("shop-s", at)

	if !w.Contains("shop-s", at) {
		t.Fatalf("check-in should fall inside its own bucket")
	}
	if w.Contains("shop-s", w.To) {
		t.Fatalf("bucket upper bound must be exclusive")
	}
	if !w.Contains("shop-s", w.From) {
		t.Fatalf("bucket lower bound must be inclusive")
	}
}
