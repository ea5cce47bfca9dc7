package exposure

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/tracepoint/tracepoint/internal/checkin"
	"github.com/tracepoint/tracepoint/internal/httpx"
	"github.com/tracepoint/tracepoint/internal/user"
)

// lookback is how far behind a diagnosis check-ins still count as contacts.
const lookback = 14 * 24 * time.Hour

// Service propagates exposure from a newly diagnosed user to everyone who
// shared a shop with them on the same calendar day within the lookback
// window.
type Service struct {
	users    user.Repository
	checkins checkin.Repository
	logger   *slog.Logger
	now      func() time.Time
}

// NewService creates the propagation engine.
func NewService(users user.Repository, checkins checkin.Repository, logger *slog.Logger) *Service {
	return &Service{users: users, checkins: checkins, logger: logger, now: time.Now}
}

// Diagnose marks the user Diagnosed and elevates every contact to High.
//
// A contact is any other user with a check-in at the same shop on the same
// UTC calendar day as one of the diagnosed user's check-ins from the last 14
// days. The day bucket is the half-open interval [00:00, 24:00); a check-in
// one minute past midnight belongs to the next day and does not overlap.
//
// Re-diagnosing an already Diagnosed user is a no-op beyond re-confirming the
// status. Contacts who are themselves Diagnosed keep that status. Updates are
// not transactional: a partial bulk failure leaves the applied subset applied.
func (s *Service) Diagnose(ctx context.Context, userID string) error {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return httpx.NotFound("user not found")
		}
		return httpx.Internal(err)
	}

	if err := s.users.UpdateStatus(ctx, userID, user.StatusDiagnosed); err != nil {
		return httpx.Internal(err)
	}

	now := s.now().UTC()
	recent, err := s.checkins.FindByUserSince(ctx, userID, now.Add(-lookback))
	if err != nil {
		return httpx.Internal(err)
	}

	windows := contactWindows(recent)
	contacts, err := s.checkins.FindContacts(ctx, userID, windows)
	if err != nil {
		return httpx.Internal(err)
	}

	affected := distinctUsers(contacts)
	if err := s.users.ElevateToHigh(ctx, affected); err != nil {
		return httpx.Internal(err)
	}

	s.logger.Info("exposure propagated",
		slog.String("user_id", userID),
		slog.Int("windows", len(windows)),
		slog.Int("affected", len(affected)),
	)
	return nil
}

// contactWindows derives one day bucket per check-in: same shop, the UTC
// calendar day of the visit. Duplicate buckets are collapsed.
func contactWindows(checkins []checkin.CheckIn) []checkin.Window {
	seen := make(map[checkin.Window]struct{}, len(checkins))
	windows := make([]checkin.Window, 0, len(checkins))
	for _, c := range checkins {
		w := dayBucket(c.ShopID, c.At)
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		windows = append(windows, w)
	}
	return windows
}

// dayBucket returns the half-open calendar-day interval containing at, in UTC.
func dayBucket(shopID string, at time.Time) checkin.Window {
	year, month, day := at.UTC().Date()
	from := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return checkin.Window{ShopID: shopID, From: from, To: from.Add(24 * time.Hour)}
}

func distinctUsers(checkins []checkin.CheckIn) []string {
	seen := make(map[string]struct{}, len(checkins))
	ids := make([]string, 0, len(checkins))
	for _, c := range checkins {
		if _, ok := seen[c.UserID]; ok {
			continue
		}
		seen[c.UserID] = struct{}{}
		ids = append(ids, c.UserID)
	}
	return ids
}
