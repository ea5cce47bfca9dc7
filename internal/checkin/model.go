package checkin

import "time"

// CheckIn records a single visit of a user to a shop. Records are immutable
// once written.
type CheckIn struct {
	ID     string    `bson:"_id" json:"_id"`
	UserID string    `bson:"user" json:"user"`
	ShopID string    `bson:"shop" json:"shop"`
	At     time.Time `bson:"checked_in_at" json:"checked_in_at"`
}

// Window is a half-open time interval [From, To) at one shop, used as a
// coarse contact window.
type Window struct {
	ShopID string
	From   time.Time
	To     time.Time
}

// Contains reports whether a check-in at shopID/at falls inside the window.
func (w Window) Contains(shopID string, at time.Time) bool {
	return w.ShopID == shopID && !at.Before(w.From) && at.Before(w.To)
}
