package user

import "time"

// Status is a user's risk classification.
type Status string

const (
	StatusLow       Status = "Low"
	StatusHigh      Status = "High"
	StatusDiagnosed Status = "Diagnosed"
)

// Valid reports whether s is one of the known risk statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusLow, StatusHigh, StatusDiagnosed:
		return true
	}
	return false
}

// User is a registered account. PasswordHash never leaves the process; the
// JSON shape is what handlers return to clients.
type User struct {
	ID           string    `bson:"_id" json:"_id"`
	Phone        string    `bson:"phone" json:"phone"`
	PasswordHash []byte    `bson:"password" json:"-"`
	Name         string    `bson:"name" json:"name"`
	Gender       string    `bson:"gender" json:"gender"`
	Status       Status    `bson:"status" json:"status"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}
