package entity

import "time"

// User is the authenticated account as reported by the backend.
type User struct {
	ID         int64
	DocumentID string
	Username   string
	Email      string
	Provider   string
	Confirmed  bool
	Blocked    bool
	CreatedAt  time.Time
}
