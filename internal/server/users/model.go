package users

import "time"

// User is a registered identity. Immutable after creation.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
