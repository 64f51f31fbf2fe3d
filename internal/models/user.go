// internal/models/user.go
package models

import "time"

// User is a directory profile. Emails and usernames are unique across the
// directory; ID is the identity carried through every showcase operation.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	Bio          string    `json:"bio"`
	Interests    []string  `json:"interests"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
