package domain

import "time"

// User models an authenticated actor in the system. PasswordHash is never
// serialized; the role model is a single admin flag.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	IsAdmin      bool      `json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
}
