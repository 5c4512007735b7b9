package models

import "time"

// User represents a registered account. PasswordHash is never serialized.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ProfileUpdate carries the optional fields of a profile update. Nil means
// "leave unchanged". NewPasswordHash must already be hashed by the caller.
type ProfileUpdate struct {
	Name            *string
	Email           *string
	NewPasswordHash *string
}

// IsEmpty reports whether the update would change nothing.
func (p ProfileUpdate) IsEmpty() bool {
	return p.Name == nil && p.Email == nil && p.NewPasswordHash == nil
}
