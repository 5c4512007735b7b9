package models

import "time"

// Entry is a dated journal record owned by a single user.
type Entry struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	EntryDate time.Time `json:"entryDate"`
	Mood      string    `json:"mood"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}
