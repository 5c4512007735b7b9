package models

import "time"

// Mood is a standalone timestamped mood log, distinct from the mood label
// attached to a journal entry.
type Mood struct {
	ID       int64     `json:"id"`
	UserID   int64     `json:"userId"`
	Mood     string    `json:"mood"`
	LoggedAt time.Time `json:"loggedAt"`
}

// Stats aggregates a single user's journal activity.
type Stats struct {
	Username         string         `json:"username"`
	TotalEntries     int            `json:"totalEntries"`
	TotalGoals       int            `json:"totalGoals"`
	CompletedGoals   int            `json:"completedGoals"`
	GoalsProgress    int            `json:"goalsProgress"`
	CurrentMood      string         `json:"currentMood"`
	MoodDistribution map[string]int `json:"moodDistribution"`
}
