package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Zhasna/Mental-Wellness-App/internal/database"
	"github.com/jackc/pgx/v5"
)

// Gratitude notes share the entries table but are tagged in the content
// column; they are excluded from every statistic.
const gratitudePrefix = "[gratitude]%"

type StatsRepository struct {
	db *database.DB
}

func NewStatsRepository(db *database.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

// StatsSnapshot is the raw per-user aggregate read in one transaction so
// the counts are mutually consistent.
type StatsSnapshot struct {
	Username         string
	TotalEntries     int
	TotalGoals       int
	CompletedGoals   int
	LatestMood       *string
	MoodDistribution map[string]int
}

func (r *StatsRepository) GetSnapshot(ctx context.Context, userID int64) (*StatsSnapshot, error) {
	snapshot := &StatsSnapshot{
		MoodDistribution: make(map[string]int),
	}

	err := r.db.WithTransaction(ctx, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `SELECT name FROM users WHERE id = $1`, userID).
			Scan(&snapshot.Username)
		if err != nil {
			return database.MapPostgresError(err)
		}

		err = tx.QueryRow(ctx, `
			SELECT COUNT(*) FROM entries
			WHERE user_id = $1 AND content NOT LIKE $2
		`, userID, gratitudePrefix).Scan(&snapshot.TotalEntries)
		if err != nil {
			return fmt.Errorf("failed to count entries: %w", err)
		}

		err = tx.QueryRow(ctx, `
			SELECT COUNT(*), COUNT(*) FILTER (WHERE completed)
			FROM goals WHERE user_id = $1
		`, userID).Scan(&snapshot.TotalGoals, &snapshot.CompletedGoals)
		if err != nil {
			return fmt.Errorf("failed to count goals: %w", err)
		}

		err = tx.QueryRow(ctx, `
			SELECT mood FROM entries
			WHERE user_id = $1 AND mood IS NOT NULL AND content NOT LIKE $2
			ORDER BY created_at DESC, id DESC
			LIMIT 1
		`, userID, gratitudePrefix).Scan(&snapshot.LatestMood)
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("failed to read latest mood: %w", err)
		}

		rows, err := tx.Query(ctx, `
			SELECT mood, COUNT(*) FROM entries
			WHERE user_id = $1 AND mood IS NOT NULL AND content NOT LIKE $2
			GROUP BY mood
		`, userID, gratitudePrefix)
		if err != nil {
			return fmt.Errorf("failed to query mood distribution: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var mood string
			var count int
			if err := rows.Scan(&mood, &count); err != nil {
				return fmt.Errorf("failed to scan mood distribution: %w", err)
			}
			snapshot.MoodDistribution[mood] = count
		}

		return rows.Err()
	})
	if err != nil {
		return nil, err
	}

	return snapshot, nil
}
