package repositories

import (
	"context"
	"fmt"

	"github.com/Zhasna/Mental-Wellness-App/internal/database"
	"github.com/Zhasna/Mental-Wellness-App/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type MoodRepository struct {
	pool *pgxpool.Pool
}

func NewMoodRepository(db *database.DB) *MoodRepository {
	return &MoodRepository{pool: db.Pool}
}

func (r *MoodRepository) Create(ctx context.Context, mood *models.Mood) (*models.Mood, error) {
	query := `
		INSERT INTO moods (user_id, mood)
		VALUES ($1, $2)
		RETURNING id, user_id, mood, logged_at
	`

	var created models.Mood
	err := r.pool.QueryRow(ctx, query, mood.UserID, mood.Mood).Scan(
		&created.ID, &created.UserID, &created.Mood, &created.LoggedAt,
	)
	if err != nil {
		return nil, database.MapPostgresError(err)
	}

	return &created, nil
}

func (r *MoodRepository) ListByUser(ctx context.Context, userID int64) ([]*models.Mood, error) {
	query := `
		SELECT id, user_id, mood, logged_at
		FROM moods WHERE user_id = $1
		ORDER BY logged_at DESC, id DESC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query moods: %w", err)
	}
	defer rows.Close()

	moods := make([]*models.Mood, 0)
	for rows.Next() {
		var mood models.Mood
		if err := rows.Scan(&mood.ID, &mood.UserID, &mood.Mood, &mood.LoggedAt); err != nil {
			return nil, fmt.Errorf("failed to scan mood: %w", err)
		}
		moods = append(moods, &mood)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return moods, nil
}
