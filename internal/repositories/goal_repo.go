package repositories

import (
	"context"
	"fmt"

	"github.com/Zhasna/Mental-Wellness-App/internal/database"
	"github.com/Zhasna/Mental-Wellness-App/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type GoalRepository struct {
	pool *pgxpool.Pool
}

func NewGoalRepository(db *database.DB) *GoalRepository {
	return &GoalRepository{pool: db.Pool}
}

func scanGoalRow(scanner rowScanner) (*models.Goal, error) {
	var goal models.Goal
	var description *string

	err := scanner.Scan(
		&goal.ID, &goal.UserID, &goal.Title, &description,
		&goal.TargetDate, &goal.Completed, &goal.CreatedAt,
	)
	if err != nil {
		return nil, database.MapPostgresError(err)
	}

	if description != nil {
		goal.Description = *description
	}

	return &goal, nil
}

func scanGoalRows(rows pgx.Rows) ([]*models.Goal, error) {
	defer rows.Close()

	goals := make([]*models.Goal, 0)

	for rows.Next() {
		goal, err := scanGoalRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan goal: %w", err)
		}
		goals = append(goals, goal)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return goals, nil
}

func (r *GoalRepository) Create(ctx context.Context, goal *models.Goal) (*models.Goal, error) {
	query := `
		INSERT INTO goals (user_id, title, description, target_date)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, title, description, target_date, completed, created_at
	`

	created, err := scanGoalRow(r.pool.QueryRow(ctx, query,
		goal.UserID, goal.Title, goal.Description, goal.TargetDate,
	))
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (r *GoalRepository) ListByUser(ctx context.Context, userID int64) ([]*models.Goal, error) {
	query := `
		SELECT id, user_id, title, description, target_date, completed, created_at
		FROM goals WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query goals: %w", err)
	}

	return scanGoalRows(rows)
}

func (r *GoalRepository) SetCompleted(ctx context.Context, id, userID int64, completed bool) error {
	query := `UPDATE goals SET completed = $1 WHERE id = $2 AND user_id = $3`

	result, err := r.pool.Exec(ctx, query, completed, id, userID)
	if err != nil {
		return database.MapPostgresError(err)
	}

	if result.RowsAffected() == 0 {
		return models.ErrNotFound
	}

	return nil
}

func (r *GoalRepository) Delete(ctx context.Context, id, userID int64) error {
	query := `DELETE FROM goals WHERE id = $1 AND user_id = $2`

	result, err := r.pool.Exec(ctx, query, id, userID)
	if err != nil {
		return database.MapPostgresError(err)
	}

	if result.RowsAffected() == 0 {
		return models.ErrNotFound
	}

	return nil
}
