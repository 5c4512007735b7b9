package repositories

import (
	"context"
	"fmt"

	"github.com/Zhasna/Mental-Wellness-App/internal/database"
	"github.com/Zhasna/Mental-Wellness-App/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type EntryRepository struct {
	pool *pgxpool.Pool
}

func NewEntryRepository(db *database.DB) *EntryRepository {
	return &EntryRepository{pool: db.Pool}
}

func scanEntryRow(scanner rowScanner) (*models.Entry, error) {
	var entry models.Entry
	var mood *string

	err := scanner.Scan(
		&entry.ID, &entry.UserID, &entry.EntryDate, &mood, &entry.Content, &entry.CreatedAt,
	)
	if err != nil {
		return nil, database.MapPostgresError(err)
	}

	if mood != nil {
		entry.Mood = *mood
	}

	return &entry, nil
}

func scanEntryRows(rows pgx.Rows) ([]*models.Entry, error) {
	defer rows.Close()

	entries := make([]*models.Entry, 0)

	for rows.Next() {
		entry, err := scanEntryRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return entries, nil
}

func (r *EntryRepository) Create(ctx context.Context, entry *models.Entry) (*models.Entry, error) {
	query := `
		INSERT INTO entries (user_id, entry_date, mood, content)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, entry_date, mood, content, created_at
	`

	created, err := scanEntryRow(r.pool.QueryRow(ctx, query,
		entry.UserID, entry.EntryDate, entry.Mood, entry.Content,
	))
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (r *EntryRepository) ListByUser(ctx context.Context, userID int64) ([]*models.Entry, error) {
	query := `
		SELECT id, user_id, entry_date, mood, content, created_at
		FROM entries WHERE user_id = $1
		ORDER BY entry_date DESC, id DESC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}

	return scanEntryRows(rows)
}

// Update rewrites an entry the caller owns. The user_id predicate makes a
// foreign entry indistinguishable from a missing one.
func (r *EntryRepository) Update(ctx context.Context, entry *models.Entry) error {
	query := `
		UPDATE entries SET entry_date = $1, mood = $2, content = $3
		WHERE id = $4 AND user_id = $5
	`

	result, err := r.pool.Exec(ctx, query,
		entry.EntryDate, entry.Mood, entry.Content, entry.ID, entry.UserID,
	)
	if err != nil {
		return database.MapPostgresError(err)
	}

	if result.RowsAffected() == 0 {
		return models.ErrNotFound
	}

	return nil
}

func (r *EntryRepository) Delete(ctx context.Context, id, userID int64) error {
	query := `DELETE FROM entries WHERE id = $1 AND user_id = $2`

	result, err := r.pool.Exec(ctx, query, id, userID)
	if err != nil {
		return database.MapPostgresError(err)
	}

	if result.RowsAffected() == 0 {
		return models.ErrNotFound
	}

	return nil
}
