package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/Zhasna/Mental-Wellness-App/internal/models"
)

// EntryRepository defines the journal entry persistence operations
type EntryRepository interface {
	Create(ctx context.Context, entry *models.Entry) (*models.Entry, error)
	ListByUser(ctx context.Context, userID int64) ([]*models.Entry, error)
	Update(ctx context.Context, entry *models.Entry) error
	Delete(ctx context.Context, id, userID int64) error
}

// EntryService handles journal entry business logic
type EntryService struct {
	repo   EntryRepository
	logger *slog.Logger
}

func NewEntryService(repo EntryRepository, logger *slog.Logger) *EntryService {
	return &EntryService{repo: repo, logger: logger}
}

func (s *EntryService) Create(ctx context.Context, userID int64, entryDate time.Time, mood, content string) (*models.Entry, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, models.ErrBadRequest
	}

	entry, err := s.repo.Create(ctx, &models.Entry{
		UserID:    userID,
		EntryDate: entryDate,
		Mood:      mood,
		Content:   content,
	})
	if err != nil {
		s.logger.Error("failed to create entry", slog.Int64("user_id", userID), slog.Any("error", err))
		return nil, models.ErrInternalServer
	}

	return entry, nil
}

func (s *EntryService) List(ctx context.Context, userID int64) ([]*models.Entry, error) {
	entries, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("failed to list entries", slog.Int64("user_id", userID), slog.Any("error", err))
		return nil, models.ErrInternalServer
	}
	return entries, nil
}

func (s *EntryService) Update(ctx context.Context, userID, entryID int64, entryDate time.Time, mood, content string) error {
	content = strings.TrimSpace(content)
	if content == "" {
		return models.ErrBadRequest
	}

	err := s.repo.Update(ctx, &models.Entry{
		ID:        entryID,
		UserID:    userID,
		EntryDate: entryDate,
		Mood:      mood,
		Content:   content,
	})
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return models.ErrNotFound
		}
		s.logger.Error("failed to update entry", slog.Int64("user_id", userID), slog.Any("error", err))
		return models.ErrInternalServer
	}

	return nil
}

func (s *EntryService) Delete(ctx context.Context, userID, entryID int64) error {
	err := s.repo.Delete(ctx, entryID, userID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return models.ErrNotFound
		}
		s.logger.Error("failed to delete entry", slog.Int64("user_id", userID), slog.Any("error", err))
		return models.ErrInternalServer
	}
	return nil
}
