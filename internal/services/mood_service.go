package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/Zhasna/Mental-Wellness-App/internal/models"
)

// MoodRepository defines the mood log persistence operations
type MoodRepository interface {
	Create(ctx context.Context, mood *models.Mood) (*models.Mood, error)
	ListByUser(ctx context.Context, userID int64) ([]*models.Mood, error)
}

// MoodService handles quick mood check-in logic
type MoodService struct {
	repo   MoodRepository
	logger *slog.Logger
}

func NewMoodService(repo MoodRepository, logger *slog.Logger) *MoodService {
	return &MoodService{repo: repo, logger: logger}
}

func (s *MoodService) Record(ctx context.Context, userID int64, mood string) (*models.Mood, error) {
	mood = strings.TrimSpace(mood)
	if mood == "" {
		return nil, models.ErrBadRequest
	}

	recorded, err := s.repo.Create(ctx, &models.Mood{
		UserID: userID,
		Mood:   mood,
	})
	if err != nil {
		s.logger.Error("failed to record mood", slog.Int64("user_id", userID), slog.Any("error", err))
		return nil, models.ErrInternalServer
	}

	return recorded, nil
}

func (s *MoodService) List(ctx context.Context, userID int64) ([]*models.Mood, error) {
	moods, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("failed to list moods", slog.Int64("user_id", userID), slog.Any("error", err))
		return nil, models.ErrInternalServer
	}
	return moods, nil
}
