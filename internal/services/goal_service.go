package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/Zhasna/Mental-Wellness-App/internal/models"
)

// GoalRepository defines the goal persistence operations
type GoalRepository interface {
	Create(ctx context.Context, goal *models.Goal) (*models.Goal, error)
	ListByUser(ctx context.Context, userID int64) ([]*models.Goal, error)
	SetCompleted(ctx context.Context, id, userID int64, completed bool) error
	Delete(ctx context.Context, id, userID int64) error
}

// GoalService handles goal business logic
type GoalService struct {
	repo   GoalRepository
	logger *slog.Logger
}

func NewGoalService(repo GoalRepository, logger *slog.Logger) *GoalService {
	return &GoalService{repo: repo, logger: logger}
}

func (s *GoalService) Create(ctx context.Context, userID int64, title, description string, targetDate *time.Time) (*models.Goal, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	if title == "" || description == "" {
		return nil, models.ErrBadRequest
	}

	goal, err := s.repo.Create(ctx, &models.Goal{
		UserID:      userID,
		Title:       title,
		Description: description,
		TargetDate:  targetDate,
	})
	if err != nil {
		s.logger.Error("failed to create goal", slog.Int64("user_id", userID), slog.Any("error", err))
		return nil, models.ErrInternalServer
	}

	return goal, nil
}

func (s *GoalService) List(ctx context.Context, userID int64) ([]*models.Goal, error) {
	goals, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("failed to list goals", slog.Int64("user_id", userID), slog.Any("error", err))
		return nil, models.ErrInternalServer
	}
	return goals, nil
}

func (s *GoalService) SetCompleted(ctx context.Context, userID, goalID int64, completed bool) error {
	err := s.repo.SetCompleted(ctx, goalID, userID, completed)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return models.ErrNotFound
		}
		s.logger.Error("failed to update goal", slog.Int64("user_id", userID), slog.Any("error", err))
		return models.ErrInternalServer
	}
	return nil
}

func (s *GoalService) Delete(ctx context.Context, userID, goalID int64) error {
	err := s.repo.Delete(ctx, goalID, userID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return models.ErrNotFound
		}
		s.logger.Error("failed to delete goal", slog.Int64("user_id", userID), slog.Any("error", err))
		return models.ErrInternalServer
	}
	return nil
}
