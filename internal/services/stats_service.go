package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Zhasna/Mental-Wellness-App/internal/models"
	"github.com/Zhasna/Mental-Wellness-App/internal/repositories"
)

// defaultMood is reported when the user has no mood-bearing entries yet.
const defaultMood = "😐"

// StatsRepository defines the aggregate read the dashboard needs
type StatsRepository interface {
	GetSnapshot(ctx context.Context, userID int64) (*repositories.StatsSnapshot, error)
}

// StatsService assembles the dashboard statistics for one user
type StatsService struct {
	repo   StatsRepository
	logger *slog.Logger
}

func NewStatsService(repo StatsRepository, logger *slog.Logger) *StatsService {
	return &StatsService{repo: repo, logger: logger}
}

func (s *StatsService) Get(ctx context.Context, userID int64) (*models.Stats, error) {
	snapshot, err := s.repo.GetSnapshot(ctx, userID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrNotFound
		}
		s.logger.Error("failed to read stats", slog.Int64("user_id", userID), slog.Any("error", err))
		return nil, models.ErrInternalServer
	}

	stats := &models.Stats{
		Username:         snapshot.Username,
		TotalEntries:     snapshot.TotalEntries,
		TotalGoals:       snapshot.TotalGoals,
		CompletedGoals:   snapshot.CompletedGoals,
		CurrentMood:      defaultMood,
		MoodDistribution: snapshot.MoodDistribution,
	}

	// Integer percentage, truncated. No goals means zero progress.
	if snapshot.TotalGoals > 0 {
		stats.GoalsProgress = snapshot.CompletedGoals * 100 / snapshot.TotalGoals
	}

	if snapshot.LatestMood != nil && *snapshot.LatestMood != "" {
		stats.CurrentMood = *snapshot.LatestMood
	}

	return stats, nil
}
