package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Zhasna/Mental-Wellness-App/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoalService_Create_TrimsFields(t *testing.T) {
	var created *models.Goal
	repo := &MockGoalRepository{
		CreateFunc: func(ctx context.Context, goal *models.Goal) (*models.Goal, error) {
			created = goal
			goal.ID = 7
			return goal, nil
		},
	}

	service := NewGoalService(repo, discardLogger())
	target := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	goal, err := service.Create(context.Background(), 42, "  Run a 5K  ", "  Couch to 5K program  ", &target)

	require.NoError(t, err)
	assert.Equal(t, int64(7), goal.ID)
	assert.Equal(t, "Run a 5K", created.Title)
	assert.Equal(t, "Couch to 5K program", created.Description)
}

func TestGoalService_Create_RequiresTitleAndDescription(t *testing.T) {
	var createCalls int
	repo := &MockGoalRepository{
		CreateFunc: func(ctx context.Context, goal *models.Goal) (*models.Goal, error) {
			createCalls++
			return goal, nil
		},
	}
	service := NewGoalService(repo, discardLogger())

	_, err := service.Create(context.Background(), 42, "   ", "description", nil)
	assert.True(t, errors.Is(err, models.ErrBadRequest))

	_, err = service.Create(context.Background(), 42, "title", "   ", nil)
	assert.True(t, errors.Is(err, models.ErrBadRequest))

	assert.Zero(t, createCalls)
}

func TestGoalService_SetCompleted_NotOwned(t *testing.T) {
	repo := &MockGoalRepository{
		SetCompletedFunc: func(ctx context.Context, id, userID int64, completed bool) error {
			return models.ErrNotFound
		},
	}
	service := NewGoalService(repo, discardLogger())

	err := service.SetCompleted(context.Background(), 42, 99, true)
	assert.True(t, errors.Is(err, models.ErrNotFound))
}
