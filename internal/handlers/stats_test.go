package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Zhasna/Mental-Wellness-App/internal/handlers"
	"github.com/Zhasna/Mental-Wellness-App/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestGetStats(t *testing.T) {
	mockService := &handlers.MockStatsService{
		GetFunc: func(ctx context.Context, userID int64) (*models.Stats, error) {
			assert.Equal(t, int64(42), userID)
			return &models.Stats{
				Username:         "alice",
				TotalEntries:     10,
				TotalGoals:       3,
				CompletedGoals:   2,
				GoalsProgress:    66,
				CurrentMood:      "😊",
				MoodDistribution: map[string]int{"😊": 6, "😢": 4},
			}, nil
		},
	}

	handler := handlers.NewStatsHandler(mockService)
	req := handlers.WithSessionContext(
		handlers.NewTestRequest(t, "GET", "/api/stats", nil),
		handlers.TestSession(),
	)

	w := httptest.NewRecorder()
	handler.Get(w, req)

	var stats models.Stats
	handlers.AssertJSONResponse(t, w, http.StatusOK, &stats)
	assert.Equal(t, "alice", stats.Username)
	assert.Equal(t, 66, stats.GoalsProgress)
	assert.Equal(t, "😊", stats.CurrentMood)
}

func TestGetStats_UserGone(t *testing.T) {
	mockService := &handlers.MockStatsService{
		GetFunc: func(ctx context.Context, userID int64) (*models.Stats, error) {
			return nil, models.ErrNotFound
		},
	}

	handler := handlers.NewStatsHandler(mockService)
	req := handlers.WithSessionContext(
		handlers.NewTestRequest(t, "GET", "/api/stats", nil),
		handlers.TestSession(),
	)

	w := httptest.NewRecorder()
	handler.Get(w, req)

	handlers.AssertErrorResponse(t, w, http.StatusNotFound, "not_found")
}
