package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Zhasna/Mental-Wellness-App/internal/auth"
	"github.com/Zhasna/Mental-Wellness-App/internal/models"
	pkghttp "github.com/Zhasna/Mental-Wellness-App/pkg/http"
)

// MoodServiceInterface defines the interface for mood check-in logic
type MoodServiceInterface interface {
	Record(ctx context.Context, userID int64, mood string) (*models.Mood, error)
	List(ctx context.Context, userID int64) ([]*models.Mood, error)
}

// MoodHandler handles mood check-in HTTP requests
type MoodHandler struct {
	service MoodServiceInterface
}

func NewMoodHandler(service MoodServiceInterface) *MoodHandler {
	return &MoodHandler{service: service}
}

// RecordMoodRequest represents the request body for a mood check-in
type RecordMoodRequest struct {
	Mood string `json:"mood" validate:"required,max=50"`
}

func (h *MoodHandler) List(w http.ResponseWriter, r *http.Request) {
	session, _ := auth.SessionFromContext(r.Context())

	moods, err := h.service.List(r.Context(), session.UserID)
	if err != nil {
		pkghttp.WriteInternalError(w, "Failed to load moods")
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, moods)
}

func (h *MoodHandler) Record(w http.ResponseWriter, r *http.Request) {
	session, _ := auth.SessionFromContext(r.Context())

	var req RecordMoodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkghttp.WriteBadRequest(w, "Invalid request body")
		return
	}

	if err := ValidateRequest(req); err != nil {
		pkghttp.WriteBadRequest(w, err.Error())
		return
	}

	mood, err := h.service.Record(r.Context(), session.UserID, req.Mood)
	if err != nil {
		if errors.Is(err, models.ErrBadRequest) {
			pkghttp.WriteBadRequest(w, "Mood must not be empty")
			return
		}
		pkghttp.WriteInternalError(w, "Failed to record mood")
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Mood recorded successfully",
		"moodId":  mood.ID,
	})
}
