package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/Zhasna/Mental-Wellness-App/internal/auth"
	"github.com/Zhasna/Mental-Wellness-App/internal/models"
	pkghttp "github.com/Zhasna/Mental-Wellness-App/pkg/http"
)

// GoalServiceInterface defines the interface for goal logic
type GoalServiceInterface interface {
	Create(ctx context.Context, userID int64, title, description string, targetDate *time.Time) (*models.Goal, error)
	List(ctx context.Context, userID int64) ([]*models.Goal, error)
	SetCompleted(ctx context.Context, userID, goalID int64, completed bool) error
	Delete(ctx context.Context, userID, goalID int64) error
}

// GoalHandler handles goal HTTP requests
type GoalHandler struct {
	service GoalServiceInterface
}

func NewGoalHandler(service GoalServiceInterface) *GoalHandler {
	return &GoalHandler{service: service}
}

// CreateGoalRequest represents the request body for creating a goal
type CreateGoalRequest struct {
	GoalTitle       string `json:"goalTitle" validate:"required,max=255"`
	GoalDescription string `json:"goalDescription" validate:"required,max=2000"`
	TargetDate      string `json:"targetDate" validate:"omitempty,datetime=2006-01-02"`
}

// UpdateGoalRequest represents the request body for toggling completion
type UpdateGoalRequest struct {
	GoalID    int64 `json:"goalId" validate:"required,gt=0"`
	Completed *bool `json:"completed" validate:"required"`
}

func (h *GoalHandler) List(w http.ResponseWriter, r *http.Request) {
	session, _ := auth.SessionFromContext(r.Context())

	goals, err := h.service.List(r.Context(), session.UserID)
	if err != nil {
		pkghttp.WriteInternalError(w, "Failed to load goals")
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, goals)
}

func (h *GoalHandler) Create(w http.ResponseWriter, r *http.Request) {
	session, _ := auth.SessionFromContext(r.Context())

	var req CreateGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkghttp.WriteBadRequest(w, "Invalid request body")
		return
	}

	if err := ValidateRequest(req); err != nil {
		pkghttp.WriteBadRequest(w, err.Error())
		return
	}

	var targetDate *time.Time
	if req.TargetDate != "" {
		parsed, err := time.Parse(dateLayout, req.TargetDate)
		if err != nil {
			pkghttp.WriteBadRequest(w, "Invalid date format. Use YYYY-MM-DD")
			return
		}
		targetDate = &parsed
	}

	goal, err := h.service.Create(r.Context(), session.UserID, req.GoalTitle, req.GoalDescription, targetDate)
	if err != nil {
		if errors.Is(err, models.ErrBadRequest) {
			pkghttp.WriteBadRequest(w, "Title and description are required")
			return
		}
		pkghttp.WriteInternalError(w, "Failed to save goal")
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Goal created successfully",
		"goalId":  goal.ID,
	})
}

func (h *GoalHandler) Update(w http.ResponseWriter, r *http.Request) {
	session, _ := auth.SessionFromContext(r.Context())

	var req UpdateGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkghttp.WriteBadRequest(w, "Invalid request body")
		return
	}

	if err := ValidateRequest(req); err != nil {
		pkghttp.WriteBadRequest(w, err.Error())
		return
	}

	err := h.service.SetCompleted(r.Context(), session.UserID, req.GoalID, *req.Completed)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			pkghttp.WriteNotFound(w, "Goal not found")
			return
		}
		pkghttp.WriteInternalError(w, "Failed to update goal")
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Goal updated successfully",
	})
}

func (h *GoalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	session, _ := auth.SessionFromContext(r.Context())

	goalID, err := parseIDParam(r, "goalId")
	if err != nil {
		pkghttp.WriteBadRequest(w, "Invalid goal ID format")
		return
	}

	err = h.service.Delete(r.Context(), session.UserID, goalID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			pkghttp.WriteNotFound(w, "Goal not found")
			return
		}
		pkghttp.WriteInternalError(w, "Failed to delete goal")
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Goal deleted successfully",
	})
}
