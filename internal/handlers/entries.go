package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Zhasna/Mental-Wellness-App/internal/auth"
	"github.com/Zhasna/Mental-Wellness-App/internal/models"
	pkghttp "github.com/Zhasna/Mental-Wellness-App/pkg/http"
)

const dateLayout = "2006-01-02"

// EntryServiceInterface defines the interface for journal entry logic
type EntryServiceInterface interface {
	Create(ctx context.Context, userID int64, entryDate time.Time, mood, content string) (*models.Entry, error)
	List(ctx context.Context, userID int64) ([]*models.Entry, error)
	Update(ctx context.Context, userID, entryID int64, entryDate time.Time, mood, content string) error
	Delete(ctx context.Context, userID, entryID int64) error
}

// EntryHandler handles journal entry HTTP requests
type EntryHandler struct {
	service EntryServiceInterface
}

func NewEntryHandler(service EntryServiceInterface) *EntryHandler {
	return &EntryHandler{service: service}
}

// CreateEntryRequest represents the request body for creating an entry
type CreateEntryRequest struct {
	Date    string `json:"date" validate:"required,datetime=2006-01-02"`
	Mood    string `json:"mood" validate:"required,max=50"`
	Content string `json:"content" validate:"required"`
}

// UpdateEntryRequest represents the request body for rewriting an entry
type UpdateEntryRequest struct {
	EntryID int64  `json:"entryId" validate:"required,gt=0"`
	Date    string `json:"date" validate:"required,datetime=2006-01-02"`
	Mood    string `json:"mood" validate:"required,max=50"`
	Content string `json:"content" validate:"required"`
}

func (h *EntryHandler) List(w http.ResponseWriter, r *http.Request) {
	session, _ := auth.SessionFromContext(r.Context())

	entries, err := h.service.List(r.Context(), session.UserID)
	if err != nil {
		pkghttp.WriteInternalError(w, "Failed to load entries")
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, entries)
}

func (h *EntryHandler) Create(w http.ResponseWriter, r *http.Request) {
	session, _ := auth.SessionFromContext(r.Context())

	var req CreateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkghttp.WriteBadRequest(w, "Invalid request body")
		return
	}

	if err := ValidateRequest(req); err != nil {
		pkghttp.WriteBadRequest(w, err.Error())
		return
	}

	entryDate, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		pkghttp.WriteBadRequest(w, "Invalid date format. Use YYYY-MM-DD")
		return
	}

	entry, err := h.service.Create(r.Context(), session.UserID, entryDate, req.Mood, req.Content)
	if err != nil {
		if errors.Is(err, models.ErrBadRequest) {
			pkghttp.WriteBadRequest(w, "Content must not be empty")
			return
		}
		pkghttp.WriteInternalError(w, "Failed to save entry")
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Entry created successfully",
		"entryId": entry.ID,
	})
}

func (h *EntryHandler) Update(w http.ResponseWriter, r *http.Request) {
	session, _ := auth.SessionFromContext(r.Context())

	var req UpdateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkghttp.WriteBadRequest(w, "Invalid request body")
		return
	}

	if err := ValidateRequest(req); err != nil {
		pkghttp.WriteBadRequest(w, err.Error())
		return
	}

	entryDate, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		pkghttp.WriteBadRequest(w, "Invalid date format. Use YYYY-MM-DD")
		return
	}

	err = h.service.Update(r.Context(), session.UserID, req.EntryID, entryDate, req.Mood, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrNotFound):
			pkghttp.WriteNotFound(w, "Entry not found")
		case errors.Is(err, models.ErrBadRequest):
			pkghttp.WriteBadRequest(w, "Content must not be empty")
		default:
			pkghttp.WriteInternalError(w, "Failed to update entry")
		}
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Entry updated successfully",
	})
}

func (h *EntryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	session, _ := auth.SessionFromContext(r.Context())

	entryID, err := parseIDParam(r, "entryId")
	if err != nil {
		pkghttp.WriteBadRequest(w, "Invalid entry ID format")
		return
	}

	err = h.service.Delete(r.Context(), session.UserID, entryID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			pkghttp.WriteNotFound(w, "Entry not found")
			return
		}
		pkghttp.WriteInternalError(w, "Failed to delete entry")
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Entry deleted successfully",
	})
}

// parseIDParam reads a positive int64 id from the query string.
func parseIDParam(r *http.Request, name string) (int64, error) {
	raw := r.URL.Query().Get(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, models.ErrBadRequest
	}
	return id, nil
}
