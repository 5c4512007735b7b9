package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/Zhasna/Mental-Wellness-App/internal/auth"
	"github.com/Zhasna/Mental-Wellness-App/internal/models"
	pkghttp "github.com/Zhasna/Mental-Wellness-App/pkg/http"
)

// StatsServiceInterface defines the interface for dashboard statistics
type StatsServiceInterface interface {
	Get(ctx context.Context, userID int64) (*models.Stats, error)
}

// StatsHandler handles dashboard statistics requests
type StatsHandler struct {
	service StatsServiceInterface
}

func NewStatsHandler(service StatsServiceInterface) *StatsHandler {
	return &StatsHandler{service: service}
}

func (h *StatsHandler) Get(w http.ResponseWriter, r *http.Request) {
	session, _ := auth.SessionFromContext(r.Context())

	stats, err := h.service.Get(r.Context(), session.UserID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			pkghttp.WriteNotFound(w, "User not found")
			return
		}
		pkghttp.WriteInternalError(w, "Failed to load stats")
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, stats)
}
