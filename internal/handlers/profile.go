package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Zhasna/Mental-Wellness-App/internal/auth"
	"github.com/Zhasna/Mental-Wellness-App/internal/models"
	"github.com/Zhasna/Mental-Wellness-App/internal/services"
	pkghttp "github.com/Zhasna/Mental-Wellness-App/pkg/http"
)

// ProfileServiceInterface defines the interface for profile logic
type ProfileServiceInterface interface {
	Get(ctx context.Context, userID int64) (*models.User, error)
	Update(ctx context.Context, userID int64, ipAddress string, input services.ProfileUpdateInput) error
}

// ProfileHandler handles profile HTTP requests
type ProfileHandler struct {
	service  ProfileServiceInterface
	ipConfig *pkghttp.IPConfig
}

func NewProfileHandler(service ProfileServiceInterface, ipConfig *pkghttp.IPConfig) *ProfileHandler {
	return &ProfileHandler{service: service, ipConfig: ipConfig}
}

// UpdateProfileRequest represents the request body for a profile update.
// All fields are optional; at least one updatable field must be present.
type UpdateProfileRequest struct {
	Name            string `json:"name" validate:"omitempty,min=1,max=100"`
	Email           string `json:"email" validate:"omitempty,email"`
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword" validate:"omitempty,min=8,max=72"`
}

func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	session, _ := auth.SessionFromContext(r.Context())

	user, err := h.service.Get(r.Context(), session.UserID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			pkghttp.WriteNotFound(w, "User not found")
			return
		}
		pkghttp.WriteInternalError(w, "Failed to load profile")
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, user)
}

func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	session, _ := auth.SessionFromContext(r.Context())

	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkghttp.WriteBadRequest(w, "Invalid request body")
		return
	}

	if err := ValidateRequest(req); err != nil {
		pkghttp.WriteBadRequest(w, err.Error())
		return
	}

	ipAddress := pkghttp.ExtractClientIP(r, h.ipConfig)

	err := h.service.Update(r.Context(), session.UserID, ipAddress, services.ProfileUpdateInput{
		Name:            req.Name,
		Email:           req.Email,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNoFieldsToUpdate):
			pkghttp.WriteBadRequest(w, "No fields to update")
		case errors.Is(err, services.ErrCurrentPasswordRequired):
			pkghttp.WriteBadRequest(w, "Current password is required to change password")
		case errors.Is(err, services.ErrCurrentPasswordWrong):
			pkghttp.WriteUnauthorized(w, "Current password is incorrect")
		case errors.Is(err, models.ErrConflict):
			pkghttp.WriteConflict(w, "Email already exists")
		case errors.Is(err, models.ErrNotFound):
			pkghttp.WriteNotFound(w, "User not found")
		case errors.Is(err, models.ErrBadRequest):
			pkghttp.WriteBadRequest(w, "Invalid profile details")
		default:
			pkghttp.WriteInternalError(w, "Failed to update profile")
		}
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Profile updated successfully",
	})
}
