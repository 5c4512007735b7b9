package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Zhasna/Mental-Wellness-App/internal/models"
	pkgauth "github.com/Zhasna/Mental-Wellness-App/pkg/auth"
	pkglogger "github.com/Zhasna/Mental-Wellness-App/pkg/logger"
)

// Profile update failures that need distinct messages at the HTTP layer.
// Each wraps a sentinel so status mapping still works through errors.Is.
var (
	ErrNoFieldsToUpdate        = fmt.Errorf("no fields to update: %w", models.ErrBadRequest)
	ErrCurrentPasswordRequired = fmt.Errorf("current password required: %w", models.ErrBadRequest)
	ErrCurrentPasswordWrong    = fmt.Errorf("current password incorrect: %w", models.ErrUnauthorized)
)

// ProfileUpdateInput carries the optional profile fields from a request.
// Empty string means the field was not supplied.
type ProfileUpdateInput struct {
	Name            string
	Email           string
	CurrentPassword string
	NewPassword     string
}

// ProfileService handles account profile changes
type ProfileService struct {
	repo        UserRepository
	logger      *slog.Logger
	auditLogger *pkglogger.AuditLogger
}

func NewProfileService(repo UserRepository, logger *slog.Logger, auditLogger *pkglogger.AuditLogger) *ProfileService {
	return &ProfileService{repo: repo, logger: logger, auditLogger: auditLogger}
}

// Get returns the caller's own profile.
func (s *ProfileService) Get(ctx context.Context, userID int64) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrNotFound
		}
		s.logger.Error("failed to get user", slog.Int64("user_id", userID), slog.Any("error", err))
		return nil, models.ErrInternalServer
	}
	return user, nil
}

// Update applies the supplied profile fields. Changing the password
// requires the current password and re-verifies it against the stored
// digest before the new one is written.
func (s *ProfileService) Update(ctx context.Context, userID int64, ipAddress string, input ProfileUpdateInput) error {
	update := &models.ProfileUpdate{}

	if name := strings.TrimSpace(input.Name); name != "" {
		update.Name = &name
	}
	if email := normalizeEmail(input.Email); email != "" {
		update.Email = &email
	}

	changingPassword := input.NewPassword != ""
	if changingPassword {
		if input.CurrentPassword == "" {
			return ErrCurrentPasswordRequired
		}

		user, err := s.repo.GetByID(ctx, userID)
		if err != nil {
			s.logger.Error("failed to get user", slog.Int64("user_id", userID), slog.Any("error", err))
			return models.ErrInternalServer
		}

		if !pkgauth.VerifyPassword(input.CurrentPassword, user.PasswordHash) {
			s.auditLogger.LogPasswordChange(userID, ipAddress, false)
			return ErrCurrentPasswordWrong
		}

		if err := pkgauth.ValidatePassword(input.NewPassword); err != nil {
			return models.ErrBadRequest
		}

		hash, err := pkgauth.HashPassword(input.NewPassword)
		if err != nil {
			s.logger.Error("failed to hash password", slog.Any("error", err))
			return models.ErrInternalServer
		}
		update.NewPasswordHash = &hash
	}

	if update.IsEmpty() {
		return ErrNoFieldsToUpdate
	}

	if err := s.repo.UpdateProfile(ctx, userID, update); err != nil {
		switch {
		case errors.Is(err, models.ErrConflict):
			return models.ErrConflict
		case errors.Is(err, models.ErrNotFound):
			return models.ErrNotFound
		}
		s.logger.Error("failed to update profile", slog.Int64("user_id", userID), slog.Any("error", err))
		return models.ErrInternalServer
	}

	if changingPassword {
		s.auditLogger.LogPasswordChange(userID, ipAddress, true)
	}
	s.logger.Info("profile updated", slog.Int64("user_id", userID))
	return nil
}
