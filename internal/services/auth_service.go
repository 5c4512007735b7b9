package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/Zhasna/Mental-Wellness-App/internal/auth"
	"github.com/Zhasna/Mental-Wellness-App/internal/models"
	pkgauth "github.com/Zhasna/Mental-Wellness-App/pkg/auth"
	pkglogger "github.com/Zhasna/Mental-Wellness-App/pkg/logger"
)

// UserRepository defines the user persistence operations the services need
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) (*models.User, error)
	UpdateProfile(ctx context.Context, id int64, update *models.ProfileUpdate) error
}

// AuthService handles registration, login and logout
type AuthService struct {
	repo        UserRepository
	sessions    *auth.SessionStore
	throttle    *LoginThrottle
	timing      *auth.TimingDelay
	logger      *slog.Logger
	auditLogger *pkglogger.AuditLogger
}

func NewAuthService(repo UserRepository, sessions *auth.SessionStore, throttle *LoginThrottle, timing *auth.TimingDelay, logger *slog.Logger, auditLogger *pkglogger.AuditLogger) *AuthService {
	return &AuthService{
		repo:        repo,
		sessions:    sessions,
		throttle:    throttle,
		timing:      timing,
		logger:      logger,
		auditLogger: auditLogger,
	}
}

// Register creates a new account with a hashed credential.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)

	if name == "" || email == "" {
		return nil, models.ErrBadRequest
	}

	if err := pkgauth.ValidatePassword(password); err != nil {
		return nil, models.ErrBadRequest
	}

	passwordHash, err := pkgauth.HashPassword(password)
	if err != nil {
		s.logger.Error("failed to hash password", slog.Any("error", err))
		return nil, models.ErrInternalServer
	}

	user, err := s.repo.Create(ctx, &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
	})
	if err != nil {
		if errors.Is(err, models.ErrConflict) {
			s.auditLogger.LogAuthAttempt(pkglogger.AuditEvent{
				EventType:     "register_failed",
				Email:         email,
				FailureReason: "email_exists",
				Success:       false,
			})
			return nil, models.ErrConflict
		}
		s.logger.Error("failed to create user", slog.Any("error", err))
		return nil, models.ErrInternalServer
	}

	s.logger.Info("user registered", slog.Int64("user_id", user.ID))
	s.auditLogger.LogAuthAttempt(pkglogger.AuditEvent{
		EventType: "register",
		UserID:    user.ID,
		Email:     email,
		Success:   true,
	})
	return user, nil
}

// Login verifies credentials and mints a session. The throttle check runs
// first so a blocked IP costs neither a database read nor a bcrypt
// comparison. priorToken, when non-empty, is the token from the client's
// existing cookie; it is destroyed so a pre-login session can never be
// fixed onto the authenticated user.
func (s *AuthService) Login(ctx context.Context, email, password, ipAddress, priorToken string) (auth.Session, error) {
	email = normalizeEmail(email)

	if !s.throttle.Allow(ipAddress) {
		s.auditLogger.LogAuthAttempt(pkglogger.AuditEvent{
			EventType:     "login_failed",
			Email:         email,
			IPAddress:     ipAddress,
			FailureReason: "rate_limited",
			Success:       false,
		})
		return auth.Session{}, models.ErrRateLimited
	}

	if email == "" || password == "" {
		s.failLogin(email, ipAddress, "invalid_credentials")
		return auth.Session{}, models.ErrUnauthorized
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			s.failLogin(email, ipAddress, "invalid_credentials")
			return auth.Session{}, models.ErrUnauthorized
		}
		s.logger.Error("failed to get user by email", slog.Any("error", err))
		return auth.Session{}, models.ErrInternalServer
	}

	if !pkgauth.VerifyPassword(password, user.PasswordHash) {
		s.failLogin(email, ipAddress, "invalid_credentials")
		return auth.Session{}, models.ErrUnauthorized
	}

	s.throttle.RecordSuccess(ipAddress)
	s.timing.Wait(true)

	if priorToken != "" {
		s.sessions.Destroy(priorToken)
	}

	session, err := s.sessions.Create(user.ID, user.Name, user.Email)
	if err != nil {
		s.logger.Error("failed to create session", slog.Any("error", err))
		return auth.Session{}, models.ErrInternalServer
	}

	s.logger.Info("user logged in", slog.Int64("user_id", user.ID))
	s.auditLogger.LogAuthAttempt(pkglogger.AuditEvent{
		EventType: "login",
		UserID:    user.ID,
		Email:     email,
		IPAddress: ipAddress,
		Success:   true,
	})
	return session, nil
}

// Logout destroys the session for token. Safe to call with a token that
// is already gone.
func (s *AuthService) Logout(token string, userID int64) {
	s.sessions.Destroy(token)
	s.logger.Info("user logged out", slog.Int64("user_id", userID))
	s.auditLogger.LogAuthAttempt(pkglogger.AuditEvent{
		EventType: "logout",
		UserID:    userID,
		Success:   true,
	})
}

func (s *AuthService) failLogin(email, ipAddress, reason string) {
	s.throttle.RecordFailure(ipAddress)
	s.auditLogger.LogAuthAttempt(pkglogger.AuditEvent{
		EventType:     "login_failed",
		Email:         email,
		IPAddress:     ipAddress,
		FailureReason: reason,
		Success:       false,
	})
	s.timing.Wait(false)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
