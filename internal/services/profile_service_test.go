package services

import (
	"context"
	"testing"

	"github.com/Zhasna/Mental-Wellness-App/internal/models"
	pkgauth "github.com/Zhasna/Mental-Wellness-App/pkg/auth"
	pkglogger "github.com/Zhasna/Mental-Wellness-App/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProfileService(repo UserRepository) *ProfileService {
	logger := discardLogger()
	return NewProfileService(repo, logger, pkglogger.NewAuditLogger(logger))
}

func TestProfileService_Update_NameAndEmail(t *testing.T) {
	var got *models.ProfileUpdate
	repo := &MockUserRepository{
		UpdateProfileFunc: func(ctx context.Context, id int64, update *models.ProfileUpdate) error {
			assert.Equal(t, int64(42), id)
			got = update
			return nil
		},
	}
	service := newTestProfileService(repo)

	err := service.Update(context.Background(), 42, "203.0.113.10", ProfileUpdateInput{
		Name:  " Alice Smith ",
		Email: "New@Example.com",
	})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Alice Smith", *got.Name)
	assert.Equal(t, "new@example.com", *got.Email)
	assert.Nil(t, got.NewPasswordHash)
}

func TestProfileService_Update_NoFields(t *testing.T) {
	service := newTestProfileService(&MockUserRepository{})

	err := service.Update(context.Background(), 42, "203.0.113.10", ProfileUpdateInput{})
	assert.ErrorIs(t, err, ErrNoFieldsToUpdate)
	assert.ErrorIs(t, err, models.ErrBadRequest)
}

func TestProfileService_Update_PasswordRequiresCurrent(t *testing.T) {
	service := newTestProfileService(&MockUserRepository{})

	err := service.Update(context.Background(), 42, "203.0.113.10", ProfileUpdateInput{
		NewPassword: "new-password-1",
	})
	assert.ErrorIs(t, err, ErrCurrentPasswordRequired)
}

func TestProfileService_Update_WrongCurrentPassword(t *testing.T) {
	hash, err := pkgauth.HashPassword("right-password")
	require.NoError(t, err)
	repo := &MockUserRepository{
		GetByIDFunc: func(ctx context.Context, id int64) (*models.User, error) {
			return &models.User{ID: id, PasswordHash: hash}, nil
		},
	}
	service := newTestProfileService(repo)

	err = service.Update(context.Background(), 42, "203.0.113.10", ProfileUpdateInput{
		CurrentPassword: "wrong-password",
		NewPassword:     "new-password-1",
	})
	assert.ErrorIs(t, err, ErrCurrentPasswordWrong)
	assert.ErrorIs(t, err, models.ErrUnauthorized)
}

func TestProfileService_Update_PasswordChange(t *testing.T) {
	hash, err := pkgauth.HashPassword("right-password")
	require.NoError(t, err)

	var got *models.ProfileUpdate
	repo := &MockUserRepository{
		GetByIDFunc: func(ctx context.Context, id int64) (*models.User, error) {
			return &models.User{ID: id, PasswordHash: hash}, nil
		},
		UpdateProfileFunc: func(ctx context.Context, id int64, update *models.ProfileUpdate) error {
			got = update
			return nil
		},
	}
	service := newTestProfileService(repo)

	err = service.Update(context.Background(), 42, "203.0.113.10", ProfileUpdateInput{
		CurrentPassword: "right-password",
		NewPassword:     "new-password-1",
	})
	require.NoError(t, err)
	require.NotNil(t, got)
	require.NotNil(t, got.NewPasswordHash)
	assert.True(t, pkgauth.VerifyPassword("new-password-1", *got.NewPasswordHash))
}

func TestProfileService_Update_ShortNewPassword(t *testing.T) {
	hash, err := pkgauth.HashPassword("right-password")
	require.NoError(t, err)
	repo := &MockUserRepository{
		GetByIDFunc: func(ctx context.Context, id int64) (*models.User, error) {
			return &models.User{ID: id, PasswordHash: hash}, nil
		},
	}
	service := newTestProfileService(repo)

	err = service.Update(context.Background(), 42, "203.0.113.10", ProfileUpdateInput{
		CurrentPassword: "right-password",
		NewPassword:     "short",
	})
	assert.ErrorIs(t, err, models.ErrBadRequest)
}

func TestProfileService_Update_EmailConflict(t *testing.T) {
	repo := &MockUserRepository{
		UpdateProfileFunc: func(ctx context.Context, id int64, update *models.ProfileUpdate) error {
			return models.ErrConflict
		},
	}
	service := newTestProfileService(repo)

	err := service.Update(context.Background(), 42, "203.0.113.10", ProfileUpdateInput{
		Email: "taken@example.com",
	})
	assert.ErrorIs(t, err, models.ErrConflict)
}

func TestProfileService_Get(t *testing.T) {
	repo := &MockUserRepository{
		GetByIDFunc: func(ctx context.Context, id int64) (*models.User, error) {
			return &models.User{ID: id, Name: "alice", Email: "alice@example.com"}, nil
		},
	}
	service := newTestProfileService(repo)

	user, err := service.Get(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Name)
}
