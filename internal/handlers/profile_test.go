package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Zhasna/Mental-Wellness-App/internal/handlers"
	"github.com/Zhasna/Mental-Wellness-App/internal/models"
	"github.com/Zhasna/Mental-Wellness-App/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestGetProfile_HidesPasswordHash(t *testing.T) {
	mockService := &handlers.MockProfileService{
		GetFunc: func(ctx context.Context, userID int64) (*models.User, error) {
			return &models.User{ID: userID, Name: "alice", Email: "alice@example.com", PasswordHash: "$2a$12$secret"}, nil
		},
	}

	handler := handlers.NewProfileHandler(mockService, nil)
	req := handlers.WithSessionContext(
		handlers.NewTestRequest(t, "GET", "/api/profile", nil),
		handlers.TestSession(),
	)

	w := httptest.NewRecorder()
	handler.Get(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "secret")

	var raw map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	assert.Equal(t, "alice", raw["name"])
	_, hasHash := raw["passwordHash"]
	assert.False(t, hasHash)
}

func TestUpdateProfile_Success(t *testing.T) {
	var gotInput services.ProfileUpdateInput
	mockService := &handlers.MockProfileService{
		UpdateFunc: func(ctx context.Context, userID int64, ipAddress string, input services.ProfileUpdateInput) error {
			assert.Equal(t, int64(42), userID)
			gotInput = input
			return nil
		},
	}

	handler := handlers.NewProfileHandler(mockService, nil)
	req := handlers.WithSessionContext(
		handlers.NewTestRequest(t, "PUT", "/api/profile", handlers.UpdateProfileRequest{
			Name: "Alice Smith",
		}),
		handlers.TestSession(),
	)

	w := httptest.NewRecorder()
	handler.Update(w, req)

	var resp map[string]string
	handlers.AssertJSONResponse(t, w, http.StatusOK, &resp)
	assert.Equal(t, "Profile updated successfully", resp["message"])
	assert.Equal(t, "Alice Smith", gotInput.Name)
}

func TestUpdateProfile_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
		wantError  string
	}{
		{"no fields", services.ErrNoFieldsToUpdate, http.StatusBadRequest, "bad_request"},
		{"current password required", services.ErrCurrentPasswordRequired, http.StatusBadRequest, "bad_request"},
		{"current password wrong", services.ErrCurrentPasswordWrong, http.StatusUnauthorized, "unauthorized"},
		{"email taken", models.ErrConflict, http.StatusConflict, "conflict"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &handlers.MockProfileService{
				UpdateFunc: func(ctx context.Context, userID int64, ipAddress string, input services.ProfileUpdateInput) error {
					return tt.serviceErr
				},
			}

			handler := handlers.NewProfileHandler(mockService, nil)
			req := handlers.WithSessionContext(
				handlers.NewTestRequest(t, "PUT", "/api/profile", handlers.UpdateProfileRequest{
					Name: "whatever",
				}),
				handlers.TestSession(),
			)

			w := httptest.NewRecorder()
			handler.Update(w, req)

			handlers.AssertErrorResponse(t, w, tt.wantStatus, tt.wantError)
		})
	}
}

func TestUpdateProfile_ShortNewPassword(t *testing.T) {
	handler := handlers.NewProfileHandler(&handlers.MockProfileService{}, nil)
	req := handlers.WithSessionContext(
		handlers.NewTestRequest(t, "PUT", "/api/profile", handlers.UpdateProfileRequest{
			CurrentPassword: "right-password",
			NewPassword:     "short",
		}),
		handlers.TestSession(),
	)

	w := httptest.NewRecorder()
	handler.Update(w, req)

	handlers.AssertErrorResponse(t, w, http.StatusBadRequest, "bad_request")
}
