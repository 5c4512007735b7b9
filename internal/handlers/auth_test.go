package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Zhasna/Mental-Wellness-App/internal/auth"
	"github.com/Zhasna/Mental-Wellness-App/internal/handlers"
	"github.com/Zhasna/Mental-Wellness-App/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_Success(t *testing.T) {
	mockAuth := &handlers.MockAuthService{
		RegisterFunc: func(ctx context.Context, name, email, password string) (*models.User, error) {
			assert.Equal(t, "alice", name)
			return &models.User{ID: 1, Name: name, Email: email}, nil
		},
	}

	handler := handlers.NewAuthHandler(mockAuth, nil, auth.CookieConfig{})
	req := handlers.NewTestRequest(t, "POST", "/api/register", handlers.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret-password",
	})

	w := httptest.NewRecorder()
	handler.Register(w, req)

	var resp map[string]string
	handlers.AssertJSONResponse(t, w, http.StatusOK, &resp)
	assert.Equal(t, "User registered successfully", resp["message"])
}

func TestRegister_DuplicateEmail(t *testing.T) {
	mockAuth := &handlers.MockAuthService{
		RegisterFunc: func(ctx context.Context, name, email, password string) (*models.User, error) {
			return nil, models.ErrConflict
		},
	}

	handler := handlers.NewAuthHandler(mockAuth, nil, auth.CookieConfig{})
	req := handlers.NewTestRequest(t, "POST", "/api/register", handlers.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret-password",
	})

	w := httptest.NewRecorder()
	handler.Register(w, req)

	handlers.AssertErrorResponse(t, w, http.StatusConflict, "conflict")
}

func TestRegister_ValidationFailures(t *testing.T) {
	handler := handlers.NewAuthHandler(&handlers.MockAuthService{}, nil, auth.CookieConfig{})

	tests := []struct {
		name string
		body handlers.RegisterRequest
	}{
		{"missing username", handlers.RegisterRequest{Email: "a@example.com", Password: "secret-password"}},
		{"bad email", handlers.RegisterRequest{Username: "alice", Email: "not-an-email", Password: "secret-password"}},
		{"short password", handlers.RegisterRequest{Username: "alice", Email: "a@example.com", Password: "short"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := handlers.NewTestRequest(t, "POST", "/api/register", tt.body)
			w := httptest.NewRecorder()
			handler.Register(w, req)
			handlers.AssertErrorResponse(t, w, http.StatusBadRequest, "bad_request")
		})
	}
}

func TestLogin_Success(t *testing.T) {
	mockAuth := &handlers.MockAuthService{
		LoginFunc: func(ctx context.Context, email, password, ipAddress, priorToken string) (auth.Session, error) {
			return auth.Session{Token: "new-token", UserID: 42, Username: "alice", Email: "alice@example.com"}, nil
		},
	}

	handler := handlers.NewAuthHandler(mockAuth, nil, auth.CookieConfig{})
	req := handlers.NewTestRequest(t, "POST", "/api/login", handlers.LoginRequest{
		Email:    "alice@example.com",
		Password: "secret-password",
	})

	w := httptest.NewRecorder()
	handler.Login(w, req)

	var resp handlers.LoginResponse
	handlers.AssertJSONResponse(t, w, http.StatusOK, &resp)
	assert.Equal(t, "Login successful", resp.Message)
	assert.Equal(t, int64(42), resp.UserID)
	assert.Equal(t, "alice", resp.Username)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, auth.SessionCookieName, cookies[0].Name)
	assert.Equal(t, "new-token", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	mockAuth := &handlers.MockAuthService{
		LoginFunc: func(ctx context.Context, email, password, ipAddress, priorToken string) (auth.Session, error) {
			return auth.Session{}, models.ErrUnauthorized
		},
	}

	handler := handlers.NewAuthHandler(mockAuth, nil, auth.CookieConfig{})
	req := handlers.NewTestRequest(t, "POST", "/api/login", handlers.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong",
	})

	w := httptest.NewRecorder()
	handler.Login(w, req)

	handlers.AssertErrorResponse(t, w, http.StatusUnauthorized, "unauthorized")
	assert.Empty(t, w.Result().Cookies())
}

func TestLogin_RateLimited(t *testing.T) {
	mockAuth := &handlers.MockAuthService{
		LoginFunc: func(ctx context.Context, email, password, ipAddress, priorToken string) (auth.Session, error) {
			return auth.Session{}, models.ErrRateLimited
		},
	}

	handler := handlers.NewAuthHandler(mockAuth, nil, auth.CookieConfig{})
	req := handlers.NewTestRequest(t, "POST", "/api/login", handlers.LoginRequest{
		Email:    "alice@example.com",
		Password: "secret-password",
	})

	w := httptest.NewRecorder()
	handler.Login(w, req)

	handlers.AssertErrorResponse(t, w, http.StatusTooManyRequests, "rate_limit_exceeded")
}

func TestLogin_PassesPriorCookieToken(t *testing.T) {
	var gotPrior string
	mockAuth := &handlers.MockAuthService{
		LoginFunc: func(ctx context.Context, email, password, ipAddress, priorToken string) (auth.Session, error) {
			gotPrior = priorToken
			return auth.Session{Token: "new-token", UserID: 42}, nil
		},
	}

	handler := handlers.NewAuthHandler(mockAuth, nil, auth.CookieConfig{})
	req := handlers.NewTestRequest(t, "POST", "/api/login", handlers.LoginRequest{
		Email:    "alice@example.com",
		Password: "secret-password",
	})
	req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: "old-token"})

	w := httptest.NewRecorder()
	handler.Login(w, req)

	assert.Equal(t, "old-token", gotPrior)
}

func TestLogout_Success(t *testing.T) {
	var destroyedToken string
	mockAuth := &handlers.MockAuthService{
		LogoutFunc: func(token string, userID int64) {
			destroyedToken = token
		},
	}

	handler := handlers.NewAuthHandler(mockAuth, nil, auth.CookieConfig{})
	req := handlers.WithSessionContext(
		handlers.NewTestRequest(t, "POST", "/api/logout", nil),
		handlers.TestSession(),
	)

	w := httptest.NewRecorder()
	handler.Logout(w, req)

	var resp map[string]string
	handlers.AssertJSONResponse(t, w, http.StatusOK, &resp)
	assert.Equal(t, "Logged out successfully", resp["message"])
	assert.Equal(t, "test-token", destroyedToken)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, -1, cookies[0].MaxAge)
}
