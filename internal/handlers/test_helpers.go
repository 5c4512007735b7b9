package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Zhasna/Mental-Wellness-App/internal/auth"
	"github.com/Zhasna/Mental-Wellness-App/internal/models"
	"github.com/Zhasna/Mental-Wellness-App/internal/services"
	pkghttp "github.com/Zhasna/Mental-Wellness-App/pkg/http"
	"github.com/stretchr/testify/assert"
)

// NewTestRequest creates an HTTP request with JSON body for testing
func NewTestRequest(t *testing.T, method, url string, body interface{}) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// WithSessionContext injects a session into the request context, the way
// RequireSession would hand it to a handler
func WithSessionContext(req *http.Request, session auth.Session) *http.Request {
	ctx := context.WithValue(req.Context(), auth.SessionContextKey, session)
	return req.WithContext(ctx)
}

// TestSession returns a session for user 42
func TestSession() auth.Session {
	return auth.Session{
		Token:    "test-token",
		UserID:   42,
		Username: "alice",
		Email:    "alice@example.com",
	}
}

// AssertJSONResponse checks that response has correct status and decodes JSON body
func AssertJSONResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, target interface{}) {
	assert.Equal(t, expectedStatus, w.Code, "Response status mismatch")

	contentType := w.Header().Get("Content-Type")
	assert.Equal(t, "application/json", contentType, "Content-Type should be application/json")

	if target != nil {
		err := json.Unmarshal(w.Body.Bytes(), target)
		assert.NoError(t, err, "Failed to decode response JSON")
	}
}

// AssertErrorResponse checks that response is a valid error response
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedError string) {
	assert.Equal(t, expectedStatus, w.Code, "Response status mismatch")

	var resp pkghttp.ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err, "Failed to decode error response")
	assert.Equal(t, expectedError, resp.Error, "Error code mismatch")
	assert.NotEmpty(t, resp.Message, "Error message should not be empty")
}

// MockAuthService implements AuthServiceInterface for testing
type MockAuthService struct {
	RegisterFunc func(ctx context.Context, name, email, password string) (*models.User, error)
	LoginFunc    func(ctx context.Context, email, password, ipAddress, priorToken string) (auth.Session, error)
	LogoutFunc   func(token string, userID int64)
}

func (m *MockAuthService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, name, email, password)
	}
	return nil, models.ErrInternalServer
}

func (m *MockAuthService) Login(ctx context.Context, email, password, ipAddress, priorToken string) (auth.Session, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password, ipAddress, priorToken)
	}
	return auth.Session{}, models.ErrUnauthorized
}

func (m *MockAuthService) Logout(token string, userID int64) {
	if m.LogoutFunc != nil {
		m.LogoutFunc(token, userID)
	}
}

// MockEntryService implements EntryServiceInterface for testing
type MockEntryService struct {
	CreateFunc func(ctx context.Context, userID int64, entryDate time.Time, mood, content string) (*models.Entry, error)
	ListFunc   func(ctx context.Context, userID int64) ([]*models.Entry, error)
	UpdateFunc func(ctx context.Context, userID, entryID int64, entryDate time.Time, mood, content string) error
	DeleteFunc func(ctx context.Context, userID, entryID int64) error
}

func (m *MockEntryService) Create(ctx context.Context, userID int64, entryDate time.Time, mood, content string) (*models.Entry, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, userID, entryDate, mood, content)
	}
	return nil, models.ErrInternalServer
}

func (m *MockEntryService) List(ctx context.Context, userID int64) ([]*models.Entry, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, userID)
	}
	return []*models.Entry{}, nil
}

func (m *MockEntryService) Update(ctx context.Context, userID, entryID int64, entryDate time.Time, mood, content string) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, userID, entryID, entryDate, mood, content)
	}
	return nil
}

func (m *MockEntryService) Delete(ctx context.Context, userID, entryID int64) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, userID, entryID)
	}
	return nil
}

// MockGoalService implements GoalServiceInterface for testing
type MockGoalService struct {
	CreateFunc       func(ctx context.Context, userID int64, title, description string, targetDate *time.Time) (*models.Goal, error)
	ListFunc         func(ctx context.Context, userID int64) ([]*models.Goal, error)
	SetCompletedFunc func(ctx context.Context, userID, goalID int64, completed bool) error
	DeleteFunc       func(ctx context.Context, userID, goalID int64) error
}

func (m *MockGoalService) Create(ctx context.Context, userID int64, title, description string, targetDate *time.Time) (*models.Goal, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, userID, title, description, targetDate)
	}
	return nil, models.ErrInternalServer
}

func (m *MockGoalService) List(ctx context.Context, userID int64) ([]*models.Goal, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, userID)
	}
	return []*models.Goal{}, nil
}

func (m *MockGoalService) SetCompleted(ctx context.Context, userID, goalID int64, completed bool) error {
	if m.SetCompletedFunc != nil {
		return m.SetCompletedFunc(ctx, userID, goalID, completed)
	}
	return nil
}

func (m *MockGoalService) Delete(ctx context.Context, userID, goalID int64) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, userID, goalID)
	}
	return nil
}

// MockMoodService implements MoodServiceInterface for testing
type MockMoodService struct {
	RecordFunc func(ctx context.Context, userID int64, mood string) (*models.Mood, error)
	ListFunc   func(ctx context.Context, userID int64) ([]*models.Mood, error)
}

func (m *MockMoodService) Record(ctx context.Context, userID int64, mood string) (*models.Mood, error) {
	if m.RecordFunc != nil {
		return m.RecordFunc(ctx, userID, mood)
	}
	return nil, models.ErrInternalServer
}

func (m *MockMoodService) List(ctx context.Context, userID int64) ([]*models.Mood, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, userID)
	}
	return []*models.Mood{}, nil
}

// MockProfileService implements ProfileServiceInterface for testing
type MockProfileService struct {
	GetFunc    func(ctx context.Context, userID int64) (*models.User, error)
	UpdateFunc func(ctx context.Context, userID int64, ipAddress string, input services.ProfileUpdateInput) error
}

func (m *MockProfileService) Get(ctx context.Context, userID int64) (*models.User, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, userID)
	}
	return nil, models.ErrNotFound
}

func (m *MockProfileService) Update(ctx context.Context, userID int64, ipAddress string, input services.ProfileUpdateInput) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, userID, ipAddress, input)
	}
	return nil
}

// MockStatsService implements StatsServiceInterface for testing
type MockStatsService struct {
	GetFunc func(ctx context.Context, userID int64) (*models.Stats, error)
}

func (m *MockStatsService) Get(ctx context.Context, userID int64) (*models.Stats, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, userID)
	}
	return nil, models.ErrNotFound
}
