package services

import (
	"context"

	"github.com/Zhasna/Mental-Wellness-App/internal/models"
	"github.com/Zhasna/Mental-Wellness-App/internal/repositories"
)

// MockUserRepository implements UserRepository for testing
type MockUserRepository struct {
	GetByIDFunc       func(ctx context.Context, id int64) (*models.User, error)
	GetByEmailFunc    func(ctx context.Context, email string) (*models.User, error)
	CreateFunc        func(ctx context.Context, user *models.User) (*models.User, error)
	UpdateProfileFunc func(ctx context.Context, id int64, update *models.ProfileUpdate) error
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, models.ErrNotFound
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, models.ErrNotFound
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil, models.ErrInternalServer
}

func (m *MockUserRepository) UpdateProfile(ctx context.Context, id int64, update *models.ProfileUpdate) error {
	if m.UpdateProfileFunc != nil {
		return m.UpdateProfileFunc(ctx, id, update)
	}
	return nil
}

// MockEntryRepository implements EntryRepository for testing
type MockEntryRepository struct {
	CreateFunc     func(ctx context.Context, entry *models.Entry) (*models.Entry, error)
	ListByUserFunc func(ctx context.Context, userID int64) ([]*models.Entry, error)
	UpdateFunc     func(ctx context.Context, entry *models.Entry) error
	DeleteFunc     func(ctx context.Context, id, userID int64) error
}

func (m *MockEntryRepository) Create(ctx context.Context, entry *models.Entry) (*models.Entry, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, entry)
	}
	return nil, models.ErrInternalServer
}

func (m *MockEntryRepository) ListByUser(ctx context.Context, userID int64) ([]*models.Entry, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	return []*models.Entry{}, nil
}

func (m *MockEntryRepository) Update(ctx context.Context, entry *models.Entry) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, entry)
	}
	return nil
}

func (m *MockEntryRepository) Delete(ctx context.Context, id, userID int64) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id, userID)
	}
	return nil
}

// MockGoalRepository implements GoalRepository for testing
type MockGoalRepository struct {
	CreateFunc       func(ctx context.Context, goal *models.Goal) (*models.Goal, error)
	ListByUserFunc   func(ctx context.Context, userID int64) ([]*models.Goal, error)
	SetCompletedFunc func(ctx context.Context, id, userID int64, completed bool) error
	DeleteFunc       func(ctx context.Context, id, userID int64) error
}

func (m *MockGoalRepository) Create(ctx context.Context, goal *models.Goal) (*models.Goal, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, goal)
	}
	return nil, models.ErrInternalServer
}

func (m *MockGoalRepository) ListByUser(ctx context.Context, userID int64) ([]*models.Goal, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	return []*models.Goal{}, nil
}

func (m *MockGoalRepository) SetCompleted(ctx context.Context, id, userID int64, completed bool) error {
	if m.SetCompletedFunc != nil {
		return m.SetCompletedFunc(ctx, id, userID, completed)
	}
	return nil
}

func (m *MockGoalRepository) Delete(ctx context.Context, id, userID int64) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id, userID)
	}
	return nil
}

// MockMoodRepository implements MoodRepository for testing
type MockMoodRepository struct {
	CreateFunc     func(ctx context.Context, mood *models.Mood) (*models.Mood, error)
	ListByUserFunc func(ctx context.Context, userID int64) ([]*models.Mood, error)
}

func (m *MockMoodRepository) Create(ctx context.Context, mood *models.Mood) (*models.Mood, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, mood)
	}
	return nil, models.ErrInternalServer
}

func (m *MockMoodRepository) ListByUser(ctx context.Context, userID int64) ([]*models.Mood, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	return []*models.Mood{}, nil
}

// MockStatsRepository implements StatsRepository for testing
type MockStatsRepository struct {
	GetSnapshotFunc func(ctx context.Context, userID int64) (*repositories.StatsSnapshot, error)
}

func (m *MockStatsRepository) GetSnapshot(ctx context.Context, userID int64) (*repositories.StatsSnapshot, error) {
	if m.GetSnapshotFunc != nil {
		return m.GetSnapshotFunc(ctx, userID)
	}
	return nil, models.ErrNotFound
}
