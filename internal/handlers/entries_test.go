package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Zhasna/Mental-Wellness-App/internal/handlers"
	"github.com/Zhasna/Mental-Wellness-App/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestCreateEntry_Success(t *testing.T) {
	mockService := &handlers.MockEntryService{
		CreateFunc: func(ctx context.Context, userID int64, entryDate time.Time, mood, content string) (*models.Entry, error) {
			assert.Equal(t, int64(42), userID)
			assert.Equal(t, "2025-05-20", entryDate.Format("2006-01-02"))
			return &models.Entry{ID: 7, UserID: userID, EntryDate: entryDate, Mood: mood, Content: content}, nil
		},
	}

	handler := handlers.NewEntryHandler(mockService)
	req := handlers.WithSessionContext(
		handlers.NewTestRequest(t, "POST", "/api/entries", handlers.CreateEntryRequest{
			Date:    "2025-05-20",
			Mood:    "😊",
			Content: "felt good today",
		}),
		handlers.TestSession(),
	)

	w := httptest.NewRecorder()
	handler.Create(w, req)

	var resp map[string]interface{}
	handlers.AssertJSONResponse(t, w, http.StatusOK, &resp)
	assert.Equal(t, "Entry created successfully", resp["message"])
	assert.Equal(t, float64(7), resp["entryId"])
}

func TestCreateEntry_BadDate(t *testing.T) {
	handler := handlers.NewEntryHandler(&handlers.MockEntryService{})
	req := handlers.WithSessionContext(
		handlers.NewTestRequest(t, "POST", "/api/entries", handlers.CreateEntryRequest{
			Date:    "20-05-2025",
			Mood:    "😊",
			Content: "felt good today",
		}),
		handlers.TestSession(),
	)

	w := httptest.NewRecorder()
	handler.Create(w, req)

	handlers.AssertErrorResponse(t, w, http.StatusBadRequest, "bad_request")
}

func TestCreateEntry_MissingContent(t *testing.T) {
	handler := handlers.NewEntryHandler(&handlers.MockEntryService{})
	req := handlers.WithSessionContext(
		handlers.NewTestRequest(t, "POST", "/api/entries", handlers.CreateEntryRequest{
			Date: "2025-05-20",
			Mood: "😊",
		}),
		handlers.TestSession(),
	)

	w := httptest.NewRecorder()
	handler.Create(w, req)

	handlers.AssertErrorResponse(t, w, http.StatusBadRequest, "bad_request")
}

func TestListEntries_ScopedToSessionUser(t *testing.T) {
	var requestedUser int64
	mockService := &handlers.MockEntryService{
		ListFunc: func(ctx context.Context, userID int64) ([]*models.Entry, error) {
			requestedUser = userID
			return []*models.Entry{{ID: 1, UserID: userID}}, nil
		},
	}

	handler := handlers.NewEntryHandler(mockService)
	req := handlers.WithSessionContext(
		handlers.NewTestRequest(t, "GET", "/api/entries", nil),
		handlers.TestSession(),
	)

	w := httptest.NewRecorder()
	handler.List(w, req)

	var entries []models.Entry
	handlers.AssertJSONResponse(t, w, http.StatusOK, &entries)
	assert.Equal(t, int64(42), requestedUser)
	assert.Len(t, entries, 1)
}

func TestUpdateEntry_NotFound(t *testing.T) {
	mockService := &handlers.MockEntryService{
		UpdateFunc: func(ctx context.Context, userID, entryID int64, entryDate time.Time, mood, content string) error {
			return models.ErrNotFound
		},
	}

	handler := handlers.NewEntryHandler(mockService)
	req := handlers.WithSessionContext(
		handlers.NewTestRequest(t, "PUT", "/api/entries", handlers.UpdateEntryRequest{
			EntryID: 999,
			Date:    "2025-05-20",
			Mood:    "😊",
			Content: "updated",
		}),
		handlers.TestSession(),
	)

	w := httptest.NewRecorder()
	handler.Update(w, req)

	handlers.AssertErrorResponse(t, w, http.StatusNotFound, "not_found")
}

func TestDeleteEntry_Success(t *testing.T) {
	mockService := &handlers.MockEntryService{
		DeleteFunc: func(ctx context.Context, userID, entryID int64) error {
			assert.Equal(t, int64(42), userID)
			assert.Equal(t, int64(7), entryID)
			return nil
		},
	}

	handler := handlers.NewEntryHandler(mockService)
	req := handlers.WithSessionContext(
		handlers.NewTestRequest(t, "DELETE", "/api/entries?entryId=7", nil),
		handlers.TestSession(),
	)

	w := httptest.NewRecorder()
	handler.Delete(w, req)

	var resp map[string]string
	handlers.AssertJSONResponse(t, w, http.StatusOK, &resp)
	assert.Equal(t, "Entry deleted successfully", resp["message"])
}

func TestDeleteEntry_BadID(t *testing.T) {
	handler := handlers.NewEntryHandler(&handlers.MockEntryService{})

	for _, id := range []string{"abc", "-1", "0", ""} {
		req := handlers.WithSessionContext(
			handlers.NewTestRequest(t, "DELETE", "/api/entries?entryId="+id, nil),
			handlers.TestSession(),
		)
		w := httptest.NewRecorder()
		handler.Delete(w, req)
		handlers.AssertErrorResponse(t, w, http.StatusBadRequest, "bad_request")
	}
}
