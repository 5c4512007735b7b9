package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Zhasna/Mental-Wellness-App/internal/auth"
	"github.com/Zhasna/Mental-Wellness-App/internal/handlers"
	"github.com/Zhasna/Mental-Wellness-App/internal/repositories"
	"github.com/Zhasna/Mental-Wellness-App/internal/routes"
	"github.com/Zhasna/Mental-Wellness-App/internal/services"
	pkghttp "github.com/Zhasna/Mental-Wellness-App/pkg/http"
	pkglogger "github.com/Zhasna/Mental-Wellness-App/pkg/logger"
)

// TestApp is a fully wired application served by httptest
type TestApp struct {
	Server   *httptest.Server
	Sessions *auth.SessionStore
	Client   *http.Client
}

// NewTestApp wires repositories, services, handlers and routes against the
// test database, mirroring the production composition without the outer
// security middleware.
func NewTestApp(db *TestDB) *TestApp {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	auditLogger := pkglogger.NewAuditLogger(logger)

	userRepo := repositories.NewUserRepository(db.DB)
	entryRepo := repositories.NewEntryRepository(db.DB)
	goalRepo := repositories.NewGoalRepository(db.DB)
	moodRepo := repositories.NewMoodRepository(db.DB)
	statsRepo := repositories.NewStatsRepository(db.DB)

	sessions := auth.NewSessionStore(30 * time.Minute)
	throttle := services.NewLoginThrottle(services.ThrottleConfig{
		MaxAttempts: 5,
		Window:      10 * time.Minute,
	}, logger)
	timing := auth.NewTimingDelay(auth.TimingConfig{})

	authService := services.NewAuthService(userRepo, sessions, throttle, timing, logger, auditLogger)
	entryService := services.NewEntryService(entryRepo, logger)
	goalService := services.NewGoalService(goalRepo, logger)
	moodService := services.NewMoodService(moodRepo, logger)
	profileService := services.NewProfileService(userRepo, logger, auditLogger)
	statsService := services.NewStatsService(statsRepo, logger)

	ipConfig := &pkghttp.IPConfig{}
	cookieConfig := auth.CookieConfig{SameSite: "lax"}

	router := chi.NewRouter()
	routes.RegisterRoutes(router, sessions,
		handlers.NewAuthHandler(authService, ipConfig, cookieConfig),
		handlers.NewEntryHandler(entryService),
		handlers.NewGoalHandler(goalService),
		handlers.NewMoodHandler(moodService),
		handlers.NewProfileHandler(profileService, ipConfig),
		handlers.NewStatsHandler(statsService),
		100,
	)

	server := httptest.NewServer(router)

	return &TestApp{
		Server:   server,
		Sessions: sessions,
		Client:   &http.Client{},
	}
}

func (app *TestApp) Close() {
	app.Server.Close()
}

// DoJSON sends a JSON request. A non-empty sessionCookie is attached as
// the session_id cookie.
func (app *TestApp) DoJSON(method, path string, body interface{}, sessionCookie string) (*http.Response, error) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequest(method, app.Server.URL+path, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	if sessionCookie != "" {
		req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: sessionCookie})
	}

	return app.Client.Do(req)
}

// DecodeJSON decodes and closes a response body
func DecodeJSON(resp *http.Response, target interface{}) error {
	defer resp.Body.Close()
	return json.NewDecoder(resp.Body).Decode(target)
}

// SessionCookie extracts the session token from a login response
func SessionCookie(resp *http.Response) (string, error) {
	for _, cookie := range resp.Cookies() {
		if cookie.Name == auth.SessionCookieName {
			return cookie.Value, nil
		}
	}
	return "", fmt.Errorf("no session cookie in response")
}
