package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/clubsync/events-backend/internal/config"
	"github.com/clubsync/events-backend/internal/handler"
	"github.com/clubsync/events-backend/internal/model"
	"github.com/clubsync/events-backend/internal/repository"
	"github.com/clubsync/events-backend/internal/router"
	"github.com/clubsync/events-backend/internal/service"
	"github.com/clubsync/events-backend/internal/validator"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	validator.Setup()
	os.Exit(m.Run())
}

// ─── In-memory stores ───────────────────────────────────────────────────
// The API is exercised against fresh store instances per test instead of
// resetting a shared database.

type memAccounts struct {
	mu       sync.Mutex
	accounts map[string]*model.Account
	nextID   int
}

func newMemAccounts() *memAccounts {
	return &memAccounts{accounts: make(map[string]*model.Account)}
}

func (s *memAccounts) key(role model.Role, username string) string {
	return string(role) + "/" + username
}

func (s *memAccounts) GetByUsername(_ context.Context, role model.Role, username string) (*model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.accounts[s.key(role, username)]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *a
	return &copied, nil
}

func (s *memAccounts) Create(_ context.Context, a *model.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := s.key(a.Role, a.Username)
	if _, ok := s.accounts[k]; ok {
		return repository.ErrDuplicateUsername
	}
	s.nextID++
	a.ID = s.nextID
	copied := *a
	s.accounts[k] = &copied
	return nil
}

type memEvents struct {
	mu     sync.Mutex
	events []model.Event
	nextID int
}

func (s *memEvents) Create(_ context.Context, e *model.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	e.ID = s.nextID
	e.CreatedAt = time.Now()
	s.events = append(s.events, *e)
	return nil
}

func (s *memEvents) ListAll(_ context.Context) ([]model.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := append([]model.Event(nil), s.events...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DateTime.After(out[j].DateTime.Time)
	})
	return out, nil
}

func (s *memEvents) ListByOwner(_ context.Context, username string) ([]model.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Event
	for _, e := range s.events {
		if e.OwnerUsername == username {
			out = append(out, e)
		}
	}
	return out, nil
}

type memAnnouncements struct {
	mu            sync.Mutex
	announcements []model.Announcement
	nextID        int
}

func (s *memAnnouncements) Create(_ context.Context, n *model.Announcement) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	n.ID = s.nextID
	n.CreatedAt = time.Now()
	s.announcements = append(s.announcements, *n)
	return nil
}

func (s *memAnnouncements) ListAll(_ context.Context) ([]model.Announcement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := append([]model.Announcement(nil), s.announcements...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (s *memAnnouncements) ListByOwner(_ context.Context, username string) ([]model.Announcement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Announcement
	for _, n := range s.announcements {
		if n.OwnerUsername == username {
			out = append(out, n)
		}
	}
	return out, nil
}

// ─── Test harness ───────────────────────────────────────────────────────

func testConfig() *config.Config {
	return &config.Config{
		GinMode:       gin.TestMode,
		JWTSecret:     "test-secret",
		AdminTokenTTL: 24 * time.Hour,
		UserTokenTTL:  time.Hour,
		BcryptCost:    bcrypt.MinCost,
		CacheTTL:      time.Minute,
		MaxBodyBytes:  10 * 1024 * 1024,
	}
}

type testAPI struct {
	router *gin.Engine
	auth   *service.AuthService
	cfg    *config.Config
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	cfg := testConfig()
	log := zerolog.Nop()

	authService := service.NewAuthService(cfg)
	accountService := service.NewAccountService(newMemAccounts(), authService, log)
	eventService := service.NewEventService(&memEvents{}, nil, cfg, log)
	announcementService := service.NewAnnouncementService(&memAnnouncements{}, nil, cfg, log)

	handlers := &router.Handlers{
		Auth:         handler.NewAuthHandler(accountService, authService),
		Event:        handler.NewEventHandler(eventService),
		Announcement: handler.NewAnnouncementHandler(announcementService),
	}

	return &testAPI{
		router: router.SetupRouter(authService, handlers, cfg),
		auth:   authService,
		cfg:    cfg,
	}
}

func (api *testAPI) do(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	api.router.ServeHTTP(w, req)
	return w
}

func (api *testAPI) registerAndLogin(t *testing.T, registerPath, loginPath, username, password string) string {
	t.Helper()

	creds := map[string]string{"username": username, "password": password}
	w := api.do(t, http.MethodPost, registerPath, creds, "")
	require.Equal(t, http.StatusCreated, w.Code, "register failed: %s", w.Body.String())

	w = api.do(t, http.MethodPost, loginPath, creds, "")
	require.Equal(t, http.StatusOK, w.Code, "login failed: %s", w.Body.String())

	var resp model.TokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func eventPayload(title, owner string) map[string]any {
	return map[string]any{
		"title":        title,
		"subtitle":     "Subtitle for " + owner,
		"description":  "Description for " + title,
		"dateTime":     "2025-01-10T18:00:00",
		"poster":       "data:image/png;base64,iVBORw0KGgo=",
		"gformLink":    "https://forms.example.com/" + owner,
		"location":     "Main Hall",
		"locationLink": "https://maps.example.com/" + owner,
		"instaLink":    "https://instagram.com/" + owner,
	}
}

// ─── Tests ──────────────────────────────────────────────────────────────

func TestHealth(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(t, http.MethodGet, "/health", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRegister_PasswordPolicyMessages(t *testing.T) {
	api := newTestAPI(t)

	tests := []struct {
		password string
		wantMsg  string
	}{
		{"short", "Password must be at least 6 characters long"},
		{"nouppercase123", "Password must contain at least one uppercase letter"},
		{"NoNumbers", "Password must contain at least one number"},
	}

	for i, tt := range tests {
		body := map[string]string{"username": fmt.Sprintf("admin_%d", i), "password": tt.password}
		w := api.do(t, http.MethodPost, "/register", body, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), tt.wantMsg)
	}
}

func TestRegister_Duplicate(t *testing.T) {
	api := newTestAPI(t)

	creds := map[string]string{"username": "padma", "password": "Padma123"}

	w := api.do(t, http.MethodPost, "/register", creds, "")
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Admin registered successfully")

	w = api.do(t, http.MethodPost, "/register", creds, "")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "Username already exists")
}

func TestRegister_MissingFields(t *testing.T) {
	api := newTestAPI(t)

	for _, path := range []string{"/register", "/register-user"} {
		w := api.do(t, http.MethodPost, path, map[string]string{"username": "", "password": ""}, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Username and password are required")
	}
}

func TestRegister_SeparateRoleNamespaces(t *testing.T) {
	api := newTestAPI(t)

	creds := map[string]string{"username": "padma", "password": "Padma123"}

	w := api.do(t, http.MethodPost, "/register", creds, "")
	assert.Equal(t, http.StatusCreated, w.Code)

	// Same username in the user namespace is a distinct account.
	w = api.do(t, http.MethodPost, "/register-user", creds, "")
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "User registered successfully")
}

func TestLogin_FailuresAreIndistinguishable(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(t, http.MethodPost, "/register-user", map[string]string{"username": "rohi", "password": "Rohi123"}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	unknown := api.do(t, http.MethodPost, "/login-user", map[string]string{"username": "nonexistent", "password": "Rohi123"}, "")
	wrongPw := api.do(t, http.MethodPost, "/login-user", map[string]string{"username": "rohi", "password": "wrongpassword"}, "")

	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.Equal(t, http.StatusUnauthorized, wrongPw.Code)
	assert.Contains(t, unknown.Body.String(), "Invalid username or password")
	assert.Equal(t, unknown.Body.String(), wrongPw.Body.String(),
		"responses must not reveal which field was wrong")
}

func TestLogin_MissingFields(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(t, http.MethodPost, "/login", map[string]string{"username": "padma"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Username and password are required")
}

func TestLogin_IssuesRoleBoundTokens(t *testing.T) {
	api := newTestAPI(t)

	adminTok := api.registerAndLogin(t, "/register", "/login", "padma", "Padma123")
	userTok := api.registerAndLogin(t, "/register-user", "/login-user", "rohi", "Rohi123")

	adminClaims, err := api.auth.ValidateToken(adminTok)
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, adminClaims.Role)
	assert.Equal(t, "padma", adminClaims.Username)

	userClaims, err := api.auth.ValidateToken(userTok)
	require.NoError(t, err)
	assert.Equal(t, model.RoleUser, userClaims.Role)
}

func TestCreateEvent_Authorization(t *testing.T) {
	api := newTestAPI(t)

	payload := eventPayload("Intro CTF", "padma")

	t.Run("missing token", func(t *testing.T) {
		w := api.do(t, http.MethodPost, "/events", payload, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		w := api.do(t, http.MethodPost, "/events", payload, "not.a.jwt")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("user token is forbidden, not unauthorized", func(t *testing.T) {
		userTok := api.registerAndLogin(t, "/register-user", "/login-user", "rohi", "Rohi123")
		w := api.do(t, http.MethodPost, "/events", payload, userTok)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "Access Denied: Only admins can add events")
	})

	t.Run("expired admin token", func(t *testing.T) {
		expiredCfg := testConfig()
		expiredCfg.AdminTokenTTL = -time.Minute
		expired, err := service.NewAuthService(expiredCfg).GenerateToken(
			&model.Account{ID: 1, Username: "padma", Role: model.RoleAdmin})
		require.NoError(t, err)

		w := api.do(t, http.MethodPost, "/events", payload, expired)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestCreateEvent_Validation(t *testing.T) {
	api := newTestAPI(t)
	adminTok := api.registerAndLogin(t, "/register", "/login", "padma", "Padma123")

	t.Run("missing title", func(t *testing.T) {
		payload := eventPayload("Intro CTF", "padma")
		delete(payload, "title")
		w := api.do(t, http.MethodPost, "/events", payload, adminTok)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unparseable dateTime", func(t *testing.T) {
		payload := eventPayload("Intro CTF", "padma")
		payload["dateTime"] = "next friday"
		w := api.do(t, http.MethodPost, "/events", payload, adminTok)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestEvents_RoundTripAndOwnerFilter(t *testing.T) {
	api := newTestAPI(t)

	padmaTok := api.registerAndLogin(t, "/register", "/login", "padma", "Padma123")
	rohiTok := api.registerAndLogin(t, "/register", "/login", "rohith", "Rohith1")

	payload := eventPayload("Intro CTF", "padma")
	w := api.do(t, http.MethodPost, "/events", payload, padmaTok)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created model.Event
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotZero(t, created.ID)
	assert.Equal(t, "padma", created.OwnerUsername)

	w = api.do(t, http.MethodPost, "/events", eventPayload("Workshop", "padma"), padmaTok)
	require.Equal(t, http.StatusCreated, w.Code)
	w = api.do(t, http.MethodPost, "/events", eventPayload("Finals", "rohith"), rohiTok)
	require.Equal(t, http.StatusCreated, w.Code)

	t.Run("list all returns a bare array with every event", func(t *testing.T) {
		w := api.do(t, http.MethodGet, "/events", nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var events []model.Event
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &events))
		assert.Len(t, events, 3)
	})

	t.Run("created fields round-trip", func(t *testing.T) {
		w := api.do(t, http.MethodGet, "/events", nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var events []model.Event
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &events))

		var got *model.Event
		for i := range events {
			if events[i].ID == created.ID {
				got = &events[i]
			}
		}
		require.NotNil(t, got)
		assert.Equal(t, payload["title"], got.Title)
		assert.Equal(t, payload["subtitle"], got.Subtitle)
		assert.Equal(t, payload["description"], got.Description)
		assert.Equal(t, payload["poster"], got.Poster)
		assert.Equal(t, payload["gformLink"], got.GformLink)
		assert.Equal(t, payload["location"], got.Location)
		assert.Equal(t, payload["locationLink"], got.LocationLink)
		assert.Equal(t, payload["instaLink"], got.InstaLink)
		assert.True(t, got.DateTime.Equal(time.Date(2025, 1, 10, 18, 0, 0, 0, time.UTC)))
	})

	t.Run("owner filter returns the exact subset", func(t *testing.T) {
		for _, path := range []string{"/events/admin/padma", "/events/user/padma"} {
			w := api.do(t, http.MethodGet, path, nil, "")
			require.Equal(t, http.StatusOK, w.Code)

			var events []model.Event
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &events))
			assert.Len(t, events, 2, path)
			for _, e := range events {
				assert.Equal(t, "padma", e.OwnerUsername)
			}
		}
	})

	t.Run("unknown owner yields an empty array, not an error", func(t *testing.T) {
		w := api.do(t, http.MethodGet, "/events/admin/stranger", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "[]", w.Body.String())
	})
}

func TestAnnouncements_Flow(t *testing.T) {
	api := newTestAPI(t)

	adminTok := api.registerAndLogin(t, "/register", "/login", "padma", "Padma123")
	userTok := api.registerAndLogin(t, "/register-user", "/login-user", "rohi", "Rohi123")

	payload := map[string]any{
		"description": "Recruitment open",
		"poster":      "data:image/png;base64,iVBORw0KGgo=",
		"instaLink":   "https://instagram.com/club",
		"gformLink":   "https://forms.example.com/join",
	}

	t.Run("user token forbidden with announcement message", func(t *testing.T) {
		w := api.do(t, http.MethodPost, "/announcements", payload, userTok)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "Access Denied: Only admins can add announcements")
	})

	t.Run("admin creates and lists", func(t *testing.T) {
		w := api.do(t, http.MethodPost, "/announcements", payload, adminTok)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created model.Announcement
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
		assert.NotZero(t, created.ID)
		assert.Equal(t, "padma", created.OwnerUsername)

		w = api.do(t, http.MethodGet, "/announcements", nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var listed []model.Announcement
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
		require.Len(t, listed, 1)
		assert.Equal(t, payload["description"], listed[0].Description)
		assert.Equal(t, payload["poster"], listed[0].Poster)
	})

	t.Run("missing description rejected", func(t *testing.T) {
		w := api.do(t, http.MethodPost, "/announcements", map[string]any{"poster": "x"}, adminTok)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("owner filter", func(t *testing.T) {
		w := api.do(t, http.MethodGet, "/announcements/admin/padma", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		var listed []model.Announcement
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
		assert.Len(t, listed, 1)

		w = api.do(t, http.MethodGet, "/announcements/admin/stranger", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "[]", w.Body.String())
	})
}
