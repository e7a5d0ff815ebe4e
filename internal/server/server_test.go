package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/career-compass/internal/catalog"
	"github.com/jonathan/career-compass/internal/config"
	"github.com/jonathan/career-compass/internal/db"
	"github.com/jonathan/career-compass/internal/engine"
	"github.com/jonathan/career-compass/internal/server/ratelimit"
	"github.com/jonathan/career-compass/internal/types"
	"github.com/jonathan/career-compass/internal/vocab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUsers is an in-memory DBClient.
type fakeUsers struct {
	mu    sync.Mutex
	users map[uuid.UUID]*db.User
	err   error // returned by every call when set
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{users: make(map[uuid.UUID]*db.User)}
}

func (f *fakeUsers) CreateUser(_ context.Context, name, email, passwordHash string) (uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return uuid.Nil, f.err
	}
	now := time.Now().UTC()
	u := &db.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		PasswordSet:  passwordHash != "",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	f.users[u.ID] = u
	return u.ID, nil
}

func (f *fakeUsers) GetUser(_ context.Context, id uuid.UUID) (*db.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	clone := *u
	return &clone, nil
}

func (f *fakeUsers) GetUserByEmail(_ context.Context, email string) (*db.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if strings.EqualFold(u.Email, email) {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeUsers) CheckEmailExists(ctx context.Context, email string) (bool, error) {
	u, err := f.GetUserByEmail(ctx, email)
	return u != nil, err
}

func (f *fakeUsers) UpdatePassword(_ context.Context, id uuid.UUID, passwordHash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	u, ok := f.users[id]
	if !ok {
		return db.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	u.PasswordSet = true
	u.UpdatedAt = time.Now().UTC()
	return nil
}

func testCareer(id, title string, category vocab.Category, level vocab.ExperienceLevel, minYears, maxYears int, skills ...string) types.Career {
	return types.Career{
		CareerID:                id,
		Title:                   title,
		Description:             title + " role",
		RequiredTechnicalSkills: skills,
		RequiredSoftSkills:      []string{"Communication"},
		SalaryMin:               65000,
		SalaryMax:               130000,
		ExperienceLevel:         level,
		MinYearsExperience:      minYears,
		MaxYearsExperience:      maxYears,
		PreferenceWeights: map[vocab.PreferenceKey]float64{
			vocab.PrefWorkingWithData: 0.8,
		},
		Category: category,
	}
}

func testCatalog() []types.Career {
	return []types.Career{
		testCareer("backend-engineer", "Backend Engineer", vocab.CategoryTechnology, vocab.LevelMid, 3, 7, "Go", "SQL", "Docker"),
		testCareer("data-analyst", "Data Analyst", vocab.CategoryBusiness, vocab.LevelJunior, 1, 4, "SQL", "Excel"),
		testCareer("data-engineer", "Data Engineer", vocab.CategoryTechnology, vocab.LevelMid, 3, 7, "SQL", "Python", "Spark"),
		testCareer("frontend-engineer", "Frontend Engineer", vocab.CategoryTechnology, vocab.LevelMid, 2, 6, "JavaScript", "CSS"),
		testCareer("product-analyst", "Product Analyst", vocab.CategoryBusiness, vocab.LevelJunior, 1, 4, "SQL", "Amplitude"),
		testCareer("qa-engineer", "QA Engineer", vocab.CategoryTechnology, vocab.LevelJunior, 1, 4, "Selenium", "Python"),
		testCareer("site-reliability-engineer", "Site Reliability Engineer", vocab.CategoryTechnology, vocab.LevelMid, 3, 8, "Go", "Kubernetes", "Linux"),
		testCareer("technical-writer", "Technical Writer", vocab.CategoryBusiness, vocab.LevelMid, 2, 6, "Markdown"),
		testCareer("ux-researcher", "UX Researcher", vocab.CategoryCreative, vocab.LevelMid, 2, 6, "Figma"),
	}
}

type testEnv struct {
	server *Server
	users  *fakeUsers
	store  *catalog.Store
	jwt    *JWTService
}

// newTestServer builds a server over testCatalog with rate limiting disabled.
func newTestServer(t *testing.T, mutate ...func(*Config)) *testEnv {
	t.Helper()

	store := catalog.NewStore(&catalog.FileSource{Paths: []string{"../catalog/testdata/careers_a.json"}})
	_, err := store.Set(testCatalog())
	require.NoError(t, err)

	users := newFakeUsers()
	cfg := Config{
		Port:      0,
		Users:     users,
		Catalog:   store,
		Engine:    engine.DefaultOptions(),
		RateLimit: &ratelimit.Config{Enabled: false},
		JWT:       &config.JWTConfig{Secret: "test-secret", ExpirationHours: 1, Issuer: config.DefaultJWTIssuer},
		Password:  &config.PasswordConfig{BcryptCost: config.MinBcryptCost},
	}
	for _, m := range mutate {
		m(&cfg)
	}

	srv, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(srv.rateLimiter.Stop)

	return &testEnv{server: srv, users: users, store: store, jwt: srv.jwtService}
}

func (e *testEnv) do(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.server.Handler().ServeHTTP(w, req)
	return w
}

// register creates a user and returns its token.
func (e *testEnv) register(t *testing.T, email string) (string, *types.User) {
	t.Helper()
	w := e.do(t, http.MethodPost, "/auth/register", map[string]string{
		"name":     "Test User",
		"email":    email,
		"password": "correct-horse",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp types.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token, resp.User
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestNew_RequiresDependencies(t *testing.T) {
	_, err := New(Config{})
	assert.Error(t, err)

	_, err = New(Config{Users: newFakeUsers()})
	assert.Error(t, err)
}

func TestHandleHealth(t *testing.T) {
	env := newTestServer(t)

	w := env.do(t, http.MethodGet, "/health", nil, "")

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody[map[string]any](t, w)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, env.store.Snapshot().Version, body["catalog_version"])
	assert.EqualValues(t, len(testCatalog()), body["catalog_size"])
}

func TestHandleHealth_NoCatalog(t *testing.T) {
	env := newTestServer(t, func(c *Config) { c.Catalog = catalog.NewStore(nil) })

	w := env.do(t, http.MethodGet, "/health", nil, "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "degraded", decodeBody[map[string]any](t, w)["status"])
}

func TestWithCORS(t *testing.T) {
	env := newTestServer(t)

	w := env.do(t, http.MethodOptions, "/recommendations", nil, "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "Authorization")
}

func TestUnknownRoute(t *testing.T) {
	env := newTestServer(t)

	w := env.do(t, http.MethodGet, "/runs", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.do(t, http.MethodDelete, "/careers/data-analyst", nil, "")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestWithRateLimit(t *testing.T) {
	env := newTestServer(t, func(c *Config) {
		c.RateLimit = &ratelimit.Config{
			Enabled:       true,
			DefaultLimit:  100,
			DefaultWindow: time.Minute,
			EndpointConfigs: []ratelimit.EndpointConfig{
				{Path: "/careers", Method: "GET", Limit: 2, Window: time.Minute},
			},
		}
	})

	for i := 0; i < 2; i++ {
		w := env.do(t, http.MethodGet, "/careers", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
	}

	w := env.do(t, http.MethodGet, "/careers", nil, "")
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	body := decodeBody[map[string]any](t, w)
	assert.Equal(t, "rate_limit_exceeded", body["error"])
	assert.EqualValues(t, 0, body["remaining"])

	// Health checks are never limited
	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, env.do(t, http.MethodGet, "/health", nil, "").Code)
	}
}

func TestExtractClientID(t *testing.T) {
	env := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "203.0.113.7:5555"
	assert.Equal(t, "203.0.113.7", env.server.extractClientID(req))

	req.RemoteAddr = "not-an-addr"
	assert.Equal(t, "not-an-addr", env.server.extractClientID(req))
}

func TestStatusRecorder(t *testing.T) {
	w := httptest.NewRecorder()
	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

	rec.WriteHeader(http.StatusTeapot)

	assert.Equal(t, http.StatusTeapot, rec.status)
	assert.Equal(t, http.StatusTeapot, w.Code)
}
