package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	httptransport "github.com/idms/employee-portal/internal/api/http"
	"github.com/idms/employee-portal/internal/api/http/handlers"
	"github.com/idms/employee-portal/internal/auth"
	"github.com/idms/employee-portal/internal/config"
	"github.com/idms/employee-portal/internal/events"
	"github.com/idms/employee-portal/internal/observability"
	"github.com/idms/employee-portal/internal/repository"
	"github.com/idms/employee-portal/internal/service"
	"github.com/idms/employee-portal/internal/session"
)

type testServer struct {
	app      *fiber.App
	sessions *session.Manager
	repo     repository.EmployeeRepository
}

func newTestServer(t *testing.T, seed bool) *testServer {
	t.Helper()

	logger := zap.NewNop()
	repo := repository.NewMemoryEmployeeRepository()
	if seed {
		require.NoError(t, repository.SeedEmployees(context.Background(), repo, bcrypt.MinCost, logger))
	}

	knowledgeRepo, err := repository.NewKnowledgeRepository("")
	require.NoError(t, err)
	require.NoError(t, repository.SeedKnowledge(context.Background(), knowledgeRepo, logger))

	sessions := session.NewManager(session.NewMemoryStore(), time.Hour, false)
	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher()

	cfg := config.Config{}
	cfg.Auth.Secret = "test-secret"
	cfg.Auth.AccessTokenTTLMinutes = 60

	authService := service.NewAuthService(cfg, service.AuthDependencies{
		EmployeeRepo: repo,
		Sessions:     sessions,
		Dispatcher:   dispatcher,
	})

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, 5*time.Second)
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler("test", "test", nil, nil),
		Auth:           handlers.NewAuthHandler(authService, sessions),
		Employee:       handlers.NewEmployeeHandler(),
		Assistant:      handlers.NewAssistantHandler(service.NewAssistantService(knowledgeRepo, logger)),
		Knowledge:      handlers.NewKnowledgeHandler(service.NewKnowledgeService(knowledgeRepo)),
		Analytics:      handlers.NewAnalyticsHandler(service.NewAnalyticsService(metrics)),
		AuthMiddleware: auth.NewAuthMiddleware(sessions, authService.TokenManager(), repo),
	})

	return &testServer{app: app, sessions: sessions, repo: repo}
}

func (ts *testServer) login(t *testing.T, employeeID, password string) (*http.Response, string) {
	t.Helper()

	body, err := json.Marshal(map[string]string{"employeeId": employeeID, "password": password})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := ts.app.Test(req, 5000)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(raw)
}

func sessionCookie(resp *http.Response) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == session.CookieName {
			return c
		}
	}
	return nil
}

func TestLogin_Success(t *testing.T) {
	ts := newTestServer(t, true)

	resp, body := ts.login(t, "123", "123")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Contains(t, body, `"name":"Test User"`)
	assert.Contains(t, body, `"role":"Employee"`)
	assert.NotContains(t, body, "password")
	assert.Contains(t, body, `"token"`)

	cookie := sessionCookie(resp)
	require.NotNil(t, cookie)
	assert.NotEmpty(t, cookie.Value)
	assert.True(t, cookie.HttpOnly)
}

func TestLogin_InvalidCredentialsAreUniform(t *testing.T) {
	ts := newTestServer(t, true)

	wrongResp, wrongBody := ts.login(t, "IDMS123", "wrong")
	unknownResp, unknownBody := ts.login(t, "NOBODY", "whatever")

	assert.Equal(t, http.StatusUnauthorized, wrongResp.StatusCode)
	assert.Equal(t, http.StatusUnauthorized, unknownResp.StatusCode)
	assert.JSONEq(t, wrongBody, unknownBody)
	assert.Contains(t, wrongBody, "invalid credentials")
	assert.Nil(t, sessionCookie(wrongResp))
}

func TestLogin_MalformedBody(t *testing.T) {
	ts := newTestServer(t, true)

	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: "not-json"},
		{name: "missing password", body: `{"employeeId":"123"}`},
		{name: "missing employee id", body: `{"password":"123"}`},
		{name: "blank employee id", body: `{"employeeId":"   ","password":"123"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader([]byte(tt.body)))
			req.Header.Set("Content-Type", "application/json")

			resp, err := ts.app.Test(req, 5000)
			require.NoError(t, err)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestSession_RoundTrip(t *testing.T) {
	ts := newTestServer(t, true)

	// Unauthenticated check first.
	req := httptest.NewRequest(http.MethodGet, "/api/auth/session", nil)
	resp, err := ts.app.Test(req, 5000)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"authenticated":false}`, string(raw))

	loginResp, _ := ts.login(t, "123", "123")
	cookie := sessionCookie(loginResp)
	require.NotNil(t, cookie)

	req = httptest.NewRequest(http.MethodGet, "/api/auth/session", nil)
	req.AddCookie(cookie)
	resp, err = ts.app.Test(req, 5000)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	raw, _ = io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"authenticated":true}`, string(raw))

	req = httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req.AddCookie(cookie)
	resp, err = ts.app.Test(req, 5000)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/api/auth/session", nil)
	req.AddCookie(cookie)
	resp, err = ts.app.Test(req, 5000)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLogout_TwiceIsStillSuccess(t *testing.T) {
	ts := newTestServer(t, true)

	loginResp, _ := ts.login(t, "123", "123")
	cookie := sessionCookie(loginResp)
	require.NotNil(t, cookie)

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
		req.AddCookie(cookie)
		resp, err := ts.app.Test(req, 5000)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	}

	// Without any cookie at all it still succeeds.
	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	resp, err := ts.app.Test(req, 5000)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestEmployeeMe(t *testing.T) {
	ts := newTestServer(t, true)

	// No session at all.
	req := httptest.NewRequest(http.MethodGet, "/api/employee/me", nil)
	resp, err := ts.app.Test(req, 5000)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	loginResp, _ := ts.login(t, "IDMS123", "password123")
	cookie := sessionCookie(loginResp)
	require.NotNil(t, cookie)

	req = httptest.NewRequest(http.MethodGet, "/api/employee/me", nil)
	req.AddCookie(cookie)
	resp, err = ts.app.Test(req, 5000)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), `"name":"John Doe"`)
	assert.NotContains(t, string(raw), "password")
}

func TestEmployeeMe_BearerToken(t *testing.T) {
	ts := newTestServer(t, true)

	_, body := ts.login(t, "123", "123")
	var payload struct {
		Data struct {
			Auth struct {
				Token string `json:"token"`
			} `json:"auth"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &payload))
	require.NotEmpty(t, payload.Data.Auth.Token)

	req := httptest.NewRequest(http.MethodGet, "/api/employee/me", nil)
	req.Header.Set("Authorization", "Bearer "+payload.Data.Auth.Token)
	resp, err := ts.app.Test(req, 5000)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestEmployeeMe_StaleSession(t *testing.T) {
	// An empty directory with a live session models a reseeded process
	// receiving an old cookie.
	ts := newTestServer(t, false)

	sess, err := ts.sessions.Create(context.Background(), "GHOST")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/employee/me", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: sess.ID})
	resp, err := ts.app.Test(req, 5000)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAnalyticsSummary_RequiresAuth(t *testing.T) {
	ts := newTestServer(t, true)

	req := httptest.NewRequest(http.MethodGet, "/api/analytics/summary", nil)
	resp, err := ts.app.Test(req, 5000)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	loginResp, _ := ts.login(t, "123", "123")
	cookie := sessionCookie(loginResp)
	require.NotNil(t, cookie)

	req = httptest.NewRequest(http.MethodGet, "/api/analytics/summary", nil)
	req.AddCookie(cookie)
	resp, err = ts.app.Test(req, 5000)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "widgets")
}

func TestAssistantQuery_OpenEndpoint(t *testing.T) {
	ts := newTestServer(t, true)

	body := `{"query":"how do I reset my password"}`
	req := httptest.NewRequest(http.MethodPost, "/api/assistant/query", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")

	resp, err := ts.app.Test(req, 5000)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), `"shouldEscalate":false`)
}

func TestFAQ_OpenEndpoint(t *testing.T) {
	ts := newTestServer(t, true)

	req := httptest.NewRequest(http.MethodGet, "/api/faq", nil)
	resp, err := ts.app.Test(req, 5000)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "question")
}

func TestKnowledgeCRUD_OverHTTP(t *testing.T) {
	ts := newTestServer(t, true)

	loginResp, _ := ts.login(t, "IDMS124", "password123")
	cookie := sessionCookie(loginResp)
	require.NotNil(t, cookie)

	// Unauthenticated create is rejected.
	create := `{"title":"Clearing Browser Cache","content":"Use the settings menu."}`
	req := httptest.NewRequest(http.MethodPost, "/api/knowledge", bytes.NewReader([]byte(create)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := ts.app.Test(req, 5000)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	req = httptest.NewRequest(http.MethodPost, "/api/knowledge", bytes.NewReader([]byte(create)))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(cookie)
	resp, err = ts.app.Test(req, 5000)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var created struct {
		Data struct {
			ID int `json:"id"`
		} `json:"data"`
	}
	raw, _ := io.ReadAll(resp.Body)
	require.NoError(t, json.Unmarshal(raw, &created))
	assert.Equal(t, 4, created.Data.ID)

	req = httptest.NewRequest(http.MethodGet, "/api/knowledge/4", nil)
	resp, err = ts.app.Test(req, 5000)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/api/knowledge/99", nil)
	resp, err = ts.app.Test(req, 5000)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
