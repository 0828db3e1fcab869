package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/facilitydesk/core/internal/adapters/repository"
	"github.com/facilitydesk/core/internal/infrastructure/config"
	"github.com/facilitydesk/core/internal/infrastructure/logger"
)

const testOrigin = "http://localhost:5173"

func testConfig() *config.Config {
	return &config.Config{
		App:    config.AppConfig{Name: "FacilityDesk", Version: "test", Environment: "development"},
		Server: config.ServerConfig{Host: "127.0.0.1", Port: 8000, ShutdownTimeout: time.Second},
		JWT:    config.JWTConfig{Secret: "server-test-secret", Algorithm: "HS256"},
		Auth:   config.AuthConfig{Email: "sham@gmail.com", Password: "123456"},
		Logger: config.LoggerConfig{Level: "info", Format: "json"},
		Security: config.SecurityConfig{
			CORSAllowedOrigin: testOrigin,
		},
		Metrics: config.MetricsConfig{Enabled: true, Path: "/metrics"},
		Docs:    config.DocsConfig{Enabled: true},
	}
}

func newTestServer(t *testing.T, cfg *config.Config) *Server {
	t.Helper()

	srv, err := New(cfg, repository.NewStaticRepository(), logger.NewNop())
	require.NoError(t, err)
	return srv
}

func do(srv *Server, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func login(t *testing.T, srv *Server) string {
	t.Helper()

	rec := do(srv, http.MethodPost, "/api/login", `{"email":"sham@gmail.com","password":"123456"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "bearer", resp.TokenType)
	return resp.AccessToken
}

func TestNew_RejectsUnsupportedAlgorithm(t *testing.T) {
	cfg := testConfig()
	cfg.JWT.Algorithm = "RS256"

	_, err := New(cfg, repository.NewStaticRepository(), logger.NewNop())
	assert.Error(t, err)
}

func TestServer_Routes(t *testing.T) {
	srv := newTestServer(t, testConfig())

	token := login(t, srv)
	assert.NotEmpty(t, token)

	rec := do(srv, http.MethodPost, "/api/login", `{"email":"sham@gmail.com","password":"nope"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"detail":"Invalid credentials"}`, rec.Body.String())

	for _, path := range []string{"/api/services", "/api/checklists", "/api/tasks"} {
		rec := do(srv, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusOK, rec.Code, path)

		var items []map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items), path)
		assert.Len(t, items, 3, path)
	}
}

func TestServer_ReadEndpointsIgnoreTokenByDefault(t *testing.T) {
	srv := newTestServer(t, testConfig())

	rec := do(srv, http.MethodGet, "/api/tasks", "", map[string]string{
		echo.HeaderAuthorization: "Bearer garbage",
	})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_RequireToken(t *testing.T) {
	cfg := testConfig()
	cfg.Security.RequireToken = true
	srv := newTestServer(t, cfg)

	rec := do(srv, http.MethodGet, "/api/services", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"detail":"Not authenticated"}`, rec.Body.String())

	rec = do(srv, http.MethodGet, "/api/services", "", map[string]string{
		echo.HeaderAuthorization: "Basic abc",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(srv, http.MethodGet, "/api/services", "", map[string]string{
		echo.HeaderAuthorization: "Bearer garbage",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"detail":"Invalid token"}`, rec.Body.String())

	token := login(t, srv)
	rec = do(srv, http.MethodGet, "/api/services", "", map[string]string{
		echo.HeaderAuthorization: "Bearer " + token,
	})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_CORS(t *testing.T) {
	srv := newTestServer(t, testConfig())

	rec := do(srv, http.MethodOptions, "/api/login", "", map[string]string{
		echo.HeaderOrigin:                      testOrigin,
		echo.HeaderAccessControlRequestMethod:  http.MethodPost,
		echo.HeaderAccessControlRequestHeaders: "content-type,x-custom-header",
	})
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, testOrigin, rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	assert.Equal(t, "true", rec.Header().Get(echo.HeaderAccessControlAllowCredentials))
	assert.Contains(t, rec.Header().Get(echo.HeaderAccessControlAllowMethods), http.MethodPost)
	assert.Contains(t, rec.Header().Get(echo.HeaderAccessControlAllowMethods), http.MethodDelete)
	assert.Equal(t, "content-type,x-custom-header", rec.Header().Get(echo.HeaderAccessControlAllowHeaders))

	rec = do(srv, http.MethodGet, "/api/services", "", map[string]string{
		echo.HeaderOrigin: testOrigin,
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, testOrigin, rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	assert.Equal(t, "true", rec.Header().Get(echo.HeaderAccessControlAllowCredentials))

	rec = do(srv, http.MethodGet, "/api/services", "", map[string]string{
		echo.HeaderOrigin: "http://evil.example.com",
	})
	assert.Empty(t, rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}

func TestServer_GetEndpointsAreByteIdentical(t *testing.T) {
	srv := newTestServer(t, testConfig())

	for _, path := range []string{"/api/services", "/api/checklists", "/api/tasks"} {
		first := do(srv, http.MethodGet, path, "", nil).Body.Bytes()
		second := do(srv, http.MethodGet, path, "", nil).Body.Bytes()
		assert.Equal(t, first, second, path)
	}
}

func TestServer_HealthAndReady(t *testing.T) {
	srv := newTestServer(t, testConfig())

	rec := do(srv, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)

	rec = do(srv, http.MethodGet, "/ready", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var ready struct {
		Status      string         `json:"status"`
		Collections map[string]int `json:"collections"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ready))
	assert.Equal(t, "ready", ready.Status)
	assert.Equal(t, map[string]int{"services": 3, "checklists": 3, "tasks": 3}, ready.Collections)
}

func TestServer_RequestID(t *testing.T) {
	srv := newTestServer(t, testConfig())

	rec := do(srv, http.MethodGet, "/health", "", nil)
	assert.Len(t, rec.Header().Get(echo.HeaderXRequestID), 36)
}

func TestServer_Metrics(t *testing.T) {
	srv := newTestServer(t, testConfig())

	login(t, srv)
	do(srv, http.MethodPost, "/api/login", `{"email":"sham@gmail.com","password":"nope"}`, nil)
	do(srv, http.MethodGet, "/api/services", "", nil)

	rec := do(srv, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `login_attempts_total{outcome="success"} 1`)
	assert.Contains(t, body, `login_attempts_total{outcome="invalid_credentials"} 1`)
	assert.Contains(t, body, `http_requests_total{method="GET",path="/api/services",status="200"} 1`)
	assert.Contains(t, body, `http_requests_total{method="POST",path="/api/login",status="401"} 1`)
}

func TestServer_MetricsDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.Metrics.Enabled = false
	srv := newTestServer(t, cfg)

	rec := do(srv, http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	login(t, srv)
}

func TestServer_Swagger(t *testing.T) {
	srv := newTestServer(t, testConfig())

	rec := do(srv, http.MethodGet, "/swagger/doc.json", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/api/checklists")

	cfg := testConfig()
	cfg.Docs.Enabled = false
	rec = do(newTestServer(t, cfg), http.MethodGet, "/swagger/doc.json", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_NotFoundUsesDetailEnvelope(t *testing.T) {
	srv := newTestServer(t, testConfig())

	rec := do(srv, http.MethodGet, "/api/unknown", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"detail":"Not Found"}`, rec.Body.String())
}

func TestServer_RateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.Security.RateLimitRequests = 2
	cfg.Security.RateLimitWindow = time.Hour
	srv := newTestServer(t, cfg)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		codes = append(codes, do(srv, http.MethodGet, "/api/tasks", "", nil).Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}
