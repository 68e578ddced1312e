package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"syscall"
	"testing"
	"time"

	"github.com/adarshtiwari-ai/dailydot-backend/internal/domain"
	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

const testSecret = "test-secret"

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func signToken(t *testing.T, secret string, method jwt.SigningMethod, claims Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func setupRouter(t *testing.T) http.Handler {
	t.Helper()
	log := newTestLogger(t)

	r := ginext.New("test")
	r.Use(RequestID(), RequestLogger(log), Recovery(log))

	whoami := func(c *ginext.Context) {
		caller, ok := CallerFrom(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, ginext.H{"id": caller.ID, "role": caller.Role})
	}

	api := r.Group("/api", Auth(NewTokenVerifier(testSecret), log))
	api.GET("/me", whoami)
	api.GET("/admin", RequireRole(domain.RoleAdmin), whoami)

	r.GET("/panic", func(c *ginext.Context) {
		panic("boom")
	})
	r.GET("/panic-after-write", func(c *ginext.Context) {
		c.String(http.StatusAccepted, "partial")
		panic("boom")
	})
	r.GET("/panic-broken-pipe", func(c *ginext.Context) {
		panic(fmt.Errorf("write response: %w", syscall.EPIPE))
	})
	r.GET("/panic-abort", func(c *ginext.Context) {
		panic(http.ErrAbortHandler)
	})

	return r
}

func do(r http.Handler, path, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestAuth_ValidToken(t *testing.T) {
	r := setupRouter(t)

	token := signToken(t, testSecret, jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "u1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	w := do(r, "/api/me", token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":"u1","role":"user"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
}

func TestAuth_LegacyUserIDClaim(t *testing.T) {
	r := setupRouter(t)

	token := signToken(t, testSecret, jwt.SigningMethodHS256, Claims{UserID: "legacy", Role: "admin"})

	w := do(r, "/api/admin", token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":"legacy","role":"admin"}`, w.Body.String())
}

func TestAuth_Rejects(t *testing.T) {
	r := setupRouter(t)

	expired := signToken(t, testSecret, jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "u1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	})
	foreign := signToken(t, "other-secret", jwt.SigningMethodHS256, Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "u1"}})
	wrongAlg := signToken(t, testSecret, jwt.SigningMethodHS512, Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "u1"}})
	noSubject := signToken(t, testSecret, jwt.SigningMethodHS256, Claims{Role: "admin"})

	tests := []struct {
		name  string
		token string
	}{
		{"missing", ""},
		{"garbage", "not-a-jwt"},
		{"expired", expired},
		{"foreign secret", foreign},
		{"unexpected algorithm", wrongAlg},
		{"no subject", noSubject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, "/api/me", tt.token)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestRequireRole_Forbidden(t *testing.T) {
	r := setupRouter(t)

	token := signToken(t, testSecret, jwt.SigningMethodHS256, Claims{Role: "provider", RegisteredClaims: jwt.RegisteredClaims{Subject: "w1"}})

	w := do(r, "/api/admin", token)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "access_denied")
}

func TestRequestID_KeepsIncoming(t *testing.T) {
	r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.Header.Set(RequestIDHeader, "req-123")
	r.ServeHTTP(w, req)

	assert.Equal(t, "req-123", w.Header().Get(RequestIDHeader))
}

func TestRecovery(t *testing.T) {
	r := setupRouter(t)

	w := do(r, "/panic", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "internal", body["reason"])
}

func TestRecovery_ResponseAlreadyStarted(t *testing.T) {
	r := setupRouter(t)

	w := do(r, "/panic-after-write", "")

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, "partial", w.Body.String())
}

func TestRecovery_ConnectionLost(t *testing.T) {
	r := setupRouter(t)

	w := do(r, "/panic-broken-pipe", "")

	assert.Empty(t, w.Body.String())
}

func TestRecovery_AbortHandlerPropagates(t *testing.T) {
	r := setupRouter(t)

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		do(r, "/panic-abort", "")
	})
}
