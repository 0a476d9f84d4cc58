package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"cinema-api/pkg/utils"
)

func authHandler(tm *utils.TokenManager) (http.Handler, *utils.Identity) {
	var captured utils.Identity
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if identity, ok := utils.GetIdentityFromContext(r.Context()); ok {
			captured = identity
		}
		w.WriteHeader(http.StatusOK)
	})
	return Auth(tm, zap.NewNop())(next), &captured
}

func TestAuth_NoCookieHeader(t *testing.T) {
	tm := utils.NewTokenManager("test-secret", time.Hour)
	handler, _ := authHandler(tm)

	req := httptest.NewRequest(http.MethodGet, "/api/movies", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Cookie not found")
}

func TestAuth_CookieWithoutToken(t *testing.T) {
	tm := utils.NewTokenManager("test-secret", time.Hour)
	handler, _ := authHandler(tm)

	req := httptest.NewRequest(http.MethodGet, "/api/movies", nil)
	req.Header.Set("Cookie", "session_pref=dark")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Token not found in cookies")
}

func TestAuth_InvalidToken(t *testing.T) {
	tm := utils.NewTokenManager("test-secret", time.Hour)
	handler, _ := authHandler(tm)

	req := httptest.NewRequest(http.MethodGet, "/api/movies", nil)
	req.Header.Set("Cookie", "access_token=garbage")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid token")
}

func TestAuth_ValidToken(t *testing.T) {
	tm := utils.NewTokenManager("test-secret", time.Hour)
	handler, captured := authHandler(tm)

	token, err := tm.Issue(42, false)
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/movies", nil)
	req.Header.Set("Cookie", "access_token="+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(42), captured.UserID)
	assert.False(t, captured.IsAdmin)
}

func TestAuth_BearerPrefixedToken(t *testing.T) {
	tm := utils.NewTokenManager("test-secret", time.Hour)
	handler, captured := authHandler(tm)

	token, err := tm.Issue(7, true)
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/movies", nil)
	req.Header.Set("Cookie", "access_token=Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), captured.UserID)
	assert.True(t, captured.IsAdmin)
}

func TestAuth_TokenAmongOtherCookies(t *testing.T) {
	tm := utils.NewTokenManager("test-secret", time.Hour)
	handler, captured := authHandler(tm)

	token, err := tm.Issue(3, false)
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/movies", nil)
	req.Header.Set("Cookie", "theme=dark; access_token="+token+"; lang=en")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(3), captured.UserID)
}

func TestAdmin_AllowsAdmin(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := Admin(zap.NewNop())(next)

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	ctx := utils.SetIdentityContext(req.Context(), utils.Identity{UserID: 1, IsAdmin: true})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req.WithContext(ctx))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdmin_RejectsRegularUser(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := Admin(zap.NewNop())(next)

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	ctx := utils.SetIdentityContext(req.Context(), utils.Identity{UserID: 2, IsAdmin: false})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req.WithContext(ctx))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "Only for admin")
}

func TestAdmin_RejectsMissingIdentity(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := Admin(zap.NewNop())(next)

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
