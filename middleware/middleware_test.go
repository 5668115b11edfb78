package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = []byte("test-secret")

func okHandler(called *bool) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		*called = true
		w.WriteHeader(http.StatusOK)
	}
}

func TestIssueAndValidateToken(t *testing.T) {
	guard := NewAdminGuard(secret, time.Hour)

	token, err := guard.IssueToken()
	require.NoError(t, err)

	claims, err := guard.ValidateToken(token)
	require.NoError(t, err)
	assert.True(t, claims.IsAdmin)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := NewAdminGuard([]byte("other-secret"), time.Hour).IssueToken()
	require.NoError(t, err)

	_, err = NewAdminGuard(secret, time.Hour).ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenExpired(t *testing.T) {
	guard := NewAdminGuard(secret, -time.Minute)
	token, err := guard.IssueToken()
	require.NoError(t, err)

	_, err = guard.ValidateToken(token)
	assert.Error(t, err)
}

func TestRequireAdminFromCookie(t *testing.T) {
	guard := NewAdminGuard(secret, time.Hour)
	token, err := guard.IssueToken()
	require.NoError(t, err)

	var called bool
	r := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	r.AddCookie(&http.Cookie{Name: "token", Value: token})
	w := httptest.NewRecorder()

	guard.RequireAdmin(okHandler(&called))(w, r, nil)

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAdminFromBearerHeader(t *testing.T) {
	guard := NewAdminGuard(secret, time.Hour)
	token, err := guard.IssueToken()
	require.NoError(t, err)

	var called bool
	r := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	guard.RequireAdmin(okHandler(&called))(w, r, nil)

	assert.True(t, called)
}

func TestRequireAdminRejects(t *testing.T) {
	guard := NewAdminGuard(secret, time.Hour)

	tests := []struct {
		name  string
		setup func(r *http.Request)
	}{
		{"no token", func(r *http.Request) {}},
		{"garbage cookie", func(r *http.Request) {
			r.AddCookie(&http.Cookie{Name: "token", Value: "garbage"})
		}},
		{"malformed header", func(r *http.Request) {
			r.Header.Set("Authorization", "Token abc")
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var called bool
			r := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
			tt.setup(r)
			w := httptest.NewRecorder()

			guard.RequireAdmin(okHandler(&called))(w, r, nil)

			assert.False(t, called)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}
