package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims *Claims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func testClaims(tenantID string, scopes ...string) *Claims {
	return &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		TenantID: tenantID,
		Scopes:   scopes,
	}
}

func doAuthed(handler http.Handler, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/decks", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestAuthPopulatesIdentity(t *testing.T) {
	var tenantID, userID string
	handler := Auth(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tenantID = GetTenantID(r.Context())
		userID = GetUserID(r.Context())
	}))

	rec := doAuthed(handler, signToken(t, testSecret, testClaims("tenant-1")))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "tenant-1", tenantID)
	assert.Equal(t, "user-1", userID)
}

func TestAuthRejectsMissingHeader(t *testing.T) {
	handler := Auth(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	rec := doAuthed(handler, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRejectsWrongSecret(t *testing.T) {
	handler := Auth(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	rec := doAuthed(handler, signToken(t, "other-secret", testClaims("tenant-1")))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRejectsTokenWithoutTenant(t *testing.T) {
	handler := Auth(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	rec := doAuthed(handler, signToken(t, testSecret, testClaims("")))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireScope(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	tests := []struct {
		name   string
		scopes []string
		want   int
	}{
		{"unscoped token grants everything", nil, http.StatusOK},
		{"matching scope", []string{ScopeDecks}, http.StatusOK},
		{"missing scope", []string{ScopeChat}, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := Auth(testSecret)(RequireScope(ScopeDecks)(ok))
			rec := doAuthed(handler, signToken(t, testSecret, testClaims("tenant-1", tt.scopes...)))
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
