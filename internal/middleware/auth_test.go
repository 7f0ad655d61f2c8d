package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rolandaayo/Astral-cu/internal/models"
	"github.com/rolandaayo/Astral-cu/internal/repository/mocks"
	"github.com/rolandaayo/Astral-cu/internal/security"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantOK    bool
	}{
		{name: "standard", header: "Bearer abc123", wantToken: "abc123", wantOK: true},
		{name: "lowercase scheme", header: "bearer abc123", wantToken: "abc123", wantOK: true},
		{name: "extra whitespace", header: "Bearer   abc123", wantToken: "abc123", wantOK: true},
		{name: "missing header", header: "", wantOK: false},
		{name: "wrong scheme", header: "Basic abc123", wantOK: false},
		{name: "scheme only", header: "Bearer", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}

			token, ok := bearerToken(r)

			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantToken, token)
			}
		})
	}
}

func TestAuthenticate_ValidToken(t *testing.T) {
	tokens := security.NewTokenManager("test-secret", time.Hour)
	userID := uuid.New()
	token, err := tokens.Generate(userID)
	require.NoError(t, err)

	var gotID uuid.UUID
	handler := Authenticate(tokens, testLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, _ = UserIDFrom(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, userID, gotID)
}

func TestAuthenticate_MissingToken(t *testing.T) {
	tokens := security.NewTokenManager("test-secret", time.Hour)

	handler := Authenticate(tokens, testLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticate_BadToken(t *testing.T) {
	tokens := security.NewTokenManager("test-secret", time.Hour)

	handler := Authenticate(tokens, testLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Authorization", "Bearer garbage")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAdmin_AllowsAdmin(t *testing.T) {
	users := mocks.NewMockUserRepository(t)
	adminID := uuid.New()
	users.On("FindByID", mock.Anything, adminID).
		Return(&models.User{ID: adminID, Role: models.RoleAdmin}, nil)

	tokens := security.NewTokenManager("test-secret", time.Hour)
	token, err := tokens.Generate(adminID)
	require.NoError(t, err)

	handler := Authenticate(tokens, testLogger())(
		RequireAdmin(users, testLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})),
	)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAdmin_RejectsMember(t *testing.T) {
	users := mocks.NewMockUserRepository(t)
	memberID := uuid.New()
	users.On("FindByID", mock.Anything, memberID).
		Return(&models.User{ID: memberID, Role: models.RoleUser}, nil)

	tokens := security.NewTokenManager("test-secret", time.Hour)
	token, err := tokens.Generate(memberID)
	require.NoError(t, err)

	handler := Authenticate(tokens, testLogger())(
		RequireAdmin(users, testLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler must not run")
		})),
	)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireAdmin_WithoutAuthenticate(t *testing.T) {
	users := mocks.NewMockUserRepository(t)

	handler := RequireAdmin(users, testLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
