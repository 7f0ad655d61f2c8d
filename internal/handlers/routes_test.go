package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rolandaayo/Astral-cu/internal/middleware"
	"github.com/rolandaayo/Astral-cu/internal/models"
	repomocks "github.com/rolandaayo/Astral-cu/internal/repository/mocks"
	"github.com/rolandaayo/Astral-cu/internal/security"
	svcmocks "github.com/rolandaayo/Astral-cu/internal/service/mocks"
)

type alwaysReady struct{}

func (alwaysReady) PingContext(context.Context) error { return nil }

func newTestRouter(t *testing.T, users *repomocks.MockUserRepository, userAdmin *svcmocks.MockUserAdmin, tokens *security.TokenManager) http.Handler {
	h := NewHandler(
		svcmocks.NewMockAuthenticator(t),
		svcmocks.NewMockVerifier(t),
		svcmocks.NewMockTopUpRunner(t),
		svcmocks.NewMockMessenger(t),
		userAdmin,
		svcmocks.NewMockHealthChecker(t),
		testLogger(),
	)

	return NewRouter(h, RouterDeps{
		Tokens:              tokens,
		Users:               users,
		Store:               alwaysReady{},
		Limiter:             middleware.NewLocalLimiter(),
		RateLimit:           100,
		RateWindow:          time.Minute,
		VerificationEnabled: true,
		Logger:              testLogger(),
	})
}

func TestRouter_ProtectedRouteRequiresToken(t *testing.T) {
	tokens := security.NewTokenManager("test-secret", time.Hour)
	router := newTestRouter(t, repomocks.NewMockUserRepository(t), svcmocks.NewMockUserAdmin(t), tokens)

	r := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_AdminRouteRejectsMember(t *testing.T) {
	tokens := security.NewTokenManager("test-secret", time.Hour)
	users := repomocks.NewMockUserRepository(t)

	memberID := uuid.New()
	users.On("FindByID", mock.Anything, memberID).
		Return(&models.User{ID: memberID, Role: models.RoleUser}, nil)

	router := newTestRouter(t, users, svcmocks.NewMockUserAdmin(t), tokens)

	token, err := tokens.Generate(memberID)
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRouter_AdminRouteAllowsAdmin(t *testing.T) {
	tokens := security.NewTokenManager("test-secret", time.Hour)
	users := repomocks.NewMockUserRepository(t)
	userAdmin := svcmocks.NewMockUserAdmin(t)

	adminID := uuid.New()
	users.On("FindByID", mock.Anything, adminID).
		Return(&models.User{ID: adminID, Role: models.RoleAdmin}, nil)
	userAdmin.On("List", mock.Anything).Return([]*models.User{}, nil)

	router := newTestRouter(t, users, userAdmin, tokens)

	token, err := tokens.Generate(adminID)
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_MemberCanReachOwnRecord(t *testing.T) {
	tokens := security.NewTokenManager("test-secret", time.Hour)
	userAdmin := svcmocks.NewMockUserAdmin(t)

	memberID := uuid.New()
	userAdmin.On("Me", mock.Anything, memberID).
		Return(&models.User{ID: memberID, Email: "ada@example.com"}, nil)

	router := newTestRouter(t, repomocks.NewMockUserRepository(t), userAdmin, tokens)

	token, err := tokens.Generate(memberID)
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_HealthIsPublic(t *testing.T) {
	tokens := security.NewTokenManager("test-secret", time.Hour)
	h := NewHandler(nil, nil, nil, nil, nil, svcmocksHealthOK(t), testLogger())

	router := NewRouter(h, RouterDeps{
		Tokens:     tokens,
		Users:      repomocks.NewMockUserRepository(t),
		Store:      alwaysReady{},
		Limiter:    middleware.NewLocalLimiter(),
		RateLimit:  100,
		RateWindow: time.Minute,
		Logger:     testLogger(),
	})

	r := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
}

func svcmocksHealthOK(t *testing.T) *svcmocks.MockHealthChecker {
	checker := svcmocks.NewMockHealthChecker(t)
	checker.On("PingContext", mock.Anything).Return(nil)
	return checker
}
