package middlewares

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"clinicore-service/internal/app/config"
	"clinicore-service/internal/app/models"
	"clinicore-service/internal/pkg/constvars"
	"clinicore-service/internal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeSessionService struct {
	sessions map[string]*models.Session
}

func (f *fakeSessionService) CreateSession(ctx context.Context, user *models.User) (*models.Session, string, error) {
	return nil, "", nil
}

func (f *fakeSessionService) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	return f.sessions[sessionID], nil
}

func (f *fakeSessionService) RevokeSession(ctx context.Context, sessionID string) error {
	delete(f.sessions, sessionID)
	return nil
}

func TestAuthenticate(t *testing.T) {
	secret := "test-secret"
	internalConfig := &config.InternalConfig{
		JWT: config.JWT{Secret: secret, ExpTimeInHour: 1},
	}

	session := &models.Session{
		SessionID: "session-1",
		UserID:    "user-1",
		Email:     "staff@clinic.test",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	sessionService := &fakeSessionService{sessions: map[string]*models.Session{
		"session-1": session,
	}}

	middlewares := NewMiddlewares(zap.NewNop(), sessionService, internalConfig)

	nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok := r.Context().Value(constvars.ContextSessionKey).(*models.Session)
		assert.True(t, ok, "session should be set in context")
		assert.Equal(t, "user-1", got.UserID)
		w.WriteHeader(http.StatusOK)
	})

	t.Run("valid token passes the session through", func(t *testing.T) {
		token, err := utils.GenerateSessionJWT("session-1", secret, 1)
		assert.NoError(t, err)

		req := httptest.NewRequest("GET", "/api/v1/patients", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)

		rr := httptest.NewRecorder()
		middlewares.Authenticate(nextHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("missing header yields unauthorized", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/patients", nil)

		rr := httptest.NewRecorder()
		middlewares.Authenticate(nextHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("garbage token yields unauthorized", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/patients", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer not-a-jwt")

		rr := httptest.NewRecorder()
		middlewares.Authenticate(nextHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("token for a revoked session yields unauthorized", func(t *testing.T) {
		token, err := utils.GenerateSessionJWT("session-gone", secret, 1)
		assert.NoError(t, err)

		req := httptest.NewRequest("GET", "/api/v1/patients", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)

		rr := httptest.NewRecorder()
		middlewares.Authenticate(nextHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("token signed with another secret yields unauthorized", func(t *testing.T) {
		token, err := utils.GenerateSessionJWT("session-1", "other-secret", 1)
		assert.NoError(t, err)

		req := httptest.NewRequest("GET", "/api/v1/patients", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)

		rr := httptest.NewRecorder()
		middlewares.Authenticate(nextHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
