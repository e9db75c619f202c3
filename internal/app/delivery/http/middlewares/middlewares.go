package middlewares

import (
	"net/http"
	"time"

	"clinicore-service/internal/app/config"
	"clinicore-service/internal/app/contracts"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log             *zap.Logger
	SessionService  contracts.SessionService
	InternalConfig  *config.InternalConfig
	authRateLimiter *RateLimiter
}

func NewMiddlewares(logger *zap.Logger, sessionService contracts.SessionService, internalConfig *config.InternalConfig) *Middlewares {
	return &Middlewares{
		Log:             logger,
		SessionService:  sessionService,
		InternalConfig:  internalConfig,
		authRateLimiter: NewRateLimiter(internalConfig.App.MaxRequests, time.Second, time.Minute),
	}
}

// LimitAuth applies the stricter per-IP limiter to credential endpoints.
func (m *Middlewares) LimitAuth(next http.Handler) http.Handler {
	return m.authRateLimiter.Limit(next)
}
