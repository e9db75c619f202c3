package session

import (
	"context"
	"time"

	"clinicore-service/internal/app/config"
	"clinicore-service/internal/app/contracts"
	"clinicore-service/internal/app/models"
	"clinicore-service/internal/pkg/exceptions"
	"clinicore-service/internal/pkg/utils"

	"github.com/goccy/go-json"
)

type sessionService struct {
	RedisRepository contracts.RedisRepository
	InternalConfig  *config.InternalConfig
}

func NewSessionService(redisRepository contracts.RedisRepository, internalConfig *config.InternalConfig) contracts.SessionService {
	return &sessionService{
		RedisRepository: redisRepository,
		InternalConfig:  internalConfig,
	}
}

// CreateSession stores the session document in Redis and returns it along
// with a signed bearer token carrying the session id.
func (s *sessionService) CreateSession(ctx context.Context, user *models.User) (*models.Session, string, error) {
	expiry := time.Duration(s.InternalConfig.App.SessionExpiryTimeInHour) * time.Hour

	session := &models.Session{
		SessionID: utils.GenerateSessionID(),
		UserID:    user.ID,
		Email:     user.Email,
		ExpiresAt: time.Now().Add(expiry),
	}

	err := s.RedisRepository.Set(ctx, session.SessionID, session, expiry)
	if err != nil {
		return nil, "", err
	}

	token, err := utils.GenerateSessionJWT(session.SessionID, s.InternalConfig.JWT.Secret, s.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return nil, "", exceptions.ErrServerProcess(err)
	}

	return session, token, nil
}

func (s *sessionService) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	data, err := s.RedisRepository.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if data == "" {
		return nil, exceptions.ErrSessionInvalid(nil)
	}

	var session models.Session
	err = json.Unmarshal([]byte(data), &session)
	if err != nil {
		return nil, exceptions.ErrSessionInvalid(err)
	}
	return &session, nil
}

func (s *sessionService) RevokeSession(ctx context.Context, sessionID string) error {
	return s.RedisRepository.Delete(ctx, sessionID)
}
