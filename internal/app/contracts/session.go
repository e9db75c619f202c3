package contracts

import (
	"context"

	"clinicore-service/internal/app/models"
)

type SessionService interface {
	CreateSession(ctx context.Context, user *models.User) (*models.Session, string, error)
	GetSession(ctx context.Context, sessionID string) (*models.Session, error)
	RevokeSession(ctx context.Context, sessionID string) error
}
