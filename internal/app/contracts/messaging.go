package contracts

import (
	"context"
	"time"

	"clinicore-service/internal/app/models"
	"clinicore-service/internal/pkg/dto/requests"
	"clinicore-service/internal/pkg/dto/responses"
)

type MessagingUsecase interface {
	CreateThread(ctx context.Context, session *models.Session, request *requests.CreateThread) (*responses.Thread, error)
	ListThreads(ctx context.Context, session *models.Session, limit int) ([]responses.Thread, error)
	SendMessage(ctx context.Context, session *models.Session, threadID string, request *requests.SendMessage) (*responses.Message, error)
	ListMessages(ctx context.Context, session *models.Session, threadID string, limit int) ([]responses.Message, error)
}

type ThreadRepository interface {
	CreateThread(ctx context.Context, thread *models.MessageThread) (string, error)
	FindByID(ctx context.Context, threadID string) (*models.MessageThread, error)
	FindByParticipant(ctx context.Context, userID string, limit int) ([]models.MessageThread, error)
	UpdateLastMessageAt(ctx context.Context, threadID string, lastMessageAt time.Time) error
}

type MessageRepository interface {
	CreateMessage(ctx context.Context, message *models.Message) (string, error)
	FindByThread(ctx context.Context, threadID string, limit int) ([]models.Message, error)
}
