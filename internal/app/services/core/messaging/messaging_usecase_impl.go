package messaging

import (
	"context"
	"strings"
	"time"

	"clinicore-service/internal/app/contracts"
	"clinicore-service/internal/app/models"
	"clinicore-service/internal/app/services/core/guard"
	"clinicore-service/internal/pkg/constvars"
	"clinicore-service/internal/pkg/dto/requests"
	"clinicore-service/internal/pkg/dto/responses"
	"clinicore-service/internal/pkg/exceptions"
	"clinicore-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type messagingUsecase struct {
	Log               *zap.Logger
	ThreadRepository  contracts.ThreadRepository
	MessageRepository contracts.MessageRepository
	PatientRepository contracts.PatientRepository
}

func NewMessagingUsecase(
	logger *zap.Logger,
	threadMongoRepository contracts.ThreadRepository,
	messageMongoRepository contracts.MessageRepository,
	patientMongoRepository contracts.PatientRepository,
) contracts.MessagingUsecase {
	return &messagingUsecase{
		Log:               logger,
		ThreadRepository:  threadMongoRepository,
		MessageRepository: messageMongoRepository,
		PatientRepository: patientMongoRepository,
	}
}

func (uc *messagingUsecase) CreateThread(ctx context.Context, session *models.Session, request *requests.CreateThread) (*responses.Thread, error) {
	if err := guard.RequireSession(session); err != nil {
		return nil, err
	}

	utils.SanitizeCreateThreadRequest(request)
	if request.Subject == "" {
		return nil, exceptions.ErrEmptySubject()
	}

	if request.PatientID != "" {
		patient, err := uc.PatientRepository.FindByID(ctx, request.PatientID)
		if err != nil {
			return nil, err
		}
		if patient == nil {
			return nil, exceptions.ErrPatientNotFound()
		}
	}

	// The creator is always a participant; nobody else is added at creation.
	thread := &models.MessageThread{
		Subject:       request.Subject,
		Participants:  []string{session.UserID},
		PatientID:     request.PatientID,
		LastMessageAt: time.Now(),
	}

	threadID, err := uc.ThreadRepository.CreateThread(ctx, thread)
	if err != nil {
		return nil, err
	}
	thread.ID = threadID

	response := utils.MapThreadToResponse(thread, nil)
	return &response, nil
}

func (uc *messagingUsecase) ListThreads(ctx context.Context, session *models.Session, limit int) ([]responses.Thread, error) {
	if err := guard.RequireSession(session); err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = constvars.DefaultThreadListLimit
	}

	threads, err := uc.ThreadRepository.FindByParticipant(ctx, session.UserID, limit)
	if err != nil {
		return nil, err
	}

	patientIDs := make([]string, 0, len(threads))
	for i := range threads {
		if threads[i].PatientID != "" {
			patientIDs = append(patientIDs, threads[i].PatientID)
		}
	}
	patientsByID, err := uc.PatientRepository.FindByIDs(ctx, patientIDs)
	if err != nil {
		return nil, err
	}

	response := make([]responses.Thread, 0, len(threads))
	for i := range threads {
		response = append(response, utils.MapThreadToResponse(&threads[i], patientsByID[threads[i].PatientID]))
	}
	return response, nil
}

func (uc *messagingUsecase) SendMessage(ctx context.Context, session *models.Session, threadID string, request *requests.SendMessage) (*responses.Message, error) {
	if err := guard.RequireSession(session); err != nil {
		return nil, err
	}

	body := strings.TrimSpace(request.Body)
	if body == "" {
		return nil, exceptions.ErrEmptyMessageBody()
	}

	thread, err := uc.ThreadRepository.FindByID(ctx, threadID)
	if err != nil {
		return nil, err
	}
	if thread == nil {
		return nil, exceptions.ErrThreadNotFound()
	}
	if err := guard.RequireThreadParticipant(thread, session); err != nil {
		return nil, err
	}

	message := &models.Message{
		ThreadID: threadID,
		SenderID: session.UserID,
		Body:     body,
		SentAt:   time.Now(),
	}

	messageID, err := uc.MessageRepository.CreateMessage(ctx, message)
	if err != nil {
		return nil, err
	}
	message.ID = messageID

	// Second, independent write. The store offers no transaction across the
	// two documents; a failed touch only stales the thread list ordering,
	// so the send still counts as delivered.
	err = uc.ThreadRepository.UpdateLastMessageAt(ctx, threadID, message.SentAt)
	if err != nil {
		uc.Log.Warn("Failed to update thread lastMessageAt after send",
			zap.String(constvars.LoggingThreadIDKey, threadID),
			zap.Error(err),
		)
	}

	response := utils.MapMessageToResponse(message)
	return &response, nil
}

func (uc *messagingUsecase) ListMessages(ctx context.Context, session *models.Session, threadID string, limit int) ([]responses.Message, error) {
	if err := guard.RequireSession(session); err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = constvars.DefaultMessageListLimit
	}

	thread, err := uc.ThreadRepository.FindByID(ctx, threadID)
	if err != nil {
		return nil, err
	}
	if thread == nil {
		return nil, exceptions.ErrThreadNotFound()
	}
	if err := guard.RequireThreadParticipant(thread, session); err != nil {
		return nil, err
	}

	messages, err := uc.MessageRepository.FindByThread(ctx, threadID, limit)
	if err != nil {
		return nil, err
	}

	response := make([]responses.Message, 0, len(messages))
	for i := range messages {
		response = append(response, utils.MapMessageToResponse(&messages[i]))
	}
	return response, nil
}
