package messaging

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"clinicore-service/internal/app/models"
	"clinicore-service/internal/pkg/constvars"
	"clinicore-service/internal/pkg/dto/requests"
	"clinicore-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeThreadRepository struct {
	threads     []models.MessageThread
	inserts     int
	touchCalls  int
	failTouches bool
}

func (f *fakeThreadRepository) CreateThread(ctx context.Context, thread *models.MessageThread) (string, error) {
	f.inserts++
	id := "thread-" + strconv.Itoa(f.inserts)
	stored := *thread
	stored.ID = id
	f.threads = append(f.threads, stored)
	return id, nil
}

func (f *fakeThreadRepository) FindByID(ctx context.Context, threadID string) (*models.MessageThread, error) {
	for i := range f.threads {
		if f.threads[i].ID == threadID {
			return &f.threads[i], nil
		}
	}
	return nil, nil
}

func (f *fakeThreadRepository) FindByParticipant(ctx context.Context, userID string, limit int) ([]models.MessageThread, error) {
	result := make([]models.MessageThread, 0, len(f.threads))
	for i := range f.threads {
		if f.threads[i].HasParticipant(userID) {
			result = append(result, f.threads[i])
		}
	}
	return result, nil
}

func (f *fakeThreadRepository) UpdateLastMessageAt(ctx context.Context, threadID string, lastMessageAt time.Time) error {
	f.touchCalls++
	if f.failTouches {
		return errors.New("write concern failure")
	}
	for i := range f.threads {
		if f.threads[i].ID == threadID {
			f.threads[i].LastMessageAt = lastMessageAt
		}
	}
	return nil
}

type fakeMessageRepository struct {
	messages []models.Message
	inserts  int
}

func (f *fakeMessageRepository) CreateMessage(ctx context.Context, message *models.Message) (string, error) {
	f.inserts++
	id := "message-" + strconv.Itoa(f.inserts)
	stored := *message
	stored.ID = id
	f.messages = append(f.messages, stored)
	return id, nil
}

func (f *fakeMessageRepository) FindByThread(ctx context.Context, threadID string, limit int) ([]models.Message, error) {
	result := make([]models.Message, 0, len(f.messages))
	for i := range f.messages {
		if f.messages[i].ThreadID == threadID {
			result = append(result, f.messages[i])
		}
	}
	return result, nil
}

type fakePatientRepository struct {
	patients map[string]*models.Patient
}

func (f *fakePatientRepository) CreatePatient(ctx context.Context, patient *models.Patient) (string, error) {
	return "", nil
}

func (f *fakePatientRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	return f.patients[patientID], nil
}

func (f *fakePatientRepository) FindByIDs(ctx context.Context, patientIDs []string) (map[string]*models.Patient, error) {
	result := make(map[string]*models.Patient)
	for _, id := range patientIDs {
		if patient, ok := f.patients[id]; ok {
			result[id] = patient
		}
	}
	return result, nil
}

func (f *fakePatientRepository) FindAll(ctx context.Context, limit int) ([]models.Patient, error) {
	return nil, nil
}

func (f *fakePatientRepository) CountPatients(ctx context.Context) (int64, error) {
	return int64(len(f.patients)), nil
}

type messagingFixture struct {
	threadRepo  *fakeThreadRepository
	messageRepo *fakeMessageRepository
	uc          *messagingUsecase
}

func newMessagingFixture() *messagingFixture {
	threadRepo := &fakeThreadRepository{}
	messageRepo := &fakeMessageRepository{}
	patientRepo := &fakePatientRepository{patients: map[string]*models.Patient{
		"patient-1": {ID: "patient-1", FirstName: "Ada", LastName: "Lovelace"},
	}}
	uc := NewMessagingUsecase(zap.NewNop(), threadRepo, messageRepo, patientRepo).(*messagingUsecase)
	return &messagingFixture{threadRepo: threadRepo, messageRepo: messageRepo, uc: uc}
}

func sessionFor(userID string) *models.Session {
	return &models.Session{SessionID: "s-" + userID, UserID: userID}
}

func TestCreateThread(t *testing.T) {
	t.Run("creator becomes the only participant", func(t *testing.T) {
		fx := newMessagingFixture()

		response, err := fx.uc.CreateThread(context.Background(), sessionFor("u-1"), &requests.CreateThread{
			Subject: "Lab results",
		})

		assert.NoError(t, err)
		assert.Equal(t, []string{"u-1"}, response.Participants)
	})

	t.Run("blank subject is rejected", func(t *testing.T) {
		fx := newMessagingFixture()

		_, err := fx.uc.CreateThread(context.Background(), sessionFor("u-1"), &requests.CreateThread{
			Subject: "   ",
		})

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		assert.Equal(t, 0, fx.threadRepo.inserts)
	})

	t.Run("unknown linked patient is rejected", func(t *testing.T) {
		fx := newMessagingFixture()

		_, err := fx.uc.CreateThread(context.Background(), sessionFor("u-1"), &requests.CreateThread{
			Subject:   "Lab results",
			PatientID: "patient-999",
		})

		assert.Error(t, err)
		assert.Equal(t, 0, fx.threadRepo.inserts)
	})

	t.Run("anonymous caller is rejected", func(t *testing.T) {
		fx := newMessagingFixture()

		_, err := fx.uc.CreateThread(context.Background(), nil, &requests.CreateThread{Subject: "Lab results"})

		assert.Error(t, err)
		assert.Equal(t, 0, fx.threadRepo.inserts)
	})
}

func TestSendMessage(t *testing.T) {
	t.Run("saves the message and touches the thread", func(t *testing.T) {
		fx := newMessagingFixture()
		session := sessionFor("u-1")

		thread, err := fx.uc.CreateThread(context.Background(), session, &requests.CreateThread{Subject: "Lab results"})
		assert.NoError(t, err)

		response, err := fx.uc.SendMessage(context.Background(), session, thread.ID, &requests.SendMessage{
			Body: "  Results look normal.  ",
		})

		assert.NoError(t, err)
		assert.Equal(t, "Results look normal.", response.Body)
		assert.Equal(t, "u-1", response.SenderID)
		assert.Equal(t, 1, fx.messageRepo.inserts)
		assert.Equal(t, 1, fx.threadRepo.touchCalls)
	})

	t.Run("blank body is rejected before the thread lookup", func(t *testing.T) {
		fx := newMessagingFixture()
		session := sessionFor("u-1")

		thread, err := fx.uc.CreateThread(context.Background(), session, &requests.CreateThread{Subject: "Lab results"})
		assert.NoError(t, err)

		_, err = fx.uc.SendMessage(context.Background(), session, thread.ID, &requests.SendMessage{Body: "   "})

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		assert.Equal(t, 0, fx.messageRepo.inserts)
	})

	t.Run("unknown thread yields not found", func(t *testing.T) {
		fx := newMessagingFixture()

		_, err := fx.uc.SendMessage(context.Background(), sessionFor("u-1"), "thread-999", &requests.SendMessage{Body: "hello"})

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})

	t.Run("non-participant is forbidden and nothing is persisted", func(t *testing.T) {
		fx := newMessagingFixture()

		thread, err := fx.uc.CreateThread(context.Background(), sessionFor("u-1"), &requests.CreateThread{Subject: "Lab results"})
		assert.NoError(t, err)

		_, err = fx.uc.SendMessage(context.Background(), sessionFor("u-2"), thread.ID, &requests.SendMessage{Body: "hello"})

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
		assert.Equal(t, 0, fx.messageRepo.inserts)
		assert.Equal(t, 0, fx.threadRepo.touchCalls)
	})

	t.Run("a failed thread touch does not fail the send", func(t *testing.T) {
		fx := newMessagingFixture()
		session := sessionFor("u-1")

		thread, err := fx.uc.CreateThread(context.Background(), session, &requests.CreateThread{Subject: "Lab results"})
		assert.NoError(t, err)

		fx.threadRepo.failTouches = true

		response, err := fx.uc.SendMessage(context.Background(), session, thread.ID, &requests.SendMessage{Body: "hello"})

		assert.NoError(t, err)
		assert.NotEmpty(t, response.ID)
		assert.Equal(t, 1, fx.messageRepo.inserts)
		assert.Equal(t, 1, fx.threadRepo.touchCalls)
	})
}

func TestListMessages(t *testing.T) {
	t.Run("participant reads messages in stored order", func(t *testing.T) {
		fx := newMessagingFixture()
		session := sessionFor("u-1")

		thread, err := fx.uc.CreateThread(context.Background(), session, &requests.CreateThread{Subject: "Lab results"})
		assert.NoError(t, err)

		for _, body := range []string{"first", "second", "third"} {
			_, err := fx.uc.SendMessage(context.Background(), session, thread.ID, &requests.SendMessage{Body: body})
			assert.NoError(t, err)
		}

		response, err := fx.uc.ListMessages(context.Background(), session, thread.ID, 0)

		assert.NoError(t, err)
		assert.Len(t, response, 3)
		assert.Equal(t, "first", response[0].Body)
		assert.Equal(t, "third", response[2].Body)
	})

	t.Run("non-participant is forbidden", func(t *testing.T) {
		fx := newMessagingFixture()

		thread, err := fx.uc.CreateThread(context.Background(), sessionFor("u-1"), &requests.CreateThread{Subject: "Lab results"})
		assert.NoError(t, err)

		_, err = fx.uc.ListMessages(context.Background(), sessionFor("u-2"), thread.ID, 0)

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
	})
}

func TestListThreads(t *testing.T) {
	t.Run("returns only the caller's threads with linked patient attached", func(t *testing.T) {
		fx := newMessagingFixture()

		_, err := fx.uc.CreateThread(context.Background(), sessionFor("u-1"), &requests.CreateThread{
			Subject:   "Lab results",
			PatientID: "patient-1",
		})
		assert.NoError(t, err)
		_, err = fx.uc.CreateThread(context.Background(), sessionFor("u-2"), &requests.CreateThread{Subject: "Billing"})
		assert.NoError(t, err)

		response, err := fx.uc.ListThreads(context.Background(), sessionFor("u-1"), 0)

		assert.NoError(t, err)
		assert.Len(t, response, 1)
		assert.Equal(t, "Lab results", response[0].Subject)
		assert.NotNil(t, response[0].Patient)
		assert.Equal(t, "Ada Lovelace", response[0].Patient.DisplayName)
	})
}
