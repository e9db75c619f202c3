package guard

import (
	"testing"

	"clinicore-service/internal/app/models"
	"clinicore-service/internal/pkg/constvars"
	"clinicore-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
)

func TestRequireSession(t *testing.T) {
	t.Run("nil session is rejected", func(t *testing.T) {
		err := RequireSession(nil)

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
	})

	t.Run("session without user is rejected", func(t *testing.T) {
		err := RequireSession(&models.Session{SessionID: "s-1"})

		assert.Error(t, err)
	})

	t.Run("session with user passes", func(t *testing.T) {
		err := RequireSession(&models.Session{SessionID: "s-1", UserID: "u-1"})

		assert.NoError(t, err)
	})
}

func TestCanRead(t *testing.T) {
	session := &models.Session{SessionID: "s-1", UserID: "u-1"}

	t.Run("roster entities are readable by any authenticated user", func(t *testing.T) {
		assert.True(t, CanRead(EntityPatient, &models.Patient{}, session))
		assert.True(t, CanRead(EntityAppointment, &models.Appointment{}, session))
		assert.True(t, CanRead(EntityInvoice, &models.Invoice{}, session))
	})

	t.Run("nothing is readable without a session", func(t *testing.T) {
		assert.False(t, CanRead(EntityPatient, &models.Patient{}, nil))
		assert.False(t, CanRead(EntityMessageThread, &models.MessageThread{}, nil))
	})

	t.Run("threads require participation", func(t *testing.T) {
		thread := &models.MessageThread{Participants: []string{"u-1"}}
		other := &models.MessageThread{Participants: []string{"u-2"}}

		assert.True(t, CanRead(EntityMessageThread, thread, session))
		assert.False(t, CanRead(EntityMessageThread, other, session))
	})

	t.Run("message access follows the parent thread", func(t *testing.T) {
		thread := &models.MessageThread{Participants: []string{"u-1"}}

		assert.True(t, CanRead(EntityMessage, thread, session))
	})

	t.Run("unknown entity kind is denied", func(t *testing.T) {
		assert.False(t, CanRead(EntityKind("Unknown"), nil, session))
	})
}

func TestCanWrite(t *testing.T) {
	session := &models.Session{SessionID: "s-1", UserID: "u-1"}

	t.Run("write rules mirror read rules", func(t *testing.T) {
		thread := &models.MessageThread{Participants: []string{"u-2"}}

		assert.True(t, CanWrite(EntityPatient, &models.Patient{}, session))
		assert.False(t, CanWrite(EntityMessageThread, thread, session))
	})
}

func TestRequireThreadParticipant(t *testing.T) {
	thread := &models.MessageThread{Participants: []string{"u-1"}}

	t.Run("participant passes", func(t *testing.T) {
		err := RequireThreadParticipant(thread, &models.Session{SessionID: "s-1", UserID: "u-1"})

		assert.NoError(t, err)
	})

	t.Run("non-participant gets forbidden", func(t *testing.T) {
		err := RequireThreadParticipant(thread, &models.Session{SessionID: "s-2", UserID: "u-2"})

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
	})

	t.Run("missing session gets unauthorized before the membership check", func(t *testing.T) {
		err := RequireThreadParticipant(thread, nil)

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
	})
}
