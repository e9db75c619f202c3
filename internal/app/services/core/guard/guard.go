// Package guard holds the authorization rules for the clinic core. Checks
// are pure: they look only at the entity and the explicitly passed session,
// and they run before any store call is attempted.
package guard

import (
	"clinicore-service/internal/app/models"
	"clinicore-service/internal/pkg/exceptions"
)

type EntityKind string

const (
	EntityPatient       EntityKind = "Patient"
	EntityAppointment   EntityKind = "Appointment"
	EntityInvoice       EntityKind = "Invoice"
	EntityMessageThread EntityKind = "MessageThread"
	EntityMessage       EntityKind = "Message"
)

// RequireSession fails fast when there is no active session. Callers must
// surface the error and redirect to sign-in; no store call may precede it.
func RequireSession(session *models.Session) error {
	if session == nil || session.UserID == "" {
		return exceptions.ErrUnauthenticated(nil)
	}
	return nil
}

// CanRead reports whether the session may read the given entity. The clinic
// roster (patients, appointments, invoices) is shared among all
// authenticated users; threads and messages are participant-scoped.
func CanRead(kind EntityKind, entity interface{}, session *models.Session) bool {
	if session == nil || session.UserID == "" {
		return false
	}

	switch kind {
	case EntityPatient, EntityAppointment, EntityInvoice:
		return true
	case EntityMessageThread, EntityMessage:
		// Messages carry no ACL of their own; access follows the parent thread.
		thread, ok := entity.(*models.MessageThread)
		return ok && thread.HasParticipant(session.UserID)
	default:
		return false
	}
}

// CanWrite reports whether the session may create or mutate the given
// entity. The rules mirror CanRead: messaging is the only ownership-scoped
// surface in this core.
func CanWrite(kind EntityKind, entity interface{}, session *models.Session) bool {
	return CanRead(kind, entity, session)
}

// RequireThreadParticipant enforces thread membership for reads and sends.
func RequireThreadParticipant(thread *models.MessageThread, session *models.Session) error {
	if err := RequireSession(session); err != nil {
		return err
	}
	if !thread.HasParticipant(session.UserID) {
		return exceptions.ErrNotThreadParticipant()
	}
	return nil
}
