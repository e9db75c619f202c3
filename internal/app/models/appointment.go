package models

import "time"

type AppointmentStatus string

const (
	// AppointmentScheduled is the only status produced at creation time.
	// There is no cancellation path.
	AppointmentScheduled AppointmentStatus = "SCHEDULED"
)

type Appointment struct {
	ID        string            `bson:"_id,omitempty"`
	PatientID string            `bson:"patientId"`
	StartsAt  time.Time         `bson:"startsAt"`
	Reason    string            `bson:"reason,omitempty"`
	Status    AppointmentStatus `bson:"status"`
	CreatedBy string            `bson:"createdBy"`
	TimeModel `bson:",inline"`
}
