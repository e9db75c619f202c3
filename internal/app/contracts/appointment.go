package contracts

import (
	"context"

	"clinicore-service/internal/app/models"
	"clinicore-service/internal/pkg/dto/requests"
	"clinicore-service/internal/pkg/dto/responses"
)

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, session *models.Session, request *requests.CreateAppointment) (*responses.Appointment, error)
	ListUpcomingAppointments(ctx context.Context, session *models.Session, limit int) ([]responses.Appointment, error)
}

type AppointmentRepository interface {
	CreateAppointment(ctx context.Context, appointment *models.Appointment) (string, error)
	FindUpcoming(ctx context.Context, limit int) ([]models.Appointment, error)
	CountAppointments(ctx context.Context) (int64, error)
}
