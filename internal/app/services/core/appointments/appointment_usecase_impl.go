package appointments

import (
	"context"

	"clinicore-service/internal/app/contracts"
	"clinicore-service/internal/app/models"
	"clinicore-service/internal/app/services/core/guard"
	"clinicore-service/internal/pkg/constvars"
	"clinicore-service/internal/pkg/dto/requests"
	"clinicore-service/internal/pkg/dto/responses"
	"clinicore-service/internal/pkg/exceptions"
	"clinicore-service/internal/pkg/utils"
)

type appointmentUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	PatientRepository     contracts.PatientRepository
}

func NewAppointmentUsecase(
	appointmentMongoRepository contracts.AppointmentRepository,
	patientMongoRepository contracts.PatientRepository,
) contracts.AppointmentUsecase {
	return &appointmentUsecase{
		AppointmentRepository: appointmentMongoRepository,
		PatientRepository:     patientMongoRepository,
	}
}

func (uc *appointmentUsecase) CreateAppointment(ctx context.Context, session *models.Session, request *requests.CreateAppointment) (*responses.Appointment, error) {
	if err := guard.RequireSession(session); err != nil {
		return nil, err
	}

	utils.SanitizeCreateAppointmentRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	if request.PatientID == "" {
		return nil, exceptions.ErrMissingReference("patient")
	}

	// Parse before touching the store: an unparseable instant must never
	// reach a write.
	startsAt, err := utils.ParseAppointmentStartsAt(request.Date, request.Time)
	if err != nil {
		return nil, err
	}

	patient, err := uc.PatientRepository.FindByID(ctx, request.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound()
	}

	appointment := &models.Appointment{
		PatientID: request.PatientID,
		StartsAt:  startsAt,
		Reason:    request.Reason,
		Status:    models.AppointmentScheduled,
		CreatedBy: session.UserID,
	}

	appointmentID, err := uc.AppointmentRepository.CreateAppointment(ctx, appointment)
	if err != nil {
		return nil, err
	}
	appointment.ID = appointmentID

	response := utils.MapAppointmentToResponse(appointment, patient)
	return &response, nil
}

func (uc *appointmentUsecase) ListUpcomingAppointments(ctx context.Context, session *models.Session, limit int) ([]responses.Appointment, error) {
	if err := guard.RequireSession(session); err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = constvars.DefaultUpcomingApptLimit
	}

	appointments, err := uc.AppointmentRepository.FindUpcoming(ctx, limit)
	if err != nil {
		return nil, err
	}

	patientIDs := make([]string, 0, len(appointments))
	for i := range appointments {
		patientIDs = append(patientIDs, appointments[i].PatientID)
	}
	patientsByID, err := uc.PatientRepository.FindByIDs(ctx, patientIDs)
	if err != nil {
		return nil, err
	}

	response := make([]responses.Appointment, 0, len(appointments))
	for i := range appointments {
		response = append(response, utils.MapAppointmentToResponse(&appointments[i], patientsByID[appointments[i].PatientID]))
	}
	return response, nil
}
