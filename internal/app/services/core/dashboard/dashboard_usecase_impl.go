package dashboard

import (
	"context"

	"clinicore-service/internal/app/contracts"
	"clinicore-service/internal/pkg/dto/responses"
)

type dashboardUsecase struct {
	PatientRepository     contracts.PatientRepository
	AppointmentRepository contracts.AppointmentRepository
}

func NewDashboardUsecase(
	patientMongoRepository contracts.PatientRepository,
	appointmentMongoRepository contracts.AppointmentRepository,
) contracts.DashboardUsecase {
	return &dashboardUsecase{
		PatientRepository:     patientMongoRepository,
		AppointmentRepository: appointmentMongoRepository,
	}
}

// GetStats backs the public landing page counters, so it takes no session.
func (uc *dashboardUsecase) GetStats(ctx context.Context) (*responses.DashboardStats, error) {
	patientCount, err := uc.PatientRepository.CountPatients(ctx)
	if err != nil {
		return nil, err
	}

	appointmentCount, err := uc.AppointmentRepository.CountAppointments(ctx)
	if err != nil {
		return nil, err
	}

	return &responses.DashboardStats{
		PatientCount:     patientCount,
		AppointmentCount: appointmentCount,
	}, nil
}
