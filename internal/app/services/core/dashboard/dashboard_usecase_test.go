package dashboard

import (
	"context"
	"testing"

	"clinicore-service/internal/app/models"

	"github.com/stretchr/testify/assert"
)

type fakePatientRepository struct {
	count int64
}

func (f *fakePatientRepository) CreatePatient(ctx context.Context, patient *models.Patient) (string, error) {
	return "", nil
}

func (f *fakePatientRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	return nil, nil
}

func (f *fakePatientRepository) FindByIDs(ctx context.Context, patientIDs []string) (map[string]*models.Patient, error) {
	return nil, nil
}

func (f *fakePatientRepository) FindAll(ctx context.Context, limit int) ([]models.Patient, error) {
	return nil, nil
}

func (f *fakePatientRepository) CountPatients(ctx context.Context) (int64, error) {
	return f.count, nil
}

type fakeAppointmentRepository struct {
	count int64
}

func (f *fakeAppointmentRepository) CreateAppointment(ctx context.Context, appointment *models.Appointment) (string, error) {
	return "", nil
}

func (f *fakeAppointmentRepository) FindUpcoming(ctx context.Context, limit int) ([]models.Appointment, error) {
	return nil, nil
}

func (f *fakeAppointmentRepository) CountAppointments(ctx context.Context) (int64, error) {
	return f.count, nil
}

func TestGetStats(t *testing.T) {
	uc := NewDashboardUsecase(
		&fakePatientRepository{count: 42},
		&fakeAppointmentRepository{count: 7},
	)

	stats, err := uc.GetStats(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(42), stats.PatientCount)
	assert.Equal(t, int64(7), stats.AppointmentCount)
}
