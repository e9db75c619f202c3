package contracts

import (
	"context"

	"clinicore-service/internal/app/models"
	"clinicore-service/internal/pkg/dto/requests"
	"clinicore-service/internal/pkg/dto/responses"
)

type PatientUsecase interface {
	CreatePatient(ctx context.Context, session *models.Session, request *requests.CreatePatient) (*responses.Patient, error)
	ListPatients(ctx context.Context, session *models.Session, search string, limit int) ([]responses.Patient, error)
	GetPatientByID(ctx context.Context, session *models.Session, patientID string) (*responses.Patient, error)
}

type PatientRepository interface {
	CreatePatient(ctx context.Context, patient *models.Patient) (string, error)
	FindByID(ctx context.Context, patientID string) (*models.Patient, error)
	FindByIDs(ctx context.Context, patientIDs []string) (map[string]*models.Patient, error)
	FindAll(ctx context.Context, limit int) ([]models.Patient, error)
	CountPatients(ctx context.Context) (int64, error)
}
