package patients

import (
	"context"
	"strings"

	"clinicore-service/internal/app/contracts"
	"clinicore-service/internal/app/models"
	"clinicore-service/internal/app/services/core/guard"
	"clinicore-service/internal/pkg/constvars"
	"clinicore-service/internal/pkg/dto/requests"
	"clinicore-service/internal/pkg/dto/responses"
	"clinicore-service/internal/pkg/exceptions"
	"clinicore-service/internal/pkg/utils"
)

type patientUsecase struct {
	PatientRepository contracts.PatientRepository
}

func NewPatientUsecase(patientMongoRepository contracts.PatientRepository) contracts.PatientUsecase {
	return &patientUsecase{
		PatientRepository: patientMongoRepository,
	}
}

func (uc *patientUsecase) CreatePatient(ctx context.Context, session *models.Session, request *requests.CreatePatient) (*responses.Patient, error) {
	if err := guard.RequireSession(session); err != nil {
		return nil, err
	}

	utils.SanitizeCreatePatientRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	dob, err := utils.ParseDob(request.Dob)
	if err != nil {
		return nil, err
	}

	// First and last name may both be empty; display falls back to "Unnamed".
	patient := &models.Patient{
		FirstName: request.FirstName,
		LastName:  request.LastName,
		Dob:       dob,
		Phone:     request.Phone,
		Email:     request.Email,
		CreatedBy: session.UserID,
	}

	patientID, err := uc.PatientRepository.CreatePatient(ctx, patient)
	if err != nil {
		return nil, err
	}
	patient.ID = patientID

	response := utils.MapPatientToResponse(patient)
	return &response, nil
}

func (uc *patientUsecase) ListPatients(ctx context.Context, session *models.Session, search string, limit int) ([]responses.Patient, error) {
	if err := guard.RequireSession(session); err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = constvars.DefaultPatientListLimit
	}

	patients, err := uc.PatientRepository.FindAll(ctx, limit)
	if err != nil {
		return nil, err
	}

	search = strings.ToLower(strings.TrimSpace(search))
	response := make([]responses.Patient, 0, len(patients))
	for i := range patients {
		if search != "" {
			name := strings.ToLower(patients[i].FirstName + " " + patients[i].LastName)
			if !strings.Contains(name, search) {
				continue
			}
		}
		response = append(response, utils.MapPatientToResponse(&patients[i]))
	}
	return response, nil
}

func (uc *patientUsecase) GetPatientByID(ctx context.Context, session *models.Session, patientID string) (*responses.Patient, error) {
	if err := guard.RequireSession(session); err != nil {
		return nil, err
	}

	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound()
	}

	response := utils.MapPatientToResponse(patient)
	return &response, nil
}
