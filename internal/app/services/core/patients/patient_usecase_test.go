package patients

import (
	"context"
	"strconv"
	"testing"

	"clinicore-service/internal/app/models"
	"clinicore-service/internal/pkg/constvars"
	"clinicore-service/internal/pkg/dto/requests"
	"clinicore-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
)

type fakePatientRepository struct {
	patients []models.Patient
	inserts  int
}

func (f *fakePatientRepository) CreatePatient(ctx context.Context, patient *models.Patient) (string, error) {
	f.inserts++
	id := "patient-" + strconv.Itoa(f.inserts)
	stored := *patient
	stored.ID = id
	f.patients = append(f.patients, stored)
	return id, nil
}

func (f *fakePatientRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	for i := range f.patients {
		if f.patients[i].ID == patientID {
			return &f.patients[i], nil
		}
	}
	return nil, nil
}

func (f *fakePatientRepository) FindByIDs(ctx context.Context, patientIDs []string) (map[string]*models.Patient, error) {
	result := make(map[string]*models.Patient)
	for _, id := range patientIDs {
		patient, _ := f.FindByID(context.Background(), id)
		if patient != nil {
			result[id] = patient
		}
	}
	return result, nil
}

func (f *fakePatientRepository) FindAll(ctx context.Context, limit int) ([]models.Patient, error) {
	if len(f.patients) > limit {
		return f.patients[:limit], nil
	}
	return f.patients, nil
}

func (f *fakePatientRepository) CountPatients(ctx context.Context) (int64, error) {
	return int64(len(f.patients)), nil
}

func validSession() *models.Session {
	return &models.Session{SessionID: "s-1", UserID: "u-1", Email: "staff@clinic.test"}
}

func TestCreatePatient(t *testing.T) {
	t.Run("trims names and lowercases email", func(t *testing.T) {
		repo := &fakePatientRepository{}
		uc := NewPatientUsecase(repo)

		response, err := uc.CreatePatient(context.Background(), validSession(), &requests.CreatePatient{
			FirstName: "  Ada  ",
			LastName:  " Lovelace ",
			Email:     " Ada@Example.COM ",
		})

		assert.NoError(t, err)
		assert.Equal(t, "Ada", response.FirstName)
		assert.Equal(t, "Lovelace", response.LastName)
		assert.Equal(t, "ada@example.com", response.Email)
		assert.Equal(t, "Ada Lovelace", response.DisplayName)
	})

	t.Run("both names may be empty", func(t *testing.T) {
		repo := &fakePatientRepository{}
		uc := NewPatientUsecase(repo)

		response, err := uc.CreatePatient(context.Background(), validSession(), &requests.CreatePatient{})

		assert.NoError(t, err)
		assert.Equal(t, constvars.PatientUnnamedFallback, response.DisplayName)
		assert.Equal(t, 1, repo.inserts)
	})

	t.Run("invalid email fails validation without a write", func(t *testing.T) {
		repo := &fakePatientRepository{}
		uc := NewPatientUsecase(repo)

		_, err := uc.CreatePatient(context.Background(), validSession(), &requests.CreatePatient{
			Email: "not-an-email",
		})

		assert.Error(t, err)
		assert.Equal(t, 0, repo.inserts)
	})

	t.Run("invalid dob fails before a write", func(t *testing.T) {
		repo := &fakePatientRepository{}
		uc := NewPatientUsecase(repo)

		_, err := uc.CreatePatient(context.Background(), validSession(), &requests.CreatePatient{
			FirstName: "Ada",
			Dob:       "1990-13-40",
		})

		assert.Error(t, err)
		assert.Equal(t, 0, repo.inserts)
	})

	t.Run("anonymous caller is rejected", func(t *testing.T) {
		repo := &fakePatientRepository{}
		uc := NewPatientUsecase(repo)

		_, err := uc.CreatePatient(context.Background(), nil, &requests.CreatePatient{FirstName: "Ada"})

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
		assert.Equal(t, 0, repo.inserts)
	})
}

func TestListPatients(t *testing.T) {
	repo := &fakePatientRepository{}
	uc := NewPatientUsecase(repo)
	session := validSession()

	for _, name := range [][2]string{{"Ada", "Lovelace"}, {"Grace", "Hopper"}, {"", ""}} {
		_, err := uc.CreatePatient(context.Background(), session, &requests.CreatePatient{
			FirstName: name[0],
			LastName:  name[1],
		})
		assert.NoError(t, err)
	}

	t.Run("returns everything without a search term", func(t *testing.T) {
		response, err := uc.ListPatients(context.Background(), session, "", 0)

		assert.NoError(t, err)
		assert.Len(t, response, 3)
	})

	t.Run("search matches case-insensitively on the full name", func(t *testing.T) {
		response, err := uc.ListPatients(context.Background(), session, "lovelace", 0)

		assert.NoError(t, err)
		assert.Len(t, response, 1)
		assert.Equal(t, "Ada Lovelace", response[0].DisplayName)
	})

	t.Run("no matches yields an empty list", func(t *testing.T) {
		response, err := uc.ListPatients(context.Background(), session, "nobody", 0)

		assert.NoError(t, err)
		assert.Empty(t, response)
	})
}

func TestGetPatientByID(t *testing.T) {
	repo := &fakePatientRepository{}
	uc := NewPatientUsecase(repo)
	session := validSession()

	created, err := uc.CreatePatient(context.Background(), session, &requests.CreatePatient{FirstName: "Ada"})
	assert.NoError(t, err)

	t.Run("returns the stored record", func(t *testing.T) {
		response, err := uc.GetPatientByID(context.Background(), session, created.ID)

		assert.NoError(t, err)
		assert.Equal(t, created.ID, response.ID)
	})

	t.Run("missing record yields not found", func(t *testing.T) {
		_, err := uc.GetPatientByID(context.Background(), session, "patient-999")

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}
