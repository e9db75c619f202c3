package invoices

import (
	"context"
	"strconv"
	"strings"
	"testing"

	"clinicore-service/internal/app/models"
	"clinicore-service/internal/pkg/constvars"
	"clinicore-service/internal/pkg/dto/requests"
	"clinicore-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
)

type fakeInvoiceRepository struct {
	invoices []models.Invoice
	inserts  int
}

func (f *fakeInvoiceRepository) CreateInvoice(ctx context.Context, invoice *models.Invoice) (string, error) {
	f.inserts++
	id := "invoice-" + strconv.Itoa(f.inserts)
	stored := *invoice
	stored.ID = id
	f.invoices = append(f.invoices, stored)
	return id, nil
}

func (f *fakeInvoiceRepository) FindByID(ctx context.Context, invoiceID string) (*models.Invoice, error) {
	for i := range f.invoices {
		if f.invoices[i].ID == invoiceID {
			return &f.invoices[i], nil
		}
	}
	return nil, nil
}

func (f *fakeInvoiceRepository) FindAll(ctx context.Context, limit int) ([]models.Invoice, error) {
	if len(f.invoices) > limit {
		return f.invoices[:limit], nil
	}
	return f.invoices, nil
}

type fakePatientRepository struct {
	patients map[string]*models.Patient
}

func (f *fakePatientRepository) CreatePatient(ctx context.Context, patient *models.Patient) (string, error) {
	return "", nil
}

func (f *fakePatientRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	return f.patients[patientID], nil
}

func (f *fakePatientRepository) FindByIDs(ctx context.Context, patientIDs []string) (map[string]*models.Patient, error) {
	result := make(map[string]*models.Patient)
	for _, id := range patientIDs {
		if patient, ok := f.patients[id]; ok {
			result[id] = patient
		}
	}
	return result, nil
}

func (f *fakePatientRepository) FindAll(ctx context.Context, limit int) ([]models.Patient, error) {
	return nil, nil
}

func (f *fakePatientRepository) CountPatients(ctx context.Context) (int64, error) {
	return int64(len(f.patients)), nil
}

func knownPatients() *fakePatientRepository {
	return &fakePatientRepository{patients: map[string]*models.Patient{
		"patient-1": {ID: "patient-1", FirstName: "Ada", LastName: "Lovelace"},
	}}
}

func validSession() *models.Session {
	return &models.Session{SessionID: "s-1", UserID: "u-1"}
}

func TestCreateInvoice(t *testing.T) {
	t.Run("computes totals and formats money with two decimals", func(t *testing.T) {
		invoiceRepo := &fakeInvoiceRepository{}
		uc := NewInvoiceUsecase(invoiceRepo, knownPatients())

		response, err := uc.CreateInvoice(context.Background(), validSession(), &requests.CreateInvoice{
			PatientID: "patient-1",
			Items: []requests.InvoiceLineItem{
				{Name: "Consultation", Qty: 2, UnitPrice: 50},
				{Name: "", Qty: 1, UnitPrice: 99},
			},
			Tax: 3.50,
		})

		assert.NoError(t, err)
		assert.Len(t, response.Items, 1)
		assert.Equal(t, "100.00", response.Subtotal)
		assert.Equal(t, "3.50", response.Tax)
		assert.Equal(t, "103.50", response.Total)
		assert.Equal(t, string(models.InvoiceUnpaid), response.Status)
	})

	t.Run("rejects an invoice whose items all get dropped", func(t *testing.T) {
		invoiceRepo := &fakeInvoiceRepository{}
		uc := NewInvoiceUsecase(invoiceRepo, knownPatients())

		_, err := uc.CreateInvoice(context.Background(), validSession(), &requests.CreateInvoice{
			PatientID: "patient-1",
			Items: []requests.InvoiceLineItem{
				{Name: "", Qty: 1, UnitPrice: 10},
				{Name: "Lab work", Qty: 0, UnitPrice: 10},
			},
		})

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		assert.Equal(t, 0, invoiceRepo.inserts)
	})

	t.Run("paid at creation stamps paidAt", func(t *testing.T) {
		invoiceRepo := &fakeInvoiceRepository{}
		uc := NewInvoiceUsecase(invoiceRepo, knownPatients())

		response, err := uc.CreateInvoice(context.Background(), validSession(), &requests.CreateInvoice{
			PatientID: "patient-1",
			Items:     []requests.InvoiceLineItem{{Name: "Consultation", Qty: 1, UnitPrice: 80}},
			Status:    string(models.InvoicePaid),
		})

		assert.NoError(t, err)
		assert.Equal(t, string(models.InvoicePaid), response.Status)
		assert.NotEmpty(t, response.PaidAt)
	})

	t.Run("unpaid invoice has no paidAt", func(t *testing.T) {
		invoiceRepo := &fakeInvoiceRepository{}
		uc := NewInvoiceUsecase(invoiceRepo, knownPatients())

		response, err := uc.CreateInvoice(context.Background(), validSession(), &requests.CreateInvoice{
			PatientID: "patient-1",
			Items:     []requests.InvoiceLineItem{{Name: "Consultation", Qty: 1, UnitPrice: 80}},
		})

		assert.NoError(t, err)
		assert.Empty(t, response.PaidAt)
	})

	t.Run("generates a number when none is supplied", func(t *testing.T) {
		invoiceRepo := &fakeInvoiceRepository{}
		uc := NewInvoiceUsecase(invoiceRepo, knownPatients())

		response, err := uc.CreateInvoice(context.Background(), validSession(), &requests.CreateInvoice{
			PatientID: "patient-1",
			Items:     []requests.InvoiceLineItem{{Name: "Consultation", Qty: 1, UnitPrice: 80}},
		})

		assert.NoError(t, err)
		assert.True(t, strings.HasPrefix(response.Number, constvars.InvoiceNumberPrefix))
	})

	t.Run("keeps a caller-supplied number", func(t *testing.T) {
		invoiceRepo := &fakeInvoiceRepository{}
		uc := NewInvoiceUsecase(invoiceRepo, knownPatients())

		response, err := uc.CreateInvoice(context.Background(), validSession(), &requests.CreateInvoice{
			PatientID: "patient-1",
			Number:    "INV-CUSTOM-1",
			Items:     []requests.InvoiceLineItem{{Name: "Consultation", Qty: 1, UnitPrice: 80}},
		})

		assert.NoError(t, err)
		assert.Equal(t, "INV-CUSTOM-1", response.Number)
	})

	t.Run("unknown patient yields not found", func(t *testing.T) {
		invoiceRepo := &fakeInvoiceRepository{}
		uc := NewInvoiceUsecase(invoiceRepo, knownPatients())

		_, err := uc.CreateInvoice(context.Background(), validSession(), &requests.CreateInvoice{
			PatientID: "patient-999",
			Items:     []requests.InvoiceLineItem{{Name: "Consultation", Qty: 1, UnitPrice: 80}},
		})

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
		assert.Equal(t, 0, invoiceRepo.inserts)
	})

	t.Run("anonymous caller is rejected", func(t *testing.T) {
		invoiceRepo := &fakeInvoiceRepository{}
		uc := NewInvoiceUsecase(invoiceRepo, knownPatients())

		_, err := uc.CreateInvoice(context.Background(), nil, &requests.CreateInvoice{
			PatientID: "patient-1",
			Items:     []requests.InvoiceLineItem{{Name: "Consultation", Qty: 1, UnitPrice: 80}},
		})

		assert.Error(t, err)
		assert.Equal(t, 0, invoiceRepo.inserts)
	})
}

func TestGetInvoiceByID(t *testing.T) {
	invoiceRepo := &fakeInvoiceRepository{}
	uc := NewInvoiceUsecase(invoiceRepo, knownPatients())
	session := validSession()

	created, err := uc.CreateInvoice(context.Background(), session, &requests.CreateInvoice{
		PatientID: "patient-1",
		Items:     []requests.InvoiceLineItem{{Name: "Consultation", Qty: 1, UnitPrice: 80}},
	})
	assert.NoError(t, err)

	t.Run("returns the invoice with its patient attached", func(t *testing.T) {
		response, err := uc.GetInvoiceByID(context.Background(), session, created.ID)

		assert.NoError(t, err)
		assert.Equal(t, created.ID, response.ID)
		assert.NotNil(t, response.Patient)
		assert.Equal(t, "Ada Lovelace", response.Patient.DisplayName)
	})

	t.Run("missing invoice yields not found", func(t *testing.T) {
		_, err := uc.GetInvoiceByID(context.Background(), session, "invoice-999")

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}
