package invoices

import (
	"context"
	"time"

	"clinicore-service/internal/app/contracts"
	"clinicore-service/internal/app/models"
	"clinicore-service/internal/app/services/core/guard"
	"clinicore-service/internal/pkg/constvars"
	"clinicore-service/internal/pkg/dto/requests"
	"clinicore-service/internal/pkg/dto/responses"
	"clinicore-service/internal/pkg/exceptions"
	"clinicore-service/internal/pkg/utils"
)

type invoiceUsecase struct {
	InvoiceRepository contracts.InvoiceRepository
	PatientRepository contracts.PatientRepository
}

func NewInvoiceUsecase(
	invoiceMongoRepository contracts.InvoiceRepository,
	patientMongoRepository contracts.PatientRepository,
) contracts.InvoiceUsecase {
	return &invoiceUsecase{
		InvoiceRepository: invoiceMongoRepository,
		PatientRepository: patientMongoRepository,
	}
}

func (uc *invoiceUsecase) CreateInvoice(ctx context.Context, session *models.Session, request *requests.CreateInvoice) (*responses.Invoice, error) {
	if err := guard.RequireSession(session); err != nil {
		return nil, err
	}

	utils.SanitizeCreateInvoiceRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	if request.PatientID == "" {
		return nil, exceptions.ErrMissingReference("patient")
	}

	// The calculator tolerates an empty result; submission does not.
	calculation := Compute(request.Items, request.Tax)
	if len(calculation.KeptItems) == 0 {
		return nil, exceptions.ErrInvoiceWithoutLineItems()
	}

	patient, err := uc.PatientRepository.FindByID(ctx, request.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound()
	}

	status := models.InvoiceUnpaid
	if request.Status == string(models.InvoicePaid) {
		status = models.InvoicePaid
	}

	number := request.Number
	if number == "" {
		number = utils.GenerateInvoiceNumber()
	}

	now := time.Now()
	invoice := &models.Invoice{
		PatientID: request.PatientID,
		Number:    number,
		Items:     calculation.KeptItems,
		Subtotal:  calculation.Subtotal,
		Tax:       request.Tax,
		Total:     calculation.Total,
		Status:    status,
		IssuedAt:  now,
		CreatedBy: session.UserID,
	}
	if status == models.InvoicePaid {
		invoice.PaidAt = &now
	}

	invoiceID, err := uc.InvoiceRepository.CreateInvoice(ctx, invoice)
	if err != nil {
		return nil, err
	}
	invoice.ID = invoiceID

	response := utils.MapInvoiceToResponse(invoice, patient)
	return &response, nil
}

func (uc *invoiceUsecase) ListInvoices(ctx context.Context, session *models.Session, limit int) ([]responses.Invoice, error) {
	if err := guard.RequireSession(session); err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = constvars.DefaultInvoiceListLimit
	}

	invoices, err := uc.InvoiceRepository.FindAll(ctx, limit)
	if err != nil {
		return nil, err
	}

	patientIDs := make([]string, 0, len(invoices))
	for i := range invoices {
		patientIDs = append(patientIDs, invoices[i].PatientID)
	}
	patientsByID, err := uc.PatientRepository.FindByIDs(ctx, patientIDs)
	if err != nil {
		return nil, err
	}

	response := make([]responses.Invoice, 0, len(invoices))
	for i := range invoices {
		response = append(response, utils.MapInvoiceToResponse(&invoices[i], patientsByID[invoices[i].PatientID]))
	}
	return response, nil
}

func (uc *invoiceUsecase) GetInvoiceByID(ctx context.Context, session *models.Session, invoiceID string) (*responses.Invoice, error) {
	if err := guard.RequireSession(session); err != nil {
		return nil, err
	}

	invoice, err := uc.InvoiceRepository.FindByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, exceptions.ErrInvoiceNotFound()
	}

	patient, err := uc.PatientRepository.FindByID(ctx, invoice.PatientID)
	if err != nil {
		return nil, err
	}

	response := utils.MapInvoiceToResponse(invoice, patient)
	return &response, nil
}
