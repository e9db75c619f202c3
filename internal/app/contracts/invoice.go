package contracts

import (
	"context"

	"clinicore-service/internal/app/models"
	"clinicore-service/internal/pkg/dto/requests"
	"clinicore-service/internal/pkg/dto/responses"
)

type InvoiceUsecase interface {
	CreateInvoice(ctx context.Context, session *models.Session, request *requests.CreateInvoice) (*responses.Invoice, error)
	ListInvoices(ctx context.Context, session *models.Session, limit int) ([]responses.Invoice, error)
	GetInvoiceByID(ctx context.Context, session *models.Session, invoiceID string) (*responses.Invoice, error)
}

type InvoiceRepository interface {
	CreateInvoice(ctx context.Context, invoice *models.Invoice) (string, error)
	FindByID(ctx context.Context, invoiceID string) (*models.Invoice, error)
	FindAll(ctx context.Context, limit int) ([]models.Invoice, error)
}
