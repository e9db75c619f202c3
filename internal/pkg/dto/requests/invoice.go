package requests

type InvoiceLineItem struct {
	Name      string  `json:"name"`
	Qty       int     `json:"qty"`
	UnitPrice float64 `json:"unit_price"`
}

type CreateInvoice struct {
	PatientID string            `json:"patient_id" validate:"required"`
	Number    string            `json:"number" validate:"max=64"`
	Items     []InvoiceLineItem `json:"items"`
	Tax       float64           `json:"tax" validate:"gte=0"`
	Status    string            `json:"status" validate:"omitempty,oneof=UNPAID PAID"`
}
