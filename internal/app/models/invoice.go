package models

import "time"

type InvoiceStatus string

const (
	InvoiceUnpaid InvoiceStatus = "UNPAID"
	InvoicePaid   InvoiceStatus = "PAID"
)

// LineItem is one billable row. Total is always Qty times UnitPrice,
// kept at full float precision until display formatting.
type LineItem struct {
	Name      string  `bson:"name" json:"name"`
	Qty       int     `bson:"qty" json:"qty"`
	UnitPrice float64 `bson:"unitPrice" json:"unitPrice"`
	Total     float64 `bson:"total" json:"total"`
}

type Invoice struct {
	ID        string        `bson:"_id,omitempty"`
	PatientID string        `bson:"patientId"`
	Number    string        `bson:"number"`
	Items     []LineItem    `bson:"items"`
	Subtotal  float64       `bson:"subtotal"`
	Tax       float64       `bson:"tax"`
	Total     float64       `bson:"total"`
	Status    InvoiceStatus `bson:"status"`
	IssuedAt  time.Time     `bson:"issuedAt"`
	PaidAt    *time.Time    `bson:"paidAt,omitempty"`
	CreatedBy string        `bson:"createdBy"`
	TimeModel `bson:",inline"`
}
