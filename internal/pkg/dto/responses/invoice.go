package responses

type InvoiceLineItem struct {
	Name      string `json:"name"`
	Qty       int    `json:"qty"`
	UnitPrice string `json:"unit_price"`
	Total     string `json:"total"`
}

type Invoice struct {
	ID       string            `json:"id"`
	Number   string            `json:"number"`
	Patient  *Patient          `json:"patient,omitempty"`
	Items    []InvoiceLineItem `json:"items"`
	Subtotal string            `json:"subtotal"`
	Tax      string            `json:"tax"`
	Total    string            `json:"total"`
	Status   string            `json:"status"`
	IssuedAt string            `json:"issued_at"`
	PaidAt   string            `json:"paid_at,omitempty"`
}
