package invoices

import (
	"strings"

	"clinicore-service/internal/app/models"
	"clinicore-service/internal/pkg/dto/requests"
)

// CalculationResult carries the derived amounts at full float precision.
// Rounding to two decimals happens only at display time.
type CalculationResult struct {
	KeptItems []models.LineItem
	Subtotal  float64
	Total     float64
}

// Compute derives invoice amounts from raw line items. Items with an empty
// name or non-positive quantity are silently dropped rather than rejected,
// matching the forgiving billing form. Tax is an absolute amount supplied
// by the caller, not a rate. Zero kept items is a valid result; whether an
// invoice may be submitted without items is the caller's policy.
func Compute(items []requests.InvoiceLineItem, tax float64) CalculationResult {
	kept := make([]models.LineItem, 0, len(items))
	subtotal := 0.0

	for _, item := range items {
		name := strings.TrimSpace(item.Name)
		if name == "" || item.Qty <= 0 {
			continue
		}
		total := float64(item.Qty) * item.UnitPrice
		kept = append(kept, models.LineItem{
			Name:      name,
			Qty:       item.Qty,
			UnitPrice: item.UnitPrice,
			Total:     total,
		})
		subtotal += total
	}

	return CalculationResult{
		KeptItems: kept,
		Subtotal:  subtotal,
		Total:     subtotal + tax,
	}
}
