package invoices

import (
	"testing"

	"clinicore-service/internal/pkg/dto/requests"

	"github.com/stretchr/testify/assert"
)

func TestCompute(t *testing.T) {
	t.Run("drops unnamed and non-positive quantity items", func(t *testing.T) {
		items := []requests.InvoiceLineItem{
			{Name: "Consultation", Qty: 2, UnitPrice: 50},
			{Name: "", Qty: 1, UnitPrice: 99},
			{Name: "   ", Qty: 1, UnitPrice: 99},
			{Name: "Lab work", Qty: 0, UnitPrice: 30},
			{Name: "X-ray", Qty: -1, UnitPrice: 30},
		}

		result := Compute(items, 3.50)

		assert.Len(t, result.KeptItems, 1)
		assert.Equal(t, "Consultation", result.KeptItems[0].Name)
		assert.Equal(t, 100.0, result.KeptItems[0].Total)
		assert.Equal(t, 100.0, result.Subtotal)
		assert.Equal(t, 103.5, result.Total)
	})

	t.Run("trims item names", func(t *testing.T) {
		items := []requests.InvoiceLineItem{
			{Name: "  Consultation  ", Qty: 1, UnitPrice: 75},
		}

		result := Compute(items, 0)

		assert.Equal(t, "Consultation", result.KeptItems[0].Name)
		assert.Equal(t, 75.0, result.Subtotal)
	})

	t.Run("empty items yield tax-only total", func(t *testing.T) {
		result := Compute(nil, 5.00)

		assert.Empty(t, result.KeptItems)
		assert.Equal(t, 0.0, result.Subtotal)
		assert.Equal(t, 5.0, result.Total)
	})

	t.Run("tax is an absolute amount, not a rate", func(t *testing.T) {
		items := []requests.InvoiceLineItem{
			{Name: "Consultation", Qty: 1, UnitPrice: 200},
		}

		result := Compute(items, 10)

		assert.Equal(t, 210.0, result.Total)
	})
}
