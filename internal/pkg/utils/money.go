package utils

import "strconv"

// FormatMoney renders an amount with exactly two decimal places, no
// currency symbol and no grouping. Internal totals stay at full float
// precision; rounding happens here only.
func FormatMoney(amount float64) string {
	return strconv.FormatFloat(amount, 'f', 2, 64)
}
