package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{0, "0.00"},
		{5, "5.00"},
		{103.5, "103.50"},
		{99.999, "100.00"},
		{0.005, "0.01"},
		{1234567.89, "1234567.89"},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, FormatMoney(c.amount))
	}
}
