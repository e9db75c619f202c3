package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseAppointmentStartsAt(t *testing.T) {
	t.Run("combines date and time into one local instant", func(t *testing.T) {
		startsAt, err := ParseAppointmentStartsAt("2026-09-15", "10:30")

		assert.NoError(t, err)
		assert.Equal(t, time.Date(2026, 9, 15, 10, 30, 0, 0, time.Local), startsAt)
	})

	t.Run("rejects calendar-invalid dates", func(t *testing.T) {
		_, err := ParseAppointmentStartsAt("2024-02-30", "10:00")

		assert.Error(t, err)
	})

	t.Run("rejects out-of-range times", func(t *testing.T) {
		_, err := ParseAppointmentStartsAt("2026-09-15", "25:00")

		assert.Error(t, err)
	})

	t.Run("rejects empty input", func(t *testing.T) {
		_, err := ParseAppointmentStartsAt("", "")

		assert.Error(t, err)
	})
}

func TestParseDob(t *testing.T) {
	t.Run("empty input yields nil", func(t *testing.T) {
		dob, err := ParseDob("")

		assert.NoError(t, err)
		assert.Nil(t, dob)
	})

	t.Run("parses a valid date", func(t *testing.T) {
		dob, err := ParseDob("1990-01-02")

		assert.NoError(t, err)
		assert.Equal(t, time.Date(1990, 1, 2, 0, 0, 0, 0, time.Local), *dob)
	})

	t.Run("rejects a malformed date", func(t *testing.T) {
		_, err := ParseDob("02/01/1990")

		assert.Error(t, err)
	})
}
