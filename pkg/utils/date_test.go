package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatPeriodLabel(t *testing.T) {
	assert.Equal(t, "2024-01", FormatPeriodLabel(2024, 1))
	assert.Equal(t, "2024-12", FormatPeriodLabel(2024, 12))
	assert.Equal(t, "0999-03", FormatPeriodLabel(999, 3))
}

func TestMonthYear(t *testing.T) {
	month, year := MonthYear(time.Date(2025, time.March, 31, 23, 0, 0, 0, time.UTC))
	assert.Equal(t, 3, month)
	assert.Equal(t, 2025, year)
}
