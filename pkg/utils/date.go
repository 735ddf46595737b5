package utils

import (
	"fmt"
	"time"
)

// FormatPeriodLabel formata um período mensal como YYYY-MM
func FormatPeriodLabel(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}

// MonthYear retorna o mês e o ano de uma data no fuso informado
func MonthYear(date time.Time) (int, int) {
	return int(date.Month()), date.Year()
}
