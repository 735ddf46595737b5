package utils

import "math"

// RoundTwoDecimals arredonda para duas casas decimais (apenas para valores derivados)
func RoundTwoDecimals(f float64) float64 {
	if f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return f
	}

	return math.Round(f*100) / 100
}
