package utils

import "math"

// RoundWithTwoDecimalPlace arredonda para duas casas decimais.
// Usado nas métricas agregadas e nos textos de justificativa das decisões.
func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// SafeDivide divide a por b, retornando 0 quando o divisor é zero
func SafeDivide(a, b float64) float64 {
	if b == 0 {
		return 0
	}

	return a / b
}
