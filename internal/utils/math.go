// internal/utils/math.go
package utils

import "math"

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// Clamp ограничивает v диапазоном [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Cadence переводит дробный интервал в целое число тиков, минимум 1.
func Cadence(interval float64) int64 {
	n := int64(math.Round(interval))
	if n < 1 {
		return 1
	}
	return n
}
