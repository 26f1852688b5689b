package game

import "math"

// escalatedPrice returns round(base * growth^timesBought), rounding half away from zero
func escalatedPrice(base int, growth float64, timesBought int) int {
	if timesBought <= 0 || growth == 1.0 {
		return base
	}
	return int(math.Round(float64(base) * math.Pow(growth, float64(timesBought))))
}
