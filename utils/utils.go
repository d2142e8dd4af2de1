package utils

import (
	"math"
	"strconv"
)

func FormatFloat(f float64, round int32) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return f
	}
	pow := math.Pow(10, float64(round))
	return math.Round(f*pow) / pow
}

// FormatValue renders a float for failure messages without trailing zeros,
// so limits like 34.8125 and 77 both read naturally.
func FormatValue(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
