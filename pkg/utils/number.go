package utils

import (
	"math"
	"strconv"
)

const microsPerUnit = 1_000_000

// UnitsToMicro converte um valor monetário para micro-moeda
func UnitsToMicro(units float64) int64 {
	return int64(math.Round(units * microsPerUnit))
}

// FormatMegabytes formata bytes em MB com uma casa decimal, sem zeros à direita
func FormatMegabytes(bytes int64) string {
	mb := math.Round(float64(bytes)/(1024*1024)*10) / 10
	return strconv.FormatFloat(mb, 'f', -1, 64) + " MB"
}
