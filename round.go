package calc

import "github.com/shopspring/decimal"

// Round rounds value to the given number of decimal places, half away from
// zero.
func Round(value float64, places int) float64 {
	f, _ := decimal.NewFromFloat(value).Round(int32(places)).Float64()
	return f
}
