package finance

import "math"

// MonthlyPayment computes the amortized monthly payment for a loan of the
// given principal at an annual percentage rate over termMonths months.
// Degenerates to principal/termMonths when the rate is zero.
func MonthlyPayment(principal, annualRatePercent float64, termMonths int) float64 {
	if termMonths <= 0 {
		return 0
	}
	monthlyRate := annualRatePercent / 100 / 12
	if monthlyRate == 0 {
		return principal / float64(termMonths)
	}
	factor := math.Pow(1+monthlyRate, float64(termMonths))
	return principal * monthlyRate * factor / (factor - 1)
}
