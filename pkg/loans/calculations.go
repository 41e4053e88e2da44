// Package loans provides amortized loan calculations.
package loans

import (
	"math"

	"github.com/iwvelando/finance-calculators/pkg/constants"
	"github.com/iwvelando/finance-calculators/pkg/mathutil"
)

// Summary holds the lifetime totals for a fully amortized loan.
type Summary struct {
	LoanAmount     float64
	MonthlyPayment float64
	FirstInterest  float64
	TotalPaid      float64
	TotalInterest  float64
}

// CalculateMonthlyPayment calculates the monthly payment for a loan using the standard amortization formula.
// The annual rate is a fraction (0.065 for 6.5%). A non-positive term or
// financed amount yields 0. A rate so large that the compounding factor
// overflows converges to the interest-only payment.
func CalculateMonthlyPayment(principal, downPayment, annualRate float64, termMonths int) float64 {
	financed := mathutil.Saturate(principal - downPayment)
	if termMonths <= 0 || financed <= 0 {
		return 0
	}

	if annualRate == 0 {
		// For zero interest, simply divide the principal by term
		return financed / float64(termMonths)
	}

	periodicRate := annualRate / constants.MonthsPerYear
	power := math.Pow(1.00+periodicRate, float64(termMonths))
	if math.IsInf(power, 0) {
		return mathutil.Saturate(financed * periodicRate)
	}
	discountFactor := (power - 1.00) / power
	if discountFactor == 0 || math.IsNaN(discountFactor) {
		return financed / float64(termMonths)
	}
	return mathutil.Saturate(financed * periodicRate / discountFactor)
}

// CalculateInterestPayment calculates the interest portion of a payment.
func CalculateInterestPayment(remainingPrincipal, annualRate float64) float64 {
	return mathutil.Saturate(remainingPrincipal * annualRate / constants.MonthsPerYear)
}

// Summarize computes the payment and lifetime totals of a loan. Negative
// financed amounts are reported as a zero loan. Totals beyond the float64
// range are capped at the largest finite value.
func Summarize(principal, downPayment, annualRate float64, termMonths int) Summary {
	financed := mathutil.Saturate(principal - downPayment)
	if financed <= 0 || termMonths <= 0 {
		return Summary{LoanAmount: math.Max(financed, 0)}
	}

	payment := CalculateMonthlyPayment(principal, downPayment, annualRate, termMonths)
	totalPaid := mathutil.Saturate(payment * float64(termMonths))
	return Summary{
		LoanAmount:     financed,
		MonthlyPayment: payment,
		FirstInterest:  CalculateInterestPayment(financed, annualRate),
		TotalPaid:      totalPaid,
		TotalInterest:  math.Max(totalPaid-financed, 0),
	}
}

// TermMonths converts a term in years to whole months, rounding to the
// nearest month. Non-positive terms return 0.
func TermMonths(years float64) int {
	if years <= 0 || math.IsNaN(years) {
		return 0
	}
	months := math.Round(years * constants.MonthsPerYear)
	if months > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(months)
}
