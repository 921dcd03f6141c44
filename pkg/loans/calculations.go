// Package loans implements the amortization engine for fixed-rate,
// fully-amortizing loans: the level-payment annuity formula and the
// month-by-month balance reduction schedule derived from it.
//
// Every function in this package is a pure, total function of its numeric
// inputs. The engine performs no input validation; callers that need
// rejected-input semantics should gate through pkg/validation first.
package loans

import (
	"math"

	"github.com/mlattimer/loan-schedule/pkg/constants"
)

// PeriodicRate converts a nominal annual percentage rate (e.g. 6.5 meaning
// 6.5%/yr) into the monthly compounding rate.
func PeriodicRate(annualRatePercent float64) float64 {
	return annualRatePercent / (constants.PercentageMultiplier * constants.MonthsPerYear)
}

// CalculateMonthlyPayment returns the level payment that fully amortizes
// principal over termMonths payments compounding at periodicRate per month.
// A zero rate degenerates to straight-line division of the principal, which
// also avoids the zero denominator in the general formula.
func CalculateMonthlyPayment(periodicRate float64, termMonths int, principal float64) float64 {
	if periodicRate == 0 {
		return principal / float64(termMonths)
	}

	discountFactor := 1.0 - math.Pow(1.0+periodicRate, -float64(termMonths))
	return periodicRate * principal / discountFactor
}

// CalculateInterestPayment returns the interest accrued on the remaining
// balance for one period.
func CalculateInterestPayment(remainingPrincipal, periodicRate float64) float64 {
	return remainingPrincipal * periodicRate
}
