// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"

	"github.com/mlattimer/loan-schedule/pkg/constants"
	"github.com/mlattimer/loan-schedule/pkg/loans"
	"github.com/mlattimer/loan-schedule/pkg/mathutil"
	"github.com/mlattimer/loan-schedule/pkg/validation"
	"go.uber.org/zap"
)

// Loan indicates a loan and its parameters. Either Principal is given
// directly, or it is derived from Price less the down payment; DownPayment
// is an absolute amount while DownPaymentPercent is a percentage of Price.
type Loan struct {
	Name               string
	Currency           string
	Price              float64
	DownPayment        float64
	DownPaymentPercent float64
	Principal          float64
	InterestRate       float64 // annual percentage, e.g. 6.5
	Term               int     // months
	Schedule           loans.Schedule
}

// ResolvePrincipal returns the amount financed for this loan. A directly
// configured principal wins; otherwise it is price minus the down payment.
func (loan *Loan) ResolvePrincipal() float64 {
	if loan.Principal != 0 {
		return loan.Principal
	}

	downPayment := loan.DownPayment
	if loan.DownPaymentPercent != 0 {
		downPayment = loan.Price * loan.DownPaymentPercent / constants.PercentageMultiplier
	}
	return loan.Price - downPayment
}

// Terms converts the configured loan into engine input.
func (loan *Loan) Terms() loans.Terms {
	return loans.Terms{
		Principal:  loan.ResolvePrincipal(),
		AnnualRate: loan.InterestRate,
		TermMonths: loan.Term,
	}
}

// DisplayCurrency returns the currency code used when rendering this loan.
func (loan *Loan) DisplayCurrency() string {
	if loan.Currency == "" {
		return constants.DefaultCurrency
	}
	return loan.Currency
}

// ProcessLoans validates every loan and computes its amortization schedule.
// The first out-of-domain loan aborts processing with a typed error.
func (conf *Configuration) ProcessLoans(logger *zap.Logger) error {
	generator := loans.NewScheduleGenerator(logger)

	for i := range conf.Loans {
		loan := &conf.Loans[i]
		terms := loan.Terms()

		if err := validation.ValidateTerms(terms); err != nil {
			return fmt.Errorf("loan %q: %w", loan.Name, err)
		}

		loan.Schedule = generator.Generate(loan.Name, terms)
	}

	return nil
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings for suspicious but non-fatal settings.
func (conf *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if len(conf.Loans) == 0 {
		warnings = append(warnings, "no loans configured; nothing to calculate")
	}

	for _, loan := range conf.Loans {
		if loan.Name == "" {
			warnings = append(warnings, "a loan has no name; output will be hard to attribute")
		}
		if loan.Principal != 0 && (loan.Price != 0 || loan.DownPayment != 0 || loan.DownPaymentPercent != 0) {
			warnings = append(warnings,
				fmt.Sprintf("loan '%s' sets principal directly; price and down payment are ignored", loan.Name))
		}
		if !mathutil.IsZero(loan.DownPayment) && !mathutil.IsZero(loan.DownPaymentPercent) {
			warnings = append(warnings,
				fmt.Sprintf("loan '%s' sets both downPayment and downPaymentPercent; the percentage wins", loan.Name))
		}
		if principal := loan.ResolvePrincipal(); principal < 0 {
			warnings = append(warnings,
				fmt.Sprintf("loan '%s' resolves to a negative principal (%.2f); down payment exceeds price", loan.Name, mathutil.Round(principal)))
		}
		if loan.InterestRate >= constants.PercentageMultiplier {
			warnings = append(warnings,
				fmt.Sprintf("loan '%s' has an interest rate of %.2f%%/yr; check the units", loan.Name, loan.InterestRate))
		}
	}

	return warnings
}
