// Package validation provides the input validation layer in front of the
// amortization engine. The engine itself is a total function that never
// rejects input; these checks give callers typed errors for out-of-domain
// values before garbage reaches the math.
package validation

import (
	"errors"
	"fmt"

	"github.com/mlattimer/loan-schedule/pkg/loans"
)

// Sentinel errors for rejected loan terms.
var (
	// ErrInvalidTerm indicates a term below one period.
	ErrInvalidTerm = errors.New("term must be at least 1 month")

	// ErrNegativePrincipal indicates a negative amount financed.
	ErrNegativePrincipal = errors.New("principal must not be negative")

	// ErrNegativeRate indicates a negative annual interest rate.
	ErrNegativeRate = errors.New("interest rate must not be negative")
)

// ValidateTerms checks that loan terms fall within the engine's supported
// domain. Wrapped errors unwrap to the sentinel errors above.
func ValidateTerms(terms loans.Terms) error {
	if terms.TermMonths < 1 {
		return fmt.Errorf("%w, got %d", ErrInvalidTerm, terms.TermMonths)
	}
	if terms.Principal < 0 {
		return fmt.Errorf("%w, got %.2f", ErrNegativePrincipal, terms.Principal)
	}
	if terms.AnnualRate < 0 {
		return fmt.Errorf("%w, got %.2f", ErrNegativeRate, terms.AnnualRate)
	}
	return nil
}
