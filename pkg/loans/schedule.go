package loans

import (
	"fmt"

	"github.com/mlattimer/loan-schedule/pkg/mathutil"
	"go.uber.org/zap"
)

// Terms describes a fixed-rate, fully-amortizing loan. The caller constructs
// and owns a Terms value; the engine never mutates it.
type Terms struct {
	// Principal is the amount financed, in currency units.
	Principal float64
	// AnnualRate is the nominal annual interest rate as a percentage,
	// e.g. 6.5 for 6.5%/yr.
	AnnualRate float64
	// TermMonths is the number of monthly payments.
	TermMonths int
}

// Payment holds the breakdown for one elapsed period.
type Payment struct {
	// Period is the 1-based index of the payment within the schedule.
	Period int
	// Interest is the portion of the payment absorbing accrued interest.
	Interest float64
	// Principal is the portion of the payment reducing the balance.
	Principal float64
	// RemainingPrincipal is the balance after this payment is applied.
	RemainingPrincipal float64
}

// Schedule is the result of amortizing one loan: the level monthly payment,
// the chronological per-period breakdown, and the total interest paid. A
// Schedule is constructed fresh per Amortize call and is not shared.
type Schedule struct {
	MonthlyPayment float64
	Payments       []Payment
	TotalInterest  float64
}

// Amortize computes the full amortization schedule for the given terms.
//
// Each period first accrues interest on the declining balance, then reduces
// principal by the remainder of the payment. The principal portion is capped
// at the remaining balance so the final period never drives the balance
// negative, and the walk stops as soon as the balance reaches zero even if
// that happens before the nominal term. The loop is therefore bounded by
// TermMonths iterations, and for TermMonths < 1 it never runs, yielding an
// empty schedule.
func Amortize(terms Terms) Schedule {
	periodicRate := PeriodicRate(terms.AnnualRate)
	payment := CalculateMonthlyPayment(periodicRate, terms.TermMonths, terms.Principal)

	capacity := terms.TermMonths
	if capacity < 0 {
		capacity = 0
	}
	schedule := Schedule{
		MonthlyPayment: payment,
		Payments:       make([]Payment, 0, capacity),
	}

	balance := terms.Principal
	for period := 1; period <= terms.TermMonths; period++ {
		interest := CalculateInterestPayment(balance, periodicRate)
		principalPaid := mathutil.Min(payment-interest, balance)
		balance = mathutil.Max(0, balance-principalPaid)

		schedule.Payments = append(schedule.Payments, Payment{
			Period:             period,
			Interest:           interest,
			Principal:          principalPaid,
			RemainingPrincipal: balance,
		})
		schedule.TotalInterest += interest

		if balance <= 0 {
			break
		}
	}

	return schedule
}

// ScheduleGenerator computes amortization schedules with debug logging of
// notable events. Results are identical to Amortize.
type ScheduleGenerator struct {
	logger *zap.Logger
}

// NewScheduleGenerator creates a new generator instance.
func NewScheduleGenerator(logger *zap.Logger) *ScheduleGenerator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScheduleGenerator{logger: logger}
}

// Generate computes the amortization schedule for a named loan.
func (g *ScheduleGenerator) Generate(name string, terms Terms) Schedule {
	schedule := Amortize(terms)

	g.logger.Debug(fmt.Sprintf("amortized loan %s: payment %.2f over %d periods, %.2f total interest",
		name, schedule.MonthlyPayment, len(schedule.Payments), schedule.TotalInterest),
		zap.String("op", "loans.Generate"),
	)

	if n := len(schedule.Payments); n > 0 && n < terms.TermMonths {
		g.logger.Debug(fmt.Sprintf("loan %s paid off early at period %d of %d",
			name, n, terms.TermMonths),
			zap.String("op", "loans.Generate"),
		)
	}

	return schedule
}
