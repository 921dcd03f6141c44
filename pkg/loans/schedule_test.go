package loans

import (
	"math"
	"testing"

	"github.com/mlattimer/loan-schedule/pkg/constants"
	"go.uber.org/zap"
)

const balanceTolerance = constants.BalanceTolerance

func TestAmortizeAutoLoan(t *testing.T) {
	// 30000 purchase price with 3000 down at 6.5% over 5 years.
	schedule := Amortize(Terms{Principal: 27000, AnnualRate: 6.5, TermMonths: 60})

	if math.Abs(schedule.MonthlyPayment-528.28) > 0.05 {
		t.Errorf("MonthlyPayment = %.4f, expected ~528.28", schedule.MonthlyPayment)
	}
	if len(schedule.Payments) != 60 {
		t.Fatalf("schedule length = %d, expected 60", len(schedule.Payments))
	}
	if math.Abs(schedule.Payments[0].Interest-146.25) > 0.01 {
		t.Errorf("first period interest = %.4f, expected 146.25", schedule.Payments[0].Interest)
	}
	final := schedule.Payments[len(schedule.Payments)-1]
	if math.Abs(final.RemainingPrincipal) > balanceTolerance {
		t.Errorf("final balance = %v, expected 0", final.RemainingPrincipal)
	}
}

func TestAmortizeMortgage(t *testing.T) {
	// 400000 home with 20% down at 6.5% over 30 years.
	schedule := Amortize(Terms{Principal: 320000, AnnualRate: 6.5, TermMonths: 360})

	if math.Abs(schedule.MonthlyPayment-2022.62) > 0.05 {
		t.Errorf("MonthlyPayment = %.4f, expected ~2022.62", schedule.MonthlyPayment)
	}
	if len(schedule.Payments) != 360 {
		t.Fatalf("schedule length = %d, expected 360", len(schedule.Payments))
	}
	final := schedule.Payments[len(schedule.Payments)-1]
	if math.Abs(final.RemainingPrincipal) > balanceTolerance {
		t.Errorf("final balance = %v, expected 0", final.RemainingPrincipal)
	}
}

func TestAmortizeZeroRate(t *testing.T) {
	schedule := Amortize(Terms{Principal: 10000, AnnualRate: 0, TermMonths: 12})

	if math.Abs(schedule.MonthlyPayment-10000.0/12.0) > 1e-9 {
		t.Errorf("MonthlyPayment = %v, expected %v", schedule.MonthlyPayment, 10000.0/12.0)
	}
	if schedule.TotalInterest != 0 {
		t.Errorf("TotalInterest = %v, expected 0", schedule.TotalInterest)
	}

	expectedBalance := 10000.0
	for _, payment := range schedule.Payments {
		if payment.Interest != 0 {
			t.Errorf("period %d interest = %v, expected 0", payment.Period, payment.Interest)
		}
		expectedBalance -= schedule.MonthlyPayment
		if math.Abs(payment.RemainingPrincipal-math.Max(0, expectedBalance)) > balanceTolerance {
			t.Errorf("period %d balance = %v, expected %v",
				payment.Period, payment.RemainingPrincipal, math.Max(0, expectedBalance))
		}
	}

	final := schedule.Payments[len(schedule.Payments)-1]
	if math.Abs(final.RemainingPrincipal) > balanceTolerance {
		t.Errorf("final balance = %v, expected 0", final.RemainingPrincipal)
	}
}

func TestAmortizeZeroPrincipal(t *testing.T) {
	schedule := Amortize(Terms{Principal: 0, AnnualRate: 6.5, TermMonths: 60})

	if schedule.MonthlyPayment != 0 {
		t.Errorf("MonthlyPayment = %v, expected 0", schedule.MonthlyPayment)
	}
	if schedule.TotalInterest != 0 {
		t.Errorf("TotalInterest = %v, expected 0", schedule.TotalInterest)
	}
	for _, payment := range schedule.Payments {
		if payment.Interest != 0 || payment.Principal != 0 || payment.RemainingPrincipal != 0 {
			t.Errorf("period %d = %+v, expected all-zero row", payment.Period, payment)
		}
	}
}

func TestAmortizeSinglePeriod(t *testing.T) {
	schedule := Amortize(Terms{Principal: 1000, AnnualRate: 5, TermMonths: 1})

	if len(schedule.Payments) != 1 {
		t.Fatalf("schedule length = %d, expected 1", len(schedule.Payments))
	}
	payment := schedule.Payments[0]
	expectedInterest := 1000 * (5.0 / 100.0 / 12.0)
	if math.Abs(payment.Interest-expectedInterest) > 0.01 {
		t.Errorf("interest = %.4f, expected %.4f", payment.Interest, expectedInterest)
	}
	if math.Abs(payment.Principal-1000) > 0.01 {
		t.Errorf("principal = %.4f, expected 1000", payment.Principal)
	}
	if math.Abs(payment.RemainingPrincipal) > balanceTolerance {
		t.Errorf("balance = %v, expected 0", payment.RemainingPrincipal)
	}
}

func TestAmortizeNonPositiveTerm(t *testing.T) {
	// The engine performs no validation; a term below one period produces an
	// empty schedule because the loop body never runs.
	for _, term := range []int{0, -5} {
		schedule := Amortize(Terms{Principal: 10000, AnnualRate: 5, TermMonths: term})
		if len(schedule.Payments) != 0 {
			t.Errorf("term %d: schedule length = %d, expected 0", term, len(schedule.Payments))
		}
		if schedule.TotalInterest != 0 {
			t.Errorf("term %d: TotalInterest = %v, expected 0", term, schedule.TotalInterest)
		}
	}
}

func TestAmortizeProperties(t *testing.T) {
	cases := []Terms{
		{Principal: 27000, AnnualRate: 6.5, TermMonths: 60},
		{Principal: 320000, AnnualRate: 6.5, TermMonths: 360},
		{Principal: 175000, AnnualRate: 4.5, TermMonths: 360},
		{Principal: 10000, AnnualRate: 0, TermMonths: 12},
		{Principal: 1000, AnnualRate: 5, TermMonths: 1},
		{Principal: 5000, AnnualRate: 18, TermMonths: 36},
		{Principal: 750.50, AnnualRate: 12.75, TermMonths: 7},
		{Principal: 1000000, AnnualRate: 99, TermMonths: 120},
	}

	for _, terms := range cases {
		schedule := Amortize(terms)

		// Schedule length bound.
		if len(schedule.Payments) < 1 || len(schedule.Payments) > terms.TermMonths {
			t.Errorf("%+v: schedule length %d out of bounds [1, %d]",
				terms, len(schedule.Payments), terms.TermMonths)
			continue
		}

		// Full amortization.
		final := schedule.Payments[len(schedule.Payments)-1]
		if math.Abs(final.RemainingPrincipal) > balanceTolerance {
			t.Errorf("%+v: final balance = %v, expected 0", terms, final.RemainingPrincipal)
		}

		previousBalance := terms.Principal
		totalInterest := 0.0
		for i, payment := range schedule.Payments {
			// Monotonic balance.
			if payment.RemainingPrincipal > previousBalance {
				t.Errorf("%+v: balance increased at period %d: %v > %v",
					terms, payment.Period, payment.RemainingPrincipal, previousBalance)
			}
			previousBalance = payment.RemainingPrincipal

			// Row decomposition holds for every row except possibly the last.
			if i < len(schedule.Payments)-1 {
				if math.Abs(payment.Interest+payment.Principal-schedule.MonthlyPayment) > balanceTolerance {
					t.Errorf("%+v: period %d interest %v + principal %v != payment %v",
						terms, payment.Period, payment.Interest, payment.Principal, schedule.MonthlyPayment)
				}
			}

			totalInterest += payment.Interest
		}

		// Total interest consistency.
		if math.Abs(totalInterest-schedule.TotalInterest) > balanceTolerance {
			t.Errorf("%+v: TotalInterest = %v, sum of rows = %v",
				terms, schedule.TotalInterest, totalInterest)
		}
	}
}

func TestAmortizeIsPure(t *testing.T) {
	terms := Terms{Principal: 27000, AnnualRate: 6.5, TermMonths: 60}

	first := Amortize(terms)
	second := Amortize(terms)

	if first.MonthlyPayment != second.MonthlyPayment || first.TotalInterest != second.TotalInterest {
		t.Errorf("repeated Amortize calls disagree: %+v vs %+v", first, second)
	}
	if len(first.Payments) != len(second.Payments) {
		t.Fatalf("repeated Amortize calls disagree on length: %d vs %d",
			len(first.Payments), len(second.Payments))
	}
	for i := range first.Payments {
		if first.Payments[i] != second.Payments[i] {
			t.Errorf("period %d differs between calls: %+v vs %+v",
				i+1, first.Payments[i], second.Payments[i])
		}
	}

	// Mutating the returned schedule must not leak into later calls.
	first.Payments[0].Interest = -1
	third := Amortize(terms)
	if third.Payments[0].Interest == -1 {
		t.Error("Amortize shares state between invocations")
	}
}

func TestScheduleGeneratorMatchesAmortize(t *testing.T) {
	generator := NewScheduleGenerator(zap.NewNop())
	terms := Terms{Principal: 175000, AnnualRate: 4.5, TermMonths: 360}

	fromGenerator := generator.Generate("reference mortgage", terms)
	direct := Amortize(terms)

	if fromGenerator.MonthlyPayment != direct.MonthlyPayment {
		t.Errorf("generator payment %v != direct payment %v",
			fromGenerator.MonthlyPayment, direct.MonthlyPayment)
	}
	if len(fromGenerator.Payments) != len(direct.Payments) {
		t.Fatalf("generator length %d != direct length %d",
			len(fromGenerator.Payments), len(direct.Payments))
	}
	for i := range direct.Payments {
		if fromGenerator.Payments[i] != direct.Payments[i] {
			t.Errorf("period %d differs: %+v vs %+v",
				i+1, fromGenerator.Payments[i], direct.Payments[i])
		}
	}
}

func TestScheduleGeneratorNilLogger(t *testing.T) {
	generator := NewScheduleGenerator(nil)
	schedule := generator.Generate("nil logger", Terms{Principal: 1000, AnnualRate: 5, TermMonths: 12})
	if len(schedule.Payments) != 12 {
		t.Errorf("schedule length = %d, expected 12", len(schedule.Payments))
	}
}
