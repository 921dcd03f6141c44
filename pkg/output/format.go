// Package output provides utilities for formatting and displaying
// amortization schedules.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/mlattimer/loan-schedule/pkg/format"
	"github.com/mlattimer/loan-schedule/pkg/loans"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat writes a human-readable rather than machine-readable table.
// currency is the ISO code used for the summary amounts.
func PrettyFormat(w io.Writer, name, currency string, schedule loans.Schedule) {
	p := message.NewPrinter(language.English)
	fmt.Fprintf(w, "--- Amortization schedule for %s ---\n", name)
	fmt.Fprintf(w, "Monthly payment: %s\n", format.CurrencyIn(schedule.MonthlyPayment, currency))
	fmt.Fprintf(w, "Total interest:  %s\n", format.CurrencyIn(schedule.TotalInterest, currency))
	fmt.Fprintf(w, "Period | Interest     | Principal    | Balance\n")
	fmt.Fprintf(w, "______ | ________     | _________    | _______\n")
	for _, payment := range schedule.Payments {
		_, _ = p.Fprintf(w, "%6d | %12.2f | %12.2f | %12.2f\n",
			payment.Period, payment.Interest, payment.Principal, payment.RemainingPrincipal)
	}
}

// CsvFormat writes the schedule in comma-separated value format.
func CsvFormat(w io.Writer, name string, schedule loans.Schedule) {
	fmt.Fprintf(w, `"period","interest (%s)","principal (%s)","balance (%s)"`, name, name, name)
	fmt.Fprintf(w, "\n")
	for _, payment := range schedule.Payments {
		fmt.Fprintf(w, `"%d","%.2f","%.2f","%.2f"`,
			payment.Period, payment.Interest, payment.Principal, payment.RemainingPrincipal)
		fmt.Fprintf(w, "\n")
	}
}

// CsvString renders the CSV format into a string, e.g. for API responses.
func CsvString(name string, schedule loans.Schedule) string {
	var builder strings.Builder
	CsvFormat(&builder, name, schedule)
	return builder.String()
}
