// Package format renders monetary amounts for display. The amortization
// engine works in unrounded floats; everything here is presentation only.
package format

import (
	"fmt"
	"math"
	"strings"
)

// currencySymbols maps ISO 4217 codes to their display symbols. Codes
// without an entry fall back to "<CODE> " as a prefix.
var currencySymbols = map[string]string{
	"USD": "$",
	"CAD": "$",
	"AUD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"INR": "₹",
}

// Currency returns a currency string with a dollar sign and thousands separators (e.g., "-$1,234.56").
func Currency(amount float64) string {
	return CurrencyIn(amount, "USD")
}

// CurrencyIn formats an amount with the symbol for the given ISO currency
// code (e.g., CurrencyIn(-1234.56, "EUR") -> "-€1,234.56").
func CurrencyIn(amount float64, code string) string {
	symbol, ok := currencySymbols[strings.ToUpper(code)]
	if !ok {
		symbol = strings.ToUpper(code) + " "
	}
	formatted := formatPositiveCurrency(math.Abs(amount))
	if amount < 0 {
		return "-" + symbol + formatted
	}
	return symbol + formatted
}

// NumericCurrency returns a currency string without a currency symbol but with separators (e.g., "-1,234.56").
func NumericCurrency(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
	}
	formatted := formatPositiveCurrency(math.Abs(amount))
	return sign + formatted
}

func formatPositiveCurrency(value float64) string {
	formatted := fmt.Sprintf("%.2f", value)
	parts := strings.SplitN(formatted, ".", 2)
	intPart := parts[0]
	decPart := "00"
	if len(parts) == 2 {
		decPart = parts[1]
	}

	if len(intPart) > 3 {
		var builder strings.Builder
		for i, digit := range intPart {
			if i > 0 && (len(intPart)-i)%3 == 0 {
				builder.WriteByte(',')
			}
			builder.WriteRune(digit)
		}
		intPart = builder.String()
	}

	return intPart + "." + decPart
}
