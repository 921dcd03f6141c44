package format

import "testing"

func TestCurrency(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{"Simple amount", 529.6, "$529.60"},
		{"Thousands separator", 27000, "$27,000.00"},
		{"Millions", 1234567.89, "$1,234,567.89"},
		{"Negative amount", -1234.56, "-$1,234.56"},
		{"Zero", 0, "$0.00"},
		{"Sub-dollar", 0.5, "$0.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Currency(tt.amount); got != tt.expected {
				t.Errorf("Currency(%v) = %q, expected %q", tt.amount, got, tt.expected)
			}
		})
	}
}

func TestCurrencyIn(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		code     string
		expected string
	}{
		{"Euro", 2022.62, "EUR", "€2,022.62"},
		{"Pound", 1000, "GBP", "£1,000.00"},
		{"Lowercase code", 100, "usd", "$100.00"},
		{"Unknown code", 100, "CHF", "CHF 100.00"},
		{"Negative euro", -50.25, "EUR", "-€50.25"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CurrencyIn(tt.amount, tt.code); got != tt.expected {
				t.Errorf("CurrencyIn(%v, %q) = %q, expected %q", tt.amount, tt.code, got, tt.expected)
			}
		})
	}
}

func TestNumericCurrency(t *testing.T) {
	if got := NumericCurrency(-27000.5); got != "-27,000.50" {
		t.Errorf("NumericCurrency(-27000.5) = %q, expected %q", got, "-27,000.50")
	}
	if got := NumericCurrency(833.333333); got != "833.33" {
		t.Errorf("NumericCurrency(833.333333) = %q, expected %q", got, "833.33")
	}
}
