package parser

import (
	"math"
	"testing"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"1,234.56", 1234.56},
		{"NGN 1,234.56", 1234.56},
		{"NGN 0.00", 0},
		{"45,000.00", 45000},
		{"1,250,000.75", 1250000.75},
		{"", 0},
		{"-", 0},
	}

	for _, tt := range tests {
		got, err := parseAmount(tt.in)
		if err != nil {
			t.Errorf("parseAmount(%q): unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseAmount(%q) = %f, want %f", tt.in, got, tt.want)
		}
	}
}

func TestFormatNaira(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "NGN 0.00"},
		{250, "NGN 250.00"},
		{5000, "NGN 5,000.00"},
		{45000, "NGN 45,000.00"},
		{1234.5, "NGN 1,234.50"},
		{1250000.75, "NGN 1,250,000.75"},
		{123456789.99, "NGN 123,456,789.99"},
	}

	for _, tt := range tests {
		if got := formatNaira(tt.in); got != tt.want {
			t.Errorf("formatNaira(%f) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCurrencyRoundTrip(t *testing.T) {
	// Formatting a parsed magnitude and re-parsing it must give the
	// original magnitude back.
	for _, amount := range []float64{0, 0.01, 99.99, 1234.56, 45000, 1250000.75} {
		got, err := parseAmount(formatNaira(amount))
		if err != nil {
			t.Fatalf("round trip of %f failed: %v", amount, err)
		}
		if math.Abs(got-amount) > 1e-9 {
			t.Errorf("round trip of %f gave %f", amount, got)
		}
	}
}
