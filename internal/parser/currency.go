package parser

import (
	"regexp"
	"strconv"
	"strings"
)

// amountPattern matches one "NGN <amount>" token anywhere in a field.
var amountPattern = regexp.MustCompile(`NGN\s+([\d,.]+)`)

// trailingAmountPattern matches a field that ends with a currency amount,
// which is how balance cells present themselves in the token stream.
var trailingAmountPattern = regexp.MustCompile(`NGN\s+[\d,.]+$`)

// parseAmount converts an amount string like "12,345.00" or "NGN 12,345.00"
// to its float64 magnitude. Grouping commas and currency prefixes are
// stripped. Empty input parses as zero.
func parseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "NGN")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, " ", "") // non-breaking space

	if s == "" || s == "-" {
		return 0, nil
	}

	return strconv.ParseFloat(s, 64)
}

// formatNaira renders a magnitude as "NGN <amount>" with exactly two
// fractional digits and comma grouping in the integer part, e.g.
// "NGN 12,345.00". Zero renders as "NGN 0.00".
func formatNaira(amount float64) string {
	return "NGN " + groupDigits(strconv.FormatFloat(amount, 'f', 2, 64))
}

// groupDigits inserts thousands separators into the integer part of a
// plain decimal string. No leading separator is ever produced.
func groupDigits(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart := s
	fracPart := ""
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		intPart = s[:dot]
		fracPart = s[dot:]
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 && !(neg && b.Len() == 1) {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}
	b.WriteString(fracPart)
	return b.String()
}
