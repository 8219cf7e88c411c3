package parser

import (
	"regexp"
	"strings"

	"github.com/oladipuporancho/bank-statement-json/internal/models"
)

// Account metadata patterns. Each field is looked up independently by a
// single best match against the whole text; a miss yields an empty string.
var (
	accountNamePattern     = regexp.MustCompile(`(?m)^([A-Z][A-Z\s-]+)[\r\n]`)
	accountNumberPattern   = regexp.MustCompile(`Account Number\s*(\d+)`)
	statementPeriodPattern = regexp.MustCompile(`Statement Period\s*([^\r\n]+)`)
	openingBalancePattern  = regexp.MustCompile(`Opening Balance\s*(NGN [0-9,.]+)`)
	closingBalancePattern  = regexp.MustCompile(`Closing Balance\s*(NGN [0-9,.]+)`)
)

// monthlyTotalPattern matches one "<year> <month> NGN <credit> NGN <debit>"
// summary tuple.
var monthlyTotalPattern = regexp.MustCompile(
	`(20\d{2})\s+(` + monthAlternation + `)\s+NGN\s+([\d,.]+)\s+NGN\s+([\d,.]+)`,
)

// extractAccountInfo pulls the account-level fields out of the statement
// text. Pure lookup, no field depends on another.
func extractAccountInfo(text string) *models.AccountInfo {
	return &models.AccountInfo{
		AccountName:     firstGroup(accountNamePattern, text),
		AccountNumber:   firstGroup(accountNumberPattern, text),
		StatementPeriod: firstGroup(statementPeriodPattern, text),
		OpeningBalance:  firstGroup(openingBalancePattern, text),
		ClosingBalance:  firstGroup(closingBalancePattern, text),
	}
}

// extractMonthlyTotals scans the whole text for summary tuples in document
// order. Zero matches is a valid result.
func extractMonthlyTotals(text string) []models.MonthlyTotal {
	totals := []models.MonthlyTotal{}
	for _, m := range monthlyTotalPattern.FindAllStringSubmatch(text, -1) {
		totals = append(totals, models.MonthlyTotal{
			Year:        m[1],
			Month:       m[2],
			TotalCredit: "NGN " + m[3],
			TotalDebit:  "NGN " + m[4],
		})
	}
	return totals
}

// firstGroup returns the first capture group of the first match, trimmed,
// or "" when the pattern does not match.
func firstGroup(pat *regexp.Regexp, text string) string {
	m := pat.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}
