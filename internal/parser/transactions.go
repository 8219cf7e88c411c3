package parser

import (
	"regexp"
	"strings"

	"github.com/oladipuporancho/bank-statement-json/internal/models"
)

var (
	// timeLinePattern recognizes a line whose content begins with an
	// HH:MM:SS timestamp, marking one transaction.
	timeLinePattern = regexp.MustCompile(`^(\d{2}:\d{2}:\d{2})`)

	// fieldSeparatorPattern splits a time-entry's trailing token stream
	// into candidate fields on runs of two-or-more whitespace characters
	// or line breaks.
	fieldSeparatorPattern = regexp.MustCompile(`\s{2,}|\n`)

	// categoryAmountsPattern matches the paired amounts that some category
	// cells embed directly before the "Wallet" marker.
	categoryAmountsPattern = regexp.MustCompile(`NGN\s+([\d,.]+)NGN\s+([\d,.]+)Wallet`)
)

// reconstructSection decomposes one day-section into transactions. Every
// line beginning with a timestamp opens a transaction; the token stream
// after that timestamp is classified into category / toFrom / description /
// balance slots in fixed order.
func (e *Extractor) reconstructSection(sec daySection, rec *reconciler) []models.Transaction {
	var txns []models.Transaction

	remaining := sec.content
	for _, line := range strings.Split(sec.content, "\n") {
		m := timeLinePattern.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		timeStr := m[1]

		// Everything after the first occurrence of this exact time string
		// in the section's remaining content belongs to this entry.
		idx := strings.Index(remaining, timeStr)
		if idx < 0 {
			continue
		}
		tail := remaining[idx+len(timeStr):]
		remaining = tail

		txn := e.buildTransaction(sec.date, timeStr, tail, rec)
		txns = append(txns, txn)
	}

	return txns
}

// buildTransaction assembles one transaction from the token stream that
// follows its timestamp.
func (e *Extractor) buildTransaction(date, timeStr, tail string, rec *reconciler) models.Transaction {
	txn := models.Transaction{
		Date:            date,
		Time:            timeStr,
		Credit:          models.ZeroAmount,
		Debit:           models.ZeroAmount,
		TransactionType: models.TypeUnknown,
	}

	fields := fieldSeparatorPattern.Split(strings.TrimSpace(tail), -1)
	for _, field := range fields {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}

		switch {
		case strings.Contains(field, "Wallet") && txn.Category == "":
			txn.Category = field
			classifyFromCategoryPair(&txn, field)
		case isCounterparty(field) && txn.ToFrom == "":
			txn.ToFrom = field
		case strings.Contains(field, "TXT-") && txn.Description == "":
			txn.Description = field
		case trailingAmountPattern.MatchString(field) && txn.Balance == "":
			txn.Balance = field
			if bal, ok := balanceAmount(field); ok {
				rec.resolve(bal, &txn)
			}
		}
	}

	txn.Category = cleanCategory(txn.Category)
	return txn
}

// classifyFromCategoryPair classifies a transaction directly from the two
// adjacent amounts a category cell embeds before "Wallet": one of them is
// the credit column, the other the debit column. When both are non-zero the
// larger one wins.
func classifyFromCategoryPair(txn *models.Transaction, category string) {
	m := categoryAmountsPattern.FindStringSubmatch(category)
	if m == nil {
		return
	}

	first, err1 := parseAmount(m[1])
	second, err2 := parseAmount(m[2])
	if err1 != nil || err2 != nil {
		return
	}

	switch {
	case first > 0 && second == 0:
		txn.Credit = "NGN " + m[1]
		txn.Debit = models.ZeroAmount
		txn.TransactionType = models.TypeCredit
	case first == 0 && second > 0:
		txn.Credit = models.ZeroAmount
		txn.Debit = "NGN " + m[2]
		txn.TransactionType = models.TypeDebit
	case first > 0 && second > 0:
		if first > second {
			txn.Credit = "NGN " + m[1]
			txn.Debit = models.ZeroAmount
			txn.TransactionType = models.TypeCredit
		} else {
			txn.Credit = models.ZeroAmount
			txn.Debit = "NGN " + m[2]
			txn.TransactionType = models.TypeDebit
		}
	}
}

// counterpartyDigitsPattern matches bare account or phone numbers, the way
// counterparties appear when no name accompanies them.
var counterpartyDigitsPattern = regexp.MustCompile(`^\d{8,}$`)

// isCounterparty reports whether a field looks like the to/from party:
// a name pair ("A/B"), a company ("... Limited") or a bare account/phone
// number.
func isCounterparty(field string) bool {
	return strings.Contains(field, "/") ||
		strings.Contains(field, "Limited") ||
		counterpartyDigitsPattern.MatchString(field)
}

// balanceAmount extracts the magnitude from a balance cell.
func balanceAmount(field string) (float64, bool) {
	m := amountPattern.FindStringSubmatch(field)
	if m == nil {
		return 0, false
	}
	bal, err := parseAmount(m[1])
	if err != nil {
		return 0, false
	}
	return bal, true
}

// cleanCategory reduces a category cell to the substring from its "Wallet"
// marker onward, trimmed.
func cleanCategory(category string) string {
	idx := strings.Index(category, "Wallet")
	if idx < 0 {
		return category
	}
	return strings.TrimSpace(category[idx:])
}
