package parser

import (
	"regexp"
	"strings"

	"github.com/oladipuporancho/bank-statement-json/internal/models"
)

// headerWindow is how far past a date header a line may start while still
// being attributed to that header. Intentionally loose, to tolerate minor
// formatting variance in the extracted text.
const headerWindow = 20

// fallbackHeaderPattern recovers date headers the strict segmenter misses:
// case variations and abbreviated month names still anchor a day's entries
// here.
var fallbackHeaderPattern = regexp.MustCompile(
	`(?i)\b(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?\s+(\d{1,2})\b`,
)

// findRecoverableHeaders scans the text for date headers by position,
// resolving each month to its canonical full name.
func findRecoverableHeaders(text string) []dateHeader {
	var headers []dateHeader
	for _, loc := range fallbackHeaderPattern.FindAllStringSubmatchIndex(text, -1) {
		month := canonicalMonth(text[loc[2]:loc[3]])
		if month == "" {
			continue
		}
		headers = append(headers, dateHeader{
			month: month,
			day:   text[loc[4]:loc[5]],
			start: loc[0],
			end:   loc[1],
		})
	}
	return headers
}

// canonicalMonth maps a three-letter month prefix, in any case, to the
// full month name.
func canonicalMonth(prefix string) string {
	prefix = strings.ToLower(prefix)
	for _, m := range months {
		if strings.HasPrefix(strings.ToLower(m), prefix) {
			return m
		}
	}
	return ""
}

// scanLines is the fallback path, activated only when the primary
// header-split reconstruction yields no transactions. It walks the text
// line by line, attributes each time line to the nearest preceding date
// header by character offset, and consumes the four following lines as
// category, counterparty, description and balance at fixed offsets with no
// content validation.
func (e *Extractor) scanLines(text, year string, rec *reconciler) []models.Transaction {
	var txns []models.Transaction

	headers := findRecoverableHeaders(text)
	if len(headers) == 0 {
		return nil
	}

	lines := strings.Split(text, "\n")
	offsets := lineOffsets(lines)

	currentDate := ""
	for i := 0; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])

		// Attribute this line to a date header whose offset window
		// covers the line's own position.
		for _, h := range headers {
			if offsets[i] >= h.start && offsets[i] < h.end+headerWindow {
				currentDate = formatDate(year, h.month, h.day)
				break
			}
		}

		m := timeLinePattern.FindStringSubmatch(line)
		if m == nil || currentDate == "" {
			continue
		}

		txn := models.Transaction{
			Date:            currentDate,
			Time:            m[1],
			Credit:          models.ZeroAmount,
			Debit:           models.ZeroAmount,
			TransactionType: models.TypeUnknown,
			Category:        strings.TrimSpace(lineAt(lines, i+1)),
			ToFrom:          strings.TrimSpace(lineAt(lines, i+2)),
			Description:     strings.TrimSpace(lineAt(lines, i+3)),
			Balance:         models.ZeroAmount,
		}

		classifyFromCategoryAmounts(&txn)
		txn.Category = cleanCategory(txn.Category)

		balanceLine := lineAt(lines, i+4)
		if bm := amountPattern.FindStringSubmatch(balanceLine); bm != nil {
			txn.Balance = "NGN " + bm[1]
			if bal, err := parseAmount(bm[1]); err == nil {
				rec.resolve(bal, &txn)
			}
		}

		txns = append(txns, txn)

		// Skip past the four consumed lines.
		i += 4
	}

	return txns
}

// classifyFromCategoryAmounts infers credit/debit from the first two
// currency amounts embedded in the category text: a non-zero against a
// zero decides directly, otherwise the larger amount wins and determines
// the type.
func classifyFromCategoryAmounts(txn *models.Transaction) {
	amounts := amountPattern.FindAllStringSubmatch(txn.Category, -1)
	if len(amounts) < 2 {
		return
	}

	first, err1 := parseAmount(amounts[0][1])
	second, err2 := parseAmount(amounts[1][1])
	if err1 != nil || err2 != nil {
		return
	}

	if second > first || (first == 0 && second > 0) {
		txn.Credit = models.ZeroAmount
		txn.Debit = "NGN " + amounts[1][1]
		txn.TransactionType = models.TypeDebit
	} else if first > 0 {
		txn.Credit = "NGN " + amounts[0][1]
		txn.Debit = models.ZeroAmount
		txn.TransactionType = models.TypeCredit
	}
}

// lineOffsets returns the character offset of each line within the source
// text the lines were split from.
func lineOffsets(lines []string) []int {
	offsets := make([]int, len(lines))
	pos := 0
	for i, line := range lines {
		offsets[i] = pos
		pos += len(line) + 1 // +1 for the newline
	}
	return offsets
}

func lineAt(lines []string, i int) string {
	if i < len(lines) {
		return lines[i]
	}
	return ""
}
