package parser

import (
	"sort"

	"github.com/oladipuporancho/bank-statement-json/internal/models"
)

// correctUnknownTypes revisits transactions still classified UNKNOWN and
// resolves them from amounts embedded in their category text. Transactions
// with a determined type are left alone; every revisited transaction gets
// its category re-cleaned.
func correctUnknownTypes(txns []models.Transaction) {
	for i := range txns {
		txn := &txns[i]
		if txn.TransactionType != models.TypeUnknown || txn.Category == "" {
			continue
		}
		classifyFromCategoryAmounts(txn)
		txn.Category = cleanCategory(txn.Category)
	}
}

// sortChronologically stable-orders transactions by date then time. Dates
// are zero-padded ISO form and times HH:MM:SS, so lexicographic comparison
// is chronological.
func sortChronologically(txns []models.Transaction) {
	sort.SliceStable(txns, func(i, j int) bool {
		if txns[i].Date != txns[j].Date {
			return txns[i].Date < txns[j].Date
		}
		return txns[i].Time < txns[j].Time
	})
}
