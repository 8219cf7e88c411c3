package parser

import (
	"math"

	"github.com/rs/zerolog"

	"github.com/oladipuporancho/bank-statement-json/internal/models"
)

// balanceTolerance is the comparison tolerance for balance deltas.
// Amounts carry at most two fractional digits, so this is effectively
// exact.
const balanceTolerance = 1e-9

// reconciler infers or corrects a transaction's credit/debit classification
// from the arithmetic difference between consecutive running balances. The
// accumulator state is owned by the caller and threaded through the
// sequence being built; the primary and fallback paths each run their own.
type reconciler struct {
	lastBalance *float64
	log         zerolog.Logger
}

func newReconciler(log zerolog.Logger) *reconciler {
	return &reconciler{log: log}
}

// resolve applies the current balance to the transaction being assembled.
// A positive delta sets or confirms CREDIT, a negative one DEBIT, each with
// the delta magnitude as the amount. A type already fixed to the opposite
// sign by direct parsing wins; the conflicting delta is logged as a
// discrepancy and dropped.
func (r *reconciler) resolve(currentBalance float64, txn *models.Transaction) {
	defer func() {
		r.lastBalance = &currentBalance
	}()

	if r.lastBalance == nil {
		return
	}

	delta := currentBalance - *r.lastBalance
	if math.Abs(delta) <= balanceTolerance {
		return
	}

	if delta > 0 {
		if txn.TransactionType == models.TypeUnknown || txn.TransactionType == models.TypeCredit {
			txn.Credit = formatNaira(math.Abs(delta))
			txn.Debit = models.ZeroAmount
			txn.TransactionType = models.TypeCredit
			return
		}
	} else {
		if txn.TransactionType == models.TypeUnknown || txn.TransactionType == models.TypeDebit {
			txn.Credit = models.ZeroAmount
			txn.Debit = formatNaira(math.Abs(delta))
			txn.TransactionType = models.TypeDebit
			return
		}
	}

	// Direct parsing disagrees with the balance delta. Keep the parsed
	// classification but surface the conflict.
	r.log.Warn().
		Str("time", txn.Time).
		Str("type", txn.TransactionType).
		Float64("balanceDelta", delta).
		Msg("balance delta conflicts with parsed transaction type")
}
