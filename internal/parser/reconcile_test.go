package parser

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/oladipuporancho/bank-statement-json/internal/models"
)

func newTestReconciler(last float64) *reconciler {
	return &reconciler{lastBalance: &last, log: zerolog.Nop()}
}

func unknownTxn() models.Transaction {
	return models.Transaction{
		Credit:          models.ZeroAmount,
		Debit:           models.ZeroAmount,
		TransactionType: models.TypeUnknown,
	}
}

func TestReconcilerCreditFromDelta(t *testing.T) {
	// Known prior balance 1,000.00, current 1,250.00, type unknown:
	// the delta decides CREDIT 250.00.
	rec := newTestReconciler(1000)
	txn := unknownTxn()

	rec.resolve(1250, &txn)

	if txn.TransactionType != models.TypeCredit {
		t.Errorf("type = %q, want CREDIT", txn.TransactionType)
	}
	if txn.Credit != "NGN 250.00" {
		t.Errorf("credit = %q, want NGN 250.00", txn.Credit)
	}
	if txn.Debit != "NGN 0.00" {
		t.Errorf("debit = %q, want NGN 0.00", txn.Debit)
	}
}

func TestReconcilerDebitFromDelta(t *testing.T) {
	rec := newTestReconciler(5000)
	txn := unknownTxn()

	rec.resolve(3500, &txn)

	if txn.TransactionType != models.TypeDebit {
		t.Errorf("type = %q, want DEBIT", txn.TransactionType)
	}
	if txn.Debit != "NGN 1,500.00" {
		t.Errorf("debit = %q, want NGN 1,500.00", txn.Debit)
	}
	if txn.Credit != "NGN 0.00" {
		t.Errorf("credit = %q, want NGN 0.00", txn.Credit)
	}
}

func TestReconcilerConfirmsMatchingType(t *testing.T) {
	// A direct DEBIT classification with a negative delta is re-stated
	// from the delta magnitude.
	rec := newTestReconciler(10000)
	txn := unknownTxn()
	txn.TransactionType = models.TypeDebit
	txn.Debit = "NGN 2,000.00"

	rec.resolve(8000, &txn)

	if txn.TransactionType != models.TypeDebit {
		t.Errorf("type = %q, want DEBIT", txn.TransactionType)
	}
	if txn.Debit != "NGN 2,000.00" {
		t.Errorf("debit = %q, want NGN 2,000.00", txn.Debit)
	}
}

func TestReconcilerKeepsOpposingDirectType(t *testing.T) {
	// Direct evidence that disagrees with the balance delta wins.
	rec := newTestReconciler(1000)
	txn := unknownTxn()
	txn.TransactionType = models.TypeDebit
	txn.Debit = "NGN 300.00"

	rec.resolve(1250, &txn) // delta is positive, but the parse said DEBIT

	if txn.TransactionType != models.TypeDebit {
		t.Errorf("type = %q, want DEBIT preserved", txn.TransactionType)
	}
	if txn.Debit != "NGN 300.00" {
		t.Errorf("debit = %q, want NGN 300.00 preserved", txn.Debit)
	}
}

func TestReconcilerNoPriorBalance(t *testing.T) {
	rec := newReconciler(zerolog.Nop())
	txn := unknownTxn()

	rec.resolve(1250, &txn)

	if txn.TransactionType != models.TypeUnknown {
		t.Errorf("type = %q, want UNKNOWN without a prior balance", txn.TransactionType)
	}
	if rec.lastBalance == nil || *rec.lastBalance != 1250 {
		t.Error("lastBalance not advanced")
	}
}

func TestReconcilerZeroDelta(t *testing.T) {
	rec := newTestReconciler(1250)
	txn := unknownTxn()

	rec.resolve(1250, &txn)

	if txn.TransactionType != models.TypeUnknown {
		t.Errorf("type = %q, want UNKNOWN on zero delta", txn.TransactionType)
	}
}
