// Package parser reconstructs a structured ledger from the raw text of a
// bank statement: account metadata, monthly summary totals and an ordered
// list of individual transactions. The source text has no reliable schema;
// transaction boundaries are inferred from loosely positioned timestamp
// tokens and credit/debit classification is cross-checked against running
// balances.
package parser

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/oladipuporancho/bank-statement-json/internal/models"
)

// Extractor runs the extraction pipeline over one text blob. It holds no
// per-call state; one Extract call operates on one immutable input and
// produces one independent result, so a single Extractor is safe for
// concurrent use.
type Extractor struct {
	log zerolog.Logger
}

// New returns an Extractor that logs diagnostics to the given logger.
func New(log zerolog.Logger) *Extractor {
	return &Extractor{log: log}
}

// Extract reconstructs the statement ledger from raw text. It never
// returns a raw error: any panic while reading or pattern-matching the
// input is caught here and converted into the structured error result.
func (e *Extractor) Extract(text string) (result *models.Result) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Error().Interface("panic", r).Msg("extraction failed")
			result = &models.Result{
				Error:        true,
				Totals:       []models.MonthlyTotal{},
				Transactions: []models.Transaction{},
				Message:      fmt.Sprintf("Error extracting bank statement: %v", r),
			}
		}
	}()

	e.log.Debug().Str("sample", sample(text, 500)).Msg("extraction input")

	accountInfo := extractAccountInfo(text)
	totals := extractMonthlyTotals(text)
	year := resolveYear(accountInfo.StatementPeriod)

	txns := []models.Transaction{}
	rec := newReconciler(e.log)
	for _, sec := range splitDateSections(text, year) {
		txns = append(txns, e.reconstructSection(sec, rec)...)
	}

	// Structural mismatch: no transactions survived the header-split
	// path. Re-derive them with the position-anchored line scanner,
	// with its own reconciliation state.
	if len(txns) == 0 {
		e.log.Debug().Msg("primary reconstruction empty, trying line scanner")
		txns = append(txns, e.scanLines(text, year, newReconciler(e.log))...)
	}

	correctUnknownTypes(txns)
	sortChronologically(txns)

	e.log.Info().Int("transactions", len(txns)).Msg("extraction complete")

	return &models.Result{
		AccountInfo:  accountInfo,
		Totals:       totals,
		Transactions: txns,
		Message:      fmt.Sprintf("Successfully extracted %d transactions", len(txns)),
	}
}

func sample(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
