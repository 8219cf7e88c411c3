package models

// Transaction types. UNKNOWN is transient — later pipeline stages try to
// resolve it, but it may survive to output when no evidence is found.
const (
	TypeCredit  = "CREDIT"
	TypeDebit   = "DEBIT"
	TypeUnknown = "UNKNOWN"
)

// ZeroAmount is the rendering of a zero currency value.
const ZeroAmount = "NGN 0.00"

// AccountInfo holds account-level metadata extracted from the statement.
// Fields whose pattern did not match are empty strings.
type AccountInfo struct {
	AccountName     string `json:"accountName"`
	AccountNumber   string `json:"accountNumber"`
	StatementPeriod string `json:"statementPeriod"`
	OpeningBalance  string `json:"openingBalance"`
	ClosingBalance  string `json:"closingBalance"`
}

// MonthlyTotal is one (year, month, credit, debit) summary tuple.
type MonthlyTotal struct {
	Year        string `json:"year"`
	Month       string `json:"month"`
	TotalCredit string `json:"totalCredit"`
	TotalDebit  string `json:"totalDebit"`
}

// Transaction represents a single statement entry. Credit and Debit are
// mutually exclusive except when both stay "NGN 0.00" under unresolved
// ambiguity. Balance is the account balance immediately after the entry.
type Transaction struct {
	Date            string `json:"date"` // yyyy-mm-dd
	Time            string `json:"time"` // HH:MM:SS
	Credit          string `json:"credit"`
	Debit           string `json:"debit"`
	TransactionType string `json:"transactionType"`
	Category        string `json:"category"`
	ToFrom          string `json:"toFrom"`
	Description     string `json:"description"`
	Balance         string `json:"balance"`
}

// Result is the structured outcome of one extraction call.
// On failure only Error and Message are set. Totals and Transactions are
// never nil on success (nil marshals to JSON null, not []).
type Result struct {
	AccountInfo  *AccountInfo   `json:"accountInfo,omitempty"`
	Totals       []MonthlyTotal `json:"totals"`
	Transactions []Transaction  `json:"transactions"`
	Message      string         `json:"message"`
	Error        bool           `json:"error,omitempty"`
}
