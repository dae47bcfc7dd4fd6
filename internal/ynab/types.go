// Package ynab provides a minimal YNAB API client for creating transactions.
package ynab

// ClearedStatus values accepted by the API.
const (
	ClearedStatusCleared    = "cleared"
	ClearedStatusUncleared  = "uncleared"
	ClearedStatusReconciled = "reconciled"
)

// NewTransaction is the body of a single transaction create request.
// See https://api.ynab.com/v1#/Transactions/createTransaction
type NewTransaction struct {
	AccountID  string  `json:"account_id"`
	Date       string  `json:"date"`   // YYYY-MM-DD
	Amount     int64   `json:"amount"` // milliunits
	PayeeName  *string `json:"payee_name,omitempty"`
	CategoryID *string `json:"category_id,omitempty"`
	Memo       *string `json:"memo,omitempty"`
	Cleared    string  `json:"cleared,omitempty"`
	Approved   bool    `json:"approved"`
}

// PostTransactionsWrapper wraps a single transaction create request.
type PostTransactionsWrapper struct {
	Transaction NewTransaction `json:"transaction"`
}

// TransactionDetail is the subset of the created transaction we read back.
type TransactionDetail struct {
	ID         string  `json:"id"`
	Date       string  `json:"date"`
	Amount     int64   `json:"amount"`
	AccountID  string  `json:"account_id"`
	PayeeName  *string `json:"payee_name"`
	CategoryID *string `json:"category_id"`
}

// SaveTransactionsResponse is returned on a successful create.
type SaveTransactionsResponse struct {
	Data struct {
		TransactionIDs  []string           `json:"transaction_ids"`
		Transaction     *TransactionDetail `json:"transaction"`
		ServerKnowledge int64              `json:"server_knowledge"`
	} `json:"data"`
}

// ErrorResponse is the API error envelope.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail describes an API error.
type ErrorDetail struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Detail string `json:"detail"`
}
