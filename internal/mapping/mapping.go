// Package mapping turns an incoming purchase webhook into a YNAB transaction.
package mapping

import (
	"cloud.google.com/go/civil"

	"github.com/carson-networks/purchase-forwarder/internal/directory"
)

// Purchase is the webhook payload as received.
type Purchase struct {
	Amount   string
	Name     string
	Card     string
	Merchant string
	Date     string
}

// Transaction is a fully mapped purchase ready for submission.
type Transaction struct {
	AccountID  string
	Date       civil.Date
	Amount     int64 // milliunits
	PayeeName  string
	CategoryID *string // nil when the merchant is not in the directory
}

// NeedsCategorization reports whether the transaction was mapped without a category.
func (t Transaction) NeedsCategorization() bool {
	return t.CategoryID == nil
}

// MapTransaction resolves and normalizes every field of purchase. It either
// returns a complete transaction or the first error encountered.
func MapTransaction(dir *directory.Directory, purchase Purchase) (Transaction, error) {
	accountID, err := dir.ResolveAccountID(purchase.Card)
	if err != nil {
		return Transaction{}, err
	}

	date, err := ParseDate(purchase.Date)
	if err != nil {
		return Transaction{}, err
	}

	amount, err := ParseAmount(purchase.Amount)
	if err != nil {
		return Transaction{}, err
	}

	transaction := Transaction{
		AccountID: accountID,
		Date:      date,
		Amount:    amount,
		PayeeName: purchase.Merchant,
	}

	if categoryID, ok := dir.ResolveCategoryID(purchase.Merchant); ok {
		transaction.CategoryID = &categoryID
	}

	return transaction, nil
}
