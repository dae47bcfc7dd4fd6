package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/carson-networks/purchase-forwarder/internal/directory"
	"github.com/carson-networks/purchase-forwarder/internal/mapping"
	"github.com/carson-networks/purchase-forwarder/internal/ynab"
)

// ErrSubmissionFailed wraps any failure of the YNAB create call.
var ErrSubmissionFailed = errors.New("submission failed")

// transactionCreator is the YNAB operation the service depends on.
type transactionCreator interface {
	CreateTransaction(ctx context.Context, budgetID string, transaction ynab.NewTransaction) (string, error)
}

// ForwardResult describes a successfully submitted purchase.
type ForwardResult struct {
	TransactionID string
	Transaction   mapping.Transaction
}

// NeedsCategorization reports whether the merchant had no directory category.
func (r *ForwardResult) NeedsCategorization() bool {
	return r.Transaction.NeedsCategorization()
}

// PurchaseService maps purchases and submits them to YNAB.
type PurchaseService struct {
	directory *directory.Directory
	client    transactionCreator
}

// NewPurchaseService creates a new PurchaseService.
func NewPurchaseService(dir *directory.Directory, client transactionCreator) *PurchaseService {
	return &PurchaseService{directory: dir, client: client}
}

// ForwardPurchase maps the purchase and, only if mapping succeeds, submits it
// exactly once. Mapping errors are returned unchanged; submission errors are
// wrapped with ErrSubmissionFailed.
func (s *PurchaseService) ForwardPurchase(ctx context.Context, purchase mapping.Purchase) (*ForwardResult, error) {
	transaction, err := mapping.MapTransaction(s.directory, purchase)
	if err != nil {
		return nil, err
	}

	id, err := s.client.CreateTransaction(ctx, s.directory.BudgetID, toNewTransaction(transaction))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSubmissionFailed, err)
	}

	return &ForwardResult{
		TransactionID: id,
		Transaction:   transaction,
	}, nil
}

func toNewTransaction(transaction mapping.Transaction) ynab.NewTransaction {
	payeeName := transaction.PayeeName

	return ynab.NewTransaction{
		AccountID:  transaction.AccountID,
		Date:       transaction.Date.String(),
		Amount:     transaction.Amount,
		PayeeName:  &payeeName,
		CategoryID: transaction.CategoryID,
	}
}
