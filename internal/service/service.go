package service

import (
	"github.com/carson-networks/purchase-forwarder/internal/directory"
)

// Service holds all business logic services.
type Service struct {
	Purchase *PurchaseService
}

// NewService creates a new Service backed by the given directory and YNAB client.
func NewService(dir *directory.Directory, client transactionCreator) *Service {
	return &Service{
		Purchase: NewPurchaseService(dir, client),
	}
}
