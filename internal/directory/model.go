package directory

import (
	"errors"
	"fmt"
)

// ErrAccountNotFound is returned when a card name has no directory entry.
var ErrAccountNotFound = errors.New("account not found")

// Account maps a card's display name to a YNAB account id.
type Account struct {
	Name string `json:"name" yaml:"name"`
	ID   string `json:"id" yaml:"id"`
}

// Merchant maps a merchant's display name to a YNAB category id.
type Merchant struct {
	Name       string `json:"name" yaml:"name"`
	CategoryID string `json:"category_id" yaml:"category_id"`
}

// Directory is the read-only lookup table loaded once at startup.
// It must not be mutated after Validate succeeds.
type Directory struct {
	BudgetID    string     `json:"budget_id" yaml:"budget_id"`
	AccessToken string     `json:"access_token" yaml:"access_token"`
	Accounts    []Account  `json:"accounts" yaml:"accounts"`
	Merchants   []Merchant `json:"merchants" yaml:"merchants"`
}

// String keeps the access token out of logs and %v output.
func (d Directory) String() string {
	return fmt.Sprintf("Directory{BudgetID:%s AccessToken:[redacted] Accounts:%d Merchants:%d}",
		d.BudgetID, len(d.Accounts), len(d.Merchants))
}
