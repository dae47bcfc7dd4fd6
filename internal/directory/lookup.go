package directory

import "fmt"

// ResolveAccountID returns the id of the first account whose name equals
// cardName exactly.
func (d *Directory) ResolveAccountID(cardName string) (string, error) {
	for _, account := range d.Accounts {
		if account.Name == cardName {
			return account.ID, nil
		}
	}

	return "", fmt.Errorf("%w for card: %s", ErrAccountNotFound, cardName)
}

// ResolveCategoryID returns the category of the first merchant whose name
// equals merchantName exactly. An unknown merchant reports false.
func (d *Directory) ResolveCategoryID(merchantName string) (string, bool) {
	for _, merchant := range d.Merchants {
		if merchant.Name == merchantName {
			return merchant.CategoryID, true
		}
	}

	return "", false
}
