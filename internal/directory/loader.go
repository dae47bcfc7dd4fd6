package directory

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Parse decodes the JSON secret payload and validates it.
func Parse(raw []byte) (*Directory, error) {
	var d Directory
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("parse directory: %w", err)
	}

	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// LoadFile reads a YAML directory file, used for local development in
// place of the secret store.
func LoadFile(path string) (*Directory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read directory file: %w", err)
	}

	var d Directory
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parse directory file %s: %w", path, err)
	}

	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// Validate reports every structural problem in the directory at once.
// Duplicate names are rejected because lookup would silently pick the first.
func (d *Directory) Validate() error {
	var errs []error

	if d.BudgetID == "" {
		errs = append(errs, errors.New("budget_id is required"))
	}
	if d.AccessToken == "" {
		errs = append(errs, errors.New("access_token is required"))
	}

	seenAccounts := make(map[string]bool, len(d.Accounts))
	for i, account := range d.Accounts {
		if account.Name == "" {
			errs = append(errs, fmt.Errorf("accounts[%d]: name is required", i))
		}
		if account.ID == "" {
			errs = append(errs, fmt.Errorf("accounts[%d]: id is required", i))
		}
		if seenAccounts[account.Name] {
			errs = append(errs, fmt.Errorf("accounts[%d]: duplicate name %q", i, account.Name))
		}
		seenAccounts[account.Name] = true
	}

	seenMerchants := make(map[string]bool, len(d.Merchants))
	for i, merchant := range d.Merchants {
		if merchant.Name == "" {
			errs = append(errs, fmt.Errorf("merchants[%d]: name is required", i))
		}
		if merchant.CategoryID == "" {
			errs = append(errs, fmt.Errorf("merchants[%d]: category_id is required", i))
		}
		if seenMerchants[merchant.Name] {
			errs = append(errs, fmt.Errorf("merchants[%d]: duplicate name %q", i, merchant.Name))
		}
		seenMerchants[merchant.Name] = true
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid directory: %w", errors.Join(errs...))
	}
	return nil
}
