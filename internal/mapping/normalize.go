package mapping

import (
	"errors"
	"fmt"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidAmount is returned when an amount is not a currency value.
	ErrInvalidAmount = errors.New("invalid amount format")
	// ErrInvalidDate is returned when a date is not a YYYY-MM-DD calendar date.
	ErrInvalidDate = errors.New("invalid date format")
)

// MilliunitsPerUnit is YNAB's fixed-point scale.
const MilliunitsPerUnit = 1000

var currencySymbols = []string{"$", "€", "£", "¥"}

var milliunitScale = decimal.NewFromInt(MilliunitsPerUnit)

// ParseAmount converts a currency string such as "$6.22" or "-3.5" into
// milliunits. Fractions of a milliunit are truncated toward zero.
func ParseAmount(raw string) (int64, error) {
	s := strings.TrimSpace(raw)

	negative := false
	if rest, ok := strings.CutPrefix(s, "-"); ok && hasCurrencySymbol(rest) {
		negative = true
		s = rest
	}

	s = strings.TrimSpace(trimCurrencySymbol(s))
	if s == "" || (negative && strings.ContainsAny(s[:1], "+-")) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}

	amount, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}
	if negative {
		amount = amount.Neg()
	}

	milliunits := amount.Mul(milliunitScale).Truncate(0)
	if !milliunits.BigInt().IsInt64() {
		return 0, fmt.Errorf("%w: %q out of range", ErrInvalidAmount, raw)
	}

	return milliunits.IntPart(), nil
}

// ParseDate keeps the calendar date of an ISO-8601 timestamp. Anything after
// the first "T" (time of day, offset) is discarded.
func ParseDate(raw string) (civil.Date, error) {
	datePart, _, _ := strings.Cut(raw, "T")

	date, err := civil.ParseDate(datePart)
	if err != nil {
		return civil.Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, raw)
	}

	return date, nil
}

func hasCurrencySymbol(s string) bool {
	for _, symbol := range currencySymbols {
		if strings.HasPrefix(s, symbol) {
			return true
		}
	}
	return false
}

// trimCurrencySymbol strips at most one leading symbol.
func trimCurrencySymbol(s string) string {
	for _, symbol := range currencySymbols {
		if rest, ok := strings.CutPrefix(s, symbol); ok {
			return rest
		}
	}
	return s
}
