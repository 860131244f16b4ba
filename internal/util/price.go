// Package util contains small shared helpers with no domain knowledge.
package util

import (
	"strconv"
	"strings"

	domainerrors "luxe/internal/domain/errors"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Prices are whole XAF amounts; the currency has no minor unit.
const currencySuffix = " XAF"

var frPrinter = message.NewPrinter(language.French)

// FormatXAF renders an amount the way the storefront displays prices:
// French digit grouping followed by the currency code, e.g. "60 000 XAF".
func FormatXAF(amount int64) string {
	return frPrinter.Sprintf("%d", amount) + currencySuffix
}

// ParseXAF reverses FormatXAF. It tolerates the regular, no-break and
// narrow no-break spaces that French formatting uses for grouping.
func ParseXAF(formatted string) (int64, error) {
	trimmed := strings.TrimSuffix(strings.TrimSpace(formatted), strings.TrimSpace(currencySuffix))
	digits := strings.Map(func(r rune) rune {
		switch r {
		case ' ', ' ', ' ':
			return -1
		default:
			return r
		}
	}, trimmed)

	amount, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, domainerrors.ErrValidationFailed.WrapMessage("invalid price: " + formatted)
	}

	return amount, nil
}
