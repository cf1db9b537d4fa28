// Package services implements the ledger view engine and the quotation
// pricing pipeline: pure computations over record and line-item snapshots.
package services

import (
	"errors"
	"regexp"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

// ErrInvalidAmount reports an amount string that could not be parsed.
// Callers aggregate such amounts as zero and surface the condition
// separately; parsing never aborts a computation.
var ErrInvalidAmount = errors.New("invalid amount")

var groupedAmountRe = regexp.MustCompile(`^-?\d{1,3}(\.\d{3})+$`)

// ParseAmount converts a locale-formatted amount (string or number) into a
// decimal value. Commas are always grouping separators; periods are treated
// as grouping separators when they appear in thousands positions
// (e.g. "1.000.000"), otherwise as the decimal point.
// Unparseable input yields (0, ErrInvalidAmount).
func ParseAmount(raw any) (decimal.Decimal, error) {
	s := strings.TrimSpace(cast.ToString(raw))
	if s == "" {
		return decimal.Zero, ErrInvalidAmount
	}

	s = strings.ReplaceAll(s, ",", "")
	if groupedAmountRe.MatchString(s) {
		s = strings.ReplaceAll(s, ".", "")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	return d, nil
}

// FormatAmount renders an amount as grouped currency text, e.g. "1,234,567.89".
// Display only: formatted strings must never be compared or re-parsed for
// computation.
func FormatAmount(d decimal.Decimal) string {
	f, _ := d.Float64()
	return humanize.CommafWithDigits(f, 2)
}
