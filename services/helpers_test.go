package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

// rec builds a record fixture; date is ISO "2006-01-02".
func rec(t *testing.T, id, date, unit string, category Category, typ, item, amount string) FinancialRecord {
	t.Helper()
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		t.Fatalf("bad fixture date %q: %v", date, err)
	}
	return FinancialRecord{
		ID:       id,
		Date:     d,
		Unit:     unit,
		Category: category,
		Type:     typ,
		Item:     item,
		Amount:   amount,
	}
}

func ids(records []FinancialRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func decEq(t *testing.T, name string, got decimal.Decimal, want int64) {
	t.Helper()
	if !got.Equal(decimal.NewFromInt(want)) {
		t.Errorf("%s = %s, want %d", name, got.String(), want)
	}
}
