package services

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// SortKey names a sortable record field.
type SortKey string

const (
	SortByDate     SortKey = "date"
	SortByUnit     SortKey = "unit"
	SortByCategory SortKey = "category"
	SortByType     SortKey = "type"
	SortByItem     SortKey = "item"
	SortByAmount   SortKey = "amount"
	SortByNote     SortKey = "note"
)

// Sort returns a copy of records ordered by the given key. Dates compare by
// calendar instant, amounts by parsed value (unparseable as zero), all other
// keys lexicographically with empty values first in ascending order. The
// sort is stable: ties keep their input order. Direction toggling is the
// caller's concern — Sort itself is pure.
func Sort(records []FinancialRecord, key SortKey, desc bool) []FinancialRecord {
	out := append([]FinancialRecord(nil), records...)
	sort.SliceStable(out, func(i, j int) bool {
		if desc {
			return lessByKey(out[j], out[i], key)
		}
		return lessByKey(out[i], out[j], key)
	})
	return out
}

func lessByKey(a, b FinancialRecord, key SortKey) bool {
	switch key {
	case SortByDate:
		return a.Date.Before(b.Date)
	case SortByAmount:
		return amountOrZero(a.Amount).LessThan(amountOrZero(b.Amount))
	case SortByUnit:
		return lessString(a.Unit, b.Unit)
	case SortByCategory:
		return lessString(string(a.Category), string(b.Category))
	case SortByType:
		return lessString(a.Type, b.Type)
	case SortByNote:
		return lessString(a.ActualNote, b.ActualNote)
	default:
		return lessString(a.Item, b.Item)
	}
}

func lessString(a, b string) bool {
	return strings.Compare(a, b) < 0
}

func amountOrZero(raw string) decimal.Decimal {
	d, err := ParseAmount(raw)
	if err != nil {
		return decimal.Zero
	}
	return d
}
