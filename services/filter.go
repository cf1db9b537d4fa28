package services

import (
	"strings"
	"time"
)

// DateFilterMode selects which date constraint, if any, is active.
// The modes are mutually exclusive; parameters of inactive modes are ignored.
type DateFilterMode string

const (
	DateFilterNone   DateFilterMode = ""
	DateFilterRange  DateFilterMode = "range"
	DateFilterMonths DateFilterMode = "months"
	DateFilterYears  DateFilterMode = "years"
)

// MonthYear is one selectable (month, year) bucket.
type MonthYear struct {
	Month time.Month
	Year  int
}

// DateFilter holds the parameters for all three date modes; Mode decides
// which set is consulted.
type DateFilter struct {
	Mode   DateFilterMode
	Start  time.Time
	End    time.Time
	Months []MonthYear
	Years  []int
}

// Filter returns the subset of records satisfying the logical AND of the
// configuration's search text, multi-select field filters, and active date
// mode. Input order is preserved and no record is ever fabricated.
func Filter(records []FinancialRecord, cfg ViewConfiguration) []FinancialRecord {
	search := strings.ToLower(strings.TrimSpace(cfg.Search))

	out := make([]FinancialRecord, 0, len(records))
	for _, r := range records {
		if !matchesSearch(r, search) {
			continue
		}
		if !selectedString(r.Unit, cfg.Units) {
			continue
		}
		if !selectedString(r.Type, cfg.Types) {
			continue
		}
		if !selectedCategory(r.Category, cfg.Categories) {
			continue
		}
		if !matchesDate(r.Date, cfg.Date) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// matchesSearch does a case-insensitive substring match over the record's
// text fields. An empty search matches everything.
func matchesSearch(r FinancialRecord, search string) bool {
	if search == "" {
		return true
	}
	for _, field := range []string{r.ID, r.Unit, r.Type, r.Item} {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}

// selectedString applies multi-select semantics: an empty selection is no
// constraint, otherwise the value must be one of the selected ones.
func selectedString(value string, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, s := range selected {
		if s == value {
			return true
		}
	}
	return false
}

func selectedCategory(value Category, selected []Category) bool {
	if len(selected) == 0 {
		return true
	}
	for _, s := range selected {
		if s == value {
			return true
		}
	}
	return false
}

func matchesDate(date time.Time, f DateFilter) bool {
	switch f.Mode {
	case DateFilterRange:
		start := startOfDay(f.Start)
		end := endOfDay(f.End)
		return !date.Before(start) && !date.After(end)
	case DateFilterMonths:
		for _, my := range f.Months {
			if date.Month() == my.Month && date.Year() == my.Year {
				return true
			}
		}
		return false
	case DateFilterYears:
		for _, y := range f.Years {
			if date.Year() == y {
				return true
			}
		}
		return false
	default:
		return true
	}
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// endOfDay is 23:59:59.999 of the same day, so a range filter includes the
// whole end day.
func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, 999000000, t.Location())
}
