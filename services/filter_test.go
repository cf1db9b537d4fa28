package services

import (
	"testing"
	"time"
)

func sampleRecords(t *testing.T) []FinancialRecord {
	t.Helper()
	return []FinancialRecord{
		rec(t, "r1", "2024-01-05", "Central", CategoryRevenue, "Fees", "Service fee", "1,000,000"),
		rec(t, "r2", "2024-01-20", "Central", CategoryExpense, "Supplies", "Paper", "35,000"),
		rec(t, "r3", "2024-02-03", "North", CategoryRevenue, "Fees", "Permit fee", "250,000"),
		rec(t, "r4", "2024-02-14", "North", CategoryExpense, "Travel", "Fuel", "12,500"),
		rec(t, "r5", "2025-03-01", "South", CategoryRevenue, "Rent", "Market stall", "80,000"),
	}
}

func TestFilterSearch(t *testing.T) {
	records := sampleRecords(t)

	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{"empty matches all", "", []string{"r1", "r2", "r3", "r4", "r5"}},
		{"item substring", "fee", []string{"r1", "r3"}},
		{"case insensitive unit", "NORTH", []string{"r3", "r4"}},
		{"type match", "travel", []string{"r4"}},
		{"id match", "r5", []string{"r5"}},
		{"no match", "zzz", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(records, ViewConfiguration{Search: tt.search})
			if !equalIDs(ids(got), tt.want) {
				t.Errorf("Filter(search=%q) = %v, want %v", tt.search, ids(got), tt.want)
			}
		})
	}
}

func TestFilterMultiSelect(t *testing.T) {
	records := sampleRecords(t)

	tests := []struct {
		name string
		cfg  ViewConfiguration
		want []string
	}{
		{"single unit", ViewConfiguration{Units: []string{"Central"}}, []string{"r1", "r2"}},
		{"two units OR", ViewConfiguration{Units: []string{"Central", "South"}}, []string{"r1", "r2", "r5"}},
		{"category", ViewConfiguration{Categories: []Category{CategoryRevenue}}, []string{"r1", "r3", "r5"}},
		{"type", ViewConfiguration{Types: []string{"Fees"}}, []string{"r1", "r3"}},
		{
			"fields AND together",
			ViewConfiguration{Units: []string{"North"}, Categories: []Category{CategoryExpense}},
			[]string{"r4"},
		},
		{
			"empty selections unconstrained",
			ViewConfiguration{Units: nil, Types: nil, Categories: nil},
			[]string{"r1", "r2", "r3", "r4", "r5"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(records, tt.cfg)
			if !equalIDs(ids(got), tt.want) {
				t.Errorf("Filter = %v, want %v", ids(got), tt.want)
			}
		})
	}
}

func TestFilterDateModes(t *testing.T) {
	records := sampleRecords(t)

	tests := []struct {
		name string
		date DateFilter
		want []string
	}{
		{
			"range inclusive",
			DateFilter{Mode: DateFilterRange, Start: mustDate(t, "2024-01-05"), End: mustDate(t, "2024-02-03")},
			[]string{"r1", "r2", "r3"},
		},
		{
			"month set",
			DateFilter{Mode: DateFilterMonths, Months: []MonthYear{{time.January, 2024}, {time.March, 2025}}},
			[]string{"r1", "r2", "r5"},
		},
		{
			"year set",
			DateFilter{Mode: DateFilterYears, Years: []int{2025}},
			[]string{"r5"},
		},
		{
			"inactive mode ignores params",
			DateFilter{Mode: DateFilterNone, Years: []int{1999}},
			[]string{"r1", "r2", "r3", "r4", "r5"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(records, ViewConfiguration{Date: tt.date})
			if !equalIDs(ids(got), tt.want) {
				t.Errorf("Filter(date) = %v, want %v", ids(got), tt.want)
			}
		})
	}
}

// A record timestamped at the very end of the range's last day is still
// inside the range.
func TestFilterRangeEndOfDay(t *testing.T) {
	late := FinancialRecord{
		ID:       "late",
		Date:     time.Date(2024, 6, 30, 23, 59, 59, 999000000, time.UTC),
		Unit:     "Central",
		Category: CategoryExpense,
		Type:     "Supplies",
		Item:     "Ink",
		Amount:   "500",
	}

	got := Filter([]FinancialRecord{late}, ViewConfiguration{
		Date: DateFilter{
			Mode:  DateFilterRange,
			Start: mustDate(t, "2024-06-01"),
			End:   mustDate(t, "2024-06-30"),
		},
	})
	if len(got) != 1 {
		t.Fatalf("expected end-of-day record to be included, got %d records", len(got))
	}
}

// Filtering only ever selects from the input set and preserves its order.
func TestFilterSubsetProperty(t *testing.T) {
	records := sampleRecords(t)
	configs := []ViewConfiguration{
		{},
		{Search: "fee"},
		{Units: []string{"North"}},
		{Categories: []Category{CategoryExpense}, Types: []string{"Travel"}},
		{Date: DateFilter{Mode: DateFilterYears, Years: []int{2024}}},
	}

	index := make(map[string]int, len(records))
	for i, r := range records {
		index[r.ID] = i
	}

	for _, cfg := range configs {
		got := Filter(records, cfg)
		last := -1
		for _, r := range got {
			pos, ok := index[r.ID]
			if !ok {
				t.Fatalf("filter fabricated record %q", r.ID)
			}
			if pos <= last {
				t.Fatalf("filter reordered records: %v", ids(got))
			}
			last = pos
		}
	}
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("bad date %q: %v", s, err)
	}
	return d
}
