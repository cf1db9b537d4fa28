package services

import "fmt"

// SortKeyOptions lists the sortable record fields, in menu order.
var SortKeyOptions = []SortKey{
	SortByDate,
	SortByUnit,
	SortByCategory,
	SortByType,
	SortByItem,
	SortByAmount,
	SortByNote,
}

// GroupFieldOptions lists the available grouping levels, in menu order.
var GroupFieldOptions = []GroupField{
	GroupByMonth,
	GroupByUnit,
	GroupByCategory,
	GroupByType,
	GroupByItem,
}

// CategoryOptions lists the record categories.
var CategoryOptions = []Category{CategoryRevenue, CategoryExpense}

// ParseSortKey resolves a user-supplied sort key name.
func ParseSortKey(s string) (SortKey, error) {
	for _, k := range SortKeyOptions {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown sort key %q", s)
}

// ParseGroupField resolves a user-supplied grouping level name.
func ParseGroupField(s string) (GroupField, error) {
	for _, f := range GroupFieldOptions {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown group field %q", s)
}

// ParseCategory resolves a user-supplied category name.
func ParseCategory(s string) (Category, error) {
	for _, c := range CategoryOptions {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q (must be REVENUE or EXPENSE)", s)
}
