package services

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// GroupField names one grouping level.
type GroupField string

const (
	// GroupByMonth buckets records by (month, year) of their date,
	// displayed as "month/year".
	GroupByMonth    GroupField = "month"
	GroupByUnit     GroupField = "unit"
	GroupByCategory GroupField = "category"
	GroupByType     GroupField = "type"
	GroupByItem     GroupField = "item"
)

// PathSeparator joins the keys of a node's ancestor chain into its path.
// U+001F (unit separator) cannot occur in classification values, so paths
// never collide.
const PathSeparator = "\x1f"

// GroupNode is one partition of records sharing a key at a grouping level.
// Non-terminal nodes carry Children, terminal nodes carry Members; the
// union of Members across all terminal descendants is exactly the record
// set that produced the node.
type GroupNode struct {
	Key  string
	Path string

	RevenueTotal decimal.Decimal
	ExpenseTotal decimal.Decimal
	Profit       decimal.Decimal

	Children []GroupNode
	Members  []FinancialRecord
}

// Group recursively partitions records by the given levels. Partitions
// appear in first-seen-key order of the (already sorted) input; grouping
// never re-sorts the groups themselves. An empty level list yields a single
// root-equivalent node holding every record, so no data is dropped.
func Group(records []FinancialRecord, levels []GroupField) []GroupNode {
	return groupAt(records, levels, "")
}

func groupAt(records []FinancialRecord, levels []GroupField, parentPath string) []GroupNode {
	if len(levels) == 0 {
		node := GroupNode{Key: "", Path: parentPath, Members: records}
		node.RevenueTotal, node.ExpenseTotal = sumByCategory(records)
		node.Profit = node.RevenueTotal.Sub(node.ExpenseTotal)
		return []GroupNode{node}
	}

	var keys []string
	partitions := make(map[string][]FinancialRecord)
	for _, r := range records {
		key := groupKey(r, levels[0])
		if _, seen := partitions[key]; !seen {
			keys = append(keys, key)
		}
		partitions[key] = append(partitions[key], r)
	}

	nodes := make([]GroupNode, 0, len(keys))
	for _, key := range keys {
		members := partitions[key]
		node := GroupNode{Key: key, Path: joinPath(parentPath, key)}
		node.RevenueTotal, node.ExpenseTotal = sumByCategory(members)
		node.Profit = node.RevenueTotal.Sub(node.ExpenseTotal)

		if len(levels) > 1 {
			node.Children = groupAt(members, levels[1:], node.Path)
		} else {
			node.Members = members
		}
		nodes = append(nodes, node)
	}
	return nodes
}

func joinPath(parent, key string) string {
	if parent == "" {
		return key
	}
	return parent + PathSeparator + key
}

// groupKey extracts the partition key of a record at one level. The date
// level uses the (month, year) bucket rather than the raw date.
func groupKey(r FinancialRecord, field GroupField) string {
	switch field {
	case GroupByMonth:
		return fmt.Sprintf("%d/%d", int(r.Date.Month()), r.Date.Year())
	case GroupByUnit:
		return r.Unit
	case GroupByCategory:
		return string(r.Category)
	case GroupByType:
		return r.Type
	default:
		return r.Item
	}
}

// sumByCategory totals parsed amounts per category. Unparseable amounts
// count as zero; the invalid-amount condition is reported by ComputeView,
// not here.
func sumByCategory(records []FinancialRecord) (revenue, expense decimal.Decimal) {
	for _, r := range records {
		d, err := ParseAmount(r.Amount)
		if err != nil {
			continue
		}
		switch r.Category {
		case CategoryRevenue:
			revenue = revenue.Add(d)
		case CategoryExpense:
			expense = expense.Add(d)
		}
	}
	return revenue, expense
}
