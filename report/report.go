// Package report renders view results and quotation totals as plain text
// for terminals. It is a presentation collaborator: all numbers arrive
// already computed by the services package.
package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"

	"finledger/services"
)

var (
	header   = color.New(color.Bold).SprintFunc()
	negative = color.New(color.FgRed).SprintFunc()
)

// Row is one flattened line of a group tree: a hierarchical index
// ("1", "1.1", "1.1.2"), the node key, and its aggregates.
type Row struct {
	Level   int
	Index   string
	Key     string
	Revenue decimal.Decimal
	Expense decimal.Decimal
	Profit  decimal.Decimal
}

// FlattenGroups walks a group tree depth-first and produces one Row per
// node, in the tree's own order.
func FlattenGroups(groups []services.GroupNode) []Row {
	var rows []Row
	flattenInto(&rows, groups, 0, "")
	return rows
}

func flattenInto(rows *[]Row, groups []services.GroupNode, level int, parentIndex string) {
	for i, g := range groups {
		index := fmt.Sprintf("%d", i+1)
		if parentIndex != "" {
			index = parentIndex + "." + index
		}
		*rows = append(*rows, Row{
			Level:   level,
			Index:   index,
			Key:     g.Key,
			Revenue: g.RevenueTotal,
			Expense: g.ExpenseTotal,
			Profit:  g.Profit,
		})
		flattenInto(rows, g.Children, level+1, index)
	}
}

// WriteView renders a view result: a grouped aggregate table when grouping
// is active, otherwise a flat record table (the current page when
// paginating). Invalid-amount records are called out at the end.
func WriteView(w io.Writer, res services.ViewResult) error {
	switch {
	case len(res.Groups) > 0:
		writeGroupTable(w, res.Groups)
	case res.TotalPages > 0:
		writeRecordTable(w, res.Page)
		fmt.Fprintf(w, "\n%d records, %d pages\n", res.TotalCount, res.TotalPages)
	default:
		writeRecordTable(w, res.Records)
		fmt.Fprintf(w, "\n%d records\n", res.TotalCount)
	}

	if len(res.InvalidAmountIDs) > 0 {
		fmt.Fprintf(w, "%s %d record(s) with unparseable amounts counted as zero: %s\n",
			negative("warning:"), len(res.InvalidAmountIDs), strings.Join(res.InvalidAmountIDs, ", "))
	}
	return nil
}

func writeGroupTable(w io.Writer, groups []services.GroupNode) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", header("Group"), header("Revenue"), header("Expense"), header("Profit"))
	for _, row := range FlattenGroups(groups) {
		indent := strings.Repeat("  ", row.Level)
		fmt.Fprintf(tw, "%s%s %s\t%s\t%s\t%s\n",
			indent, row.Index, row.Key,
			services.FormatAmount(row.Revenue),
			services.FormatAmount(row.Expense),
			money(row.Profit))
	}
	tw.Flush()
}

func writeRecordTable(w io.Writer, records []services.FinancialRecord) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
		header("Date"), header("Unit"), header("Category"), header("Type"), header("Item"), header("Amount"))
	for _, r := range records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			r.Date.Format("02/01/2006"), r.Unit, r.Category, r.Type, r.Item, r.Amount)
	}
	tw.Flush()
}

// WriteQuotation renders the per-item table followed by the aggregate
// cascade in its evaluation order.
func WriteQuotation(w io.Writer, items []services.QuotationLineItem, totals services.QuotationTotals) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
		header("Service"), header("Qty"), header("Unit price"), header("Subtotal"), header("Discount"), header("After discount"))
	for i, it := range totals.Items {
		name := it.ItemID
		if i < len(items) {
			name = items[i].Service.Name
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\t%s\n",
			name,
			quantityAt(items, i),
			services.FormatAmount(subtotalUnitPrice(items, i)),
			services.FormatAmount(it.Subtotal),
			services.FormatAmount(it.DiscountAmount),
			services.FormatAmount(it.AfterDiscount))
	}
	tw.Flush()

	fmt.Fprintln(w)
	cascade := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(cascade, "Subtotal\t%s\n", services.FormatAmount(totals.TotalSubtotal))
	fmt.Fprintf(cascade, "Item discounts\t-%s\n", services.FormatAmount(totals.TotalItemDiscount))
	fmt.Fprintf(cascade, "After item discounts\t%s\n", services.FormatAmount(totals.AfterItemDiscount))
	fmt.Fprintf(cascade, "General discount\t-%s\n", services.FormatAmount(totals.GeneralDiscountAmount))
	fmt.Fprintf(cascade, "After general discount\t%s\n", services.FormatAmount(totals.AfterGeneralDiscount))
	fmt.Fprintf(cascade, "VAT\t+%s\n", services.FormatAmount(totals.VATAmount))
	fmt.Fprintf(cascade, "After VAT\t%s\n", services.FormatAmount(totals.AfterVAT))
	fmt.Fprintf(cascade, "Maintenance fee\t+%s\n", services.FormatAmount(totals.MaintenanceFee))
	fmt.Fprintf(cascade, "Public app fee\t+%s\n", services.FormatAmount(totals.PublicAppFee))
	fmt.Fprintf(cascade, "%s\t%s\n", header("Grand total"), header(services.FormatAmount(totals.GrandTotal)))
	cascade.Flush()
	return nil
}

func quantityAt(items []services.QuotationLineItem, i int) int {
	if i < len(items) {
		return items[i].Quantity
	}
	return 0
}

func subtotalUnitPrice(items []services.QuotationLineItem, i int) decimal.Decimal {
	if i < len(items) {
		return items[i].Service.UnitPrice
	}
	return decimal.Zero
}

func money(d decimal.Decimal) string {
	s := services.FormatAmount(d)
	if d.IsNegative() {
		return negative(s)
	}
	return s
}
