// Package testhelpers provides shared record and line-item fixtures for
// store, report, and CLI tests.
package testhelpers

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"finledger/services"
)

// Date parses a fixture date in ISO form, failing the test on a typo.
func Date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("bad fixture date %q: %v", s, err)
	}
	return d
}

// Record builds a valid financial record fixture.
func Record(t *testing.T, id, date, unit string, category services.Category, typ, item, amount string) services.FinancialRecord {
	t.Helper()
	return services.FinancialRecord{
		ID:       id,
		Date:     Date(t, date),
		Unit:     unit,
		Category: category,
		Type:     typ,
		Item:     item,
		Amount:   amount,
	}
}

// SampleRecords returns a small mixed snapshot spanning two months, two
// units, and both categories.
func SampleRecords(t *testing.T) []services.FinancialRecord {
	t.Helper()
	return []services.FinancialRecord{
		Record(t, "r1", "2024-01-05", "Central", services.CategoryRevenue, "Fees", "Service fee", "1,000,000"),
		Record(t, "r2", "2024-01-20", "Central", services.CategoryExpense, "Supplies", "Paper", "35,000"),
		Record(t, "r3", "2024-02-03", "North", services.CategoryRevenue, "Fees", "Permit fee", "250,000"),
		Record(t, "r4", "2024-02-14", "North", services.CategoryExpense, "Travel", "Fuel", "12,500"),
	}
}

// LineItem builds a quotation line item fixture.
func LineItem(t *testing.T, name string, unitPrice int64, quantity int, discountPercent int64) services.QuotationLineItem {
	t.Helper()
	return services.QuotationLineItem{
		ID: name,
		Service: services.PricedService{
			Name:      name,
			UnitPrice: decimal.NewFromInt(unitPrice),
		},
		Quantity:        quantity,
		DiscountPercent: decimal.NewFromInt(discountPercent),
	}
}
