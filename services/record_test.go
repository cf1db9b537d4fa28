package services

import (
	"strings"
	"testing"
	"time"
)

func TestRecordValidate(t *testing.T) {
	valid := rec(t, "r1", "2024-01-05", "Central", CategoryRevenue, "Fees", "Service fee", "1,000,000")
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid record rejected: %v", err)
	}

	tests := []struct {
		name    string
		mutate  func(*FinancialRecord)
		message string
	}{
		{"missing date", func(r *FinancialRecord) { r.Date = time.Time{} }, "date is required"},
		{"missing unit", func(r *FinancialRecord) { r.Unit = "" }, "unit is required"},
		{"missing category", func(r *FinancialRecord) { r.Category = "" }, "category is required"},
		{"unknown category", func(r *FinancialRecord) { r.Category = "TRANSFER" }, "category must be REVENUE or EXPENSE"},
		{"missing type", func(r *FinancialRecord) { r.Type = "" }, "type is required"},
		{"missing item", func(r *FinancialRecord) { r.Item = "" }, "item is required"},
		{"missing amount", func(r *FinancialRecord) { r.Amount = "" }, "amount is required"},
		{"unparseable amount", func(r *FinancialRecord) { r.Amount = "1,2oo" }, "invalid amount"},
		{"negative amount", func(r *FinancialRecord) { r.Amount = "-500" }, "amount must not be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid
			tt.mutate(&r)
			err := r.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.message) {
				t.Errorf("error %q does not mention %q", err.Error(), tt.message)
			}
		})
	}
}

func TestParsedAmount(t *testing.T) {
	r := rec(t, "r1", "2024-01-05", "Central", CategoryRevenue, "Fees", "Service fee", "2,500")
	d, err := r.ParsedAmount()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	decEq(t, "ParsedAmount", d, 2500)

	r.Amount = "junk"
	d, err = r.ParsedAmount()
	if err == nil {
		t.Fatal("expected ErrInvalidAmount")
	}
	decEq(t, "ParsedAmount on error", d, 0)
}
