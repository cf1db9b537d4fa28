package services

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

// Category classifies a record as money in or money out.
type Category string

const (
	CategoryRevenue Category = "REVENUE"
	CategoryExpense Category = "EXPENSE"
)

// FinancialRecord is one dated revenue or expense entry. The amount is kept
// in its locale-formatted string form; all computation goes through
// ParseAmount. Records are read-only snapshots — the engine never mutates
// them.
type FinancialRecord struct {
	ID         string
	Date       time.Time
	Unit       string
	Category   Category
	Type       string
	Item       string
	Amount     string
	ActualNote string

	// Extra carries unrecognized pass-through columns from the record
	// store. The engine only ever reads the named fields above.
	Extra map[string]string
}

// ParsedAmount returns the numeric amount. Unparseable amounts come back as
// zero together with ErrInvalidAmount so aggregation can proceed while the
// condition is still reported.
func (r FinancialRecord) ParsedAmount() (decimal.Decimal, error) {
	return ParseAmount(r.Amount)
}

// Validate checks the creation-time requirements on a record: all named
// fields present, a known category, and a parseable non-negative amount.
// It returns a validation.Errors map of human-readable messages.
func (r FinancialRecord) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Date, validation.Required.Error("date is required")),
		validation.Field(&r.Unit, validation.Required.Error("unit is required")),
		validation.Field(&r.Category,
			validation.Required.Error("category is required"),
			validation.In(CategoryRevenue, CategoryExpense).Error("category must be REVENUE or EXPENSE")),
		validation.Field(&r.Type, validation.Required.Error("type is required")),
		validation.Field(&r.Item, validation.Required.Error("item is required")),
		validation.Field(&r.Amount,
			validation.Required.Error("amount is required"),
			validation.By(validAmount)),
	)
}

func validAmount(value any) error {
	s, _ := value.(string)
	d, err := ParseAmount(s)
	if err != nil {
		return ErrInvalidAmount
	}
	if d.IsNegative() {
		return validation.NewError("validation_negative_amount", "amount must not be negative")
	}
	return nil
}
