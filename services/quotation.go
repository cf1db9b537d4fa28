package services

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

// PricedService is the priced catalog entry a line item refers to. The
// descriptive fields are opaque to the pipeline; only UnitPrice matters.
type PricedService struct {
	Name        string
	Description string
	UnitPrice   decimal.Decimal
}

// QuotationLineItem is one quantified, optionally discounted service entry
// within a quotation. The pipeline derives its totals but never owns or
// persists the item.
type QuotationLineItem struct {
	ID              string
	Service         PricedService
	Quantity        int
	DiscountPercent decimal.Decimal
	Note            string
}

// Validate enforces the line-item constraints: quantity at least 1, a
// non-negative unit price, and a discount percent within [0,100].
func (li QuotationLineItem) Validate() error {
	return validation.ValidateStruct(&li,
		// Required comes first: ozzo threshold rules skip zero values.
		validation.Field(&li.Quantity,
			validation.Required.Error("quantity must be at least 1"),
			validation.Min(1).Error("quantity must be at least 1")),
		validation.Field(&li.Service, validation.By(func(any) error {
			if li.Service.UnitPrice.IsNegative() {
				return validation.NewError("validation_negative_price", "unit price must not be negative")
			}
			return nil
		})),
		validation.Field(&li.DiscountPercent, validation.By(percentRange)),
	)
}

// PricingSettings are the quotation-level inputs of the aggregate cascade.
type PricingSettings struct {
	GeneralDiscountPercent decimal.Decimal
	VATPercent             decimal.Decimal
	MaintenanceFee         decimal.Decimal
	PublicAppFee           decimal.Decimal
}

// Validate rejects percent settings outside [0,100] and negative fees.
// Out-of-range values are rejected, not clamped, so that every entry path
// enforces the same policy.
func (s PricingSettings) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.GeneralDiscountPercent, validation.By(percentRange)),
		validation.Field(&s.VATPercent, validation.By(percentRange)),
		validation.Field(&s.MaintenanceFee, validation.By(nonNegative)),
		validation.Field(&s.PublicAppFee, validation.By(nonNegative)),
	)
}

func percentRange(value any) error {
	d, ok := value.(decimal.Decimal)
	if !ok {
		return validation.NewError("validation_percent", "must be a number")
	}
	if d.IsNegative() || d.GreaterThan(decimal.NewFromInt(100)) {
		return validation.NewError("validation_percent_range", "must be between 0 and 100")
	}
	return nil
}

func nonNegative(value any) error {
	d, ok := value.(decimal.Decimal)
	if !ok {
		return validation.NewError("validation_amount", "must be a number")
	}
	if d.IsNegative() {
		return validation.NewError("validation_negative_amount", "must not be negative")
	}
	return nil
}

// LineItemTotals holds the derived per-item amounts.
type LineItemTotals struct {
	ItemID         string
	Subtotal       decimal.Decimal // UnitPrice * Quantity
	DiscountAmount decimal.Decimal // Subtotal * DiscountPercent / 100, rounded
	AfterDiscount  decimal.Decimal // Subtotal - DiscountAmount
}

// QuotationTotals is the immutable snapshot of the full pricing cascade.
type QuotationTotals struct {
	Items []LineItemTotals

	TotalSubtotal     decimal.Decimal
	TotalItemDiscount decimal.Decimal
	AfterItemDiscount decimal.Decimal

	GeneralDiscountAmount decimal.Decimal
	AfterGeneralDiscount  decimal.Decimal

	VATAmount decimal.Decimal
	AfterVAT  decimal.Decimal

	MaintenanceFee decimal.Decimal
	PublicAppFee   decimal.Decimal
	GrandTotal     decimal.Decimal
}

// ComputeQuotation evaluates the whole pricing graph in its fixed order:
// per-item subtotal and discount, then the item-discount sum, general
// discount, VAT, and flat fees. Discount and VAT amounts round half-up to
// the whole currency unit. Any input change requires recomputing the entire
// snapshot; there is no partial update.
func ComputeQuotation(items []QuotationLineItem, settings PricingSettings) (QuotationTotals, error) {
	if err := settings.Validate(); err != nil {
		return QuotationTotals{}, fmt.Errorf("pricing settings: %w", err)
	}

	totals := QuotationTotals{
		Items:          make([]LineItemTotals, 0, len(items)),
		MaintenanceFee: settings.MaintenanceFee,
		PublicAppFee:   settings.PublicAppFee,
	}

	for i, li := range items {
		if err := li.Validate(); err != nil {
			return QuotationTotals{}, fmt.Errorf("line item %d (%s): %w", i+1, li.ID, err)
		}

		subtotal := li.Service.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
		discount := roundHalfUp(percentOf(subtotal, li.DiscountPercent))
		totals.Items = append(totals.Items, LineItemTotals{
			ItemID:         li.ID,
			Subtotal:       subtotal,
			DiscountAmount: discount,
			AfterDiscount:  subtotal.Sub(discount),
		})

		totals.TotalSubtotal = totals.TotalSubtotal.Add(subtotal)
		totals.TotalItemDiscount = totals.TotalItemDiscount.Add(discount)
	}

	totals.AfterItemDiscount = totals.TotalSubtotal.Sub(totals.TotalItemDiscount)

	totals.GeneralDiscountAmount = roundHalfUp(percentOf(totals.AfterItemDiscount, settings.GeneralDiscountPercent))
	totals.AfterGeneralDiscount = totals.AfterItemDiscount.Sub(totals.GeneralDiscountAmount)

	totals.VATAmount = roundHalfUp(percentOf(totals.AfterGeneralDiscount, settings.VATPercent))
	totals.AfterVAT = totals.AfterGeneralDiscount.Add(totals.VATAmount)

	// Flat fees are added as-is, without rounding.
	totals.GrandTotal = totals.AfterVAT.Add(settings.MaintenanceFee).Add(settings.PublicAppFee)

	return totals, nil
}

func percentOf(amount, percent decimal.Decimal) decimal.Decimal {
	return amount.Mul(percent).Div(decimal.NewFromInt(100))
}

// roundHalfUp rounds to the nearest whole currency unit. Every value in the
// cascade is non-negative once validated, so rounding half away from zero
// is exactly round-half-up here.
func roundHalfUp(d decimal.Decimal) decimal.Decimal {
	return d.Round(0)
}
