// Package store is the record-store collaborator: it parses financial
// records and quotation line items from CSV snapshots and validates them
// before they are handed to the computational core. The core itself never
// performs I/O.
package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"finledger/services"
)

// RowError is a single field-level problem on one data row. Row numbers are
// 1-based and count the header row.
type RowError struct {
	Row     int
	Field   string
	Message string
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d, field %s: %s", e.Row, e.Field, e.Message)
}

// recordColumns maps recognized record headers to canonical field names.
// Unrecognized columns pass through into FinancialRecord.Extra.
var recordColumns = map[string]string{
	"id":          "id",
	"date":        "date",
	"unit":        "unit",
	"category":    "category",
	"type":        "type",
	"item":        "item",
	"amount":      "amount",
	"note":        "note",
	"actual_note": "note",
}

// dateFormats are tried in order when parsing record dates.
var dateFormats = []string{
	"2006-01-02",
	"2/1/2006",
	"02/01/2006",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// ParseRecords reads a record snapshot from CSV. Rows failing creation-time
// validation (missing required fields, unknown category, unparseable or
// negative amount) are skipped and reported as RowErrors; valid rows get a
// generated ID when the file does not carry one. A header-only file is a
// valid empty snapshot.
func ParseRecords(r io.Reader) ([]services.FinancialRecord, []RowError, error) {
	headers, rows, err := readCSV(r)
	if err != nil {
		return nil, nil, err
	}

	fields := make([]string, len(headers))
	for i, h := range headers {
		fields[i] = recordColumns[normalizeHeader(h)]
	}

	var records []services.FinancialRecord
	var rowErrs []RowError

	for i, row := range rows {
		rowNum := i + 2
		rec := services.FinancialRecord{}
		bad := false

		for col, value := range row {
			if col >= len(fields) {
				break
			}
			value = strings.TrimSpace(value)
			switch fields[col] {
			case "id":
				rec.ID = value
			case "date":
				d, err := parseDate(value)
				if err != nil {
					rowErrs = append(rowErrs, RowError{rowNum, "date", err.Error()})
					bad = true
					continue
				}
				rec.Date = d
			case "category":
				c, err := services.ParseCategory(strings.ToUpper(value))
				if err != nil {
					rowErrs = append(rowErrs, RowError{rowNum, "category", err.Error()})
					bad = true
					continue
				}
				rec.Category = c
			case "unit":
				rec.Unit = value
			case "type":
				rec.Type = value
			case "item":
				rec.Item = value
			case "amount":
				rec.Amount = value
			case "note":
				rec.ActualNote = value
			default:
				if rec.Extra == nil {
					rec.Extra = make(map[string]string)
				}
				rec.Extra[normalizeHeader(headers[col])] = value
			}
		}

		if bad {
			continue
		}
		if err := rec.Validate(); err != nil {
			rowErrs = append(rowErrs, validationRowErrors(rowNum, err)...)
			continue
		}
		if rec.ID == "" {
			rec.ID = uuid.NewString()
		}
		records = append(records, rec)
	}
	return records, rowErrs, nil
}

// ParseLineItems reads quotation line items from CSV. Expected columns:
// service, description, unit_price, quantity, discount_percent, note.
func ParseLineItems(r io.Reader) ([]services.QuotationLineItem, []RowError, error) {
	headers, rows, err := readCSV(r)
	if err != nil {
		return nil, nil, err
	}

	col := make(map[string]int)
	for i, h := range headers {
		col[normalizeHeader(h)] = i
	}

	var items []services.QuotationLineItem
	var rowErrs []RowError

	for i, row := range rows {
		rowNum := i + 2
		cell := func(name string) string {
			idx, ok := col[name]
			if !ok || idx >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[idx])
		}

		unitPrice, err := services.ParseAmount(cell("unit_price"))
		if err != nil {
			rowErrs = append(rowErrs, RowError{rowNum, "unit_price", "unparseable unit price"})
			continue
		}

		quantity, err := strconv.Atoi(strings.ReplaceAll(cell("quantity"), ",", ""))
		if err != nil {
			rowErrs = append(rowErrs, RowError{rowNum, "quantity", "unparseable quantity"})
			continue
		}

		discount := decimal.Zero
		if raw := cell("discount_percent"); raw != "" {
			discount, err = decimal.NewFromString(raw)
			if err != nil {
				rowErrs = append(rowErrs, RowError{rowNum, "discount_percent", "unparseable discount percent"})
				continue
			}
		}

		item := services.QuotationLineItem{
			ID: uuid.NewString(),
			Service: services.PricedService{
				Name:        cell("service"),
				Description: cell("description"),
				UnitPrice:   unitPrice,
			},
			Quantity:        quantity,
			DiscountPercent: discount,
			Note:            cell("note"),
		}

		if err := item.Validate(); err != nil {
			rowErrs = append(rowErrs, validationRowErrors(rowNum, err)...)
			continue
		}
		items = append(items, item)
	}
	return items, rowErrs, nil
}

func readCSV(r io.Reader) ([]string, [][]string, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true

	allRows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(allRows) == 0 {
		return nil, nil, fmt.Errorf("file must contain a header row")
	}
	return allRows[0], allRows[1:], nil
}

func normalizeHeader(h string) string {
	return strings.ToLower(strings.TrimSpace(h))
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("date is required")
	}
	for _, format := range dateFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// validationRowErrors flattens a validation.Errors map into per-field
// RowErrors in a stable field order.
func validationRowErrors(rowNum int, err error) []RowError {
	verrs, ok := err.(validation.Errors)
	if !ok {
		return []RowError{{Row: rowNum, Field: "", Message: err.Error()}}
	}

	fields := make([]string, 0, len(verrs))
	for f := range verrs {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	out := make([]RowError, 0, len(fields))
	for _, f := range fields {
		out = append(out, RowError{Row: rowNum, Field: f, Message: verrs[f].Error()})
	}
	return out
}
