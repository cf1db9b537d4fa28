package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"finledger/report"
	"finledger/services"
	"finledger/store"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "finledger",
		Short:         "Ledger views and quotation pricing over CSV snapshots",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(reportCmd(), quoteCmd())
	return root
}

func reportCmd() *cobra.Command {
	var (
		recordsFile string
		search      string
		units       []string
		types       []string
		categories  []string
		from, to    string
		months      []string
		years       []int
		sortKey     string
		sortDesc    bool
		groupBy     []string
		pageSize    int
		pageNumber  int
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Filter, sort, and group a record snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := services.ViewConfiguration{
				Search:     search,
				Units:      units,
				Types:      types,
				SortDesc:   sortDesc,
				PageSize:   pageSize,
				PageNumber: pageNumber,
			}

			for _, c := range categories {
				cat, err := services.ParseCategory(strings.ToUpper(c))
				if err != nil {
					return err
				}
				cfg.Categories = append(cfg.Categories, cat)
			}

			if sortKey != "" {
				key, err := services.ParseSortKey(sortKey)
				if err != nil {
					return err
				}
				cfg.SortKey = key
			}

			for _, g := range groupBy {
				field, err := services.ParseGroupField(g)
				if err != nil {
					return err
				}
				cfg.GroupBy = append(cfg.GroupBy, field)
			}

			date, err := buildDateFilter(from, to, months, years)
			if err != nil {
				return err
			}
			cfg.Date = date

			records, err := loadRecords(recordsFile)
			if err != nil {
				return err
			}

			return report.WriteView(cmd.OutOrStdout(), services.ComputeView(records, cfg))
		},
	}

	cmd.Flags().StringVar(&recordsFile, "records", "", "records CSV file (required)")
	cmd.Flags().StringVar(&search, "search", "", "case-insensitive substring search")
	cmd.Flags().StringSliceVar(&units, "unit", nil, "restrict to these units")
	cmd.Flags().StringSliceVar(&types, "type", nil, "restrict to these types")
	cmd.Flags().StringSliceVar(&categories, "category", nil, "restrict to REVENUE and/or EXPENSE")
	cmd.Flags().StringVar(&from, "from", "", "range start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "range end date, inclusive (YYYY-MM-DD)")
	cmd.Flags().StringSliceVar(&months, "month", nil, "month/year buckets, e.g. 1/2024")
	cmd.Flags().IntSliceVar(&years, "year", nil, "years")
	cmd.Flags().StringVar(&sortKey, "sort", "", "sort key: date, unit, category, type, item, amount, note")
	cmd.Flags().BoolVar(&sortDesc, "desc", false, "sort descending")
	cmd.Flags().StringSliceVar(&groupBy, "group-by", nil, "grouping levels: month, unit, category, type, item")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "page size (0 disables pagination)")
	cmd.Flags().IntVar(&pageNumber, "page", 1, "page number")
	cmd.MarkFlagRequired("records")

	return cmd
}

func quoteCmd() *cobra.Command {
	var (
		itemsFile       string
		generalDiscount float64
		vat             float64
		maintenanceFee  float64
		publicAppFee    float64
	)

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Price a quotation from a line-item snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(itemsFile)
			if err != nil {
				return err
			}
			defer f.Close()

			items, rowErrs, err := store.ParseLineItems(f)
			if err != nil {
				return err
			}
			warnRowErrors(cmd, rowErrs)

			totals, err := services.ComputeQuotation(items, services.PricingSettings{
				GeneralDiscountPercent: decimal.NewFromFloat(generalDiscount),
				VATPercent:             decimal.NewFromFloat(vat),
				MaintenanceFee:         decimal.NewFromFloat(maintenanceFee),
				PublicAppFee:           decimal.NewFromFloat(publicAppFee),
			})
			if err != nil {
				return err
			}

			return report.WriteQuotation(cmd.OutOrStdout(), items, totals)
		},
	}

	cmd.Flags().StringVar(&itemsFile, "items", "", "line items CSV file (required)")
	cmd.Flags().Float64Var(&generalDiscount, "general-discount", 0, "general discount percent [0,100]")
	cmd.Flags().Float64Var(&vat, "vat", 0, "VAT percent [0,100]")
	cmd.Flags().Float64Var(&maintenanceFee, "maintenance-fee", 0, "flat maintenance fee")
	cmd.Flags().Float64Var(&publicAppFee, "public-app-fee", 0, "flat public app fee")
	cmd.MarkFlagRequired("items")

	return cmd
}

// buildDateFilter picks the single active date mode from the CLI flags.
// Range beats months beats years; supplying none leaves the filter off.
func buildDateFilter(from, to string, months []string, years []int) (services.DateFilter, error) {
	switch {
	case from != "" || to != "":
		start, err := parseFlagDate(from)
		if err != nil {
			return services.DateFilter{}, err
		}
		end, err := parseFlagDate(to)
		if err != nil {
			return services.DateFilter{}, err
		}
		if end.IsZero() {
			end = time.Now()
		}
		return services.DateFilter{Mode: services.DateFilterRange, Start: start, End: end}, nil

	case len(months) > 0:
		filter := services.DateFilter{Mode: services.DateFilterMonths}
		for _, m := range months {
			my, err := parseMonthYear(m)
			if err != nil {
				return services.DateFilter{}, err
			}
			filter.Months = append(filter.Months, my)
		}
		return filter, nil

	case len(years) > 0:
		return services.DateFilter{Mode: services.DateFilterYears, Years: years}, nil

	default:
		return services.DateFilter{}, nil
	}
}

func parseFlagDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", s)
	}
	return t, nil
}

func parseMonthYear(s string) (services.MonthYear, error) {
	parts := strings.SplitN(s, "/", 2)
	if len(parts) != 2 {
		return services.MonthYear{}, fmt.Errorf("invalid month %q (want M/YYYY)", s)
	}
	month, err := strconv.Atoi(parts[0])
	if err != nil || month < 1 || month > 12 {
		return services.MonthYear{}, fmt.Errorf("invalid month %q (want M/YYYY)", s)
	}
	year, err := strconv.Atoi(parts[1])
	if err != nil {
		return services.MonthYear{}, fmt.Errorf("invalid month %q (want M/YYYY)", s)
	}
	return services.MonthYear{Month: time.Month(month), Year: year}, nil
}

func loadRecords(path string) ([]services.FinancialRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, rowErrs, err := store.ParseRecords(f)
	if err != nil {
		return nil, err
	}
	for _, re := range rowErrs {
		fmt.Fprintf(os.Stderr, "warning: %s\n", re.Error())
	}
	return records, nil
}

func warnRowErrors(cmd *cobra.Command, rowErrs []store.RowError) {
	for _, re := range rowErrs {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", re.Error())
	}
}
