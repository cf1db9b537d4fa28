package services

// ViewConfiguration is an immutable bundle of every view parameter: search
// text, multi-select field filters, date filter, sort, grouping levels, and
// pagination. Every change produces a new configuration and a full
// recomputation; the engine keeps no state between calls.
type ViewConfiguration struct {
	Search     string
	Units      []string
	Types      []string
	Categories []Category
	Date       DateFilter

	SortKey  SortKey
	SortDesc bool

	GroupBy []GroupField

	PageSize   int
	PageNumber int
}

// ViewResult is the derived view of a record snapshot under one
// configuration. Records always holds the filtered/sorted list; Groups is
// set when grouping levels are configured, Page/TotalPages when paginating.
// InvalidAmountIDs lists records whose amount failed to parse and was
// aggregated as zero.
type ViewResult struct {
	Records    []FinancialRecord
	TotalCount int

	Groups []GroupNode

	Page       []FinancialRecord
	TotalPages int

	InvalidAmountIDs []string
}

// ComputeView applies a configuration to a record snapshot: filter, then
// sort, then either group or paginate. Grouping and pagination are mutually
// exclusive presentation modes over the same flat list; when both are
// configured, grouping wins and pagination is ignored.
func ComputeView(records []FinancialRecord, cfg ViewConfiguration) ViewResult {
	filtered := Filter(records, cfg)
	if cfg.SortKey != "" {
		filtered = Sort(filtered, cfg.SortKey, cfg.SortDesc)
	}

	result := ViewResult{
		Records:    filtered,
		TotalCount: len(filtered),
	}

	for _, r := range filtered {
		if _, err := ParseAmount(r.Amount); err != nil {
			result.InvalidAmountIDs = append(result.InvalidAmountIDs, r.ID)
		}
	}

	switch {
	case len(cfg.GroupBy) > 0:
		result.Groups = Group(filtered, cfg.GroupBy)
	case cfg.PageSize > 0:
		result.Page, result.TotalPages = Paginate(filtered, cfg.PageSize, cfg.PageNumber)
	}
	return result
}
