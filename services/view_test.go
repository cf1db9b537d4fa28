package services

import "testing"

func TestComputeViewFilterSortPipeline(t *testing.T) {
	records := sampleRecords(t)

	res := ComputeView(records, ViewConfiguration{
		Categories: []Category{CategoryRevenue},
		SortKey:    SortByAmount,
		SortDesc:   true,
	})

	if !equalIDs(ids(res.Records), []string{"r1", "r3", "r5"}) {
		t.Errorf("Records = %v, want [r1 r3 r5]", ids(res.Records))
	}
	if res.TotalCount != 3 {
		t.Errorf("TotalCount = %d, want 3", res.TotalCount)
	}
	if res.Groups != nil || res.TotalPages != 0 {
		t.Error("neither grouping nor pagination should be active")
	}
}

func TestComputeViewGrouping(t *testing.T) {
	records := sampleRecords(t)

	res := ComputeView(records, ViewConfiguration{
		SortKey: SortByDate,
		GroupBy: []GroupField{GroupByMonth},
	})

	if len(res.Groups) != 3 {
		t.Fatalf("expected 3 month groups, got %d", len(res.Groups))
	}
	if res.Groups[0].Key != "1/2024" {
		t.Errorf("first group = %q, want 1/2024", res.Groups[0].Key)
	}
}

// Grouping and pagination are mutually exclusive; grouping wins when both
// are configured.
func TestComputeViewGroupingBeatsPagination(t *testing.T) {
	records := sampleRecords(t)

	res := ComputeView(records, ViewConfiguration{
		GroupBy:    []GroupField{GroupByUnit},
		PageSize:   2,
		PageNumber: 1,
	})

	if len(res.Groups) == 0 {
		t.Fatal("expected groups")
	}
	if res.Page != nil || res.TotalPages != 0 {
		t.Error("pagination must be ignored while grouping")
	}
}

func TestComputeViewPagination(t *testing.T) {
	records := sampleRecords(t)

	res := ComputeView(records, ViewConfiguration{
		SortKey:    SortByDate,
		PageSize:   2,
		PageNumber: 2,
	})

	if res.TotalPages != 3 {
		t.Errorf("TotalPages = %d, want 3", res.TotalPages)
	}
	if !equalIDs(ids(res.Page), []string{"r3", "r4"}) {
		t.Errorf("Page = %v, want [r3 r4]", ids(res.Page))
	}
	if res.TotalCount != 5 {
		t.Errorf("TotalCount = %d, want 5", res.TotalCount)
	}
}

func TestComputeViewReportsInvalidAmounts(t *testing.T) {
	records := []FinancialRecord{
		rec(t, "ok", "2024-01-01", "Central", CategoryRevenue, "Fees", "X", "100"),
		rec(t, "bad", "2024-01-02", "Central", CategoryRevenue, "Fees", "Y", "??"),
	}

	res := ComputeView(records, ViewConfiguration{})
	if len(res.InvalidAmountIDs) != 1 || res.InvalidAmountIDs[0] != "bad" {
		t.Errorf("InvalidAmountIDs = %v, want [bad]", res.InvalidAmountIDs)
	}
	if res.TotalCount != 2 {
		t.Errorf("invalid amounts must not drop records, TotalCount = %d", res.TotalCount)
	}
}

func TestComputeViewEmptyInput(t *testing.T) {
	res := ComputeView(nil, ViewConfiguration{
		Search:   "anything",
		SortKey:  SortByDate,
		PageSize: 10,
	})

	if res.TotalCount != 0 || len(res.Records) != 0 {
		t.Errorf("expected empty result, got %+v", res)
	}
	if res.TotalPages != 1 {
		t.Errorf("TotalPages = %d, want 1", res.TotalPages)
	}
}
