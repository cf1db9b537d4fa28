package services

// Paginate slices the flat filtered/sorted list into fixed-size pages and
// returns the requested page plus the total page count. totalPages is at
// least 1; an out-of-range pageNumber is clamped into [1, totalPages]
// rather than rejected.
func Paginate(records []FinancialRecord, pageSize, pageNumber int) ([]FinancialRecord, int) {
	if pageSize < 1 {
		pageSize = 1
	}

	totalPages := (len(records) + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	if pageNumber < 1 {
		pageNumber = 1
	}
	if pageNumber > totalPages {
		pageNumber = totalPages
	}

	start := (pageNumber - 1) * pageSize
	end := start + pageSize
	if start > len(records) {
		start = len(records)
	}
	if end > len(records) {
		end = len(records)
	}
	return records[start:end], totalPages
}
