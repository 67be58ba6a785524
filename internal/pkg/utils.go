package pkg

import "strconv"

const PageSize = 10

// ParsePage reads a 1-based page number. Anything missing, malformed or below 1 means the first page.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// Paginate returns the page-th window of PageSize items. Pages past the end are empty, never nil.
func Paginate[T any](items []T, page int) []T {
	if page < 1 {
		page = 1
	}

	// compare before multiplying, huge pages would overflow the offset
	if page-1 > len(items)/PageSize {
		return []T{}
	}

	start := (page - 1) * PageSize
	if start >= len(items) {
		return []T{}
	}

	end := start + PageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
