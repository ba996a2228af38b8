package taskview

import "github.com/todocal/todocal/internal/model"

// Page is one slice of a filtered view.
type Page struct {
	Items      []model.Task
	Number     int // clamped page number, 1-based
	TotalPages int
	TotalItems int
}

// Paginate slices items into the requested page. Total pages is at least 1
// so an empty view still renders page 1 of 1. A page past the end snaps
// back to page 1, matching a full re-render after the view shrinks; pages
// below 1 clamp to 1.
func Paginate(items []model.Task, pageSize, page int) Page {
	if pageSize < 1 {
		pageSize = 1
	}
	total := (len(items) + pageSize - 1) / pageSize
	if total < 1 {
		total = 1
	}
	if page > total {
		page = 1
	}
	if page < 1 {
		page = 1
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(items) {
		start = len(items)
	}
	if end > len(items) {
		end = len(items)
	}

	return Page{
		Items:      items[start:end],
		Number:     page,
		TotalPages: total,
		TotalItems: len(items),
	}
}

// LastPage returns the number of the final page for a view of n items, for
// callers that jump to the end after an append or import.
func LastPage(n, pageSize int) int {
	if pageSize < 1 {
		pageSize = 1
	}
	total := (n + pageSize - 1) / pageSize
	if total < 1 {
		total = 1
	}
	return total
}

// ClampPage pulls page down to the last page of a view of n items, for
// callers that just removed entries and want to stay as close as possible
// to where they were.
func ClampPage(page, n, pageSize int) int {
	last := LastPage(n, pageSize)
	if page > last {
		return last
	}
	if page < 1 {
		return 1
	}
	return page
}
