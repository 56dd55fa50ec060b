package domain

// Ellipsis is the sentinel emitted by PageNumbers between non-adjacent pages.
const Ellipsis = -1

// Pagination tracks which page of results is being viewed and how many pages
// exist for the active filter. Current is always clamped to [1, max(Total,1)].
type Pagination struct {
	Current int `json:"current"`
	Total   int `json:"total"`
	PerPage int `json:"per_page"`
}

// NewPagination returns pagination positioned at page 1 with no known total.
func NewPagination(perPage int) Pagination {
	return Pagination{Current: 1, Total: 0, PerPage: perPage}
}

// Clamp returns n forced into [1, max(total,1)].
func Clamp(n, total int) int {
	if total < 1 {
		total = 1
	}
	if n < 1 {
		return 1
	}
	if n > total {
		return total
	}
	return n
}

// SetCurrent moves to page n, clamped against the known total.
func (p *Pagination) SetCurrent(n int) {
	p.Current = Clamp(n, p.Total)
}

// SetTotal overwrites the total page count wholesale and re-clamps the
// current page against it.
func (p *Pagination) SetTotal(total int) {
	if total < 0 {
		total = 0
	}
	p.Total = total
	p.Current = Clamp(p.Current, total)
}

// Reset moves back to page 1, keeping the known total.
func (p *Pagination) Reset() {
	p.Current = 1
}

// HasPrevious reports whether backward navigation is possible.
func (p Pagination) HasPrevious() bool {
	return p.Current > 1
}

// HasNext reports whether forward navigation is possible.
func (p Pagination) HasNext() bool {
	return p.Current < p.Total
}

// PageNumbers produces the compact page strip for a pager control, e.g.
// "1 … 4 5 6 … 20". Ellipsis marks elided ranges. Rules:
//
//   - page 1 and the last page are always present
//   - an ellipsis follows page 1 iff current > 3
//   - the sliding window is [max(2,current-1), min(total-1,current+1)]
//   - an ellipsis precedes the last page iff current < total-2
//
// total <= 1 yields just [1].
func PageNumbers(current, total int) []int {
	if total <= 1 {
		return []int{1}
	}

	current = Clamp(current, total)

	numbers := []int{1}

	if current > 3 {
		numbers = append(numbers, Ellipsis)
	}

	lo := current - 1
	if lo < 2 {
		lo = 2
	}
	hi := current + 1
	if hi > total-1 {
		hi = total - 1
	}
	for n := lo; n <= hi; n++ {
		numbers = append(numbers, n)
	}

	if current < total-2 {
		numbers = append(numbers, Ellipsis)
	}

	return append(numbers, total)
}
