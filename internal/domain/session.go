package domain

import "sync"

// SearchSession is the filter state container for one browsing view. It owns
// the active FilterSet, the per-page result cache and the pagination state;
// every other component reads them or requests mutation through its methods.
//
// Overlapping fetches are ordered with sequence numbers: each dispatch takes
// the next number, and a response is applied only if its number is the
// highest seen since the last invalidation. A stale response is discarded
// silently so "latest filter wins".
type SearchSession struct {
	mu         sync.Mutex
	id         string
	filter     FilterSet
	pages      map[int][]PerfumeSummary
	pagination Pagination

	seq     uint64         // last dispatched fetch sequence
	barrier uint64         // fetches at or below this are stale
	applied map[int]uint64 // page -> highest applied sequence

	loading   bool
	lastError string
}

// NewSearchSession creates an empty session with default filters.
func NewSearchSession(id string, perPage int) *SearchSession {
	return &SearchSession{
		id:         id,
		filter:     FilterSet{},
		pages:      make(map[int][]PerfumeSummary),
		pagination: NewPagination(perPage),
		applied:    make(map[int]uint64),
	}
}

// ID returns the session identifier.
func (s *SearchSession) ID() string {
	return s.id
}

// Filter returns a snapshot of the active filter set.
func (s *SearchSession) Filter() FilterSet {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter.Clone()
}

// Pagination returns the current pagination state.
func (s *SearchSession) Pagination() Pagination {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pagination
}

// Loading reports whether a fetch dispatched by this session is outstanding.
func (s *SearchSession) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// LastError returns the message of the last failed fetch, empty when the
// last fetch succeeded. Errors are captured here rather than thrown past the
// container boundary.
func (s *SearchSession) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastError
}

// SetSearchQuery replaces the text query. Resets to page 1 and clears the cache.
func (s *SearchSession) SetSearchQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter.SearchQuery = query
	s.invalidateLocked()
}

// SetGender replaces the gender constraint. Resets to page 1 and clears the cache.
func (s *SearchSession) SetGender(gender Gender) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter.Gender = gender
	s.invalidateLocked()
}

// SetTradableOnly replaces the tradable flag. Resets to page 1 and clears the cache.
func (s *SearchSession) SetTradableOnly(tradable bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter.TradableOnly = tradable
	s.invalidateLocked()
}

// SetListField replaces a whole list field (never appends). Resets to page 1
// and clears the cache.
func (s *SearchSession) SetListField(field ListField, values []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter.setList(field, cloneList(values))
	s.invalidateLocked()
}

// ToggleListMember removes value from the list field if present, else appends
// it. Resets to page 1 and clears the cache.
func (s *SearchSession) ToggleListMember(field ListField, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.filter.List(field)
	if containsValue(current, value) {
		s.filter.setList(field, removeValue(current, value))
	} else {
		s.filter.setList(field, append(cloneList(current), value))
	}
	s.invalidateLocked()
}

// Clear resets the filter to its zero value, clears the page cache and moves
// back to page 1.
func (s *SearchSession) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter = FilterSet{}
	s.invalidateLocked()
}

// ReplaceFilter swaps in a whole new filter set. When the proposed filter is
// equal (order-insensitively) to the active one this is a no-op and false is
// returned, guarding against redundant fetches on identical resubmission.
func (s *SearchSession) ReplaceFilter(filter FilterSet) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.filter.Equal(filter) {
		return false
	}

	s.filter = filter.Clone()
	s.invalidateLocked()
	return true
}

// SetCurrentPage moves to page n and returns the resulting page number.
// Once a total is known n is clamped against it. Before any total is known
// the requested page is kept as-is (floored at 1) so a restored page number
// survives until the first response re-clamps it.
func (s *SearchSession) SetCurrentPage(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pagination.Total == 0 {
		if n < 1 {
			n = 1
		}
		s.pagination.Current = n
	} else {
		s.pagination.SetCurrent(n)
	}
	return s.pagination.Current
}

// RestorePage places the session on a persisted page number before any total
// is known. The value is re-clamped once the first response reports a total.
func (s *SearchSession) RestorePage(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n < 1 {
		n = 1
	}
	s.pagination.Current = n
}

// SetTotal overwrites the total page count, as reported by a count refresh.
func (s *SearchSession) SetTotal(total int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pagination.SetTotal(total)
}

// CachedPage returns the cached items for a page, if present. The cache only
// holds results fetched under the currently active filter.
func (s *SearchSession) CachedPage(page int) ([]PerfumeSummary, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	items, ok := s.pages[page]
	return items, ok
}

// CachedPageCount returns how many pages are currently cached.
func (s *SearchSession) CachedPageCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pages)
}

// BeginFetch snapshots the active filter and allocates a sequence number for
// an outgoing query. The session is marked loading until the fetch is applied
// or failed.
func (s *SearchSession) BeginFetch() (FilterSet, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	s.loading = true
	return s.filter.Clone(), s.seq
}

// ApplyPage stores a fetched page in the cache and overwrites the total page
// count. Returns false when the response is stale: dispatched before the
// last filter change, or superseded by a newer response for the same page.
func (s *SearchSession) ApplyPage(seq uint64, page int, items []PerfumeSummary, totalPages int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq == s.seq {
		s.loading = false
	}

	if seq <= s.barrier || seq <= s.applied[page] {
		return false
	}

	s.pages[page] = items
	s.applied[page] = seq
	s.pagination.SetTotal(totalPages)
	s.lastError = ""
	return true
}

// Fail records a failed fetch as a loading=false, error=<message> state.
// Failures of stale fetches are ignored.
func (s *SearchSession) Fail(seq uint64, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq == s.seq {
		s.loading = false
	}
	if seq <= s.barrier {
		return
	}
	s.lastError = message
}

// invalidateLocked drops all cached pages and moves back to page 1. All
// in-flight fetches dispatched before this point become stale.
func (s *SearchSession) invalidateLocked() {
	s.pages = make(map[int][]PerfumeSummary)
	s.applied = make(map[int]uint64)
	s.pagination.Reset()
	s.barrier = s.seq
	s.lastError = ""
}
