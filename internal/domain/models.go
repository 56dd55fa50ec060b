package domain

// Gender is a perfume gender classification used as a filter criterion.
type Gender string

const (
	// GenderForMen matches perfumes marketed for men.
	GenderForMen Gender = "for men"
	// GenderForWomen matches perfumes marketed for women.
	GenderForWomen Gender = "for women"
	// GenderNone means no gender constraint.
	GenderNone Gender = ""
)

// FilterSet represents the active search criteria for one browsing session.
// List fields keep insertion order; equality is order-insensitive (see Equal).
type FilterSet struct {
	SearchQuery  string   `json:"search_query,omitempty"`
	Brands       []string `json:"brands,omitempty"`
	Gender       Gender   `json:"gender,omitempty"`
	Accords      []string `json:"accords,omitempty"`
	TopNotes     []string `json:"top_notes,omitempty"`
	MiddleNotes  []string `json:"middle_notes,omitempty"`
	BaseNotes    []string `json:"base_notes,omitempty"`
	TradableOnly bool     `json:"tradable_only,omitempty"`
}

// ListField names a list-valued FilterSet field for generic mutation.
type ListField string

const (
	FieldBrands      ListField = "brands"
	FieldAccords     ListField = "accords"
	FieldTopNotes    ListField = "top_notes"
	FieldMiddleNotes ListField = "middle_notes"
	FieldBaseNotes   ListField = "base_notes"
)

// PerfumeSummary is the read-only projection of a perfume returned by the
// catalog backend. The discovery layer never mutates it.
type PerfumeSummary struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Brand       string   `json:"brand"`
	Gender      Gender   `json:"gender"`
	Accords     []string `json:"accords"`
	TopNotes    []string `json:"top_notes"`
	MiddleNotes []string `json:"middle_notes"`
	BaseNotes   []string `json:"base_notes"`
	ImageURLs   []string `json:"image_urls"`
	Tradable    bool     `json:"tradable"`
	LikeCount   int      `json:"like_count"`
}

// PageResult is one page of query results plus total-page bookkeeping.
type PageResult struct {
	Items      []PerfumeSummary `json:"items"`
	Page       int              `json:"page"`
	TotalPages int              `json:"total_pages"`
}
