package model

// Sort directions for SortSpec.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// SortSpec describes the requested ordering. Price and Date each hold a
// direction or "" for no sort on that key. When both are set, price is the
// primary comparator and date only breaks ties among equal prices.
type SortSpec struct {
	Price string `json:"price,omitempty"`
	Date  string `json:"date,omitempty"`
}

// IsZero reports whether no ordering was requested.
func (s *SortSpec) IsZero() bool {
	return s == nil || (s.Price == "" && s.Date == "")
}

// FilterSpec is the structured description of what the user wants,
// regardless of whether it came from explicit filters, a canned suggestion,
// or natural-language extraction. Empty sets and nil numbers mean "no
// constraint", never "match nothing".
//
// Bedrooms carries the one deliberate asymmetry between entry points: the
// direct filter path treats it as a minimum (bedrooms >= n) while the NL and
// suggestion paths require an exact count. BedroomsExact selects which.
type FilterSpec struct {
	Types         []string  `json:"types,omitempty"`
	PriceMin      *float64  `json:"price_min,omitempty"`
	PriceMax      *float64  `json:"price_max,omitempty"`
	MinRating     float64   `json:"min_rating,omitempty"`
	Locations     []string  `json:"locations,omitempty"`
	Bedrooms      *int      `json:"bedrooms,omitempty"`
	BedroomsExact bool      `json:"bedrooms_exact,omitempty"`
	Bathrooms     *int      `json:"bathrooms,omitempty"`
	SizeMin       *float64  `json:"size_min,omitempty"`
	SizeMax       *float64  `json:"size_max,omitempty"`
	Amenities     []string  `json:"amenities,omitempty"`
	Keyword       string    `json:"keyword,omitempty"`
	Sort          *SortSpec `json:"sort,omitempty"`
}

// Page is one slice of a query result.
type Page struct {
	Items      []Property `json:"items"`
	TotalCount int        `json:"total_count"`
	TotalPages int        `json:"total_pages"`
}
