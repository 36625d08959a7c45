package model

import "time"

// Property types recognized by the catalog. Type is open-ended: sources may
// carry subtypes like "apartment" or "villa" and the type filter matches them
// the same way.
const (
	TypeHotel      = "hotel"
	TypeAttraction = "attraction"
	TypeTrip       = "trip"
	TypeProperty   = "property"
)

// Property is a canonical catalog record, produced by merging the three
// partial sources. Fields missing from every source keep their zero value so
// predicates never have to deal with nulls.
type Property struct {
	ID          string    `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Location    string    `json:"location" db:"location"`
	Price       float64   `json:"price" db:"price"`
	Bedrooms    int       `json:"bedrooms" db:"bedrooms"`
	Bathrooms   int       `json:"bathrooms" db:"bathrooms"`
	SizeSqft    float64   `json:"size_sqft" db:"size_sqft"`
	Amenities   []string  `json:"amenities"`
	Images      []string  `json:"images"`
	Description string    `json:"description" db:"description"`
	Rating      float64   `json:"rating" db:"rating"`
	Type        string    `json:"type" db:"type"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// Image returns the primary image URI, or "" when the record has none.
func (p *Property) Image() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// TextFields returns every string-valued field of the record, used by the
// chatbot keyword fallback which scans the whole record rather than just
// title and location.
func (p *Property) TextFields() []string {
	fields := []string{p.ID, p.Title, p.Location, p.Description, p.Type}
	fields = append(fields, p.Amenities...)
	fields = append(fields, p.Images...)
	return fields
}

// Basic is the partial record from the basics source. Every catalog entry
// originates from exactly one Basic.
type Basic struct {
	ID        string    `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Location  string    `json:"location" db:"location"`
	Price     float64   `json:"price" db:"price"`
	Type      string    `json:"type" db:"type"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Characteristic is the partial record from the characteristics source.
// Pointer fields override the corresponding basics field when non-nil,
// mirroring the source priority of the merge (characteristics wins over
// basics for shared keys, never for id).
type Characteristic struct {
	ID          string   `json:"id" db:"id"`
	Title       *string  `json:"title,omitempty" db:"title"`
	Location    *string  `json:"location,omitempty" db:"location"`
	Price       *float64 `json:"price,omitempty" db:"price"`
	Type        *string  `json:"type,omitempty" db:"type"`
	Bedrooms    int      `json:"bedrooms" db:"bedrooms"`
	Bathrooms   int      `json:"bathrooms" db:"bathrooms"`
	SizeSqft    float64  `json:"size_sqft" db:"size_sqft"`
	Rating      float64  `json:"rating" db:"rating"`
	Description string   `json:"description" db:"description"`
	Amenities   []string `json:"amenities"`
}

// Media is the partial record from the media source. Images is the ordered
// gallery; ImageURL is the legacy single-image field used when Images is
// empty.
type Media struct {
	ID       string   `json:"id" db:"id"`
	Images   []string `json:"images"`
	ImageURL string   `json:"image_url" db:"image_url"`
}
