// Package engine implements the predicate library and the filter/sort/
// paginate pipeline shared by the direct filter path, the suggestion
// resolver, and the chatbot.
package engine

import (
	"strings"

	"github.com/Neeraj-Gupta12/PropBot/internal/model"
)

// Each predicate is a pure test of one record against one constraint. An
// empty or absent constraint always matches: filters narrow, they never
// turn into "match nothing".

// MatchesType reports whether the record's type is one of the requested
// types (OR across the set, case-insensitive).
func MatchesType(p *model.Property, types []string) bool {
	if len(types) == 0 {
		return true
	}
	for _, t := range types {
		if strings.EqualFold(p.Type, t) {
			return true
		}
	}
	return false
}

// MatchesPrice checks the inclusive price bounds.
func MatchesPrice(p *model.Property, min, max *float64) bool {
	if min != nil && p.Price < *min {
		return false
	}
	if max != nil && p.Price > *max {
		return false
	}
	return true
}

// MatchesMinRating checks rating >= min.
func MatchesMinRating(p *model.Property, min float64) bool {
	return min <= 0 || p.Rating >= min
}

// MatchesLocation reports whether the record's location contains any of the
// requested locations (OR across the set, case-insensitive substring).
func MatchesLocation(p *model.Property, locations []string) bool {
	if len(locations) == 0 {
		return true
	}
	loc := strings.ToLower(p.Location)
	for _, want := range locations {
		want = strings.TrimSpace(strings.ToLower(want))
		if want != "" && strings.Contains(loc, want) {
			return true
		}
	}
	return false
}

// MatchesAmenities requires every requested amenity to be present: a record
// missing any one of them is excluded. Matching is case-insensitive
// containment so "swimming pool" finds "Private Swimming Pool".
func MatchesAmenities(p *model.Property, required []string) bool {
	for _, want := range required {
		want = strings.TrimSpace(strings.ToLower(want))
		if want == "" {
			continue
		}
		found := false
		for _, a := range p.Amenities {
			if strings.Contains(strings.ToLower(a), want) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// MatchesKeyword performs the direct-path keyword test: case-insensitive
// substring over title and location only. The chatbot fallback scans the
// whole record instead (MatchesAnyWord); the asymmetry is deliberate.
func MatchesKeyword(p *model.Property, keyword string) bool {
	keyword = strings.TrimSpace(strings.ToLower(keyword))
	if keyword == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Title), keyword) ||
		strings.Contains(strings.ToLower(p.Location), keyword)
}

// MatchesBedrooms checks the bedroom count. The direct filter path uses a
// minimum; the NL and suggestion paths use an exact count.
func MatchesBedrooms(p *model.Property, n *int, exact bool) bool {
	if n == nil {
		return true
	}
	if exact {
		return p.Bedrooms == *n
	}
	return p.Bedrooms >= *n
}

// MatchesBathrooms checks bathrooms >= n.
func MatchesBathrooms(p *model.Property, n *int) bool {
	return n == nil || p.Bathrooms >= *n
}

// MatchesSize checks the inclusive size bounds in square feet.
func MatchesSize(p *model.Property, min, max *float64) bool {
	if min != nil && p.SizeSqft < *min {
		return false
	}
	if max != nil && p.SizeSqft > *max {
		return false
	}
	return true
}

// MatchesAnyWord is the chatbot's last-resort match: the record is included
// when any whitespace-split word of the message is a substring of any string
// field of the record.
func MatchesAnyWord(p *model.Property, words []string) bool {
	fields := p.TextFields()
	for _, w := range words {
		for _, f := range fields {
			if strings.Contains(strings.ToLower(f), w) {
				return true
			}
		}
	}
	return false
}
