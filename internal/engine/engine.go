package engine

import (
	"sort"
	"strings"

	"github.com/Neeraj-Gupta12/PropBot/internal/catalog"
	"github.com/Neeraj-Gupta12/PropBot/internal/model"
)

// Filter applies the predicate pipeline in its fixed order: type, price
// range, minimum rating, locations, amenities, keyword, then the count and
// size constraints. Constraints left empty are no-ops.
func Filter(cat *catalog.Catalog, spec *model.FilterSpec) []model.Property {
	results := make([]model.Property, 0, cat.Len())
	results = append(results, cat.Items...)
	if spec == nil {
		return results
	}

	results = narrow(results, func(p *model.Property) bool { return MatchesType(p, spec.Types) })
	results = narrow(results, func(p *model.Property) bool { return MatchesPrice(p, spec.PriceMin, spec.PriceMax) })
	results = narrow(results, func(p *model.Property) bool { return MatchesMinRating(p, spec.MinRating) })
	results = narrow(results, func(p *model.Property) bool { return MatchesLocation(p, spec.Locations) })
	results = narrow(results, func(p *model.Property) bool { return MatchesAmenities(p, spec.Amenities) })
	results = narrow(results, func(p *model.Property) bool { return MatchesKeyword(p, spec.Keyword) })
	results = narrow(results, func(p *model.Property) bool { return MatchesBedrooms(p, spec.Bedrooms, spec.BedroomsExact) })
	results = narrow(results, func(p *model.Property) bool { return MatchesBathrooms(p, spec.Bathrooms) })
	results = narrow(results, func(p *model.Property) bool { return MatchesSize(p, spec.SizeMin, spec.SizeMax) })

	return results
}

// Query runs the full pipeline and slices the result into a 1-indexed page.
// Pages past the end return an empty item list, not an error.
func Query(cat *catalog.Catalog, spec *model.FilterSpec, page, pageSize int) model.Page {
	results := Filter(cat, spec)
	if spec != nil {
		Sort(results, spec.Sort)
	}
	return Paginate(results, page, pageSize)
}

// KeywordScan is the chatbot fallback mode: no entities were extracted from
// the message, so each word is matched against every string field of every
// record. Words under three characters are noise ("a", "in") and skipped.
func KeywordScan(cat *catalog.Catalog, message string) []model.Property {
	var words []string
	for _, w := range strings.Fields(strings.ToLower(message)) {
		if len(w) >= 3 {
			words = append(words, w)
		}
	}
	results := make([]model.Property, 0)
	if len(words) == 0 {
		return results
	}
	for i := range cat.Items {
		if MatchesAnyWord(&cat.Items[i], words) {
			results = append(results, cat.Items[i])
		}
	}
	return results
}

// Paginate slices results into page (1-indexed) of pageSize items.
func Paginate(results []model.Property, page, pageSize int) model.Page {
	if pageSize <= 0 {
		pageSize = 1
	}
	if page < 1 {
		page = 1
	}

	total := len(results)
	totalPages := (total + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	if start >= total {
		return model.Page{Items: []model.Property{}, TotalCount: total, TotalPages: totalPages}
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	items := make([]model.Property, end-start)
	copy(items, results[start:end])
	return model.Page{Items: items, TotalCount: total, TotalPages: totalPages}
}

// Sort orders results with a single two-key comparator: price is the
// primary key and date only breaks ties among equal prices. With one key
// requested the other is skipped entirely.
func Sort(results []model.Property, s *model.SortSpec) {
	if s.IsZero() {
		return
	}
	sort.SliceStable(results, func(i, j int) bool {
		a, b := &results[i], &results[j]
		if s.Price != "" && a.Price != b.Price {
			if s.Price == model.SortDesc {
				return a.Price > b.Price
			}
			return a.Price < b.Price
		}
		if s.Date != "" && !a.CreatedAt.Equal(b.CreatedAt) {
			if s.Date == model.SortDesc {
				return a.CreatedAt.After(b.CreatedAt)
			}
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return false
	})
}

func narrow(results []model.Property, keep func(*model.Property) bool) []model.Property {
	out := results[:0]
	for i := range results {
		if keep(&results[i]) {
			out = append(out, results[i])
		}
	}
	return out
}
