package service

import "github.com/Neeraj-Gupta12/PropBot/internal/model"

// The canned chat suggestions. These are the only strings the suggestion
// endpoint accepts; anything else fails closed and is never interpreted as
// free text.
const (
	suggestionUnder500k     = "Show me properties under $500,000"
	suggestionNYApartment   = "I want a 3-bedrooms apartment in New York"
	suggestionApartmentPool = "Find Apartment with a swimming pool"
	suggestionVillaGarden   = "Show me villas with a private garden"
)

var suggestionOrder = []string{
	suggestionUnder500k,
	suggestionNYApartment,
	suggestionApartmentPool,
	suggestionVillaGarden,
}

// Each key maps to one hand-authored filter reflecting its literal meaning.
var suggestionSpecs = map[string]model.FilterSpec{
	suggestionUnder500k: {
		PriceMax: floatPtr(500_000),
	},
	suggestionNYApartment: {
		Types:         []string{"apartment"},
		Bedrooms:      intPtr(3),
		BedroomsExact: true,
		Locations:     []string{"new york", "ny"},
	},
	suggestionApartmentPool: {
		Types:     []string{"apartment"},
		Amenities: []string{"swimming pool"},
	},
	suggestionVillaGarden: {
		Types:     []string{"villa"},
		Amenities: []string{"private garden"},
	},
}

// SuggestionResolver maps allow-listed suggestion strings to pre-built
// filter specifications. It never calls the NL interpreter.
type SuggestionResolver struct{}

// NewSuggestionResolver creates a suggestion resolver.
func NewSuggestionResolver() *SuggestionResolver {
	return &SuggestionResolver{}
}

// Suggestions returns the allow-list in display order.
func (r *SuggestionResolver) Suggestions() []string {
	out := make([]string, len(suggestionOrder))
	copy(out, suggestionOrder)
	return out
}

// Resolve returns the filter for an allow-listed key, or
// ErrInvalidSuggestion for anything else.
func (r *SuggestionResolver) Resolve(key string) (*model.FilterSpec, error) {
	spec, ok := suggestionSpecs[key]
	if !ok {
		return nil, ErrInvalidSuggestion
	}
	// Copy so callers can't mutate the shared table.
	out := spec
	return &out, nil
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }
