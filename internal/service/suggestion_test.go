package service

import (
	"errors"
	"testing"
)

func TestSuggestionResolver_AllowList(t *testing.T) {
	r := NewSuggestionResolver()

	suggestions := r.Suggestions()
	if len(suggestions) != 4 {
		t.Fatalf("Suggestions() returned %d entries, want 4", len(suggestions))
	}

	// Every advertised suggestion must resolve.
	for _, key := range suggestions {
		spec, err := r.Resolve(key)
		if err != nil {
			t.Errorf("Resolve(%q) error = %v", key, err)
		}
		if spec == nil {
			t.Errorf("Resolve(%q) returned nil spec", key)
		}
	}
}

func TestSuggestionResolver_RejectsFreeText(t *testing.T) {
	r := NewSuggestionResolver()

	for _, key := range []string{
		"",
		"show me properties under $500,000", // case matters
		"DROP TABLE properties",
		"Show me villas with a private garden!",
	} {
		if _, err := r.Resolve(key); !errors.Is(err, ErrInvalidSuggestion) {
			t.Errorf("Resolve(%q) error = %v, want ErrInvalidSuggestion", key, err)
		}
	}
}

func TestSuggestionResolver_Mappings(t *testing.T) {
	r := NewSuggestionResolver()

	under, err := r.Resolve("Show me properties under $500,000")
	if err != nil {
		t.Fatal(err)
	}
	if under.PriceMax == nil || *under.PriceMax != 500000 {
		t.Errorf("price max = %v, want 500000", under.PriceMax)
	}

	ny, err := r.Resolve("I want a 3-bedrooms apartment in New York")
	if err != nil {
		t.Fatal(err)
	}
	if ny.Bedrooms == nil || *ny.Bedrooms != 3 || !ny.BedroomsExact {
		t.Errorf("bedrooms = %v (exact %v), want exactly 3", ny.Bedrooms, ny.BedroomsExact)
	}
	if len(ny.Types) != 1 || ny.Types[0] != "apartment" {
		t.Errorf("types = %v, want [apartment]", ny.Types)
	}
	if len(ny.Locations) == 0 {
		t.Error("expected location constraints for the New York suggestion")
	}

	pool, err := r.Resolve("Find Apartment with a swimming pool")
	if err != nil {
		t.Fatal(err)
	}
	if len(pool.Amenities) != 1 || pool.Amenities[0] != "swimming pool" {
		t.Errorf("amenities = %v, want [swimming pool]", pool.Amenities)
	}

	villa, err := r.Resolve("Show me villas with a private garden")
	if err != nil {
		t.Fatal(err)
	}
	if len(villa.Types) != 1 || villa.Types[0] != "villa" {
		t.Errorf("types = %v, want [villa]", villa.Types)
	}
	if len(villa.Amenities) != 1 || villa.Amenities[0] != "private garden" {
		t.Errorf("amenities = %v, want [private garden]", villa.Amenities)
	}
}

func TestSuggestionResolver_CopiesAreIndependent(t *testing.T) {
	r := NewSuggestionResolver()

	first, err := r.Resolve("Show me properties under $500,000")
	if err != nil {
		t.Fatal(err)
	}
	first.Types = append(first.Types, "mutated")

	second, err := r.Resolve("Show me properties under $500,000")
	if err != nil {
		t.Fatal(err)
	}
	if len(second.Types) != 0 {
		t.Errorf("resolver returned a shared spec; types = %v", second.Types)
	}
}
