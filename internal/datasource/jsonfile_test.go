package datasource

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestJSONFiles_Load(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "property_basics.json", `[
		{"id": "p1", "title": "Sunny Apartment", "location": "New York, NY", "price": 450000, "type": "apartment"},
		{"id": "p2", "title": "Beach Villa", "location": "Miami, FL", "price": 1200000, "type": "villa"}
	]`)
	writeFile(t, dir, "property_characteristics.json", `[
		{"id": "p1", "bedrooms": 3, "bathrooms": 2, "rating": 4.5, "amenities": ["Swimming Pool", "Gym"]}
	]`)
	writeFile(t, dir, "property_images.json", `[
		{"id": "p1", "images": ["https://img.example/p1.jpg"]},
		{"id": "p2", "image_url": "https://img.example/p2.jpg"}
	]`)

	src := NewJSONFiles(dir)
	ctx := context.Background()

	basics, err := src.LoadBasics(ctx)
	if err != nil {
		t.Fatalf("LoadBasics() error = %v", err)
	}
	if len(basics) != 2 || basics[0].ID != "p1" || basics[1].Title != "Beach Villa" {
		t.Errorf("unexpected basics: %+v", basics)
	}

	chars, err := src.LoadCharacteristics(ctx)
	if err != nil {
		t.Fatalf("LoadCharacteristics() error = %v", err)
	}
	if len(chars) != 1 || chars[0].Bedrooms != 3 || len(chars[0].Amenities) != 2 {
		t.Errorf("unexpected characteristics: %+v", chars)
	}

	media, err := src.LoadMedia(ctx)
	if err != nil {
		t.Fatalf("LoadMedia() error = %v", err)
	}
	if len(media) != 2 || media[1].ImageURL != "https://img.example/p2.jpg" {
		t.Errorf("unexpected media: %+v", media)
	}
}

func TestJSONFiles_MissingFile(t *testing.T) {
	src := NewJSONFiles(t.TempDir())

	if _, err := src.LoadBasics(context.Background()); err == nil {
		t.Error("LoadBasics() succeeded with no file on disk")
	}
}

func TestJSONFiles_MalformedJSON(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "property_basics.json", `{"not": "an array"`)

	src := NewJSONFiles(dir)
	if _, err := src.LoadBasics(context.Background()); err == nil {
		t.Error("LoadBasics() succeeded on malformed JSON")
	}
}
