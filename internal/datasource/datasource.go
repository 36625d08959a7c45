// Package datasource abstracts where the three partial property record sets
// come from, so the catalog can be rebuilt from JSON files in development and
// PostgreSQL in production, and replaced with fixtures in tests.
package datasource

import (
	"context"

	"github.com/Neeraj-Gupta12/PropBot/internal/model"
)

// Source loads the three partial record sets. Loading happens only during
// catalog rebuilds; queries never touch a Source.
type Source interface {
	LoadBasics(ctx context.Context) ([]model.Basic, error)
	LoadCharacteristics(ctx context.Context) ([]model.Characteristic, error)
	LoadMedia(ctx context.Context) ([]model.Media, error)
}

// Static is a fixed in-memory Source, mainly for tests and seeding.
type Static struct {
	Basics          []model.Basic
	Characteristics []model.Characteristic
	Media           []model.Media
}

func (s *Static) LoadBasics(ctx context.Context) ([]model.Basic, error) {
	return s.Basics, nil
}

func (s *Static) LoadCharacteristics(ctx context.Context) ([]model.Characteristic, error) {
	return s.Characteristics, nil
}

func (s *Static) LoadMedia(ctx context.Context) ([]model.Media, error) {
	return s.Media, nil
}
