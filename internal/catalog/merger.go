// Package catalog builds the canonical property catalog by joining the three
// partial record sets and publishes it as an immutable snapshot shared by all
// queries.
package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Neeraj-Gupta12/PropBot/internal/model"
)

// Catalog is the merged, read-only collection of properties. Order follows
// the basics source. Never mutate a published Catalog; rebuild and swap
// instead.
type Catalog struct {
	Items []model.Property

	byID map[string]int
}

// Len returns the number of records.
func (c *Catalog) Len() int {
	return len(c.Items)
}

// Get returns the record with the given id.
func (c *Catalog) Get(id string) (model.Property, bool) {
	i, ok := c.byID[id]
	if !ok {
		return model.Property{}, false
	}
	return c.Items[i], true
}

// Merge left-joins characteristics and media onto basics by id. Every basics
// entry yields exactly one record; missing optional parts resolve to field
// defaults. Characteristics overrides basics for shared fields (never id);
// media supplies only images. Duplicate ids within a single source are a
// data-quality error, not a silent last-write-wins.
func Merge(basics []model.Basic, characteristics []model.Characteristic, media []model.Media) (*Catalog, error) {
	charIdx := make(map[string]model.Characteristic, len(characteristics))
	var charDups []string
	for _, c := range characteristics {
		if _, ok := charIdx[c.ID]; ok {
			charDups = append(charDups, c.ID)
			continue
		}
		charIdx[c.ID] = c
	}

	mediaIdx := make(map[string]model.Media, len(media))
	var mediaDups []string
	for _, m := range media {
		if _, ok := mediaIdx[m.ID]; ok {
			mediaDups = append(mediaDups, m.ID)
			continue
		}
		mediaIdx[m.ID] = m
	}

	seen := make(map[string]struct{}, len(basics))
	var basicDups []string
	for _, b := range basics {
		if _, ok := seen[b.ID]; ok {
			basicDups = append(basicDups, b.ID)
			continue
		}
		seen[b.ID] = struct{}{}
	}

	if err := duplicateError(basicDups, charDups, mediaDups); err != nil {
		return nil, err
	}

	cat := &Catalog{
		Items: make([]model.Property, 0, len(basics)),
		byID:  make(map[string]int, len(basics)),
	}

	for _, b := range basics {
		p := model.Property{
			ID:        b.ID,
			Title:     b.Title,
			Location:  b.Location,
			Price:     b.Price,
			Type:      b.Type,
			CreatedAt: b.CreatedAt,
			Amenities: []string{},
			Images:    []string{},
		}

		if c, ok := charIdx[b.ID]; ok {
			if c.Title != nil {
				p.Title = *c.Title
			}
			if c.Location != nil {
				p.Location = *c.Location
			}
			if c.Price != nil {
				p.Price = *c.Price
			}
			if c.Type != nil {
				p.Type = *c.Type
			}
			p.Bedrooms = c.Bedrooms
			p.Bathrooms = c.Bathrooms
			p.SizeSqft = c.SizeSqft
			p.Rating = c.Rating
			p.Description = c.Description
			if len(c.Amenities) > 0 {
				p.Amenities = append(p.Amenities, c.Amenities...)
			}
		}

		if m, ok := mediaIdx[b.ID]; ok {
			if len(m.Images) > 0 {
				p.Images = append(p.Images, m.Images...)
			} else if m.ImageURL != "" {
				p.Images = append(p.Images, m.ImageURL)
			}
		}

		cat.byID[p.ID] = len(cat.Items)
		cat.Items = append(cat.Items, p)
	}

	return cat, nil
}

func duplicateError(basicDups, charDups, mediaDups []string) error {
	var parts []string
	for _, d := range []struct {
		source string
		ids    []string
	}{
		{"basics", basicDups},
		{"characteristics", charDups},
		{"media", mediaDups},
	} {
		if len(d.ids) > 0 {
			sort.Strings(d.ids)
			parts = append(parts, fmt.Sprintf("%s: %s", d.source, strings.Join(d.ids, ", ")))
		}
	}
	if len(parts) == 0 {
		return nil
	}
	return fmt.Errorf("duplicate ids in source data (%s)", strings.Join(parts, "; "))
}
