package catalog

import (
	"errors"
	"fmt"
	"sort"

	"travel-buddy/models"
)

// ErrNotFound is returned when a slug or id does not name a listing.
var ErrNotFound = errors.New("not found")

// Catalog holds the immutable listings of every kind in catalog order.
type Catalog struct {
	byKind map[models.ListingKind][]models.Listing
	byID   map[string]models.Listing
	bySlug map[string]models.Listing
}

// New indexes the catalog file. Ids must be unique across kinds and ratings
// must lie in [0,5].
func New(file models.CatalogFile) (*Catalog, error) {
	c := &Catalog{
		byKind: make(map[models.ListingKind][]models.Listing),
		byID:   make(map[string]models.Listing),
		bySlug: make(map[string]models.Listing),
	}
	groups := []struct {
		kind     models.ListingKind
		listings []models.Listing
	}{
		{models.KindDestination, file.Destinations},
		{models.KindActivity, file.Activities},
		{models.KindCuisine, file.Cuisines},
		{models.KindProduct, file.Products},
	}
	for _, g := range groups {
		for _, l := range g.listings {
			l.Kind = g.kind
			if l.ID == "" {
				return nil, fmt.Errorf("%s %q has no id", g.kind, l.Name)
			}
			if _, dup := c.byID[l.ID]; dup {
				return nil, fmt.Errorf("duplicate listing id %q", l.ID)
			}
			if l.Rating < 0 || l.Rating > 5 {
				return nil, fmt.Errorf("listing %q rating %v outside [0,5]", l.ID, l.Rating)
			}
			c.byID[l.ID] = l
			if g.kind == models.KindDestination && l.Slug != "" {
				c.bySlug[l.Slug] = l
			}
			c.byKind[g.kind] = append(c.byKind[g.kind], l)
		}
	}
	return c, nil
}

// List returns a copy of every listing of the kind, in catalog order.
func (c *Catalog) List(kind models.ListingKind) []models.Listing {
	src := c.byKind[kind]
	out := make([]models.Listing, len(src))
	copy(out, src)
	return out
}

// Get looks a listing up by id and checks its kind.
func (c *Catalog) Get(kind models.ListingKind, id string) (models.Listing, error) {
	l, ok := c.byID[id]
	if !ok || l.Kind != kind {
		return models.Listing{}, fmt.Errorf("%s %q: %w", kind, id, ErrNotFound)
	}
	return l, nil
}

// DestinationBySlug resolves a destination detail page.
func (c *Catalog) DestinationBySlug(slug string) (models.Listing, error) {
	l, ok := c.bySlug[slug]
	if !ok {
		return models.Listing{}, fmt.Errorf("destination %q: %w", slug, ErrNotFound)
	}
	return l, nil
}

// AtLocation returns the listings of a kind whose location tag is slug.
func (c *Catalog) AtLocation(kind models.ListingKind, slug string) []models.Listing {
	return Filter(c.byKind[kind], models.FilterCriteria{LocationTags: []string{slug}})
}

// Featured returns the featured destinations in catalog order.
func (c *Catalog) Featured() []models.Listing {
	var out []models.Listing
	for _, l := range c.byKind[models.KindDestination] {
		if l.Featured {
			out = append(out, l)
		}
	}
	return out
}

// Facets lists the distinct category and location tags of a kind, sorted.
func (c *Catalog) Facets(kind models.ListingKind) (categories, locations []string) {
	seenCat := make(map[string]struct{})
	seenLoc := make(map[string]struct{})
	for _, l := range c.byKind[kind] {
		for _, tag := range l.CategoryTags {
			if _, ok := seenCat[tag]; !ok {
				seenCat[tag] = struct{}{}
				categories = append(categories, tag)
			}
		}
		if _, ok := seenLoc[l.LocationTag]; !ok && l.LocationTag != "" {
			seenLoc[l.LocationTag] = struct{}{}
			locations = append(locations, l.LocationTag)
		}
	}
	sort.Strings(categories)
	sort.Strings(locations)
	return categories, locations
}
