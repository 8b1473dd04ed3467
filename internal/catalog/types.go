// Package catalog holds the URL scheme collection and the filtering and
// grouping logic that drives every view of it. The collection is immutable
// after load; the only inputs that vary are the user's query string and
// category selection.
package catalog

// CategoryID identifies a category. Scheme records reference categories by id.
type CategoryID string

// All is the sentinel category selection meaning "no category filter".
const All CategoryID = ""

// Scheme is a single URL scheme (deep-link) record.
type Scheme struct {
	ID          string     `yaml:"id" json:"id"`
	Name        string     `yaml:"name" json:"name"`
	Description string     `yaml:"description,omitempty" json:"description,omitempty"`
	URL         string     `yaml:"url" json:"url"`
	Category    CategoryID `yaml:"category" json:"category"`
}

// Category is a grouping bucket for schemes with its own display metadata.
type Category struct {
	ID          CategoryID `yaml:"id" json:"id"`
	Name        string     `yaml:"name" json:"name"`
	Description string     `yaml:"description,omitempty" json:"description,omitempty"`
}

// Catalog is the full scheme collection plus category definitions.
// Both slices are read-only for the lifetime of the process.
type Catalog struct {
	Schemes    []Scheme
	Categories []Category

	byCategory map[CategoryID]Category
	byScheme   map[string]int
}

// New builds a Catalog and its lookup indexes from the given collections.
// The slices are referenced, not copied; callers must not mutate them after.
func New(schemes []Scheme, categories []Category) *Catalog {
	c := &Catalog{
		Schemes:    schemes,
		Categories: categories,
		byCategory: make(map[CategoryID]Category, len(categories)),
		byScheme:   make(map[string]int, len(schemes)),
	}
	for _, cat := range categories {
		c.byCategory[cat.ID] = cat
	}
	for i, s := range schemes {
		c.byScheme[s.ID] = i
	}
	return c
}

// Category looks up a category by id.
func (c *Catalog) Category(id CategoryID) (Category, bool) {
	cat, ok := c.byCategory[id]
	return cat, ok
}

// Scheme looks up a scheme by id.
func (c *Catalog) Scheme(id string) (Scheme, bool) {
	i, ok := c.byScheme[id]
	if !ok {
		return Scheme{}, false
	}
	return c.Schemes[i], true
}

// Filter runs FilterAndGroup over this catalog's collections.
func (c *Catalog) Filter(selected CategoryID, query string) *Result {
	return FilterAndGroup(c.Schemes, c.Categories, selected, query)
}

// CountByCategory returns the number of schemes assigned to each known
// category. Schemes referencing unknown categories are not counted.
func (c *Catalog) CountByCategory() map[CategoryID]int {
	counts := make(map[CategoryID]int, len(c.Categories))
	for _, s := range c.Schemes {
		if _, ok := c.byCategory[s.Category]; ok {
			counts[s.Category]++
		}
	}
	return counts
}

// Merge overlays other on top of c and returns a new Catalog. Schemes with
// an id already present replace the original in place; new schemes append in
// order. Categories merge the same way, so user catalogs can restyle a
// built-in category or add their own after the declared ones.
func (c *Catalog) Merge(other *Catalog) *Catalog {
	if other == nil || (len(other.Schemes) == 0 && len(other.Categories) == 0) {
		return c
	}

	schemes := make([]Scheme, len(c.Schemes))
	copy(schemes, c.Schemes)
	pos := make(map[string]int, len(schemes))
	for i, s := range schemes {
		pos[s.ID] = i
	}
	for _, s := range other.Schemes {
		if i, ok := pos[s.ID]; ok {
			schemes[i] = s
		} else {
			pos[s.ID] = len(schemes)
			schemes = append(schemes, s)
		}
	}

	categories := make([]Category, len(c.Categories))
	copy(categories, c.Categories)
	cpos := make(map[CategoryID]int, len(categories))
	for i, cat := range categories {
		cpos[cat.ID] = i
	}
	for _, cat := range other.Categories {
		if i, ok := cpos[cat.ID]; ok {
			categories[i] = cat
		} else {
			cpos[cat.ID] = len(categories)
			categories = append(categories, cat)
		}
	}

	return New(schemes, categories)
}
