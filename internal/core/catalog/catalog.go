// Package catalog holds the static cloud component library. The table is
// immutable after construction, so a Catalog is safe for concurrent reads
// from any number of request handlers.
package catalog

import "github.com/astra-cloud/astra/internal/core/model"

// Component is one catalog entry. BaseCost is the unscaled monthly price in
// USD; zero means free tier and excludes the component from cost scaling.
type Component struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Category    model.Category `json:"category"`
	PricingTier string         `json:"pricing_tier"`
	BaseCost    float64        `json:"base_cost"`
	Description string         `json:"description"`
}

// Catalog provides O(1) lookup over the component library while preserving
// declaration order for listings.
type Catalog struct {
	ordered []Component
	byID    map[string]Component
}

// New builds the catalog from the built-in component table.
func New() *Catalog {
	return fromComponents(components)
}

func fromComponents(list []Component) *Catalog {
	c := &Catalog{
		ordered: list,
		byID:    make(map[string]Component, len(list)),
	}
	for _, comp := range list {
		c.byID[comp.ID] = comp
	}
	return c
}

// Lookup returns the component for an id. A missing id is a normal result,
// not an error; callers like the graph synthesizer skip unknown ids.
func (c *Catalog) Lookup(id string) (Component, bool) {
	comp, ok := c.byID[id]
	return comp, ok
}

// All returns every component in declaration order. Callers must not
// mutate the returned slice.
func (c *Catalog) All() []Component {
	return c.ordered
}

// ByCategory returns the components of one category in declaration order.
func (c *Catalog) ByCategory(cat model.Category) []Component {
	var out []Component
	for _, comp := range c.ordered {
		if comp.Category == cat {
			out = append(out, comp)
		}
	}
	return out
}
