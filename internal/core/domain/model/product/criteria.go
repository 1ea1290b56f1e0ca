package product

import (
	"sort"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
)

// Criteria filters products. Price bounds are inclusive. Results are ordered
// by price ascending when a price bound is given, by name otherwise.
type Criteria struct {
	RestaurantID  *kernel.UUID
	Category      string
	NameContains  string
	AvailableOnly bool
	MinPrice      *kernel.Money
	MaxPrice      *kernel.Money
}

// ByPrice reports whether results are ordered by price.
func (c Criteria) ByPrice() bool {
	return c.MinPrice != nil || c.MaxPrice != nil
}

func (c Criteria) Matches(p *Product) bool {
	if c.RestaurantID != nil && !p.restaurantID.IsEqual(*c.RestaurantID) {
		return false
	}
	if c.Category != "" && !strings.EqualFold(p.category, strings.TrimSpace(c.Category)) {
		return false
	}
	if c.NameContains != "" && !strings.Contains(strings.ToLower(p.name), strings.ToLower(strings.TrimSpace(c.NameContains))) {
		return false
	}
	if c.AvailableOnly && !p.available {
		return false
	}
	if c.MinPrice != nil && p.price.Cmp(*c.MinPrice) < 0 {
		return false
	}
	if c.MaxPrice != nil && p.price.Cmp(*c.MaxPrice) > 0 {
		return false
	}
	return true
}

// Apply filters and sorts products in memory.
func (c Criteria) Apply(products []*Product) []*Product {
	result := make([]*Product, 0, len(products))
	for _, p := range products {
		if c.Matches(p) {
			result = append(result, p)
		}
	}

	byPrice := c.ByPrice()
	sort.SliceStable(result, func(i, j int) bool {
		a, b := result[i], result[j]
		if byPrice {
			if cmp := a.price.Cmp(b.price); cmp != 0 {
				return cmp < 0
			}
		}
		if a.name != b.name {
			return a.name < b.name
		}
		return a.id.String() < b.id.String()
	})
	return result
}

// Categories returns the distinct categories of available products, sorted.
func Categories(products []*Product) []string {
	seen := make(map[string]struct{})
	result := make([]string, 0)
	for _, p := range products {
		if !p.available {
			continue
		}
		if _, ok := seen[p.category]; !ok {
			seen[p.category] = struct{}{}
			result = append(result, p.category)
		}
	}
	sort.Strings(result)
	return result
}
