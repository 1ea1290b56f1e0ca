package restaurant

import (
	"sort"
	"strings"
)

// SortOrder selects the ordering of restaurant query results.
type SortOrder int

const (
	// ByName orders alphabetically.
	ByName SortOrder = iota
	// ByRatingDesc orders by rating, best first. Unrated restaurants come last.
	ByRatingDesc
)

// Criteria filters restaurants. Limit applies after sorting; zero means no limit.
type Criteria struct {
	Category     string
	NameContains string
	ActiveOnly   bool
	MinRating    *float64
	SortBy       SortOrder
	Limit        int
}

func (c Criteria) Matches(r *Restaurant) bool {
	if c.Category != "" && !strings.EqualFold(r.category, strings.TrimSpace(c.Category)) {
		return false
	}
	if c.NameContains != "" && !strings.Contains(strings.ToLower(r.name), strings.ToLower(strings.TrimSpace(c.NameContains))) {
		return false
	}
	if c.ActiveOnly && !r.active {
		return false
	}
	if c.MinRating != nil && (r.rating == nil || *r.rating < *c.MinRating) {
		return false
	}
	return true
}

// Apply filters, sorts and limits restaurants in memory.
func (c Criteria) Apply(restaurants []*Restaurant) []*Restaurant {
	result := make([]*Restaurant, 0, len(restaurants))
	for _, r := range restaurants {
		if c.Matches(r) {
			result = append(result, r)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		a, b := result[i], result[j]
		if c.SortBy == ByRatingDesc {
			switch {
			case a.rating != nil && b.rating == nil:
				return true
			case a.rating == nil && b.rating != nil:
				return false
			case a.rating != nil && b.rating != nil && *a.rating != *b.rating:
				return *a.rating > *b.rating
			}
		}
		if a.name != b.name {
			return a.name < b.name
		}
		return a.id.String() < b.id.String()
	})

	if c.Limit > 0 && len(result) > c.Limit {
		result = result[:c.Limit]
	}
	return result
}

// Categories returns the distinct categories of active restaurants, sorted.
func Categories(restaurants []*Restaurant) []string {
	seen := make(map[string]struct{})
	result := make([]string, 0)
	for _, r := range restaurants {
		if !r.active {
			continue
		}
		if _, ok := seen[r.category]; ok {
			continue
		}
		seen[r.category] = struct{}{}
		result = append(result, r.category)
	}
	sort.Strings(result)
	return result
}
