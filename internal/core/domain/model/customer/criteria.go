package customer

import (
	"sort"
	"strings"
)

// Criteria filters customers. Results are ordered by name, then id.
type Criteria struct {
	NameContains string
	Email        string
	ActiveOnly   bool
}

func (c Criteria) Matches(x *Customer) bool {
	if c.NameContains != "" && !strings.Contains(strings.ToLower(x.name), strings.ToLower(strings.TrimSpace(c.NameContains))) {
		return false
	}
	if c.Email != "" && x.email != NormalizeEmail(c.Email) {
		return false
	}
	if c.ActiveOnly && !x.active {
		return false
	}
	return true
}

// Apply filters and sorts customers in memory.
func (c Criteria) Apply(customers []*Customer) []*Customer {
	result := make([]*Customer, 0, len(customers))
	for _, x := range customers {
		if c.Matches(x) {
			result = append(result, x)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].name != result[j].name {
			return result[i].name < result[j].name
		}
		return result[i].id.String() < result[j].id.String()
	})
	return result
}
