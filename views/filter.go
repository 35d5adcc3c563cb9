package views

import (
	"strings"

	"servimarket/market"
)

// ServiceFilter narrows the service listing. Zero-valued fields match
// everything; Search matches title or description, case-insensitively.
type ServiceFilter struct {
	Category market.Category
	Status   market.Status
	City     string
	Search   string
}

// FilterServices applies the filter over the listing in insertion order.
func FilterServices(st market.State, f ServiceFilter) []market.Service {
	needle := strings.ToLower(f.Search)
	var out []market.Service
	for _, svc := range st.Services {
		if f.Category != "" && svc.Category != f.Category {
			continue
		}
		if f.Status != "" && svc.Status != f.Status {
			continue
		}
		if f.City != "" && svc.City != f.City {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(svc.Title), needle) &&
			!strings.Contains(strings.ToLower(svc.Description), needle) {
			continue
		}
		out = append(out, svc)
	}
	return out
}
