package views

import (
	"strings"

	"servimarket/market"
)

// ServiceDemand is one service's share of a demand group.
type ServiceDemand struct {
	ServiceID string
	Title     string
	Quantity  float64
}

// DemandGroup aggregates one required-supply name across open services.
// Name and Unit come from the first service that listed the item.
type DemandGroup struct {
	Name          string
	Unit          string
	TotalQuantity float64
	Services      []ServiceDemand
}

// AggregateDemand groups required-supply lines by case-insensitive name
// across every PUBLISHED or UNDER_EVALUATION service that carries at least
// one line. Group order follows the first appearance of each name, so the
// output is deterministic for identical input.
func AggregateDemand(st market.State) []DemandGroup {
	var groups []DemandGroup
	index := make(map[string]int)

	for _, svc := range st.Services {
		if !market.QuoteWindowOpen(svc.Status) || len(svc.RequiredSupplies) == 0 {
			continue
		}
		for _, line := range svc.RequiredSupplies {
			key := strings.ToLower(line.Name)
			i, ok := index[key]
			if !ok {
				i = len(groups)
				index[key] = i
				groups = append(groups, DemandGroup{Name: line.Name, Unit: line.Unit})
			}
			groups[i].TotalQuantity += line.Quantity
			groups[i].Services = append(groups[i].Services, ServiceDemand{
				ServiceID: svc.ID,
				Title:     svc.Title,
				Quantity:  line.Quantity,
			})
		}
	}
	return groups
}

// MatchingSupplies returns the entries of a vendor's catalog whose name
// relates to a demand name, by case-insensitive substring containment in
// either direction ("Cloro" matches "Cloro granulado" and vice versa).
func MatchingSupplies(st market.State, vendorID, name string) []market.Supply {
	needle := strings.ToLower(name)
	var out []market.Supply
	for _, sup := range st.SuppliesOfVendor(vendorID) {
		have := strings.ToLower(sup.Name)
		if strings.Contains(have, needle) || strings.Contains(needle, have) {
			out = append(out, sup)
		}
	}
	return out
}

// IsEquivalentChoice reports whether offering a supply against a required
// item constitutes a substitution, i.e. the names differ beyond case. A
// substitution obliges the vendor to attach substitution notes.
func IsEquivalentChoice(sup market.Supply, requiredName string) bool {
	return !strings.EqualFold(sup.Name, requiredName)
}
