package views

import (
	"time"

	"servimarket/market"
)

// viewState builds a read-side fixture: three quotes with a price tie on
// s1, overlapping demand between s1 and s2, and a completed service that
// must stay out of every open-demand view.
func viewState() market.State {
	sel := "q9"
	rating := 5
	return market.State{
		Users: []market.User{
			{ID: "r1", Name: "Ana", Email: "ana@example.com", Password: "x", Role: market.RoleRequester},
			{ID: "p1", Name: "Garden Pros", Email: "g@example.com", Password: "x", Role: market.RoleServiceProvider, Rating: 4.5, RatingCount: 10},
			{ID: "p2", Name: "Pool Masters", Email: "pm@example.com", Password: "x", Role: market.RoleServiceProvider, Rating: 4.8, RatingCount: 15},
			{ID: "p3", Name: "Clean Co", Email: "c@example.com", Password: "x", Role: market.RoleServiceProvider, Rating: 4.2, RatingCount: 8},
			{ID: "v1", Name: "North Supplies", Email: "n@example.com", Password: "x", Role: market.RoleSupplyProvider},
			{ID: "v2", Name: "Central Dist", Email: "ce@example.com", Password: "x", Role: market.RoleSupplyProvider},
		},
		Services: []market.Service{
			{
				ID: "s1", RequesterID: "r1", Title: "Garden cleanup", Description: "Garden and pool",
				Category: market.CategoryGardening, Address: "a", City: "montevideo", PreferredDate: "2025-11-15",
				RequiredSupplies: []market.RequiredSupply{
					{Name: "Cloro", Quantity: 5, Unit: "kg"},
					{Name: "Fertilizante", Quantity: 10, Unit: "kg"},
				},
				Status: market.StatusPublished, CreatedAt: time.Date(2025, 11, 1, 9, 0, 0, 0, time.UTC),
			},
			{
				ID: "s2", RequesterID: "r1", Title: "Pool maintenance", Description: "Monthly pool care",
				Category: market.CategoryPools, Address: "b", City: "punta-del-este", PreferredDate: "2025-11-20",
				RequiredSupplies: []market.RequiredSupply{
					{Name: "cloro", Quantity: 3, Unit: "kg"},
					{Name: "Algicida", Quantity: 2, Unit: "l"},
				},
				Status: market.StatusUnderEvaluation, CreatedAt: time.Date(2025, 11, 2, 9, 0, 0, 0, time.UTC),
			},
			{
				ID: "s3", RequesterID: "r1", Title: "Old job", Description: "Done already",
				Category: market.CategoryCleaning, Address: "c", City: "salto", PreferredDate: "2025-10-01",
				RequiredSupplies: []market.RequiredSupply{
					{Name: "Cloro", Quantity: 99, Unit: "kg"},
				},
				Status: market.StatusCompleted, SelectedQuoteID: &sel, ProviderRating: &rating,
				CreatedAt: time.Date(2025, 10, 1, 9, 0, 0, 0, time.UTC),
			},
		},
		Quotes: []market.Quote{
			{ID: "q1", ServiceID: "s1", ProviderID: "p1", Price: 15000, LeadDays: 3, ProviderRating: 4.5, CreatedAt: time.Date(2025, 11, 3, 10, 0, 0, 0, time.UTC)},
			{ID: "q2", ServiceID: "s1", ProviderID: "p2", Price: 12500, LeadDays: 5, ProviderRating: 4.8, CreatedAt: time.Date(2025, 11, 3, 11, 0, 0, 0, time.UTC)},
			{ID: "q3", ServiceID: "s1", ProviderID: "p3", Price: 12500, LeadDays: 2, ProviderRating: 4.2, CreatedAt: time.Date(2025, 11, 3, 12, 0, 0, 0, time.UTC)},
			{ID: "q9", ServiceID: "s3", ProviderID: "p3", Price: 8000, LeadDays: 1, ProviderRating: 4.2, CreatedAt: time.Date(2025, 10, 2, 9, 0, 0, 0, time.UTC)},
		},
		Supplies: []market.Supply{
			{ID: "sup1", VendorID: "v1", Name: "Cloro granulado", Category: "chemicals", Unit: "kg", UnitPrice: 450, Stock: 100},
			{ID: "sup2", VendorID: "v1", Name: "Fertilizante orgánico", Category: "gardening", Unit: "kg", UnitPrice: 320, Stock: 50},
			{ID: "sup3", VendorID: "v2", Name: "Algicida concentrado", Category: "chemicals", Unit: "lts", UnitPrice: 580, Stock: 30},
		},
	}
}
