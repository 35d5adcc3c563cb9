package market

import (
	"fmt"
	"testing"
	"time"
)

// testState builds a small self-contained marketplace: one requester, two
// rated providers, two vendors, one published service with two quotes, and
// a vendor catalog.
func testState() State {
	return State{
		Users: []User{
			{ID: "r1", Name: "Ana Requester", Email: "ana@example.com", Password: "secret", Role: RoleRequester},
			{ID: "p1", Name: "Garden Pros", Email: "garden@example.com", Password: "secret", Role: RoleServiceProvider, Rating: 4.5, RatingCount: 10},
			{ID: "p2", Name: "Clean Co", Email: "clean@example.com", Password: "secret", Role: RoleServiceProvider, Rating: 4.2, RatingCount: 8},
			{ID: "v1", Name: "North Supplies", Email: "north@example.com", Password: "secret", Role: RoleSupplyProvider},
			{ID: "v2", Name: "Central Dist", Email: "central@example.com", Password: "secret", Role: RoleSupplyProvider},
		},
		Services: []Service{
			{
				ID:          "s1",
				RequesterID: "r1",
				Title:       "Garden and pool cleanup",
				Description: "Full garden cleanup and pool maintenance",
				Category:    CategoryGardening,
				Address:     "Av. Rivera 2345",
				City:        "montevideo",
				PreferredDate: "2025-11-15",
				RequiredSupplies: []RequiredSupply{
					{Name: "Cloro", Quantity: 5, Unit: "kg"},
					{Name: "Fertilizante", Quantity: 10, Unit: "kg"},
				},
				Status:    StatusPublished,
				CreatedAt: time.Date(2025, 11, 1, 9, 0, 0, 0, time.UTC),
			},
		},
		Quotes: []Quote{
			{ID: "q1", ServiceID: "s1", ProviderID: "p1", Price: 15000, LeadDays: 3, ProviderRating: 4.5, CreatedAt: time.Date(2025, 11, 3, 14, 0, 0, 0, time.UTC)},
			{ID: "q2", ServiceID: "s1", ProviderID: "p2", Price: 12500, LeadDays: 5, ProviderRating: 4.2, CreatedAt: time.Date(2025, 11, 3, 16, 0, 0, 0, time.UTC)},
		},
		Supplies: []Supply{
			{ID: "sup1", VendorID: "v1", Name: "Cloro granulado", Category: "chemicals", Unit: "kg", UnitPrice: 450, Stock: 100},
			{ID: "sup2", VendorID: "v1", Name: "Fertilizante orgánico", Category: "gardening", Unit: "kg", UnitPrice: 320, Stock: 50},
			{ID: "sup3", VendorID: "v2", Name: "Algicida concentrado", Category: "chemicals", Unit: "lts", UnitPrice: 580, Stock: 30},
		},
	}
}

// newTestStore wraps a state in a store with a deterministic id sequence
// and a fixed clock.
func newTestStore(st State) *Store {
	n := 0
	return New(st).
		WithIDGenerator(func() string {
			n++
			return fmt.Sprintf("id-%d", n)
		}).
		WithClock(func() time.Time {
			return time.Date(2025, 11, 10, 12, 0, 0, 0, time.UTC)
		})
}

func mustDispatch(t *testing.T, s *Store, a Action) (string, State) {
	t.Helper()
	id, next, err := s.Dispatch(a)
	if err != nil {
		t.Fatalf("dispatch %T: unexpected error: %v", a, err)
	}
	return id, next
}
