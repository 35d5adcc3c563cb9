package views

import (
	"reflect"
	"testing"

	"servimarket/market"
)

func TestAggregateDemandMergesByName(t *testing.T) {
	groups := AggregateDemand(viewState())

	// First appearance wins the display name and the group position.
	var names []string
	for _, g := range groups {
		names = append(names, g.Name)
	}
	if !reflect.DeepEqual(names, []string{"Cloro", "Fertilizante", "Algicida"}) {
		t.Fatalf("expected groups [Cloro Fertilizante Algicida] got %v", names)
	}

	cloro := groups[0]
	// "Cloro" from s1 and "cloro" from s2 merge case-insensitively; the
	// completed s3 contributes nothing.
	if cloro.TotalQuantity != 8 {
		t.Fatalf("expected total 8 got %v", cloro.TotalQuantity)
	}
	if len(cloro.Services) != 2 {
		t.Fatalf("expected 2 contributing services got %d", len(cloro.Services))
	}
	if cloro.Services[0].ServiceID != "s1" || cloro.Services[0].Quantity != 5 {
		t.Fatalf("unexpected first contribution: %+v", cloro.Services[0])
	}
	if cloro.Services[1].ServiceID != "s2" || cloro.Services[1].Quantity != 3 {
		t.Fatalf("unexpected second contribution: %+v", cloro.Services[1])
	}
	if cloro.Unit != "kg" {
		t.Fatalf("expected unit kg got %q", cloro.Unit)
	}
}

func TestAggregateDemandSkipsClosedServices(t *testing.T) {
	st := viewState()
	for i := range st.Services {
		st.Services[i].Status = market.StatusAssigned
	}
	if groups := AggregateDemand(st); len(groups) != 0 {
		t.Fatalf("expected no demand from closed services got %d groups", len(groups))
	}
}

func TestAggregateDemandIsDeterministic(t *testing.T) {
	st := viewState()
	first := AggregateDemand(st)
	second := AggregateDemand(st)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("aggregation over the same snapshot diverged")
	}
}

func TestMatchingSupplies(t *testing.T) {
	st := viewState()

	// Demand name contained in the catalog name.
	got := MatchingSupplies(st, "v1", "Cloro")
	if len(got) != 1 || got[0].ID != "sup1" {
		t.Fatalf("expected [sup1] got %+v", got)
	}

	// Catalog name contained in the demand name works too.
	got = MatchingSupplies(st, "v1", "cloro granulado premium")
	if len(got) != 1 || got[0].ID != "sup1" {
		t.Fatalf("expected containment in either direction, got %+v", got)
	}

	// Only the vendor's own catalog is searched.
	if got := MatchingSupplies(st, "v1", "Algicida"); len(got) != 0 {
		t.Fatalf("expected no matches outside the vendor's catalog, got %+v", got)
	}
}

func TestIsEquivalentChoice(t *testing.T) {
	sup := market.Supply{Name: "Cloro granulado"}
	if IsEquivalentChoice(sup, "cloro granulado") {
		t.Fatalf("case-only difference is not a substitution")
	}
	if !IsEquivalentChoice(sup, "Cloro") {
		t.Fatalf("different product name is a substitution")
	}
}
