package views

import (
	"reflect"
	"testing"
)

func TestCompareQuotesByPrice(t *testing.T) {
	cmp := CompareQuotes(viewState(), "s1", SortByPrice)

	if got := ids(cmp); !reflect.DeepEqual(got, []string{"q2", "q3", "q1"}) {
		t.Fatalf("expected stable price order [q2 q3 q1] got %v", got)
	}
	// q2 and q3 tie on price; both carry the flag.
	if !cmp.Quotes[0].BestPrice || !cmp.Quotes[1].BestPrice {
		t.Fatalf("expected both tied quotes flagged best price")
	}
	if cmp.Quotes[2].BestPrice {
		t.Fatalf("q1 must not be flagged best price")
	}
	// q3 alone has the best lead time, regardless of sort key.
	for _, q := range cmp.Quotes {
		if q.BestLeadTime != (q.ID == "q3") {
			t.Fatalf("bad lead-time flag on %s", q.ID)
		}
	}
}

func TestCompareQuotesByLeadTime(t *testing.T) {
	cmp := CompareQuotes(viewState(), "s1", SortByLeadTime)
	if got := ids(cmp); !reflect.DeepEqual(got, []string{"q3", "q1", "q2"}) {
		t.Fatalf("expected lead-time order [q3 q1 q2] got %v", got)
	}
}

func TestCompareQuotesByRating(t *testing.T) {
	cmp := CompareQuotes(viewState(), "s1", SortByRating)
	if got := ids(cmp); !reflect.DeepEqual(got, []string{"q2", "q1", "q3"}) {
		t.Fatalf("expected rating order [q2 q1 q3] got %v", got)
	}
}

func TestCompareQuotesSummary(t *testing.T) {
	cmp := CompareQuotes(viewState(), "s1", SortByPrice)
	if cmp.Summary == nil {
		t.Fatalf("expected a summary for a quoted service")
	}
	if cmp.Summary.MinPrice != 12500 {
		t.Fatalf("expected min price 12500 got %v", cmp.Summary.MinPrice)
	}
	if cmp.Summary.MinLeadDays != 2 {
		t.Fatalf("expected min lead 2 got %d", cmp.Summary.MinLeadDays)
	}
	want := (4.5 + 4.8 + 4.2) / 3
	if cmp.Summary.MeanRating != want {
		t.Fatalf("expected mean rating %v got %v", want, cmp.Summary.MeanRating)
	}
}

func TestCompareQuotesEmptySet(t *testing.T) {
	cmp := CompareQuotes(viewState(), "s2", SortByPrice)
	if cmp.Summary != nil {
		t.Fatalf("expected nil summary for unquoted service, got %+v", cmp.Summary)
	}
	if len(cmp.Quotes) != 0 {
		t.Fatalf("expected no ranked quotes got %d", len(cmp.Quotes))
	}
}

func TestCompareQuotesIsPure(t *testing.T) {
	st := viewState()

	first := CompareQuotes(st, "s1", SortByLeadTime)
	second := CompareQuotes(st, "s1", SortByLeadTime)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated comparison over the same snapshot diverged")
	}
	// The snapshot's own quote order must survive the sort.
	if st.Quotes[0].ID != "q1" || st.Quotes[1].ID != "q2" {
		t.Fatalf("comparison reordered the snapshot: %v %v", st.Quotes[0].ID, st.Quotes[1].ID)
	}
}

func ids(cmp QuoteComparison) []string {
	out := make([]string, len(cmp.Quotes))
	for i, q := range cmp.Quotes {
		out[i] = q.ID
	}
	return out
}
