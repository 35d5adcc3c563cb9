// Package views holds the pure read-side derivations over a market.State
// snapshot: quote comparison, demand aggregation, dashboards and the small
// lookup helpers the presentation layer renders from. Nothing in here
// mutates state or caches results.
package views

import (
	"sort"

	"servimarket/market"
)

// SortKey selects the comparator ordering.
type SortKey string

const (
	SortByPrice    SortKey = "price"
	SortByLeadTime SortKey = "time"
	SortByRating   SortKey = "rating"
)

// RankedQuote is a quote annotated with best-of flags. Ties are all
// flagged.
type RankedQuote struct {
	market.Quote
	BestPrice    bool
	BestLeadTime bool
}

// QuoteSummary aggregates a non-empty quote set. It is absent (nil in
// QuoteComparison) when the service has no quotes, which is distinct from
// zero values.
type QuoteSummary struct {
	MinPrice    float64
	MinLeadDays int
	MeanRating  float64
}

// QuoteComparison is the comparator output for one service.
type QuoteComparison struct {
	Quotes  []RankedQuote
	Summary *QuoteSummary
}

// CompareQuotes ranks the quotes of a single service. The sort is stable,
// so equal keys keep submission order; a missing provider rating counts
// as 0 when sorting by rating.
func CompareQuotes(st market.State, serviceID string, key SortKey) QuoteComparison {
	quotes := st.QuotesForService(serviceID)
	if len(quotes) == 0 {
		return QuoteComparison{}
	}

	summary := &QuoteSummary{
		MinPrice:    quotes[0].Price,
		MinLeadDays: quotes[0].LeadDays,
	}
	ratingSum := 0.0
	for _, q := range quotes {
		if q.Price < summary.MinPrice {
			summary.MinPrice = q.Price
		}
		if q.LeadDays < summary.MinLeadDays {
			summary.MinLeadDays = q.LeadDays
		}
		ratingSum += q.ProviderRating
	}
	summary.MeanRating = ratingSum / float64(len(quotes))

	ranked := make([]RankedQuote, len(quotes))
	for i, q := range quotes {
		ranked[i] = RankedQuote{
			Quote:        q,
			BestPrice:    q.Price == summary.MinPrice,
			BestLeadTime: q.LeadDays == summary.MinLeadDays,
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		switch key {
		case SortByLeadTime:
			return ranked[i].LeadDays < ranked[j].LeadDays
		case SortByRating:
			return ranked[i].ProviderRating > ranked[j].ProviderRating
		default:
			return ranked[i].Price < ranked[j].Price
		}
	})

	return QuoteComparison{Quotes: ranked, Summary: summary}
}
