package views

import "servimarket/market"

// RequesterStats summarises a requester's postings.
type RequesterStats struct {
	Services       int
	Assigned       int
	Completed      int
	QuotesReceived int
}

// ProviderStats summarises a service provider's bidding activity. Won
// counts services whose selected quote belongs to the provider.
type ProviderStats struct {
	QuotesSubmitted int
	QuotesWon       int
}

// VendorStats summarises a supply vendor's catalog and proposals.
type VendorStats struct {
	CatalogSize        int
	ServicesWithDemand int
	OffersSent         int
}

func RequesterStatsFor(st market.State, userID string) RequesterStats {
	var stats RequesterStats
	for _, svc := range st.Services {
		if svc.RequesterID != userID {
			continue
		}
		stats.Services++
		switch svc.Status {
		case market.StatusAssigned:
			stats.Assigned++
		case market.StatusCompleted:
			stats.Completed++
		}
		stats.QuotesReceived += len(st.QuotesForService(svc.ID))
	}
	return stats
}

func ProviderStatsFor(st market.State, userID string) ProviderStats {
	var stats ProviderStats
	mine := make(map[string]bool)
	for _, q := range st.Quotes {
		if q.ProviderID == userID {
			stats.QuotesSubmitted++
			mine[q.ID] = true
		}
	}
	for _, svc := range st.Services {
		if svc.SelectedQuoteID != nil && mine[*svc.SelectedQuoteID] {
			stats.QuotesWon++
		}
	}
	return stats
}

func VendorStatsFor(st market.State, userID string) VendorStats {
	stats := VendorStats{CatalogSize: len(st.SuppliesOfVendor(userID))}
	for _, svc := range st.Services {
		if market.QuoteWindowOpen(svc.Status) && len(svc.RequiredSupplies) > 0 {
			stats.ServicesWithDemand++
		}
	}
	for _, o := range st.SupplyOffers {
		if o.VendorID == userID {
			stats.OffersSent++
		}
	}
	return stats
}
