package views

import "servimarket/market"

// ResolvedOfferItem joins an offer item to its catalog supply and carries
// the per-item subtotal at the supply's current unit price.
type ResolvedOfferItem struct {
	Item     market.OfferItem
	Supply   market.Supply
	Subtotal float64
}

// ResolvedOffer is a supply offer with its items joined to the catalog.
// Items whose supply has since been deleted are dropped here, at render
// time; the stored offer keeps them.
type ResolvedOffer struct {
	Offer market.SupplyOffer
	Items []ResolvedOfferItem
}

// ResolveOffer joins one offer against the current catalog.
func ResolveOffer(st market.State, offer market.SupplyOffer) ResolvedOffer {
	out := ResolvedOffer{Offer: offer}
	for _, item := range offer.Items {
		sup, ok := st.SupplyByID(item.SupplyID)
		if !ok {
			continue
		}
		out.Items = append(out.Items, ResolvedOfferItem{
			Item:     item,
			Supply:   sup,
			Subtotal: sup.UnitPrice * item.Quantity,
		})
	}
	return out
}

// ResolveOffersForService resolves every offer referencing a service, in
// creation order.
func ResolveOffersForService(st market.State, serviceID string) []ResolvedOffer {
	var out []ResolvedOffer
	for _, offer := range st.OffersForService(serviceID) {
		out = append(out, ResolveOffer(st, offer))
	}
	return out
}
