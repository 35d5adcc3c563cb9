package market

// Eligibility predicates shared by the transitions and the presentation
// layer. The engine hard-enforces only the status windows; authorship and
// one-per-actor rules stay advisory, matching the original behaviour.

// QuoteWindowOpen reports whether a service still accepts quote
// submissions, edits and withdrawals. This is the single source of truth
// used by the submit, update and delete transitions.
func QuoteWindowOpen(s Status) bool {
	return s == StatusPublished || s == StatusUnderEvaluation
}

// CanModifyQuote reports whether a quote may still be edited or withdrawn,
// which depends only on its owning service's status. A quote whose service
// no longer resolves is frozen.
func (st State) CanModifyQuote(quoteID string) bool {
	quote, ok := st.QuoteByID(quoteID)
	if !ok {
		return false
	}
	svc, ok := st.ServiceByID(quote.ServiceID)
	if !ok {
		return false
	}
	return QuoteWindowOpen(svc.Status)
}

// CanQuote reports whether a user may bid on a service: service providers
// only, while the quote window is open.
func (st State) CanQuote(userID, serviceID string) bool {
	user, ok := st.UserByID(userID)
	if !ok || user.Role != RoleServiceProvider {
		return false
	}
	svc, ok := st.ServiceByID(serviceID)
	return ok && QuoteWindowOpen(svc.Status)
}

// CanOffer reports whether a user may propose supplies against a service:
// supply vendors only, while the service is still open for proposals.
func (st State) CanOffer(userID, serviceID string) bool {
	user, ok := st.UserByID(userID)
	if !ok || user.Role != RoleSupplyProvider {
		return false
	}
	svc, ok := st.ServiceByID(serviceID)
	return ok && QuoteWindowOpen(svc.Status)
}

// CanManageService reports whether a user may drive a service's lifecycle:
// the owning requester, until the service is completed.
func (st State) CanManageService(userID, serviceID string) bool {
	svc, ok := st.ServiceByID(serviceID)
	if !ok {
		return false
	}
	return svc.RequesterID == userID && svc.Status != StatusCompleted
}

// HasQuoted reports whether a provider already bid on a service. One quote
// per provider per service is the intended usage; the engine does not
// enforce it, callers gate on this predicate.
func (st State) HasQuoted(serviceID, providerID string) bool {
	for _, q := range st.Quotes {
		if q.ServiceID == serviceID && q.ProviderID == providerID {
			return true
		}
	}
	return false
}

// HasOffered reports whether a vendor already sent a supply offer for a
// service. Advisory, like HasQuoted.
func (st State) HasOffered(serviceID, vendorID string) bool {
	for _, o := range st.SupplyOffers {
		if o.ServiceID == serviceID && o.VendorID == vendorID {
			return true
		}
	}
	return false
}
