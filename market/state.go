package market

// State holds the five entity collections plus the active-session pointer.
// Collections keep insertion order; cross-entity relationships are id
// references resolved by lookup, never shared pointers, so cloning a State
// detaches it completely.
type State struct {
	Users         []User
	Services      []Service
	Quotes        []Quote
	Supplies      []Supply
	SupplyOffers  []SupplyOffer
	CurrentUserID string
}

// Clone returns a deep copy. Nested slices and the nullable pointer fields
// get fresh backing storage.
func (st State) Clone() State {
	out := State{
		Users:         make([]User, len(st.Users)),
		Services:      make([]Service, len(st.Services)),
		Quotes:        make([]Quote, len(st.Quotes)),
		Supplies:      make([]Supply, len(st.Supplies)),
		SupplyOffers:  make([]SupplyOffer, len(st.SupplyOffers)),
		CurrentUserID: st.CurrentUserID,
	}
	copy(out.Users, st.Users)
	copy(out.Quotes, st.Quotes)
	copy(out.Supplies, st.Supplies)
	for i, s := range st.Services {
		out.Services[i] = cloneService(s)
	}
	for i, o := range st.SupplyOffers {
		out.SupplyOffers[i] = cloneOffer(o)
	}
	return out
}

func cloneService(s Service) Service {
	if s.RequiredSupplies != nil {
		req := make([]RequiredSupply, len(s.RequiredSupplies))
		copy(req, s.RequiredSupplies)
		s.RequiredSupplies = req
	}
	if s.SelectedQuoteID != nil {
		id := *s.SelectedQuoteID
		s.SelectedQuoteID = &id
	}
	if s.ProviderRating != nil {
		r := *s.ProviderRating
		s.ProviderRating = &r
	}
	return s
}

func cloneOffer(o SupplyOffer) SupplyOffer {
	if o.Items != nil {
		items := make([]OfferItem, len(o.Items))
		copy(items, o.Items)
		o.Items = items
	}
	if o.OriginalPrice != nil {
		p := *o.OriginalPrice
		o.OriginalPrice = &p
	}
	return o
}

// CurrentUser resolves the session pointer. ok is false when nobody is
// signed in or the pointed-at user no longer resolves.
func (st State) CurrentUser() (User, bool) {
	if st.CurrentUserID == "" {
		return User{}, false
	}
	return st.UserByID(st.CurrentUserID)
}

func (st State) UserByID(id string) (User, bool) {
	for _, u := range st.Users {
		if u.ID == id {
			return u, true
		}
	}
	return User{}, false
}

func (st State) UserByEmail(email string) (User, bool) {
	for _, u := range st.Users {
		if u.Email == email {
			return u, true
		}
	}
	return User{}, false
}

func (st State) ServiceByID(id string) (Service, bool) {
	for _, s := range st.Services {
		if s.ID == id {
			return cloneService(s), true
		}
	}
	return Service{}, false
}

func (st State) QuoteByID(id string) (Quote, bool) {
	for _, q := range st.Quotes {
		if q.ID == id {
			return q, true
		}
	}
	return Quote{}, false
}

func (st State) SupplyByID(id string) (Supply, bool) {
	for _, s := range st.Supplies {
		if s.ID == id {
			return s, true
		}
	}
	return Supply{}, false
}

func (st State) SupplyOfferByID(id string) (SupplyOffer, bool) {
	for _, o := range st.SupplyOffers {
		if o.ID == id {
			return cloneOffer(o), true
		}
	}
	return SupplyOffer{}, false
}

// QuotesForService returns the quotes referencing a service, in submission
// order.
func (st State) QuotesForService(serviceID string) []Quote {
	var out []Quote
	for _, q := range st.Quotes {
		if q.ServiceID == serviceID {
			out = append(out, q)
		}
	}
	return out
}

// OffersForService returns the supply offers referencing a service, in
// creation order.
func (st State) OffersForService(serviceID string) []SupplyOffer {
	var out []SupplyOffer
	for _, o := range st.SupplyOffers {
		if o.ServiceID == serviceID {
			out = append(out, cloneOffer(o))
		}
	}
	return out
}

// SuppliesOfVendor returns a vendor's catalog in creation order.
func (st State) SuppliesOfVendor(vendorID string) []Supply {
	var out []Supply
	for _, s := range st.Supplies {
		if s.VendorID == vendorID {
			out = append(out, s)
		}
	}
	return out
}
