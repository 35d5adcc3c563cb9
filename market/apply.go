package market

import (
	"math"
	"strings"
	"time"
)

// Reduce is the single transition entry point: it applies one action to a
// state and returns the next state plus the id of the entity the action
// touched. The input state is never mutated; on error the returned state is
// the zero value and the caller's state stands. newID supplies ids for
// create actions that arrive without one, now stamps creation times.
func Reduce(st State, a Action, newID func() string, now func() time.Time) (State, string, error) {
	next := st.Clone()
	id, err := apply(&next, a, newID, now)
	if err != nil {
		return State{}, "", err
	}
	return next, id, nil
}

func apply(st *State, a Action, newID func() string, now func() time.Time) (string, error) {
	switch act := a.(type) {
	case Login:
		return applyLogin(st, act)
	case Logout:
		st.CurrentUserID = ""
		return "", nil
	case CreateService:
		return applyCreateService(st, act, newID, now)
	case UpdateService:
		return applyUpdateService(st, act)
	case MarkUnderEvaluation:
		return applyMarkUnderEvaluation(st, act)
	case SelectQuote:
		return applySelectQuote(st, act)
	case CompleteService:
		return applyCompleteService(st, act)
	case SubmitQuote:
		return applySubmitQuote(st, act, newID, now)
	case UpdateQuote:
		return applyUpdateQuote(st, act)
	case DeleteQuote:
		return applyDeleteQuote(st, act)
	case CreateSupply:
		return applyCreateSupply(st, act, newID)
	case UpdateSupply:
		return applyUpdateSupply(st, act)
	case DeleteSupply:
		return applyDeleteSupply(st, act)
	case CreateSupplyOffer:
		return applyCreateSupplyOffer(st, act, newID, now)
	default:
		return "", invalidField("action", "type", "unknown action")
	}
}

func applyLogin(st *State, a Login) (string, error) {
	for _, u := range st.Users {
		if u.Email == a.Email && u.Password == a.Password {
			st.CurrentUserID = u.ID
			return u.ID, nil
		}
	}
	return "", ErrInvalidCredentials
}

func applyCreateService(st *State, a CreateService, newID func() string, now func() time.Time) (string, error) {
	if _, ok := findUser(st, a.RequesterID); !ok {
		return "", notFound("user", a.RequesterID)
	}
	if err := validateServiceFields(a.Title, a.Description, a.Category, a.Address, a.City, a.PreferredDate, a.RequiredSupplies); err != nil {
		return "", err
	}
	id := a.ID
	if id == "" {
		id = newID()
	} else if _, ok := findService(st, id); ok {
		return "", invalidField("service", "id", "id already in use")
	}
	st.Services = append(st.Services, Service{
		ID:               id,
		RequesterID:      a.RequesterID,
		Title:            a.Title,
		Description:      a.Description,
		Category:         a.Category,
		Address:          a.Address,
		City:             a.City,
		PreferredDate:    a.PreferredDate,
		RequiredSupplies: append([]RequiredSupply(nil), a.RequiredSupplies...),
		Status:           StatusPublished,
		CreatedAt:        now(),
	})
	return id, nil
}

func applyUpdateService(st *State, a UpdateService) (string, error) {
	svc, ok := findService(st, a.ID)
	if !ok {
		return "", notFound("service", a.ID)
	}
	if svc.Status == StatusCompleted {
		return "", ineligible("service", a.ID, svc.Status)
	}
	if err := validateServiceFields(a.Title, a.Description, a.Category, a.Address, a.City, a.PreferredDate, a.RequiredSupplies); err != nil {
		return "", err
	}
	svc.Title = a.Title
	svc.Description = a.Description
	svc.Category = a.Category
	svc.Address = a.Address
	svc.City = a.City
	svc.PreferredDate = a.PreferredDate
	svc.RequiredSupplies = append([]RequiredSupply(nil), a.RequiredSupplies...)
	return a.ID, nil
}

func applyMarkUnderEvaluation(st *State, a MarkUnderEvaluation) (string, error) {
	svc, ok := findService(st, a.ServiceID)
	if !ok {
		return "", notFound("service", a.ServiceID)
	}
	if svc.Status != StatusPublished {
		return "", ineligible("service", a.ServiceID, svc.Status)
	}
	svc.Status = StatusUnderEvaluation
	return a.ServiceID, nil
}

func applySelectQuote(st *State, a SelectQuote) (string, error) {
	svc, ok := findService(st, a.ServiceID)
	if !ok {
		return "", notFound("service", a.ServiceID)
	}
	quote, ok := findQuote(st, a.QuoteID)
	if !ok {
		return "", notFound("quote", a.QuoteID)
	}
	if quote.ServiceID != a.ServiceID {
		return "", invalidField("quote", "serviceId", "quote does not reference this service")
	}
	if svc.Status == StatusAssigned || svc.Status == StatusCompleted {
		return "", ineligible("service", a.ServiceID, svc.Status)
	}
	id := a.QuoteID
	svc.Status = StatusAssigned
	svc.SelectedQuoteID = &id
	return a.ServiceID, nil
}

func applyCompleteService(st *State, a CompleteService) (string, error) {
	svc, ok := findService(st, a.ServiceID)
	if !ok {
		return "", notFound("service", a.ServiceID)
	}
	if svc.Status != StatusAssigned {
		return "", ineligible("service", a.ServiceID, svc.Status)
	}
	if a.Rating < 1 || a.Rating > 5 {
		return "", invalidField("service", "rating", "rating must be between 1 and 5")
	}
	if svc.SelectedQuoteID == nil {
		return "", notFound("quote", "")
	}
	quote, ok := findQuote(st, *svc.SelectedQuoteID)
	if !ok {
		return "", notFound("quote", *svc.SelectedQuoteID)
	}
	provider, ok := findUser(st, quote.ProviderID)
	if !ok {
		return "", notFound("user", quote.ProviderID)
	}

	// Both writes land in the same clone, so the completion and the rating
	// update are observed together or not at all.
	provider.Rating, provider.RatingCount = NextRating(provider.Rating, provider.RatingCount, a.Rating)
	rating := a.Rating
	svc.Status = StatusCompleted
	svc.ProviderRating = &rating
	svc.RatingComment = a.Comment
	return a.ServiceID, nil
}

func applySubmitQuote(st *State, a SubmitQuote, newID func() string, now func() time.Time) (string, error) {
	if a.Price <= 0 {
		return "", invalidField("quote", "price", "price must be greater than 0")
	}
	if a.LeadDays <= 0 {
		return "", invalidField("quote", "leadDays", "lead time must be greater than 0")
	}
	svc, ok := findService(st, a.ServiceID)
	if !ok {
		return "", notFound("service", a.ServiceID)
	}
	if !QuoteWindowOpen(svc.Status) {
		return "", ineligible("service", a.ServiceID, svc.Status)
	}
	provider, ok := findUser(st, a.ProviderID)
	if !ok {
		return "", notFound("user", a.ProviderID)
	}
	id := a.ID
	if id == "" {
		id = newID()
	} else if _, ok := findQuote(st, id); ok {
		return "", invalidField("quote", "id", "id already in use")
	}
	st.Quotes = append(st.Quotes, Quote{
		ID:             id,
		ServiceID:      a.ServiceID,
		ProviderID:     a.ProviderID,
		Price:          a.Price,
		LeadDays:       a.LeadDays,
		Detail:         a.Detail,
		ProviderRating: provider.Rating,
		CreatedAt:      now(),
	})
	return id, nil
}

func applyUpdateQuote(st *State, a UpdateQuote) (string, error) {
	quote, ok := findQuote(st, a.ID)
	if !ok {
		return "", notFound("quote", a.ID)
	}
	svc, ok := findService(st, quote.ServiceID)
	if !ok {
		return "", notFound("service", quote.ServiceID)
	}
	if !QuoteWindowOpen(svc.Status) {
		return "", ineligible("service", svc.ID, svc.Status)
	}
	if a.Price <= 0 {
		return "", invalidField("quote", "price", "price must be greater than 0")
	}
	if a.LeadDays <= 0 {
		return "", invalidField("quote", "leadDays", "lead time must be greater than 0")
	}
	quote.Price = a.Price
	quote.LeadDays = a.LeadDays
	quote.Detail = a.Detail
	return a.ID, nil
}

func applyDeleteQuote(st *State, a DeleteQuote) (string, error) {
	idx := -1
	for i := range st.Quotes {
		if st.Quotes[i].ID == a.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return "", notFound("quote", a.ID)
	}
	svc, ok := findService(st, st.Quotes[idx].ServiceID)
	if !ok {
		return "", notFound("service", st.Quotes[idx].ServiceID)
	}
	if !QuoteWindowOpen(svc.Status) {
		return "", ineligible("service", svc.ID, svc.Status)
	}
	st.Quotes = append(st.Quotes[:idx], st.Quotes[idx+1:]...)
	return a.ID, nil
}

func applyCreateSupply(st *State, a CreateSupply, newID func() string) (string, error) {
	if _, ok := findUser(st, a.VendorID); !ok {
		return "", notFound("user", a.VendorID)
	}
	if err := validateSupplyFields(a.Name, a.Category, a.Unit, a.UnitPrice, a.Stock); err != nil {
		return "", err
	}
	id := a.ID
	if id == "" {
		id = newID()
	} else if _, ok := findSupply(st, id); ok {
		return "", invalidField("supply", "id", "id already in use")
	}
	st.Supplies = append(st.Supplies, Supply{
		ID:        id,
		VendorID:  a.VendorID,
		Name:      a.Name,
		Category:  a.Category,
		Unit:      a.Unit,
		UnitPrice: a.UnitPrice,
		Stock:     a.Stock,
	})
	return id, nil
}

func applyUpdateSupply(st *State, a UpdateSupply) (string, error) {
	sup, ok := findSupply(st, a.ID)
	if !ok {
		return "", notFound("supply", a.ID)
	}
	if err := validateSupplyFields(a.Name, a.Category, a.Unit, a.UnitPrice, a.Stock); err != nil {
		return "", err
	}
	sup.Name = a.Name
	sup.Category = a.Category
	sup.Unit = a.Unit
	sup.UnitPrice = a.UnitPrice
	sup.Stock = a.Stock
	return a.ID, nil
}

func applyDeleteSupply(st *State, a DeleteSupply) (string, error) {
	idx := -1
	for i := range st.Supplies {
		if st.Supplies[i].ID == a.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return "", notFound("supply", a.ID)
	}
	// No cascade: offers referencing this supply keep their item lines and
	// the read side drops the orphans.
	st.Supplies = append(st.Supplies[:idx], st.Supplies[idx+1:]...)
	return a.ID, nil
}

func applyCreateSupplyOffer(st *State, a CreateSupplyOffer, newID func() string, now func() time.Time) (string, error) {
	if _, ok := findService(st, a.ServiceID); !ok {
		return "", notFound("service", a.ServiceID)
	}
	if _, ok := findUser(st, a.VendorID); !ok {
		return "", notFound("user", a.VendorID)
	}
	if len(a.Items) == 0 {
		return "", invalidField("supplyOffer", "items", "at least one item is required")
	}

	// Validation order per contract: ownership, stock, substitution notes.
	for _, item := range a.Items {
		sup, ok := findSupply(st, item.SupplyID)
		if !ok {
			return "", notFound("supply", item.SupplyID)
		}
		if sup.VendorID != a.VendorID {
			return "", invalidField("supplyOffer", "items", "supply "+item.SupplyID+" is not owned by the vendor")
		}
		if item.Quantity <= 0 {
			return "", invalidField("supplyOffer", "quantity", "quantity must be greater than 0")
		}
	}
	for _, item := range a.Items {
		sup, _ := findSupply(st, item.SupplyID)
		if item.Quantity > sup.Stock {
			return "", &Error{Kind: KindInsufficientStock, Entity: "supply", ID: item.SupplyID, Reason: "offered quantity exceeds recorded stock"}
		}
	}
	for _, item := range a.Items {
		if item.IsEquivalent && strings.TrimSpace(item.EquivalenceNotes) == "" {
			return "", invalidField("supplyOffer", "equivalenceNotes", "equivalent substitutes need substitution notes")
		}
	}

	sum := 0.0
	for _, item := range a.Items {
		sup, _ := findSupply(st, item.SupplyID)
		sum += sup.UnitPrice * item.Quantity
	}

	offer := SupplyOffer{
		ServiceID:  a.ServiceID,
		VendorID:   a.VendorID,
		Items:      append([]OfferItem(nil), a.Items...),
		TotalPrice: sum,
		Notes:      a.Notes,
		CreatedAt:  now(),
	}
	if a.PackPrice != nil {
		if *a.PackPrice <= 0 {
			return "", invalidField("supplyOffer", "packPrice", "pack price must be greater than 0")
		}
		original := sum
		offer.TotalPrice = *a.PackPrice
		offer.OriginalPrice = &original
		offer.IsPack = true
		offer.PackDiscountPct = int(math.Round((original - *a.PackPrice) / original * 100))
	}

	id := a.ID
	if id == "" {
		id = newID()
	} else if _, ok := st.SupplyOfferByID(id); ok {
		return "", invalidField("supplyOffer", "id", "id already in use")
	}
	offer.ID = id
	st.SupplyOffers = append(st.SupplyOffers, offer)
	return id, nil
}

func validateServiceFields(title, description string, category Category, address, city, preferredDate string, supplies []RequiredSupply) error {
	switch {
	case strings.TrimSpace(title) == "":
		return invalidField("service", "title", "title is required")
	case strings.TrimSpace(description) == "":
		return invalidField("service", "description", "description is required")
	case !category.Valid():
		return invalidField("service", "category", "unknown category")
	case strings.TrimSpace(address) == "":
		return invalidField("service", "address", "address is required")
	case strings.TrimSpace(city) == "":
		return invalidField("service", "city", "city is required")
	case strings.TrimSpace(preferredDate) == "":
		return invalidField("service", "preferredDate", "preferred date is required")
	}
	if len(supplies) == 0 {
		return invalidField("service", "requiredSupplies", "at least one required supply line is needed")
	}
	for _, rs := range supplies {
		if strings.TrimSpace(rs.Name) == "" {
			return invalidField("service", "requiredSupplies", "supply name is required")
		}
		if rs.Quantity <= 0 {
			return invalidField("service", "requiredSupplies", "supply quantity must be greater than 0")
		}
		if strings.TrimSpace(rs.Unit) == "" {
			return invalidField("service", "requiredSupplies", "supply unit is required")
		}
	}
	return nil
}

func validateSupplyFields(name, category, unit string, unitPrice, stock float64) error {
	switch {
	case strings.TrimSpace(name) == "":
		return invalidField("supply", "name", "name is required")
	case strings.TrimSpace(category) == "":
		return invalidField("supply", "category", "category is required")
	case strings.TrimSpace(unit) == "":
		return invalidField("supply", "unit", "unit is required")
	case unitPrice <= 0:
		return invalidField("supply", "unitPrice", "unit price must be greater than 0")
	case stock < 0:
		return invalidField("supply", "stock", "stock must be 0 or greater")
	}
	return nil
}

func findUser(st *State, id string) (*User, bool) {
	for i := range st.Users {
		if st.Users[i].ID == id {
			return &st.Users[i], true
		}
	}
	return nil, false
}

func findService(st *State, id string) (*Service, bool) {
	for i := range st.Services {
		if st.Services[i].ID == id {
			return &st.Services[i], true
		}
	}
	return nil, false
}

func findQuote(st *State, id string) (*Quote, bool) {
	for i := range st.Quotes {
		if st.Quotes[i].ID == id {
			return &st.Quotes[i], true
		}
	}
	return nil, false
}

func findSupply(st *State, id string) (*Supply, bool) {
	for i := range st.Supplies {
		if st.Supplies[i].ID == id {
			return &st.Supplies[i], true
		}
	}
	return nil, false
}
