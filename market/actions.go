package market

// Action is the closed vocabulary of transitions accepted by the store.
// Each record names the transition and carries its required fields; anything
// outside this set is rejected by the reducer.
type Action interface {
	isAction()
}

// Login matches email and password by exact equality and points the session
// at the matched user.
type Login struct {
	Email    string
	Password string
}

// Logout unconditionally clears the session pointer.
type Logout struct{}

// CreateService publishes a new job posting. ID may be left empty to have
// the store assign one from its generator.
type CreateService struct {
	ID               string
	RequesterID      string
	Title            string
	Description      string
	Category         Category
	Address          string
	City             string
	PreferredDate    string
	RequiredSupplies []RequiredSupply
}

// UpdateService edits the descriptive fields of an existing posting. Status
// never changes through this action.
type UpdateService struct {
	ID               string
	Title            string
	Description      string
	Category         Category
	Address          string
	City             string
	PreferredDate    string
	RequiredSupplies []RequiredSupply
}

// MarkUnderEvaluation moves a PUBLISHED service into UNDER_EVALUATION.
type MarkUnderEvaluation struct {
	ServiceID string
}

// SelectQuote awards a service to one quote: sets ASSIGNED and the selected
// quote id in a single step. The first selection is final.
type SelectQuote struct {
	ServiceID string
	QuoteID   string
}

// CompleteService closes an ASSIGNED service, attaching the rating and
// comment and folding the rating into the awarded provider's running
// average. The two updates are one transition.
type CompleteService struct {
	ServiceID string
	Rating    int
	Comment   string
}

// SubmitQuote records a provider's bid while the service still accepts
// quotes. The provider's current rating is captured as a snapshot.
type SubmitQuote struct {
	ID         string
	ServiceID  string
	ProviderID string
	Price      float64
	LeadDays   int
	Detail     string
}

// UpdateQuote edits a bid while its service still accepts quotes.
type UpdateQuote struct {
	ID       string
	Price    float64
	LeadDays int
	Detail   string
}

// DeleteQuote withdraws a bid while its service still accepts quotes.
type DeleteQuote struct {
	ID string
}

// CreateSupply adds a catalog entry for a vendor.
type CreateSupply struct {
	ID        string
	VendorID  string
	Name      string
	Category  string
	Unit      string
	UnitPrice float64
	Stock     float64
}

// UpdateSupply edits a catalog entry.
type UpdateSupply struct {
	ID        string
	Name      string
	Category  string
	Unit      string
	UnitPrice float64
	Stock     float64
}

// DeleteSupply removes a catalog entry. Offers that reference it keep their
// item lines; the read side filters the orphans.
type DeleteSupply struct {
	ID string
}

// CreateSupplyOffer records an immutable supply bundle against a service.
// A non-nil PackPrice replaces the item sum as the total; the sum is kept as
// the original price and a discount percentage is derived from the two.
type CreateSupplyOffer struct {
	ID        string
	ServiceID string
	VendorID  string
	Items     []OfferItem
	Notes     string
	PackPrice *float64
}

func (Login) isAction()               {}
func (Logout) isAction()              {}
func (CreateService) isAction()       {}
func (UpdateService) isAction()       {}
func (MarkUnderEvaluation) isAction() {}
func (SelectQuote) isAction()         {}
func (CompleteService) isAction()     {}
func (SubmitQuote) isAction()         {}
func (UpdateQuote) isAction()         {}
func (DeleteQuote) isAction()         {}
func (CreateSupply) isAction()        {}
func (UpdateSupply) isAction()        {}
func (DeleteSupply) isAction()        {}
func (CreateSupplyOffer) isAction()   {}
