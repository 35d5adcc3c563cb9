package market

import "time"

type Role string

const (
	RoleRequester       Role = "REQUESTER"
	RoleServiceProvider Role = "SERVICE_PROVIDER"
	RoleSupplyProvider  Role = "SUPPLY_PROVIDER"
)

func (r Role) Valid() bool {
	switch r {
	case RoleRequester, RoleServiceProvider, RoleSupplyProvider:
		return true
	default:
		return false
	}
}

// Status is the service lifecycle state. Transitions are monotonic:
// PUBLISHED -> UNDER_EVALUATION -> ASSIGNED -> COMPLETED, where
// UNDER_EVALUATION may be skipped by a quote selection.
type Status string

const (
	StatusPublished       Status = "PUBLISHED"
	StatusUnderEvaluation Status = "UNDER_EVALUATION"
	StatusAssigned        Status = "ASSIGNED"
	StatusCompleted       Status = "COMPLETED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPublished, StatusUnderEvaluation, StatusAssigned, StatusCompleted:
		return true
	default:
		return false
	}
}

type Category string

const (
	CategoryGardening Category = "GARDENING"
	CategoryPools     Category = "POOLS"
	CategoryCleaning  Category = "CLEANING"
	CategoryOther     Category = "OTHER"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryGardening, CategoryPools, CategoryCleaning, CategoryOther:
		return true
	default:
		return false
	}
}

// User is the domain representation of a marketplace account. Rating and
// RatingCount are meaningful only for service providers and are mutated
// exclusively by the completion transition.
type User struct {
	ID          string
	Name        string
	Email       string
	Password    string
	Role        Role
	Rating      float64
	RatingCount int
}

// RequiredSupply is one line of a service's material requirements.
type RequiredSupply struct {
	Name     string
	Quantity float64
	Unit     string
}

// Service is a job posting owned by a requester. SelectedQuoteID is set once
// by the award transition and never changes afterwards; ProviderRating and
// RatingComment are set together with the COMPLETED status.
type Service struct {
	ID               string
	RequesterID      string
	Title            string
	Description      string
	Category         Category
	Address          string
	City             string
	PreferredDate    string
	RequiredSupplies []RequiredSupply
	Status           Status
	SelectedQuoteID  *string
	ProviderRating   *int
	RatingComment    string
	CreatedAt        time.Time
}

// Quote is a service provider's bid. ProviderRating is a snapshot of the
// provider's rating at submission time, not a live reference.
type Quote struct {
	ID             string
	ServiceID      string
	ProviderID     string
	Price          float64
	LeadDays       int
	Detail         string
	ProviderRating float64
	CreatedAt      time.Time
}

// Supply is a vendor's catalog entry.
type Supply struct {
	ID        string
	VendorID  string
	Name      string
	Category  string
	Unit      string
	UnitPrice float64
	Stock     float64
}

// OfferItem pairs a catalog supply with the required-supply line it covers.
// An equivalent substitute must carry non-empty substitution notes.
type OfferItem struct {
	SupplyID         string
	Quantity         float64
	RequiredName     string
	IsEquivalent     bool
	EquivalenceNotes string
}

// SupplyOffer is an immutable bundle proposed by a vendor against a
// service's requirements. When IsPack is true, TotalPrice is the vendor's
// custom pack price, OriginalPrice keeps the item sum and PackDiscountPct
// the derived discount; otherwise TotalPrice is the item sum.
type SupplyOffer struct {
	ID              string
	ServiceID       string
	VendorID        string
	Items           []OfferItem
	TotalPrice      float64
	OriginalPrice   *float64
	IsPack          bool
	PackDiscountPct int
	Notes           string
	CreatedAt       time.Time
}
