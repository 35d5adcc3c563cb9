// Package seed loads the startup fixture into a market.State. The fixture
// is JSON, checked against an embedded JSON Schema before decoding so a
// malformed dataset fails loudly at startup instead of surfacing later as
// odd marketplace behaviour.
package seed

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/qri-io/jsonschema"

	"servimarket/market"
)

//go:embed fixture.json
var defaultFixture []byte

//go:embed schema.json
var fixtureSchema []byte

// fileUser and friends mirror the fixture document. The domain structs in
// package market carry no JSON annotations, so the wire shapes live here.
type fileUser struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Password    string  `json:"password"`
	Role        string  `json:"role"`
	Rating      float64 `json:"rating"`
	RatingCount int     `json:"ratingCount"`
}

type fileRequiredSupply struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

type fileService struct {
	ID               string               `json:"id"`
	RequesterID      string               `json:"requesterId"`
	Title            string               `json:"title"`
	Description      string               `json:"description"`
	Category         string               `json:"category"`
	Address          string               `json:"address"`
	City             string               `json:"city"`
	PreferredDate    string               `json:"preferredDate"`
	RequiredSupplies []fileRequiredSupply `json:"requiredSupplies"`
	Status           string               `json:"status"`
	SelectedQuoteID  *string              `json:"selectedQuoteId,omitempty"`
	ProviderRating   *int                 `json:"providerRating,omitempty"`
	RatingComment    string               `json:"ratingComment,omitempty"`
	CreatedAt        time.Time            `json:"createdAt"`
}

type fileQuote struct {
	ID             string    `json:"id"`
	ServiceID      string    `json:"serviceId"`
	ProviderID     string    `json:"providerId"`
	Price          float64   `json:"price"`
	LeadDays       int       `json:"leadDays"`
	Detail         string    `json:"detail,omitempty"`
	ProviderRating float64   `json:"providerRating"`
	CreatedAt      time.Time `json:"createdAt"`
}

type fileSupply struct {
	ID        string  `json:"id"`
	VendorID  string  `json:"vendorId"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Unit      string  `json:"unit"`
	UnitPrice float64 `json:"unitPrice"`
	Stock     float64 `json:"stock"`
}

type fileOfferItem struct {
	SupplyID         string  `json:"supplyId"`
	Quantity         float64 `json:"quantity"`
	RequiredName     string  `json:"requiredName,omitempty"`
	IsEquivalent     bool    `json:"isEquivalent,omitempty"`
	EquivalenceNotes string  `json:"equivalenceNotes,omitempty"`
}

type fileSupplyOffer struct {
	ID              string          `json:"id"`
	ServiceID       string          `json:"serviceId"`
	VendorID        string          `json:"vendorId"`
	Items           []fileOfferItem `json:"items"`
	TotalPrice      float64         `json:"totalPrice"`
	OriginalPrice   *float64        `json:"originalPrice,omitempty"`
	IsPack          bool            `json:"isPack,omitempty"`
	PackDiscountPct int             `json:"packDiscountPct,omitempty"`
	Notes           string          `json:"notes,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
}

type fixtureFile struct {
	Users        []fileUser        `json:"users"`
	Services     []fileService     `json:"services"`
	Quotes       []fileQuote       `json:"quotes"`
	Supplies     []fileSupply      `json:"supplies"`
	SupplyOffers []fileSupplyOffer `json:"supplyOffers"`
}

// Default loads the embedded fixture.
func Default() (market.State, error) {
	return Parse(defaultFixture)
}

// Load reads a fixture from disk. An empty path falls back to the embedded
// dataset.
func Load(path string) (market.State, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return market.State{}, fmt.Errorf("seed: read fixture: %w", err)
	}
	return Parse(data)
}

// Parse validates raw fixture bytes against the schema and decodes them.
func Parse(data []byte) (market.State, error) {
	rs := &jsonschema.Schema{}
	if err := json.Unmarshal(fixtureSchema, rs); err != nil {
		return market.State{}, fmt.Errorf("seed: compile schema: %w", err)
	}
	keyErrs, err := rs.ValidateBytes(context.Background(), data)
	if err != nil {
		return market.State{}, fmt.Errorf("seed: validate fixture: %w", err)
	}
	if len(keyErrs) > 0 {
		return market.State{}, fmt.Errorf("seed: fixture violates schema: %s", keyErrs[0].Error())
	}

	var f fixtureFile
	if err := json.Unmarshal(data, &f); err != nil {
		return market.State{}, fmt.Errorf("seed: decode fixture: %w", err)
	}
	return f.toState(), nil
}

func (f fixtureFile) toState() market.State {
	st := market.State{}
	for _, u := range f.Users {
		st.Users = append(st.Users, market.User{
			ID:          u.ID,
			Name:        u.Name,
			Email:       u.Email,
			Password:    u.Password,
			Role:        market.Role(u.Role),
			Rating:      u.Rating,
			RatingCount: u.RatingCount,
		})
	}
	for _, s := range f.Services {
		svc := market.Service{
			ID:              s.ID,
			RequesterID:     s.RequesterID,
			Title:           s.Title,
			Description:     s.Description,
			Category:        market.Category(s.Category),
			Address:         s.Address,
			City:            s.City,
			PreferredDate:   s.PreferredDate,
			Status:          market.Status(s.Status),
			SelectedQuoteID: s.SelectedQuoteID,
			ProviderRating:  s.ProviderRating,
			RatingComment:   s.RatingComment,
			CreatedAt:       s.CreatedAt,
		}
		for _, rs := range s.RequiredSupplies {
			svc.RequiredSupplies = append(svc.RequiredSupplies, market.RequiredSupply{
				Name:     rs.Name,
				Quantity: rs.Quantity,
				Unit:     rs.Unit,
			})
		}
		st.Services = append(st.Services, svc)
	}
	for _, q := range f.Quotes {
		st.Quotes = append(st.Quotes, market.Quote{
			ID:             q.ID,
			ServiceID:      q.ServiceID,
			ProviderID:     q.ProviderID,
			Price:          q.Price,
			LeadDays:       q.LeadDays,
			Detail:         q.Detail,
			ProviderRating: q.ProviderRating,
			CreatedAt:      q.CreatedAt,
		})
	}
	for _, s := range f.Supplies {
		st.Supplies = append(st.Supplies, market.Supply{
			ID:        s.ID,
			VendorID:  s.VendorID,
			Name:      s.Name,
			Category:  s.Category,
			Unit:      s.Unit,
			UnitPrice: s.UnitPrice,
			Stock:     s.Stock,
		})
	}
	for _, o := range f.SupplyOffers {
		offer := market.SupplyOffer{
			ID:              o.ID,
			ServiceID:       o.ServiceID,
			VendorID:        o.VendorID,
			TotalPrice:      o.TotalPrice,
			OriginalPrice:   o.OriginalPrice,
			IsPack:          o.IsPack,
			PackDiscountPct: o.PackDiscountPct,
			Notes:           o.Notes,
			CreatedAt:       o.CreatedAt,
		}
		for _, it := range o.Items {
			offer.Items = append(offer.Items, market.OfferItem{
				SupplyID:         it.SupplyID,
				Quantity:         it.Quantity,
				RequiredName:     it.RequiredName,
				IsEquivalent:     it.IsEquivalent,
				EquivalenceNotes: it.EquivalenceNotes,
			})
		}
		st.SupplyOffers = append(st.SupplyOffers, offer)
	}
	return st
}
