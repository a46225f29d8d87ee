package offer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calvine/marketplace-mcp/internal/domain/offer"
)

func boolPtr(b bool) *bool        { return &b }
func intPtr(i int) *int           { return &i }
func floatPtr(f float64) *float64 { return &f }

// sampleOffers mirrors the curated fallback set: four featured brands, one
// car-care network member, six offers total.
func sampleOffers() []offer.Offer {
	return []offer.Offer{
		{
			OfferID: "o-ashley", Title: "Ashley Furniture — 12 Months Promotional Financing",
			OfferType: &offer.OfferType{Name: "FINANCING OFFERS"},
			Brand: &offer.Brand{
				Name: "Ashley", Featured: true,
				Industry: []offer.Industry{{Name: "FURNITURE"}},
				Network:  &offer.Network{Name: "SYF HOME"},
				Region:   []string{"NATIONAL"},
			},
		},
		{
			OfferID: "o-samsung", Title: "Samsung — Save on Appliance Bundles",
			OfferType: &offer.OfferType{Name: "DEALS"},
			Brand: &offer.Brand{
				Name: "Samsung", Featured: true,
				Industry: []offer.Industry{{Name: "ELECTRONICS"}, {Name: "APPLIANCES"}},
				Network:  &offer.Network{Name: "SYNCHRONY MARKETPLACE"},
				Region:   []string{"NATIONAL"},
			},
		},
		{
			OfferID: "o-bestbuy", Title: "Best Buy — 18 Month Financing on Major Purchases",
			OfferType: &offer.OfferType{Name: "FINANCING OFFERS"},
			Brand: &offer.Brand{
				Name: "Best Buy", Featured: true,
				Industry: []offer.Industry{{Name: "ELECTRONICS"}},
				Network:  &offer.Network{Name: "SYNCHRONY MARKETPLACE"},
				Region:   []string{"NATIONAL"},
			},
		},
		{
			OfferID: "o-lowes", Title: "Lowe's — 5% Off Every Day",
			OfferType: &offer.OfferType{Name: "EVERYDAY VALUE"},
			Brand: &offer.Brand{
				Name: "Lowe's", Featured: true,
				Industry: []offer.Industry{{Name: "HOME IMPROVEMENT"}},
				Network:  &offer.Network{Name: "SYF HOME"},
				Region:   []string{"NATIONAL"},
			},
		},
		{
			OfferID: "o-expressoil", Title: "Express Oil Change & Tire Engineers — Service Savings",
			OfferType: &offer.OfferType{Name: "EVERYDAY VALUE"},
			Brand: &offer.Brand{
				Name: "Express Oil Change & Tire Engineers", Featured: false,
				Industry: []offer.Industry{{Name: "AUTOMOTIVE"}},
				Network:  &offer.Network{Name: "SYF CAR CARE"},
				Region:   []string{"SOUTHEAST", "MIDWEST"},
			},
		},
		{
			OfferID: "o-mattressfirm", Title: "Mattress Firm — Seasonal Sleep Sale",
			OfferType: &offer.OfferType{Name: "DEALS"},
			Brand: &offer.Brand{
				Name: "Mattress Firm", Featured: false,
				Industry: []offer.Industry{{Name: "MATTRESS & BEDDING"}},
				Network:  &offer.Network{Name: "SYF HOME"},
				Region:   []string{"NATIONAL"},
			},
		},
	}
}

func ids(offers []offer.Offer) []string {
	out := make([]string, 0, len(offers))
	for _, o := range offers {
		out = append(out, o.OfferID)
	}
	return out
}

func TestApply_NoFilters(t *testing.T) {
	candidates := sampleOffers()
	got := offer.Apply(candidates, offer.FilterQuery{})
	assert.Equal(t, ids(candidates), ids(got), "empty query returns everything in order")
}

func TestApply_Stages(t *testing.T) {
	tests := []struct {
		name    string
		query   offer.FilterQuery
		wantIDs []string
	}{
		{
			name:    "featured true matches the four featured brands",
			query:   offer.FilterQuery{Featured: boolPtr(true)},
			wantIDs: []string{"o-ashley", "o-samsung", "o-bestbuy", "o-lowes"},
		},
		{
			name:    "featured false matches the two non-featured brands",
			query:   offer.FilterQuery{Featured: boolPtr(false)},
			wantIDs: []string{"o-expressoil", "o-mattressfirm"},
		},
		{
			name:    "car care network matches exactly one offer",
			query:   offer.FilterQuery{Network: []string{"SYF CAR CARE"}},
			wantIDs: []string{"o-expressoil"},
		},
		{
			name:    "network match is case-insensitive",
			query:   offer.FilterQuery{Network: []string{"syf car care"}},
			wantIDs: []string{"o-expressoil"},
		},
		{
			name:    "jewelry industry matches nothing",
			query:   offer.FilterQuery{Industry: []string{"JEWELRY"}},
			wantIDs: []string{},
		},
		{
			name:    "industry is exact equality, not substring",
			query:   offer.FilterQuery{Industry: []string{"HOME"}},
			wantIDs: []string{},
		},
		{
			name:    "multiple industries union within the stage",
			query:   offer.FilterQuery{Industry: []string{"FURNITURE", "AUTOMOTIVE"}},
			wantIDs: []string{"o-ashley", "o-expressoil"},
		},
		{
			name:    "brand substring matches one offer",
			query:   offer.FilterQuery{Brand: "best"},
			wantIDs: []string{"o-bestbuy"},
		},
		{
			name:    "offer type filter",
			query:   offer.FilterQuery{OfferType: []string{"financing offers"}},
			wantIDs: []string{"o-ashley", "o-bestbuy"},
		},
		{
			name:    "region filter matches any listed region",
			query:   offer.FilterQuery{Region: "midwest"},
			wantIDs: []string{"o-expressoil"},
		},
		{
			name:    "category substring spans industry, brand and title",
			query:   offer.FilterQuery{Category: " electronics "},
			wantIDs: []string{"o-samsung", "o-bestbuy"},
		},
		{
			name:    "category matches brand name too",
			query:   offer.FilterQuery{Category: "lowe"},
			wantIDs: []string{"o-lowes"},
		},
		{
			name: "filters AND together",
			query: offer.FilterQuery{
				Industry: []string{"ELECTRONICS"},
				Featured: boolPtr(true),
				Network:  []string{"SYNCHRONY MARKETPLACE"},
			},
			wantIDs: []string{"o-samsung", "o-bestbuy"},
		},
		{
			name: "conflicting filters yield empty",
			query: offer.FilterQuery{
				Industry: []string{"AUTOMOTIVE"},
				Featured: boolPtr(true),
			},
			wantIDs: []string{},
		},
		{
			name:    "offset beyond length yields empty page",
			query:   offer.FilterQuery{Offset: intPtr(10), LimitOffersCount: intPtr(5)},
			wantIDs: []string{},
		},
		{
			name:    "offset plus limit slices the middle",
			query:   offer.FilterQuery{Offset: intPtr(1), LimitOffersCount: intPtr(2)},
			wantIDs: []string{"o-samsung", "o-bestbuy"},
		},
		{
			name:    "limit larger than remainder returns the remainder",
			query:   offer.FilterQuery{Offset: intPtr(4), LimitOffersCount: intPtr(10)},
			wantIDs: []string{"o-expressoil", "o-mattressfirm"},
		},
		{
			name:    "pagination runs after filtering",
			query:   offer.FilterQuery{Featured: boolPtr(true), Offset: intPtr(2)},
			wantIDs: []string{"o-bestbuy", "o-lowes"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := offer.Apply(sampleOffers(), tt.query)
			assert.Equal(t, tt.wantIDs, ids(got))
		})
	}
}

func TestApply_Deterministic(t *testing.T) {
	candidates := sampleOffers()
	q := offer.FilterQuery{Featured: boolPtr(true), Network: []string{"SYF HOME"}}

	first := offer.Apply(candidates, q)
	second := offer.Apply(candidates, q)
	assert.Equal(t, first, second)
}

func TestApply_ANDComposition(t *testing.T) {
	// Applying combined filters equals intersecting separate applications.
	candidates := sampleOffers()
	q1 := offer.FilterQuery{Featured: boolPtr(true)}
	q2 := offer.FilterQuery{Network: []string{"SYF HOME"}}
	combined := offer.FilterQuery{Featured: boolPtr(true), Network: []string{"SYF HOME"}}

	inQ2 := make(map[string]bool)
	for _, id := range ids(offer.Apply(candidates, q2)) {
		inQ2[id] = true
	}
	var intersection []string
	for _, id := range ids(offer.Apply(candidates, q1)) {
		if inQ2[id] {
			intersection = append(intersection, id)
		}
	}

	assert.Equal(t, intersection, ids(offer.Apply(candidates, combined)))
}

func TestApply_AbsenceSafety(t *testing.T) {
	// A brand-less (and type-less) offer is excluded by every dependent
	// filter, for any query value, without panicking.
	bare := offer.Offer{OfferID: "o-bare", Title: "Standalone Deal"}
	candidates := []offer.Offer{bare}

	queries := []offer.FilterQuery{
		{Industry: []string{"FURNITURE"}},
		{Region: "NATIONAL"},
		{Network: []string{"SYF HOME"}},
		{Brand: "standalone"},
		{Featured: boolPtr(true)},
		{Featured: boolPtr(false)},
		{OfferType: []string{"DEALS"}},
	}
	for _, q := range queries {
		require.NotPanics(t, func() {
			assert.Empty(t, offer.Apply(candidates, q))
		})
	}

	// Category still reaches the title even without a brand.
	got := offer.Apply(candidates, offer.FilterQuery{Category: "standalone"})
	assert.Equal(t, []string{"o-bare"}, ids(got))
}

func TestApply_MaxPriceLegacyShape(t *testing.T) {
	legacy := []offer.Offer{
		{OfferID: "o-cheap", Title: "Budget Blender", Price: floatPtr(29.99)},
		{OfferID: "o-dear", Title: "Premium Blender", Price: floatPtr(199.99)},
		{OfferID: "o-rich", Title: "Rich Shape Offer", Brand: &offer.Brand{Name: "Acme"}},
	}

	got := offer.Apply(legacy, offer.FilterQuery{MaxPrice: floatPtr(50)})
	// Priced offers above the cap drop; offers without a price pass through.
	assert.Equal(t, []string{"o-cheap", "o-rich"}, ids(got))
}

func TestApply_DoesNotMutateCandidates(t *testing.T) {
	candidates := sampleOffers()
	original := ids(candidates)

	offer.Apply(candidates, offer.FilterQuery{Featured: boolPtr(false), Offset: intPtr(1)})
	assert.Equal(t, original, ids(candidates))
}

func TestApply_EmptyCandidateList(t *testing.T) {
	got := offer.Apply(nil, offer.FilterQuery{Featured: boolPtr(true), Offset: intPtr(3)})
	assert.Empty(t, got)
}
