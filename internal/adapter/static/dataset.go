package static

import (
	"context"

	"github.com/calvine/marketplace-mcp/internal/domain/offer"
	portcatalog "github.com/calvine/marketplace-mcp/internal/port/catalog"
)

var _ portcatalog.Source = (*Dataset)(nil)

// Dataset serves the curated sample offers used when the live marketplace is
// unreachable. It keeps the tool usable offline and in demos; the response
// shape is identical to the live path.
type Dataset struct{}

func NewDataset() *Dataset { return &Dataset{} }

// Fetch returns a fresh copy of the sample set so callers can never mutate
// the shared backing data.
func (d *Dataset) Fetch(_ context.Context) ([]offer.Offer, error) {
	out := make([]offer.Offer, len(sampleOffers))
	copy(out, sampleOffers)
	return out, nil
}

// Len reports the sample set size.
func (d *Dataset) Len() int { return len(sampleOffers) }

var sampleOffers = []offer.Offer{
	{
		OfferID:  "smp-ashley-001",
		GroupID:  "grp-home",
		SlotID:   "slot-1",
		Title:    "Ashley Furniture — 12 Months Promotional Financing",
		Subtitle: "On qualifying purchases of $499 or more",
		Disclosure: "Subject to credit approval. Minimum monthly payments required. " +
			"See store for details.",
		Keywords:  []string{"furniture", "living room", "financing"},
		ExpiryMsg: "Offer ends soon",
		StartDate: "2025-01-01",
		EndDate:   "2025-12-31",
		OfferType: &offer.OfferType{Name: "FINANCING OFFERS", Icon: "financing"},
		Brand: &offer.Brand{
			Name:     "Ashley",
			Featured: true,
			Priority: 1,
			Industry: []offer.Industry{{Name: "FURNITURE"}},
			Network:  &offer.Network{Name: "SYF HOME"},
			Region:   []string{"NATIONAL"},
		},
		OfferImage: map[string]string{"default": "assets/ashley-default.png"},
		Links: []offer.Link{
			{Label: "Shop Ashley", URL: "https://www.ashleyfurniture.com", Placement: "primary"},
		},
	},
	{
		OfferID:   "smp-samsung-002",
		GroupID:   "grp-electronics",
		SlotID:    "slot-2",
		Title:     "Samsung — Save on Appliance Bundles",
		Subtitle:  "Limited-time savings on washer and dryer pairs",
		Keywords:  []string{"appliances", "electronics", "bundle"},
		StartDate: "2025-03-01",
		EndDate:   "2025-09-30",
		OfferType: &offer.OfferType{Name: "DEALS", Icon: "deal"},
		Brand: &offer.Brand{
			Name:     "Samsung",
			Featured: true,
			Priority: 2,
			Industry: []offer.Industry{{Name: "ELECTRONICS"}, {Name: "APPLIANCES"}},
			Network:  &offer.Network{Name: "SYNCHRONY MARKETPLACE"},
			Region:   []string{"NATIONAL"},
		},
		OfferImage: map[string]string{"default": "assets/samsung-default.png"},
		Links: []offer.Link{
			{Label: "Shop Samsung", URL: "https://www.samsung.com/us", Placement: "primary"},
		},
	},
	{
		OfferID:    "smp-bestbuy-003",
		GroupID:    "grp-electronics",
		SlotID:     "slot-3",
		Title:      "Best Buy — 18 Month Financing on Major Purchases",
		Subtitle:   "On storewide purchases of $599 or more",
		Disclosure: "Subject to credit approval. Interest accrues if not paid in full.",
		Keywords:   []string{"electronics", "tv", "computers", "financing"},
		StartDate:  "2025-02-15",
		EndDate:    "2025-11-15",
		OfferType:  &offer.OfferType{Name: "FINANCING OFFERS", Icon: "financing"},
		Brand: &offer.Brand{
			Name:     "Best Buy",
			Featured: true,
			Priority: 3,
			Industry: []offer.Industry{{Name: "ELECTRONICS"}},
			Network:  &offer.Network{Name: "SYNCHRONY MARKETPLACE"},
			Region:   []string{"NATIONAL"},
		},
		OfferImage: map[string]string{"default": "assets/bestbuy-default.png"},
		Links: []offer.Link{
			{Label: "Shop Best Buy", URL: "https://www.bestbuy.com", Placement: "primary"},
		},
	},
	{
		OfferID:   "smp-lowes-004",
		GroupID:   "grp-home",
		SlotID:    "slot-4",
		Title:     "Lowe's — 5% Off Every Day",
		Subtitle:  "Everyday savings with your store card",
		Keywords:  []string{"home improvement", "tools", "everyday value"},
		OfferType: &offer.OfferType{Name: "EVERYDAY VALUE", Icon: "value"},
		Brand: &offer.Brand{
			Name:     "Lowe's",
			Featured: true,
			Priority: 4,
			Industry: []offer.Industry{{Name: "HOME IMPROVEMENT"}},
			Network:  &offer.Network{Name: "SYF HOME"},
			Region:   []string{"NATIONAL"},
		},
		OfferImage: map[string]string{"default": "assets/lowes-default.png"},
		Links: []offer.Link{
			{Label: "Shop Lowe's", URL: "https://www.lowes.com", Placement: "primary"},
		},
	},
	{
		OfferID:   "smp-expressoil-005",
		GroupID:   "grp-auto",
		SlotID:    "slot-5",
		Title:     "Express Oil Change & Tire Engineers — Service Savings",
		Subtitle:  "Everyday value on oil changes and tire service",
		Keywords:  []string{"auto", "oil change", "tires"},
		ExpiryMsg: "Participating locations only",
		OfferType: &offer.OfferType{Name: "EVERYDAY VALUE", Icon: "value"},
		Brand: &offer.Brand{
			Name:     "Express Oil Change & Tire Engineers",
			Featured: false,
			Priority: 5,
			Industry: []offer.Industry{{Name: "AUTOMOTIVE"}},
			Network:  &offer.Network{Name: "SYF CAR CARE"},
			Region:   []string{"SOUTHEAST", "MIDWEST"},
		},
		OfferImage: map[string]string{"default": "assets/expressoil-default.png"},
		Links: []offer.Link{
			{Label: "Find a Location", URL: "https://www.expressoil.com", Placement: "primary"},
		},
	},
	{
		OfferID:   "smp-mattressfirm-006",
		GroupID:   "grp-home",
		SlotID:    "slot-6",
		Title:     "Mattress Firm — Seasonal Sleep Sale",
		Subtitle:  "Save on select mattress sets",
		Keywords:  []string{"mattress", "bedding", "sale"},
		StartDate: "2025-05-01",
		EndDate:   "2025-08-31",
		OfferType: &offer.OfferType{Name: "DEALS", Icon: "deal"},
		Brand: &offer.Brand{
			Name:     "Mattress Firm",
			Featured: false,
			Priority: 6,
			Industry: []offer.Industry{{Name: "MATTRESS & BEDDING"}},
			Network:  &offer.Network{Name: "SYF HOME"},
			Region:   []string{"NATIONAL"},
		},
		OfferImage: map[string]string{"default": "assets/mattressfirm-default.png"},
		Links: []offer.Link{
			{Label: "Shop Mattress Firm", URL: "https://www.mattressfirm.com", Placement: "primary"},
		},
	},
}
