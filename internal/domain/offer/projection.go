package offer

import "fmt"

// Projected is the reduced, client-facing view of an offer. Internal
// correlation IDs (slotId, groupId) and raw image assets are dropped: they
// add nothing for a downstream consumer and leak internal structure.
type Projected struct {
	ID         string          `json:"id"`
	Title      string          `json:"title"`
	Subtitle   string          `json:"subtitle,omitempty"`
	OfferType  string          `json:"offerType,omitempty"`
	Brand      *ProjectedBrand `json:"brand,omitempty"`
	Links      []ProjectedLink `json:"links,omitempty"`
	Keywords   []string        `json:"keywords,omitempty"`
	ExpiryMsg  string          `json:"expiryMsg,omitempty"`
	StartDate  string          `json:"startDate,omitempty"`
	EndDate    string          `json:"endDate,omitempty"`
	Disclosure string          `json:"disclosure,omitempty"`
}

type ProjectedBrand struct {
	Name       string   `json:"name"`
	Featured   bool     `json:"featured"`
	Industries []string `json:"industries,omitempty"`
	Network    string   `json:"network,omitempty"`
	Regions    []string `json:"regions,omitempty"`
}

type ProjectedLink struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Envelope wraps one response batch. TotalOffers counts the offers actually
// returned (after filtering and pagination); AppliedFilters echoes the
// non-empty query fields.
type Envelope struct {
	TotalOffers    int            `json:"totalOffers"`
	AppliedFilters map[string]any `json:"appliedFilters"`
	Offers         []Projected    `json:"offers"`
}

// Project maps the filtered offers into the client-facing envelope,
// preserving order. Pure: projecting the same offer twice yields identical
// output.
func Project(filtered []Offer, q FilterQuery) Envelope {
	projected := make([]Projected, 0, len(filtered))
	for _, o := range filtered {
		projected = append(projected, projectOne(o))
	}
	return Envelope{
		TotalOffers:    len(projected),
		AppliedFilters: q.AppliedFilters(),
		Offers:         projected,
	}
}

// EmptyResultMessage names the filters that produced zero matches. A valid
// terminal state, distinct from an error.
func EmptyResultMessage(q FilterQuery) string {
	return fmt.Sprintf("No offers matched the requested filters (%s). Try removing or broadening a filter.", q.Describe())
}

func projectOne(o Offer) Projected {
	p := Projected{
		ID:         o.OfferID,
		Title:      o.Title,
		Subtitle:   o.Subtitle,
		Keywords:   o.Keywords,
		ExpiryMsg:  o.ExpiryMsg,
		StartDate:  o.StartDate,
		EndDate:    o.EndDate,
		Disclosure: o.Disclosure,
	}
	if o.OfferType != nil {
		p.OfferType = o.OfferType.Name
	}
	if o.Brand != nil {
		b := &ProjectedBrand{
			Name:     o.Brand.Name,
			Featured: o.Brand.Featured,
			Regions:  o.Brand.Region,
		}
		for _, ind := range o.Brand.Industry {
			b.Industries = append(b.Industries, ind.Name)
		}
		if o.Brand.Network != nil {
			b.Network = o.Brand.Network.Name
		}
		p.Brand = b
	}
	for _, l := range o.Links {
		p.Links = append(p.Links, ProjectedLink{Label: l.Label, URL: l.URL})
	}
	return p
}
