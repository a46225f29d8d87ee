package offer

// Offer is one marketplace deal, financing, or everyday-value record as
// delivered by the upstream marketplace API (or the static fallback set).
// Only Title is guaranteed non-empty; every other field may be absent and
// all consumers must treat absence as non-matching, never as an error.
type Offer struct {
	OfferID string `json:"offerId"`
	GroupID string `json:"groupId,omitempty"` // internal correlation — never projected
	SlotID  string `json:"slotId,omitempty"`  // internal correlation — never projected

	Title      string   `json:"title"`
	Subtitle   string   `json:"subtitle,omitempty"`
	Disclosure string   `json:"disclosure,omitempty"`
	Keywords   []string `json:"keywords,omitempty"`
	ExpiryMsg  string   `json:"expiryMsg,omitempty"`
	StartDate  string   `json:"startDate,omitempty"` // calendar-date string, not parsed
	EndDate    string   `json:"endDate,omitempty"`

	OfferType *OfferType `json:"offerType,omitempty"`
	Brand     *Brand     `json:"brand,omitempty"`

	OfferImage map[string]string `json:"offerImage,omitempty"` // size label → asset ref
	Links      []Link            `json:"links,omitempty"`

	// Legacy simplified shape. Mutually exclusive in practice with the
	// rich Brand/OfferType shape above.
	Price    *float64 `json:"price,omitempty"`
	Discount string   `json:"discount,omitempty"`
	Link     string   `json:"link,omitempty"`
}

// OfferType is a named classification with an optional icon reference.
type OfferType struct {
	Name string `json:"name"`
	Icon string `json:"icon,omitempty"`
}

// Brand is the nested merchant entity carried by rich-shape offers.
type Brand struct {
	Name     string     `json:"name"`
	Featured bool       `json:"featured"`
	Priority int        `json:"priority,omitempty"` // upstream ranking, unused by filtering
	Industry []Industry `json:"industry,omitempty"`
	Network  *Network   `json:"network,omitempty"`
	Region   []string   `json:"region,omitempty"`
}

// Industry is one named industry tag on a brand.
type Industry struct {
	Name string `json:"name"`
}

// Network is the single partner-network object on a brand.
type Network struct {
	Name string `json:"name"`
}

// Link is one call-to-action on an offer.
type Link struct {
	Label     string `json:"label"`
	URL       string `json:"url"`
	Placement string `json:"placement,omitempty"`
}
