package offer

import (
	"fmt"
	"strings"
)

// FilterQuery is the caller-supplied set of optional constraints. Every
// non-zero field is ANDed with every other; pointer fields distinguish
// "unset" from an explicit zero value (featured=false, offset=0).
type FilterQuery struct {
	Category  string   `json:"category,omitempty"`
	Industry  []string `json:"industry,omitempty"`
	OfferType []string `json:"offerType,omitempty"`
	Region    string   `json:"region,omitempty"`
	Network   []string `json:"network,omitempty"`
	Brand     string   `json:"brand,omitempty"`
	Featured  *bool    `json:"featured,omitempty"`

	LimitOffersCount *int `json:"limitOffersCount,omitempty"`
	Offset           *int `json:"offset,omitempty"`

	// Legacy: meaningful only against the simplified offer shape's price.
	MaxPrice *float64 `json:"maxPrice,omitempty"`
}

// IsZero reports whether no filter or pagination field is set.
func (q FilterQuery) IsZero() bool {
	return q.Category == "" && len(q.Industry) == 0 && len(q.OfferType) == 0 &&
		q.Region == "" && len(q.Network) == 0 && q.Brand == "" &&
		q.Featured == nil && q.LimitOffersCount == nil && q.Offset == nil &&
		q.MaxPrice == nil
}

// Validate checks the enum-constrained and numeric fields. The transports
// call this before the pipeline ever sees the query; the pipeline assumes
// a validated query.
func (q FilterQuery) Validate() error {
	if bad := InvalidEnumValues(Industries, q.Industry); len(bad) > 0 {
		return fmt.Errorf("invalid industry %q — must be one of: %s", bad, strings.Join(Industries, ", "))
	}
	if bad := InvalidEnumValues(OfferTypes, q.OfferType); len(bad) > 0 {
		return fmt.Errorf("invalid offerType %q — must be one of: %s", bad, strings.Join(OfferTypes, ", "))
	}
	if q.Region != "" && !ValidEnumValue(Regions, q.Region) {
		return fmt.Errorf("invalid region %q — must be one of: %s", q.Region, strings.Join(Regions, ", "))
	}
	if bad := InvalidEnumValues(Networks, q.Network); len(bad) > 0 {
		return fmt.Errorf("invalid network %q — must be one of: %s", bad, strings.Join(Networks, ", "))
	}
	if q.LimitOffersCount != nil && *q.LimitOffersCount <= 0 {
		return fmt.Errorf("limitOffersCount must be positive, got %d", *q.LimitOffersCount)
	}
	if q.Offset != nil && *q.Offset < 0 {
		return fmt.Errorf("offset must be non-negative, got %d", *q.Offset)
	}
	if q.MaxPrice != nil && *q.MaxPrice <= 0 {
		return fmt.Errorf("maxPrice must be positive, got %v", *q.MaxPrice)
	}
	return nil
}

// AppliedFilters echoes the non-empty fields of the query for the result
// envelope. Unset fields are omitted entirely.
func (q FilterQuery) AppliedFilters() map[string]any {
	applied := make(map[string]any)
	if q.Category != "" {
		applied["category"] = q.Category
	}
	if len(q.Industry) > 0 {
		applied["industry"] = q.Industry
	}
	if len(q.OfferType) > 0 {
		applied["offerType"] = q.OfferType
	}
	if q.Region != "" {
		applied["region"] = q.Region
	}
	if len(q.Network) > 0 {
		applied["network"] = q.Network
	}
	if q.Brand != "" {
		applied["brand"] = q.Brand
	}
	if q.Featured != nil {
		applied["featured"] = *q.Featured
	}
	if q.LimitOffersCount != nil {
		applied["limitOffersCount"] = *q.LimitOffersCount
	}
	if q.Offset != nil {
		applied["offset"] = *q.Offset
	}
	if q.MaxPrice != nil {
		applied["maxPrice"] = *q.MaxPrice
	}
	return applied
}

// Describe renders the active filters as a short human-readable list, used
// by the zero-results message. Fields appear in pipeline order.
func (q FilterQuery) Describe() string {
	var parts []string
	if len(q.Industry) > 0 {
		parts = append(parts, "industry="+strings.Join(q.Industry, ","))
	}
	if q.Category != "" {
		parts = append(parts, "category="+q.Category)
	}
	if len(q.OfferType) > 0 {
		parts = append(parts, "offerType="+strings.Join(q.OfferType, ","))
	}
	if q.Region != "" {
		parts = append(parts, "region="+q.Region)
	}
	if len(q.Network) > 0 {
		parts = append(parts, "network="+strings.Join(q.Network, ","))
	}
	if q.Brand != "" {
		parts = append(parts, "brand="+q.Brand)
	}
	if q.Featured != nil {
		parts = append(parts, fmt.Sprintf("featured=%t", *q.Featured))
	}
	if q.MaxPrice != nil {
		parts = append(parts, fmt.Sprintf("maxPrice=%v", *q.MaxPrice))
	}
	if q.Offset != nil {
		parts = append(parts, fmt.Sprintf("offset=%d", *q.Offset))
	}
	if q.LimitOffersCount != nil {
		parts = append(parts, fmt.Sprintf("limitOffersCount=%d", *q.LimitOffersCount))
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ", ")
}
