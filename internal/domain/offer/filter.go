package offer

import "strings"

// predicate decides whether a single offer survives one filter stage.
// Predicates must be absence-safe: a missing Brand, OfferType, or Network is
// always a non-match, never a panic and never a wildcard.
type predicate func(Offer) bool

// Apply runs the ordered filter-and-paginate pipeline over candidates.
// Pure and deterministic: no I/O, no reordering, a fresh slice per stage.
// Stage order is fixed — industry, category, offerType, region, network,
// brand, featured, maxPrice, then pagination. All stages AND together, so
// order never changes the final set, only short-circuit cost; pagination is
// last because it must see the final filtered count.
func Apply(candidates []Offer, q FilterQuery) []Offer {
	result := candidates
	for _, p := range q.predicates() {
		result = keep(result, p)
		if len(result) == 0 {
			break
		}
	}
	return paginate(result, q.Offset, q.LimitOffersCount)
}

// predicates builds one closure per non-empty filter field, in stage order.
func (q FilterQuery) predicates() []predicate {
	var ps []predicate
	if len(q.Industry) > 0 {
		ps = append(ps, matchIndustry(q.Industry))
	}
	if q.Category != "" {
		ps = append(ps, matchCategory(q.Category))
	}
	if len(q.OfferType) > 0 {
		ps = append(ps, matchOfferType(q.OfferType))
	}
	if q.Region != "" {
		ps = append(ps, matchRegion(q.Region))
	}
	if len(q.Network) > 0 {
		ps = append(ps, matchNetwork(q.Network))
	}
	if q.Brand != "" {
		ps = append(ps, matchBrand(q.Brand))
	}
	if q.Featured != nil {
		ps = append(ps, matchFeatured(*q.Featured))
	}
	if q.MaxPrice != nil {
		ps = append(ps, matchMaxPrice(*q.MaxPrice))
	}
	return ps
}

func keep(offers []Offer, p predicate) []Offer {
	out := make([]Offer, 0, len(offers))
	for _, o := range offers {
		if p(o) {
			out = append(out, o)
		}
	}
	return out
}

// matchIndustry keeps offers where any brand industry equals (case-insensitive)
// any requested industry. Enum-constrained, so exact equality — substring
// matching on enum values risks false positives (AUTOMOTIVE vs AUTO).
func matchIndustry(requested []string) predicate {
	return func(o Offer) bool {
		if o.Brand == nil {
			return false
		}
		for _, ind := range o.Brand.Industry {
			for _, want := range requested {
				if strings.EqualFold(ind.Name, want) {
					return true
				}
			}
		}
		return false
	}
}

// matchCategory is the legacy free-text check: the trimmed, lowercased
// category must be a substring of any industry name, the brand name, or the
// offer title. Broader than the industry stage on purpose.
func matchCategory(category string) predicate {
	needle := strings.ToLower(strings.TrimSpace(category))
	return func(o Offer) bool {
		if needle == "" {
			return true
		}
		if strings.Contains(strings.ToLower(o.Title), needle) {
			return true
		}
		if o.Brand == nil {
			return false
		}
		if strings.Contains(strings.ToLower(o.Brand.Name), needle) {
			return true
		}
		for _, ind := range o.Brand.Industry {
			if strings.Contains(strings.ToLower(ind.Name), needle) {
				return true
			}
		}
		return false
	}
}

func matchOfferType(requested []string) predicate {
	return func(o Offer) bool {
		if o.OfferType == nil {
			return false
		}
		for _, want := range requested {
			if strings.EqualFold(o.OfferType.Name, want) {
				return true
			}
		}
		return false
	}
}

func matchRegion(region string) predicate {
	return func(o Offer) bool {
		if o.Brand == nil {
			return false
		}
		for _, r := range o.Brand.Region {
			if strings.EqualFold(r, region) {
				return true
			}
		}
		return false
	}
}

func matchNetwork(requested []string) predicate {
	return func(o Offer) bool {
		if o.Brand == nil || o.Brand.Network == nil {
			return false
		}
		for _, want := range requested {
			if strings.EqualFold(o.Brand.Network.Name, want) {
				return true
			}
		}
		return false
	}
}

// matchBrand is a case-insensitive substring match on the brand name.
func matchBrand(brand string) predicate {
	needle := strings.ToLower(brand)
	return func(o Offer) bool {
		if o.Brand == nil {
			return false
		}
		return strings.Contains(strings.ToLower(o.Brand.Name), needle)
	}
}

// matchFeatured requires an exact boolean match. An offer with no brand has
// no featured flag at all, so it matches neither true nor false queries.
func matchFeatured(want bool) predicate {
	return func(o Offer) bool {
		return o.Brand != nil && o.Brand.Featured == want
	}
}

// matchMaxPrice applies only to the legacy shape: offers without a price
// pass through unchanged, offers with one must not exceed the cap.
func matchMaxPrice(ceiling float64) predicate {
	return func(o Offer) bool {
		if o.Price == nil {
			return true
		}
		return *o.Price <= ceiling
	}
}

// paginate slices [start, start+limit) out of offers. Out-of-range start
// yields an empty slice; a nil limit means "to the end".
func paginate(offers []Offer, offset, limit *int) []Offer {
	start := 0
	if offset != nil {
		start = *offset
	}
	if start >= len(offers) {
		return []Offer{}
	}
	end := len(offers)
	if limit != nil && start+*limit < end {
		end = start + *limit
	}
	out := make([]Offer, end-start)
	copy(out, offers[start:end])
	return out
}
