package offer

import "strings"

// Closed enumerations for the schema-constrained filter fields. The MCP and
// REST transports validate against these before the pipeline runs; the
// pipeline itself assumes membership.

var OfferTypes = []string{
	"DEALS",
	"FINANCING OFFERS",
	"EVERYDAY VALUE",
}

var Industries = []string{
	"FURNITURE",
	"ELECTRONICS",
	"APPLIANCES",
	"HOME IMPROVEMENT",
	"AUTOMOTIVE",
	"JEWELRY",
	"MATTRESS & BEDDING",
}

var Networks = []string{
	"SYF HOME",
	"SYF CAR CARE",
	"SYF HOME & AUTO",
	"SYNCHRONY MARKETPLACE",
}

var Regions = []string{
	"NATIONAL",
	"NORTHEAST",
	"SOUTHEAST",
	"MIDWEST",
	"SOUTHWEST",
	"WEST",
}

// ValidEnumValue reports whether v is a member of allowed, ignoring case.
func ValidEnumValue(allowed []string, v string) bool {
	for _, a := range allowed {
		if strings.EqualFold(a, v) {
			return true
		}
	}
	return false
}

// InvalidEnumValues returns the members of vs that are not in allowed.
func InvalidEnumValues(allowed []string, vs []string) []string {
	var bad []string
	for _, v := range vs {
		if !ValidEnumValue(allowed, v) {
			bad = append(bad, v)
		}
	}
	return bad
}
