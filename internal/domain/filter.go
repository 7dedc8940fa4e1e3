package domain

// SortOption defines the available sorting modes for offer results.
type SortOption string

// Available sort options. The API accepts exactly these two; anything else is
// a caller error caught at the request boundary.
const (
	// SortByPrice sorts ascending by the parsed price total (cheapest first)
	SortByPrice SortOption = "price"

	// SortByDuration sorts ascending by the outbound itinerary's raw ISO 8601
	// duration text (lexicographic comparison)
	SortByDuration SortOption = "duration"
)

// IsValid checks if the sort option is a valid value.
func (s SortOption) IsValid() bool {
	switch s {
	case SortByPrice, SortByDuration:
		return true
	default:
		return false
	}
}

// FilterOptions defines the filter specification supplied by the caller on
// each invocation. Every criterion is optional; an offer must pass all
// active criteria to be retained.
type FilterOptions struct {
	// MaxPrice excludes offers whose price total exceeds this amount.
	// Nil means no price ceiling.
	MaxPrice *float64 `json:"maxPrice,omitempty"`

	// Stops lists the exact stop counts that are allowed, evaluated on the
	// outbound itinerary only. Empty means no stop-count restriction.
	// Note this is a set of exact values, not a maximum: [1] keeps one-stop
	// offers and drops both non-stop and two-stop offers.
	Stops []int `json:"stops,omitempty"`

	// Airlines lists the allowed primary validating airline codes.
	// Empty means no airline restriction.
	Airlines []string `json:"airlines,omitempty"`
}

// IsActive reports whether any criterion is set.
func (f *FilterOptions) IsActive() bool {
	if f == nil {
		return false
	}
	return f.MaxPrice != nil || len(f.Stops) > 0 || len(f.Airlines) > 0
}

// AllowsStops reports whether the given stop count passes the stops
// criterion. An empty set allows everything.
func (f *FilterOptions) AllowsStops(stops int) bool {
	if f == nil || len(f.Stops) == 0 {
		return true
	}
	for _, s := range f.Stops {
		if s == stops {
			return true
		}
	}
	return false
}

// Facets are the derived filterable dimensions computed from the full,
// unfiltered offer set. The presentation layer builds its filter controls
// from these.
type Facets struct {
	// Airlines is the sorted, deduplicated set of validating airline codes
	Airlines []string `json:"airlines"`

	// MaxPrice is the ceiling of the highest price total in the set
	MaxPrice float64 `json:"maxPrice"`
}

// Badges identifies the single cheapest and single fastest offer of a
// filtered set. Badge identity is computed before display sorting and does
// not change when the caller toggles sort order.
type Badges struct {
	// CheapestID is the ID of the offer with the lowest price total;
	// "" when the set is empty
	CheapestID string `json:"cheapestId,omitempty"`

	// FastestID is the ID of the offer with the lexicographically smallest
	// outbound duration text; "" when the set is empty
	FastestID string `json:"fastestId,omitempty"`
}

// PricePoint is one fixed-width histogram bin.
type PricePoint struct {
	// Price is the inclusive bin start
	Price float64 `json:"price"`

	// Count is the number of offers whose total falls in this bin
	Count int `json:"count"`

	// Label is the display label for the bin start (e.g., "€100")
	Label string `json:"label"`
}
