package domain

// Location represents an airport or city usable as a search endpoint.
// Entries come from two sources: the upstream location-lookup provider and
// the static global airport dataset; a caller merges them with
// MergeLocations before presenting autocomplete results.
type Location struct {
	// IATACode is the 3-letter location code, uppercase
	IATACode string `json:"iataCode"`

	// Name is the airport or city name
	Name string `json:"name"`

	// Address carries the descriptive city and country
	Address LocationAddress `json:"address"`

	// Ranking orders locations by prominence (higher = busier); the static
	// dataset derives it from route counts, live lookups leave it 0
	Ranking int `json:"ranking,omitempty"`
}

// LocationAddress is the descriptive part of a location.
type LocationAddress struct {
	CityName    string `json:"cityName"`
	CountryName string `json:"countryName"`
}

// MergeLocations concatenates the given lists and deduplicates them by IATA
// code, keeping the first occurrence of each code. Precedence is therefore
// defined entirely by concatenation order: pass the preferred source first.
func MergeLocations(lists ...[]Location) []Location {
	total := 0
	for _, l := range lists {
		total += len(l)
	}

	seen := make(map[string]struct{}, total)
	merged := make([]Location, 0, total)

	for _, list := range lists {
		for _, loc := range list {
			if _, ok := seen[loc.IATACode]; ok {
				continue
			}
			seen[loc.IATACode] = struct{}{}
			merged = append(merged, loc)
		}
	}

	return merged
}
