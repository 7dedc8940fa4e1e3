package domain

// SearchResponse represents the full result of one search cycle: the
// normalized offers after filtering and sorting, the facets and histogram
// derived from the unfiltered set, and the badges of the filtered set.
type SearchResponse struct {
	// SearchCriteria echoes the original search parameters
	SearchCriteria SearchCriteriaResponse `json:"search_criteria"`

	// Metadata contains information about the search execution
	Metadata SearchMetadata `json:"metadata"`

	// Offers is the filtered, sorted offer list
	Offers []FlightOffer `json:"offers"`

	// Facets are derived from the full vetted set, before filtering, so the
	// filter controls stay stable while the user narrows results
	Facets Facets `json:"facets"`

	// Badges identify the cheapest and fastest offers of the filtered set
	Badges Badges `json:"badges"`

	// Histogram buckets the full vetted set's prices into fixed-width bins
	Histogram []PricePoint `json:"histogram"`
}

// SearchCriteriaResponse represents the search criteria in the response.
type SearchCriteriaResponse struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureDate string `json:"departure_date"`
	ReturnDate    string `json:"return_date,omitempty"`
	Adults        int    `json:"adults"`
	TravelClass   string `json:"travel_class"`
}

// SearchMetadata contains metadata about the search execution.
type SearchMetadata struct {
	// TotalResults is the number of offers returned after filtering
	TotalResults int `json:"total_results"`

	// TotalFetched is the number of offers the upstream returned before
	// vetting and filtering
	TotalFetched int `json:"total_fetched"`

	// DroppedOffers is the number of offers removed by integrity vetting
	DroppedOffers int `json:"dropped_offers"`

	// SearchTimeMs is the total search duration in milliseconds
	SearchTimeMs int64 `json:"search_time_ms"`
}

// NewSearchCriteriaResponse converts SearchCriteria to its response form.
func NewSearchCriteriaResponse(criteria *SearchCriteria) SearchCriteriaResponse {
	return SearchCriteriaResponse{
		Origin:        criteria.Origin,
		Destination:   criteria.Destination,
		DepartureDate: criteria.DepartureDate,
		ReturnDate:    criteria.ReturnDate,
		Adults:        criteria.Adults,
		TravelClass:   criteria.TravelClass,
	}
}
