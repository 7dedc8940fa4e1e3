package usecase

import "github.com/skysearch/flight-offers-service/internal/domain"

// SearchOptions contains optional parameters for a flight offers search.
type SearchOptions struct {
	// Filters contains optional filtering criteria to apply to results
	Filters *domain.FilterOptions

	// SortBy specifies how to sort the results (default: price)
	SortBy domain.SortOption
}

// DefaultSearchOptions returns SearchOptions with sensible defaults.
func DefaultSearchOptions() SearchOptions {
	return SearchOptions{
		Filters: nil,
		SortBy:  domain.SortByPrice,
	}
}
