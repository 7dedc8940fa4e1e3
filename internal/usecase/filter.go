package usecase

import (
	"github.com/skysearch/flight-offers-service/internal/domain"
)

// ApplyFilters applies the given filter options to a list of offers.
// It returns a new slice containing only offers that match all active
// criteria (logical AND), preserving the relative order of survivors.
//
// Behavior:
//   - Returns a copy of the input if opts is nil or has no active criterion
//   - Price: parsed total must be <= MaxPrice when set
//   - Stops: the outbound itinerary's exact stop count must be in the set
//   - Airlines: the primary validating airline code must be in the set
//   - Return itineraries and secondary airline codes are never consulted
//   - Does NOT mutate the input slice
//   - Performance is O(n) where n = number of offers
func ApplyFilters(offers []domain.FlightOffer, opts *domain.FilterOptions) []domain.FlightOffer {
	if !opts.IsActive() {
		result := make([]domain.FlightOffer, len(offers))
		copy(result, offers)
		return result
	}

	// Pre-build airline set for O(1) lookup if the airlines filter is set
	var airlineSet map[string]struct{}
	if len(opts.Airlines) > 0 {
		airlineSet = make(map[string]struct{}, len(opts.Airlines))
		for _, code := range opts.Airlines {
			airlineSet[code] = struct{}{}
		}
	}

	result := make([]domain.FlightOffer, 0, len(offers))
	for _, offer := range offers {
		if passesAllFilters(offer, opts, airlineSet) {
			result = append(result, offer)
		}
	}

	return result
}

// passesAllFilters checks if an offer passes every active criterion.
func passesAllFilters(offer domain.FlightOffer, opts *domain.FilterOptions, airlineSet map[string]struct{}) bool {
	if opts.MaxPrice != nil && totalOf(offer) > *opts.MaxPrice {
		return false
	}

	if !opts.AllowsStops(offer.Stops()) {
		return false
	}

	if airlineSet != nil {
		if _, ok := airlineSet[offer.PrimaryAirline()]; !ok {
			return false
		}
	}

	return true
}
