package usecase

import (
	"math"
	"sort"

	"github.com/skysearch/flight-offers-service/internal/domain"
)

// DefaultMaxPrice is the price-slider ceiling reported when the offer set is
// empty. The value is fixed so an empty search result always renders the
// same filter controls.
const DefaultMaxPrice = 1000

// UniqueAirlines returns every validating airline code appearing across all
// offers (not just the primary code), deduplicated and lexicographically
// sorted. Returns an empty slice for empty input.
func UniqueAirlines(offers []domain.FlightOffer) []string {
	seen := make(map[string]struct{})
	for _, offer := range offers {
		for _, code := range offer.ValidatingAirlineCodes {
			seen[code] = struct{}{}
		}
	}

	airlines := make([]string, 0, len(seen))
	for code := range seen {
		airlines = append(airlines, code)
	}
	sort.Strings(airlines)

	return airlines
}

// MaxPrice returns the ceiling of the highest parsed price total across the
// offers, or DefaultMaxPrice for an empty input.
func MaxPrice(offers []domain.FlightOffer) float64 {
	if len(offers) == 0 {
		return DefaultMaxPrice
	}

	max := totalOf(offers[0])
	for _, offer := range offers[1:] {
		if total := totalOf(offer); total > max {
			max = total
		}
	}

	return math.Ceil(max)
}

// ExtractFacets derives the filterable dimensions from the full offer set.
func ExtractFacets(offers []domain.FlightOffer) domain.Facets {
	return domain.Facets{
		Airlines: UniqueAirlines(offers),
		MaxPrice: MaxPrice(offers),
	}
}
