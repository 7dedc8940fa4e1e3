package usecase

import (
	"sort"

	"github.com/skysearch/flight-offers-service/internal/domain"
)

// SortOffers sorts offers according to the specified sort option.
// Uses stable sorting so offers with equal keys keep their original
// relative order.
//
// Behavior:
//   - SortByPrice: ascending by parsed price total
//   - SortByDuration: ascending by the outbound itinerary's raw ISO 8601
//     duration text, compared lexicographically
//   - Empty or invalid sortBy defaults to SortByPrice
//   - Does NOT mutate the input slice
func SortOffers(offers []domain.FlightOffer, sortBy domain.SortOption) []domain.FlightOffer {
	result := make([]domain.FlightOffer, len(offers))
	copy(result, offers)
	if len(result) <= 1 {
		return result
	}

	if !sortBy.IsValid() {
		sortBy = domain.SortByPrice
	}

	switch sortBy {
	case domain.SortByPrice:
		sort.SliceStable(result, func(i, j int) bool {
			return totalOf(result[i]) < totalOf(result[j])
		})
	case domain.SortByDuration:
		sort.SliceStable(result, func(i, j int) bool {
			return lessByDuration(result[i], result[j])
		})
	}

	return result
}

// lessByDuration compares two offers by the raw outbound duration text.
// The comparison is lexicographic on the ISO 8601 string, so durations with
// different digit counts order oddly ("PT9H" sorts after "PT10M"). This
// mirrors the established result ordering and is kept as-is.
func lessByDuration(a, b domain.FlightOffer) bool {
	return a.OutboundDuration() < b.OutboundDuration()
}

// FindCheapest returns the ID of the offer with the lowest parsed price
// total. Ties go to the first occurrence in input order. Returns "" for an
// empty input.
func FindCheapest(offers []domain.FlightOffer) string {
	if len(offers) == 0 {
		return ""
	}

	cheapest := offers[0]
	best := totalOf(cheapest)
	for _, offer := range offers[1:] {
		if total := totalOf(offer); total < best {
			best = total
			cheapest = offer
		}
	}

	return cheapest.ID
}

// FindFastest returns the ID of the offer with the lexicographically
// smallest outbound duration text (same caveat as lessByDuration). Ties go
// to the first occurrence in input order. Returns "" for an empty input.
func FindFastest(offers []domain.FlightOffer) string {
	if len(offers) == 0 {
		return ""
	}

	fastest := offers[0]
	for _, offer := range offers[1:] {
		if lessByDuration(offer, fastest) {
			fastest = offer
		}
	}

	return fastest.ID
}

// FindBadges identifies the cheapest and fastest offers in a single pass
// over the (already filtered) sequence. It is computed before any display
// sort is applied, so badge identity never changes when the caller toggles
// sort order.
func FindBadges(offers []domain.FlightOffer) domain.Badges {
	if len(offers) == 0 {
		return domain.Badges{}
	}

	cheapest, fastest := offers[0], offers[0]
	bestTotal := totalOf(cheapest)

	for _, offer := range offers[1:] {
		if total := totalOf(offer); total < bestTotal {
			bestTotal = total
			cheapest = offer
		}
		if lessByDuration(offer, fastest) {
			fastest = offer
		}
	}

	return domain.Badges{
		CheapestID: cheapest.ID,
		FastestID:  fastest.ID,
	}
}
