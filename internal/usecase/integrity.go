// Package usecase provides the business logic for the flight offers search
// pipeline: integrity vetting, filtering, facet extraction, ranking and the
// price histogram.
package usecase

import (
	"strconv"

	"github.com/skysearch/flight-offers-service/internal/domain"
)

// ParseTotal parses an offer's price total to a float.
// An unparseable or empty total yields a DataIntegrityError rather than a
// silent zero, which would corrupt filtering and sorting downstream.
func ParseTotal(offer domain.FlightOffer) (float64, error) {
	total, err := strconv.ParseFloat(offer.Price.Total, 64)
	if err != nil {
		return 0, domain.NewDataIntegrityError(offer.ID, "price.total", offer.Price.Total)
	}
	return total, nil
}

// totalOf returns the parsed price total of a vetted offer.
// Inputs are assumed to have passed VetOffers; a parse failure at this point
// would be a programming error, so the value degrades to 0 rather than
// branching on an impossible condition.
func totalOf(offer domain.FlightOffer) float64 {
	total, _ := strconv.ParseFloat(offer.Price.Total, 64)
	return total
}

// VetOffers checks every offer for the fields the pipeline consumes and
// splits the input into a clean subsequence and the list of integrity
// errors for the offers that were set aside. Relative order is preserved.
//
// Checks performed:
//   - price.total parses as a decimal
//   - at least one itinerary with at least one segment
//   - at least one validating airline code
//
// The caller decides the policy: drop the flagged offers (the errors are
// reported but the clean subset proceeds) or abort the whole batch.
func VetOffers(offers []domain.FlightOffer) ([]domain.FlightOffer, []error) {
	clean := make([]domain.FlightOffer, 0, len(offers))
	var issues []error

	for _, offer := range offers {
		if err := vetOffer(offer); err != nil {
			issues = append(issues, err)
			continue
		}
		clean = append(clean, offer)
	}

	return clean, issues
}

// vetOffer checks a single offer, returning the first integrity problem found.
func vetOffer(offer domain.FlightOffer) error {
	if _, err := ParseTotal(offer); err != nil {
		return err
	}

	if len(offer.Itineraries) == 0 {
		return domain.NewDataIntegrityError(offer.ID, "itineraries", "")
	}
	for _, itin := range offer.Itineraries {
		if len(itin.Segments) == 0 {
			return domain.NewDataIntegrityError(offer.ID, "itineraries.segments", "")
		}
	}

	if len(offer.ValidatingAirlineCodes) == 0 {
		return domain.NewDataIntegrityError(offer.ID, "validatingAirlineCodes", "")
	}

	return nil
}
