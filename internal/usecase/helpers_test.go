package usecase

import (
	"github.com/skysearch/flight-offers-service/internal/domain"
)

// makeOffer builds a minimal vetted offer for pipeline tests.
// stops controls the outbound segment count; airlines defaults to ["BA"].
func makeOffer(id, total, duration string, stops int, airlines ...string) domain.FlightOffer {
	if len(airlines) == 0 {
		airlines = []string{"BA"}
	}

	segments := make([]domain.FlightSegment, stops+1)
	for i := range segments {
		segments[i] = domain.FlightSegment{
			Departure:   domain.SegmentPoint{IATACode: "LHR", At: "2026-10-15T08:00:00"},
			Arrival:     domain.SegmentPoint{IATACode: "JFK", At: "2026-10-15T11:30:00"},
			CarrierCode: airlines[0],
			Number:      "117",
			Duration:    duration,
		}
	}

	return domain.FlightOffer{
		ID: id,
		Price: domain.Price{
			Currency: "EUR",
			Total:    total,
			Base:     total,
		},
		Itineraries: []domain.FlightItinerary{
			{Duration: duration, Segments: segments},
		},
		ValidatingAirlineCodes: airlines,
		NumberOfBookableSeats:  4,
	}
}

// ids extracts the offer IDs in order, for order-sensitive assertions.
func ids(offers []domain.FlightOffer) []string {
	out := make([]string, 0, len(offers))
	for _, o := range offers {
		out = append(out, o.ID)
	}
	return out
}
