package amadeus

import (
	"encoding/json"

	"github.com/skysearch/flight-offers-service/internal/domain"
)

// DecodeOffers parses a raw flight-offers response body. A body that does not
// match the expected shape yields an empty document rather than an error; the
// caller treats it as zero results.
func DecodeOffers(body []byte) *OffersDocument {
	var doc OffersDocument
	if err := json.Unmarshal(body, &doc); err != nil {
		return &OffersDocument{}
	}
	return &doc
}

// Normalize converts a vendor offers document into domain flight offers.
// It is a pure 1:1 mapping that preserves upstream order. A nil document or
// an absent data array produces an empty, non-nil slice. Enrichment from the
// dictionaries side-table is best-effort and never fails an offer.
func Normalize(doc *OffersDocument) []domain.FlightOffer {
	if doc == nil || len(doc.Data) == 0 {
		return []domain.FlightOffer{}
	}

	var locations map[string]DictionaryLocation
	if doc.Dictionaries != nil {
		locations = doc.Dictionaries.Locations
	}

	offers := make([]domain.FlightOffer, 0, len(doc.Data))
	for _, src := range doc.Data {
		offers = append(offers, normalizeOffer(src, locations))
	}
	return offers
}

func normalizeOffer(src Offer, locations map[string]DictionaryLocation) domain.FlightOffer {
	itineraries := make([]domain.FlightItinerary, 0, len(src.Itineraries))
	for _, it := range src.Itineraries {
		segments := make([]domain.FlightSegment, 0, len(it.Segments))
		for _, seg := range it.Segments {
			segments = append(segments, domain.FlightSegment{
				Departure:   normalizePoint(seg.Departure, locations),
				Arrival:     normalizePoint(seg.Arrival, locations),
				CarrierCode: seg.CarrierCode,
				Number:      seg.Number,
				Duration:    seg.Duration,
			})
		}
		itineraries = append(itineraries, domain.FlightItinerary{
			Duration: it.Duration,
			Segments: segments,
		})
	}

	return domain.FlightOffer{
		ID: src.ID,
		Price: domain.Price{
			Currency: src.Price.Currency,
			Total:    effectiveTotal(src.Price),
			Base:     src.Price.Base,
		},
		Itineraries:            itineraries,
		ValidatingAirlineCodes: src.ValidatingAirlineCodes,
		NumberOfBookableSeats:  src.NumberOfBookableSeats,
	}
}

// effectiveTotal prefers grandTotal over total because grandTotal includes
// fees the plain total omits.
func effectiveTotal(p OfferPrice) string {
	if p.GrandTotal != "" {
		return p.GrandTotal
	}
	return p.Total
}

// normalizePoint maps a vendor point and annotates it with a city label from
// the locations side-table when one exists. The cityCode is preferred over
// the longer cityName. An unknown IATA code leaves City empty.
func normalizePoint(p Point, locations map[string]DictionaryLocation) domain.SegmentPoint {
	point := domain.SegmentPoint{
		IATACode: p.IATACode,
		At:       p.At,
	}
	if entry, ok := locations[p.IATACode]; ok {
		switch {
		case entry.CityCode != "":
			point.City = entry.CityCode
		case entry.CityName != "":
			point.City = entry.CityName
		}
	}
	return point
}

// normalizeLocations maps a vendor location-lookup document into domain
// locations, preserving upstream (relevance) order.
func normalizeLocations(doc locationsDocument) []domain.Location {
	locations := make([]domain.Location, 0, len(doc.Data))
	for _, entry := range doc.Data {
		locations = append(locations, domain.Location{
			IATACode: entry.IATACode,
			Name:     entry.Name,
			Address: domain.LocationAddress{
				CityName:    entry.Address.CityName,
				CountryName: entry.Address.CountryName,
			},
		})
	}
	return locations
}
