package domain

import "context"

// OfferProvider is the port to the upstream flight-offers source.
// Implementations fetch the vendor document and hand back normalized offers;
// the core pipeline never sees the vendor shape.
type OfferProvider interface {
	// SearchOffers runs a flight-offers search and returns the normalized
	// result in vendor order. A malformed upstream document is not an
	// error: it normalizes to an empty slice.
	SearchOffers(ctx context.Context, criteria SearchCriteria) ([]FlightOffer, error)
}

// LocationProvider is the port to the upstream location-lookup source.
type LocationProvider interface {
	// SearchLocations looks up airports and cities matching the keyword.
	// Keywords shorter than two characters return an empty slice without
	// an upstream call.
	SearchLocations(ctx context.Context, keyword string) ([]Location, error)
}
