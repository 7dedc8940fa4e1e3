// Package amadeus adapts the upstream Amadeus API to the domain ports:
// flight-offers search, location lookup and the static airport dataset.
// It owns the vendor response shapes and the normalization into domain
// entities; nothing outside this package sees the vendor format.
package amadeus

// OffersDocument is the top-level flight-offers search response.
// Only the fields this service consumes are declared; the upstream contract
// guarantees nothing beyond them, so everything is optional and the
// normalizer validates what it reads.
type OffersDocument struct {
	Data         []Offer       `json:"data"`
	Dictionaries *Dictionaries `json:"dictionaries,omitempty"`
}

// Offer is one vendor-shaped flight offer.
type Offer struct {
	ID                     string      `json:"id"`
	Price                  OfferPrice  `json:"price"`
	Itineraries            []Itinerary `json:"itineraries"`
	ValidatingAirlineCodes []string    `json:"validatingAirlineCodes"`
	NumberOfBookableSeats  int         `json:"numberOfBookableSeats"`
}

// OfferPrice carries the vendor's price block. GrandTotal includes fees and
// is present only on some responses.
type OfferPrice struct {
	Currency   string `json:"currency"`
	Total      string `json:"total"`
	Base       string `json:"base"`
	GrandTotal string `json:"grandTotal,omitempty"`
}

// Itinerary is one direction of travel in the vendor shape.
type Itinerary struct {
	Duration string    `json:"duration"`
	Segments []Segment `json:"segments"`
}

// Segment is one non-stop leg in the vendor shape.
type Segment struct {
	Departure   Point  `json:"departure"`
	Arrival     Point  `json:"arrival"`
	CarrierCode string `json:"carrierCode"`
	Number      string `json:"number"`
	Duration    string `json:"duration"`
}

// Point is a vendor departure/arrival point.
type Point struct {
	IATACode string `json:"iataCode"`
	At       string `json:"at"`
}

// Dictionaries is the optional side-table block of a search response.
type Dictionaries struct {
	// Locations maps IATA codes to descriptive records
	Locations map[string]DictionaryLocation `json:"locations"`
}

// DictionaryLocation is one entry of the locations side-table.
type DictionaryLocation struct {
	CityCode    string `json:"cityCode"`
	CityName    string `json:"cityName"`
	CountryCode string `json:"countryCode"`
}

// locationsDocument is the location-lookup response envelope.
type locationsDocument struct {
	Data []locationEntry `json:"data"`
}

// locationEntry is one vendor location record.
type locationEntry struct {
	IATACode string          `json:"iataCode"`
	Name     string          `json:"name"`
	Address  locationAddress `json:"address"`
}

type locationAddress struct {
	CityName    string `json:"cityName"`
	CountryName string `json:"countryName"`
}

// tokenResponse is the OAuth2 client-credentials grant response.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

// airportRow is one record of the raw global airports dataset.
type airportRow struct {
	IATACode   string `json:"iata_code"`
	Name       string `json:"name"`
	City       string `json:"city"`
	Country    string `json:"country"`
	LinksCount int    `json:"links_count"`
}
