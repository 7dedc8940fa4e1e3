// Package domain contains the core business entities and rules for the flight
// offers search service. These entities are vendor-agnostic and form the
// foundation upon which all other components are built.
package domain

// FlightOffer represents one priced, bookable itinerary combination returned
// by the upstream provider, normalized into a stable internal shape.
// An offer is immutable once produced; a new search supersedes the whole set.
type FlightOffer struct {
	// ID is an opaque identifier, unique within one search response
	ID string `json:"id"`

	// Price contains the pricing information for the whole offer
	Price Price `json:"price"`

	// Itineraries is a non-empty ordered sequence; index 0 is the outbound
	// direction, index 1 (if present) is the return
	Itineraries []FlightItinerary `json:"itineraries"`

	// ValidatingAirlineCodes lists the 2-3 letter carrier codes whose
	// ticketing conditions govern the offer; index 0 is treated as "the"
	// airline for filtering and display
	ValidatingAirlineCodes []string `json:"validatingAirlineCodes"`

	// NumberOfBookableSeats is the remaining seat count for this offer
	NumberOfBookableSeats int `json:"numberOfBookableSeats"`
}

// Price contains offer-level pricing as decimal strings.
// Total carries the vendor's grand total (fees included) whenever the vendor
// supplies one; otherwise its plain total.
type Price struct {
	// Currency is the ISO 4217 currency code (e.g., "EUR")
	Currency string `json:"currency"`

	// Total is the amount payable, as a decimal string (e.g., "115.00")
	Total string `json:"total"`

	// Base is the fare before fees, as a decimal string
	Base string `json:"base"`
}

// FlightItinerary is one direction of travel, composed of one or more segments.
type FlightItinerary struct {
	// Duration is the ISO 8601 duration text exactly as the vendor sent it
	// (e.g., "PT2H30M"). It is kept opaque and never parsed to a numeric
	// value; ordering on it is lexicographic.
	Duration string `json:"duration"`

	// Segments is a non-empty ordered sequence of non-stop legs
	Segments []FlightSegment `json:"segments"`
}

// Stops returns the itinerary's stop count: segments minus one.
func (i FlightItinerary) Stops() int {
	if len(i.Segments) == 0 {
		return 0
	}
	return len(i.Segments) - 1
}

// FlightSegment is one non-stop flight leg within an itinerary.
type FlightSegment struct {
	// Departure describes where and when the leg starts
	Departure SegmentPoint `json:"departure"`

	// Arrival describes where and when the leg ends
	Arrival SegmentPoint `json:"arrival"`

	// CarrierCode is the 2-3 letter operating carrier code
	CarrierCode string `json:"carrierCode"`

	// Number is the flight number string
	Number string `json:"number"`

	// Duration is the ISO 8601 duration text for this leg alone
	Duration string `json:"duration"`
}

// SegmentPoint is a departure or arrival point of a segment.
type SegmentPoint struct {
	// IATACode is the 3-letter airport code
	IATACode string `json:"iataCode"`

	// At is the scheduled local datetime as an ISO 8601 string
	At string `json:"at"`

	// City is the descriptive city name or code, populated from the vendor's
	// location dictionary when available
	City string `json:"city,omitempty"`
}

// Stops returns the stop count of the outbound itinerary (index 0).
// Filtering consults the outbound direction exclusively.
func (o FlightOffer) Stops() int {
	if len(o.Itineraries) == 0 {
		return 0
	}
	return o.Itineraries[0].Stops()
}

// PrimaryAirline returns the first validating airline code, which governs
// filtering and display. Returns "" for an offer with no codes.
func (o FlightOffer) PrimaryAirline() string {
	if len(o.ValidatingAirlineCodes) == 0 {
		return ""
	}
	return o.ValidatingAirlineCodes[0]
}

// OutboundDuration returns the raw ISO 8601 duration text of the outbound
// itinerary, or "" when the offer has no itineraries.
func (o FlightOffer) OutboundDuration() string {
	if len(o.Itineraries) == 0 {
		return ""
	}
	return o.Itineraries[0].Duration
}
