package domain

import (
	"fmt"
	"regexp"
	"time"
)

// SearchCriteria defines the parameters for a flight offers search request.
type SearchCriteria struct {
	// Origin is the IATA code of the departure airport (e.g., "LHR")
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport (e.g., "JFK")
	Destination string `json:"destination"`

	// DepartureDate is the desired departure date in YYYY-MM-DD format
	DepartureDate string `json:"departureDate"`

	// ReturnDate is the optional return date in YYYY-MM-DD format;
	// empty means a one-way search
	ReturnDate string `json:"returnDate,omitempty"`

	// Adults is the number of adult passengers (default: 1)
	Adults int `json:"adults"`

	// TravelClass is the cabin class (default: ECONOMY)
	TravelClass string `json:"travelClass,omitempty"`
}

// airportCodeRegex matches valid IATA airport codes (3 uppercase letters).
var airportCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// dateRegex matches dates in YYYY-MM-DD format.
var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// validTravelClasses defines the cabin classes the upstream provider accepts.
var validTravelClasses = map[string]bool{
	"ECONOMY":         true,
	"PREMIUM_ECONOMY": true,
	"BUSINESS":        true,
	"FIRST":           true,
}

// Validate checks if the search criteria is valid.
// Returns a wrapped ErrInvalidRequest error if validation fails.
func (s *SearchCriteria) Validate() error {
	if s.Origin == "" {
		return fmt.Errorf("%w: origin is required", ErrInvalidRequest)
	}
	if !airportCodeRegex.MatchString(s.Origin) {
		return fmt.Errorf("%w: origin must be a valid 3-letter IATA code, got %q", ErrInvalidRequest, s.Origin)
	}

	if s.Destination == "" {
		return fmt.Errorf("%w: destination is required", ErrInvalidRequest)
	}
	if !airportCodeRegex.MatchString(s.Destination) {
		return fmt.Errorf("%w: destination must be a valid 3-letter IATA code, got %q", ErrInvalidRequest, s.Destination)
	}

	if s.Origin == s.Destination {
		return fmt.Errorf("%w: origin and destination must be different", ErrInvalidRequest)
	}

	if s.DepartureDate == "" {
		return fmt.Errorf("%w: departureDate is required", ErrInvalidRequest)
	}
	if !dateRegex.MatchString(s.DepartureDate) {
		return fmt.Errorf("%w: departureDate must be in YYYY-MM-DD format, got %q", ErrInvalidRequest, s.DepartureDate)
	}
	if _, err := time.Parse("2006-01-02", s.DepartureDate); err != nil {
		return fmt.Errorf("%w: departureDate is not a valid date: %s", ErrInvalidRequest, s.DepartureDate)
	}

	// Return date is optional; validate only when present
	if s.ReturnDate != "" {
		if !dateRegex.MatchString(s.ReturnDate) {
			return fmt.Errorf("%w: returnDate must be in YYYY-MM-DD format, got %q", ErrInvalidRequest, s.ReturnDate)
		}
		if _, err := time.Parse("2006-01-02", s.ReturnDate); err != nil {
			return fmt.Errorf("%w: returnDate is not a valid date: %s", ErrInvalidRequest, s.ReturnDate)
		}
		if s.ReturnDate < s.DepartureDate {
			return fmt.Errorf("%w: returnDate must not be before departureDate", ErrInvalidRequest)
		}
	}

	if s.Adults < 1 {
		return fmt.Errorf("%w: adults must be at least 1", ErrInvalidRequest)
	}
	if s.Adults > 9 {
		return fmt.Errorf("%w: adults cannot exceed 9", ErrInvalidRequest)
	}

	if s.TravelClass != "" && !validTravelClasses[s.TravelClass] {
		return fmt.Errorf("%w: travelClass must be one of: ECONOMY, PREMIUM_ECONOMY, BUSINESS, FIRST; got %q", ErrInvalidRequest, s.TravelClass)
	}

	return nil
}

// SetDefaults applies default values to empty optional fields.
func (s *SearchCriteria) SetDefaults() {
	if s.Adults == 0 {
		s.Adults = 1
	}
	if s.TravelClass == "" {
		s.TravelClass = "ECONOMY"
	}
}

// IsRoundTrip reports whether the criteria includes a return date.
func (s *SearchCriteria) IsRoundTrip() bool {
	return s.ReturnDate != ""
}
