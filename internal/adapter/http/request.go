package http

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/skysearch/flight-offers-service/internal/domain"
	"github.com/skysearch/flight-offers-service/internal/usecase"
)

// SearchOffersRequest carries the query parameters of GET /api/v1/flights/search.
type SearchOffersRequest struct {
	// Origin is the IATA code of the departure airport (e.g., "LHR")
	Origin string `query:"origin"`

	// Destination is the IATA code of the arrival airport (e.g., "JFK")
	Destination string `query:"destination"`

	// DepartureDate is the desired departure date in YYYY-MM-DD format
	DepartureDate string `query:"departureDate"`

	// ReturnDate is the optional return date; empty means one-way
	ReturnDate string `query:"returnDate"`

	// Adults is the number of adult passengers (1-9, default 1)
	Adults int `query:"adults"`

	// TravelClass is the cabin class (default ECONOMY)
	TravelClass string `query:"travelClass"`

	// MaxPrice excludes offers priced above this amount
	MaxPrice string `query:"maxPrice"`

	// Stops is a comma-separated set of allowed stop counts, e.g. "0,1"
	Stops string `query:"stops"`

	// Airlines is a comma-separated set of allowed airline codes, e.g. "AF,KL"
	Airlines string `query:"airlines"`

	// SortBy selects the result order: price (default) or duration
	SortBy string `query:"sortBy"`
}

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add appends a field error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{Field: field, Message: message})
}

// HasErrors reports whether any errors were collected.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts the errors to a field-to-message map for API responses.
func (v *ValidationErrors) ToMap() map[string]string {
	m := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		if _, exists := m[e.Field]; !exists {
			m[e.Field] = e.Message
		}
	}
	return m
}

// BindSearchOffersRequest binds and normalizes the search query parameters.
func BindSearchOffersRequest(c echo.Context) (*SearchOffersRequest, error) {
	var req SearchOffersRequest
	if err := c.Bind(&req); err != nil {
		return nil, err
	}
	req.Origin = strings.ToUpper(strings.TrimSpace(req.Origin))
	req.Destination = strings.ToUpper(strings.TrimSpace(req.Destination))
	req.TravelClass = strings.ToUpper(strings.TrimSpace(req.TravelClass))
	return &req, nil
}

// Validate checks the request and collects every field error. The criteria
// fields reuse the domain validation; the filter and sort fields are parsed
// here because they only exist at the API boundary.
func (r *SearchOffersRequest) Validate() error {
	errs := &ValidationErrors{}

	criteria := r.toCriteria()
	criteria.SetDefaults()
	if err := criteria.Validate(); err != nil {
		// Domain validation reports the first failing field only; surface it
		// under a generic key so clients still get a field map.
		errs.Add("criteria", strings.TrimPrefix(err.Error(), "invalid request: "))
	}

	if r.MaxPrice != "" {
		price, err := strconv.ParseFloat(r.MaxPrice, 64)
		if err != nil || price < 0 {
			errs.Add("maxPrice", fmt.Sprintf("maxPrice must be a non-negative number, got %q", r.MaxPrice))
		}
	}

	if r.Stops != "" {
		for _, part := range strings.Split(r.Stops, ",") {
			n, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil || n < 0 {
				errs.Add("stops", fmt.Sprintf("stops must be a comma-separated list of non-negative integers, got %q", r.Stops))
				break
			}
		}
	}

	if r.SortBy != "" && !domain.SortOption(r.SortBy).IsValid() {
		errs.Add("sortBy", fmt.Sprintf("sortBy must be one of: price, duration; got %q", r.SortBy))
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func (r *SearchOffersRequest) toCriteria() domain.SearchCriteria {
	return domain.SearchCriteria{
		Origin:        r.Origin,
		Destination:   r.Destination,
		DepartureDate: r.DepartureDate,
		ReturnDate:    r.ReturnDate,
		Adults:        r.Adults,
		TravelClass:   r.TravelClass,
	}
}

// ToDomainCriteria converts a validated request to domain search criteria
// with defaults applied.
func ToDomainCriteria(r *SearchOffersRequest) domain.SearchCriteria {
	criteria := r.toCriteria()
	criteria.SetDefaults()
	return criteria
}

// ToSearchOptions converts a validated request's filter and sort parameters
// to use-case options. It assumes Validate has passed; unparseable values
// cannot reach this point.
func ToSearchOptions(r *SearchOffersRequest) usecase.SearchOptions {
	opts := usecase.DefaultSearchOptions()

	var filters domain.FilterOptions

	if r.MaxPrice != "" {
		if price, err := strconv.ParseFloat(r.MaxPrice, 64); err == nil {
			filters.MaxPrice = &price
		}
	}

	if r.Stops != "" {
		for _, part := range strings.Split(r.Stops, ",") {
			if n, err := strconv.Atoi(strings.TrimSpace(part)); err == nil {
				filters.Stops = append(filters.Stops, n)
			}
		}
	}

	if r.Airlines != "" {
		for _, code := range strings.Split(r.Airlines, ",") {
			code = strings.ToUpper(strings.TrimSpace(code))
			if code != "" {
				filters.Airlines = append(filters.Airlines, code)
			}
		}
	}

	if filters.IsActive() {
		opts.Filters = &filters
	}

	if r.SortBy != "" {
		opts.SortBy = domain.SortOption(r.SortBy)
	}

	return opts
}

// LocationsRequest carries the query parameters of GET /api/v1/locations.
type LocationsRequest struct {
	// Keyword is the autocomplete prefix, at least 2 characters
	Keyword string `query:"keyword"`
}

// Validate checks the locations request.
func (r *LocationsRequest) Validate() error {
	errs := &ValidationErrors{}
	if strings.TrimSpace(r.Keyword) == "" {
		errs.Add("keyword", "keyword is required")
	}
	if errs.HasErrors() {
		return errs
	}
	return nil
}
