package http

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/skysearch/flight-offers-service/internal/adapter/http/response"
	"github.com/skysearch/flight-offers-service/internal/domain"
	"github.com/skysearch/flight-offers-service/internal/usecase"
)

// FlightHandler handles HTTP requests for flight-related endpoints.
type FlightHandler struct {
	offers    usecase.OfferSearchUseCase
	locations usecase.LocationLookupUseCase
}

// NewFlightHandler creates a FlightHandler with the given use cases.
func NewFlightHandler(offers usecase.OfferSearchUseCase, locations usecase.LocationLookupUseCase) *FlightHandler {
	return &FlightHandler{
		offers:    offers,
		locations: locations,
	}
}

// SearchOffers handles GET /api/v1/flights/search
//
// @Summary Search for flight offers
// @Description Search flight offers with optional filters, returning facets, price badges and a price histogram alongside the offers
// @Tags flights
// @Produce json
// @Param origin query string true "Origin IATA code" example(LHR)
// @Param destination query string true "Destination IATA code" example(JFK)
// @Param departureDate query string true "Departure date (YYYY-MM-DD)"
// @Param returnDate query string false "Return date (YYYY-MM-DD); omit for one-way"
// @Param adults query int false "Number of adults (1-9, default 1)"
// @Param travelClass query string false "Cabin class" Enums(ECONOMY, PREMIUM_ECONOMY, BUSINESS, FIRST)
// @Param maxPrice query number false "Exclude offers priced above this amount"
// @Param stops query string false "Comma-separated allowed stop counts, e.g. 0,1"
// @Param airlines query string false "Comma-separated allowed airline codes, e.g. AF,KL"
// @Param sortBy query string false "Sort order" Enums(price, duration)
// @Success 200 {object} domain.SearchResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 502 {object} response.ErrorDetail "Upstream provider failure or unusable upstream data"
// @Failure 504 {object} response.ErrorDetail "Gateway timeout"
// @Router /api/v1/flights/search [get]
func (h *FlightHandler) SearchOffers(c echo.Context) error {
	req, err := BindSearchOffersRequest(c)
	if err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	criteria := ToDomainCriteria(req)
	opts := ToSearchOptions(req)

	result, err := h.offers.Search(c.Request().Context(), criteria, opts)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.SearchResults(c, result)
}

// SearchLocations handles GET /api/v1/locations
//
// @Summary Look up airports and cities
// @Description Autocomplete airports and cities by keyword, merging live provider results with the static airport dataset
// @Tags locations
// @Produce json
// @Param keyword query string true "Search keyword, at least 2 characters" example(par)
// @Success 200 {array} domain.Location
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Router /api/v1/locations [get]
func (h *FlightHandler) SearchLocations(c echo.Context) error {
	var req LocationsRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	result, err := h.locations.Lookup(c.Request().Context(), req.Keyword)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, result)
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *FlightHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	// Fallback for non-structured validation errors
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to appropriate HTTP responses.
//
// Data-integrity failures map to 502 like upstream failures do, but with a
// distinct error code: the upstream answered, the answer was unusable.
func (h *FlightHandler) handleError(c echo.Context, err error) error {
	if errors.Is(err, domain.ErrDataIntegrity) {
		return response.DataIntegrity(c)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return response.GatewayTimeout(c)
	}

	if errors.Is(err, context.Canceled) {
		return response.RequestCancelled(c)
	}

	if errors.Is(err, domain.ErrUpstream) {
		return response.BadGateway(c)
	}

	if errors.Is(err, domain.ErrInvalidRequest) {
		return response.ValidationErrorWithMessage(c, err.Error())
	}

	return response.InternalServerError(c)
}

// Health handles GET /health
// Simple health check endpoint.
func (h *FlightHandler) Health(c echo.Context) error {
	return response.Health(c)
}
