// Package integration provides helpers and integration tests for the flight
// offers service. The tests run the real HTTP handler, use cases and Amadeus
// adapter against a stubbed upstream API.
package integration

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"

	"github.com/labstack/echo/v4"

	"github.com/skysearch/flight-offers-service/internal/adapter/amadeus"
	httpAdapter "github.com/skysearch/flight-offers-service/internal/adapter/http"
	"github.com/skysearch/flight-offers-service/internal/domain"
	"github.com/skysearch/flight-offers-service/internal/infrastructure/logger"
	"github.com/skysearch/flight-offers-service/internal/usecase"
)

// StubUpstream fakes the Amadeus API: the OAuth2 token endpoint, the
// flight-offers endpoint and the location-lookup endpoint. Bodies and status
// codes are swappable per test.
type StubUpstream struct {
	srv *httptest.Server

	mu              sync.Mutex
	offersStatus    int
	offersBody      []byte
	locationsStatus int
	locationsBody   []byte
	offerCalls      int
}

// NewStubUpstream starts a stub that returns empty result sets until
// configured otherwise.
func NewStubUpstream() *StubUpstream {
	s := &StubUpstream{
		offersStatus:    http.StatusOK,
		offersBody:      []byte(`{"data":[]}`),
		locationsStatus: http.StatusOK,
		locationsBody:   []byte(`{"data":[]}`),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/security/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"access_token":"integration-token","expires_in":1799}`))
	})
	mux.HandleFunc("/v2/shopping/flight-offers", func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		status, body := s.offersStatus, s.offersBody
		s.offerCalls++
		s.mu.Unlock()
		w.WriteHeader(status)
		w.Write(body)
	})
	mux.HandleFunc("/v1/reference-data/locations", func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		status, body := s.locationsStatus, s.locationsBody
		s.mu.Unlock()
		w.WriteHeader(status)
		w.Write(body)
	})

	s.srv = httptest.NewServer(mux)
	return s
}

// Close shuts the stub down.
func (s *StubUpstream) Close() { s.srv.Close() }

// SetOffers replaces the flight-offers response body.
func (s *StubUpstream) SetOffers(body []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.offersStatus = http.StatusOK
	s.offersBody = body
}

// SetOffersStatus makes the flight-offers endpoint fail with the given status.
func (s *StubUpstream) SetOffersStatus(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.offersStatus = status
}

// SetLocations replaces the location-lookup response body.
func (s *StubUpstream) SetLocations(body []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.locationsStatus = http.StatusOK
	s.locationsBody = body
}

// SetLocationsStatus makes the location-lookup endpoint fail.
func (s *StubUpstream) SetLocationsStatus(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.locationsStatus = status
}

// OfferCalls reports how many flight-offers requests the stub received.
func (s *StubUpstream) OfferCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.offerCalls
}

// TestServer wraps an Echo instance running the full application stack.
type TestServer struct {
	Echo     *echo.Echo
	Upstream *StubUpstream
}

// Options tunes the stack under test.
type Options struct {
	// Pipeline overrides the use-case config; nil uses defaults
	Pipeline *usecase.Config

	// Airports supplies a static airport source; nil disables it
	Airports usecase.AirportSource
}

// NewTestServer builds the real handler, use cases and Amadeus client wired
// to a fresh stub upstream. Call Close when done.
func NewTestServer(opts Options) *TestServer {
	upstream := NewStubUpstream()

	tokens := amadeus.NewTokenSource(
		upstream.srv.URL+"/v1/security/oauth2/token",
		"integration-id", "integration-secret",
		upstream.srv.Client(), nil,
	)
	client := amadeus.NewClient(amadeus.ClientConfig{BaseURL: upstream.srv.URL}, tokens, logger.Nop(), nil)

	offerSearch := usecase.NewOfferSearchUseCase(client, opts.Pipeline, logger.Nop(), nil)
	locationLookup := usecase.NewLocationLookupUseCase(client, opts.Airports, logger.Nop())

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	handler := httpAdapter.NewFlightHandler(offerSearch, locationLookup)
	httpAdapter.RegisterRoutes(e, handler)

	return &TestServer{
		Echo:     e,
		Upstream: upstream,
	}
}

// Close shuts down the stub upstream.
func (ts *TestServer) Close() { ts.Upstream.Close() }

// Response represents a test HTTP response.
type Response struct {
	Code int
	Body []byte
}

// Get executes a GET request against the stack.
func (ts *TestServer) Get(path string, params url.Values) Response {
	if len(params) > 0 {
		path = path + "?" + params.Encode()
	}
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, req)
	return Response{Code: rec.Code, Body: rec.Body.Bytes()}
}

// SearchRequest performs a flight offers search with the given parameters.
func (ts *TestServer) SearchRequest(params url.Values) Response {
	return ts.Get("/api/v1/flights/search", params)
}

// LocationsRequest performs a location lookup for the given keyword.
func (ts *TestServer) LocationsRequest(keyword string) Response {
	return ts.Get("/api/v1/locations", url.Values{"keyword": {keyword}})
}

// ParseSearchResponse parses the response body as a SearchResponse.
func (r *Response) ParseSearchResponse() (*domain.SearchResponse, error) {
	var resp domain.SearchResponse
	if err := json.Unmarshal(r.Body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseLocations parses the response body as a location list.
func (r *Response) ParseLocations() ([]domain.Location, error) {
	var locations []domain.Location
	if err := json.Unmarshal(r.Body, &locations); err != nil {
		return nil, err
	}
	return locations, nil
}

// DefaultSearchParams returns a valid one-way search query.
func DefaultSearchParams() url.Values {
	return url.Values{
		"origin":        {"LHR"},
		"destination":   {"JFK"},
		"departureDate": {"2026-10-01"},
	}
}

// OfferIDs extracts the IDs of the offers in order.
func OfferIDs(offers []domain.FlightOffer) []string {
	ids := make([]string, 0, len(offers))
	for _, o := range offers {
		ids = append(ids, o.ID)
	}
	return ids
}
