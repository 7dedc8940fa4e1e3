package amadeus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/skysearch/flight-offers-service/internal/domain"
	"github.com/skysearch/flight-offers-service/internal/infrastructure/logger"
	"github.com/skysearch/flight-offers-service/internal/infrastructure/retry"
)

const (
	offersPath    = "/v2/shopping/flight-offers"
	locationsPath = "/v1/reference-data/locations"

	// defaultMaxOffers caps how many offers one search requests upstream.
	defaultMaxOffers = 20
)

// ClientConfig holds the upstream API settings for a Client.
type ClientConfig struct {
	// BaseURL is the API host, e.g. https://test.api.amadeus.com
	BaseURL string

	// Timeout bounds each upstream HTTP request
	Timeout time.Duration

	// MaxOffers caps the number of offers requested per search; 0 uses the default
	MaxOffers int
}

// Recorder receives the outcome of each upstream operation. obs.Metrics
// satisfies it; a nil Recorder disables instrumentation.
type Recorder interface {
	IncUpstreamError(op string)
	ObserveUpstreamLatency(op string, seconds float64)
}

// Client calls the Amadeus flight-offers and location-lookup endpoints.
// It implements domain.OfferProvider and domain.LocationProvider. Calls are
// authenticated through the TokenSource and retried on retryable upstream
// failures with exponential backoff.
type Client struct {
	cfg        ClientConfig
	tokens     *TokenSource
	httpClient *http.Client
	retryCfg   retry.Config
	log        *logger.Logger
	recorder   Recorder
}

// NewClient creates a Client. A nil logger disables logging; a nil recorder
// disables instrumentation.
func NewClient(cfg ClientConfig, tokens *TokenSource, log *logger.Logger, rec Recorder) *Client {
	if cfg.MaxOffers <= 0 {
		cfg.MaxOffers = defaultMaxOffers
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Client{
		cfg:        cfg,
		tokens:     tokens,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		retryCfg:   retry.ProviderConfig.WithRetryIf(retryableUpstream),
		log:        log.WithProvider("amadeus"),
		recorder:   rec,
	}
}

// observe records one finished upstream operation, retries included.
func (c *Client) observe(op string, start time.Time, err error) {
	if c.recorder == nil {
		return
	}
	c.recorder.ObserveUpstreamLatency(op, time.Since(start).Seconds())
	if err != nil {
		c.recorder.IncUpstreamError(op)
	}
}

// retryableUpstream retries transport failures, 5xx, rate limiting and a
// rejected token (the cache is invalidated first, so the retry fetches a
// fresh one); other client errors fail fast.
func retryableUpstream(err error) bool {
	var ue *domain.UpstreamError
	if errors.As(err, &ue) {
		return ue.Retryable() || ue.StatusCode == 401
	}
	return false
}

// SearchOffers queries the flight-offers endpoint and normalizes the result.
// The returned slice preserves upstream order and is empty (not nil) when the
// vendor returns no usable data.
func (c *Client) SearchOffers(ctx context.Context, criteria domain.SearchCriteria) ([]domain.FlightOffer, error) {
	params := url.Values{}
	params.Set("originLocationCode", criteria.Origin)
	params.Set("destinationLocationCode", criteria.Destination)
	params.Set("departureDate", criteria.DepartureDate)
	params.Set("adults", strconv.Itoa(criteria.Adults))
	params.Set("max", strconv.Itoa(c.cfg.MaxOffers))
	if criteria.ReturnDate != "" {
		params.Set("returnDate", criteria.ReturnDate)
	}
	if criteria.TravelClass != "" {
		params.Set("travelClass", criteria.TravelClass)
	}

	start := time.Now()
	body, err := retry.DoWithResult(ctx, func() ([]byte, error) {
		return c.get(ctx, "flight-offers", offersPath, params)
	}, c.retryCfg)
	c.observe("flight-offers", start, err)
	if err != nil {
		c.log.Error().Err(err).
			Str("origin", criteria.Origin).
			Str("destination", criteria.Destination).
			Msg("flight-offers search failed")
		return nil, err
	}

	offers := Normalize(DecodeOffers(body))
	c.log.Debug().
		Int("offers", len(offers)).
		Dur("elapsed", time.Since(start)).
		Msg("flight-offers search completed")
	return offers, nil
}

// SearchLocations queries the location-lookup endpoint for airports and
// cities matching the keyword, preserving upstream relevance order.
func (c *Client) SearchLocations(ctx context.Context, keyword string) ([]domain.Location, error) {
	params := url.Values{}
	params.Set("keyword", keyword)
	params.Set("subType", "AIRPORT,CITY")

	start := time.Now()
	body, err := retry.DoWithResult(ctx, func() ([]byte, error) {
		return c.get(ctx, "locations", locationsPath, params)
	}, c.retryCfg)
	c.observe("locations", start, err)
	if err != nil {
		c.log.Error().Err(err).Str("keyword", keyword).Msg("location lookup failed")
		return nil, err
	}

	var doc locationsDocument
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, &domain.UpstreamError{Op: "locations", Err: fmt.Errorf("decode response: %w", err)}
	}
	return normalizeLocations(doc), nil
}

// get performs one authenticated GET against the upstream API. A 401
// invalidates the cached token so the retry wrapper can re-authenticate.
func (c *Client) get(ctx context.Context, op, path string, params url.Values) ([]byte, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", op, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &domain.UpstreamError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		c.tokens.Invalidate()
		return nil, &domain.UpstreamError{
			Op:         op,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("access token rejected"),
		}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &domain.UpstreamError{
			Op:         op,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("endpoint returned %d", resp.StatusCode),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.UpstreamError{Op: op, Err: err}
	}
	return body, nil
}

// Interface guards.
var (
	_ domain.OfferProvider    = (*Client)(nil)
	_ domain.LocationProvider = (*Client)(nil)
)
