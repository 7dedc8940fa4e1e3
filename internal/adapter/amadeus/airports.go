package amadeus

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/skysearch/flight-offers-service/internal/domain"
	"github.com/skysearch/flight-offers-service/internal/infrastructure/logger"
	"github.com/skysearch/flight-offers-service/internal/infrastructure/retry"
	"github.com/skysearch/flight-offers-service/internal/usecase"
)

// AirportCache holds the static global airport dataset in memory. It is
// populated once at startup with Load and then serves concurrent read-only
// keyword searches; there is no implicit fetch-on-miss and no hidden global
// state. It implements usecase.AirportSource.
type AirportCache struct {
	datasetURL string
	httpClient *http.Client
	log        *logger.Logger

	mu       sync.RWMutex
	airports []domain.Location
	loaded   bool
}

// NewAirportCache creates an empty cache that will fetch the dataset from
// the given URL on Load.
func NewAirportCache(datasetURL string, httpClient *http.Client, log *logger.Logger) *AirportCache {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &AirportCache{
		datasetURL: datasetURL,
		httpClient: httpClient,
		log:        log,
	}
}

// Load fetches and indexes the dataset. It is a no-op once a load has
// succeeded, so a startup retry loop can call it repeatedly.
func (c *AirportCache) Load(ctx context.Context) error {
	c.mu.RLock()
	loaded := c.loaded
	c.mu.RUnlock()
	if loaded {
		return nil
	}

	body, err := retry.DoWithResult(ctx, func() ([]byte, error) {
		return c.fetch(ctx)
	}, retry.ProviderConfig.WithRetryIf(retry.SkipPermanent))
	if err != nil {
		return err
	}

	var rows []airportRow
	if err := json.Unmarshal(body, &rows); err != nil {
		return fmt.Errorf("decode airports dataset: %w", err)
	}

	airports := indexAirports(rows)

	c.mu.Lock()
	c.airports = airports
	c.loaded = true
	c.mu.Unlock()

	c.log.Info().Int("airports", len(airports)).Msg("Static airport dataset loaded")
	return nil
}

// fetch downloads the raw dataset once.
func (c *AirportCache) fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.datasetURL, nil)
	if err != nil {
		return nil, retry.NewPermanent(fmt.Errorf("build airports request: %w", err))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &domain.UpstreamError{Op: "airports-dataset", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &domain.UpstreamError{
			Op:         "airports-dataset",
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("dataset endpoint returned %d", resp.StatusCode),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.UpstreamError{Op: "airports-dataset", Err: err}
	}
	return body, nil
}

// indexAirports cleans the raw rows and orders them busiest-first. Rows
// missing a 3-letter IATA code, a name or a city are dropped; the dataset
// wraps some names in literal quotes, which are stripped.
func indexAirports(rows []airportRow) []domain.Location {
	airports := make([]domain.Location, 0, len(rows))
	for _, row := range rows {
		code := strings.ToUpper(strings.TrimSpace(row.IATACode))
		name := stripQuotes(row.Name)
		city := stripQuotes(row.City)
		if len(code) != 3 || name == "" || city == "" {
			continue
		}
		airports = append(airports, domain.Location{
			IATACode: code,
			Name:     name,
			Address: domain.LocationAddress{
				CityName:    city,
				CountryName: stripQuotes(row.Country),
			},
			Ranking: row.LinksCount,
		})
	}

	sort.SliceStable(airports, func(i, j int) bool {
		return airports[i].Ranking > airports[j].Ranking
	})
	return airports
}

func stripQuotes(s string) string {
	return strings.Trim(strings.TrimSpace(s), `"`)
}

// Search implements usecase.AirportSource. Matching is case-insensitive: an
// IATA code matches by prefix, names and cities by substring. Results keep
// the busiest-first dataset order.
func (c *AirportCache) Search(keyword string, limit int) []domain.Location {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if limit <= 0 || keyword == "" {
		return []domain.Location{}
	}
	needle := strings.ToLower(keyword)

	matches := make([]domain.Location, 0, limit)
	for _, a := range c.airports {
		if !matchesAirport(a, needle) {
			continue
		}
		matches = append(matches, a)
		if len(matches) == limit {
			break
		}
	}
	return matches
}

func matchesAirport(a domain.Location, needle string) bool {
	if strings.HasPrefix(strings.ToLower(a.IATACode), needle) {
		return true
	}
	return strings.Contains(strings.ToLower(a.Name), needle) ||
		strings.Contains(strings.ToLower(a.Address.CityName), needle)
}

// Len reports how many airports the cache holds.
func (c *AirportCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.airports)
}

var _ usecase.AirportSource = (*AirportCache)(nil)
