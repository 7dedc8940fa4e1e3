package usecase

import (
	"context"

	"github.com/skysearch/flight-offers-service/internal/domain"
	"github.com/skysearch/flight-offers-service/internal/infrastructure/logger"
)

// minKeywordLength is the shortest keyword worth looking up.
const minKeywordLength = 2

// defaultStaticLimit caps how many static-dataset matches supplement the
// live lookup results.
const defaultStaticLimit = 10

// AirportSource is a read-only view of the static global airport dataset.
type AirportSource interface {
	// Search returns up to limit airports matching the keyword, ordered by
	// prominence. It never performs I/O.
	Search(keyword string, limit int) []domain.Location
}

// LocationLookupUseCase resolves autocomplete keywords to locations.
type LocationLookupUseCase interface {
	Lookup(ctx context.Context, keyword string) ([]domain.Location, error)
}

// locationLookupUseCase merges live provider lookups with the static
// airport dataset, deduplicated by IATA code.
type locationLookupUseCase struct {
	provider domain.LocationProvider
	airports AirportSource
	log      *logger.Logger
}

// NewLocationLookupUseCase creates a LocationLookupUseCase. The airport
// source is optional; when nil only the live provider is consulted.
func NewLocationLookupUseCase(provider domain.LocationProvider, airports AirportSource, log *logger.Logger) LocationLookupUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &locationLookupUseCase{
		provider: provider,
		airports: airports,
		log:      log,
	}
}

// Lookup implements LocationLookupUseCase.Lookup.
//
// Live results come first in the merge, so the provider's fresher records
// win the IATA-code dedup; the static dataset fills in airports the
// provider does not know. A failing live lookup degrades to static-only
// results rather than failing the autocomplete.
func (uc *locationLookupUseCase) Lookup(ctx context.Context, keyword string) ([]domain.Location, error) {
	if len(keyword) < minKeywordLength {
		return []domain.Location{}, nil
	}

	live, err := uc.provider.SearchLocations(ctx, keyword)
	if err != nil {
		uc.log.Warn().Err(err).Str("keyword", keyword).Msg("Live location lookup failed, serving static dataset only")
		live = nil
	}

	var static []domain.Location
	if uc.airports != nil {
		static = uc.airports.Search(keyword, defaultStaticLimit)
	}

	return domain.MergeLocations(live, static), nil
}

// Ensure locationLookupUseCase implements LocationLookupUseCase at compile time.
var _ LocationLookupUseCase = (*locationLookupUseCase)(nil)
