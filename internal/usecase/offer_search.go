package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/skysearch/flight-offers-service/internal/domain"
	"github.com/skysearch/flight-offers-service/internal/infrastructure/logger"
)

// OfferSearchUseCase defines the interface for flight offers search.
type OfferSearchUseCase interface {
	// Search fetches offers from the upstream provider and runs the full
	// derivation pipeline: integrity vetting, facet extraction, histogram,
	// filtering, badge identification and sorting.
	Search(ctx context.Context, criteria domain.SearchCriteria, opts SearchOptions) (*domain.SearchResponse, error)
}

// Recorder receives pipeline-level metrics. The obs package provides the
// production implementation; tests use NopRecorder.
type Recorder interface {
	IncSearches()
	AddIntegrityDrops(n int)
}

// NopRecorder is a Recorder that discards everything.
type NopRecorder struct{}

func (NopRecorder) IncSearches()          {}
func (NopRecorder) AddIntegrityDrops(int) {}

// Config contains configuration options for the use case.
type Config struct {
	// BinSize is the histogram bin width; non-positive falls back to
	// DefaultBinSize
	BinSize float64

	// StrictIntegrity aborts the whole batch when any offer fails vetting,
	// instead of dropping the offending offers and continuing
	StrictIntegrity bool
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		BinSize:         DefaultBinSize,
		StrictIntegrity: false,
	}
}

// offerSearchUseCase implements OfferSearchUseCase.
type offerSearchUseCase struct {
	provider domain.OfferProvider
	cfg      Config
	log      *logger.Logger
	recorder Recorder
}

// NewOfferSearchUseCase creates an OfferSearchUseCase backed by the given
// provider. A nil config uses defaults; a nil logger is replaced by a no-op
// logger; a nil recorder by NopRecorder.
func NewOfferSearchUseCase(provider domain.OfferProvider, config *Config, log *logger.Logger, recorder Recorder) OfferSearchUseCase {
	cfg := DefaultConfig()
	if config != nil {
		if config.BinSize > 0 {
			cfg.BinSize = config.BinSize
		}
		cfg.StrictIntegrity = config.StrictIntegrity
	}
	if log == nil {
		log = logger.Nop()
	}
	if recorder == nil {
		recorder = NopRecorder{}
	}

	return &offerSearchUseCase{
		provider: provider,
		cfg:      cfg,
		log:      log,
		recorder: recorder,
	}
}

// Search implements OfferSearchUseCase.Search.
//
// Facets and the histogram are derived from the full vetted set so the
// filter sidebar and chart describe everything the search found; badges are
// derived from the filtered set so they always point at visible offers.
func (uc *offerSearchUseCase) Search(ctx context.Context, criteria domain.SearchCriteria, opts SearchOptions) (*domain.SearchResponse, error) {
	start := time.Now()
	uc.recorder.IncSearches()

	fetched, err := uc.provider.SearchOffers(ctx, criteria)
	if err != nil {
		return nil, err
	}

	vetted, issues := VetOffers(fetched)
	if len(issues) > 0 {
		uc.recorder.AddIntegrityDrops(len(issues))
		for _, issue := range issues {
			uc.log.Warn().Err(issue).Msg("Offer failed integrity vetting")
		}
		if uc.cfg.StrictIntegrity {
			return nil, errors.Join(issues...)
		}
	}

	facets := ExtractFacets(vetted)
	histogram := PriceHistogram(vetted, uc.cfg.BinSize)

	filtered := ApplyFilters(vetted, opts.Filters)
	badges := FindBadges(filtered)
	sorted := SortOffers(filtered, opts.SortBy)

	response := &domain.SearchResponse{
		SearchCriteria: domain.NewSearchCriteriaResponse(&criteria),
		Offers:         sorted,
		Facets:         facets,
		Badges:         badges,
		Histogram:      histogram,
		Metadata: domain.SearchMetadata{
			TotalResults:  len(sorted),
			TotalFetched:  len(fetched),
			DroppedOffers: len(issues),
			SearchTimeMs:  time.Since(start).Milliseconds(),
		},
	}

	uc.log.Debug().
		Int("fetched", len(fetched)).
		Int("dropped", len(issues)).
		Int("returned", len(sorted)).
		Msg("Search pipeline complete")

	return response, nil
}

// Ensure offerSearchUseCase implements OfferSearchUseCase at compile time.
var _ OfferSearchUseCase = (*offerSearchUseCase)(nil)
