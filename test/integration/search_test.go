package integration

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skysearch/flight-offers-service/internal/usecase"
	"github.com/skysearch/flight-offers-service/test/testutil"
)

// The shared fixture carries five vendor offers: four clean ones priced
// 95.50 (FR, non-stop), 120.00 (BA, non-stop), 275.00 via grandTotal
// (AF, 1 stop) and 430.00 (AF+KL, 2 stops), plus offer "4" with an
// unparseable price total that vetting drops.

func TestSearch_FullPipeline(t *testing.T) {
	ts := NewTestServer(Options{})
	defer ts.Close()
	ts.Upstream.SetOffers(testutil.LoadTestJSON(t, "amadeus_flight_offers.json"))

	res := ts.SearchRequest(DefaultSearchParams())

	require.Equal(t, http.StatusOK, res.Code)
	resp, err := res.ParseSearchResponse()
	require.NoError(t, err)

	// Default sort is price ascending; the bad-price offer is gone.
	assert.Equal(t, []string{"3", "2", "1", "5"}, OfferIDs(resp.Offers))

	// The grandTotal won over the plain total.
	assert.Equal(t, "275.00", resp.Offers[2].Price.Total)

	// City labels came from the dictionaries side-table.
	firstSegment := resp.Offers[2].Itineraries[0].Segments[0]
	assert.Equal(t, "LON", firstSegment.Departure.City)

	// Facets describe the whole vetted set: every airline code, not just the
	// primary ones, sorted; the price ceiling is the rounded-up maximum.
	assert.Equal(t, []string{"AF", "BA", "FR", "KL"}, resp.Facets.Airlines)
	assert.Equal(t, 430.0, resp.Facets.MaxPrice)

	// Badges: cheapest by parsed price, fastest by raw duration text, where
	// "PT10H30M" sorts before "PT7H45M".
	assert.Equal(t, "3", resp.Badges.CheapestID)
	assert.Equal(t, "1", resp.Badges.FastestID)

	// Metadata accounts for the vetting drop.
	assert.Equal(t, 5, resp.Metadata.TotalFetched)
	assert.Equal(t, 1, resp.Metadata.DroppedOffers)
	assert.Equal(t, 4, resp.Metadata.TotalResults)
}

func TestSearch_Histogram(t *testing.T) {
	ts := NewTestServer(Options{})
	defer ts.Close()
	ts.Upstream.SetOffers(testutil.LoadTestJSON(t, "amadeus_flight_offers.json"))

	res := ts.SearchRequest(DefaultSearchParams())

	require.Equal(t, http.StatusOK, res.Code)
	resp, err := res.ParseSearchResponse()
	require.NoError(t, err)

	// Contiguous 50-wide bins from the lowest to the highest occupied bin,
	// zero-count bins included, every vetted offer counted exactly once.
	require.Len(t, resp.Histogram, 8)
	assert.Equal(t, 50.0, resp.Histogram[0].Price)
	assert.Equal(t, "€50", resp.Histogram[0].Label)
	assert.Equal(t, 400.0, resp.Histogram[7].Price)

	total := 0
	for i, bin := range resp.Histogram {
		total += bin.Count
		if i > 0 {
			assert.Equal(t, 50.0, bin.Price-resp.Histogram[i-1].Price)
		}
	}
	assert.Equal(t, 4, total)
}

func TestSearch_Filters(t *testing.T) {
	tests := []struct {
		name    string
		set     map[string]string
		wantIDs []string
	}{
		{
			name:    "max price",
			set:     map[string]string{"maxPrice": "150"},
			wantIDs: []string{"3", "2"},
		},
		{
			name:    "non-stop only",
			set:     map[string]string{"stops": "0"},
			wantIDs: []string{"3", "2"},
		},
		{
			name:    "exact stop set skips the middle",
			set:     map[string]string{"stops": "0,2"},
			wantIDs: []string{"3", "2", "5"},
		},
		{
			name:    "airline matches the primary code only",
			set:     map[string]string{"airlines": "AF"},
			wantIDs: []string{"1", "5"},
		},
		{
			name:    "airline KL matches nothing despite being a secondary code",
			set:     map[string]string{"airlines": "KL"},
			wantIDs: []string{},
		},
		{
			name:    "all filters together",
			set:     map[string]string{"maxPrice": "300", "stops": "1", "airlines": "AF"},
			wantIDs: []string{"1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := NewTestServer(Options{})
			defer ts.Close()
			ts.Upstream.SetOffers(testutil.LoadTestJSON(t, "amadeus_flight_offers.json"))

			params := DefaultSearchParams()
			for k, v := range tt.set {
				params.Set(k, v)
			}

			res := ts.SearchRequest(params)

			require.Equal(t, http.StatusOK, res.Code)
			resp, err := res.ParseSearchResponse()
			require.NoError(t, err)
			assert.Equal(t, tt.wantIDs, OfferIDs(resp.Offers))

			// Facets and histogram ignore the filters.
			assert.Equal(t, []string{"AF", "BA", "FR", "KL"}, resp.Facets.Airlines)
			assert.Equal(t, 430.0, resp.Facets.MaxPrice)
			assert.Len(t, resp.Histogram, 8)
		})
	}
}

func TestSearch_SortByDuration(t *testing.T) {
	ts := NewTestServer(Options{})
	defer ts.Close()
	ts.Upstream.SetOffers(testutil.LoadTestJSON(t, "amadeus_flight_offers.json"))

	params := DefaultSearchParams()
	params.Set("sortBy", "duration")

	res := ts.SearchRequest(params)

	require.Equal(t, http.StatusOK, res.Code)
	resp, err := res.ParseSearchResponse()
	require.NoError(t, err)

	// Lexicographic duration order: "PT10H30M" < "PT15H0M" < "PT7H45M" <
	// "PT8H15M".
	assert.Equal(t, []string{"1", "5", "2", "3"}, OfferIDs(resp.Offers))

	// Badges do not move when the sort changes.
	assert.Equal(t, "3", resp.Badges.CheapestID)
	assert.Equal(t, "1", resp.Badges.FastestID)
}

func TestSearch_StrictIntegrityAborts(t *testing.T) {
	ts := NewTestServer(Options{
		Pipeline: &usecase.Config{StrictIntegrity: true},
	})
	defer ts.Close()
	ts.Upstream.SetOffers(testutil.LoadTestJSON(t, "amadeus_flight_offers.json"))

	res := ts.SearchRequest(DefaultSearchParams())

	assert.Equal(t, http.StatusBadGateway, res.Code)
	assert.Contains(t, string(res.Body), "data_integrity_error")
}

func TestSearch_EmptyUpstream(t *testing.T) {
	ts := NewTestServer(Options{})
	defer ts.Close()

	res := ts.SearchRequest(DefaultSearchParams())

	require.Equal(t, http.StatusOK, res.Code)
	resp, err := res.ParseSearchResponse()
	require.NoError(t, err)

	assert.Empty(t, resp.Offers)
	assert.Empty(t, resp.Histogram)
	assert.Empty(t, resp.Badges.CheapestID)
	assert.Equal(t, []string{}, resp.Facets.Airlines)
	// Empty set reports the documented fallback ceiling.
	assert.Equal(t, float64(usecase.DefaultMaxPrice), resp.Facets.MaxPrice)
}

func TestSearch_UpstreamFailure(t *testing.T) {
	ts := NewTestServer(Options{})
	defer ts.Close()
	ts.Upstream.SetOffersStatus(http.StatusInternalServerError)

	res := ts.SearchRequest(DefaultSearchParams())

	assert.Equal(t, http.StatusBadGateway, res.Code)
	assert.Contains(t, string(res.Body), "upstream_error")
	// Server errors are retried before giving up.
	assert.Greater(t, ts.Upstream.OfferCalls(), 1)
}

func TestSearch_InvalidRequest(t *testing.T) {
	ts := NewTestServer(Options{})
	defer ts.Close()

	params := DefaultSearchParams()
	params.Set("destination", "LHR")

	res := ts.SearchRequest(params)

	assert.Equal(t, http.StatusBadRequest, res.Code)
	// Nothing hit the upstream.
	assert.Equal(t, 0, ts.Upstream.OfferCalls())
}
