package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skysearch/flight-offers-service/internal/domain"
)

func TestPriceHistogram_Empty(t *testing.T) {
	result := PriceHistogram([]domain.FlightOffer{}, DefaultBinSize)
	assert.Equal(t, []domain.PricePoint{}, result)
}

func TestPriceHistogram_SingleOffer(t *testing.T) {
	result := PriceHistogram([]domain.FlightOffer{
		makeOffer("1", "137.00", "PT2H", 0),
	}, 50)

	require.Len(t, result, 1)
	assert.Equal(t, float64(100), result[0].Price)
	assert.Equal(t, 1, result[0].Count)
	assert.Equal(t, "€100", result[0].Label)
}

func TestPriceHistogram_Completeness(t *testing.T) {
	// Prices 120, 180, 320 with bin size 50 must yield contiguous bins
	// 100..300 inclusive, zero-count bins present, counts summing to 3.
	offers := []domain.FlightOffer{
		makeOffer("1", "120.00", "PT2H", 0),
		makeOffer("2", "180.00", "PT2H", 0),
		makeOffer("3", "320.00", "PT2H", 0),
	}

	result := PriceHistogram(offers, 50)

	wantBins := []float64{100, 150, 200, 250, 300}
	require.Len(t, result, len(wantBins))

	total := 0
	for i, point := range result {
		assert.Equal(t, wantBins[i], point.Price)
		total += point.Count
	}
	assert.Equal(t, 3, total)

	// Spot-check the distribution
	assert.Equal(t, 1, result[0].Count, "bin 100 holds 120")
	assert.Equal(t, 1, result[1].Count, "bin 150 holds 180")
	assert.Equal(t, 0, result[2].Count, "bin 200 is empty but present")
	assert.Equal(t, 0, result[3].Count, "bin 250 is empty but present")
	assert.Equal(t, 1, result[4].Count, "bin 300 holds 320")
}

func TestPriceHistogram_PriceOnBinBoundary(t *testing.T) {
	// A price landing exactly on a bin multiple must still be counted.
	offers := []domain.FlightOffer{
		makeOffer("1", "100.00", "PT2H", 0),
		makeOffer("2", "300.00", "PT2H", 0),
	}

	result := PriceHistogram(offers, 50)

	require.Len(t, result, 5)
	assert.Equal(t, 1, result[0].Count)
	assert.Equal(t, 1, result[4].Count)
	assert.Equal(t, float64(300), result[4].Price)
}

func TestPriceHistogram_SortedAscending(t *testing.T) {
	offers := []domain.FlightOffer{
		makeOffer("1", "412.00", "PT2H", 0),
		makeOffer("2", "73.00", "PT2H", 0),
		makeOffer("3", "255.00", "PT2H", 0),
	}

	result := PriceHistogram(offers, 50)

	for i := 1; i < len(result); i++ {
		assert.Less(t, result[i-1].Price, result[i].Price)
	}
}

func TestPriceHistogram_FractionalBinSize(t *testing.T) {
	// Fractional widths must not lose offers: accumulating float64 bin
	// starts drifts off the recomputed keys, so bins are generated by
	// integer index instead.
	offers := []domain.FlightOffer{
		makeOffer("1", "100.30", "PT2H", 0),
		makeOffer("2", "100.70", "PT2H", 0),
		makeOffer("3", "101.10", "PT2H", 0),
	}

	result := PriceHistogram(offers, 0.1)

	require.Len(t, result, 9)
	assert.InDelta(t, 100.2, result[0].Price, 1e-9)
	assert.InDelta(t, 101.0, result[len(result)-1].Price, 1e-9)

	total := 0
	for i, point := range result {
		total += point.Count
		if i > 0 {
			assert.InDelta(t, 0.1, point.Price-result[i-1].Price, 1e-9, "bins stay contiguous")
		}
	}
	assert.Equal(t, len(offers), total, "every offer lands in a generated bin")
}

func TestPriceHistogram_NonPositiveBinFallsBack(t *testing.T) {
	offers := []domain.FlightOffer{
		makeOffer("1", "60.00", "PT2H", 0),
	}

	result := PriceHistogram(offers, 0)

	require.Len(t, result, 1)
	assert.Equal(t, float64(50), result[0].Price)
}

func TestPriceHistogram_CustomBinSize(t *testing.T) {
	offers := []domain.FlightOffer{
		makeOffer("1", "105.00", "PT2H", 0),
		makeOffer("2", "119.00", "PT2H", 0),
		makeOffer("3", "130.00", "PT2H", 0),
	}

	result := PriceHistogram(offers, 10)

	wantBins := []float64{100, 110, 120, 130}
	require.Len(t, result, len(wantBins))
	for i, point := range result {
		assert.Equal(t, wantBins[i], point.Price)
	}
	assert.Equal(t, 1, result[0].Count)
	assert.Equal(t, 1, result[1].Count)
	assert.Equal(t, 0, result[2].Count)
	assert.Equal(t, 1, result[3].Count)
}
