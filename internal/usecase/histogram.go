package usecase

import (
	"fmt"
	"math"

	"github.com/skysearch/flight-offers-service/internal/domain"
)

// DefaultBinSize is the histogram bin width used by the search endpoint.
const DefaultBinSize = 50

// PriceHistogram buckets the offers' price totals into fixed-width bins for
// the price-distribution chart.
//
// Bin start = floor(price / binSize) * binSize. Bins are contiguous from the
// bin containing the minimum price to the bin containing the maximum price,
// inclusive; intermediate bins are present with a zero count so the chart
// has no gaps. Output is sorted ascending by bin start.
//
// Edge cases: empty input returns an empty slice; a single offer yields a
// single bin. Suppressing the chart below two data points is the caller's
// concern, not the builder's. A non-positive binSize falls back to
// DefaultBinSize.
func PriceHistogram(offers []domain.FlightOffer, binSize float64) []domain.PricePoint {
	if len(offers) == 0 {
		return []domain.PricePoint{}
	}
	if binSize <= 0 {
		binSize = DefaultBinSize
	}

	minTotal := totalOf(offers[0])
	maxTotal := minTotal
	for _, offer := range offers[1:] {
		total := totalOf(offer)
		if total < minTotal {
			minTotal = total
		}
		if total > maxTotal {
			maxTotal = total
		}
	}

	// Bins are generated by integer index so fractional bin widths cannot
	// drift: accumulating float64 starts loses offers whose recomputed bin
	// start no longer matches an accumulated key.
	loIdx := binIndex(minTotal, binSize)
	hiIdx := binIndex(maxTotal, binSize)

	counts := make(map[int]int, hiIdx-loIdx+1)
	for _, offer := range offers {
		counts[binIndex(totalOf(offer), binSize)]++
	}

	points := make([]domain.PricePoint, 0, hiIdx-loIdx+1)
	for i := loIdx; i <= hiIdx; i++ {
		start := float64(i) * binSize
		points = append(points, domain.PricePoint{
			Price: start,
			Count: counts[i],
			Label: fmt.Sprintf("€%d", int(start)),
		})
	}

	return points
}

// binIndex returns the index of the bin containing price; the bin's
// inclusive start is index*binSize.
func binIndex(price, binSize float64) int {
	return int(math.Floor(price / binSize))
}
