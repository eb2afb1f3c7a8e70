package coverage

import (
	"errors"
	"fmt"
	"math"

	"github.com/aclements/go-moremath/stats"

	"github.com/katalvlaran/montepi/estimator"
)

// ErrInvalidStudy indicates runs ≤ 0.
var ErrInvalidStudy = errors.New("coverage: runs must be > 0")

// Result summarizes a coverage study.
type Result struct {
	Runs        int `json:"runs"`
	SampleCount int `json:"samples"`
	Dimension   int `json:"dimension"`

	Hits int     `json:"hits"` // runs whose final interval covers π
	Rate float64 `json:"rate"` // Hits / Runs

	HalfWidth      float64 `json:"half_width"` // identical for every run
	MeanEstimate   float64 `json:"mean"`
	StdDevEstimate float64 `json:"stddev"` // sample stddev; 0 for a single run
	MedianEstimate float64 `json:"median"`
	MinEstimate    float64 `json:"min"`
	MaxEstimate    float64 `json:"max"`
}

// Study runs runs seeded estimations sequentially and reports interval coverage.
//
// Errors:
//   - ErrInvalidStudy for runs ≤ 0.
//   - estimator.ErrInvalidArgument for invalid sampleCount/dimension.
//
// Complexity: O(runs·sampleCount·dimension) time, O(sampleCount·dimension + runs) memory.
func Study(runs, sampleCount, dimension int, baseSeed int64) (Result, error) {
	if runs <= 0 {
		return Result{}, fmt.Errorf("Study: %w", ErrInvalidStudy)
	}

	finals := make([]float64, runs)
	hits := 0
	var hw float64
	for i := 0; i < runs; i++ {
		run, err := estimator.Estimate(sampleCount, dimension, estimator.WithSeed(baseSeed+int64(i)))
		if err != nil {
			return Result{}, fmt.Errorf("Study: run %d: %w", i, err)
		}
		pi, h, _ := run.At(run.Len() - 1)
		if math.Abs(pi-math.Pi) <= h {
			hits++
		}
		finals[i], hw = pi, h
	}

	sample := stats.Sample{Xs: finals}
	sample.Sort()
	lo, hi := sample.Bounds()

	res := Result{
		Runs:           runs,
		SampleCount:    sampleCount,
		Dimension:      dimension,
		Hits:           hits,
		Rate:           float64(hits) / float64(runs),
		HalfWidth:      hw,
		MeanEstimate:   sample.Mean(),
		MedianEstimate: sample.Quantile(0.5),
		MinEstimate:    lo,
		MaxEstimate:    hi,
	}
	if runs > 1 {
		res.StdDevEstimate = sample.StdDev()
	}

	return res, nil
}
