// SPDX-License-Identifier: MIT

package estimator

import "github.com/katalvlaran/montepi/matrix"

// Sample is one Monte Carlo draw: its coordinates in [-1,1]ⁿ and whether the
// sum of squared coordinates is ≤ 1.
type Sample struct {
	Coords []float64
	Inside bool
}

// Run is the immutable result of one Estimate call.
//
// All sequences have length SampleCount and are indexed by draw order:
// element i describes the prefix made of the first i+1 draws. The zero Run
// is "not yet estimated".
type Run struct {
	dimension   int
	sampleCount int
	seed        int64
	seeded      bool

	samples     []Sample  // draw order; Coords share one backing buffer
	insideCount []int     // cumulative inside count
	piEstimates []float64 // π from insideCount[i]/(i+1)
	halfWidths  []float64 // erfinv(0.95)/√(4(i+1))
}

// Report is the final snapshot of a run handed to a results reporter.
//
// Pi, Lower and Upper are rounded to Precision decimals (round half to even);
// HalfWidth is the unrounded final confidence half-width.
type Report struct {
	Dimension   int     `json:"dimension"`
	SampleCount int     `json:"samples"`
	InsideCount int     `json:"inside"`
	Pi          float64 `json:"pi"`
	Lower       float64 `json:"lower"`
	Upper       float64 `json:"upper"`
	HalfWidth   float64 `json:"half_width"`
	Precision   int     `json:"precision"`
}

// estimated reports whether r carries a completed estimation.
func (r *Run) estimated() bool {
	return r != nil && len(r.piEstimates) > 0
}

// Dimension returns n, the dimensionality of the sampled cube.
func (r *Run) Dimension() int {
	if r == nil {
		return 0
	}
	return r.dimension
}

// SampleCount returns N, the number of draws.
func (r *Run) SampleCount() int {
	if r == nil {
		return 0
	}
	return r.sampleCount
}

// Len is an alias of SampleCount, the length of every sequence.
func (r *Run) Len() int { return r.SampleCount() }

// Seed returns the seed the run was drawn with. ok is false when the run was
// produced with WithRand (seed unknown) or not produced at all.
func (r *Run) Seed() (seed int64, ok bool) {
	if r == nil {
		return 0, false
	}
	return r.seed, r.seeded
}

// Samples returns a deep copy of the draws in draw order.
// Complexity: O(N·n).
func (r *Run) Samples() []Sample {
	if !r.estimated() {
		return nil
	}
	n := r.dimension
	buf := make([]float64, len(r.samples)*n)
	out := make([]Sample, len(r.samples))
	for i, s := range r.samples {
		c := buf[i*n : (i+1)*n : (i+1)*n]
		copy(c, s.Coords)
		out[i] = Sample{Coords: c, Inside: s.Inside}
	}

	return out
}

// InsideCounts returns a copy of the cumulative inside counts.
func (r *Run) InsideCounts() []int {
	if !r.estimated() {
		return nil
	}
	return append([]int(nil), r.insideCount...)
}

// PiEstimates returns a copy of the running π estimates.
func (r *Run) PiEstimates() []float64 {
	if !r.estimated() {
		return nil
	}
	return append([]float64(nil), r.piEstimates...)
}

// ConfidenceHalfWidths returns a copy of the 95% half-width sequence.
func (r *Run) ConfidenceHalfWidths() []float64 {
	if !r.estimated() {
		return nil
	}
	return append([]float64(nil), r.halfWidths...)
}

// At returns the estimate and half-width after i+1 draws.
// ok is false when i is outside [0, N).
func (r *Run) At(i int) (pi, halfWidth float64, ok bool) {
	if !r.estimated() || i < 0 || i >= len(r.piEstimates) {
		return 0, 0, false
	}
	return r.piEstimates[i], r.halfWidths[i], true
}

// SampleMatrix exports the draws as an N×(n+1) Dense matrix: the first n
// columns hold the coordinates, the last holds 1 for inside and 0 otherwise.
// Complexity: O(N·n).
func (r *Run) SampleMatrix() (*matrix.Dense, error) {
	if !r.estimated() {
		return nil, estimatorErrorf(opSampleMatrix, ErrNotYetEstimated, "")
	}
	cols := r.dimension + 1
	data := make([]float64, len(r.samples)*cols)
	for i, s := range r.samples {
		row := data[i*cols : (i+1)*cols]
		copy(row, s.Coords)
		if s.Inside {
			row[r.dimension] = 1
		}
	}

	return matrix.NewDenseFrom(len(r.samples), cols, data)
}
