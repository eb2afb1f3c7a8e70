// SPDX-License-Identifier: MIT

package estimator

import "strconv"

// MaxCoordinates bounds sampleCount·dimension so the coordinate buffer and
// the per-sample slices each fit a single Go allocation: 2⁴² on 64-bit
// platforms, 2²⁶ on 32-bit.
const MaxCoordinates = 1 << (strconv.IntSize/2 + 10)

// Estimate draws sampleCount points uniformly from [-1,1]^dimension and
// returns the complete run: samples, running π estimates and the 95%
// half-width sequence.
//
// Algorithm:
//  1. Validate sampleCount ≥ 1 and dimension ≥ 2.
//  2. Resolve the random source (WithSeed / WithRand / crypto seed).
//  3. For each draw: n coordinates 2·U[0,1)−1, inside = Σx² ≤ 1, and the
//     cumulative inside count.
//  4. π estimate per prefix via the dimension's parity closed form.
//  5. Half-widths erfinv(0.95)/√(4(i+1)).
//
// The result is built completely before it is returned; a failing call
// returns (nil, err) and never touches runs produced earlier.
//
// Errors:
//   - ErrInvalidArgument for sampleCount ≤ 0, dimension ≤ 0, dimension == 1,
//     or sampleCount·dimension above MaxCoordinates.
//   - A wrapped crypto/rand error if no source was given and seeding failed.
//
// Complexity: O(sampleCount·dimension) time and memory.
func Estimate(sampleCount, dimension int, opts ...Option) (*Run, error) {
	// Stage 1 (Validate)
	if sampleCount <= 0 {
		return nil, estimatorErrorf(opEstimate, ErrInvalidArgument, "sampleCount must be > 0, got %d", sampleCount)
	}
	if err := validateDimension(dimension); err != nil {
		return nil, estimatorErrorf(opEstimate, err, "")
	}
	if sampleCount > MaxCoordinates/dimension {
		return nil, estimatorErrorf(opEstimate, ErrInvalidArgument,
			"sampleCount·dimension exceeds MaxCoordinates (%d·%d)", sampleCount, dimension)
	}

	// Stage 2 (Prepare)
	cfg, err := newEstimateConfig(opts...)
	if err != nil {
		return nil, estimatorErrorf(opEstimate, err, "")
	}
	rng := cfg.rng

	coords := make([]float64, sampleCount*dimension)
	samples := make([]Sample, sampleCount)
	inside := make([]int, sampleCount)

	// Stage 3 (Sample + label), strictly in draw order.
	count := 0
	var i, j int
	for i = 0; i < sampleCount; i++ {
		p := coords[i*dimension : (i+1)*dimension : (i+1)*dimension]
		sq := 0.0
		for j = 0; j < dimension; j++ {
			p[j] = 2*rng.Float64() - 1
			sq += p[j] * p[j]
		}
		in := sq <= 1
		if in {
			count++
		}
		samples[i] = Sample{Coords: p, Inside: in}
		inside[i] = count
	}

	// Stage 4 (Convert cumulative fractions)
	conv := newPiConverter(dimension)
	pis := make([]float64, sampleCount)
	for i = 0; i < sampleCount; i++ {
		pis[i] = conv.pi(float64(inside[i]) / float64(i+1))
	}

	// Stage 5 (Finalize)
	return &Run{
		dimension:   dimension,
		sampleCount: sampleCount,
		seed:        cfg.seed,
		seeded:      cfg.seeded,
		samples:     samples,
		insideCount: inside,
		piEstimates: pis,
		halfWidths:  HalfWidths(sampleCount),
	}, nil
}

// validateDimension rejects dimension ≤ 0 and the degenerate dimension 1,
// where every draw is inside and the odd closed form has k = 0.
func validateDimension(dimension int) error {
	switch {
	case dimension <= 0:
		return estimatorErrorf("dimension", ErrInvalidArgument, "must be > 0, got %d", dimension)
	case dimension == 1:
		return estimatorErrorf("dimension", ErrInvalidArgument, "1 carries no information about pi")
	}

	return nil
}
