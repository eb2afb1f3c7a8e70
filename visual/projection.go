package visual

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/montepi/estimator"
	"github.com/katalvlaran/montepi/matrix"
)

// DefaultProjectionSeed is the seed used by front ends that do not pick one.
const DefaultProjectionSeed int64 = 42

// collinearEps rejects basis draws whose columns are (numerically) parallel.
const collinearEps = 1e-12

// Point2D is a projected sample with its inside label carried through.
type Point2D struct {
	X, Y   float64
	Inside bool
}

// Project2D maps the run's samples onto a random orthonormal plane.
//
// Implementation:
//   - Stage 1: dimension 2 → coordinates are returned as they are.
//   - Stage 2: draw a dimension×2 Gaussian matrix from seed and L2-normalize
//     its columns.
//   - Stage 3: Gram–Schmidt the second column against the first.
//   - Stage 4: points (N×n) × basis (n×2).
//
// The same run and seed always give the same projection.
//
// Errors:
//   - ErrNoSamples for a nil or unestimated run.
//
// Complexity: O(N·n).
func Project2D(run *estimator.Run, seed int64) ([]Point2D, error) {
	samples := run.Samples()
	if len(samples) == 0 {
		return nil, ErrNoSamples
	}
	n := run.Dimension()

	// Stage 1 (Identity view)
	if n == 2 {
		out := make([]Point2D, len(samples))
		for i, s := range samples {
			out[i] = Point2D{X: s.Coords[0], Y: s.Coords[1], Inside: s.Inside}
		}
		return out, nil
	}

	// Stage 2-3 (Basis)
	basis, err := randomPlane(n, rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, fmt.Errorf("Project2D: %w", err)
	}

	// Stage 4 (Project)
	data := make([]float64, 0, len(samples)*n)
	for _, s := range samples {
		data = append(data, s.Coords...)
	}
	points, err := matrix.NewDenseFrom(len(samples), n, data)
	if err != nil {
		return nil, fmt.Errorf("Project2D: %w", err)
	}
	proj, err := matrix.Mul(points, basis)
	if err != nil {
		return nil, fmt.Errorf("Project2D: %w", err)
	}

	out := make([]Point2D, len(samples))
	for i, s := range samples {
		x, err := proj.At(i, 0)
		if err != nil {
			return nil, fmt.Errorf("Project2D: %w", err)
		}
		y, err := proj.At(i, 1)
		if err != nil {
			return nil, fmt.Errorf("Project2D: %w", err)
		}
		out[i] = Point2D{X: x, Y: y, Inside: s.Inside}
	}

	return out, nil
}

// randomPlane returns an n×2 matrix with orthonormal columns drawn from rng.
// Collinear draws (probability zero, but possible in floating point) are redrawn.
func randomPlane(n int, rng *rand.Rand) (*matrix.Dense, error) {
	for {
		g, err := matrix.NewDense(n, 2)
		if err != nil {
			return nil, err
		}
		for i := 0; i < n; i++ {
			_ = g.Set(i, 0, rng.NormFloat64())
			_ = g.Set(i, 1, rng.NormFloat64())
		}

		u, _, err := matrix.NormalizeColumnsL2(g)
		if err != nil {
			return nil, err
		}
		v0, _ := u.Col(0)
		v1, _ := u.Col(1)

		cos := 0.0
		for i := range v0 {
			cos += v0[i] * v1[i]
		}
		sin := math.Sqrt(1 - cos*cos)
		if math.IsNaN(sin) || sin < collinearEps {
			continue
		}
		for i := range v1 {
			_ = u.Set(i, 1, (v1[i]-cos*v0[i])/sin)
		}

		return u, nil
	}
}
