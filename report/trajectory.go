package report

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/katalvlaran/montepi/estimator"
)

// TrajectoryPoint is one JSON line of WriteTrajectory.
type TrajectoryPoint struct {
	Samples   int     `json:"samples"` // prefix length i+1
	Inside    int     `json:"inside"`
	Pi        float64 `json:"pi"`
	HalfWidth float64 `json:"half_width"`
}

// WriteTrajectory streams the convergence trajectory of run as JSON Lines,
// one line per frame index (0-based prefix index). A nil frames slice writes
// every prefix.
//
// Errors:
//   - estimator.ErrNotYetEstimated for an unestimated run.
//   - ErrFrameOutOfRange for an index outside [0, N).
func WriteTrajectory(w io.Writer, run *estimator.Run, frames []int) error {
	if run.Len() == 0 {
		return fmt.Errorf("WriteTrajectory: %w", estimator.ErrNotYetEstimated)
	}
	inside := run.InsideCounts()

	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	emit := func(i int) error {
		pi, hw, ok := run.At(i)
		if !ok {
			return fmt.Errorf("WriteTrajectory: %w: %d", ErrFrameOutOfRange, i)
		}
		return enc.Encode(TrajectoryPoint{Samples: i + 1, Inside: inside[i], Pi: pi, HalfWidth: hw})
	}

	if frames == nil {
		for i := 0; i < run.Len(); i++ {
			if err := emit(i); err != nil {
				return err
			}
		}
	} else {
		for _, i := range frames {
			if err := emit(i); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}
