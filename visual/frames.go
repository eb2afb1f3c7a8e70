package visual

// Frame schedule breakpoints: every prefix is shown early on, then the
// stride widens as the estimate settles.
const (
	firstFrame  = 2
	denseUntil  = 100
	stride25End = 1000
	stride50End = 10000

	stride25  = 25
	stride50  = 50
	stride100 = 100
)

// Frames returns the strictly increasing prefix indices to animate for a run
// of sampleCount draws:
//
//	N ≤ 100          : 2 … N-1
//	100 < N ≤ 1000   : 2 … 99, then every 25th from 100
//	1000 < N ≤ 10000 : … every 25th up to 1000, then every 50th from 1000
//	N > 10000        : … every 50th up to 10000, then every 100th from 10000
//
// All indices are < sampleCount. Returns nil when there is nothing to show.
// Complexity: O(len(result)).
func Frames(sampleCount int) []int {
	var out []int
	appendRange := func(from, to, step int) {
		for i := from; i < to; i += step {
			out = append(out, i)
		}
	}

	switch {
	case sampleCount <= denseUntil:
		appendRange(firstFrame, sampleCount, 1)
	case sampleCount <= stride25End:
		appendRange(firstFrame, denseUntil, 1)
		appendRange(denseUntil, sampleCount, stride25)
	case sampleCount <= stride50End:
		appendRange(firstFrame, denseUntil, 1)
		appendRange(denseUntil, stride25End, stride25)
		appendRange(stride25End, sampleCount, stride50)
	default:
		appendRange(firstFrame, denseUntil, 1)
		appendRange(denseUntil, stride25End, stride25)
		appendRange(stride25End, stride50End, stride50)
		appendRange(stride50End, sampleCount, stride100)
	}

	return out
}
