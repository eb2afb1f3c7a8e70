// Package estimator estimates π by Monte Carlo sampling of the cube [-1,1]ⁿ
// and measuring the fraction of draws that land inside the inscribed unit
// n-ball.
//
// 🚀 What does it compute?
//
//	For N independent uniform draws it records, for every prefix i = 0..N-1,
//	  • insideCount(i):         draws inside the ball among the first i+1
//	  • piEstimate(i):          π recovered from insideCount(i)/(i+1)
//	  • confidenceHalfWidth(i): erfinv(0.95)/√(4(i+1)), data independent
//	so callers get the whole convergence trajectory, not just one number.
//
// ✨ Volume inversion:
//
//	The ball/cube volume ratio p = V(n)/2ⁿ is inverted for π with a parity split:
//	  n = 2k   (even): π = (2ⁿ·k!·p)^(1/k)
//	  n = 2k+1 (odd) : π = ¼·(2ⁿ·(2k+1)!/(2·k!)·p)^(1/k)
//	n = 1 carries no information about π (the "ball" is the whole segment) and
//	is rejected with ErrInvalidArgument.
//
// ⚙️ Usage:
//
//	run, err := estimator.Estimate(10_000, 2, estimator.WithSeed(42))
//	if err != nil { ... }
//	rep, err := run.Summarize()
//	fmt.Println(rep.Pi, rep.Lower, rep.Upper)
//
// A *Run is immutable once returned: every accessor hands out a copy, and a
// second Estimate call produces a new, independent Run. Estimation is a single
// synchronous batch computation; there is no streaming and no cancellation
// because sampleCount bounds the work up front.
//
// Performance:
//
//   - Time:   O(N·n)
//   - Memory: O(N·n) for the retained samples plus O(N) per sequence
package estimator
