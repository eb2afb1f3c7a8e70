// Package montepi estimates π by Monte Carlo sampling of the n-dimensional
// cube [-1,1]ⁿ and counting the draws that fall inside the unit n-ball.
//
// What is in the box?
//
//	• estimator: one run of N draws, per-prefix π estimates, closed-form
//	  95% confidence half-widths, precision selection and the final Report
//	• matrix:    a small dense matrix used for sample exports and projections
//	• visual:    animation frame schedule, 2-D projection of n-D samples,
//	  normal density curve around the running estimate
//	• coverage:  repeated seeded runs measuring how often the interval holds π
//	• report:    table/JSON summaries and JSON Lines trajectories
//
// The montepi command (cmd/montepi) ties these together with environment and
// flag configuration, optional SQLite run history and OpenTelemetry tracing.
//
// The estimator inverts the volume of the unit n-ball:
//
//	n = 2k   : π = (2ⁿ·k!·p)^(1/k)
//	n = 2k+1 : π = ¼·(2ⁿ·(2k+1)!/(2·k!)·p)^(1/k)
//
// where p is the fraction of draws inside the ball.
//
//	go run github.com/katalvlaran/montepi/cmd/montepi -n 100000 -d 3
package montepi
