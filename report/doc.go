// Package report renders estimator output for people and for other programs.
//
//   - WriteReport:     final Report as an aligned text table or JSON
//   - WriteStudy:      coverage.Result in the same two formats
//   - WriteTrajectory: per-frame (samples, π̂, half-width) as JSON Lines,
//     the series a plotting front end animates
//
// Integer counts in tables are grouped with golang.org/x/text/message
// ("10,000"); floating-point values keep the precision chosen by the
// estimator so the table and the JSON agree digit for digit.
package report
