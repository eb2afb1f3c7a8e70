// Package coverage measures how often the reported interval actually contains π.
//
// Study repeats a seeded estimation runs times (seeds baseSeed, baseSeed+1, …),
// one after another, and counts the runs whose final interval
// [π̂ − h, π̂ + h] covers math.Pi. It also summarizes the spread of the final
// estimates with github.com/aclements/go-moremath/stats.
//
// The half-width h = erfinv(0.95)/√(4N) is a closed form, not a fitted
// standard error, so the empirical rate reported here is the honest number
// to look at before trusting the "95%" label for a given dimension.
package coverage
