// Package matrix provides the small dense linear-algebra surface montepi needs.
//
// Dense is a row-major float64 matrix stored in one flat slice. It backs the
// exported sample matrix of an estimation run (one row per draw, one column per
// coordinate plus a trailing 0/1 inside label) and the random 2-D projection
// used by the visual package.
//
// Only what the callers use is provided:
//
//   - NewDense / NewDenseFrom   — allocation with shape validation
//   - At / Set / Row / Col      — bounds-checked access (errors, never panics)
//   - Mul                       — O(r·k·c) product with a flat fast path
//   - NormalizeColumnsL2        — unit-length columns (zero columns unchanged)
//
// Every error returned by the package matches one of the sentinels in
// errors.go via errors.Is.
package matrix
