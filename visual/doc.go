// Package visual prepares estimator output for plotting and animation.
//
// It draws nothing itself; it turns an *estimator.Run into the series a
// plotting front end consumes:
//
//   - Frames:          which prefix indices to render as animation frames
//   - Project2D:       a random orthonormal 2-D view of n-dimensional samples
//   - EstimateDensity: the normal curve drawn around the estimate at a frame
//
// Every function works on copies; a Run is never modified.
package visual
