// Package checkmatrix runs an external build checker across a fixed matrix
// of compilation targets and feature sets.
package checkmatrix
