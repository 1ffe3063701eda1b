// Package search runs the per-sequence two-stage homology search: coarse
// window filtering, strict re-scoring, and reverse-strand handling. Each call
// is pure CPU work over an immutable model, so sequences can be searched in
// parallel without coordination.
package search
