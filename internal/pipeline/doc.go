// Package pipeline fans the per-sequence search out over a fixed worker pool
// and merges the results into one deterministically ordered hit list.
//
// Sequences are independent tasks; the only shared state is the immutable
// model. Completion order is unspecified and must never affect output, so the
// aggregation pass owns all ordering.
package pipeline
