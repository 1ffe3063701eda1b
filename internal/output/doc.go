// Package output renders aggregated hit lists. Writers own all presentation
// knowledge; ordering is the aggregator's job and is never re-done here.
// JSON/JSONL go through pkg/api (v1) for a stable wire format.
package output
