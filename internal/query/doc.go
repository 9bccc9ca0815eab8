// Package query implements client-side filtering and sorting of fetched
// result lists (issues, keywords).
//
// The model is deliberately simple: every filter application re-derives the
// result from the full unfiltered slice, there is no incremental update or
// persisted index, and the input slice is never mutated. Enum filters use
// the "ALL" sentinel (or the empty string) to disable the predicate, search
// is a case-insensitive substring match OR'd across the declared text
// fields, and ordering uses a stable sort over a single declared key.
package query
