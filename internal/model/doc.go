// Package model defines the data structures for SERP-Master audit results,
// competitor comparisons, and keyword research data.
//
// All entities in this package are produced by the backend API and are
// immutable once fetched. The client never mutates a result after decoding;
// report writers and filters operate on copies or read-only views.
package model
