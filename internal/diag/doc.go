// Package diag defines the shared diagnostic model threaded through every
// stage of the portlang pipeline.
//
// Expected error conditions are always communicated as diagnostics collected
// in a Bag, never as Go errors or panics. Panics are reserved for internal
// invariant violations and are converted back into a diagnostic at the parse
// boundary, so nothing unrecoverable ever escapes the pipeline.
//
// Codes carry a stable short ID (LEX001, SYN001, SEM003, ...) used by
// tooling and tests; the numeric value encodes the category range.
package diag
