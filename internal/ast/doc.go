// Package ast defines the portfolio document produced by the parser.
//
// The document is a closed, typed structure: all four sections exist as
// values (possibly empty), so the validator can never reference a field that
// structurally cannot exist. A document is built exactly once per parse and
// is read-only afterwards; neither the validator nor the report renderer
// mutates it.
//
// A document may legally exist in a semantically invalid state (allocation
// not summing to 100%, profile inconsistent with exposure): those are
// validator findings, not structural invariants.
package ast
