// Package token defines lexical token kinds for the portlang DSL.
// Invariants:
//   - Token.Text is a slice of the original source (no copies).
//   - Token.Span matches Text exactly (Start..End).
//   - Keywords are case-sensitive, exact UTF-8 spellings including accents
//     (alocação, restrições, ações_nacionais, ...).
//   - Identifiers not in the keyword table are emitted as Ident; the grammar
//     never consumes them, but the lexer still produces them.
package token
