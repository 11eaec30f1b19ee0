package lexer

import (
	"fmt"

	"portlang/internal/diag"
	"portlang/internal/token"
)

func (lx *Lexer) scanPunct() token.Token {
	start := lx.cursor.Mark()
	b := lx.cursor.Bump()

	var kind token.Kind
	switch b {
	case '=':
		kind = token.Assign
	case '{':
		kind = token.LBrace
	case '}':
		kind = token.RBrace
	case ';':
		kind = token.Semicolon
	case '%':
		kind = token.Percent
	default:
		kind = token.Invalid
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}

// skipUnknown репортит нераспознанный символ и пропускает ровно одну руну —
// лексирование продолжается, следующие плохие символы дают свои диагностики.
func (lx *Lexer) skipUnknown() {
	start := lx.cursor.Mark()
	r, sz := lx.peekRune()
	if sz == 0 {
		lx.cursor.Bump()
	} else {
		lx.bumpRune()
	}

	sp := lx.cursor.SpanFrom(start)
	lx.report(diag.NewError(diag.LexUnknownChar, sp,
		fmt.Sprintf("unrecognized character: %q", r)).
		WithSuggestion("check for unsupported special characters"))
}
