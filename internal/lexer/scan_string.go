package lexer

import (
	"portlang/internal/diag"
	"portlang/internal/token"
)

// scanString сканирует "..." без поддержки escape и без переводов строк.
// Перевод строки внутри литерала и незакрытая кавычка — независимые ошибки;
// для одного испорченного литерала могут сработать обе.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '"'

	for !lx.cursor.EOF() && lx.cursor.Peek() != '"' {
		if lx.cursor.Peek() == '\n' {
			// Накопление литерала обрывается на переводе строки; сам '\n'
			// не съедается и позже будет обычным whitespace.
			sp := lx.cursor.SpanFrom(start)
			lx.report(diag.NewError(diag.LexNewlineInString, sp,
				"string cannot contain a line break").
				WithSuggestion("close the string on the same line"))
			break
		}
		lx.cursor.Bump()
	}

	if !lx.cursor.Eat('"') {
		sp := lx.cursor.SpanFrom(start)
		lx.report(diag.NewError(diag.LexUnterminatedString, sp,
			"unterminated string literal").
			WithSuggestion("add '\"' at the end of the string"))
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.StringLit, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}

// StringValue returns the literal's content without the surrounding quotes.
// Tolerates a missing closing quote (malformed literals still carry the
// accumulated text).
func StringValue(t token.Token) string {
	s := t.Text
	if len(s) > 0 && s[0] == '"' {
		s = s[1:]
	}
	if len(s) > 0 && s[len(s)-1] == '"' {
		s = s[:len(s)-1]
	}
	return s
}
