package lexer

import (
	"strconv"

	"portlang/internal/diag"
	"portlang/internal/token"
)

// scanNumber сканирует цифры и максимум одну точку. Вторая точка — ошибка:
// сканирование числа останавливается, уже прочитанное остаётся токеном, а
// сама точка не съедается (и позже станет LexUnknownChar).
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	seenDot := false

	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch {
		case isDec(b):
			lx.cursor.Bump()
		case b == '.':
			if seenDot {
				sp := lx.cursor.SpanFrom(start)
				lx.report(diag.NewError(diag.LexMultipleDots, sp,
					"number with multiple decimal points").
					WithSuggestion("use a single decimal point"))
				goto done
			}
			seenDot = true
			lx.cursor.Bump()
		default:
			goto done
		}
	}

done:
	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])

	// Защитная проверка: фильтр символов выше уже гарантирует разбираемость,
	// но контракт лексера — любой нечитаемый литерал это диагностика, не сбой.
	if _, err := strconv.ParseFloat(text, 64); err != nil {
		lx.report(diag.NewError(diag.LexBadNumber, sp, "invalid number: "+text))
	}

	return token.Token{Kind: token.NumberLit, Span: sp, Text: text}
}

// NumberValue converts a numeric literal's text to float64, yielding 0 for
// the defensive unparseable case the lexer already reported.
func NumberValue(t token.Token) float64 {
	v, err := strconv.ParseFloat(t.Text, 64)
	if err != nil {
		return 0
	}
	return v
}
