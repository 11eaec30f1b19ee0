package lexer

import (
	"portlang/internal/source"
	"portlang/internal/token"
)

// Lexer converts portfolio source text into tokens. It never aborts: every
// lexical problem is reported through Options.Reporter and scanning
// continues, so the returned stream is always EOF-terminated.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token // 1 элементный буфер для токена
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
		look:   nil,
	}
}

// Next возвращает следующий значимый токен.
// После EOF всегда возвращает EOF.
func (lx *Lexer) Next() token.Token {
	// 1) Если есть look — вернуть его и очистить
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	for {
		lx.skipWhitespace()

		if lx.cursor.EOF() {
			return token.Token{
				Kind: token.EOF,
				Span: lx.EmptySpan(),
				Text: "",
			}
		}

		ch := lx.cursor.Peek()

		switch {
		case ch == '=' || ch == '{' || ch == '}' || ch == ';' || ch == '%':
			return lx.scanPunct()

		case ch == '"':
			return lx.scanString()

		case isDec(ch):
			return lx.scanNumber()

		case isIdentStartByte(ch) || ch >= utf8RuneSelf:
			// ASCII буква/underscore или возможный Unicode идентификатор
			return lx.scanIdentOrKeyword()

		default:
			// Нераспознанный символ: диагностика, пропуск одной руны,
			// токен не создаётся — продолжаем сканировать.
			lx.skipUnknown()
		}
	}
}

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// EmptySpan returns a zero-length span at the current offset.
func (lx *Lexer) EmptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

// skipWhitespace съедает пробелы, табы и переводы строк. Токены для них не
// создаются; позиции восстанавливаются из спанов через line index.
func (lx *Lexer) skipWhitespace() {
	for !lx.cursor.EOF() {
		switch lx.cursor.Peek() {
		case ' ', '\t', '\n', '\r':
			lx.cursor.Bump()
		default:
			return
		}
	}
}
