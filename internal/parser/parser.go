package parser

import (
	"fmt"

	"portlang/internal/ast"
	"portlang/internal/diag"
	"portlang/internal/source"
	"portlang/internal/token"
)

type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough - проверить, достигли ли мы максимального количества ошибок
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

// Result carries the parse outcome. Doc is nil when a structurally required
// element (the carteira keyword, its opening brace, or the allocation
// section's keyword/brace) could not be matched, or when an internal fault
// aborted the parse.
type Result struct {
	Doc *ast.Portfolio
}

// Parser — состояние парсера на одну последовательность токенов.
// Работает по слайсу: кроме одиночного lookahead доступен peekAt с
// произвольным смещением (нужен только для пары значение+единица).
type Parser struct {
	tokens   []token.Token
	pos      int
	opts     Options
	lastSpan source.Span // span последнего съеденного токена для лучшей диагностики
}

// ParseTokens — входная точка для разбора одной EOF-терминированной
// последовательности токенов.
//
// Паника внутри разбора — это всегда внутренний дефект, не свойство входа;
// она перехватывается здесь, превращается в одну SYN999-диагностику и parse
// возвращает отсутствие документа. Это единственный случай, когда разбор
// прерывается, а не деградирует.
func ParseTokens(tokens []token.Token, opts Options) (res Result) {
	if len(tokens) == 0 {
		// Лексер всегда завершает поток EOF; пустой вход — дефект вызова.
		tokens = []token.Token{{Kind: token.EOF}}
	}
	p := Parser{
		tokens: tokens,
		pos:    0,
		opts:   opts,
	}

	defer func() {
		if r := recover(); r != nil {
			p.report(diag.NewFloating(diag.SevError, diag.SynInternal,
				fmt.Sprintf("internal parser fault: %v", r)))
			res = Result{Doc: nil}
		}
	}()

	doc, ok := p.parseCarteira()
	if !ok {
		return Result{Doc: nil}
	}
	return Result{Doc: doc}
}
