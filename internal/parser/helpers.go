package parser

import (
	"slices"

	"portlang/internal/diag"
	"portlang/internal/source"
	"portlang/internal/token"
)

// peek возвращает текущий токен, не потребляя его.
func (p *Parser) peek() token.Token {
	return p.peekAt(0)
}

// peekAt возвращает токен со смещением offset; за границами — последний
// (это всегда EOF, лексер гарантирует).
func (p *Parser) peekAt(offset int) token.Token {
	i := p.pos + offset
	if i >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[i]
}

func (p *Parser) at(k token.Kind) bool {
	return p.peek().Kind == k
}

func (p *Parser) atOr(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.peek().Kind)
}

// advance — съедает следующий токен и обновляет lastSpan
func (p *Parser) advance() token.Token {
	tok := p.peek()
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	if tok.Kind != token.EOF && tok.Kind != token.Invalid {
		p.lastSpan = tok.Span
	}
	return tok
}

// getDiagnosticSpan — возвращает лучший span для диагностики.
// Для EOF с нулевой длиной используем позицию после lastSpan.
func (p *Parser) getDiagnosticSpan() source.Span {
	peek := p.peek()
	if peek.Kind == token.EOF && peek.Span.Empty() && p.lastSpan.End > 0 {
		return source.Span{
			File:  p.lastSpan.File,
			Start: p.lastSpan.End,
			End:   p.lastSpan.End,
		}
	}
	return peek.Span
}

// expect — ожидаем конкретный токен. Если нет — репортим и возвращаем
// (invalid, false) БЕЗ потребления: несъеденный токен снова увидит цикл
// секции, и это единственный механизм восстановления.
func (p *Parser) expect(k token.Kind) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	diagSpan := p.getDiagnosticSpan()
	p.report(diag.NewError(diag.SynUnexpectedToken, diagSpan,
		"expected "+k.String()+", found "+p.peek().Kind.String()).
		WithSuggestion("insert the " + k.String() + " token"))
	return token.Token{Kind: token.Invalid, Span: diagSpan, Text: p.peek().Text}, false
}

func (p *Parser) report(d diag.Diagnostic) bool {
	if p.opts.Reporter != nil {
		if d.Severity == diag.SevError {
			p.opts.CurrentErrors++
		}
		if !p.opts.Enough() {
			p.opts.Reporter.Report(d)
			return true
		}
		return false // достигли максимального количества ошибок
	}
	return false // нет reporter - ничего не записали
}
