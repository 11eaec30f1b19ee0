package parser

import (
	"portlang/internal/ast"
	"portlang/internal/lexer"
	"portlang/internal/token"
)

var assetClassByKind = map[token.Kind]ast.AssetClass{
	token.KwAcoesNacionais:       ast.AcoesNacionais,
	token.KwAcoesInternacionais:  ast.AcoesInternacionais,
	token.KwFundosImobiliarios:   ast.FundosImobiliarios,
	token.KwFundosMultimercado:   ast.FundosMultimercado,
	token.KwRendaFixa:            ast.RendaFixa,
}

var frequencyByKind = map[token.Kind]ast.Frequency{
	token.KwMensal:     ast.Mensal,
	token.KwTrimestral: ast.Trimestral,
	token.KwSemestral:  ast.Semestral,
	token.KwAnual:      ast.Anual,
}

// parseAlocacao — структурно обязательная секция:
//
//	Alocacao := 'alocação' '{' (AssetClass '=' Number '%' ';')* '}'
//
// Возвращает false, если ключевое слово или открывающая скобка не совпали —
// тогда документа нет.
func (p *Parser) parseAlocacao(doc *ast.Portfolio) bool {
	if _, ok := p.expect(token.KwAlocacao); !ok {
		return false
	}
	if _, ok := p.expect(token.LBrace); !ok {
		return false
	}

	for p.peek().IsAssetClass() {
		class := assetClassByKind[p.advance().Kind]
		if _, ok := p.expect(token.Assign); ok {
			if numTok, ok := p.expect(token.NumberLit); ok {
				if _, ok := p.expect(token.Percent); ok {
					// Повторное присваивание класса перезаписывает значение.
					doc.Allocation.Set(class, lexer.NumberValue(numTok))
				}
			}
			p.expect(token.Semicolon)
		}
	}

	p.expect(token.RBrace)
	return true
}

// parseRestricoes — опциональная секция; вызывается только когда текущий
// токен — 'restrições'.
func (p *Parser) parseRestricoes(doc *ast.Portfolio) {
	p.advance() // 'restrições'
	if _, ok := p.expect(token.LBrace); !ok {
		return
	}

	for p.atOr(token.KwVolatilidadeMaxima, token.KwTaxaAdministrativaMaxima) {
		kw := p.advance().Kind
		if _, ok := p.expect(token.Assign); ok {
			if numTok, ok := p.expect(token.NumberLit); ok {
				if _, ok := p.expect(token.Percent); ok {
					v := lexer.NumberValue(numTok)
					if kw == token.KwVolatilidadeMaxima {
						doc.Restrictions.MaxVolatility = v
						doc.Restrictions.HasMaxVolatility = true
					} else {
						doc.Restrictions.MaxFee = v
						doc.Restrictions.HasMaxFee = true
					}
				}
			}
			p.expect(token.Semicolon)
		}
	}

	p.expect(token.RBrace)
}

// parseRebalanceamento — опциональная секция; frequencia и tolerancia
// разбираются по одному разу, в этом порядке.
func (p *Parser) parseRebalanceamento(doc *ast.Portfolio) {
	p.advance() // 'rebalanceamento'
	if _, ok := p.expect(token.LBrace); !ok {
		return
	}

	if p.at(token.KwFrequencia) {
		p.advance()
		if _, ok := p.expect(token.Assign); ok {
			if p.peek().IsFrequencyValue() {
				doc.Rebalance.Frequency = frequencyByKind[p.advance().Kind]
				doc.Rebalance.HasFrequency = true
			}
			p.expect(token.Semicolon)
		}
	}

	if p.at(token.KwTolerancia) {
		p.advance()
		if _, ok := p.expect(token.Assign); ok {
			if numTok, ok := p.expect(token.NumberLit); ok {
				if _, ok := p.expect(token.Percent); ok {
					doc.Rebalance.Tolerance = lexer.NumberValue(numTok)
					doc.Rebalance.HasTolerance = true
				}
			}
			p.expect(token.Semicolon)
		}
	}

	p.expect(token.RBrace)
}
