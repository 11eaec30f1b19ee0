package parser

import (
	"portlang/internal/ast"
	"portlang/internal/lexer"
	"portlang/internal/token"
)

// parseCarteira — корневое правило:
//
//	Portfolio := 'carteira' '{' Config Alocacao [Restricoes] [Rebalanceamento] '}'
//
// Ключевое слово carteira, его открывающая скобка и секция alocação —
// структурно обязательны: без них документа нет. Всё остальное — best effort.
func (p *Parser) parseCarteira() (*ast.Portfolio, bool) {
	if _, ok := p.expect(token.KwCarteira); !ok {
		return nil, false
	}
	if _, ok := p.expect(token.LBrace); !ok {
		return nil, false
	}

	doc := &ast.Portfolio{}
	p.parseConfig(doc)

	if !p.parseAlocacao(doc) {
		return nil, false
	}

	if p.at(token.KwRestricoes) {
		p.parseRestricoes(doc)
	}
	if p.at(token.KwRebalanceamento) {
		p.parseRebalanceamento(doc)
	}

	p.expect(token.RBrace)
	return doc, true
}

// parseConfig разбирает поля nome/perfil/horizonte_temporal в любом порядке
// и количестве. Восстановление после ошибки — перепроверка несъеденного
// токена против ключевых слов секции, ничего больше.
func (p *Parser) parseConfig(doc *ast.Portfolio) {
	for p.atOr(token.KwNome, token.KwPerfil, token.KwHorizonteTemporal) {
		switch p.peek().Kind {
		case token.KwNome:
			p.advance()
			if _, ok := p.expect(token.Assign); ok {
				if tok, ok := p.expect(token.StringLit); ok {
					doc.Config.Name = lexer.StringValue(tok)
					doc.Config.HasName = true
				}
				p.expect(token.Semicolon)
			}

		case token.KwPerfil:
			p.advance()
			if _, ok := p.expect(token.Assign); ok {
				if tok, ok := p.expect(token.StringLit); ok {
					doc.Config.Profile = lexer.StringValue(tok)
					doc.Config.HasProfile = true
				}
				p.expect(token.Semicolon)
			}

		case token.KwHorizonteTemporal:
			p.advance()
			if _, ok := p.expect(token.Assign); ok {
				p.parseHorizon(doc)
				p.expect(token.Semicolon)
			}
		}
	}
}

// parseHorizon разбирает пару значение+единица. Единственное место, где
// нужен lookahead дальше одного токена: по peekAt(1) решаем, стоит ли за
// числом единица времени.
func (p *Parser) parseHorizon(doc *ast.Portfolio) {
	if p.at(token.NumberLit) && p.peekAt(1).IsHorizonUnit() {
		numTok := p.advance()
		unitTok := p.advance()
		unit := ast.Anos
		if unitTok.Kind == token.KwMeses {
			unit = ast.Meses
		}
		doc.Config.Horizon = ast.Horizon{
			Amount: int(lexer.NumberValue(numTok)),
			Unit:   unit,
		}
		doc.Config.HasHorizon = true
		return
	}
	// Число без единицы: поле не заполняется, диагностику даст только
	// несовпавший терминатор, как и для остальных полей.
	p.expect(token.NumberLit)
}
