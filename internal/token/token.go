package token

import (
	"portlang/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsLiteral reports whether the token is a string or numeric literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case StringLit, NumberLit:
		return true
	default:
		return false
	}
}

// IsPunct reports whether the token is punctuation.
func (t Token) IsPunct() bool {
	switch t.Kind {
	case Assign, LBrace, RBrace, Semicolon, Percent:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	return t.Kind >= KwCarteira && t.Kind <= KwAnual
}

// IsAssetClass reports whether the token names one of the five asset classes.
func (t Token) IsAssetClass() bool {
	switch t.Kind {
	case KwAcoesNacionais, KwAcoesInternacionais, KwFundosImobiliarios,
		KwFundosMultimercado, KwRendaFixa:
		return true
	default:
		return false
	}
}

// IsFrequencyValue reports whether the token is a rebalance frequency value.
func (t Token) IsFrequencyValue() bool {
	switch t.Kind {
	case KwMensal, KwTrimestral, KwSemestral, KwAnual:
		return true
	default:
		return false
	}
}

// IsHorizonUnit reports whether the token is a temporal unit.
func (t Token) IsHorizonUnit() bool {
	return t.Kind == KwAnos || t.Kind == KwMeses
}
