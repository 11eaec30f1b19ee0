package token

import "testing"

func TestLookupKeyword(t *testing.T) {
	tests := []struct {
		word string
		kind Kind
		ok   bool
	}{
		{"carteira", KwCarteira, true},
		{"alocação", KwAlocacao, true},
		{"restrições", KwRestricoes, true},
		{"taxa_administrativa_maxima", KwTaxaAdministrativaMaxima, true},
		{"anual", KwAnual, true},
		// регистр и акценты значимы
		{"Carteira", Invalid, false},
		{"alocacao", Invalid, false},
		{"ALOCAÇÃO", Invalid, false},
		// значения профилей — идентификаторы, не ключевые слова
		{"conservador", Invalid, false},
		{"moderado", Invalid, false},
		{"arrojado", Invalid, false},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			kind, ok := LookupKeyword(tt.word)
			if ok != tt.ok {
				t.Fatalf("LookupKeyword(%q) ok = %v, want %v", tt.word, ok, tt.ok)
			}
			if ok && kind != tt.kind {
				t.Errorf("LookupKeyword(%q) = %v, want %v", tt.word, kind, tt.kind)
			}
		})
	}
}

func TestKindPredicates(t *testing.T) {
	assetClasses := []Kind{
		KwAcoesNacionais, KwAcoesInternacionais,
		KwFundosImobiliarios, KwFundosMultimercado, KwRendaFixa,
	}
	for _, k := range assetClasses {
		if !(Token{Kind: k}).IsAssetClass() {
			t.Errorf("%v should be an asset class", k)
		}
	}
	if (Token{Kind: KwCarteira}).IsAssetClass() {
		t.Error("carteira is not an asset class")
	}

	freqs := []Kind{KwMensal, KwTrimestral, KwSemestral, KwAnual}
	for _, k := range freqs {
		if !(Token{Kind: k}).IsFrequencyValue() {
			t.Errorf("%v should be a frequency value", k)
		}
	}

	for _, k := range []Kind{KwAnos, KwMeses} {
		if !(Token{Kind: k}).IsHorizonUnit() {
			t.Errorf("%v should be a horizon unit", k)
		}
	}
	if (Token{Kind: KwAnual}).IsHorizonUnit() {
		t.Error("anual is a frequency, not a horizon unit")
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{EOF, "EOF"},
		{Ident, "Ident"},
		{KwAlocacao, "alocação"},
		{Percent, "'%'"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
