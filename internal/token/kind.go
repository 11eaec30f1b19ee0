package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier not found in the keyword table.
	Ident

	// KwCarteira represents the 'carteira' keyword.
	KwCarteira // carteira
	// KwNome represents the 'nome' keyword.
	KwNome // nome
	// KwPerfil represents the 'perfil' keyword.
	KwPerfil // perfil
	// KwHorizonteTemporal represents the 'horizonte_temporal' keyword.
	KwHorizonteTemporal // horizonte_temporal
	// KwAlocacao represents the 'alocação' keyword.
	KwAlocacao // alocação
	// KwRestricoes represents the 'restrições' keyword.
	KwRestricoes // restrições
	// KwRebalanceamento represents the 'rebalanceamento' keyword.
	KwRebalanceamento // rebalanceamento

	// KwAcoesNacionais represents the 'ações_nacionais' asset class keyword.
	KwAcoesNacionais // ações_nacionais
	// KwAcoesInternacionais represents the 'ações_internacionais' asset class keyword.
	KwAcoesInternacionais // ações_internacionais
	// KwFundosImobiliarios represents the 'fundos_imobiliarios' asset class keyword.
	KwFundosImobiliarios // fundos_imobiliarios
	// KwFundosMultimercado represents the 'fundos_multimercado' asset class keyword.
	KwFundosMultimercado // fundos_multimercado
	// KwRendaFixa represents the 'renda_fixa' asset class keyword.
	KwRendaFixa // renda_fixa

	// KwVolatilidadeMaxima represents the 'volatilidade_maxima' restriction keyword.
	KwVolatilidadeMaxima // volatilidade_maxima
	// KwTaxaAdministrativaMaxima represents the 'taxa_administrativa_maxima' restriction keyword.
	KwTaxaAdministrativaMaxima // taxa_administrativa_maxima

	// KwFrequencia represents the 'frequencia' rebalance keyword.
	KwFrequencia // frequencia
	// KwTolerancia represents the 'tolerancia' rebalance keyword.
	KwTolerancia // tolerancia

	// KwAnos represents the 'anos' temporal unit keyword.
	KwAnos // anos
	// KwMeses represents the 'meses' temporal unit keyword.
	KwMeses // meses

	// KwMensal represents the 'mensal' frequency value keyword.
	KwMensal // mensal
	// KwTrimestral represents the 'trimestral' frequency value keyword.
	KwTrimestral // trimestral
	// KwSemestral represents the 'semestral' frequency value keyword.
	KwSemestral // semestral
	// KwAnual represents the 'anual' frequency value keyword.
	KwAnual // anual

	// StringLit represents a string literal token.
	StringLit
	// NumberLit represents a numeric literal token (integer or float).
	NumberLit

	// Assign represents the '=' punctuation token.
	Assign // =
	// LBrace represents the '{' punctuation token.
	LBrace // {
	// RBrace represents the '}' punctuation token.
	RBrace // }
	// Semicolon represents the ';' punctuation token.
	Semicolon // ;
	// Percent represents the '%' punctuation token.
	Percent // %
)

var kindNames = [...]string{
	Invalid:                    "Invalid",
	EOF:                        "EOF",
	Ident:                      "Ident",
	KwCarteira:                 "carteira",
	KwNome:                     "nome",
	KwPerfil:                   "perfil",
	KwHorizonteTemporal:        "horizonte_temporal",
	KwAlocacao:                 "alocação",
	KwRestricoes:               "restrições",
	KwRebalanceamento:          "rebalanceamento",
	KwAcoesNacionais:           "ações_nacionais",
	KwAcoesInternacionais:      "ações_internacionais",
	KwFundosImobiliarios:       "fundos_imobiliarios",
	KwFundosMultimercado:       "fundos_multimercado",
	KwRendaFixa:                "renda_fixa",
	KwVolatilidadeMaxima:       "volatilidade_maxima",
	KwTaxaAdministrativaMaxima: "taxa_administrativa_maxima",
	KwFrequencia:               "frequencia",
	KwTolerancia:               "tolerancia",
	KwAnos:                     "anos",
	KwMeses:                    "meses",
	KwMensal:                   "mensal",
	KwTrimestral:               "trimestral",
	KwSemestral:                "semestral",
	KwAnual:                    "anual",
	StringLit:                  "StringLit",
	NumberLit:                  "NumberLit",
	Assign:                     "'='",
	LBrace:                     "'{'",
	RBrace:                     "'}'",
	Semicolon:                  "';'",
	Percent:                    "'%'",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Unknown"
}
