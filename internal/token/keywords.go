package token

var keywords = map[string]Kind{
	"carteira":                   KwCarteira,
	"nome":                       KwNome,
	"perfil":                     KwPerfil,
	"horizonte_temporal":         KwHorizonteTemporal,
	"alocação":                   KwAlocacao,
	"restrições":                 KwRestricoes,
	"rebalanceamento":            KwRebalanceamento,
	"ações_nacionais":            KwAcoesNacionais,
	"ações_internacionais":       KwAcoesInternacionais,
	"fundos_imobiliarios":        KwFundosImobiliarios,
	"fundos_multimercado":        KwFundosMultimercado,
	"renda_fixa":                 KwRendaFixa,
	"volatilidade_maxima":        KwVolatilidadeMaxima,
	"taxa_administrativa_maxima": KwTaxaAdministrativaMaxima,
	"frequencia":                 KwFrequencia,
	"tolerancia":                 KwTolerancia,
	"anos":                       KwAnos,
	"meses":                      KwMeses,
	"mensal":                     KwMensal,
	"trimestral":                 KwTrimestral,
	"semestral":                  KwSemestral,
	"anual":                      KwAnual,
}

// LookupKeyword возвращает тип и bool если это ключевое слово.
// Ключевые слова регистрозависимые — совпадение должно быть точным,
// включая акценты ("alocação", а не "alocacao").
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
