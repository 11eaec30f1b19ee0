package ast

// AssetClass is one of the five closed categories of investable instrument
// used as allocation keys.
type AssetClass uint8

const (
	// AcoesNacionais represents domestic equities.
	AcoesNacionais AssetClass = iota
	// AcoesInternacionais represents international equities.
	AcoesInternacionais
	// FundosImobiliarios represents real estate funds.
	FundosImobiliarios
	// FundosMultimercado represents multi-market funds.
	FundosMultimercado
	// RendaFixa represents fixed income.
	RendaFixa

	numAssetClasses
)

// AssetClasses lists every asset class in declaration order.
func AssetClasses() []AssetClass {
	out := make([]AssetClass, 0, numAssetClasses)
	for c := AssetClass(0); c < numAssetClasses; c++ {
		out = append(out, c)
	}
	return out
}

// String returns the surface keyword for the class.
func (c AssetClass) String() string {
	switch c {
	case AcoesNacionais:
		return "ações_nacionais"
	case AcoesInternacionais:
		return "ações_internacionais"
	case FundosImobiliarios:
		return "fundos_imobiliarios"
	case FundosMultimercado:
		return "fundos_multimercado"
	case RendaFixa:
		return "renda_fixa"
	}
	return "unknown"
}

// HighRisk reports whether the class counts toward risk exposure (equities
// and multi-market funds).
func (c AssetClass) HighRisk() bool {
	switch c {
	case AcoesNacionais, AcoesInternacionais, FundosMultimercado:
		return true
	default:
		return false
	}
}
