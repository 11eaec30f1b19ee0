package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"portlang/internal/ast"
)

// AllocationJSON is one allocation entry of the document dump.
type AllocationJSON struct {
	Class    string  `json:"class"`
	Percent  float64 `json:"percent"`
	HighRisk bool    `json:"high_risk"`
}

// PortfolioJSON is the machine-readable form of a parsed document.
// Omitted optional fields stay null rather than zero.
type PortfolioJSON struct {
	Name          *string          `json:"name"`
	Profile       *string          `json:"profile"`
	Horizon       *string          `json:"horizon"`
	Allocation    []AllocationJSON `json:"allocation"`
	MaxVolatility *float64         `json:"max_volatility"`
	MaxFee        *float64         `json:"max_fee"`
	Frequency     *string          `json:"frequency"`
	Tolerance     *float64         `json:"tolerance"`
}

// BuildPortfolioJSON converts a document to its JSON form. doc must be non-nil.
func BuildPortfolioJSON(doc *ast.Portfolio) PortfolioJSON {
	var out PortfolioJSON
	if doc.Config.HasName {
		out.Name = &doc.Config.Name
	}
	if doc.Config.HasProfile {
		out.Profile = &doc.Config.Profile
	}
	if doc.Config.HasHorizon {
		h := doc.Config.Horizon.String()
		out.Horizon = &h
	}
	for _, e := range doc.Allocation.Entries() {
		out.Allocation = append(out.Allocation, AllocationJSON{
			Class:    e.Class.String(),
			Percent:  e.Percent,
			HighRisk: e.Class.HighRisk(),
		})
	}
	if doc.Restrictions.HasMaxVolatility {
		v := doc.Restrictions.MaxVolatility
		out.MaxVolatility = &v
	}
	if doc.Restrictions.HasMaxFee {
		v := doc.Restrictions.MaxFee
		out.MaxFee = &v
	}
	if doc.Rebalance.HasFrequency {
		f := doc.Rebalance.Frequency.String()
		out.Frequency = &f
	}
	if doc.Rebalance.HasTolerance {
		v := doc.Rebalance.Tolerance
		out.Tolerance = &v
	}
	return out
}

// FormatPortfolioJSON сериализует документ в JSON с отступами.
func FormatPortfolioJSON(w io.Writer, doc *ast.Portfolio) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildPortfolioJSON(doc))
}

// FormatPortfolioPretty выводит документ в человекочитаемом формате
func FormatPortfolioPretty(w io.Writer, doc *ast.Portfolio) error {
	fmt.Fprintln(w, "carteira")
	if doc.Config.HasName {
		fmt.Fprintf(w, "  nome: %q\n", doc.Config.Name)
	}
	if doc.Config.HasProfile {
		fmt.Fprintf(w, "  perfil: %s\n", doc.Config.Profile)
	}
	if doc.Config.HasHorizon {
		fmt.Fprintf(w, "  horizonte_temporal: %s\n", doc.Config.Horizon)
	}

	fmt.Fprintln(w, "  alocação")
	for _, e := range doc.Allocation.Entries() {
		fmt.Fprintf(w, "    %s: %g%%\n", e.Class, e.Percent)
	}

	if doc.Restrictions.HasMaxVolatility || doc.Restrictions.HasMaxFee {
		fmt.Fprintln(w, "  restrições")
		if doc.Restrictions.HasMaxVolatility {
			fmt.Fprintf(w, "    volatilidade_maxima: %g%%\n", doc.Restrictions.MaxVolatility)
		}
		if doc.Restrictions.HasMaxFee {
			fmt.Fprintf(w, "    taxa_administrativa_maxima: %g%%\n", doc.Restrictions.MaxFee)
		}
	}

	if doc.Rebalance.HasFrequency || doc.Rebalance.HasTolerance {
		fmt.Fprintln(w, "  rebalanceamento")
		if doc.Rebalance.HasFrequency {
			fmt.Fprintf(w, "    frequencia: %s\n", doc.Rebalance.Frequency)
		}
		if doc.Rebalance.HasTolerance {
			fmt.Fprintf(w, "    tolerancia: %g%%\n", doc.Rebalance.Tolerance)
		}
	}
	return nil
}
