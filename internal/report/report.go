// Package report builds and renders investment portfolio reports from a
// validated document. The generator mirrors the diagnostics-over-errors policy
// of the rest of the pipeline: a missing renderer or a render failure becomes
// a GEN diagnostic, never a Go error surfaced to the caller.
package report

import (
	"fmt"
	"math"
	"sort"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"portlang/internal/ast"
)

// AllocationRow is one asset class line of the report, pre-sorted.
type AllocationRow struct {
	Class    ast.AssetClass
	Label    string
	Percent  float64
	HighRisk bool
	Bars     int // visual bar segments, one per 5%
}

// Metrics are the derived figures shown in the analysis section.
type Metrics struct {
	TotalAllocated       float64
	RiskExposure         float64
	ConservativeExposure float64
	Diversification      int
	AllocationCorrect    bool
	ProfileCompatible    bool
	HasProfileVerdict    bool
}

// Report is the fully computed document handed to a Renderer.
type Report struct {
	GeneratedAt time.Time

	Name       string
	Profile    string
	Horizon    string
	HasName    bool
	HasProfile bool
	HasHorizon bool

	Rows    []AllocationRow
	Metrics Metrics

	Restrictions ast.Restrictions
	Rebalance    ast.Rebalance

	Recommendations []string
}

// ptTitle renders asset and profile labels in Portuguese title case,
// заголовки в отчёте всегда на португальском.
var ptTitle = cases.Title(language.BrazilianPortuguese)

// Build computes a Report from a portfolio document. The document must be
// non-nil; callers gate on compile success before reaching here.
func Build(doc *ast.Portfolio, at time.Time) *Report {
	rep := &Report{
		GeneratedAt:  at,
		HasName:      doc.Config.HasName,
		HasProfile:   doc.Config.HasProfile,
		HasHorizon:   doc.Config.HasHorizon,
		Restrictions: doc.Restrictions,
		Rebalance:    doc.Rebalance,
	}
	if doc.Config.HasName {
		rep.Name = doc.Config.Name
	}
	if doc.Config.HasProfile {
		rep.Profile = ptTitle.String(doc.Config.Profile)
	}
	if doc.Config.HasHorizon {
		rep.Horizon = doc.Config.Horizon.String()
	}

	for _, e := range doc.Allocation.Entries() {
		rep.Rows = append(rep.Rows, AllocationRow{
			Class:    e.Class,
			Label:    classLabel(e.Class),
			Percent:  e.Percent,
			HighRisk: e.Class.HighRisk(),
			Bars:     int(e.Percent / 5),
		})
	}
	// Крупнейшие позиции сверху; при равенстве сохраняем порядок объявления.
	sort.SliceStable(rep.Rows, func(i, j int) bool {
		return rep.Rows[i].Percent > rep.Rows[j].Percent
	})

	rep.Metrics = computeMetrics(doc)
	rep.Recommendations = recommendations(doc, rep.Metrics)
	return rep
}

// classLabel turns the keyword spelling into a display label:
// "fundos_imobiliarios" -> "Fundos Imobiliarios".
func classLabel(c ast.AssetClass) string {
	out := []rune(c.String())
	for i, r := range out {
		if r == '_' {
			out[i] = ' '
		}
	}
	return ptTitle.String(string(out))
}

func computeMetrics(doc *ast.Portfolio) Metrics {
	m := Metrics{
		TotalAllocated:  doc.Allocation.Sum(),
		RiskExposure:    doc.Allocation.RiskExposure(),
		Diversification: doc.Allocation.Len(),
	}
	for _, e := range doc.Allocation.Entries() {
		if !e.Class.HighRisk() {
			m.ConservativeExposure += e.Percent
		}
	}
	m.AllocationCorrect = math.Abs(m.TotalAllocated-100) <= 0.01

	if doc.Config.HasProfile {
		m.HasProfileVerdict = true
		switch doc.Config.Profile {
		case "conservador":
			m.ProfileCompatible = m.RiskExposure <= 30
		case "moderado":
			m.ProfileCompatible = m.RiskExposure >= 20 && m.RiskExposure <= 70
		case "arrojado":
			m.ProfileCompatible = m.RiskExposure >= 50
		default:
			m.HasProfileVerdict = false
		}
	}
	return m
}

func recommendations(doc *ast.Portfolio, m Metrics) []string {
	var recs []string

	if !doc.Allocation.Empty() {
		if !m.AllocationCorrect {
			if m.TotalAllocated > 100 {
				recs = append(recs, fmt.Sprintf("Ajustar alocação: reduzir %.2f%% para totalizar 100%%", m.TotalAllocated-100))
			} else {
				recs = append(recs, fmt.Sprintf("Completar alocação: adicionar %.2f%% para totalizar 100%%", 100-m.TotalAllocated))
			}
		}

		if doc.Config.HasProfile {
			switch doc.Config.Profile {
			case "conservador":
				if m.RiskExposure > 30 {
					recs = append(recs, "Reduzir exposição a ativos de alto risco para adequar ao perfil conservador")
				}
			case "arrojado":
				if m.RiskExposure < 50 {
					recs = append(recs, "Considerar aumentar exposição a ativos de risco para perfil arrojado")
				}
			}
		}

		if m.Diversification < 3 {
			recs = append(recs, "Melhorar diversificação adicionando mais classes de ativos")
		}

		var maxAlloc float64
		for _, e := range doc.Allocation.Entries() {
			if e.Percent > maxAlloc {
				maxAlloc = e.Percent
			}
		}
		if maxAlloc > 80 {
			recs = append(recs, "Reduzir concentração: nenhum ativo deveria representar mais de 80%")
		}
	}

	if len(recs) == 0 {
		recs = append(recs,
			"Carteira bem estruturada, manter monitoramento regular",
			"Revisar periodicamente conforme mudanças no mercado",
			"Considerar rebalanceamento conforme tolerância definida",
		)
	}
	return recs
}
