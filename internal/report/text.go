package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// TextRenderer writes a styled terminal report. With Color disabled all
// lipgloss styles collapse to plain text, so the same renderer serves pipes
// and files.
type TextRenderer struct {
	Color bool
}

func (r *TextRenderer) styles() (title, heading, label, warn, ok lipgloss.Style) {
	if !r.Color {
		plain := lipgloss.NewStyle()
		return plain, plain, plain, plain, plain
	}
	title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))
	heading = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	label = lipgloss.NewStyle().Bold(true)
	warn = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	ok = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	return
}

// Render implements Renderer.
func (r *TextRenderer) Render(w io.Writer, rep *Report) error {
	title, heading, label, warn, ok := r.styles()
	var b strings.Builder

	b.WriteString(title.Render("RELATÓRIO DE CARTEIRA DE INVESTIMENTOS"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Gerado em: %s\n\n", rep.GeneratedAt.Format("02/01/2006 às 15:04:05"))

	// Общие сведения.
	b.WriteString(heading.Render("INFORMAÇÕES GERAIS"))
	b.WriteString("\n")
	writeField(&b, label, "Nome da Carteira", orMissing(rep.Name, rep.HasName))
	writeField(&b, label, "Perfil de Risco", orMissing(rep.Profile, rep.HasProfile))
	writeField(&b, label, "Horizonte Temporal", orMissing(rep.Horizon, rep.HasHorizon))
	b.WriteString("\n")

	b.WriteString(heading.Render("ALOCAÇÃO DE ATIVOS"))
	b.WriteString("\n")
	if len(rep.Rows) == 0 {
		b.WriteString(warn.Render("Nenhuma alocação definida"))
		b.WriteString("\n")
	} else {
		labelWidth := 0
		for _, row := range rep.Rows {
			if w := runewidth.StringWidth(row.Label); w > labelWidth {
				labelWidth = w
			}
		}
		for _, row := range rep.Rows {
			risk := "Baixo Risco"
			if row.HighRisk {
				risk = "Alto Risco"
			}
			fmt.Fprintf(&b, "  %s  %6.2f%%  %-11s  %s\n",
				padRight(row.Label, labelWidth), row.Percent, risk, bar(row.Bars))
		}
		fmt.Fprintf(&b, "  %s  %6.2f%%\n", padRight("TOTAL ALOCADO", labelWidth), rep.Metrics.TotalAllocated)
	}
	b.WriteString("\n")

	b.WriteString(heading.Render("ANÁLISE DA CARTEIRA"))
	b.WriteString("\n")
	m := rep.Metrics
	writeField(&b, label, "Total de Classes de Ativos", fmt.Sprintf("%d (%s)", m.Diversification, tier(float64(m.Diversification), 3, 1)))
	allocStatus := warn.Render(fmt.Sprintf("Incorreta (%.2f%%)", m.TotalAllocated))
	if m.AllocationCorrect {
		allocStatus = ok.Render("Correta (100%)")
	}
	writeField(&b, label, "Total Alocado", allocStatus)
	writeField(&b, label, "Exposição ao Alto Risco", fmt.Sprintf("%.2f%% (%s)", m.RiskExposure, tier(m.RiskExposure, 60, 30)))
	writeField(&b, label, "Exposição Conservadora", fmt.Sprintf("%.2f%% (%s)", m.ConservativeExposure, tier(m.ConservativeExposure, 60, 30)))
	if m.HasProfileVerdict {
		verdict := warn.Render("Requer atenção")
		if m.ProfileCompatible {
			verdict = ok.Render("Adequado ao perfil")
		}
		writeField(&b, label, "Compatibilidade com Perfil", verdict)
	}
	b.WriteString("\n")

	if rep.Restrictions.HasMaxVolatility || rep.Restrictions.HasMaxFee {
		b.WriteString(heading.Render("RESTRIÇÕES E LIMITES"))
		b.WriteString("\n")
		if rep.Restrictions.HasMaxVolatility {
			writeField(&b, label, "Volatilidade Máxima", fmt.Sprintf("%.2f%%", rep.Restrictions.MaxVolatility))
		}
		if rep.Restrictions.HasMaxFee {
			writeField(&b, label, "Taxa Administrativa Máxima", fmt.Sprintf("%.2f%%", rep.Restrictions.MaxFee))
		}
		b.WriteString("\n")
	}

	if rep.Rebalance.HasFrequency || rep.Rebalance.HasTolerance {
		b.WriteString(heading.Render("CONFIGURAÇÕES DE REBALANCEAMENTO"))
		b.WriteString("\n")
		if rep.Rebalance.HasFrequency {
			writeField(&b, label, "Frequência", ptTitle.String(rep.Rebalance.Frequency.String()))
		}
		if rep.Rebalance.HasTolerance {
			writeField(&b, label, "Tolerância", fmt.Sprintf("%.2f%%", rep.Rebalance.Tolerance))
		}
		b.WriteString("\n")
	}

	b.WriteString(heading.Render("RECOMENDAÇÕES E OBSERVAÇÕES"))
	b.WriteString("\n")
	for _, rec := range rep.Recommendations {
		fmt.Fprintf(&b, "  • %s\n", rec)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeField(b *strings.Builder, label lipgloss.Style, name, value string) {
	fmt.Fprintf(b, "  %s  %s\n", label.Render(padRight(name+":", 28)), value)
}

// padRight pads by display width, accent-safe.
func padRight(s string, width int) string {
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}

// bar draws the visual allocation bar, one segment per 5%.
func bar(segments int) string {
	return strings.Repeat("█", segments) + "░"
}

func tier(v, high, mid float64) string {
	switch {
	case v > high:
		return "Alta"
	case v > mid:
		return "Moderada"
	default:
		return "Baixa"
	}
}

func orMissing(v string, ok bool) string {
	if !ok || v == "" {
		return "Não informado"
	}
	return v
}
