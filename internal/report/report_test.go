package report_test

import (
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"portlang/internal/ast"
	"portlang/internal/diag"
	"portlang/internal/report"
)

func sampleDoc() *ast.Portfolio {
	doc := &ast.Portfolio{}
	doc.Config.Name = "Aposentadoria"
	doc.Config.HasName = true
	doc.Config.Profile = "conservador"
	doc.Config.HasProfile = true
	doc.Config.Horizon = ast.Horizon{Amount: 25, Unit: ast.Anos}
	doc.Config.HasHorizon = true
	doc.Allocation.Set(ast.RendaFixa, 70)
	doc.Allocation.Set(ast.FundosImobiliarios, 20)
	doc.Allocation.Set(ast.AcoesNacionais, 10)
	doc.Restrictions.MaxVolatility = 15
	doc.Restrictions.HasMaxVolatility = true
	doc.Rebalance.Frequency = ast.Trimestral
	doc.Rebalance.HasFrequency = true
	return doc
}

func TestBuild_SortsRowsDescending(t *testing.T) {
	rep := report.Build(sampleDoc(), time.Now())

	if len(rep.Rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(rep.Rows))
	}
	for i := 1; i < len(rep.Rows); i++ {
		if rep.Rows[i].Percent > rep.Rows[i-1].Percent {
			t.Errorf("Rows not sorted: %v before %v", rep.Rows[i-1].Percent, rep.Rows[i].Percent)
		}
	}
	if rep.Rows[0].Class != ast.RendaFixa {
		t.Errorf("Largest position should come first, got %v", rep.Rows[0].Class)
	}
	// Один сегмент на каждые 5%.
	if rep.Rows[0].Bars != 14 {
		t.Errorf("Bars = %d, want 14", rep.Rows[0].Bars)
	}
}

func TestBuild_Metrics(t *testing.T) {
	rep := report.Build(sampleDoc(), time.Now())
	m := rep.Metrics

	if m.TotalAllocated != 100 || !m.AllocationCorrect {
		t.Errorf("TotalAllocated = %v correct=%v", m.TotalAllocated, m.AllocationCorrect)
	}
	if m.RiskExposure != 10 {
		t.Errorf("RiskExposure = %v, want 10", m.RiskExposure)
	}
	if m.ConservativeExposure != 90 {
		t.Errorf("ConservativeExposure = %v, want 90", m.ConservativeExposure)
	}
	if !m.HasProfileVerdict || !m.ProfileCompatible {
		t.Errorf("Profile verdict = %v/%v, want compatible", m.HasProfileVerdict, m.ProfileCompatible)
	}
}

func TestBuild_Recommendations(t *testing.T) {
	doc := &ast.Portfolio{}
	doc.Config.Profile = "conservador"
	doc.Config.HasProfile = true
	doc.Allocation.Set(ast.AcoesNacionais, 90)

	rep := report.Build(doc, time.Now())
	joined := strings.Join(rep.Recommendations, "\n")
	for _, want := range []string{
		"Completar alocação",    // сумма 90 < 100
		"perfil conservador",    // риск 90 > 30
		"diversificação",        // одна класса
		"Reduzir concentração",  // 90 > 80
	} {
		if !strings.Contains(joined, want) {
			t.Errorf("Recommendations missing %q:\n%s", want, joined)
		}
	}
}

func TestBuild_WellStructuredFallback(t *testing.T) {
	doc := sampleDoc()
	rep := report.Build(doc, time.Now())
	if len(rep.Recommendations) != 3 {
		t.Errorf("Expected the 3 standing recommendations, got %v", rep.Recommendations)
	}
}

func TestTextRenderer_RendersSections(t *testing.T) {
	rep := report.Build(sampleDoc(), time.Date(2026, 3, 14, 15, 9, 0, 0, time.UTC))

	var sb strings.Builder
	if err := (&report.TextRenderer{}).Render(&sb, rep); err != nil {
		t.Fatal(err)
	}
	out := sb.String()

	for _, want := range []string{
		"RELATÓRIO DE CARTEIRA DE INVESTIMENTOS",
		"14/03/2026",
		"Aposentadoria",
		"Conservador",
		"25 anos",
		"Renda Fixa",
		"Alto Risco",
		"Baixo Risco",
		"█",
		"Volatilidade Máxima",
		"Trimestral",
		"RECOMENDAÇÕES",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Report output missing %q", want)
		}
	}
}

func TestGenerator_NilRendererWarns(t *testing.T) {
	bag := diag.NewBag(0)
	gen := report.NewGenerator(nil, diag.BagReporter{Bag: bag})

	if gen.Generate(io.Discard, sampleDoc()) {
		t.Error("Generate must fail without a renderer")
	}
	if bag.HasErrors() {
		t.Error("Missing renderer is a warning, not an error")
	}
	found := false
	for _, d := range bag.Items() {
		if d.Code == diag.GenRendererUnavailable {
			found = true
		}
	}
	if !found {
		t.Error("Expected GEN001")
	}
}

type failingRenderer struct{}

func (failingRenderer) Render(io.Writer, *report.Report) error {
	return errors.New("disk full")
}

func TestGenerator_RenderFailureIsError(t *testing.T) {
	bag := diag.NewBag(0)
	gen := report.NewGenerator(failingRenderer{}, diag.BagReporter{Bag: bag})

	if gen.Generate(io.Discard, sampleDoc()) {
		t.Error("Generate must report the failure")
	}
	if !bag.HasErrors() {
		t.Error("Render failure is an error")
	}
	found := false
	for _, d := range bag.Items() {
		if d.Code == diag.GenReportFailed {
			found = true
		}
	}
	if !found {
		t.Error("Expected GEN003")
	}
}
