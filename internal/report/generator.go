package report

import (
	"fmt"
	"io"
	"time"

	"portlang/internal/ast"
	"portlang/internal/diag"
)

// Renderer turns a computed Report into output on w.
type Renderer interface {
	Render(w io.Writer, rep *Report) error
}

// Generator drives report generation. Failures are reported as diagnostics,
// not returned as errors: a nil renderer yields a warning (generation is
// optional), a render failure yields an error.
type Generator struct {
	renderer Renderer
	reporter diag.Reporter
	now      func() time.Time
}

// NewGenerator builds a Generator. renderer may be nil when no output
// capability is available; Generate then degrades to a warning.
func NewGenerator(renderer Renderer, reporter diag.Reporter) *Generator {
	return &Generator{
		renderer: renderer,
		reporter: reporter,
		now:      time.Now,
	}
}

// Generate builds and renders a report for doc onto w. Returns true when the
// report was produced.
func (g *Generator) Generate(w io.Writer, doc *ast.Portfolio) bool {
	if g.renderer == nil {
		g.reporter.Report(diag.NewFloating(
			diag.SevWarning,
			diag.GenRendererUnavailable,
			"nenhum renderizador de relatório disponível",
		))
		return false
	}

	rep := Build(doc, g.now())
	if err := g.renderer.Render(w, rep); err != nil {
		g.reporter.Report(diag.NewFloating(
			diag.SevError,
			diag.GenReportFailed,
			fmt.Sprintf("erro ao gerar relatório: %v", err),
		))
		return false
	}
	return true
}
