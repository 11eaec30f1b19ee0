package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"portlang/internal/diag"
	"portlang/internal/source"
)

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (errors, warnings, infos, внутри группы порядок вставки).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем строку исходника с подчёркиванием ^~~~ по Span и Suggestion, если есть.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		writeDiagnostic(w, d, fs, opts)
	}
}

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return color.New(color.FgRed, color.Bold)
	case diag.SevWarning:
		return color.New(color.FgYellow, color.Bold)
	default:
		return color.New(color.FgCyan)
	}
}

func writeDiagnostic(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	sev := d.Severity.String()
	if opts.Color {
		sev = severityColor(d.Severity).Sprint(sev)
	}

	if !d.HasSpan {
		fmt.Fprintf(w, "%s %s: %s\n", sev, d.Code.ID(), d.Message)
		if opts.ShowSuggestion && d.Suggestion != "" {
			fmt.Fprintf(w, "  = sugestão: %s\n", d.Suggestion)
		}
		return
	}

	file := fs.Get(d.Primary.File)
	start, end := fs.Resolve(d.Primary)
	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
		file.Path, start.Line, start.Col, sev, d.Code.ID(), d.Message)

	if opts.ShowSource {
		writeSourceLine(w, file, d.Primary, start, end, opts.Color)
	}
	if opts.ShowSuggestion && d.Suggestion != "" {
		fmt.Fprintf(w, "  = sugestão: %s\n", d.Suggestion)
	}
}

// writeSourceLine prints the first source line the span touches, with a caret
// under the start column and tildes under the rest of the span on that line.
// Column arithmetic is in display cells so accented keywords underline evenly.
func writeSourceLine(w io.Writer, file *source.File, span source.Span, start, end source.LineCol, useColor bool) {
	line := file.GetLine(start.Line)
	if line == "" && span.Len() == 0 {
		return
	}

	fmt.Fprintf(w, "  %s\n", line)

	pad := prefixWidth(line, start.Col)
	width := 1
	if end.Line == start.Line && end.Col > start.Col {
		width = spanWidth(line, start.Col, end.Col)
	}
	marker := "^" + strings.Repeat("~", width-1)
	if useColor {
		marker = color.New(color.FgGreen, color.Bold).Sprint(marker)
	}
	fmt.Fprintf(w, "  %s%s\n", strings.Repeat(" ", pad), marker)
}

// prefixWidth is the display width of line content before 1-based rune column col.
func prefixWidth(line string, col uint32) int {
	width := 0
	n := uint32(1)
	for _, r := range line {
		if n >= col {
			break
		}
		width += runewidth.RuneWidth(r)
		n++
	}
	return width
}

// spanWidth is the display width of the rune columns [from, to) on line.
func spanWidth(line string, from, to uint32) int {
	width := 0
	n := uint32(1)
	for _, r := range line {
		if n >= to {
			break
		}
		if n >= from {
			width += runewidth.RuneWidth(r)
		}
		n++
	}
	if width < 1 {
		width = 1
	}
	return width
}

// Summary prints the closing one-liner of a check run.
func Summary(w io.Writer, bag *diag.Bag, useColor bool) {
	errs := bag.ErrorCount()
	warns := len(bag.Warnings())
	switch {
	case errs > 0:
		line := fmt.Sprintf("✗ %d %s, %d %s", errs, plural(errs, "erro", "erros"), warns, plural(warns, "aviso", "avisos"))
		if useColor {
			line = color.New(color.FgRed, color.Bold).Sprint(line)
		}
		fmt.Fprintln(w, line)
	case warns > 0:
		line := fmt.Sprintf("⚠ %d %s", warns, plural(warns, "aviso", "avisos"))
		if useColor {
			line = color.New(color.FgYellow).Sprint(line)
		}
		fmt.Fprintln(w, line)
	default:
		line := "✓ nenhum problema encontrado"
		if useColor {
			line = color.New(color.FgGreen).Sprint(line)
		}
		fmt.Fprintln(w, line)
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
