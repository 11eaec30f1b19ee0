package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"portlang/internal/diag"
	"portlang/internal/diagfmt"
	"portlang/internal/driver"
	"portlang/internal/report"
)

var reportCmd = &cobra.Command{
	Use:   "report [flags] file.port",
	Short: "Generate an investment portfolio report",
	Long: `Report compiles a portfolio source file and, when it carries no errors,
renders a portfolio analysis report to stdout or a file.`,
	Args: cobra.ExactArgs(1),
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringP("output", "o", "", "write the report to a file instead of stdout")
}

func runReport(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return fmt.Errorf("failed to get output flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	result, err := driver.CompileFile(filePath, maxDiagnostics)
	if err != nil {
		return fmt.Errorf("compilation failed: %w", err)
	}

	color := useColor(cmd, os.Stderr)
	flushDiagnostics := func() {
		if result.Bag.Len() > 0 {
			diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, diagfmt.PrettyOpts{
				Color:          color,
				ShowSource:     true,
				ShowSuggestion: true,
			})
		}
	}

	// Отчёт только по чистой компиляции.
	if result.Bag.HasErrors() || result.Doc == nil {
		flushDiagnostics()
		return fmt.Errorf("cannot generate a report: %s has errors", filePath)
	}

	out := os.Stdout
	renderColor := useColor(cmd, os.Stdout)
	if outputPath != "" {
		f, createErr := os.Create(outputPath)
		if createErr != nil {
			return fmt.Errorf("failed to create output file: %w", createErr)
		}
		defer f.Close()
		out = f
		renderColor = false
	}

	gen := report.NewGenerator(
		&report.TextRenderer{Color: renderColor},
		diag.BagReporter{Bag: result.Bag},
	)
	ok := gen.Generate(out, result.Doc)

	flushDiagnostics()
	if !ok {
		return fmt.Errorf("report generation failed for %s", filePath)
	}
	return nil
}
