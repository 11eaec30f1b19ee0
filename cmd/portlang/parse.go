package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"portlang/internal/diagfmt"
	"portlang/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.port",
	Short: "Parse a portfolio source file and output the document",
	Long:  `Parse analyzes a portfolio source file and outputs the structured document without semantic validation`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runParse(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	result, err := driver.Parse(filePath, maxDiagnostics)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	if result.Bag.Len() > 0 {
		opts := diagfmt.PrettyOpts{
			Color:          useColor(cmd, os.Stderr),
			ShowSource:     true,
			ShowSuggestion: true,
		}
		diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, opts)
	}

	if result.Doc == nil {
		// Структурный сбой: документа нет, диагностика уже выведена.
		return fmt.Errorf("no document produced for %s", filePath)
	}

	switch format {
	case "pretty":
		return diagfmt.FormatPortfolioPretty(os.Stdout, result.Doc)
	case "json":
		return diagfmt.FormatPortfolioJSON(os.Stdout, result.Doc)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
