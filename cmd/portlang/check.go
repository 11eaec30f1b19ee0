package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"portlang/internal/diagfmt"
	"portlang/internal/driver"
	"portlang/internal/pipeline"
	"portlang/internal/ui"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [file.port|directory]",
	Short: "Compile and validate portfolio sources",
	Long: `Check runs the full pipeline (tokenize, parse, validate) over a portfolio
source file or every *.port file in a directory. Without an argument the
source directory comes from the nearest portlang.toml manifest.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	checkCmd.Flags().Bool("no-cache", false, "disable the compile outcome cache")
	checkCmd.Flags().Bool("no-progress", false, "disable the interactive progress display")
}

func runCheck(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}

	target, err := resolveCheckTarget(args)
	if err != nil {
		return err
	}

	st, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}

	if !st.IsDir() {
		return checkSingleFile(cmd, target, maxDiagnostics, format)
	}
	return checkDirectory(cmd, target, maxDiagnostics, format, quiet)
}

// resolveCheckTarget picks the explicit argument or falls back to the
// manifest's source directory.
func resolveCheckTarget(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	manifest, ok, err := loadProjectManifest(".")
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("%s", noPortlangTomlMessage)
	}
	return manifest.SourceDir(), nil
}

func checkSingleFile(cmd *cobra.Command, path string, maxDiagnostics int, format string) error {
	result, err := driver.CompileFile(path, maxDiagnostics)
	if err != nil {
		return fmt.Errorf("compilation failed: %w", err)
	}
	return emitCheckResult(cmd, path, result, format)
}

func checkDirectory(cmd *cobra.Command, dir string, maxDiagnostics int, format string, quiet bool) error {
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return err
	}
	noProgress, err := cmd.Flags().GetBool("no-progress")
	if err != nil {
		return err
	}

	var cache *driver.DiskCache
	if !noCache {
		// Недоступный кеш не мешает проверке.
		cache, _ = driver.OpenDiskCache("portlang")
	}

	req := pipeline.CheckRequest{
		Dir:            dir,
		MaxDiagnostics: maxDiagnostics,
		Cache:          cache,
	}

	interactive := !noProgress && !quiet && format == "pretty" && isTerminal(os.Stdout)
	var results []pipeline.CheckResult
	if interactive {
		results, err = checkWithProgress(cmd, req)
	} else {
		results, err = pipeline.Check(cmd.Context(), req)
	}
	if err != nil {
		return err
	}

	failed := 0
	for _, r := range results {
		if emitErr := emitCheckResult(cmd, r.Path, r.Result, format); emitErr != nil {
			return emitErr
		}
		if r.Result.Bag.HasErrors() {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed validation", failed, len(results))
	}
	return nil
}

// checkWithProgress runs the pipeline alongside a Bubble Tea progress display.
func checkWithProgress(cmd *cobra.Command, req pipeline.CheckRequest) ([]pipeline.CheckResult, error) {
	files, err := driver.ListSourceFiles(req.Dir)
	if err != nil {
		return nil, err
	}

	events := make(chan pipeline.Event, len(files)*4)
	req.Progress = pipeline.ChannelSink{Ch: events}

	prog := tea.NewProgram(ui.NewProgressModel("checking "+req.Dir, files, events))

	var results []pipeline.CheckResult
	var checkErr error
	go func() {
		results, checkErr = pipeline.Check(cmd.Context(), req)
		close(events)
	}()

	if _, err := prog.Run(); err != nil {
		return nil, fmt.Errorf("progress display failed: %w", err)
	}
	return results, checkErr
}

func emitCheckResult(cmd *cobra.Command, path string, result *driver.CompileResult, format string) error {
	switch format {
	case "json":
		return diagfmt.JSON(os.Stdout, result.Bag, result.FileSet, diagfmt.JSONOpts{
			IncludePositions: true,
		})
	case "pretty":
		color := useColor(cmd, os.Stderr)
		if result.Bag.Len() > 0 {
			diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, diagfmt.PrettyOpts{
				Color:          color,
				ShowSource:     true,
				ShowSuggestion: true,
			})
		}
		fmt.Fprintf(os.Stderr, "%s: ", path)
		diagfmt.Summary(os.Stderr, result.Bag, color)
		return nil
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
