package driver

import (
	"fortio.org/safecast"

	"portlang/internal/ast"
	"portlang/internal/diag"
	"portlang/internal/parser"
	"portlang/internal/source"
)

// ParseResult is the outcome of lexing plus parsing, without validation.
type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Doc     *ast.Portfolio
	Bag     *diag.Bag
}

// Parse reads and parses one file from disk, skipping semantic validation.
func Parse(path string, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return parseFile(fs, fileID, maxDiagnostics), nil
}

// ParseSource parses in-memory source text, skipping semantic validation.
func ParseSource(name, text string, maxDiagnostics int) *ParseResult {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, []byte(text))
	return parseFile(fs, fileID, maxDiagnostics)
}

func parseFile(fs *source.FileSet, fileID source.FileID, maxDiagnostics int) *ParseResult {
	res := tokenizeFile(fs, fileID, maxDiagnostics)

	maxErrors, err := safecast.Conv[uint](maxDiagnostics)
	if err != nil {
		maxErrors = 0
	}
	parseRes := parser.ParseTokens(res.Tokens, parser.Options{
		Reporter:  diag.BagReporter{Bag: res.Bag},
		MaxErrors: maxErrors,
	})

	return &ParseResult{
		FileSet: res.FileSet,
		File:    res.File,
		Doc:     parseRes.Doc,
		Bag:     res.Bag,
	}
}
