package driver

import (
	"fortio.org/safecast"

	"portlang/internal/ast"
	"portlang/internal/diag"
	"portlang/internal/parser"
	"portlang/internal/source"
	"portlang/internal/validator"
)

// CompileResult is the outcome of one full pipeline run: tokens → document
// (possibly nil) → validated verdict, with every diagnostic in Bag.
//
// A compile never fails through a Go error for input-related reasons; the
// error return of CompileFile covers host I/O only. Rejection is expressed
// solely as Bag.HasErrors().
type CompileResult struct {
	FileSet *source.FileSet
	File    *source.File
	Doc     *ast.Portfolio
	Bag     *diag.Bag
	// Valid is the validator verdict: no Error-severity diagnostics raised
	// by validation itself. The authoritative accept/reject gate for
	// downstream consumers remains Bag.HasErrors().
	Valid bool
}

// CompileFile runs the pipeline over a file on disk.
func CompileFile(path string, maxDiagnostics int) (*CompileResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return compileFile(fs, fileID, maxDiagnostics), nil
}

// CompileSource runs the pipeline over in-memory source text. This is the
// compile(sourceText) entry point: one Bag, one lexer, one parser and one
// validator are built per call and shared with nothing else, so independent
// calls may run concurrently.
func CompileSource(name, text string, maxDiagnostics int) *CompileResult {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, []byte(text))
	return compileFile(fs, fileID, maxDiagnostics)
}

func compileFile(fs *source.FileSet, fileID source.FileID, maxDiagnostics int) *CompileResult {
	res := tokenizeFile(fs, fileID, maxDiagnostics)

	maxErrors, err := safecast.Conv[uint](maxDiagnostics)
	if err != nil {
		maxErrors = 0
	}
	parseRes := parser.ParseTokens(res.Tokens, parser.Options{
		Reporter:  diag.BagReporter{Bag: res.Bag},
		MaxErrors: maxErrors,
	})

	valid := validator.New(diag.BagReporter{Bag: res.Bag}).Validate(parseRes.Doc)

	return &CompileResult{
		FileSet: res.FileSet,
		File:    res.File,
		Doc:     parseRes.Doc,
		Bag:     res.Bag,
		Valid:   valid,
	}
}
