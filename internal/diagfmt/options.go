// Package diagfmt formats diagnostics and token dumps for terminal and
// machine consumption.
package diagfmt

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color          bool
	ShowSource     bool // печатать строку исходника с подчёркиванием
	ShowSuggestion bool
}

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	IncludePositions bool // добавить line/col
	Max              int  // обрезка вывода, не Bag
}
