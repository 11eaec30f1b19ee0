package diag

import "portlang/internal/source"

// Reporter — минимальный контракт получения диагностик от фаз.
// Реализации: BagReporter (кладёт в Bag), тестовые репортеры.
type Reporter interface {
	Report(d Diagnostic)
}

// BagReporter — адаптер, который пишет в *Bag.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(d Diagnostic) {
	if r.Bag == nil {
		return
	}
	r.Bag.Add(d)
}

// ReportError is a shortcut for located SevError diagnostics.
func ReportError(r Reporter, code Code, primary source.Span, msg, suggestion string) {
	if r == nil {
		return
	}
	r.Report(NewError(code, primary, msg).WithSuggestion(suggestion))
}

// ReportWarning is a shortcut for located SevWarning diagnostics.
func ReportWarning(r Reporter, code Code, primary source.Span, msg, suggestion string) {
	if r == nil {
		return
	}
	r.Report(New(SevWarning, code, primary, msg).WithSuggestion(suggestion))
}
