package diag

import (
	"testing"

	"portlang/internal/source"
)

func TestBag_SeverityBuckets(t *testing.T) {
	bag := NewBag(0)

	bag.Add(NewFloating(SevWarning, SemMissingProfile, "w1"))
	bag.Add(NewFloating(SevError, SemNoAllocation, "e1"))
	bag.Add(NewFloating(SevInfo, SemMissingProfile, "i1"))
	bag.Add(NewFloating(SevError, SemAllocationExceeds, "e2"))

	if got := bag.ErrorCount(); got != 2 {
		t.Errorf("ErrorCount = %d, want 2", got)
	}
	if !bag.HasErrors() || !bag.HasWarnings() {
		t.Error("Expected both errors and warnings present")
	}
	if got := bag.Len(); got != 4 {
		t.Errorf("Len = %d, want 4", got)
	}

	// Items: errors, warnings, infos; внутри группы порядок вставки.
	items := bag.Items()
	wantMsgs := []string{"e1", "e2", "w1", "i1"}
	for i, want := range wantMsgs {
		if items[i].Message != want {
			t.Errorf("Items[%d].Message = %q, want %q", i, items[i].Message, want)
		}
	}
}

func TestBag_MaxLimit(t *testing.T) {
	bag := NewBag(2)

	if !bag.Add(NewFloating(SevError, SemNoAllocation, "first")) {
		t.Fatal("first Add should succeed")
	}
	if !bag.Add(NewFloating(SevError, SemNoAllocation, "second")) {
		t.Fatal("second Add should succeed")
	}
	if bag.Add(NewFloating(SevError, SemNoAllocation, "third")) {
		t.Error("third Add should be rejected by the limit")
	}
	if got := bag.Len(); got != 2 {
		t.Errorf("Len = %d, want 2", got)
	}
}

func TestBag_Merge(t *testing.T) {
	a := NewBag(0)
	a.Add(NewFloating(SevError, SemNoAllocation, "a-err"))

	b := NewBag(0)
	b.Add(NewFloating(SevWarning, SemMissingProfile, "b-warn"))
	b.Add(NewFloating(SevError, SemBadFee, "b-err"))

	a.Merge(b)
	if got := a.Len(); got != 3 {
		t.Fatalf("Len after merge = %d, want 3", got)
	}
	if got := a.ErrorCount(); got != 2 {
		t.Errorf("ErrorCount after merge = %d, want 2", got)
	}
}

func TestCodeID(t *testing.T) {
	tests := []struct {
		code Code
		id   string
	}{
		{LexNewlineInString, "LEX001"},
		{LexUnknownChar, "LEX005"},
		{SynUnexpectedToken, "SYN001"},
		{SynInternal, "SYN999"},
		{SemMissingDocument, "SEM001"},
		{SemAllocationExceeds, "SEM003"},
		{SemMissingProfile, "SEM007"},
		{SemArrojadoRisk, "SEM011"},
		{SemBadVolatility, "SEM013"},
		{SemBadFee, "SEM018"},
		{GenRendererUnavailable, "GEN001"},
		{GenReportFailed, "GEN003"},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			if got := tt.code.ID(); got != tt.id {
				t.Errorf("ID() = %q, want %q", got, tt.id)
			}
		})
	}
}

func TestDiagnosticSpans(t *testing.T) {
	sp := source.Span{File: 1, Start: 3, End: 7}
	located := NewError(SynUnexpectedToken, sp, "boom")
	if !located.HasSpan || located.Primary != sp {
		t.Error("NewError should carry its span")
	}

	floating := NewFloating(SevError, SemMissingDocument, "no doc")
	if floating.HasSpan {
		t.Error("NewFloating must not claim a span")
	}
}
