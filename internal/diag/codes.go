package diag

import (
	"fmt"
)

type Code uint16

// Category groups diagnostic codes by the pipeline stage that raises them.
type Category uint8

const (
	CatUnknown Category = iota
	// CatLexical covers tokenizer diagnostics.
	CatLexical
	// CatSyntactic covers parser diagnostics.
	CatSyntactic
	// CatSemantic covers validator diagnostics.
	CatSemantic
	// CatValidation is reserved for document-level checks outside the
	// semantic rule battery. No code uses it yet; the range is kept so IDs
	// stay stable when one does.
	CatValidation
	// CatGeneration covers report renderer diagnostics.
	CatGeneration
)

func (c Category) String() string {
	switch c {
	case CatLexical:
		return "Lexical"
	case CatSyntactic:
		return "Syntactic"
	case CatSemantic:
		return "Semantic"
	case CatValidation:
		return "Validation"
	case CatGeneration:
		return "Generation"
	}
	return "Unknown"
}

const (
	// Неизвестная ошибка - на первое время
	UnknownCode Code = 0

	// Лексические
	LexNewlineInString    Code = 1001
	LexUnterminatedString Code = 1002
	LexMultipleDots       Code = 1003
	LexBadNumber          Code = 1004
	LexUnknownChar        Code = 1005

	// Синтаксические
	SynUnexpectedToken Code = 2001
	// SynInternal marks a parser fault unrelated to input content; the parse
	// is aborted, the fault is reported, nothing escapes the pipeline.
	SynInternal Code = 2999

	// Семантические. Номера повторяют историческую таблицу кодов,
	// пропуски (3006, 3010, ...) намеренные.
	SemMissingDocument   Code = 3001
	SemNoAllocation      Code = 3002
	SemAllocationExceeds Code = 3003
	SemAllocationMissing Code = 3004
	SemPercentOutOfRange Code = 3005
	SemMissingProfile    Code = 3007
	SemConservadorRisk   Code = 3008
	SemModeradoRisk      Code = 3009
	SemArrojadoRisk      Code = 3011
	SemBadVolatility     Code = 3013
	SemBadFee            Code = 3018

	// Генерация отчёта
	GenRendererUnavailable Code = 5001
	GenReportFailed        Code = 5003
)

var codeDescription = map[Code]string{
	UnknownCode:            "Unknown error",
	LexNewlineInString:     "String literal contains a line break",
	LexUnterminatedString:  "Unterminated string literal",
	LexMultipleDots:        "Number with multiple decimal points",
	LexBadNumber:           "Invalid numeric literal",
	LexUnknownChar:         "Unrecognized character",
	SynUnexpectedToken:     "Unexpected token",
	SynInternal:            "Internal parser fault",
	SemMissingDocument:     "Portfolio document missing or unusable",
	SemNoAllocation:        "No asset allocation defined",
	SemAllocationExceeds:   "Allocation sum exceeds 100%",
	SemAllocationMissing:   "Allocation sum below 100%",
	SemPercentOutOfRange:   "Allocation percentage out of range",
	SemMissingProfile:      "Risk profile not defined",
	SemConservadorRisk:     "Conservative profile with excessive risk exposure",
	SemModeradoRisk:        "Moderate profile with risk exposure outside range",
	SemArrojadoRisk:        "Aggressive profile with low risk exposure",
	SemBadVolatility:       "Maximum volatility out of range",
	SemBadFee:              "Maximum management fee out of range",
	GenRendererUnavailable: "Report renderer not available",
	GenReportFailed:        "Report generation failed",
}

// Category returns the pipeline stage the code belongs to.
func (c Code) Category() Category {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return CatLexical
	case ic >= 2000 && ic < 3000:
		return CatSyntactic
	case ic >= 3000 && ic < 4000:
		return CatSemantic
	case ic >= 4000 && ic < 5000:
		return CatValidation
	case ic >= 5000 && ic < 6000:
		return CatGeneration
	}
	return CatUnknown
}

// ID returns the stable short identifier used by tooling and tests,
// e.g. LEX001, SYN999, SEM018.
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%03d", ic-1000)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%03d", ic-2000)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("SEM%03d", ic-3000)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("VAL%03d", ic-4000)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("GEN%03d", ic-5000)
	}
	return "E000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
