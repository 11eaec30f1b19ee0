package parser_test

import (
	"testing"

	"portlang/internal/ast"
	"portlang/internal/diag"
	"portlang/internal/lexer"
	"portlang/internal/parser"
	"portlang/internal/source"
	"portlang/internal/token"
)

// parseSource прогоняет вход через лексер и парсер, возвращая документ и bag.
func parseSource(t *testing.T, input string) (parser.Result, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.port", []byte(input))
	file := fs.Get(fileID)

	bag := diag.NewBag(0)
	lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})

	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}

	res := parser.ParseTokens(tokens, parser.Options{
		Reporter: diag.BagReporter{Bag: bag},
	})
	return res, bag
}

func errorIDs(bag *diag.Bag) []string {
	ids := make([]string, 0, len(bag.Errors()))
	for _, d := range bag.Errors() {
		ids = append(ids, d.Code.ID())
	}
	return ids
}

const validSource = `carteira {
    nome = "Aposentadoria Segura";
    perfil = "conservador";
    horizonte_temporal = 25 anos;

    alocação {
        renda_fixa = 70%;
        fundos_imobiliarios = 20%;
        ações_nacionais = 10%;
    }

    restrições {
        volatilidade_maxima = 15%;
        taxa_administrativa_maxima = 1.5%;
    }

    rebalanceamento {
        frequencia = trimestral;
        tolerancia = 5%;
    }
}`

func TestParse_ValidDocument(t *testing.T) {
	res, bag := parseSource(t, validSource)

	if bag.HasErrors() {
		t.Fatalf("Unexpected errors: %v", errorIDs(bag))
	}
	doc := res.Doc
	if doc == nil {
		t.Fatal("Expected a document")
	}

	if !doc.Config.HasName || doc.Config.Name != "Aposentadoria Segura" {
		t.Errorf("Name = %q (has=%v)", doc.Config.Name, doc.Config.HasName)
	}
	if !doc.Config.HasProfile || doc.Config.Profile != "conservador" {
		t.Errorf("Profile = %q (has=%v)", doc.Config.Profile, doc.Config.HasProfile)
	}
	if !doc.Config.HasHorizon || doc.Config.Horizon.Amount != 25 || doc.Config.Horizon.Unit != ast.Anos {
		t.Errorf("Horizon = %+v (has=%v)", doc.Config.Horizon, doc.Config.HasHorizon)
	}

	if got := doc.Allocation.Len(); got != 3 {
		t.Errorf("Allocation.Len = %d, want 3", got)
	}
	if v, ok := doc.Allocation.Get(ast.AcoesNacionais); !ok || v != 10 {
		t.Errorf("ações_nacionais = %v %v, want 10 true", v, ok)
	}

	if !doc.Restrictions.HasMaxVolatility || doc.Restrictions.MaxVolatility != 15 {
		t.Errorf("MaxVolatility = %v", doc.Restrictions.MaxVolatility)
	}
	if !doc.Restrictions.HasMaxFee || doc.Restrictions.MaxFee != 1.5 {
		t.Errorf("MaxFee = %v", doc.Restrictions.MaxFee)
	}
	if !doc.Rebalance.HasFrequency || !doc.Rebalance.HasTolerance || doc.Rebalance.Tolerance != 5 {
		t.Errorf("Rebalance = %+v", doc.Rebalance)
	}
}

func TestParse_MissingSemicolonRecoversOnce(t *testing.T) {
	input := `carteira {
    nome = "Minha Carteira"
    perfil = "moderado";
    alocação {
        renda_fixa = 100%;
    }
}`
	res, bag := parseSource(t, input)

	// Ровно одна синтаксическая ошибка; perfil разобран без второй.
	if got := errorIDs(bag); len(got) != 1 || got[0] != "SYN001" {
		t.Fatalf("Expected exactly [SYN001], got %v", got)
	}
	doc := res.Doc
	if doc == nil {
		t.Fatal("Expected a document despite the missing semicolon")
	}
	if !doc.Config.HasName || doc.Config.Name != "Minha Carteira" {
		t.Errorf("Name = %q (has=%v)", doc.Config.Name, doc.Config.HasName)
	}
	if !doc.Config.HasProfile || doc.Config.Profile != "moderado" {
		t.Errorf("Profile = %q (has=%v)", doc.Config.Profile, doc.Config.HasProfile)
	}
}

func TestParse_StructuralFailures(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"missing carteira keyword", `{ alocação { renda_fixa = 100%; } }`},
		{"missing opening brace", `carteira alocação { renda_fixa = 100%; }`},
		{"missing allocation section", `carteira { nome = "X"; }`},
		{"allocation brace missing", `carteira { alocação renda_fixa = 100%; }`},
		{"empty input", ``},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, bag := parseSource(t, tt.input)
			if res.Doc != nil {
				t.Error("Expected nil document for structural failure")
			}
			if !bag.HasErrors() {
				t.Error("Expected at least one error")
			}
		})
	}
}

func TestParse_MissingClosingBraceIsNotStructural(t *testing.T) {
	input := `carteira {
    alocação {
        renda_fixa = 100%;
    }
`
	res, bag := parseSource(t, input)
	if res.Doc == nil {
		t.Fatal("Expected a document: the final brace is not structural")
	}
	if got := errorIDs(bag); len(got) != 1 || got[0] != "SYN001" {
		t.Errorf("Expected exactly [SYN001], got %v", got)
	}
}

func TestParse_EmptyAllocationParses(t *testing.T) {
	res, bag := parseSource(t, `carteira { alocação { } }`)
	if res.Doc == nil {
		t.Fatal("Expected a document")
	}
	if bag.HasErrors() {
		t.Errorf("Unexpected errors: %v", errorIDs(bag))
	}
	if !res.Doc.Allocation.Empty() {
		t.Error("Expected an empty allocation")
	}
}

func TestParse_DuplicateAssetClassOverwrites(t *testing.T) {
	input := `carteira {
    alocação {
        renda_fixa = 60%;
        renda_fixa = 40%;
    }
}`
	res, bag := parseSource(t, input)
	if res.Doc == nil || bag.HasErrors() {
		t.Fatalf("Unexpected failure: %v", errorIDs(bag))
	}
	if got := res.Doc.Allocation.Len(); got != 1 {
		t.Errorf("Allocation.Len = %d, want 1", got)
	}
	if v, _ := res.Doc.Allocation.Get(ast.RendaFixa); v != 40 {
		t.Errorf("renda_fixa = %v, want 40 (last write wins)", v)
	}
}

func TestParse_HorizonRequiresUnit(t *testing.T) {
	// Без единицы времени поле не заполняется, но разбор продолжается.
	input := `carteira {
    horizonte_temporal = 20;
    alocação { renda_fixa = 100%; }
}`
	res, bag := parseSource(t, input)
	if res.Doc == nil {
		t.Fatal("Expected a document")
	}
	if res.Doc.Config.HasHorizon {
		t.Error("Horizon must stay unset without a unit keyword")
	}
	if bag.HasErrors() {
		t.Errorf("Unexpected errors: %v", errorIDs(bag))
	}
}

func TestParse_HorizonMeses(t *testing.T) {
	input := `carteira {
    horizonte_temporal = 18 meses;
    alocação { renda_fixa = 100%; }
}`
	res, _ := parseSource(t, input)
	if res.Doc == nil || !res.Doc.Config.HasHorizon {
		t.Fatal("Expected a document with a horizon")
	}
	h := res.Doc.Config.Horizon
	if h.Amount != 18 || h.String() != "18 meses" {
		t.Errorf("Horizon = %v", h)
	}
}

func TestParse_BadFieldValueDesyncsToAllocationFailure(t *testing.T) {
	// Известное ограничение восстановления: несъеденный токен, не являющийся
	// ключевым словом секции, выбивает цикл конфигурации, и до alocação
	// парсер уже не добирается.
	input := `carteira {
    nome = 45;
    alocação { renda_fixa = 100%; }
}`
	res, bag := parseSource(t, input)
	if res.Doc != nil {
		t.Error("Expected nil document: recovery cannot skip the stray number")
	}
	if len(errorIDs(bag)) < 2 {
		t.Errorf("Expected multiple syntax errors, got %v", errorIDs(bag))
	}
}

func TestParse_FrequencyValueOptional(t *testing.T) {
	// Недопустимое значение частоты: поле не заполняется, ';' ловит ошибку.
	input := `carteira {
    alocação { renda_fixa = 100%; }
    rebalanceamento {
        frequencia = ;
        tolerancia = 5%;
    }
}`
	res, bag := parseSource(t, input)
	if res.Doc == nil {
		t.Fatal("Expected a document")
	}
	if res.Doc.Rebalance.HasFrequency {
		t.Error("Frequency must stay unset")
	}
	if !res.Doc.Rebalance.HasTolerance || res.Doc.Rebalance.Tolerance != 5 {
		t.Errorf("Tolerance = %+v", res.Doc.Rebalance)
	}
	if bag.HasErrors() {
		// "frequencia = ;" — ';' совпадает с терминатором, ошибок нет.
		t.Errorf("Unexpected errors: %v", errorIDs(bag))
	}
}

func TestParse_MaxErrorsStopsReporting(t *testing.T) {
	// Каждый пропущенный ';' — отдельная ошибка; лимит режет репортинг.
	input := `carteira {
    alocação {
        renda_fixa = 10%
        ações_nacionais = 10%
        fundos_imobiliarios = 10%
        fundos_multimercado = 10%
    }
}`
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.port", []byte(input))
	file := fs.Get(fileID)

	bag := diag.NewBag(0)
	lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}

	parser.ParseTokens(tokens, parser.Options{
		Reporter:  diag.BagReporter{Bag: bag},
		MaxErrors: 2,
	})
	if got := bag.ErrorCount(); got > 2 {
		t.Errorf("ErrorCount = %d, want at most 2", got)
	}
}

func TestParse_EmptyTokenSliceDefended(t *testing.T) {
	// Пустой слайс токенов — дефект вызова; парсер защищается синтетическим
	// EOF и не паникует.
	bag := diag.NewBag(0)
	res := parser.ParseTokens(nil, parser.Options{
		Reporter: diag.BagReporter{Bag: bag},
	})
	if res.Doc != nil {
		t.Error("Expected nil document for empty input")
	}
	if !bag.HasErrors() {
		t.Error("Expected an error diagnostic")
	}
}
