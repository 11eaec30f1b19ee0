package lexer_test

import (
	"fmt"
	"strings"
	"testing"

	"portlang/internal/diag"
	"portlang/internal/lexer"
	"portlang/internal/source"
	"portlang/internal/token"
)

// testReporter собирает все диагностики, полученные от лексера
type testReporter struct {
	diagnostics []diag.Diagnostic
}

// Report реализует интерфейс diag.Reporter
func (r *testReporter) Report(d diag.Diagnostic) {
	r.diagnostics = append(r.diagnostics, d)
}

// HasErrors возвращает true, если были зарегистрированы ошибки
func (r *testReporter) HasErrors() bool {
	for _, d := range r.diagnostics {
		if d.Severity == diag.SevError {
			return true
		}
	}
	return false
}

// Codes возвращает коды всех диагностик в порядке поступления
func (r *testReporter) Codes() []diag.Code {
	codes := make([]diag.Code, 0, len(r.diagnostics))
	for _, d := range r.diagnostics {
		codes = append(codes, d.Code)
	}
	return codes
}

// ErrorMessages возвращает список сообщений об ошибках
func (r *testReporter) ErrorMessages() []string {
	messages := make([]string, 0, len(r.diagnostics))
	for _, d := range r.diagnostics {
		messages = append(messages, fmt.Sprintf("[%s] %s: %s", d.Code.ID(), d.Severity, d.Message))
	}
	return messages
}

// makeTestLexer создаёт лексер для тестовой строки
func makeTestLexer(input string) (*lexer.Lexer, *testReporter) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.port", []byte(input))
	file := fs.Get(fileID)

	reporter := &testReporter{diagnostics: make([]diag.Diagnostic, 0)}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})

	return lx, reporter
}

// collectAllTokens собирает все токены до EOF
func collectAllTokens(lx *lexer.Lexer) []token.Token {
	tokens := make([]token.Token, 0)
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return tokens
}

func tokensToString(tokens []token.Token) string {
	parts := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		parts = append(parts, tok.Kind.String())
	}
	return strings.Join(parts, " ")
}

// expectTokens проверяет последовательность токенов
func expectTokens(t *testing.T, input string, expected []token.Kind) {
	t.Helper()
	lx, reporter := makeTestLexer(input)
	tokens := collectAllTokens(lx)

	// убираем EOF из сравнения
	if len(tokens) > 0 && tokens[len(tokens)-1].Kind == token.EOF {
		tokens = tokens[:len(tokens)-1]
	}

	if len(tokens) != len(expected) {
		t.Fatalf("Expected %d tokens, got %d\nInput: %q\nTokens: %v\nErrors: %v",
			len(expected), len(tokens), input, tokensToString(tokens), reporter.ErrorMessages())
	}

	for i, tok := range tokens {
		if tok.Kind != expected[i] {
			t.Errorf("Token %d: expected %v, got %v (text: %q)",
				i, expected[i], tok.Kind, tok.Text)
		}
	}
}

// expectSingleToken проверяет, что вход создаёт ровно один токен
func expectSingleToken(t *testing.T, input string, expectedKind token.Kind, expectedText string) {
	t.Helper()
	lx, _ := makeTestLexer(input)
	tok := lx.Next()

	if tok.Kind != expectedKind {
		t.Errorf("Expected kind %v, got %v", expectedKind, tok.Kind)
	}
	if tok.Text != expectedText {
		t.Errorf("Expected text %q, got %q", expectedText, tok.Text)
	}
}

func TestLexer_Keywords(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{"carteira", token.KwCarteira},
		{"nome", token.KwNome},
		{"perfil", token.KwPerfil},
		{"horizonte_temporal", token.KwHorizonteTemporal},
		{"alocação", token.KwAlocacao},
		{"restrições", token.KwRestricoes},
		{"rebalanceamento", token.KwRebalanceamento},
		{"ações_nacionais", token.KwAcoesNacionais},
		{"ações_internacionais", token.KwAcoesInternacionais},
		{"fundos_imobiliarios", token.KwFundosImobiliarios},
		{"fundos_multimercado", token.KwFundosMultimercado},
		{"renda_fixa", token.KwRendaFixa},
		{"volatilidade_maxima", token.KwVolatilidadeMaxima},
		{"taxa_administrativa_maxima", token.KwTaxaAdministrativaMaxima},
		{"frequencia", token.KwFrequencia},
		{"tolerancia", token.KwTolerancia},
		{"anos", token.KwAnos},
		{"meses", token.KwMeses},
		{"mensal", token.KwMensal},
		{"trimestral", token.KwTrimestral},
		{"semestral", token.KwSemestral},
		{"anual", token.KwAnual},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectSingleToken(t, tt.input, tt.kind, tt.input)
		})
	}
}

func TestLexer_KeywordsAreCaseSensitive(t *testing.T) {
	// "Carteira" не ключевое слово; без сворачивания регистра и акцентов.
	expectSingleToken(t, "Carteira", token.Ident, "Carteira")
	expectSingleToken(t, "alocacao", token.Ident, "alocacao")
}

func TestLexer_Punctuation(t *testing.T) {
	expectTokens(t, "= { } ; %", []token.Kind{
		token.Assign, token.LBrace, token.RBrace, token.Semicolon, token.Percent,
	})
}

func TestLexer_Numbers(t *testing.T) {
	tests := []struct {
		input string
		value float64
	}{
		{"0", 0},
		{"45", 45},
		{"2.5", 2.5},
		{"100.0", 100},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			lx, reporter := makeTestLexer(tt.input)
			tok := lx.Next()
			if tok.Kind != token.NumberLit {
				t.Fatalf("Expected NumberLit, got %v", tok.Kind)
			}
			if got := lexer.NumberValue(tok); got != tt.value {
				t.Errorf("NumberValue(%q) = %v, want %v", tt.input, got, tt.value)
			}
			if reporter.HasErrors() {
				t.Errorf("Unexpected errors: %v", reporter.ErrorMessages())
			}
		})
	}
}

func TestLexer_NumberMultipleDots(t *testing.T) {
	lx, reporter := makeTestLexer("1.2.3")
	tok := lx.Next()

	if tok.Kind != token.NumberLit {
		t.Fatalf("Expected NumberLit, got %v", tok.Kind)
	}
	if tok.Text != "1.2" {
		t.Errorf("Expected text %q, got %q", "1.2", tok.Text)
	}
	codes := reporter.Codes()
	if len(codes) != 1 || codes[0] != diag.LexMultipleDots {
		t.Errorf("Expected [LEX003], got %v", reporter.ErrorMessages())
	}
	// Вторая точка не съедена числом; она пропускается как неизвестный
	// символ, и сканирование продолжается с "3".
	rest := collectAllTokens(lx)
	if len(rest) != 2 || rest[0].Kind != token.NumberLit || rest[0].Text != "3" {
		t.Fatalf("Expected trailing number %q then EOF, got %v", "3", tokensToString(rest))
	}
	codes = reporter.Codes()
	if len(codes) != 2 || codes[1] != diag.LexUnknownChar {
		t.Errorf("Expected [LEX003 LEX005], got %v", reporter.ErrorMessages())
	}
}

func TestLexer_Strings(t *testing.T) {
	lx, reporter := makeTestLexer(`"Minha Carteira"`)
	tok := lx.Next()

	if tok.Kind != token.StringLit {
		t.Fatalf("Expected StringLit, got %v", tok.Kind)
	}
	if got := lexer.StringValue(tok); got != "Minha Carteira" {
		t.Errorf("StringValue = %q, want %q", got, "Minha Carteira")
	}
	if reporter.HasErrors() {
		t.Errorf("Unexpected errors: %v", reporter.ErrorMessages())
	}
}

func TestLexer_StringWithNewline(t *testing.T) {
	lx, reporter := makeTestLexer("\"aberta\nnome = \"x\"")
	tok := lx.Next()

	if tok.Kind != token.StringLit {
		t.Fatalf("Expected StringLit, got %v", tok.Kind)
	}
	codes := reporter.Codes()
	// Перевод строки внутри литерала и незакрытая кавычка — две отдельные диагностики.
	if len(codes) < 1 || codes[0] != diag.LexNewlineInString {
		t.Fatalf("Expected LEX001 first, got %v", reporter.ErrorMessages())
	}
	// Перевод строки не поглощается: следующий токен начинается после него.
	next := lx.Next()
	if next.Kind != token.KwNome {
		t.Errorf("Expected nome keyword after recovery, got %v", next.Kind)
	}
}

func TestLexer_UnterminatedString(t *testing.T) {
	lx, reporter := makeTestLexer(`"sem fim`)
	tok := lx.Next()

	if tok.Kind != token.StringLit {
		t.Fatalf("Expected StringLit, got %v", tok.Kind)
	}
	codes := reporter.Codes()
	if len(codes) != 1 || codes[0] != diag.LexUnterminatedString {
		t.Errorf("Expected [LEX002], got %v", reporter.ErrorMessages())
	}
}

func TestLexer_UnknownCharSkipped(t *testing.T) {
	// Неизвестный символ даёт диагностику и пропускается, токен не создаётся.
	lx, reporter := makeTestLexer("@ carteira")
	tok := lx.Next()

	if tok.Kind != token.KwCarteira {
		t.Fatalf("Expected KwCarteira after skipping @, got %v", tok.Kind)
	}
	codes := reporter.Codes()
	if len(codes) != 1 || codes[0] != diag.LexUnknownChar {
		t.Errorf("Expected [LEX005], got %v", reporter.ErrorMessages())
	}
}

func TestLexer_FullDocument(t *testing.T) {
	input := `carteira {
    nome = "Aposentadoria";
    perfil = moderado;
    alocação {
        renda_fixa = 60%;
        ações_nacionais = 40%;
    }
}`
	lx, reporter := makeTestLexer(input)
	tokens := collectAllTokens(lx)

	if reporter.HasErrors() {
		t.Fatalf("Unexpected errors: %v", reporter.ErrorMessages())
	}
	expected := []token.Kind{
		token.KwCarteira, token.LBrace,
		token.KwNome, token.Assign, token.StringLit, token.Semicolon,
		token.KwPerfil, token.Assign, token.Ident, token.Semicolon,
		token.KwAlocacao, token.LBrace,
		token.KwRendaFixa, token.Assign, token.NumberLit, token.Percent, token.Semicolon,
		token.KwAcoesNacionais, token.Assign, token.NumberLit, token.Percent, token.Semicolon,
		token.RBrace,
		token.RBrace,
		token.EOF,
	}
	if len(tokens) != len(expected) {
		t.Fatalf("Expected %d tokens, got %d: %v", len(expected), len(tokens), tokensToString(tokens))
	}
	for i, kind := range expected {
		if tokens[i].Kind != kind {
			t.Errorf("Token %d: expected %v, got %v", i, kind, tokens[i].Kind)
		}
	}
}

func TestLexer_EOFIsIdempotent(t *testing.T) {
	lx, _ := makeTestLexer("")
	for i := 0; i < 3; i++ {
		tok := lx.Next()
		if tok.Kind != token.EOF {
			t.Fatalf("Call %d: expected EOF, got %v", i, tok.Kind)
		}
	}
}

func TestLexer_AccentedColumnPositions(t *testing.T) {
	// Колонки считаются в символах: после "alocação" (8 символов, 10 байтов)
	// скобка стоит в колонке 10.
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.port", []byte("alocação {"))
	file := fs.Get(fileID)

	reporter := &testReporter{}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})

	kw := lx.Next()
	brace := lx.Next()
	if kw.Kind != token.KwAlocacao || brace.Kind != token.LBrace {
		t.Fatalf("Unexpected tokens: %v %v", kw.Kind, brace.Kind)
	}
	start, _ := fs.Resolve(brace.Span)
	if start.Line != 1 || start.Col != 10 {
		t.Errorf("Expected brace at 1:10, got %d:%d", start.Line, start.Col)
	}
}
