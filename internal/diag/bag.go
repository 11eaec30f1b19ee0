package diag

// Bag is the per-compile diagnostic collector. Diagnostics are routed into
// three severity buckets; each bucket preserves insertion order so reports
// and tests are deterministic. A Bag is instance-scoped: one per compile,
// shared by reference between lexer, parser and validator. Not safe for
// concurrent use.
type Bag struct {
	errors   []Diagnostic
	warnings []Diagnostic
	infos    []Diagnostic
	max      uint16
}

func NewBag(max int) *Bag {
	return &Bag{max: uint16(max)}
}

// Add добавляет диагностику в нужную корзину, учитывая лимит.
// Возвращает false, если диагностика не добавлена (достигнут лимит).
func (b *Bag) Add(d Diagnostic) bool {
	if b.max != 0 && b.Len() >= int(b.max) {
		return false
	}
	switch d.Severity {
	case SevError:
		b.errors = append(b.errors, d)
	case SevWarning:
		b.warnings = append(b.warnings, d)
	default:
		b.infos = append(b.infos, d)
	}
	return true
}

func (b *Bag) Cap() uint16 {
	return b.max
}

// HasErrors reports whether the error bucket is non-empty. This predicate is
// the single gate downstream consumers (report renderer, CLI exit code) use
// to decide whether the input was rejected.
func (b *Bag) HasErrors() bool {
	return len(b.errors) > 0
}

// HasWarnings возвращает true, если есть хотя бы одно предупреждение.
func (b *Bag) HasWarnings() bool {
	return len(b.warnings) > 0
}

func (b *Bag) Len() int {
	return len(b.errors) + len(b.warnings) + len(b.infos)
}

func (b *Bag) ErrorCount() int {
	return len(b.errors)
}

// Errors возвращает read-only slice диагностик-ошибок.
// ВАЖНО: не модифицируйте возвращаемый срез!
func (b *Bag) Errors() []Diagnostic {
	return b.errors
}

func (b *Bag) Warnings() []Diagnostic {
	return b.warnings
}

func (b *Bag) Infos() []Diagnostic {
	return b.infos
}

// Items enumerates all diagnostics bucket by bucket (errors, then warnings,
// then infos), preserving per-bucket insertion order.
func (b *Bag) Items() []Diagnostic {
	out := make([]Diagnostic, 0, b.Len())
	out = append(out, b.errors...)
	out = append(out, b.warnings...)
	out = append(out, b.infos...)
	return out
}

// Merge объединяет диагностики из другого Bag, сохраняя порядок корзин.
func (b *Bag) Merge(other *Bag) {
	newTotal := b.Len() + other.Len()
	if b.max != 0 && newTotal > int(b.max) {
		b.max = uint16(newTotal)
	}
	b.errors = append(b.errors, other.errors...)
	b.warnings = append(b.warnings, other.warnings...)
	b.infos = append(b.infos, other.infos...)
}
