// Package validator runs the semantic rule battery over a parsed portfolio.
// It is a pure read-only pass: the document is never mutated, checks run
// unconditionally and independently in a fixed order, and every finding is a
// diagnostic — validation never fails through a Go error.
package validator

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"portlang/internal/ast"
	"portlang/internal/diag"
)

// SumEpsilon is the tolerated absolute deviation of the allocation sum
// from 100%.
const SumEpsilon = 0.01

// Profile thresholds, in percent of high-risk exposure.
const (
	conservadorMaxRisk = 30
	moderadoMinRisk    = 20
	moderadoMaxRisk    = 70
	arrojadoMinRisk    = 50
)

// Restriction bounds.
const (
	maxVolatilityLimit = 50
	maxFeeLimit        = 5
)

// Validator evaluates one document against the domain rules.
type Validator struct {
	reporter diag.Reporter
	errors   uint
}

func New(reporter diag.Reporter) *Validator {
	return &Validator{reporter: reporter}
}

// Validate runs every check in order and reports findings. The returned
// verdict is true iff validation itself raised no Error-severity
// diagnostics; warnings and infos never fail validation. A nil document
// immediately fails with SEM001.
func (v *Validator) Validate(doc *ast.Portfolio) bool {
	if doc == nil {
		v.report(diag.NewFloating(diag.SevError, diag.SemMissingDocument,
			"portfolio data missing or unusable"))
		return false
	}

	// Фиксированный порядок; проверки независимы, ранние ошибки не
	// останавливают поздние.
	v.checkAllocationSum(doc)
	v.checkPercentageRanges(doc)
	v.checkRiskProfile(doc)
	v.checkRestrictions(doc)

	return v.errors == 0
}

func (v *Validator) checkAllocationSum(doc *ast.Portfolio) {
	if doc.Allocation.Empty() {
		v.report(diag.NewFloating(diag.SevError, diag.SemNoAllocation,
			"no asset allocation defined").
			WithSuggestion("add at least one asset to the alocação section"))
		return
	}

	total := doc.Allocation.Sum()
	if math.Abs(total-100) <= SumEpsilon {
		return
	}
	if total > 100 {
		v.report(diag.NewFloating(diag.SevError, diag.SemAllocationExceeds,
			fmt.Sprintf("allocation sum is %s%%, exceeds 100%%", pct(total))).
			WithSuggestion(fmt.Sprintf("reduce allocations by %.2f%%", total-100)))
	} else {
		v.report(diag.NewFloating(diag.SevError, diag.SemAllocationMissing,
			fmt.Sprintf("allocation sum is %s%%, missing %.2f%%", pct(total), 100-total)).
			WithSuggestion(fmt.Sprintf("add %.2f%% in other assets", 100-total)))
	}
}

func (v *Validator) checkPercentageRanges(doc *ast.Portfolio) {
	for _, e := range doc.Allocation.Entries() {
		if e.Percent < 0 || e.Percent > 100 {
			v.report(diag.NewFloating(diag.SevError, diag.SemPercentOutOfRange,
				fmt.Sprintf("allocation %s: %s%% outside the range [0, 100]", e.Class, pct(e.Percent))).
				WithSuggestion("use percentages between 0% and 100%"))
		}
	}
}

func (v *Validator) checkRiskProfile(doc *ast.Portfolio) {
	if !doc.Config.HasProfile {
		v.report(diag.NewFloating(diag.SevWarning, diag.SemMissingProfile,
			"risk profile not defined").
			WithSuggestion("set perfil to 'conservador', 'moderado' or 'arrojado'"))
		return
	}

	exposure := doc.Allocation.RiskExposure()

	switch strings.ToLower(doc.Config.Profile) {
	case "conservador":
		if exposure > conservadorMaxRisk {
			v.report(diag.NewFloating(diag.SevError, diag.SemConservadorRisk,
				fmt.Sprintf("conservative profile with %s%% in high-risk assets", pct(exposure))).
				WithSuggestion("reduce exposure to equities and multi-market funds to at most 30%"))
		}
	case "moderado":
		if exposure < moderadoMinRisk || exposure > moderadoMaxRisk {
			v.report(diag.NewFloating(diag.SevWarning, diag.SemModeradoRisk,
				fmt.Sprintf("moderate profile with %s%% in high-risk assets", pct(exposure))).
				WithSuggestion("keep exposure between 20-70% for a moderate profile"))
		}
	case "arrojado":
		if exposure < arrojadoMinRisk {
			v.report(diag.NewFloating(diag.SevWarning, diag.SemArrojadoRisk,
				fmt.Sprintf("aggressive profile with only %s%% in high-risk assets", pct(exposure))).
				WithSuggestion("consider increasing exposure to at least 50%"))
		}
	default:
		// Незнакомый профиль: порог не проверяется. Сознательно без
		// диагностики — поведение зафиксировано тестом.
	}
}

func (v *Validator) checkRestrictions(doc *ast.Portfolio) {
	if doc.Restrictions.HasMaxVolatility {
		vol := doc.Restrictions.MaxVolatility
		if vol < 0 || vol > maxVolatilityLimit {
			v.report(diag.NewFloating(diag.SevError, diag.SemBadVolatility,
				fmt.Sprintf("invalid maximum volatility: %s%%", pct(vol))).
				WithSuggestion("use values between 0% and 50%"))
		}
	}

	if doc.Restrictions.HasMaxFee {
		fee := doc.Restrictions.MaxFee
		if fee < 0 || fee > maxFeeLimit {
			v.report(diag.NewFloating(diag.SevError, diag.SemBadFee,
				fmt.Sprintf("invalid management fee: %s%%", pct(fee))).
				WithSuggestion("use values between 0% and 5%"))
		}
	}
}

func (v *Validator) report(d diag.Diagnostic) {
	if d.Severity == diag.SevError {
		v.errors++
	}
	if v.reporter != nil {
		v.reporter.Report(d)
	}
}

// pct renders a percentage the shortest exact way (50, 3.5, 0.125).
func pct(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
