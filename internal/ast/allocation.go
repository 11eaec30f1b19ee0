package ast

// AllocationEntry is one asset-class assignment.
type AllocationEntry struct {
	Class   AssetClass
	Percent float64
}

// Allocation is an insertion-ordered mapping from asset class to percentage.
// Keys are unique by construction: assigning a class twice overwrites the
// value while keeping the original position, mirroring how the surface
// language reads top to bottom.
type Allocation struct {
	entries []AllocationEntry
	index   map[AssetClass]int
}

// Set assigns a percentage to a class, overwriting a previous assignment.
func (a *Allocation) Set(class AssetClass, percent float64) {
	if a.index == nil {
		a.index = make(map[AssetClass]int, int(numAssetClasses))
	}
	if i, ok := a.index[class]; ok {
		a.entries[i].Percent = percent
		return
	}
	a.index[class] = len(a.entries)
	a.entries = append(a.entries, AllocationEntry{Class: class, Percent: percent})
}

// Get returns the percentage assigned to class, if any.
func (a *Allocation) Get(class AssetClass) (float64, bool) {
	i, ok := a.index[class]
	if !ok {
		return 0, false
	}
	return a.entries[i].Percent, true
}

// Len returns the number of assigned classes.
func (a *Allocation) Len() int {
	return len(a.entries)
}

// Empty reports whether no class was assigned.
func (a *Allocation) Empty() bool {
	return len(a.entries) == 0
}

// Entries returns the assignments in insertion order.
// ВАЖНО: не модифицируйте возвращаемый срез!
func (a *Allocation) Entries() []AllocationEntry {
	return a.entries
}

// Sum totals all assigned percentages.
func (a *Allocation) Sum() float64 {
	total := 0.0
	for _, e := range a.entries {
		total += e.Percent
	}
	return total
}

// RiskExposure totals the percentages assigned to high-risk classes.
func (a *Allocation) RiskExposure() float64 {
	total := 0.0
	for _, e := range a.entries {
		if e.Class.HighRisk() {
			total += e.Percent
		}
	}
	return total
}
