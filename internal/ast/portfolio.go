package ast

import "strconv"

// HorizonUnit is the temporal unit of the investment horizon.
type HorizonUnit uint8

const (
	// Anos is a horizon measured in years.
	Anos HorizonUnit = iota
	// Meses is a horizon measured in months.
	Meses
)

func (u HorizonUnit) String() string {
	if u == Meses {
		return "meses"
	}
	return "anos"
}

// Horizon is the investment time horizon: an integer amount plus a unit.
type Horizon struct {
	Amount int
	Unit   HorizonUnit
}

func (h Horizon) String() string {
	return strconv.Itoa(h.Amount) + " " + h.Unit.String()
}

// Frequency is the rebalancing frequency.
type Frequency uint8

const (
	// Mensal rebalances monthly.
	Mensal Frequency = iota
	// Trimestral rebalances quarterly.
	Trimestral
	// Semestral rebalances semiannually.
	Semestral
	// Anual rebalances annually.
	Anual
)

func (f Frequency) String() string {
	switch f {
	case Mensal:
		return "mensal"
	case Trimestral:
		return "trimestral"
	case Semestral:
		return "semestral"
	case Anual:
		return "anual"
	}
	return "unknown"
}

// Config holds the portfolio identity fields. Presence flags distinguish an
// omitted field from a legitimately empty value (nome = "" is present).
type Config struct {
	Name       string
	HasName    bool
	Profile    string
	HasProfile bool
	Horizon    Horizon
	HasHorizon bool
}

// Restrictions holds the optional risk/fee constraints.
type Restrictions struct {
	MaxVolatility    float64
	HasMaxVolatility bool
	MaxFee           float64
	HasMaxFee        bool
}

// Rebalance holds the optional rebalancing policy.
type Rebalance struct {
	Frequency    Frequency
	HasFrequency bool
	Tolerance    float64
	HasTolerance bool
}

// Portfolio is the root document for one compiled source. All four sections
// are always present as values; emptiness is expressed per field.
type Portfolio struct {
	Config       Config
	Allocation   Allocation
	Restrictions Restrictions
	Rebalance    Rebalance
}
