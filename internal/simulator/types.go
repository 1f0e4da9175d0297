package simulator

import (
	"errors"
	"fmt"
	"strings"
)

const (
	DefaultYears = 5
	MaxYears     = 30

	firstYearRevenueRatio  = 0.5
	initialMarketShare     = 0.01
	marketShareGrowth      = 1.2
	annualCostPerEmployee  = 3000.0
	minMarketGrowthPct     = -10.0
	maxMarketGrowthPct     = 20.0
	minProductivity        = 1
	maxProductivity        = 10
	minOperatingExpensePct = 10.0
	maxOperatingExpensePct = 90.0
)

var ErrInvalidInput = errors.New("invalid simulation input")

// CompetitionLevel is the competitive pressure in the target market.
// The zero value is not a valid level.
type CompetitionLevel int

const (
	CompetitionLow CompetitionLevel = iota + 1
	CompetitionMedium
	CompetitionHigh
)

var competitionFactors = map[CompetitionLevel]float64{
	CompetitionLow:    1.1,
	CompetitionMedium: 1.0,
	CompetitionHigh:   0.9,
}

var competitionNames = map[CompetitionLevel]string{
	CompetitionLow:    "low",
	CompetitionMedium: "medium",
	CompetitionHigh:   "high",
}

func ParseCompetitionLevel(s string) (CompetitionLevel, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for level, name := range competitionNames {
		if name == key {
			return level, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown competition level %q", ErrInvalidInput, s)
}

func (c CompetitionLevel) Valid() bool {
	_, ok := competitionFactors[c]
	return ok
}

// Factor panics on an invalid level.
func (c CompetitionLevel) Factor() float64 {
	f, ok := competitionFactors[c]
	if !ok {
		panic(fmt.Sprintf("simulator: invalid competition level %d", int(c)))
	}
	return f
}

func (c CompetitionLevel) String() string {
	if name, ok := competitionNames[c]; ok {
		return name
	}
	return fmt.Sprintf("CompetitionLevel(%d)", int(c))
}

func (c CompetitionLevel) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: competition level %d", ErrInvalidInput, int(c))
	}
	return []byte(c.String()), nil
}

func (c *CompetitionLevel) UnmarshalText(b []byte) error {
	v, err := ParseCompetitionLevel(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// GrowthStrategy is how hard the business pushes for growth.
// The zero value is not a valid strategy.
type GrowthStrategy int

const (
	StrategyAggressive GrowthStrategy = iota + 1
	StrategyNeutral
	StrategyConservative
)

var strategyFactors = map[GrowthStrategy]float64{
	StrategyAggressive:   1.2,
	StrategyNeutral:      1.0,
	StrategyConservative: 0.8,
}

var strategyNames = map[GrowthStrategy]string{
	StrategyAggressive:   "aggressive",
	StrategyNeutral:      "neutral",
	StrategyConservative: "conservative",
}

func ParseGrowthStrategy(s string) (GrowthStrategy, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for strategy, name := range strategyNames {
		if name == key {
			return strategy, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown growth strategy %q", ErrInvalidInput, s)
}

func (g GrowthStrategy) Valid() bool {
	_, ok := strategyFactors[g]
	return ok
}

// Factor panics on an invalid strategy.
func (g GrowthStrategy) Factor() float64 {
	f, ok := strategyFactors[g]
	if !ok {
		panic(fmt.Sprintf("simulator: invalid growth strategy %d", int(g)))
	}
	return f
}

func (g GrowthStrategy) String() string {
	if name, ok := strategyNames[g]; ok {
		return name
	}
	return fmt.Sprintf("GrowthStrategy(%d)", int(g))
}

func (g GrowthStrategy) MarshalText() ([]byte, error) {
	if !g.Valid() {
		return nil, fmt.Errorf("%w: growth strategy %d", ErrInvalidInput, int(g))
	}
	return []byte(g.String()), nil
}

func (g *GrowthStrategy) UnmarshalText(b []byte) error {
	v, err := ParseGrowthStrategy(string(b))
	if err != nil {
		return err
	}
	*g = v
	return nil
}

// Inputs are the business parameters of one simulation run. Currency
// amounts are in ten-thousand currency units.
type Inputs struct {
	InitialInvestment    float64          `json:"initial_investment"`
	MarketGrowthPct      float64          `json:"market_growth_pct"`
	Competition          CompetitionLevel `json:"competition_level"`
	Strategy             GrowthStrategy   `json:"growth_strategy"`
	EmployeeProductivity int              `json:"employee_productivity"`
	EmployeeCount        int              `json:"employee_count"`
	OperatingExpensesPct float64          `json:"operating_expenses_pct"`
	Years                int              `json:"years,omitempty"`
}

// DefaultInputs mirrors the initial form values.
func DefaultInputs() Inputs {
	return Inputs{
		InitialInvestment:    100000,
		MarketGrowthPct:      5.0,
		Competition:          CompetitionMedium,
		Strategy:             StrategyNeutral,
		EmployeeProductivity: 5,
		EmployeeCount:        50,
		OperatingExpensesPct: 60.0,
		Years:                DefaultYears,
	}
}

func (in Inputs) horizon() int {
	if in.Years == 0 {
		return DefaultYears
	}
	return in.Years
}

// ProjectionPoint is one simulated year.
type ProjectionPoint struct {
	Year        int     `json:"year"`
	Revenue     float64 `json:"revenue"`
	Profit      float64 `json:"profit"`
	CashFlow    float64 `json:"cash_flow"`
	MarketShare float64 `json:"market_share"`
}

type Summary struct {
	FinalRevenue     float64 `json:"final_revenue"`
	FinalProfit      float64 `json:"final_profit"`
	FinalMarketShare float64 `json:"final_market_share"`
	CumulativeCash   float64 `json:"cumulative_cash_flow"`
	CombinedFactor   float64 `json:"combined_factor"`
}

type RiskFlag struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Advice string `json:"advice"`
}

type Projection struct {
	Inputs  Inputs            `json:"inputs"`
	Points  []ProjectionPoint `json:"points"`
	Summary Summary           `json:"summary"`
	Risks   []RiskFlag        `json:"risks"`
}
