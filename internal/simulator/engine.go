package simulator

import (
	"errors"
	"fmt"
	"math"
)

// Validate rejects out-of-range values instead of clamping them. All
// violations are reported together.
func (in Inputs) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidInput}, args...)...))
	}

	if !finite(in.InitialInvestment) || in.InitialInvestment <= 0 {
		bad("initial_investment must be positive, got %v", in.InitialInvestment)
	}
	if !finite(in.MarketGrowthPct) || in.MarketGrowthPct < minMarketGrowthPct || in.MarketGrowthPct > maxMarketGrowthPct {
		bad("market_growth_pct must be in [%g, %g], got %v", minMarketGrowthPct, maxMarketGrowthPct, in.MarketGrowthPct)
	}
	if !in.Competition.Valid() {
		bad("competition_level must be one of low|medium|high")
	}
	if !in.Strategy.Valid() {
		bad("growth_strategy must be one of aggressive|neutral|conservative")
	}
	if in.EmployeeProductivity < minProductivity || in.EmployeeProductivity > maxProductivity {
		bad("employee_productivity must be in [%d, %d], got %d", minProductivity, maxProductivity, in.EmployeeProductivity)
	}
	if in.EmployeeCount < 1 {
		bad("employee_count must be positive, got %d", in.EmployeeCount)
	}
	if !finite(in.OperatingExpensesPct) || in.OperatingExpensesPct < minOperatingExpensePct || in.OperatingExpensesPct > maxOperatingExpensePct {
		bad("operating_expenses_pct must be in [%g, %g], got %v", minOperatingExpensePct, maxOperatingExpensePct, in.OperatingExpensesPct)
	}
	if in.Years < 0 || in.Years > MaxYears {
		bad("years must be in [1, %d], got %d", MaxYears, in.Years)
	}
	return errors.Join(errs...)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func productivityFactor(productivity int) float64 {
	return 0.5 + float64(productivity)/10.0
}

// CombinedFactor is the year-over-year revenue multiplier. It panics if a
// categorical input is invalid; call Validate first.
func CombinedFactor(in Inputs) float64 {
	marketFactor := 1 + in.MarketGrowthPct/100.0
	return marketFactor * in.Competition.Factor() * in.Strategy.Factor() * productivityFactor(in.EmployeeProductivity)
}

// Simulate validates in and returns exactly in.Years points (DefaultYears
// when zero).
func Simulate(in Inputs) ([]ProjectionPoint, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	return project(in), nil
}

func project(in Inputs) []ProjectionPoint {
	years := in.horizon()
	points := make([]ProjectionPoint, 0, years)
	points = append(points, ProjectionPoint{
		Year:        1,
		Revenue:     in.InitialInvestment * firstYearRevenueRatio,
		Profit:      0,
		CashFlow:    -in.InitialInvestment,
		MarketShare: initialMarketShare,
	})

	factor := CombinedFactor(in)
	retention := 1 - in.OperatingExpensesPct/100.0
	payroll := float64(in.EmployeeCount) * annualCostPerEmployee
	for year := 2; year <= years; year++ {
		prev := points[len(points)-1]
		revenue := prev.Revenue * factor
		profit := revenue * retention
		points = append(points, ProjectionPoint{
			Year:        year,
			Revenue:     revenue,
			Profit:      profit,
			CashFlow:    profit - payroll,
			MarketShare: math.Min(prev.MarketShare*marketShareGrowth, 1.0),
		})
	}
	return points
}

// Run simulates in and attaches the summary figures and risk flags.
func Run(in Inputs) (Projection, error) {
	points, err := Simulate(in)
	if err != nil {
		return Projection{}, err
	}
	if in.Years == 0 {
		in.Years = DefaultYears
	}
	return Projection{
		Inputs:  in,
		Points:  points,
		Summary: summarize(in, points),
		Risks:   EvaluateRisks(in),
	}, nil
}

func summarize(in Inputs, points []ProjectionPoint) Summary {
	last := points[len(points)-1]
	cumulative := 0.0
	for _, p := range points {
		cumulative += p.CashFlow
	}
	return Summary{
		FinalRevenue:     last.Revenue,
		FinalProfit:      last.Profit,
		FinalMarketShare: last.MarketShare,
		CumulativeCash:   cumulative,
		CombinedFactor:   CombinedFactor(in),
	}
}
