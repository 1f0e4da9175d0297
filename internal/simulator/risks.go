package simulator

const (
	RiskMarketGrowthNegative = "market-growth-negative"
	RiskCompetitionHigh      = "competition-high"
	RiskLowProductivity      = "low-productivity"
	RiskHighOperatingCost    = "high-operating-cost"
	RiskConservativeStrategy = "conservative-strategy"
)

type riskRule struct {
	flag  RiskFlag
	check func(Inputs) bool
}

var riskRules = []riskRule{
	{
		flag: RiskFlag{
			ID:     RiskMarketGrowthNegative,
			Title:  "Shrinking market",
			Advice: "Consider entering new markets or diversifying the product line.",
		},
		check: func(in Inputs) bool { return in.MarketGrowthPct < 0 },
	},
	{
		flag: RiskFlag{
			ID:     RiskCompetitionHigh,
			Title:  "High competition",
			Advice: "Develop a differentiated value proposition and marketing strategy.",
		},
		check: func(in Inputs) bool { return in.Competition == CompetitionHigh },
	},
	{
		flag: RiskFlag{
			ID:     RiskLowProductivity,
			Title:  "Low employee productivity",
			Advice: "Strengthen employee education and training programs.",
		},
		check: func(in Inputs) bool { return in.EmployeeProductivity < 5 },
	},
	{
		flag: RiskFlag{
			ID:     RiskHighOperatingCost,
			Title:  "High operating costs",
			Advice: "Review cost-reduction options and improve operational efficiency.",
		},
		check: func(in Inputs) bool { return in.OperatingExpensesPct > 70 },
	},
	{
		flag: RiskFlag{
			ID:     RiskConservativeStrategy,
			Title:  "Conservative growth strategy",
			Advice: "Re-evaluate market opportunities and consider taking on appropriate risk.",
		},
		check: func(in Inputs) bool { return in.Strategy == StrategyConservative },
	},
}

// EvaluateRisks returns the raised flags in a fixed order. It never
// returns nil.
func EvaluateRisks(in Inputs) []RiskFlag {
	out := []RiskFlag{}
	for _, r := range riskRules {
		if r.check(in) {
			out = append(out, r.flag)
		}
	}
	return out
}
