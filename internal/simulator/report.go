package simulator

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const Disclaimer = "Projection uses fixed illustrative factors. It is a planning aid, not a forecast."

var printer = message.NewPrinter(language.English)

// FormatAmount renders a currency amount with digit grouping and no
// decimals, e.g. 52500 -> "52,500".
func FormatAmount(v float64) string {
	return printer.Sprintf("%.0f", v)
}

// FormatSharePct renders a market share fraction as a percentage with two
// decimals, e.g. 0.0144 -> "1.44".
func FormatSharePct(v float64) string {
	return fmt.Sprintf("%.2f", v*100)
}

func BuildMarkdown(p Projection) string {
	var b strings.Builder
	in := p.Inputs
	fmt.Fprintf(&b, "# Business Performance Simulation\n\n")
	fmt.Fprintf(&b, "%s\n\n", Disclaimer)

	fmt.Fprintf(&b, "## Parameters\n\n")
	fmt.Fprintf(&b, "| Parameter | Value |\n|-----------|-------|\n")
	fmt.Fprintf(&b, "| Initial investment (10k) | %s |\n", FormatAmount(in.InitialInvestment))
	fmt.Fprintf(&b, "| Market growth (%%) | %.1f |\n", in.MarketGrowthPct)
	fmt.Fprintf(&b, "| Competition | %s |\n", in.Competition)
	fmt.Fprintf(&b, "| Growth strategy | %s |\n", in.Strategy)
	fmt.Fprintf(&b, "| Employee productivity | %d |\n", in.EmployeeProductivity)
	fmt.Fprintf(&b, "| Employees | %d |\n", in.EmployeeCount)
	fmt.Fprintf(&b, "| Operating expenses (%%) | %.1f |\n", in.OperatingExpensesPct)
	fmt.Fprintf(&b, "| Combined growth factor | %.4f |\n\n", p.Summary.CombinedFactor)

	years := len(p.Points)
	fmt.Fprintf(&b, "## Key Indicators\n\n")
	fmt.Fprintf(&b, "- Year %d revenue: %s\n", years, FormatAmount(p.Summary.FinalRevenue))
	fmt.Fprintf(&b, "- Year %d net profit: %s\n", years, FormatAmount(p.Summary.FinalProfit))
	fmt.Fprintf(&b, "- Year %d market share: %.1f%%\n", years, p.Summary.FinalMarketShare*100)
	fmt.Fprintf(&b, "- Cumulative cash flow: %s\n\n", FormatAmount(p.Summary.CumulativeCash))

	fmt.Fprintf(&b, "## Results by Year\n\n")
	fmt.Fprintf(&b, "| Year | Revenue (10k) | Net Profit (10k) | Cash Flow (10k) | Market Share (%%) |\n")
	fmt.Fprintf(&b, "|------|---------------|------------------|-----------------|------------------|\n")
	for _, pt := range p.Points {
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s |\n",
			pt.Year, FormatAmount(pt.Revenue), FormatAmount(pt.Profit), FormatAmount(pt.CashFlow), FormatSharePct(pt.MarketShare))
	}
	fmt.Fprintf(&b, "\n")

	fmt.Fprintf(&b, "## Risk Analysis\n\n")
	if len(p.Risks) == 0 {
		fmt.Fprintf(&b, "No risk factors raised.\n")
		return b.String()
	}
	for _, r := range p.Risks {
		fmt.Fprintf(&b, "- **Risk factor: %s**\n  - Response: %s\n", r.Title, r.Advice)
	}
	return b.String()
}
