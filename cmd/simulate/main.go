package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joelkehle/startup-navigator/internal/simulator"
)

func main() {
	def := simulator.DefaultInputs()
	var (
		investment   = flag.Float64("investment", def.InitialInvestment, "Initial investment (10k currency units)")
		growth       = flag.Float64("growth", def.MarketGrowthPct, "Market growth percent [-10, 20]")
		competition  = flag.String("competition", def.Competition.String(), "Competition level: low|medium|high")
		strategy     = flag.String("strategy", def.Strategy.String(), "Growth strategy: aggressive|neutral|conservative")
		productivity = flag.Int("productivity", def.EmployeeProductivity, "Employee productivity [1, 10]")
		employees    = flag.Int("employees", def.EmployeeCount, "Employee count")
		expenses     = flag.Float64("expenses", def.OperatingExpensesPct, "Operating expenses percent [10, 90]")
		years        = flag.Int("years", def.Years, "Projection horizon in years")
		asJSON       = flag.Bool("json", false, "Print the projection and chart series as JSON instead of markdown")
	)
	flag.Parse()

	comp, err := simulator.ParseCompetitionLevel(*competition)
	if err != nil {
		log.Fatal(err)
	}
	strat, err := simulator.ParseGrowthStrategy(*strategy)
	if err != nil {
		log.Fatal(err)
	}

	p, err := simulator.Run(simulator.Inputs{
		InitialInvestment:    *investment,
		MarketGrowthPct:      *growth,
		Competition:          comp,
		Strategy:             strat,
		EmployeeProductivity: *productivity,
		EmployeeCount:        *employees,
		OperatingExpensesPct: *expenses,
		Years:                *years,
	})
	if err != nil {
		log.Fatal(err)
	}

	if *asJSON {
		b, err := json.MarshalIndent(map[string]any{
			"projection": p,
			"charts":     simulator.Charts(p.Points),
		}, "", "  ")
		if err != nil {
			log.Fatalf("encode json: %v", err)
		}
		fmt.Println(string(b))
		return
	}
	if _, err := fmt.Fprint(os.Stdout, simulator.BuildMarkdown(p)); err != nil {
		log.Fatal(err)
	}
}
