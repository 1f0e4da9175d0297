package simulator

// ChartPoint is one x/y sample of a line trace.
type ChartPoint struct {
	X int     `json:"x"`
	Y float64 `json:"y"`
}

type ChartTrace struct {
	Name   string       `json:"name"`
	Points []ChartPoint `json:"points"`
}

// ChartSeries holds the data for one line chart.
type ChartSeries struct {
	Title  string       `json:"title"`
	XLabel string       `json:"x_label"`
	YLabel string       `json:"y_label"`
	Traces []ChartTrace `json:"traces"`
}

// Charts returns the financial metrics chart followed by the market share
// chart. Market share is expressed in percent.
func Charts(points []ProjectionPoint) []ChartSeries {
	trace := func(name string, value func(ProjectionPoint) float64) ChartTrace {
		t := ChartTrace{Name: name, Points: make([]ChartPoint, 0, len(points))}
		for _, p := range points {
			t.Points = append(t.Points, ChartPoint{X: p.Year, Y: value(p)})
		}
		return t
	}
	return []ChartSeries{
		{
			Title:  "Financial metrics",
			XLabel: "Year",
			YLabel: "Amount (10k)",
			Traces: []ChartTrace{
				trace("Revenue", func(p ProjectionPoint) float64 { return p.Revenue }),
				trace("Net profit", func(p ProjectionPoint) float64 { return p.Profit }),
				trace("Cash flow", func(p ProjectionPoint) float64 { return p.CashFlow }),
			},
		},
		{
			Title:  "Market share",
			XLabel: "Year",
			YLabel: "Market share (%)",
			Traces: []ChartTrace{
				trace("Market share", func(p ProjectionPoint) float64 { return p.MarketShare * 100 }),
			},
		},
	}
}
