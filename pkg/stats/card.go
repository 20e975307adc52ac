package stats

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Bar is a single bar of a chart, ready to be drawn.
type Bar struct {
	Label  string   `json:"label"`
	Style  Style    `json:"style"`
	Value  *float64 `json:"value"`
	Width  float64  `json:"width"`
	SmallN bool     `json:"smallN,omitempty"`
}

// Card is everything the renderer needs to draw a state's social card.
// Cases and Deaths are empty when the state publishes no such rates.
type Card struct {
	State    string       `json:"state"`
	Status   RateStatus   `json:"status"`
	RateType string       `json:"rateType"`
	Square   bool         `json:"square"`
	Cases    []Bar        `json:"cases,omitempty"`
	Deaths   []Bar        `json:"deaths,omitempty"`
	Headline string       `json:"headline"`
	Summary  GroupSummary `json:"summary"`
}

// Card builds the card for s in the square or wide format.
func (b *Builder) Card(s *StateRecord, combined CombinedStates, square bool) (*Card, error) {
	status := Status(s, combined)
	sum := b.Groups(s)

	c := &Card{
		State:    s.State,
		Status:   status,
		RateType: status.RateType(),
		Square:   square,
		Summary:  sum,
	}

	var err error
	if !status.NoCharts && !status.DeathsOnly {
		c.Cases, err = bars(sum.Groups, false, sum.MaxCasesPerCap, square, status.OneChart)
		if err != nil {
			return nil, err
		}
	}
	if !status.NoCharts && !status.CasesOnly {
		c.Deaths, err = bars(sum.Groups, true, sum.MaxDeathsPerCap, square, status.OneChart)
		if err != nil {
			return nil, err
		}
	}

	c.Headline = headline(s.State, status, sum)
	return c, nil
}

// bars lays out the cases or deaths chart. Widths are taken from the
// unrounded rates, the same values the maxima were computed from, so no bar
// is wider than the chart.
func bars(groups []*DemographicGroup, deathsChart bool, max float64, square, oneChart bool) ([]Bar, error) {
	out := make([]Bar, 0, len(groups))
	for _, g := range groups {
		bar := Bar{
			Label: g.Label,
			Style: g.Style,
			Value: g.Cases,
		}
		scaled := g.scaledCases
		if deathsChart {
			bar.Value = g.Deaths
			bar.SmallN = g.SmallNDeaths
			scaled = g.scaledDeaths
		}
		// A chart of nothing but zeros has no axis to scale against.
		if bar.Value != nil && max != 0 {
			w, err := BarWidth(scaled, max, square, oneChart)
			if err != nil {
				return nil, err
			}
			bar.Width = w
		}
		out = append(out, bar)
	}
	return out, nil
}

func headline(state string, status RateStatus, sum GroupSummary) string {
	printer := message.NewPrinter(language.English)

	switch {
	case status.NoCharts || len(sum.Groups) == 0:
		return printer.Sprintf("In %s, no race and ethnicity rates are available", state)
	case status.DeathsOnly:
		return printer.Sprintf("In %s, %s have the highest COVID-19 mortality rates (%.0f deaths per 100,000 people)",
			state, sum.WorstDeathsGroup, sum.WorstDeathsValue)
	}
	return printer.Sprintf("In %s, %s have the highest COVID-19 infection rates (%.0f cases per 100,000 people)",
		state, sum.WorstCasesGroup, sum.WorstCasesValue)
}
