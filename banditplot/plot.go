// Package banditplot renders a finished simulation as an HTML chart
// page: a scatter of the chosen bandit per attempt followed by a line
// of total regret. It consumes the immutable Round sequence a run
// produced and holds no decision logic.
package banditplot

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/n0madic/go-bernoulli-bandit/bernoulli"
)

// Render writes the chart page for a completed run to w.
func Render(w io.Writer, rounds []bernoulli.Round) error {
	if len(rounds) == 0 {
		return errors.New("no rounds to render")
	}

	attempts := makeRange(len(rounds))
	choices := make([]opts.ScatterData, len(rounds))
	regret := make([]opts.LineData, len(rounds))
	for i, r := range rounds {
		choices[i] = opts.ScatterData{Value: r.Bandit}
		regret[i] = opts.LineData{Value: r.Regret}
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeInfographic,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Chosen bandit per attempt",
			Subtitle: "Thompson Sampling",
		}),
	)
	scatter.SetXAxis(attempts).AddSeries("chosen bandit", choices)

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeInfographic,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Total regret",
			Subtitle: "Thompson Sampling",
		}),
	)
	line.SetXAxis(attempts).AddSeries("total regret", regret)

	page := components.NewPage()
	page.AddCharts(scatter, line)
	return page.Render(w)
}

// RenderFile writes the chart page for a completed run to an HTML file.
func RenderFile(path string, rounds []bernoulli.Round) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Render(f, rounds); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func makeRange(n int) []string {
	result := make([]string, n)
	for i := 0; i < n; i++ {
		result[i] = fmt.Sprintf("%d", i)
	}
	return result
}
