package sink

import (
	"fmt"
	"os"

	"emergent-ca/internal/core"
	"emergent-ca/internal/stats"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

type gridProvider interface {
	Grid() *core.FieldGrid
}

type perturbationReporter interface {
	Perturbed() bool
}

var channelNames = [stats.Tracked]string{"structure", "support", "memory", "oscillator"}

var channelColors = [stats.Tracked]drawing.Color{
	chart.ColorRed,
	chart.ColorGreen,
	chart.ColorBlue,
	{R: 255, G: 165, B: 0, A: 255},
}

// ChartWriter samples grid statistics on every frame and, on Stop, writes a
// PNG line chart of per-channel means.
type ChartWriter struct {
	Path  string
	Title string

	sim    core.Sim
	series stats.Series
}

// NewChartWriter samples sim, which must expose its grid.
func NewChartWriter(path string, sim core.Sim) *ChartWriter {
	return &ChartWriter{Path: path, Title: "Channel means", sim: sim}
}

// Start clears previously collected samples.
func (c *ChartWriter) Start() error {
	if _, ok := c.sim.(gridProvider); !ok {
		return fmt.Errorf("sim %q does not expose a grid", c.sim.Name())
	}
	c.series = stats.Series{}
	return nil
}

// OnFrame records the current grid statistics.
func (c *ChartWriter) OnFrame(f core.Frame) error {
	g := c.sim.(gridProvider).Grid()
	perturbed := false
	if r, ok := c.sim.(perturbationReporter); ok {
		perturbed = r.Perturbed()
	}
	c.series.Record(f.Tick, g, perturbed)
	return nil
}

// Stop renders the chart. Fewer than two samples produce no file.
func (c *ChartWriter) Stop() error {
	if c.series.Len() < 2 {
		return nil
	}
	out, err := os.Create(c.Path)
	if err != nil {
		return fmt.Errorf("create %s: %w", c.Path, err)
	}
	if err := c.render(out); err != nil {
		out.Close()
		return fmt.Errorf("render chart: %w", err)
	}
	return out.Close()
}

// Series exposes the samples collected so far.
func (c *ChartWriter) Series() *stats.Series { return &c.series }

func (c *ChartWriter) render(out *os.File) error {
	series := make([]chart.Series, 0, stats.Tracked)
	for ch := 0; ch < stats.Tracked; ch++ {
		series = append(series, chart.ContinuousSeries{
			Name:    channelNames[ch],
			XValues: c.series.Ticks,
			YValues: c.series.Means[ch],
			Style:   chart.Style{StrokeColor: channelColors[ch], StrokeWidth: 2},
		})
	}

	graph := chart.Chart{
		Title:  c.Title,
		Width:  960,
		Height: 400,
		XAxis: chart.XAxis{
			Name: "tick",
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%d", int(v.(float64)))
			},
		},
		YAxis: chart.YAxis{
			Name:  "mean",
			Range: &chart.ContinuousRange{Min: 0, Max: 1},
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	return graph.Render(chart.PNG, out)
}
