package render

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/npillmayer/welltraj/trajectory"
)

// ChartMaxPoints limits the number of stations embedded into an HTML
// chart; denser samples are thinned out by stride.
var ChartMaxPoints = 4000

// Chart writes an interactive HTML chart of a sample, TVD growing
// downwards. Every point carries MD, inclination and secondary angle for the
// tooltip.
func Chart(w io.Writer, title string, s *trajectory.Sample, corners []trajectory.Waypoint) error {
	idx := strided(s.Len(), ChartMaxPoints)
	data := make([]opts.ScatterData, 0, len(idx))
	for _, i := range idx {
		data = append(data, opts.ScatterData{
			Value: []interface{}{s.H[i], s.TVD[i], s.MD[i], s.Inclination[i], s.Secondary[i]},
		})
	}
	cdata := make([]opts.ScatterData, 0, len(corners))
	for _, wp := range corners {
		cdata = append(cdata, opts.ScatterData{
			Name:  wp.Label,
			Value: []interface{}{wp.H, wp.TVD, wp.MD, wp.Inclination, wp.Secondary},
		})
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "900px", Height: "1000px"}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: fmt.Sprintf("stations=%d of %d", len(data), s.Len())}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Name: "Horizontal Distance (ft)", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Name: "Vertical Depth (ft)", NameLocation: "middle", NameGap: 50, Inverse: opts.Bool(true)}),
	)
	scatter.AddSeries("trajectory", data, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 3}))
	scatter.AddSeries("corner points", cdata, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 10}))

	if err := scatter.Render(w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	tracer().Debugf("rendered chart with %d stations and %d corner points", len(data), len(cdata))
	return nil
}
