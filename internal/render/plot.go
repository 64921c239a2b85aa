package render

import (
	"fmt"
	"image/color"
	"io"

	"github.com/npillmayer/welltraj/trajectory"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Plot size of static images.
var (
	PlotWidth  = 6 * vg.Inch
	PlotHeight = 8 * vg.Inch
)

var (
	pathColor   = color.RGBA{R: 31, G: 104, B: 180, A: 255}
	cornerColor = color.RGBA{R: 200, G: 60, B: 40, A: 255}
)

// Image writes a static plot of a sample in the vertical section, H on the
// x-axis and TVD growing downwards. Corner points are marked and labeled.
// format is one of the formats known to gonum/plot, e.g. "png" or "svg".
func Image(w io.Writer, format, title string, s *trajectory.Sample, corners []trajectory.Waypoint) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Horizontal Distance (ft)"
	p.Y.Label.Text = "Vertical Depth (ft)"
	p.Y.Scale = plot.InvertedScale{Normalizer: p.Y.Scale}
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, s.Len())
	for i := range pts {
		pts[i].X, pts[i].Y = s.H[i], s.TVD[i]
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("failed to create path line: %w", err)
	}
	line.Color = pathColor
	line.Width = vg.Points(2)
	p.Add(line)
	p.Legend.Add("trajectory", line)

	if len(corners) > 0 {
		xys := make(plotter.XYs, len(corners))
		names := make([]string, len(corners))
		for i, wp := range corners {
			xys[i].X, xys[i].Y = wp.H, wp.TVD
			names[i] = wp.Label
		}
		scatter, err := plotter.NewScatter(xys)
		if err != nil {
			return fmt.Errorf("failed to create corner points: %w", err)
		}
		scatter.Color = cornerColor
		p.Add(scatter)
		p.Legend.Add("corner points", scatter)
		labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: names})
		if err != nil {
			return fmt.Errorf("failed to create corner labels: %w", err)
		}
		p.Add(labels)
	}

	wt, err := p.WriterTo(PlotWidth, PlotHeight, format)
	if err != nil {
		return fmt.Errorf("failed to render %s plot: %w", format, err)
	}
	n, err := wt.WriteTo(w)
	if err != nil {
		return fmt.Errorf("failed to write %s plot: %w", format, err)
	}
	tracer().Debugf("wrote %d bytes of %s plot", n, format)
	return nil
}
