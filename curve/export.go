package curve

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/thermact/activity"
)

// Options controls a rendered plot.
type Options struct {
	// Output is the file written by Plot. Its extension selects the format
	// (png, svg, pdf, eps, jpg, tif).
	Output string

	// Title is the plot title. Default: "Activity coefficients".
	Title string

	// Width and Height of the image. Default: 6in × 4in.
	Width, Height vg.Length

	// Excess adds the GE/RT curve next to the ln γ curves.
	Excess bool

	// Basis names the composition variable on the x axis. Default: "x".
	Basis string
}

func (o *Options) defaults() {
	if o.Title == "" {
		o.Title = "Activity coefficients"
	}
	if o.Width <= 0 {
		o.Width = 6 * vg.Inch
	}
	if o.Height <= 0 {
		o.Height = 4 * vg.Inch
	}
	o.Basis = basis(o.Basis)
}

func basis(b string) string {
	if b == "" {
		return "x"
	}

	return b
}

func checkSweep(points []Point, labels []string) error {
	if len(points) == 0 {
		return ErrNoPoints
	}
	if len(labels) != len(points[0].LnGamma) {
		return fmt.Errorf("%d labels for %d components: %w", len(labels), len(points[0].LnGamma), activity.ErrDimensionMismatch)
	}

	return nil
}

// New builds the plot of ln γ against x₁, one line per component.
func New(points []Point, labels []string, opts Options) (*plot.Plot, error) {
	if err := checkSweep(points, labels); err != nil {
		return nil, curveErrorf("New", err)
	}
	opts.defaults()

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = opts.Basis + "1 (" + labels[0] + ")"
	p.Y.Label.Text = "ln γ"
	p.Add(plotter.NewGrid())

	series := len(labels)
	if opts.Excess {
		series++
	}
	for k := 0; k < series; k++ {
		xys := make(plotter.XYs, len(points))
		for i, pt := range points {
			xys[i].X = pt.X1
			if k < len(labels) {
				xys[i].Y = pt.LnGamma[k]
			} else {
				xys[i].Y = pt.GERT
			}
		}
		l, err := plotter.NewLine(xys)
		if err != nil {
			return nil, curveErrorf("New", err)
		}
		l.LineStyle.Width = vg.Points(1.5)
		l.LineStyle.Color = plotutil.Color(k)
		l.LineStyle.Dashes = plotutil.Dashes(k)
		p.Add(l)
		if k < len(labels) {
			p.Legend.Add("ln γ "+labels[k], l)
		} else {
			p.Legend.Add("GE/RT", l)
		}
	}
	p.Legend.Top = true

	return p, nil
}

// Plot renders the sweep to opts.Output.
func Plot(points []Point, labels []string, opts Options) error {
	if opts.Output == "" {
		return curveErrorf("Plot", fmt.Errorf("empty output path: %w", activity.ErrFormat))
	}
	p, err := New(points, labels, opts)
	if err != nil {
		return err
	}
	opts.defaults()
	if err = p.Save(opts.Width, opts.Height, opts.Output); err != nil {
		return curveErrorf("Plot", err)
	}

	return nil
}

// WritePlot renders the sweep in the given format ("png", "svg", ...) to w.
func WritePlot(w io.Writer, format string, points []Point, labels []string, opts Options) error {
	p, err := New(points, labels, opts)
	if err != nil {
		return err
	}
	opts.defaults()
	wt, err := p.WriterTo(opts.Width, opts.Height, strings.TrimPrefix(format, "."))
	if err != nil {
		return curveErrorf("WritePlot", err)
	}
	if _, err = wt.WriteTo(w); err != nil {
		return curveErrorf("WritePlot", err)
	}

	return nil
}

// Format returns the image format implied by a file name.
func Format(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}

// WriteCSV writes the sweep as a table with a header row:
//
//	x1,gamma_<a>,gamma_<b>,ln_gamma_<a>,ln_gamma_<b>,ge_rt
//
// The first column is named after the composition basis ("x" when empty,
// "w" gives w1).
func WriteCSV(w io.Writer, points []Point, labels []string, basisName string) error {
	if err := checkSweep(points, labels); err != nil {
		return curveErrorf("WriteCSV", err)
	}

	cw := csv.NewWriter(w)
	header := []string{basis(basisName) + "1"}
	for _, l := range labels {
		header = append(header, "gamma_"+l)
	}
	for _, l := range labels {
		header = append(header, "ln_gamma_"+l)
	}
	header = append(header, "ge_rt")
	if err := cw.Write(header); err != nil {
		return curveErrorf("WriteCSV", err)
	}

	row := make([]string, 0, len(header))
	for _, pt := range points {
		row = append(row[:0], formatFloat(pt.X1))
		for _, v := range pt.Gamma {
			row = append(row, formatFloat(v))
		}
		for _, v := range pt.LnGamma {
			row = append(row, formatFloat(v))
		}
		row = append(row, formatFloat(pt.GERT))
		if err := cw.Write(row); err != nil {
			return curveErrorf("WriteCSV", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return curveErrorf("WriteCSV", err)
	}

	return nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', 10, 64)
}
