package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/katalvlaran/thermact/activity"
	"github.com/katalvlaran/thermact/config"
	"github.com/katalvlaran/thermact/curve"
	"github.com/katalvlaran/thermact/unifac"
	"github.com/katalvlaran/thermact/uniquac"
)

// mixture is a built model plus what the report needs to describe it.
type mixture struct {
	model activity.Model
	names []string
	basis string // "x" (mole) or "w" (weight)
	gert  curve.ExcessFunc
}

func loadConfig(path string, T float64, x, plot string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if T != 0 {
		cfg.Temperature = T
	}
	if x != "" {
		if cfg.Composition, err = parseFloats(x); err != nil {
			return nil, fmt.Errorf("-x: %w", err)
		}
	}
	if plot != "" {
		cfg.Plot.Output = plot
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func parseFloats(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	out := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}

func build(cfg *config.Config) (*mixture, error) {
	if cfg.Model == config.ModelUNIQUAC {
		m, err := uniquac.New(cfg.UNIQUAC.R, cfg.UNIQUAC.Q, cfg.Tau(), uniquac.WithSumTolerance(cfg.SumTolerance))
		if err != nil {
			return nil, err
		}
		return &mixture{
			model: m,
			names: cfg.Names(),
			basis: "x",
			gert:  func(x []float64, T float64) (float64, error) { return activity.ExcessGibbsRT(m, x, T) },
		}, nil
	}

	table, err := cfg.Table()
	if err != nil {
		return nil, err
	}
	reg, err := cfg.Registry()
	if err != nil {
		return nil, err
	}
	opts := []unifac.Option{unifac.WithSumTolerance(cfg.SumTolerance)}

	switch cfg.Model {
	case config.ModelFreeVolume:
		e, err := unifac.NewFreeVolume(table, reg, cfg.MolarMasses, opts...)
		if err != nil {
			return nil, err
		}
		return engineMixture(e), nil
	case config.ModelVisco:
		v, err := unifac.NewExcessEnergy(table, reg, opts...)
		if err != nil {
			return nil, err
		}
		mx := engineMixture(v.Engine())
		mx.gert = v.GERT
		return mx, nil
	case config.ModelWeight:
		e, err := unifac.New(table, reg, opts...)
		if err != nil {
			return nil, err
		}
		wf, err := unifac.NewWeightFraction(e, cfg.MolarMasses)
		if err != nil {
			return nil, err
		}
		return &mixture{
			model: wf,
			names: e.Names(),
			basis: "w",
			gert: func(w []float64, T float64) (float64, error) {
				x, _, err := activity.MoleFractions(w, cfg.MolarMasses)
				if err != nil {
					return 0, err
				}
				return activity.ExcessGibbsRT(e, x, T)
			},
		}, nil
	default:
		e, err := unifac.New(table, reg, opts...)
		if err != nil {
			return nil, err
		}
		return engineMixture(e), nil
	}
}

func engineMixture(e *unifac.Engine) *mixture {
	return &mixture{
		model: e,
		names: e.Names(),
		basis: "x",
		gert:  func(x []float64, T float64) (float64, error) { return activity.ExcessGibbsRT(e, x, T) },
	}
}

// report prints γ and a at the configured (or equimolar) composition.
func report(w io.Writer, cfg *config.Config, mx *mixture) error {
	n := mx.model.Components()
	x := cfg.Composition
	if len(x) == 0 {
		x = make([]float64, n)
		for i := range x {
			x[i] = 1 / float64(n)
		}
	}
	y, err := mx.model.Coefficients(x, cfg.Temperature)
	if err != nil {
		return err
	}
	a, err := activity.Activities(y, x)
	if err != nil {
		return err
	}
	ge, err := mx.gert(x, cfg.Temperature)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "model %s, T = %g K\n", cfg.Model, cfg.Temperature)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "component\t%s\tgamma\tactivity\n", mx.basis)
	for i := range y {
		fmt.Fprintf(tw, "%s\t%.6g\t%.6g\t%.6g\n", mx.names[i], x[i], y[i], a[i])
	}
	if err = tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(w, "GE/RT = %.6g\n", ge)

	return nil
}

// sweep writes the binary curve to cfg.Plot.Output. GE/RT and the
// composition axis follow the mixture, so they match the report.
func sweep(cfg *config.Config, mx *mixture) error {
	points, err := curve.Binary(mx.model, cfg.Temperature, cfg.Plot.Steps, curve.WithExcess(mx.gert))
	if err != nil {
		return err
	}
	if curve.Format(cfg.Plot.Output) == "csv" {
		f, err := os.Create(cfg.Plot.Output)
		if err != nil {
			return err
		}
		if err = curve.WriteCSV(f, points, mx.names, mx.basis); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}

	return curve.Plot(points, mx.names, curve.Options{
		Output: cfg.Plot.Output,
		Title:  cfg.Plot.Title,
		Excess: cfg.Plot.Excess,
		Basis:  mx.basis,
	})
}
