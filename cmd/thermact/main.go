// thermact - activity coefficients of liquid mixtures
//
// thermact reads a YAML configuration naming a model (UNIFAC and its
// variants, or UNIQUAC), a parameter set and a mixture, and prints the
// activity coefficients and activities at one composition. For binary
// mixtures it can also sweep x1 over [0, 1] and write the curves as an
// image or CSV table.
//
//	thermact -config mixture.yaml -T 330 -x 0.2,0.8 -plot gamma.png
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
)

const version = "0.3.0"

func main() {
	log.SetFlags(0)
	log.SetPrefix("thermact: ")

	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("thermact", flag.ContinueOnError)
	configPath := fs.String("config", "", "Config file path (YAML)")
	temperature := fs.Float64("T", 0, "Temperature in K (overrides config)")
	composition := fs.String("x", "", "Comma-separated composition (overrides config)")
	plotPath := fs.String("plot", "", "Binary sweep output: .png, .svg, .pdf or .csv (overrides config)")
	verbose := fs.Bool("v", false, "Log progress")
	showVersion := fs.Bool("version", false, "Show version and exit")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *showVersion {
		fmt.Fprintf(stdout, "thermact %s\n", version)
		return nil
	}
	if *configPath == "" {
		return fmt.Errorf("-config is required")
	}

	cfg, err := loadConfig(*configPath, *temperature, *composition, *plotPath)
	if err != nil {
		return err
	}
	if *verbose {
		log.Printf("config %s: model %s, %d components, T = %g K", *configPath, cfg.Model, cfg.Components(), cfg.Temperature)
	}

	m, err := build(cfg)
	if err != nil {
		return err
	}
	if *verbose {
		log.Printf("model built")
	}

	if err = report(stdout, cfg, m); err != nil {
		return err
	}
	if cfg.Plot.Output != "" {
		if err = sweep(cfg, m); err != nil {
			return err
		}
		if *verbose {
			log.Printf("wrote %s (%d steps)", cfg.Plot.Output, cfg.Plot.Steps)
		}
	}

	return nil
}
