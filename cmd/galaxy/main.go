// Command galaxy runs the gravitational galaxy-formation example. Its
// interactive prompt sequence is grounded on
// Applications/galaxy_app.cpp's main: dimensions, mass range, density,
// boundary radius (bounded by half the smaller of the second and third
// axes), time step, and step
// count, each re-asked on invalid input. A -batch flag skips the prompts
// and uses flag-supplied values instead, for scripted runs.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"cagrid/internal/galaxy"
	"cagrid/pkg/ca"
)

// Config represents the command-line parameters for the galaxy example.
type Config struct {
	Batch    bool
	Seed     int64
	Steps    int
	TimeStep float64
	MinMass  int
	MaxMass  int
	Density  float64
	Radius   int
	Dim1     int
	Dim2     int
	Dim3     int
}

// NewConfig returns a Config populated with galaxy.DefaultConfig's values.
func NewConfig() *Config {
	d := galaxy.DefaultConfig()
	return &Config{
		Seed:     42,
		Steps:    10,
		TimeStep: d.TimeStep,
		MinMass:  d.MinMass,
		MaxMass:  d.MaxMass,
		Density:  d.Density,
		Radius:   d.Radius,
		Dim1:     d.Dims[0],
		Dim2:     d.Dims[1],
		Dim3:     d.Dims[2],
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.BoolVar(&c.Batch, "batch", c.Batch, "skip interactive prompts and use flag values")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the galaxy's random formation and mass assignment")
	fs.IntVar(&c.Steps, "steps", c.Steps, "number of simulation steps")
	fs.Float64Var(&c.TimeStep, "time-step", c.TimeStep, "simulation time step (>= 0.1)")
	fs.IntVar(&c.MinMass, "min-mass", c.MinMass, "minimum cell mass (>= 1)")
	fs.IntVar(&c.MaxMass, "max-mass", c.MaxMass, "maximum cell mass (> min-mass)")
	fs.Float64Var(&c.Density, "density", c.Density, "initial star system density (0 < d <= 1)")
	fs.IntVar(&c.Radius, "radius", c.Radius, "force-accounting boundary radius")
	fs.IntVar(&c.Dim1, "dim1", c.Dim1, "first axis size (>= 3)")
	fs.IntVar(&c.Dim2, "dim2", c.Dim2, "second axis size (>= 3)")
	fs.IntVar(&c.Dim3, "dim3", c.Dim3, "third axis size (>= 3)")
}

func main() {
	cfg := NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if !cfg.Batch {
		promptForConfig(cfg, bufio.NewReader(os.Stdin), os.Stdout)
	}

	gcfg := galaxy.NewConfig(cfg.TimeStep, cfg.MinMass, cfg.MaxMass, cfg.Density,
		cfg.Radius, cfg.Dim1, cfg.Dim2, cfg.Dim3)

	e, err := galaxy.NewEngine(gcfg, cfg.Seed)
	if err != nil {
		fmt.Fprintln(os.Stderr, "galaxy:", err)
		os.Exit(1)
	}

	steps := cfg.Steps
	if steps < 1 {
		steps = 1
	}
	for i := 0; i < steps; i++ {
		if err := e.Step(nil); err != nil {
			fmt.Fprintln(os.Stderr, "galaxy: step", i, ":", err)
			code := 1
			if caErr, ok := err.(*ca.Error); ok {
				code = int(caErr.Code)
			}
			os.Exit(code)
		}
	}

	if err := e.PrintGrid(os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "galaxy:", err)
		os.Exit(1)
	}
}
