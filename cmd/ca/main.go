// Command ca is a generic headless runner over the named presets registered
// in internal/presets: it looks a preset up by name, builds the matching
// generic engine, advances it the requested number of steps, and prints the
// final grid with Engine.PrintGrid. Unlike cmd/galaxy (which only ever
// builds a galaxy.Engine), this runner has to cross ca.Engine's different
// instantiations (ca.Engine[ca.IntCell] for life/elementary/briansbrain,
// ca.Engine[galaxy.Cell] for galaxy), so it dispatches on the looked-up
// Preset's Config type rather than calling a single constructor.
package main

import (
	"flag"
	"fmt"
	"os"

	"cagrid/internal/galaxy"
	"cagrid/internal/presets"
	"cagrid/internal/rules"
	"cagrid/pkg/ca"
)

// Config represents the command-line parameters for the runner.
type Config struct {
	Preset string
	Seed   int64
	Steps  int
	List   bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Preset: "life", Seed: 42, Steps: 10}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Preset, "preset", c.Preset, "registered preset to run (see -list)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the preset's random initial condition")
	fs.IntVar(&c.Steps, "steps", c.Steps, "number of simulation steps")
	fs.BoolVar(&c.List, "list", c.List, "list the registered presets and exit")
}

func main() {
	cfg := NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if cfg.List {
		for _, name := range presets.Names() {
			factory, _ := presets.Lookup(name)
			p := factory()
			fmt.Printf("%s: %s\n", p.Name, p.Description)
		}
		return
	}

	factory, ok := presets.Lookup(cfg.Preset)
	if !ok {
		fmt.Fprintf(os.Stderr, "ca: unknown preset %q (see -list)\n", cfg.Preset)
		os.Exit(1)
	}
	p := factory()

	steps := cfg.Steps
	if steps < 1 {
		steps = 1
	}

	var stepErr error
	var printErr error
	switch c := p.Config.(type) {
	case rules.LifeConfig:
		e, err := rules.NewLifeEngine(c, cfg.Seed)
		if err != nil {
			fail("ca", err)
		}
		stepErr = run(e, steps)
		if stepErr == nil {
			printErr = e.PrintGrid(os.Stdout)
		}
	case rules.ElementaryConfig:
		e, err := rules.NewElementaryEngine(c)
		if err != nil {
			fail("ca", err)
		}
		stepErr = run(e, steps)
		if stepErr == nil {
			printErr = e.PrintGrid(os.Stdout)
		}
	case rules.BrainConfig:
		e, err := rules.NewBrainEngine(c, cfg.Seed)
		if err != nil {
			fail("ca", err)
		}
		stepErr = run(e, steps)
		if stepErr == nil {
			printErr = e.PrintGrid(os.Stdout)
		}
	case galaxy.Config:
		e, err := galaxy.NewEngine(c, cfg.Seed)
		if err != nil {
			fail("ca", err)
		}
		stepErr = run(e, steps)
		if stepErr == nil {
			printErr = e.PrintGrid(os.Stdout)
		}
	default:
		fmt.Fprintf(os.Stderr, "ca: preset %q has unrecognized config type %T\n", p.Name, p.Config)
		os.Exit(1)
	}

	if stepErr != nil {
		fail("ca", stepErr)
	}
	if printErr != nil {
		fail("ca", printErr)
	}
}

// run advances e by n steps using its registered custom rule.
func run[T ca.Cell](e *ca.Engine[T], n int) error {
	for i := 0; i < n; i++ {
		if err := e.Step(nil); err != nil {
			return err
		}
	}
	return nil
}

func fail(prog string, err error) {
	fmt.Fprintln(os.Stderr, prog+":", err)
	code := 1
	if caErr, ok := err.(*ca.Error); ok {
		code = int(-caErr.Code)
	}
	os.Exit(code)
}
