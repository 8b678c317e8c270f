// Command density reads a simulation log produced by
// ca.Engine.WriteLogHeader/WriteLogStep and writes a per-step histogram of
// cell states, one comma-separated count-per-state line per input step.
// Grounded on Utils/CA_utils.cpp's get_density.
package main

import (
	"flag"
	"fmt"
	"os"
)

// Config represents the command-line parameters for the density utility.
type Config struct {
	In  string
	Out string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{In: "", Out: ""}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.In, "in", c.In, "path to a simulation log (- for stdin)")
	fs.StringVar(&c.Out, "out", c.Out, "path to write the density report (- for stdout)")
}

func main() {
	cfg := NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	in, err := openInput(cfg.In)
	if err != nil {
		fmt.Fprintln(os.Stderr, "density:", err)
		os.Exit(1)
	}
	defer in.Close()

	out, err := openOutput(cfg.Out)
	if err != nil {
		fmt.Fprintln(os.Stderr, "density:", err)
		os.Exit(1)
	}
	defer out.Close()

	if err := getDensity(in, out); err != nil {
		fmt.Fprintln(os.Stderr, "density:", err)
		os.Exit(1)
	}
}

func openInput(path string) (*os.File, error) {
	if path == "" || path == "-" {
		return os.Stdin, nil
	}
	return os.Open(path)
}

func openOutput(path string) (*os.File, error) {
	if path == "" || path == "-" {
		return os.Stdout, nil
	}
	return os.Create(path)
}
