package main

import (
	"bufio"
	"fmt"
	"io"
	"math"
)

// promptForConfig re-asks for each value until it parses and falls within
// the documented range, mirroring galaxy_app.cpp's get_numeric_value
// retry loop (there driven by cin's failbit; here by strconv parse
// failure or an out-of-range check).
func promptForConfig(cfg *Config, r *bufio.Reader, w io.Writer) {
	cfg.Dim1 = promptInt(r, w, "Input the desired z dimension size (>= 3): ", 3, -1)
	cfg.Dim2 = promptInt(r, w, "Input the desired x dimension size (>= 3): ", 3, -1)
	cfg.Dim3 = promptInt(r, w, "Input the desired y dimension size (>= 3): ", 3, -1)

	cfg.MinMass = promptInt(r, w, "Input the minimum mass a cell may have (>= 1): ", 1, -1)
	cfg.MaxMass = promptInt(r, w, fmt.Sprintf("Input the maximum mass a cell can have (> %d): ", cfg.MinMass), cfg.MinMass+1, -1)

	cfg.Density = promptFloat(r, w, "Input the desired density of the cellular automata grid (0.0 < density <= 1.0): ", 0.0, 1.0)

	minAxis := cfg.Dim2
	if cfg.Dim3 < minAxis {
		minAxis = cfg.Dim3
	}
	maxRadius := minAxis / 2
	cfg.Radius = promptInt(r, w, fmt.Sprintf("Input maximum distance to account for forces (1 <= distance <= %d): ", maxRadius), 1, maxRadius+1)

	// promptFloat's lower bound is exclusive; the largest float64 below 0.1
	// makes 0.1 itself acceptable.
	cfg.TimeStep = promptFloat(r, w, "Input the desired simulation time step (>= 0.1): ", math.Nextafter(0.1, 0), -1)
	cfg.Steps = promptInt(r, w, "Input the number of steps the simulation should take (>= 1): ", 1, -1)
	fmt.Fprintln(w)
}

// promptInt re-reads until it gets an integer x with min <= x, and x < max
// unless max == -1 (unbounded above), matching get_numeric_value(string,
// int, int)'s semantics.
func promptInt(r *bufio.Reader, w io.Writer, message string, min, max int) int {
	for {
		fmt.Fprint(w, message)
		var x int
		if _, err := fmt.Fscan(r, &x); err != nil {
			inputFailure(w, r)
			continue
		}
		if x < min || (max != -1 && x >= max) {
			inputFailure(w, r)
			continue
		}
		return x
	}
}

// promptFloat re-reads until it gets a float64 x with min < x, and x <= max
// unless max == -1 (unbounded above).
func promptFloat(r *bufio.Reader, w io.Writer, message string, min, max float64) float64 {
	for {
		fmt.Fprint(w, message)
		var x float64
		if _, err := fmt.Fscan(r, &x); err != nil {
			inputFailure(w, r)
			continue
		}
		if x <= min || (max != -1 && x > max) {
			inputFailure(w, r)
			continue
		}
		return x
	}
}

func inputFailure(w io.Writer, r *bufio.Reader) {
	fmt.Fprintln(w, "Invalid Input! Please input a valid numeric value.")
	for {
		b, err := r.ReadByte()
		if err != nil || b == '\n' {
			return
		}
	}
}
