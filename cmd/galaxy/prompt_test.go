package main

import (
	"bufio"
	"strings"
	"testing"
)

func TestPromptIntRetriesOnOutOfRange(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("1\nnot-a-number\n5\n"))
	var out strings.Builder
	got := promptInt(r, &out, "n: ", 3, -1)
	if got != 5 {
		t.Fatalf("promptInt = %d, want 5 after retrying past 1 and a non-numeric line", got)
	}
}

func TestPromptIntRespectsExclusiveUpperBound(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("10\n9\n"))
	var out strings.Builder
	got := promptInt(r, &out, "n: ", 0, 10)
	if got != 9 {
		t.Fatalf("promptInt = %d, want 9 (10 is excluded by max=10)", got)
	}
}

func TestPromptFloatRetriesOnOutOfRange(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("0.0\n0.5\n"))
	var out strings.Builder
	got := promptFloat(r, &out, "d: ", 0.0, 1.0)
	if got != 0.5 {
		t.Fatalf("promptFloat = %v, want 0.5 (0.0 excluded, min is exclusive)", got)
	}
}

func TestPromptForConfigPopulatesAllFields(t *testing.T) {
	input := strings.Join([]string{
		"6", "6", "6", // dims
		"1",      // min mass
		"10",     // max mass
		"0.5",    // density
		"2",      // radius
		"0.2",    // time step
		"5",      // steps
	}, "\n") + "\n"
	r := bufio.NewReader(strings.NewReader(input))
	var out strings.Builder
	cfg := NewConfig()
	promptForConfig(cfg, r, &out)

	if cfg.Dim1 != 6 || cfg.Dim2 != 6 || cfg.Dim3 != 6 {
		t.Fatalf("dims = %d,%d,%d, want 6,6,6", cfg.Dim1, cfg.Dim2, cfg.Dim3)
	}
	if cfg.MinMass != 1 || cfg.MaxMass != 10 {
		t.Fatalf("mass range = %d,%d, want 1,10", cfg.MinMass, cfg.MaxMass)
	}
	if cfg.Density != 0.5 {
		t.Fatalf("density = %v, want 0.5", cfg.Density)
	}
	if cfg.Radius != 2 {
		t.Fatalf("radius = %d, want 2", cfg.Radius)
	}
	if cfg.TimeStep != 0.2 {
		t.Fatalf("time step = %v, want 0.2", cfg.TimeStep)
	}
	if cfg.Steps != 5 {
		t.Fatalf("steps = %d, want 5", cfg.Steps)
	}
}
