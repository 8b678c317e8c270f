package main

import (
	"strings"
	"testing"
)

func TestGetDensityTalliesStatesPerStep(t *testing.T) {
	input := "2\nMajority\n3,3,0,\n0,1,0,1,0,0,1,0,1\n1,1,1,1,1,1,1,1,1\n"
	var out strings.Builder
	if err := getDensity(strings.NewReader(input), &out); err != nil {
		t.Fatal(err)
	}

	want := "2\n3,3,0,\n5,4,\n0,9,\n"
	if got := out.String(); got != want {
		t.Fatalf("getDensity output =\n%q\nwant\n%q", got, want)
	}
}

func TestGetDensityRejectsMissingHeader(t *testing.T) {
	var out strings.Builder
	if err := getDensity(strings.NewReader(""), &out); err == nil {
		t.Fatal("expected an error for an empty log")
	}
}

func TestGetDensityIgnoresOutOfRangeStateValues(t *testing.T) {
	input := "2\nParity\n2,2,0,\n0,1,5,-1\n"
	var out strings.Builder
	if err := getDensity(strings.NewReader(input), &out); err != nil {
		t.Fatal(err)
	}
	want := "2\n2,2,0,\n1,1,\n"
	if got := out.String(); got != want {
		t.Fatalf("getDensity output = %q, want %q", got, want)
	}
}
