package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// getDensity reads the three-line header (num_states, rule name, dims)
// ca.Engine.WriteLogHeader produces and writes num_states and the dims
// line (with a trailing comma) back out; then for every subsequent
// WriteLogStep line it tallies how many cells are in each state and writes
// one comma-separated line of counts (state 0's count first, state 1's
// second, and so on). Grounded on Utils/CA_utils.cpp's get_density.
func getDensity(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	if !scanner.Scan() {
		return fmt.Errorf("missing num_states header line")
	}
	numStates, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil {
		return fmt.Errorf("parsing num_states: %w", err)
	}

	if !scanner.Scan() {
		return fmt.Errorf("missing rule header line")
	}
	// rule name, unused by the histogram itself.

	if !scanner.Scan() {
		return fmt.Errorf("missing dims header line")
	}
	dims := strings.TrimSuffix(strings.TrimSpace(scanner.Text()), ",")

	if _, err := fmt.Fprintln(w, numStates); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, dims+","); err != nil {
		return err
	}

	counts := make([]int, numStates)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		for i := range counts {
			counts[i] = 0
		}
		for _, field := range strings.Split(line, ",") {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			state, err := strconv.Atoi(field)
			if err != nil {
				return fmt.Errorf("parsing state value %q: %w", field, err)
			}
			if state >= 0 && state < numStates {
				counts[state]++
			}
		}

		fields := make([]string, numStates)
		for i, c := range counts {
			fields[i] = strconv.Itoa(c)
		}
		if _, err := fmt.Fprintln(w, strings.Join(fields, ",")+","); err != nil {
			return err
		}
	}
	return scanner.Err()
}
