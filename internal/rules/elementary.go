package rules

import (
	"strconv"

	"cagrid/internal/presets"
	"cagrid/pkg/ca"
)

// ElementaryConfig holds the parameters of a rank-1 Wolfram elementary CA.
type ElementaryConfig struct {
	Width int
	Rule  uint8
}

// DefaultElementaryConfig returns Rule 110 over a 256-cell line, matching
// internal/sims/elementary/elementary.go's defaults.
func DefaultElementaryConfig() ElementaryConfig {
	return ElementaryConfig{Width: 256, Rule: 110}
}

// ElementaryConfigFromMap populates an ElementaryConfig from a string map.
func ElementaryConfigFromMap(cfg map[string]string) ElementaryConfig {
	c := DefaultElementaryConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["rule"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= 255 {
			c.Rule = uint8(parsed)
		}
	}
	return c
}

// Elementary returns a ca.CustomRuleFunc for the given Wolfram rule number.
// It reads the rank-1 VonNeumann-radius-1 neighborhood (left, center,
// right — the same three cells a Moore neighborhood would give at rank 1)
// and looks up the corresponding output bit, exactly as
// internal/sims/elementary/elementary.go's bit-table lookup does. Engine
// must be configured with a 1D grid, radius 1, NumStates 2.
func Elementary(rule uint8) ca.CustomRuleFunc[ca.IntCell] {
	return func(coord *ca.Coord, neighbors ca.Neighbors[ca.IntCell], focus *ca.IntCell) error {
		var left, center, right int
		for i, off := range neighbors.Offsets {
			switch off[0] {
			case -1:
				left = neighbors.Cells[i].State
			case 0:
				center = neighbors.Cells[i].State
			case 1:
				right = neighbors.Cells[i].State
			}
		}
		idx := uint8(left<<2 | center<<1 | right)
		focus.State = int((rule >> idx) & 1)
		return nil
	}
}

// NewElementaryEngine returns an Engine configured for rank-1 elementary
// CA evolution, seeded with a single active cell at the midpoint, matching
// Elementary.Reset's "scroll history downward from a single seed" start
// condition collapsed into the generic engine's single-row model.
func NewElementaryEngine(c ElementaryConfig) (*ca.Engine[ca.IntCell], error) {
	e := ca.NewEngine[ca.IntCell]()
	if err := e.SetDimensions1D(c.Width, ca.IntCell{}); err != nil {
		return nil, err
	}
	e.SetNeighborhood(ca.VonNeumann)
	if err := e.SetBoundary(ca.Periodic, 1); err != nil {
		return nil, err
	}
	e.SetRule(ca.Custom)
	e.SetCustomRule(Elementary(c.Rule))

	center := c.Width / 2
	if center >= 0 && center < c.Width {
		v := ca.IntCell{State: 1}
		e.Grid().SetNext(ca.Coord{center, 0, 0}, v)
		e.Grid().Swap()
	}
	return e, nil
}

func init() {
	presets.Register("elementary", func() presets.Preset {
		return presets.Preset{
			Name:        "elementary",
			Description: "Rank-1 Wolfram elementary cellular automaton",
			Config:      DefaultElementaryConfig(),
		}
	})
}
