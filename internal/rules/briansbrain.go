package rules

import (
	"strconv"

	"cagrid/internal/presets"
	"cagrid/pkg/ca"
)

const (
	brainDead  = 0
	brainOn    = 1
	brainDying = 2
)

// BrainConfig holds the grid dimensions for a Brian's Brain engine.
type BrainConfig struct {
	Width  int
	Height int
}

// DefaultBrainConfig matches internal/sims/briansbrain/briansbrain.go's
// hardcoded 256x256 default.
func DefaultBrainConfig() BrainConfig {
	return BrainConfig{Width: 256, Height: 256}
}

// BrainConfigFromMap populates a BrainConfig from a string map.
func BrainConfigFromMap(cfg map[string]string) BrainConfig {
	c := DefaultBrainConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	return c
}

// BriansBrain is a ca.CustomRuleFunc implementing the three-state
// dead/firing/dying automaton: firing cells always decay to dying, dying
// cells always decay to dead, and only dead cells consult their
// neighborhood (becoming firing on exactly 2 firing neighbors). Engine
// must be configured with a 2D grid, Moore neighborhood, radius 1,
// NumStates 3.
func BriansBrain(coord *ca.Coord, neighbors ca.Neighbors[ca.IntCell], focus *ca.IntCell) error {
	switch focus.State {
	case brainOn:
		focus.State = brainDying
	case brainDying:
		focus.State = brainDead
	default:
		count := 0
		for i, off := range neighbors.Offsets {
			if off == (ca.Coord{}) {
				continue
			}
			if neighbors.Cells[i].State == brainOn {
				count++
			}
		}
		if count == 2 {
			focus.State = brainOn
		} else {
			focus.State = brainDead
		}
	}
	return nil
}

// NewBrainEngine returns an Engine configured and seeded for Brian's
// Brain, with roughly 1-in-8 cells starting firing, matching Brain.Reset.
func NewBrainEngine(c BrainConfig, seed int64) (*ca.Engine[ca.IntCell], error) {
	e := ca.NewEngine[ca.IntCell]()
	if err := e.SetDimensions2D(c.Width, c.Height, ca.IntCell{}); err != nil {
		return nil, err
	}
	e.SetNeighborhood(ca.Moore)
	if err := e.SetBoundary(ca.Periodic, 1); err != nil {
		return nil, err
	}
	if err := e.SetNumStates(3); err != nil {
		return nil, err
	}
	e.SetRule(ca.Custom)
	e.SetCustomRule(BriansBrain)
	e.Seed(seed)
	if err := e.InitCondition(brainOn, 1.0/8.0); err != nil {
		return nil, err
	}
	return e, nil
}

func init() {
	presets.Register("briansbrain", func() presets.Preset {
		return presets.Preset{
			Name:        "briansbrain",
			Description: "Brian's Brain three-state automaton",
			Config:      DefaultBrainConfig(),
		}
	})
}
