// Package rules hosts Custom-rule demonstrations of pkg/ca: concrete CA
// models expressed as ca.CustomRuleFunc implementations, each configuring
// a generic ca.Engine the way the teacher's individual sim packages
// configure their own hand-rolled toroidal grids.
package rules

import (
	"strconv"

	"cagrid/internal/presets"
	"cagrid/pkg/ca"
)

// LifeConfig holds the grid dimensions for a Life engine.
type LifeConfig struct {
	Width  int
	Height int
}

// DefaultLifeConfig returns the default Life configuration.
func DefaultLifeConfig() LifeConfig {
	return LifeConfig{Width: 256, Height: 256}
}

// LifeConfigFromMap populates a LifeConfig from a string map, ignoring
// invalid or missing entries.
func LifeConfigFromMap(cfg map[string]string) LifeConfig {
	c := DefaultLifeConfig()
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

// Life is a ca.CustomRuleFunc implementing Conway's Game of Life: a live
// cell (state 1) with 2 or 3 live neighbors survives; a dead cell with
// exactly 3 live neighbors becomes alive. Engine must be configured with a
// 2D grid, Moore neighborhood, radius 1, and NumStates 2.
func Life(coord *ca.Coord, neighbors ca.Neighbors[ca.IntCell], focus *ca.IntCell) error {
	alive := focus.State == 1
	count := 0
	for i, off := range neighbors.Offsets {
		if off == (ca.Coord{}) {
			continue
		}
		if neighbors.Cells[i].State == 1 {
			count++
		}
	}
	switch {
	case alive && (count == 2 || count == 3):
		focus.State = 1
	case !alive && count == 3:
		focus.State = 1
	default:
		focus.State = 0
	}
	return nil
}

// NewLifeEngine returns an Engine configured and seeded for Life, using a
// uniform random fill the way pkg/sims/life/life.go's Reset does.
func NewLifeEngine(c LifeConfig, seed int64) (*ca.Engine[ca.IntCell], error) {
	e := ca.NewEngine[ca.IntCell]()
	if err := e.SetDimensions2D(c.Width, c.Height, ca.IntCell{}); err != nil {
		return nil, err
	}
	e.SetNeighborhood(ca.Moore)
	if err := e.SetBoundary(ca.Periodic, 1); err != nil {
		return nil, err
	}
	e.SetRule(ca.Custom)
	e.SetCustomRule(Life)
	e.Seed(seed)
	if err := e.InitCondition(1, 0.5); err != nil {
		return nil, err
	}
	return e, nil
}

func init() {
	presets.Register("life", func() presets.Preset {
		return presets.Preset{
			Name:        "life",
			Description: "Conway's Game of Life over a generic Moore/Periodic engine",
			Config:      DefaultLifeConfig(),
		}
	})
}
