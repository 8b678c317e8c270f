package galaxy

import (
	"fmt"

	"cagrid/internal/presets"
	"cagrid/pkg/ca"
)

func init() {
	presets.Register("galaxy", func() presets.Preset {
		return presets.Preset{
			Name:        "galaxy",
			Description: "gravitational N-body-flavored Custom rule over a 3D grid",
			Config:      DefaultConfig(),
		}
	})
}

// NewEngine builds an Engine configured per cfg, seeded with a random
// galaxy formation: each cell becomes a star system with probability
// cfg.Density (via Engine.InitCondition), and every resulting system is
// then assigned a random mass in [MinMass, MaxMass). Mirrors
// Source/Datatypes/galaxy.cpp's init_galaxy: setup_dimensions_3d,
// setup_boundary(Periodic), setup_rule(Custom), init_condition, then the
// post-condition mass-assignment loop (there done with srand(time(NULL));
// here the engine's own seeded RNG is reused via rngSeed).
func NewEngine(cfg Config, rngSeed int64) (*ca.Engine[Cell], error) {
	e := ca.NewEngine[Cell]()
	if err := e.SetDimensions3D(cfg.Dims[0], cfg.Dims[1], cfg.Dims[2], Cell{}); err != nil {
		return nil, fmt.Errorf("galaxy: %w", err)
	}
	e.SetNeighborhood(ca.VonNeumann)
	if err := e.SetBoundary(ca.Periodic, cfg.Radius); err != nil {
		return nil, fmt.Errorf("galaxy: %w", err)
	}
	if err := e.SetNumStates(2); err != nil {
		return nil, fmt.Errorf("galaxy: %w", err)
	}
	e.SetRule(ca.Custom)
	e.SetCustomRule(NewRule(cfg.Dims, cfg.TimeStep))
	e.Seed(rngSeed)

	if err := e.InitCondition(1, cfg.Density); err != nil {
		return nil, fmt.Errorf("galaxy: %w", err)
	}

	assignMasses(e, cfg)
	return e, nil
}

// assignMasses walks every cell and gives each non-empty one a random
// mass in [cfg.MinMass, cfg.MaxMass), matching init_galaxy's loop
// (min_mass + rand() % (max_mass - min_mass), which never produces
// max_mass itself). Draws from the engine's own seeded RNG so Seed fully
// determines the run.
func assignMasses(e *ca.Engine[Cell], cfg Config) {
	rng := e.Rand()
	g := e.Grid()
	for _, c := range g.Coords() {
		cell := g.Get(c)
		if cell.State != 0 {
			cell.Mass = float64(rng.IntRange(cfg.MinMass, cfg.MaxMass-1))
		}
		g.SetNext(c, cell)
	}
	g.Swap()
}
