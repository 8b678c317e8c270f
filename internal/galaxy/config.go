package galaxy

import "log"

// Config holds a galaxy simulation's tunables. Grounded on
// Source/Datatypes/galaxy.cpp's Galaxy constructor: every field is
// validated independently and falls back to a documented default (with a
// logged warning) rather than failing the whole construction.
type Config struct {
	TimeStep  float64
	MinMass   int
	MaxMass   int
	Density   float64
	Radius    int
	Dims      [3]int
}

// NewConfig validates the given values against Source/Datatypes/galaxy.cpp's
// constructor cascade and returns a Config with any invalid field replaced
// by its default, logging a warning for each substitution. One deliberate
// departure: the source only bounds boundary_radius against
// min(axis2_dim, axis3_dim), leaving axis1_dim (commonly 1, a "flat sheet"
// embedding) unchecked; this engine's Grid requires the radius bound to
// hold on every active axis (spec.md §3), so the default axis1 dimension
// here is 6 (matching axis2/axis3) rather than the source's 1, and the
// minimum-axis calculation below considers all three axes.
func NewConfig(timeStep float64, minMass, maxMass int, density float64, radius, d1, d2, d3 int) Config {
	c := Config{}

	if timeStep < 0.1 {
		c.TimeStep = 0.1
		log.Printf("Invalid time_step. time_step must be >= 0.1. Using default %v", c.TimeStep)
	} else {
		c.TimeStep = timeStep
	}

	if minMass < 1 {
		c.MinMass = 1
		log.Printf("Invalid min_mass. min_mass must be >= 1. Using default %v", c.MinMass)
	} else {
		c.MinMass = minMass
	}

	if maxMass <= c.MinMass {
		c.MaxMass = 100
		log.Printf("Invalid max_mass. max_mass must be > min_mass. Using default %v", c.MaxMass)
	} else {
		c.MaxMass = maxMass
	}

	if density <= 0.0 || density > 1.0 {
		c.Density = 0.3
		log.Printf("Invalid density. 0 < density must be <= 1. Using default %v", c.Density)
	} else {
		c.Density = density
	}

	if d1 <= 2 {
		c.Dims[0] = 6
		log.Printf("Invalid axis1_dim. axis1_dim must be > 2. Using default %v", c.Dims[0])
	} else {
		c.Dims[0] = d1
	}

	if d2 <= 2 {
		c.Dims[1] = 6
		log.Printf("Invalid axis2_dim. axis2_dim must be > 2. Using default %v", c.Dims[1])
	} else {
		c.Dims[1] = d2
	}

	if d3 <= 2 {
		c.Dims[2] = 6
		log.Printf("Invalid axis3_dim. axis3_dim must be > 2. Using default %v", c.Dims[2])
	} else {
		c.Dims[2] = d3
	}

	minAxis := c.Dims[0]
	if c.Dims[1] < minAxis {
		minAxis = c.Dims[1]
	}
	if c.Dims[2] < minAxis {
		minAxis = c.Dims[2]
	}

	if radius > minAxis/2 || radius <= 0 {
		c.Radius = minAxis / 2
		log.Printf("Invalid boundary_radius. boundary_radius must be <= half the smallest axis dimension and > 0. Setting to %v", c.Radius)
	} else {
		c.Radius = radius
	}

	return c
}

// DefaultConfig mirrors Galaxy's no-argument constructor defaults, with
// axis1_dim raised from the source's 1 to 6 per NewConfig's doc comment.
func DefaultConfig() Config {
	return Config{
		TimeStep: 0.1,
		MinMass:  1,
		MaxMass:  100,
		Density:  0.3,
		Radius:   3,
		Dims:     [3]int{6, 6, 6},
	}
}
