package galaxy

import "math"

// The functions below implement the gravitational mechanics
// Include/galaxydatatypes.h documents (compute_gravitational_force,
// compute_accel, compute_velocity, compute_displacement) but which neither
// Source/Datatypes/galaxy.cpp nor Applications/galaxy.cpp ever actually
// wires up — both hardcode a placeholder displacement downstream of a
// commented-out call to compute_gravitational_force. This is where that
// documented-but-never-written physics is completed.

// vectorNorm returns the Euclidean length of a 3-vector.
func vectorNorm(v [3]float64) float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

// gravitationalForce computes the force on the cell of interest (at the
// origin) due to a neighbor at the given offset, under an inverse-square
// law: F = m1*m2/|r|^2 * r_hat, where r_hat is the unit vector from the
// cell of interest toward the neighbor (so the force points toward the
// neighbor, i.e. attraction). Returns the zero vector for a coincident
// offset (undefined direction).
func gravitationalForce(massFocus, massNeighbor float64, offset [3]float64) [3]float64 {
	r := vectorNorm(offset)
	if r == 0 {
		return [3]float64{}
	}
	magnitude := massFocus * massNeighbor / (r * r)
	return [3]float64{
		magnitude * (offset[0] / r),
		magnitude * (offset[1] / r),
		magnitude * (offset[2] / r),
	}
}

// acceleration computes A = F/M.
func acceleration(totalForce [3]float64, mass float64) [3]float64 {
	if mass == 0 {
		return [3]float64{}
	}
	return [3]float64{totalForce[0] / mass, totalForce[1] / mass, totalForce[2] / mass}
}

// velocity computes V = V0 + A*dt.
func velocity(accel, initial [3]float64, dt float64) [3]float64 {
	return [3]float64{
		initial[0] + accel[0]*dt,
		initial[1] + accel[1]*dt,
		initial[2] + accel[2]*dt,
	}
}

// displacement computes D = 0.5*(V0+V1)*dt.
func displacement(initial, final [3]float64, dt float64) [3]float64 {
	return [3]float64{
		0.5 * (initial[0] + final[0]) * dt,
		0.5 * (initial[1] + final[1]) * dt,
		0.5 * (initial[2] + final[2]) * dt,
	}
}

// roundInt rounds to the nearest int, ties breaking away from zero,
// matching Source/Datatypes/galaxy.cpp's round_int.
func roundInt(v float64) int {
	if v < 0 {
		return int(v - 0.5)
	}
	return int(v + 0.5)
}

// mergeVelocity computes the mass-weighted average velocity of an
// inelastic collision. This corrects an apparent bug in
// Source/Datatypes/galaxy.cpp's update_velocity_after_collision, which
// uses the first cell's velocity component twice
// ((m1*v1+m2*v1)/(m1+m2)) instead of averaging in the second cell's
// velocity.
func mergeVelocity(m1 float64, v1 [3]float64, m2 float64, v2 [3]float64) [3]float64 {
	total := m1 + m2
	if total == 0 {
		return v1
	}
	return [3]float64{
		(m1*v1[0] + m2*v2[0]) / total,
		(m1*v1[1] + m2*v2[1]) / total,
		(m1*v1[2] + m2*v2[2]) / total,
	}
}
