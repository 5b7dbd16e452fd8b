// Package physics implements the electrostatic force computation.
//
// [Forces] is the only state-producing entry point: a pure function from
// the current charge array to the net Coulomb force on every particle.
// [Energy] and [Momentum] are read-only diagnostics for display.
//
// # Force law
//
// For an active pair (i, j) with displacement r and softened distance
// d = |r| + ε:
//
//	F_i = k_e · q_i · q_j / d³ · r
//	F_j = -F_i
//
// The scalar carries the sign of the charge product; the paired
// accumulation keeps the third law exact without a second pass. The loop
// is O(n²); the model targets a few tens of particles, not large n.
package physics
