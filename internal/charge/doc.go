// Package charge defines the core data model for the electrostatic
// simulation:
//
//   - [Charge]: position, velocity, charge, mass, and active flag of one
//     particle
//   - [Vec3]: 3-component vector used for positions, velocities, and forces
//   - [Color]: RGBA tuple carried for rendering, ignored by physics
//   - [Bounds]: the axis-aligned deactivation region
//
// Particle arrays are fixed length for the lifetime of a run. A particle
// that leaves the bounds is flagged inactive rather than removed, so index
// i always refers to the same logical particle and trajectory histories
// stay aligned with the charge array.
//
// The Active transition is one way: once false it never becomes true again
// within a run. Resetting from a preset produces a fresh array.
package charge
