// Package viz provides the terminal rendering collaborator for the
// simulation core.
//
// The interactive view is a Bubble Tea program:
//
//   - [Canvas]: Braille-based pixel canvas
//   - [Camera]: turntable 3D projection around the scene center
//   - [Model]: frame loop, key handling, stats panel
//
// The physics core knows nothing about this package; the view owns the
// frame timer and calls Advance once per frame while running, so ticks
// stay strictly serialized.
//
// # Key Bindings
//
//	Space - Pause/Resume
//	R     - Reset current preset
//	[ ]   - Previous/next preset
//	+ -   - Adjust time step
//	Arrows- Rotate camera
//	Z X   - Zoom
//	E     - Toggle energy graph
package viz
