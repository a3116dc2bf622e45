// Package viz is the terminal front end for a wavefront session.
//
// The live view is a Bubble Tea program. Every tick runs one session
// Update followed by one Render, then rasterizes the frame's segments onto
// a braille [Canvas] with per-cell colour:
//
//   - [Model]: the bubbletea model wrapping a session
//   - [Canvas]: braille grid with Bresenham lines and segment clipping
//   - [Recorder]: animated GIF capture of the canvas
//   - Theme selection with 5 built-in color schemes
//
// # Key Bindings
//
//	P/L/R      - Point, line or radial plot style
//	Up/Down    - Increase/reduce simulation speed
//	Ctrl+R     - Reset the wavefront
//	Space      - Pause/Resume
//	Tab        - Toggle orthographic/perspective projection
//	Left/Right - Previous/next parameter set
//	G          - Toggle GIF recording
//	T          - Cycle color themes
//	?          - Show help overlay
package viz
