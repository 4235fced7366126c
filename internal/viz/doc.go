// Package viz renders a scene session in the terminal.
//
// [Preview] is a Bubble Tea program that ticks a [sim.Session] at 60 Hz and
// draws it on a braille [Canvas] through a pinhole [Camera] that follows the
// camera rig. A side panel shows the capability report, the resolved quality
// settings and an asciigraph trace of the camera residual.
//
// # Key Bindings
//
//	←/→   - Select previous/next card
//	Esc   - Return to overview
//	Tab   - Switch between carousel and graph views
//	+/-   - Add or remove a card
//	Space - Pause/Resume
//	T     - Cycle color themes
//	?     - Show help overlay
package viz
