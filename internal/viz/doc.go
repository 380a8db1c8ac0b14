// Package viz provides a terminal replay of a forecast run.
//
// The viewer steps through the per-step corrector diagnostics on a timer,
// extending the plotted horizon one prediction at a time next to the
// series tail it grew from.
//
// # Key Bindings
//
//	Space - Pause/Resume playback
//	R     - Restart from the first step
//	Q     - Quit
package viz
