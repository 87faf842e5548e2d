// Package viz renders traces in the terminal.
//
// The player is a Bubble Tea model driven by a playback controller:
//
//   - [Player]: generic over the step type, redrawn on every controller change
//   - [RenderSortStep]: colored bars, merge cursors and an asciigraph profile
//   - [RenderTraversalStep]: braille [Canvas] drawing of the graph plus frontier
//
// # Key Bindings
//
//	Space - Start/Pause autoplay
//	←/→   - Step backward/forward
//	Home  - First step
//	End   - Last step
//	R     - Reset to before the first step
//	N     - Regenerate the input and re-trace
//	+/-   - Faster/slower autoplay
//	T     - Cycle color themes
//	?     - Show help
package viz
