// Package viz draws 3D surfaces in the terminal.
//
// The package renders panels with the Bubble Tea framework:
//
//   - [Canvas]: Braille-based pixel canvas with per-cell colour values
//   - [Camera]: elevation/azimuth projection of the unit axes box
//   - [Surface]: point cloud whose coordinates are replaced every frame
//   - [Axes3D] and [Figure]: titled panels laid out side by side
//   - [Model]: the program that advances an animation on every tick
//
// # Key Bindings
//
//	Q, Esc, Ctrl+C - Quit
package viz
