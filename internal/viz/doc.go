// Package viz presents a rendered figure in the terminal.
//
// Each panel is drawn with asciigraph inside a lipgloss box and the boxes
// are joined into the figure grid:
//
//   - [Run]: interactive Bubble Tea viewer, blocks until the user quits
//   - [Print]: the same panels written once to an io.Writer
//
// # Key Bindings
//
//	Tab/Shift+Tab - Focus next/previous panel (full screen)
//	S             - Toggle series statistics
//	T             - Cycle color themes
//	Q/Esc         - Quit
package viz
