// Package viz shows a scene in the terminal.
//
// The package implements a static viewer using the Bubble Tea framework:
//
//   - [Canvas]: Braille-based pixel canvas with per-cell color tags
//   - [Rasterize]: draws a scene's frame, grid and glyphs on a canvas
//   - [Viewer]: Bubble Tea model that renders the canvas with a legend
//
// # Key Bindings
//
//	q, Esc, Ctrl+C - Close the viewer
//
// Each Braille cell holds 2x4 dots, and terminal cells are about twice as
// tall as wide, so dots are close to square and circles keep their shape.
package viz
