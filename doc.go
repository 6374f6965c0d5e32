// Package subplot computes the geometry of subplot panels in a figure.
//
// Given a figure size, a grid of rows and columns, the panel sizes, the
// gaps between panels and the figure margins (all in inches) Calculate
// returns one rectangle per panel in normalized figure coordinates, ready
// to be handed to a plotting library. Package
// github.com/vdobler/subplot/figure does exactly that for gonum.org/v1/plot.
//
// Coordinates
//
// Rectangles are given as (left, bottom, width, height) fractions of the
// figure with the origin in the bottom-left corner. Panels are laid out
// top to bottom and left to right and returned in row-major order:
//
//	+------------------------------------+
//	|            top margin              |
//	|   +-----+ wspace +-----+           |
//	|   |  0  |        |  1  |           |
//	|   +-----+        +-----+           |
//	|    hspace                          |
//	|   +-----+        +-----+           |
//	|   |  2  |        |  3  |           |
//	|   +-----+        +-----+           |
//	|            bottom margin           |
//	+------------------------------------+
//
// HSpace is the vertical gap between two rows, WSpace the horizontal gap
// between two columns.
//
// Layouts
//
// A Layout bundles the inputs of Calculate into one reusable value. It can
// be built in code, from a map (LayoutFromMap) or from YAML, TOML and JSON
// documents (ParseYAML, ParseTOML, ParseJSON, LoadFile). RowLayout is the
// alternative for figures whose rows differ in column count or panel size.
// Both implement Arrangement.
//
// Panels that do not fit into the figure are not an error; CheckFit and
// the Fit methods report the required extent.
package subplot
