// Package figure turns a record table into a grid of titled line-plot panels.
//
// The package separates what is drawn from how it is drawn:
//
//   - [Layout]: which columns go to which panel, as plain configuration
//   - [Render]: builds a [Figure] holding the exact values of every series
//   - [Figure.Plots], [Figure.Draw], [Figure.Image]: gonum/plot rendition
//     with tiled spacing so titles and axes of neighbouring panels do not
//     overlap
//
// # Example
//
//	layout := figure.DefaultLayout()
//	t, _ := table.Load("data.csv", table.NewSchema(layout.RequiredColumns()...))
//	fig, _ := figure.Render(t, layout)
//	img, _ := fig.Image(1000, 800)
package figure
