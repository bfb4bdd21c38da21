// Package render turns Graphviz DOT text into images.
//
// Rendering runs Graphviz compiled to WebAssembly through go-graphviz, so no
// system Graphviz installation is needed.
//
//	dot := dag.ToDOT(g, nil)
//	svg, err := render.RenderSVG(ctx, dot)
//
// The supported formats are listed by [Formats]; [Render] dispatches on a
// format name as given on the command line.
package render
