package cli

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/awlodge/adventofcode/internal/y2025/day11"
	"github.com/awlodge/adventofcode/pkg/dag"
	"github.com/awlodge/adventofcode/pkg/errors"
	"github.com/awlodge/adventofcode/pkg/render"
)

// graphCommand creates the graph command that draws a cable graph.
func (c *CLI) graphCommand() *cobra.Command {
	var output, format string

	cmd := &cobra.Command{
		Use:   "graph <file>",
		Short: "Draw a device cable graph",
		Long: `Draw a device cable graph (lines of "aaa: bbb ccc") as Graphviz DOT, SVG or PNG.

The format defaults to the extension of --output, or DOT when writing to stdout.`,
		Example: `  adventofcode graph inputs/2025/day11.txt -o cables.svg
  adventofcode graph inputs/2025/day11.txt --format dot`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGraph(cmd, args[0], output, format)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: "+strings.Join(render.Formats(), ", "))

	return cmd
}

func (c *CLI) runGraph(cmd *cobra.Command, path, output, format string) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	if format == "" {
		format = formatFromPath(output)
	}
	if !slices.Contains(render.Formats(), strings.ToLower(format)) {
		return errors.New(errors.ErrCodeInvalidInput, "unsupported format %q", format)
	}

	input, err := readInput(cmd.InOrStdin(), path)
	if err != nil {
		return err
	}
	g, err := day11.Parse(input)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "parse %s", path)
	}
	if err := g.Validate(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "graph %s", path)
	}
	logger.Debug("parsed graph", "nodes", g.Len())

	prog := newProgress(logger)
	data, err := render.Render(ctx, dag.ToDOT(g, nil), format)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "render %s", format)
	}

	if output == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", output)
	}
	prog.done("Rendered graph")

	w := cmd.OutOrStdout()
	printSuccess(w, "Drew %d devices", g.Len())
	printFile(w, output)
	return nil
}

// formatFromPath picks the output format from a file extension.
func formatFromPath(path string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if slices.Contains(render.Formats(), ext) {
		return ext
	}
	return render.FormatDOT
}
