package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

// listCommand creates the list command that shows the registered solvers.
func (c *CLI) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available solvers and their inputs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c.printSolvers(cmd.OutOrStdout())
			return nil
		},
	}
}

func (c *CLI) printSolvers(w io.Writer) {
	years := c.Registry.Years()
	if len(years) == 0 {
		printInfo(w, "No solvers registered")
		return
	}

	if _, err := os.Stat(c.config.InputDir); err != nil {
		printWarning(w, "Input directory %s not found", c.config.InputDir)
	}

	for _, year := range years {
		fmt.Fprintln(w, StyleTitle.Render(strconv.Itoa(year)))
		for _, d := range c.dayEntries(year) {
			label := fmt.Sprintf("day %02d", d.Day)
			if !d.HasInput {
				printKeyValue(w, label, StyleDim.Render("no input"))
				continue
			}
			printKeyValue(w, label, d.Path)
		}
	}
}
