package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/awlodge/adventofcode/pkg/errors"
	"github.com/awlodge/adventofcode/pkg/runner"
)

// runOptions holds the flags of the run command.
type runOptions struct {
	year    int
	input   string
	all     bool
	noCache bool
	refresh bool
}

// runCommand creates the run command that solves puzzle days.
func (c *CLI) runCommand() *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:   "run [day...]",
		Short: "Solve puzzle days",
		Long: `Solve one or more puzzle days and print both answers.

Inputs are read from <input_dir>/<year>/dayNN.txt unless --input is given.
Without day arguments on a terminal, a picker lists the registered days.
Answers are cached by input hash, so re-running an unchanged day is instant.`,
		Example: `  adventofcode run 7
  adventofcode run 1 3 4 --year 2025
  adventofcode run 11 --input cables.txt
  cat day08.txt | adventofcode run 8 --input -
  adventofcode run --all`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("year") {
				opts.year = c.config.Year
			}
			if !cmd.Flags().Changed("no-cache") {
				opts.noCache = c.config.NoCache
			}
			return c.runSolve(cmd.Context(), cmd.OutOrStdout(), cmd.InOrStdin(), args, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.year, "year", "y", 0, "puzzle year (default from config)")
	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "input file, or - for stdin (single day only)")
	cmd.Flags().BoolVarP(&opts.all, "all", "a", false, "solve every registered day of the year")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the answer cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "ignore cached answers and solve again")

	return cmd
}

func (c *CLI) runSolve(ctx context.Context, w io.Writer, stdin io.Reader, args []string, opts runOptions) error {
	logger := loggerFromContext(ctx)

	if err := errors.ValidateYear(opts.year); err != nil {
		return err
	}
	if len(args) == 0 && !opts.all && opts.input == "" && c.interactive && isatty.IsTerminal(os.Stdin.Fd()) {
		day, ok, err := c.pickDay(opts.year)
		if err != nil {
			return err
		}
		if !ok {
			printDetail(w, "No day selected")
			return nil
		}
		args = []string{strconv.Itoa(day)}
	}

	days, err := c.selectDays(args, opts)
	if err != nil {
		return err
	}
	if opts.input != "" && len(days) != 1 {
		return errors.New(errors.ErrCodeInvalidInput, "--input needs exactly one day, got %d", len(days))
	}

	reqs := make([]runner.Request, 0, len(days))
	for _, day := range days {
		path := opts.input
		if path == "" {
			path = inputPath(c.config.InputDir, opts.year, day)
		}
		input, err := readInput(stdin, path)
		if opts.all && errors.Is(err, errors.ErrCodeFileNotFound) {
			printWarning(w, "Skipping day %02d: no input at %s", day, path)
			continue
		}
		if err != nil {
			return err
		}
		logger.Debug("read input", "day", day, "path", path, "bytes", len(input))
		reqs = append(reqs, runner.Request{Year: opts.year, Day: day, Input: input, Refresh: opts.refresh})
	}
	if len(reqs) == 0 {
		return errors.New(errors.ErrCodeFileNotFound, "no inputs found under %s", c.config.InputDir)
	}

	r, err := c.newRunner(opts.noCache)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "open cache")
	}
	defer r.Close()

	prog := newProgress(logger)

	if len(reqs) == 1 {
		res, err := r.Run(ctx, reqs[0])
		if err != nil {
			return err
		}
		printResult(w, res)
		return nil
	}

	var spin *Spinner
	if c.interactive {
		spin = newSpinner(ctx, os.Stderr, fmt.Sprintf("Solving %d puzzles...", len(reqs)))
		spin.Start()
	}
	results, err := r.RunAll(ctx, reqs)
	if spin != nil {
		spin.Stop()
	}

	for _, res := range results {
		printResult(w, res)
	}
	prog.done(fmt.Sprintf("Solved %d puzzles", len(results)))
	return err
}

// selectDays returns the days named on the command line, or every
// registered day of the year with --all.
func (c *CLI) selectDays(args []string, opts runOptions) ([]int, error) {
	if opts.all {
		if len(args) > 0 {
			return nil, errors.New(errors.ErrCodeInvalidInput, "--all cannot be combined with day arguments")
		}
		days := c.Registry.Days(opts.year)
		if len(days) == 0 {
			return nil, errors.New(errors.ErrCodeSolverNotFound, "no solvers registered for %d", opts.year)
		}
		return days, nil
	}

	if len(args) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "no days given (pass day numbers or --all)")
	}
	days := make([]int, 0, len(args))
	for _, a := range args {
		day, err := strconv.Atoi(strings.TrimPrefix(strings.ToLower(a), "day"))
		if err != nil {
			return nil, errors.New(errors.ErrCodeInvalidDay, "invalid day %q", a)
		}
		if err := errors.ValidateDay(day); err != nil {
			return nil, err
		}
		days = append(days, day)
	}
	return days, nil
}

// inputPath returns the conventional input location of a puzzle day.
func inputPath(dir string, year, day int) string {
	return filepath.Join(dir, strconv.Itoa(year), fmt.Sprintf("day%02d.txt", day))
}

// readInput loads a puzzle input from path, or from stdin when path is
// "-", and strips trailing line breaks.
func readInput(stdin io.Reader, path string) (string, error) {
	if err := errors.ValidateInputPath(path); err != nil {
		return "", err
	}

	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidInput, err, "read %s", path)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}
