package commands

import (
	"fmt"
	"io"

	"github.com/livp123/advent/internal/expect"
	"github.com/livp123/advent/internal/metrics"
	"github.com/livp123/advent/internal/puzzles"
	"github.com/livp123/advent/internal/runner"
	"github.com/livp123/advent/internal/utils/fmtutil"
	"github.com/livp123/advent/internal/utils/logger"
	"github.com/livp123/advent/pkg/errors"
	"github.com/spf13/cobra"
)

func newSolveCmd(opts *rootOptions) *cobra.Command {
	var (
		all     bool
		year    int
		workers int
	)

	cmd := &cobra.Command{
		Use:   "solve [year/day ...]",
		Short: "Solve puzzles and print their answers",
		// Short: 求解谜题并输出答案
		Long: `Solve puzzles and print their answers.
Without arguments every registered puzzle is solved.
求解谜题并输出答案；不带参数时求解所有已注册的谜题。

Examples:
  advent solve 2024/1 2024/3
  advent solve --year 2024
  advent solve --all`,
		RunE: func(cmd *cobra.Command, args []string) error {
			selected, err := selectPuzzles(args, all, year)
			if err != nil {
				return err
			}

			cfg := opts.config()
			if cmd.Flags().Changed("workers") {
				cfg.Workers = workers
			}

			engine, err := expect.NewEngine(cfg.Expectations)
			if err != nil {
				return err
			}
			var collector *metrics.Collector
			if cfg.Metrics.Enabled {
				collector = metrics.NewCollector()
			}

			r := runner.New(runner.Options{
				InputsDir: cfg.InputsDir,
				Workers:   cfg.Workers,
				Expect:    engine,
				Metrics:   collector,
			})
			results, err := r.Run(cmd.Context(), selected)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i := range results {
				printResult(out, opts.palette, &results[i])
			}

			if collector != nil {
				if err := collector.WriteTextfile(cfg.Metrics.Path); err != nil {
					logger.Get(cmd.Context()).Warnf("[WARN]  Failed to write metrics to %s: %v", cfg.Metrics.Path, err)
				}
			}
			return runner.Failed(results)
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Solve every registered puzzle")
	cmd.Flags().IntVar(&year, "year", 0, "Solve every puzzle of this year")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "Number of puzzles solved concurrently (overrides config)")
	return cmd
}

// selectPuzzles resolves the puzzles named on the command line.
// selectPuzzles 解析命令行指定的谜题。
func selectPuzzles(args []string, all bool, year int) ([]puzzles.Puzzle, error) {
	switch {
	case all || (len(args) == 0 && year == 0):
		return puzzles.All(), nil
	case year != 0:
		list := puzzles.Year(year)
		if len(list) == 0 {
			return nil, errors.NewPuzzleError(fmt.Sprintf("%d/*", year))
		}
		return list, nil
	}

	selected := make([]puzzles.Puzzle, 0, len(args))
	for _, arg := range args {
		id, err := puzzles.ParseID(arg)
		if err != nil {
			return nil, err
		}
		p, err := puzzles.Get(id)
		if err != nil {
			return nil, err
		}
		selected = append(selected, p)
	}
	return selected, nil
}

func printResult(w io.Writer, pal fmtutil.Palette, res *runner.Result) {
	fmt.Fprintf(w, "%s %s\n", pal.Emphasis(res.Puzzle.ID), res.Puzzle.Title)
	if res.LoadErr != nil {
		fmt.Fprintf(w, "  %s\n", pal.Colored(fmtutil.Red, res.LoadErr))
		return
	}

	for i, part := range res.Parts {
		if part.Err != nil {
			fmt.Fprintf(w, "result of puzzle%d is: %s\n", i+1, pal.Colored(fmtutil.Red, part.Err))
			continue
		}
		fmt.Fprintf(w, "result of puzzle%d is: %d (%s)\n", i+1, part.Answer, fmtutil.FormatElapsed(part.Elapsed))
	}

	for _, e := range res.Expectations {
		status := pal.Colored(fmtutil.Green, "PASS")
		if !e.Passed {
			status = pal.Colored(fmtutil.Red, "FAIL")
		}
		fmt.Fprintf(w, "  expect %s: %s\n", e.Rule.Source, status)
	}
}
