package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/livp123/advent/internal/config"
	"github.com/livp123/advent/internal/metrics"
	"github.com/livp123/advent/internal/stream"
	"github.com/livp123/advent/internal/utils/fmtutil"
	"github.com/livp123/advent/internal/utils/logger"
	"github.com/livp123/advent/pkg/errors"
	"github.com/spf13/cobra"
)

type splitOptions struct {
	sep        string
	literal    string
	whitespace bool
	trim       bool
	count      bool
	follow     bool
}

// tokenizer picks the split from the flags, falling back to the stream config.
func (o *splitOptions) tokenizer(cfg config.StreamConfig) (*stream.Tokenizer, error) {
	set := 0
	for _, on := range []bool{o.sep != "", o.literal != "", o.whitespace} {
		if on {
			set++
		}
	}
	if set > 1 {
		return nil, errors.NewPatternError("--sep, --literal and --whitespace are mutually exclusive")
	}

	cfg.Trim = o.trim || cfg.Trim
	switch {
	case o.sep != "":
		cfg.Kind, cfg.Pattern = config.SplitByte, o.sep
	case o.literal != "":
		cfg.Kind, cfg.Pattern = config.SplitLiteral, o.literal
	case o.whitespace:
		cfg.Kind, cfg.Pattern = config.SplitWhitespace, ""
	}
	return stream.FromConfig(cfg)
}

func newSplitCmd(root *rootOptions) *cobra.Command {
	opts := &splitOptions{}

	cmd := &cobra.Command{
		Use:   "split <file>",
		Short: "Split every line of a file and print the tokens",
		// Short: 切分文件的每一行并输出词元
		Long: `Split every line of a file and print the tokens, one quoted token per line.
With --count only the number of tokens is printed. With --follow the file is
tailed and new lines are split as they are appended.
切分文件的每一行并输出词元，每行一个带引号的词元。

Examples:
  advent split inputs/2024/7.txt --literal ": "
  advent split data.csv --sep , --count
  advent split /var/log/app.log --whitespace --follow`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := root.config()
			tok, err := opts.tokenizer(cfg.Stream)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if opts.follow {
				var stop context.CancelFunc
				ctx, stop = signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
				defer stop()
			}

			f, err := stream.Open(ctx, args[0], opts.follow)
			if err != nil {
				return err
			}
			defer f.Stop()

			var collector *metrics.Collector
			if cfg.Metrics.Enabled {
				collector = metrics.NewCollector()
			}

			out := cmd.OutOrStdout()
			total := 0
			for line := range f.Lines {
				var n int
				if opts.count {
					n = tok.Count(line.Text)
				} else {
					for t := range tok.Tokens(line.Text) {
						n++
						fmt.Fprintf(out, "%q\n", t)
					}
				}
				total += n
				if opts.count && opts.follow {
					fmt.Fprintln(out, n)
				}
				if collector != nil {
					collector.StreamTokens.Add(float64(n))
				}
			}
			if opts.count && !opts.follow {
				fmt.Fprintln(out, total)
			}
			logger.Get(ctx).Debugf("[SPLIT] %s: %s tokens", args[0], fmtutil.FormatNumberWithComma(int64(total)))

			if collector != nil {
				if err := collector.WriteTextfile(cfg.Metrics.Path); err != nil {
					logger.Get(ctx).Warnf("[WARN]  Failed to write metrics to %s: %v", cfg.Metrics.Path, err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.sep, "sep", "s", "", "Split on a single separator byte")
	cmd.Flags().StringVarP(&opts.literal, "literal", "l", "", "Split on a literal string")
	cmd.Flags().BoolVar(&opts.whitespace, "whitespace", false, "Split on runs of whitespace")
	cmd.Flags().BoolVar(&opts.trim, "trim", false, "Trim whitespace from each line before splitting")
	cmd.Flags().BoolVar(&opts.count, "count", false, "Print token counts instead of tokens")
	cmd.Flags().BoolVarP(&opts.follow, "follow", "f", false, "Keep reading as the file grows")
	return cmd
}
