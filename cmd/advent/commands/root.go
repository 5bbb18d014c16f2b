package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/livp123/advent/internal/config"
	"github.com/livp123/advent/internal/utils/fmtutil"
	"github.com/livp123/advent/internal/utils/logger"
	"github.com/spf13/cobra"
)

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	configPath string
	noColor    bool
	manager    *config.ConfigManager
	palette    fmtutil.Palette
}

// config returns the loaded configuration, or the defaults before PersistentPreRunE ran.
func (o *rootOptions) config() *config.Config {
	if o.manager == nil {
		return config.DefaultConfig()
	}
	return o.manager.GetConfig()
}

// NewRootCmd builds the advent command tree.
// NewRootCmd 构建 advent 命令树。
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "advent",
		Short: "Advent of Code solutions on a lazy string splitter",
		// Short: 基于惰性字符串切分器的 Advent of Code 题解
		Long: `advent solves Advent of Code puzzles with a lazy, pattern-driven
string splitter and exposes the splitter itself through the split command.
advent 使用惰性、基于模式的字符串切分器求解 Advent of Code 谜题，
并通过 split 命令直接提供切分器。`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load configuration to get logging settings
			// 加载配置以获取日志设置
			opts.manager = config.NewConfigManager(opts.configPath)
			if err := opts.manager.LoadConfig(); err != nil {
				logger.Init(logger.LoggingConfig{Level: "info"})
				return err
			}
			logger.Init(opts.manager.GetConfig().Logging)

			opts.palette = fmtutil.Palette{Color: !opts.noColor && isTerminal(cmd.OutOrStdout())}

			// Inject logger into context
			// 将 Logger 注入 Context
			ctx := logger.WithContext(cmd.Context(), logger.Get(cmd.Context()))
			cmd.SetContext(ctx)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
	}

	// Config file path
	// 配置文件路径
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", fmt.Sprintf("Path to configuration file (default: %s)", config.DefaultConfigPath))
	root.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "Disable coloured output")

	root.AddCommand(newSolveCmd(opts))
	root.AddCommand(newListCmd())
	root.AddCommand(newSplitCmd(opts))
	root.AddCommand(newVersionCmd())
	root.AddCommand(newConfigCmd(opts))

	// Replace default completion command with custom one (no powershell)
	// 用自定义补全命令替换默认命令（不含 powershell）
	root.CompletionOptions.DisableDefaultCmd = true
	root.AddCommand(newCompletionCmd(root))
	return root
}

// isTerminal reports whether w is a character device such as a tty.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fi, err := f.Stat()
	return err == nil && fi.Mode()&os.ModeCharDevice != 0
}

// Execute runs the root command and exits non-zero on failure.
// Cobra is silenced so the error is reported exactly once, here.
func Execute() {
	os.Exit(run(NewRootCmd(), os.Stderr))
}

// run executes root and reports a failure on stderr, returning the exit code.
func run(root *cobra.Command, stderr io.Writer) int {
	if err := root.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
