package commands

import (
	"fmt"
	"os"

	"github.com/livp123/advent/internal/config"
	"github.com/livp123/advent/internal/utils/logger"
	"github.com/livp123/advent/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newConfigCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the advent configuration file",
		// Short: 管理 advent 配置文件
	}
	cmd.AddCommand(newConfigInitCmd(opts))
	cmd.AddCommand(newConfigShowCmd(opts))
	return cmd
}

// newConfigInitCmd writes the default configuration to --config (or advent.yaml).
// newConfigInitCmd 将默认配置写入 --config 指定的文件（默认 advent.yaml）。
func newConfigInitCmd(opts *rootOptions) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := opts.manager.Path()
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}

			opts.manager.UpdateConfig(config.DefaultConfig())
			if err := opts.manager.SaveConfig(); err != nil {
				return err
			}
			logger.Get(cmd.Context()).Infof("[CONFIG] Wrote default configuration to %s", path)
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")
	return cmd
}

// newConfigShowCmd prints the effective configuration as YAML.
func newConfigShowCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			// A Config holds only plain fields, so marshalling cannot fail.
			data := errors.Must(yaml.Marshal(opts.config()))
			fmt.Fprint(cmd.OutOrStdout(), string(data))
		},
	}
}
