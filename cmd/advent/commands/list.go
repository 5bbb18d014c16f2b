package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/livp123/advent/internal/puzzles"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered puzzles",
		// Short: 列出已注册的谜题
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list := puzzles.All()
			if year != 0 {
				list = puzzles.Year(year)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTITLE")
			for _, p := range list {
				fmt.Fprintf(w, "%s\t%s\n", p.ID, p.Title)
			}
			return w.Flush()
		},
	}
	cmd.Flags().IntVar(&year, "year", 0, "Only list puzzles of this year")
	return cmd
}
