package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"filesum/internal/adapters/render"
	"filesum/internal/application/commands"
	"filesum/internal/domain"
)

var (
	historyRoot  string
	historyLimit int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded runs, newest first",
	Long: `List the runs recorded with --record.

Examples:
  filesum-cli history
  filesum-cli history --root budget.txt --limit 5`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		snapshots, err := GetStore()
		if err != nil {
			return err
		}

		root := historyRoot
		if root != "" {
			root = domain.NormalizePath(root)
		}

		runs, err := commands.NewHistoryCommand(snapshots, root, historyLimit).Execute(context.Background())
		if err != nil {
			return err
		}
		return render.Runs(cmd.OutOrStdout(), runs)
	},
}

func init() {
	historyCmd.Flags().StringVar(&historyRoot, "root", "", "only list runs of this root file")
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 0, "maximum number of runs (0 for all)")
	rootCmd.AddCommand(historyCmd)
}
