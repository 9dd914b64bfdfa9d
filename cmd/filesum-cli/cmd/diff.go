package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"filesum/internal/adapters/render"
	"filesum/internal/application/commands"
)

var diffCmd = &cobra.Command{
	Use:   "diff <file>",
	Short: "Compare a file's totals with its latest recorded run",
	Long: `Resolve a file and show which totals changed since it was last recorded.

Example:
  filesum-cli diff budget.txt`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		snapshots, err := GetStore()
		if err != nil {
			return err
		}

		result, err := commands.NewDiffRunsCommand(GetResolver(), snapshots, args[0]).Execute(context.Background())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if result.Previous == nil {
			fmt.Fprintf(out, "No recorded run for %s\n", result.Root)
		} else {
			fmt.Fprintf(out, "Compared with run %s\n", result.Previous.ID)
		}
		return render.Changes(out, result.Changes)
	},
}

func init() {
	rootCmd.AddCommand(diffCmd)
}
