package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"filesum/internal/adapters/render"
	"filesum/internal/application/commands"
)

var treeCmd = &cobra.Command{
	Use:   "tree <file>",
	Short: "Display how a file's total is built",
	Long: `Display the reference tree of a file with the total of each node.

Example:
  filesum-cli tree budget.txt`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := commands.NewTreeCommand(GetResolver(), args[0]).Execute(context.Background())
		if err != nil {
			return err
		}
		return render.Tree(cmd.OutOrStdout(), root)
	},
}

func init() {
	rootCmd.AddCommand(treeCmd)
}
