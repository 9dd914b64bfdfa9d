package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"filesum/internal/application/commands"
)

var forgetCmd = &cobra.Command{
	Use:   "forget <run-id>",
	Short: "Delete a recorded run",
	Long: `Delete a recorded run and its totals.

Example:
  filesum-cli forget 3f2a9c1e-8d4b-4f0e-9a57-1c2d3e4f5a6b`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		snapshots, err := GetStore()
		if err != nil {
			return err
		}

		if err := commands.NewForgetRunCommand(snapshots, args[0]).Execute(context.Background()); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Forgot run %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(forgetCmd)
}
