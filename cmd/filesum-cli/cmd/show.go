package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"filesum/internal/adapters/render"
	"filesum/internal/application/commands"
	"filesum/internal/domain"
)

var showFormat string

var showCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Print the totals of a recorded run",
	Long: `Print every file total stored with a recorded run.

Example:
  filesum-cli show 3f2a9c1e-8d4b-4f0e-9a57-1c2d3e4f5a6b`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := render.ParseFormat(showFormat)
		if err != nil {
			return err
		}

		snapshots, err := GetStore()
		if err != nil {
			return err
		}

		run, err := commands.NewShowRunCommand(snapshots, args[0]).Execute(context.Background())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if format == render.FormatText {
			fmt.Fprintf(out, "Run %s of %s at %s (total %s)\n",
				run.ID, run.Root, run.CreatedAt.Local().Format("2006-01-02 15:04:05"), domain.FormatTotal(run.Total))
		}
		return render.Totals(out, run.Totals(), format)
	},
}

func init() {
	showCmd.Flags().StringVarP(&showFormat, "format", "f", "text", "output format (text, json, yaml)")
	rootCmd.AddCommand(showCmd)
}
