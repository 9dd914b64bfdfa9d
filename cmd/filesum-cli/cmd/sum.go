package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"filesum/internal/adapters/render"
	"filesum/internal/application/commands"
	"filesum/internal/domain"
	"filesum/internal/ports"
)

var (
	sumFormat   string
	sumRootOnly bool
)

var sumCmd = &cobra.Command{
	Use:   "sum <file>",
	Short: "Print the totals of a file and every file it references",
	Long: `Resolve a file and print the total of every file visited.

Examples:
  filesum-cli sum budget.txt
  filesum-cli sum budget.txt --root-only
  filesum-cli sum budget.txt --format json
  filesum-cli sum budget.txt --record`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := render.ParseFormat(sumFormat)
		if err != nil {
			return err
		}

		var snapshots ports.SnapshotStore
		if cfg.Record {
			if snapshots, err = GetStore(); err != nil {
				return err
			}
		}

		sumCommand := commands.NewSumCommand(GetResolver(), snapshots, args[0]).WithLogger(logger)
		sumCommand.Record = cfg.Record

		result, err := sumCommand.Execute(context.Background())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if sumRootOnly {
			if format != render.FormatText {
				return render.Totals(out, domain.ResultMap{result.Root: result.Total()}, format)
			}
			fmt.Fprintln(out, domain.FormatTotal(result.Total()))
			return nil
		}

		if err := render.Totals(out, result.Totals, format); err != nil {
			return err
		}
		if result.Run != nil && format == render.FormatText {
			fmt.Fprintf(cmd.ErrOrStderr(), "Recorded run %s\n", result.Run.ID)
		}
		return nil
	},
}

func init() {
	sumCmd.Flags().StringVarP(&sumFormat, "format", "f", "text", "output format (text, json, yaml)")
	sumCmd.Flags().BoolVar(&sumRootOnly, "root-only", false, "print only the root file's total")
	rootCmd.AddCommand(sumCmd)
}
