// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/passgen/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent generation runs",
	Long: `History lists the most recent generation runs from the run ledger in
<data_dir>/history.db: mode, lines requested and written, duration, and
whether the run was interrupted. Use --json or --yaml for machine output.`,
	RunE: runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")
	asJSON, _ := cmd.Flags().GetBool("json")
	asYAML, _ := cmd.Flags().GetBool("yaml")
	if asJSON && asYAML {
		return fmt.Errorf("--json and --yaml are mutually exclusive")
	}

	store, err := history.Open(appConfig.HistoryPath())
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := cmd.Context()
	records, err := store.Recent(ctx, limit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch {
	case asJSON:
		return history.WriteJSON(out, records)
	case asYAML:
		return history.WriteYAML(out, records)
	}

	if len(records) == 0 {
		fmt.Fprintln(out, "No runs recorded.")
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "STARTED\tMODE\tWRITTEN\tREQUESTED\tDURATION\tSTATUS\tOUTPUT")
	for _, r := range records {
		status := "done"
		if r.Cancelled {
			status = "interrupted"
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\t%s\t%s\n",
			r.StartedAt.Local().Format("2006-01-02 15:04:05"), r.Mode, r.Written, r.Requested,
			r.Duration().Round(time.Millisecond), status, r.OutputPath)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	totals, err := store.Totals(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\n%d runs, %d candidates written\n", totals.Runs, totals.Written)
	return nil
}

func init() {
	historyCmd.Flags().Int("limit", history.DefaultLimit, "maximum runs to show")
	historyCmd.Flags().Bool("json", false, "output runs as JSON")
	historyCmd.Flags().Bool("yaml", false, "output runs as YAML")

	rootCmd.AddCommand(historyCmd)
}
