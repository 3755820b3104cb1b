package root

import (
	"fmt"
	"text/tabwriter"

	"github.com/2beens/aquafit/pkg"

	"github.com/spf13/cobra"
)

func newShowCmd() *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show recent local records and the counter state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			_, store, cleanup, err := openAgent(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			records, err := store.Recent(ctx, days)
			if err != nil {
				return err
			}
			unsynced, err := store.Unsynced(ctx)
			if err != nil {
				return err
			}
			pending := make(map[string]bool, len(unsynced))
			for _, r := range unsynced {
				pending[pkg.FormatDate(r.RecordDate)] = true
			}

			out := cmd.OutOrStdout()
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "DATE\tSTEPS\tGOAL\tKCAL\tMETERS\tSYNCED")
			for _, r := range records {
				date := pkg.FormatDate(r.RecordDate)
				fmt.Fprintf(tw, "%s\t%d\t%d\t%.0f\t%.0f\t%t\n",
					date, r.TotalSteps, r.StepGoal, r.CaloriesBurned, r.TotalDistance, !pending[date])
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			state, err := store.State(ctx)
			if err != nil {
				return err
			}
			last := "never"
			if state.LastUpdateDate != nil {
				last = pkg.FormatDate(*state.LastUpdateDate)
			}
			fmt.Fprintf(out, "\ncounter: raw=%d last update=%s reboot pending=%t\n", state.LastRawCounter, last, state.RebootFlag)
			return nil
		},
	}
	cmd.Flags().IntVar(&days, "days", 7, "number of days to show")

	return cmd
}
