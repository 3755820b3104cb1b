package root

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newTickCmd() *cobra.Command {
	var push bool

	cmd := &cobra.Command{
		Use:   "tick <raw-counter>",
		Short: "Fold a raw step counter reading into today's record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("raw counter must be an integer: %w", err)
			}
			if push {
				if err := requireServer(); err != nil {
					return err
				}
			}

			ctx := cmd.Context()
			a, _, cleanup, err := openAgent(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := a.Tick(ctx, raw)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d steps (%s)\n", res.Record.RecordDate.Format("2006-01-02"), res.Record.TotalSteps, res.Case)

			if !push {
				return nil
			}
			pushed, err := a.Sync(ctx)
			fmt.Fprintf(cmd.OutOrStdout(), "pushed %d record(s)\n", pushed)
			return err
		},
	}
	cmd.Flags().BoolVar(&push, "push", false, "push unsynced records after the tick")

	return cmd
}

func newRebootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reboot",
		Short: "Record a device reboot, the counter restarts from zero",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, _, cleanup, err := openAgent(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if _, err := a.Reboot(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "reboot recorded")
			return nil
		},
	}
}

func newPushCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "push",
		Short: "Push unsynced records to the backend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireServer(); err != nil {
				return err
			}

			ctx := cmd.Context()
			a, _, cleanup, err := openAgent(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			pushed, err := a.Sync(ctx)
			fmt.Fprintf(cmd.OutOrStdout(), "pushed %d record(s)\n", pushed)
			return err
		},
	}
}
