package commands

import (
	"github.com/de-tools/backup-atlas/pkg/terminal/export"
	"github.com/spf13/cobra"
)

type OccupancyCmd struct {
	region   string
	reporter *export.Reporter
}

func NewOccupancyCmd(reporter *export.Reporter) *cobra.Command {
	oc := &OccupancyCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "occupancy SNAPSHOT_ID...",
		Short: "Report what share of each snapshot's source volume is actually stored",
		Args:  cobra.MinimumNArgs(1),
		RunE:  oc.run,
	}

	cmd.Flags().StringVarP(&oc.region, "region", "r", "", "AWS region (default profile region if unset)")

	return cmd
}

func (oc *OccupancyCmd) run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	explorer, err := newExplorer(ctx, oc.region)
	if err != nil {
		return err
	}

	for _, snapshotID := range args {
		occupancy, err := explorer.SnapshotOccupancy(ctx, snapshotID)
		if err != nil {
			return err
		}
		oc.reporter.PrintOccupancy(occupancy)
	}
	return nil
}
