package commands

import (
	"fmt"

	"github.com/de-tools/backup-atlas/pkg/adapters"
	"github.com/de-tools/backup-atlas/pkg/models/api"
	"github.com/de-tools/backup-atlas/pkg/models/domain"
	"github.com/de-tools/backup-atlas/pkg/terminal/export"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

type SnapshotsCmd struct {
	region   string
	output   string
	reporter *export.Reporter
}

func NewSnapshotsCmd(reporter *export.Reporter) *cobra.Command {
	sc := &SnapshotsCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "snapshots VOLUME_ID",
		Short: "List all snapshots of an EBS volume",
		Args:  cobra.ExactArgs(1),
		RunE:  sc.run,
	}

	cmd.Flags().StringVarP(&sc.region, "region", "r", "", "AWS region (default profile region if unset)")
	cmd.Flags().StringVarP(&sc.output, "output", "o", "table", "Output format (table or json)")

	return cmd
}

func (sc *SnapshotsCmd) run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	explorer, err := newExplorer(ctx, sc.region)
	if err != nil {
		return err
	}

	snapshots, err := explorer.VolumeSnapshots(ctx, args[0])
	if err != nil {
		return err
	}

	switch sc.output {
	case "json":
		return sc.reporter.PrintJSON(lo.Map(snapshots, func(s domain.VolumeSnapshot, _ int) api.VolumeSnapshot {
			return adapters.MapSnapshotDomainToApi(s)
		}))
	case "table":
		sc.reporter.PrintSnapshots(snapshots)
		return nil
	default:
		return fmt.Errorf("unsupported output format %q", sc.output)
	}
}
