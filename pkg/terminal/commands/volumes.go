package commands

import (
	"context"
	"fmt"
	"os"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/de-tools/backup-atlas/pkg/services/discovery"
	"github.com/de-tools/backup-atlas/pkg/terminal/export"
	"github.com/spf13/cobra"
)

type VolumesCmd struct {
	tagKey  string
	outPath string
	region  string
}

func NewVolumesCmd() *cobra.Command {
	vc := &VolumesCmd{}
	cmd := &cobra.Command{
		Use:   "volumes",
		Short: "List EBS volumes attached to EC2 instances with a given tag and write them as CSV",
		RunE:  vc.run,
	}

	cmd.Flags().StringVar(&vc.tagKey, "tag-key", discovery.DefaultTagKey, "EC2 tag key to filter on")
	cmd.Flags().StringVar(&vc.outPath, "output", "ebs_volumes.csv", "Output CSV file path")
	cmd.Flags().StringVarP(&vc.region, "region", "r", "", "AWS region (default profile region if unset)")

	return cmd
}

func (vc *VolumesCmd) run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	explorer, err := newExplorer(ctx, vc.region)
	if err != nil {
		return err
	}

	volumes, err := explorer.VolumesByTag(ctx, vc.tagKey)
	if err != nil {
		return err
	}

	f, err := os.Create(vc.outPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", vc.outPath, err)
	}
	defer f.Close()

	if err := export.WriteVolumesCSV(f, volumes); err != nil {
		return fmt.Errorf("failed to write %s: %w", vc.outPath, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d rows to %s\n", len(volumes), vc.outPath)
	return nil
}

func newExplorer(ctx context.Context, region string) (*discovery.Explorer, error) {
	var optFns []func(*awsconfig.LoadOptions) error
	if region != "" {
		optFns = append(optFns, awsconfig.WithRegion(region))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, optFns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return discovery.NewExplorer(cfg), nil
}
