package main

import (
	"fmt"
	"os"

	"github.com/de-tools/backup-atlas/pkg/terminal/commands"
	"github.com/de-tools/backup-atlas/pkg/terminal/export"
	"github.com/spf13/cobra"
)

func main() {
	reporter := export.NewReporter(os.Stdout)

	rootCmd := &cobra.Command{
		Use:   "backup-atlas",
		Short: "Forecast backup storage costs and discover backed-up AWS resources",
	}
	rootCmd.AddCommand(
		commands.NewEstimateCmd(reporter),
		commands.NewVolumesCmd(),
		commands.NewSnapshotsCmd(reporter),
		commands.NewOccupancyCmd(reporter),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
