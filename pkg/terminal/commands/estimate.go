package commands

import (
	"fmt"

	"github.com/de-tools/backup-atlas/pkg/adapters"
	"github.com/de-tools/backup-atlas/pkg/models/domain"
	"github.com/de-tools/backup-atlas/pkg/services/catalog"
	"github.com/de-tools/backup-atlas/pkg/services/forecast"
	"github.com/de-tools/backup-atlas/pkg/terminal/export"
	"github.com/spf13/cobra"
)

type EstimateCmd struct {
	resourceType string
	sizeGB       float64
	job          string
	catalogPath  string
	output       string
	noCache      bool
	reporter     *export.Reporter
}

func NewEstimateCmd(reporter *export.Reporter) *cobra.Command {
	ec := &EstimateCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Project the next 12 months of backup storage cost for one resource",
		RunE:  ec.run,
	}

	cmd.Flags().StringVar(&ec.resourceType, "type", "", "Resource type (e.g. EBS, EFS, RDS)")
	cmd.Flags().Float64Var(&ec.sizeGB, "size", 0, "Resource size in GB")
	cmd.Flags().StringVar(&ec.job, "job", "", "Restrict to a single backup schedule by name")
	cmd.Flags().StringVar(&ec.catalogPath, "catalog", "", "Path to a catalog YAML file (built-in catalog if unset)")
	cmd.Flags().StringVarP(&ec.output, "output", "o", "table", "Output format (table or json)")
	cmd.Flags().BoolVar(&ec.noCache, "no-cache", false, "Disable the month-length cost cache")

	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("size")

	return cmd
}

func (ec *EstimateCmd) run(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog(ec.catalogPath)
	if err != nil {
		return err
	}

	var opts []forecast.Option
	if ec.noCache {
		opts = append(opts, forecast.WithoutCache())
	}
	estimator := forecast.NewEstimator(cat, opts...)

	result, err := estimator.Estimate(domain.Resource{
		Type:   ec.resourceType,
		SizeGB: ec.sizeGB,
		Job:    ec.job,
	})
	if err != nil {
		return err
	}

	switch ec.output {
	case "json":
		return ec.reporter.PrintJSON(adapters.MapForecastDomainToApi(result))
	case "table":
		ec.reporter.PrintForecast(result)
		return nil
	default:
		return fmt.Errorf("unsupported output format %q", ec.output)
	}
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default(), nil
	}
	cat, err := catalog.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return cat, nil
}
