package main

import (
	"fmt"
	"net"
	"os"

	"github.com/de-tools/backup-atlas/pkg/server"
	"github.com/de-tools/backup-atlas/pkg/services/catalog"
	"github.com/de-tools/backup-atlas/pkg/services/forecast"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var catalogPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for Backup Atlas",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&catalogPath, "catalog", "c", "",
		"Path to a catalog YAML file (built-in schedules and prices if unset)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cat := catalog.Default()
	if catalogPath != "" {
		loaded, err := catalog.Load(catalogPath)
		if err != nil {
			return fmt.Errorf("failed to load catalog from %s: %w", catalogPath, err)
		}
		cat = loaded
		logger.Info().Msgf("Catalog found at `%s` successfully loaded.", catalogPath)
	}

	logger.Info().Msg("Active backup schedules:")
	for _, s := range cat.Schedules() {
		logger.Info().Msgf("Name: `%s`, Interval: `%s`", s.Name, s.Interval)
	}

	estimator := forecast.NewEstimator(cat)

	host := os.Getenv("SERVER_HOST")
	port := os.Getenv("SERVER_PORT")

	if host == "" || port == "" {
		logger.Error().Msgf("Missing server configuration from .env file")
		os.Exit(1)
	}

	api := server.NewWebAPI(server.Config{
		Addr: net.JoinHostPort(host, port),
		Dependencies: server.Dependencies{
			Estimator: estimator,
			Catalog:   cat,
			Logger:    logger,
		},
	})

	return api.Start()
}
