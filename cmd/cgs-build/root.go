package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pzkt/cgs-set-builders/internal/config"
	"github.com/pzkt/cgs-set-builders/internal/metrics"
	"github.com/pzkt/cgs-set-builders/internal/models"
)

var (
	configPath  string
	metricsFile string
)

var rootCmd = &cobra.Command{
	Use:   "cgs-build",
	Short: "Build unified card data files for Card Game Simulator",
	Long: `cgs-build turns card lists into unified card JSON for Card Game Simulator.
It resolves each list entry, fetches the card from the game's provider and
writes every normalized card to a single output file.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default "+config.DefaultPath()+")")
	rootCmd.PersistentFlags().StringVar(&metricsFile, "metrics-file", "", "write Prometheus metrics to this textfile after the run")

	for _, game := range models.Games() {
		rootCmd.AddCommand(newBuildCmd(game))
	}
	rootCmd.AddCommand(newPokemonCheckCmd())
}

// Execute runs the root command. SIGINT and SIGTERM cancel the run.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if metricsFile != "" {
		cfg.MetricsFile = metricsFile
	}
	return cfg, nil
}

func writeMetrics(cfg *config.Config) {
	if cfg.MetricsFile == "" {
		return
	}
	if err := metrics.WriteTextfile(cfg.MetricsFile); err != nil {
		log.Printf("Warning: %v", err)
	}
}
