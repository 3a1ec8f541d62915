package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/pzkt/cgs-set-builders/internal/config"
	"github.com/pzkt/cgs-set-builders/internal/models"
	"github.com/pzkt/cgs-set-builders/internal/output"
	"github.com/pzkt/cgs-set-builders/internal/pipeline"
	"github.com/pzkt/cgs-set-builders/internal/resolve"
	"github.com/pzkt/cgs-set-builders/internal/services"
)

func newBuildCmd(game models.Game) *cobra.Command {
	var outputPath, provider string

	cmd := &cobra.Command{
		Use:   string(game) + " [input]",
		Short: fmt.Sprintf("Build the %s card file", game.Label()),
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if provider != "" {
				cfg.Pokemon.Provider = provider
				if err := cfg.Validate(); err != nil {
					return err
				}
			}

			paths := cfg.Game(game)
			inputPath := paths.Input
			if len(args) == 1 {
				inputPath = args[0]
			}
			if outputPath == "" {
				outputPath = cfg.OutputPath(paths.Output)
			}

			return runBuild(cmd.Context(), cfg, game, inputPath, outputPath, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file; .db or .sqlite writes a SQLite catalog")
	if game == models.GamePokemon {
		cmd.Flags().StringVar(&provider, "provider", "", "card provider: tcgdex or pokemontcg")
	}
	return cmd
}

func runBuild(ctx context.Context, cfg *config.Config, game models.Game, inputPath, outputPath string, stdout io.Writer) error {
	defer writeMetrics(cfg)

	runID := uuid.New().String()
	log.Printf("Starting %s build (run %s): %s -> %s", game.Label(), runID, inputPath, outputPath)

	builder, err := newBuilder(cfg, game)
	if err != nil {
		return err
	}

	f, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()

	var in pipeline.Input
	if game == models.GameYugioh {
		in = pipeline.NewCSVInput(f)
	} else {
		in = pipeline.NewLineInput(f)
	}

	console := pipeline.NewConsole(stdout)
	result, err := pipeline.Run(ctx, builder, in, console)
	if err != nil {
		return fmt.Errorf("%s build failed after %d records: %w", game.Label(), result.Records, err)
	}

	if err := output.Write(outputPath, game, result.Cards, runID); err != nil {
		return err
	}

	console.Summary(game, result, outputPath)
	return nil
}

func newBuilder(cfg *config.Config, game models.Game) (pipeline.Builder, error) {
	switch game {
	case models.GameMTG:
		return pipeline.NewMTGBuilder(
			services.NewScryfallService(cfg.RequestsPerSecond).WithBaseURL(cfg.Providers.Scryfall),
		), nil

	case models.GamePokemon:
		sets, err := resolve.LoadSetTable(cfg.Pokemon.SetInfo)
		if err != nil {
			return nil, err
		}
		log.Printf("Loaded %d Pokemon set codes from %s", sets.Len(), cfg.Pokemon.SetInfo)
		return pipeline.NewPokemonBuilder(sets, newPokemonFetcher(cfg)), nil

	case models.GameYugioh:
		return pipeline.NewYugiohBuilder(
			services.NewYGOPRODeckService(cfg.RequestsPerSecond).WithBaseURL(cfg.Providers.YGOPRODeck),
		), nil
	}
	return nil, fmt.Errorf("unsupported game %q", game)
}

func newPokemonFetcher(cfg *config.Config) pipeline.PokemonFetcher {
	if cfg.Pokemon.Provider == config.ProviderPokemonTCG {
		return services.NewPokemonTCGService(cfg.Pokemon.APIKey, cfg.RequestsPerSecond).
			WithBaseURL(cfg.Providers.PokemonTCG)
	}
	return services.NewTCGdexService(cfg.RequestsPerSecond).WithBaseURL(cfg.Providers.TCGdex)
}
