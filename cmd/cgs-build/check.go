package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pzkt/cgs-set-builders/internal/pipeline"
	"github.com/pzkt/cgs-set-builders/internal/resolve"
)

func newPokemonCheckCmd() *cobra.Command {
	var catalogPath string

	cmd := &cobra.Command{
		Use:   "pokemon-check [input]",
		Short: "Check a Pokemon list against a local pokemontcg.io CSV dump",
		Long: `pokemon-check resolves every line of a Pokemon list and looks the card up in
a local CSV dump instead of calling a provider. Found cards print their name
and image; missing cards and unknown set codes print an ERROR line.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			inputPath := cfg.Pokemon.Input
			if len(args) == 1 {
				inputPath = args[0]
			}
			if catalogPath == "" {
				catalogPath = cfg.Pokemon.Catalog
			}

			sets, err := resolve.LoadSetTable(cfg.Pokemon.SetInfo)
			if err != nil {
				return err
			}

			catalogFile, err := os.Open(catalogPath)
			if err != nil {
				return fmt.Errorf("failed to open catalog: %w", err)
			}
			defer catalogFile.Close()

			catalog, err := pipeline.LoadPokemonCatalog(catalogFile)
			if err != nil {
				return err
			}

			f, err := os.Open(inputPath)
			if err != nil {
				return fmt.Errorf("failed to open input: %w", err)
			}
			defer f.Close()

			result, err := pipeline.CheckPokemonList(sets, catalog, pipeline.NewLineInput(f), os.Stdout)
			if err != nil {
				return err
			}

			fmt.Printf("Checked %d cards: %d found, %d missing, %d unknown set codes.\n",
				result.Checked, result.Found, result.Missing, result.UnknownSet)
			return nil
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "pokemontcg.io CSV dump (default from config)")
	return cmd
}
