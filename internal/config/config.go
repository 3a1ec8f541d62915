// Package config loads build settings from an optional TOML file, a .env file
// and environment variables, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/pzkt/cgs-set-builders/internal/models"
)

const (
	ProviderTCGdex     = "tcgdex"
	ProviderPokemonTCG = "pokemontcg"
)

var (
	ErrUnknownProvider = errors.New("unknown pokemon provider")
	ErrInvalidRate     = errors.New("requests per second must not be negative")
	ErrMissingPath     = errors.New("path must not be empty")
)

// Config holds every setting of a build run.
type Config struct {
	// OutputDir is prepended to relative output paths.
	OutputDir         string  `toml:"output_dir"`
	RequestsPerSecond float64 `toml:"requests_per_second"`
	MetricsFile       string  `toml:"metrics_file"`

	MTG     GameConfig    `toml:"mtg"`
	Pokemon PokemonConfig `toml:"pokemon"`
	Yugioh  GameConfig    `toml:"yugioh"`

	Providers ProviderURLs `toml:"providers"`
}

// ProviderURLs overrides provider API roots, e.g. for a local mirror. Empty
// fields use the public APIs.
type ProviderURLs struct {
	Scryfall   string `toml:"scryfall"`
	TCGdex     string `toml:"tcgdex"`
	PokemonTCG string `toml:"pokemontcg"`
	YGOPRODeck string `toml:"ygoprodeck"`
}

type GameConfig struct {
	Input  string `toml:"input"`
	Output string `toml:"output"`
}

type PokemonConfig struct {
	GameConfig
	SetInfo  string `toml:"set_info"`
	Catalog  string `toml:"catalog"`
	Provider string `toml:"provider"`
	APIKey   string `toml:"api_key"`
}

// Default returns the settings used when nothing is configured. Paths are
// relative to the working directory.
func Default() *Config {
	return &Config{
		RequestsPerSecond: 10,
		MTG: GameConfig{
			Input:  "mtg_list.txt",
			Output: "mtg_cards.json",
		},
		Pokemon: PokemonConfig{
			GameConfig: GameConfig{
				Input:  filepath.Join("data", "pokemonSet.txt"),
				Output: "pokemon.json",
			},
			SetInfo:  filepath.Join("data", "pokemonSetInfo.json"),
			Catalog:  filepath.Join("data", "pokemonTCG.csv"),
			Provider: ProviderTCGdex,
		},
		Yugioh: GameConfig{
			Input:  "yugioh-cube.csv",
			Output: "yugioh_cards.json",
		},
	}
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or its default.
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// DefaultPath is where the config file is looked for when none is given.
func DefaultPath() string {
	return filepath.Join(GetXDGConfigHome(), "cgs-set-builders", "config.toml")
}

// Load builds the configuration. An empty path falls back to DefaultPath,
// which may be absent; an explicit path must exist.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Warning: failed to load .env: %v", err)
	}

	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("error decoding config file %s: %w", path, err)
		}
	} else if explicit {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if dir := os.Getenv("CGS_OUTPUT_DIR"); dir != "" {
		c.OutputDir = dir
	}
	if key := os.Getenv("POKEMONTCG_API_KEY"); key != "" {
		c.Pokemon.APIKey = key
	}
	if provider := os.Getenv("CGS_POKEMON_PROVIDER"); provider != "" {
		c.Pokemon.Provider = provider
	}
	if file := os.Getenv("CGS_METRICS_FILE"); file != "" {
		c.MetricsFile = file
	}
	if rpsStr := os.Getenv("CGS_REQUESTS_PER_SECOND"); rpsStr != "" {
		rps, err := strconv.ParseFloat(rpsStr, 64)
		if err != nil {
			return fmt.Errorf("invalid CGS_REQUESTS_PER_SECOND %q: %w", rpsStr, err)
		}
		c.RequestsPerSecond = rps
	}
	return nil
}

// Validate reports the first unusable setting.
func (c *Config) Validate() error {
	if c.RequestsPerSecond < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidRate, c.RequestsPerSecond)
	}
	switch c.Pokemon.Provider {
	case ProviderTCGdex, ProviderPokemonTCG:
	default:
		return fmt.Errorf("%w %q", ErrUnknownProvider, c.Pokemon.Provider)
	}

	for _, game := range models.Games() {
		g := c.Game(game)
		if g.Input == "" {
			return fmt.Errorf("%s input: %w", game, ErrMissingPath)
		}
		if g.Output == "" {
			return fmt.Errorf("%s output: %w", game, ErrMissingPath)
		}
	}
	if c.Pokemon.SetInfo == "" {
		return fmt.Errorf("pokemon set_info: %w", ErrMissingPath)
	}
	return nil
}

// Game returns the input and output paths configured for game.
func (c *Config) Game(game models.Game) GameConfig {
	switch game {
	case models.GameMTG:
		return c.MTG
	case models.GamePokemon:
		return c.Pokemon.GameConfig
	case models.GameYugioh:
		return c.Yugioh
	}
	return GameConfig{}
}

// OutputPath resolves path against OutputDir unless it is absolute.
func (c *Config) OutputPath(path string) string {
	if c.OutputDir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.OutputDir, path)
}
