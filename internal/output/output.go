// Package output writes a run's cards to their destination file.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pzkt/cgs-set-builders/internal/database"
	"github.com/pzkt/cgs-set-builders/internal/models"
)

// IndentFor is the JSON indent width used for a game's output file.
func IndentFor(game models.Game) int {
	if game == models.GamePokemon {
		return 2
	}
	return 4
}

// IsCatalogPath reports whether path names a SQLite catalog rather than a
// JSON file.
func IsCatalogPath(path string) bool {
	lower := strings.ToLower(path)
	return strings.HasSuffix(lower, ".db") || strings.HasSuffix(lower, ".sqlite")
}

// Encode renders cards as an indented JSON array. Non-ASCII text and HTML
// characters are written as-is.
func Encode(cards []models.Card, indent int) ([]byte, error) {
	if cards == nil {
		cards = []models.Card{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", strings.Repeat(" ", indent))
	if err := enc.Encode(cards); err != nil {
		return nil, fmt.Errorf("failed to encode cards: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Write stores cards at path, as a SQLite catalog for .db and .sqlite paths
// and as a JSON array otherwise. Either way the destination is replaced in a
// single step.
func Write(path string, game models.Game, cards []models.Card, runID string) error {
	if IsCatalogPath(path) {
		return database.WriteCatalog(path, game, cards, runID)
	}

	data, err := Encode(cards, IndentFor(game))
	if err != nil {
		return err
	}
	return NewFileStore().WriteFile(path, data)
}
