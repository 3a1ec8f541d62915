// Package normalize maps raw provider records onto the unified card schema.
// Each game registers one Normalizer; dispatch is keyed by the record's game.
package normalize

import (
	"errors"
	"fmt"

	"github.com/pzkt/cgs-set-builders/internal/models"
)

var (
	ErrUnsupportedGame = errors.New("no normalizer for game")
	ErrRecordMismatch  = errors.New("record does not belong to this normalizer")
	ErrEmptyRecord     = errors.New("record has no raw card")
)

// Record is a raw provider record plus whatever input context its game needs.
type Record interface {
	Game() models.Game
}

// Normalizer converts one game's records into unified cards.
type Normalizer interface {
	Normalize(rec Record) (models.Card, error)
}

var normalizers = map[models.Game]Normalizer{
	models.GameMTG:     mtgNormalizer{},
	models.GamePokemon: pokemonNormalizer{},
	models.GameYugioh:  yugiohNormalizer{},
}

// For returns the normalizer registered for game.
func For(game models.Game) (Normalizer, error) {
	n, ok := normalizers[game]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnsupportedGame, game)
	}
	return n, nil
}

// Normalize dispatches rec to its game's normalizer.
func Normalize(rec Record) (models.Card, error) {
	n, err := For(rec.Game())
	if err != nil {
		return models.Card{}, err
	}
	return n.Normalize(rec)
}

func mismatch(want models.Game, rec Record) error {
	return fmt.Errorf("%w: %s normalizer got %T", ErrRecordMismatch, want, rec)
}

// emptyIfNil keeps slices serializing as [] rather than null.
func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
