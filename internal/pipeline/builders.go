package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pzkt/cgs-set-builders/internal/models"
	"github.com/pzkt/cgs-set-builders/internal/normalize"
	"github.com/pzkt/cgs-set-builders/internal/resolve"
	"github.com/pzkt/cgs-set-builders/internal/services"
)

type MTGFetcher interface {
	FetchCard(ctx context.Context, key resolve.MTGKey) (*services.ScryfallCard, error)
}

type PokemonFetcher interface {
	FetchCard(ctx context.Context, id string) (*services.PokemonCard, error)
}

type YugiohFetcher interface {
	FetchCard(ctx context.Context, id string) (*services.YugiohCard, error)
}

// MTGBuilder reads deck-list lines. A failed lookup is skipped without retry.
type MTGBuilder struct {
	fetcher MTGFetcher
}

func NewMTGBuilder(fetcher MTGFetcher) *MTGBuilder {
	return &MTGBuilder{fetcher: fetcher}
}

func (b *MTGBuilder) Game() models.Game { return models.GameMTG }

func (b *MTGBuilder) Resolve(record []string) (Lookup, bool, error) {
	if len(record) == 0 {
		return Lookup{}, false, nil
	}
	key, ok := resolve.ParseMTGLine(record[0])
	if !ok {
		return Lookup{}, false, nil
	}

	return Lookup{
		Key: strings.ToUpper(key.SetCode) + " " + key.CollectorNumber,
		Primary: func(ctx context.Context) (normalize.Record, error) {
			card, err := b.fetcher.FetchCard(ctx, key)
			if err != nil {
				return nil, err
			}
			return normalize.MTGRecord{Card: card, Key: key}, nil
		},
	}, true, nil
}

// PokemonBuilder reads list lines whose last two tokens are a ptcgo set code
// and a collector number. A failed lookup is retried with the number padded
// to three digits.
type PokemonBuilder struct {
	sets    *resolve.SetTable
	fetcher PokemonFetcher
}

func NewPokemonBuilder(sets *resolve.SetTable, fetcher PokemonFetcher) *PokemonBuilder {
	return &PokemonBuilder{sets: sets, fetcher: fetcher}
}

func (b *PokemonBuilder) Game() models.Game { return models.GamePokemon }

func (b *PokemonBuilder) Resolve(record []string) (Lookup, bool, error) {
	if len(record) == 0 {
		return Lookup{}, false, nil
	}
	line, ok, err := b.sets.ResolveLine(record[0])
	if err != nil {
		if errors.Is(err, resolve.ErrUnknownSet) {
			return Lookup{}, false, fmt.Errorf("%w: %w", ErrFatal, err)
		}
		return Lookup{}, false, err
	}
	if !ok {
		return Lookup{}, false, nil
	}

	return Lookup{
		Key:       line.Key(),
		Primary:   b.fetch(line.Key()),
		Alternate: b.fetch(line.PaddedKey()),
	}, true, nil
}

func (b *PokemonBuilder) fetch(id string) FetchFunc {
	return func(ctx context.Context) (normalize.Record, error) {
		card, err := b.fetcher.FetchCard(ctx, id)
		if err != nil {
			return nil, err
		}
		return normalize.PokemonRecord{Card: card}, nil
	}
}

// YugiohBuilder reads cube CSV rows. There is no alternate key.
type YugiohBuilder struct {
	fetcher YugiohFetcher
}

func NewYugiohBuilder(fetcher YugiohFetcher) *YugiohBuilder {
	return &YugiohBuilder{fetcher: fetcher}
}

func (b *YugiohBuilder) Game() models.Game { return models.GameYugioh }

func (b *YugiohBuilder) Resolve(record []string) (Lookup, bool, error) {
	row, err := resolve.ParseYugiohRow(record)
	if err != nil {
		return Lookup{}, false, err
	}

	return Lookup{
		Key: row.ID,
		Primary: func(ctx context.Context) (normalize.Record, error) {
			card, err := b.fetcher.FetchCard(ctx, row.ID)
			if err != nil {
				return nil, err
			}
			return normalize.YugiohRecord{Card: card, Row: row}, nil
		},
	}, true, nil
}
