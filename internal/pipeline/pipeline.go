// Package pipeline drives a card export run: resolve each input record, fetch
// its raw card, retry once with an alternate key where the game has one,
// normalize, and collect the results in input order.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/pzkt/cgs-set-builders/internal/metrics"
	"github.com/pzkt/cgs-set-builders/internal/models"
	"github.com/pzkt/cgs-set-builders/internal/normalize"
)

// ErrFatal wraps resolver errors that abort the whole run.
var ErrFatal = errors.New("run aborted")

// FetchFunc performs one provider lookup.
type FetchFunc func(ctx context.Context) (normalize.Record, error)

// Lookup is a resolved input record. Alternate is nil for games without a
// retry key.
type Lookup struct {
	Key       string
	Primary   FetchFunc
	Alternate FetchFunc
}

// Builder is the game-specific half of a run.
type Builder interface {
	Game() models.Game
	// Resolve maps one input record to a lookup. ok is false for records that
	// are not cards. Errors wrapping ErrFatal stop the run; any other error
	// skips the record.
	Resolve(record []string) (lookup Lookup, ok bool, err error)
}

// Result is the outcome of a completed run.
type Result struct {
	Cards    []models.Card
	Records  int // input records read
	Ignored  int // records that were not cards
	Exported int
	Skipped  int
}

// Run processes every record of in sequentially. A per-record failure is
// logged and skipped; only fatal resolver errors, input read errors and
// context cancellation end the run early.
func Run(ctx context.Context, b Builder, in Input, console *Console) (*Result, error) {
	game := b.Game()
	result := &Result{Cards: []models.Card{}}

	for {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		record, err := in.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return result, fmt.Errorf("failed to read input: %w", err)
		}
		result.Records++

		lookup, ok, err := b.Resolve(record)
		if err != nil {
			if errors.Is(err, ErrFatal) {
				return result, err
			}
			log.Printf("%s builder: skipping record %v: %v", game.Label(), record, err)
			skip(result, game, "unparsed")
			continue
		}
		if !ok {
			result.Ignored++
			continue
		}

		rec, err := fetch(ctx, game, lookup)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return result, ctxErr
			}
			log.Printf("%s builder: failed to fetch %s: %v", game.Label(), lookup.Key, err)
			skip(result, game, "fetch")
			continue
		}

		card, err := normalize.Normalize(rec)
		if err != nil {
			log.Printf("%s builder: failed to normalize %s: %v", game.Label(), lookup.Key, err)
			skip(result, game, "normalize")
			continue
		}

		console.OK(card.Name, lookup.Key)
		result.Cards = append(result.Cards, card)
		result.Exported++
		metrics.CardsExportedTotal.WithLabelValues(string(game)).Inc()
	}

	metrics.LastRunCards.WithLabelValues(string(game)).Set(float64(result.Exported))
	metrics.LastRunTimestamp.WithLabelValues(string(game)).Set(float64(time.Now().Unix()))
	return result, nil
}

// fetch tries the primary key, then the alternate key exactly once.
func fetch(ctx context.Context, game models.Game, lookup Lookup) (normalize.Record, error) {
	start := time.Now()
	defer func() {
		metrics.FetchDuration.WithLabelValues(string(game)).Observe(time.Since(start).Seconds())
	}()

	rec, err := lookup.Primary(ctx)
	if err == nil || lookup.Alternate == nil || ctx.Err() != nil {
		return rec, err
	}

	metrics.FetchRetriesTotal.WithLabelValues(string(game)).Inc()
	rec, altErr := lookup.Alternate(ctx)
	if altErr != nil {
		return nil, fmt.Errorf("%w (retry: %w)", err, altErr)
	}
	return rec, nil
}

func skip(result *Result, game models.Game, reason string) {
	result.Skipped++
	metrics.CardsSkippedTotal.WithLabelValues(string(game), reason).Inc()
}
