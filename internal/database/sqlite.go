// Package database writes exported cards to a SQLite catalog file.
package database

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pzkt/cgs-set-builders/internal/models"
)

const insertBatchSize = 100

// Open opens the catalog at path, creating the file and schema as needed.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog %s: %w", path, err)
	}

	if err := migrate(db); err != nil {
		closeDB(db)
		return nil, err
	}
	return db, nil
}

// WriteCatalog replaces the game's rows in the catalog at path with cards, in
// input order.
func WriteCatalog(path string, game models.Game, cards []models.Card, runID string) error {
	db, err := Open(path)
	if err != nil {
		return err
	}
	defer closeDB(db)

	now := time.Now().UTC()
	entries := make([]models.CatalogEntry, len(cards))
	for i, c := range cards {
		entries[i] = models.NewCatalogEntry(game, i, c, runID, now)
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := clearGame(tx, game); err != nil {
			return err
		}
		if len(entries) == 0 {
			return nil
		}
		return tx.CreateInBatches(entries, insertBatchSize).Error
	})
	if err != nil {
		return fmt.Errorf("failed to write catalog: %w", err)
	}

	log.Printf("Catalog: wrote %d %s cards to %s", len(entries), game.Label(), path)
	return nil
}

// ReadCatalog returns the game's cards in input order.
func ReadCatalog(path string, game models.Game) ([]models.Card, error) {
	db, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer closeDB(db)

	var entries []models.CatalogEntry
	if err := db.Where("game = ?", game).Order("position").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	cards := make([]models.Card, len(entries))
	for i, e := range entries {
		cards[i] = e.Card()
	}
	return cards, nil
}

func closeDB(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Printf("Warning: failed to close catalog: %v", err)
	}
}
