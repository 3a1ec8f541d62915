package database

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/pzkt/cgs-set-builders/internal/models"
)

// migrate brings the cards table up to date. A table from an older layout
// without the game column cannot hold several games and is dropped first.
func migrate(db *gorm.DB) error {
	if db.Migrator().HasTable(&models.CatalogEntry{}) && !db.Migrator().HasColumn(&models.CatalogEntry{}, "game") {
		log.Println("Catalog: dropping cards table without game column")
		if err := db.Migrator().DropTable(&models.CatalogEntry{}); err != nil {
			return fmt.Errorf("failed to drop legacy cards table: %w", err)
		}
	}

	if err := db.AutoMigrate(&models.CatalogEntry{}); err != nil {
		return fmt.Errorf("failed to migrate catalog: %w", err)
	}
	return nil
}

// clearGame removes the rows of a previous run for game. Rows of other games
// are kept.
func clearGame(tx *gorm.DB, game models.Game) error {
	result := tx.Where("game = ?", game).Delete(&models.CatalogEntry{})
	if result.Error != nil {
		return fmt.Errorf("failed to clear %s rows: %w", game, result.Error)
	}

	if result.RowsAffected > 0 {
		log.Printf("Catalog: replaced %d previous %s rows", result.RowsAffected, game.Label())
	}
	return nil
}
