package models

import "time"

// CatalogEntry is the SQLite row written when a run exports to a catalog file
// instead of a JSON array. Rows are keyed by game and position, so one file can
// hold every game and duplicate input lines stay distinct rows.
type CatalogEntry struct {
	Game       Game     `gorm:"primaryKey"`
	Position   int      `gorm:"primaryKey;autoIncrement:false"`
	CardID     string   `gorm:"not null;index"`
	Name       string   `gorm:"not null;index"`
	Colors     []string `gorm:"serializer:json"`
	Grouping   []string `gorm:"serializer:json"`
	LargeImg   string
	SmallImg   string
	Rank       Value     `gorm:"serializer:json"`
	Dmg        Value     `gorm:"serializer:json"`
	Def        Value     `gorm:"serializer:json"`
	Cost       Value     `gorm:"serializer:json"`
	GameID     string    `gorm:"not null"`
	Types      []string  `gorm:"serializer:json"`
	RunID      string    `gorm:"index"`
	ExportedAt time.Time `gorm:"not null"`
}

func (CatalogEntry) TableName() string { return "cards" }

func NewCatalogEntry(game Game, position int, c Card, runID string, at time.Time) CatalogEntry {
	return CatalogEntry{
		Position:   position,
		CardID:     c.ID,
		Game:       game,
		Name:       c.Name,
		Colors:     c.Colors,
		Grouping:   c.Grouping,
		LargeImg:   c.LargeImg,
		SmallImg:   c.SmallImg,
		Rank:       c.Rank,
		Dmg:        c.Dmg,
		Def:        c.Def,
		Cost:       c.Cost,
		GameID:     c.GameID,
		Types:      c.Types,
		RunID:      runID,
		ExportedAt: at,
	}
}

// Card converts the row back into the unified record.
func (e CatalogEntry) Card() Card {
	return Card{
		ID:       e.CardID,
		Name:     e.Name,
		Colors:   e.Colors,
		Grouping: e.Grouping,
		LargeImg: e.LargeImg,
		SmallImg: e.SmallImg,
		Rank:     e.Rank,
		Dmg:      e.Dmg,
		Def:      e.Def,
		Cost:     e.Cost,
		GameID:   e.GameID,
		Types:    e.Types,
	}
}
