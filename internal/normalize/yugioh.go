package normalize

import (
	"math"

	"github.com/pzkt/cgs-set-builders/internal/models"
	"github.com/pzkt/cgs-set-builders/internal/resolve"
	"github.com/pzkt/cgs-set-builders/internal/services"
)

const (
	ygoImageURL      = "https://images.ygoprodeck.com/images/cards/"
	ygoSmallImageURL = "https://images.ygoprodeck.com/images/cards_small/"
)

// YugiohRecord pairs the card-info payload with its cube CSV row. Name, id and
// card kind come from the row.
type YugiohRecord struct {
	Card *services.YugiohCard
	Row  resolve.YugiohRow
}

func (YugiohRecord) Game() models.Game { return models.GameYugioh }

var yugiohAttributeColors = map[string]string{
	"EARTH":  models.ColorBlack,
	"WIND":   models.ColorGreen,
	"WATER":  models.ColorBlue,
	"FIRE":   models.ColorRed,
	"DARK":   models.ColorPurple,
	"LIGHT":  models.ColorWhite,
	"DIVINE": models.ColorGold,
}

type yugiohNormalizer struct{}

func (yugiohNormalizer) Normalize(rec Record) (models.Card, error) {
	r, ok := rec.(YugiohRecord)
	if !ok {
		return models.Card{}, mismatch(models.GameYugioh, rec)
	}
	if r.Card == nil {
		return models.Card{}, ErrEmptyRecord
	}

	kind := r.Row.Kind()
	rank, dmg, def := yugiohStats(r.Card, kind)

	card := models.Card{
		ID:       r.Row.CardID(),
		Name:     r.Row.Name,
		Colors:   yugiohColorList(r.Card),
		Grouping: []string{},
		LargeImg: ygoImageURL + r.Row.ID + ".jpg",
		SmallImg: ygoSmallImageURL + r.Row.ID + ".jpg",
		Rank:     rank,
		Dmg:      dmg,
		Def:      def,
		Cost:     models.Int(0),
		GameID:   models.GameYugioh.DisplayID(),
		Types:    yugiohTypeTags(kind),
	}
	if r.Card.Race != "" {
		card.Grouping = []string{r.Card.Race}
	}

	return card, nil
}

// yugiohColorList forces spells blue and traps red. Unmapped attributes give
// an empty list, unlike the colorless fallback of the other games.
func yugiohColorList(yc *services.YugiohCard) []string {
	switch yc.Type {
	case "Spell Card":
		return []string{models.ColorBlue}
	case "Trap Card":
		return []string{models.ColorRed}
	}
	if color, ok := yugiohAttributeColors[yc.Attribute]; ok {
		return []string{color}
	}
	return []string{}
}

func yugiohStats(yc *services.YugiohCard, kind string) (rank, dmg, def models.Value) {
	switch kind {
	case "monster":
		// Level wins over link rating when both are present.
		switch {
		case yc.Level != nil:
			rank = models.Int(*yc.Level)
		case yc.LinkVal != nil:
			rank = models.Int(*yc.LinkVal)
		default:
			rank = models.Null
		}
		return rank, thousandths(yc.Atk), thousandths(yc.Def)
	case "spell":
		return models.String("spell"), models.String(""), models.String("")
	case "trap":
		return models.String("trap"), models.String(""), models.String("")
	}
	return models.Null, models.String(""), models.String("")
}

func thousandths(stat *int) models.Value {
	if stat == nil {
		return models.String("")
	}
	return models.Float(math.Round(float64(*stat)/1000*1000) / 1000)
}

func yugiohTypeTags(kind string) []string {
	switch kind {
	case "monster":
		return []string{models.TypeSummon}
	case "spell", "trap":
		return []string{models.TypeBackrow}
	}
	return []string{}
}
