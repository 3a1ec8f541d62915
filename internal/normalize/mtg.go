package normalize

import (
	"strconv"
	"strings"

	"github.com/pzkt/cgs-set-builders/internal/models"
	"github.com/pzkt/cgs-set-builders/internal/resolve"
	"github.com/pzkt/cgs-set-builders/internal/services"
)

// MTGRecord pairs a Scryfall card with the list key it was resolved from.
// The exported id comes from the key, not from the provider payload.
type MTGRecord struct {
	Card *services.ScryfallCard
	Key  resolve.MTGKey
}

func (MTGRecord) Game() models.Game { return models.GameMTG }

var mtgColors = map[string]string{
	"W": models.ColorWhite,
	"U": models.ColorBlue,
	"B": models.ColorBlack,
	"R": models.ColorRed,
	"G": models.ColorGreen,
}

var mtgTypes = map[string]string{
	"Planeswalker": models.TypePlaneswalker,
	"Creature":     models.TypeSummon,
	"Sorcery":      models.TypeBackrow,
	"Instant":      models.TypeBackrow,
	"Artifact":     models.TypeBackrow,
	"Enchantment":  models.TypeBackrow,
	"Kindred":      models.TypeBackrow,
	"Land":         models.TypeResource,
	"Battle":       models.TypeBattle,
}

type mtgNormalizer struct{}

// mtgFace is the face a card is exported as: the card itself, or the first
// face of a multi-faced card.
type mtgFace struct {
	images    *services.ScryfallImages
	power     *string
	toughness *string
	name      string
	typeLine  string
	colors    []string
}

func (mtgNormalizer) Normalize(rec Record) (models.Card, error) {
	r, ok := rec.(MTGRecord)
	if !ok {
		return models.Card{}, mismatch(models.GameMTG, rec)
	}
	if r.Card == nil {
		return models.Card{}, ErrEmptyRecord
	}

	face := primaryFace(r.Card)
	cmc := models.Number(r.Card.CMC)

	card := models.Card{
		ID:       r.Key.CardID(),
		Name:     face.name,
		Colors:   mtgColorList(face.colors),
		Grouping: mtgGrouping(face.typeLine),
		Rank:     cmc,
		Dmg:      parsePT(face.power),
		Def:      parsePT(face.toughness),
		Cost:     cmc,
		GameID:   models.GameMTG.DisplayID(),
		Types:    mtgTypeTags(face.typeLine),
	}
	if face.images != nil {
		card.LargeImg = face.images.Large
		card.SmallImg = face.images.Small
	}

	return card, nil
}

func primaryFace(sc *services.ScryfallCard) mtgFace {
	if len(sc.CardFaces) == 0 {
		return mtgFace{
			images:    sc.ImageURIs,
			power:     sc.Power,
			toughness: sc.Toughness,
			name:      sc.Name,
			typeLine:  sc.TypeLine,
			colors:    sc.Colors,
		}
	}

	f := sc.CardFaces[0]
	face := mtgFace{
		images:    f.ImageURIs,
		power:     f.Power,
		toughness: f.Toughness,
		name:      f.Name,
		typeLine:  f.TypeLine,
		colors:    f.Colors,
	}
	if face.name == "" {
		face.name = sc.Name
	}
	if face.colors == nil {
		face.colors = sc.Colors
	}
	// Split and adventure cards share one image across faces.
	if face.images == nil {
		face.images = sc.ImageURIs
	}
	return face
}

func mtgColorList(codes []string) []string {
	colors := []string{}
	for _, c := range codes {
		if color, ok := mtgColors[c]; ok {
			colors = append(colors, color)
		}
	}
	if len(colors) == 0 {
		return []string{models.ColorColorless}
	}
	return colors
}

// splitTypeLine splits "Legendary Creature — Human Soldier" into its main
// types and subtypes. The em dash is normalized to an ASCII hyphen first.
func splitTypeLine(typeLine string) (main, sub string, hasSub bool) {
	normalized := strings.ReplaceAll(typeLine, "—", "-")
	return strings.Cut(normalized, "-")
}

func mtgTypeTags(typeLine string) []string {
	main, _, _ := splitTypeLine(typeLine)
	tags := []string{}
	for _, word := range strings.Fields(main) {
		if tag, ok := mtgTypes[word]; ok {
			tags = models.AppendUnique(tags, tag)
		}
	}
	return tags
}

func mtgGrouping(typeLine string) []string {
	_, sub, hasSub := splitTypeLine(typeLine)
	if !hasSub {
		return []string{}
	}
	return emptyIfNil(strings.Fields(sub))
}

// parsePT normalizes power and toughness: absent is "", "*" and other
// non-integers are 0.
func parsePT(value *string) models.Value {
	if value == nil {
		return models.String("")
	}
	if *value == "*" {
		return models.Int(0)
	}
	n, err := strconv.Atoi(strings.TrimSpace(*value))
	if err != nil {
		return models.Int(0)
	}
	return models.Int(n)
}
