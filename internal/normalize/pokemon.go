package normalize

import (
	"strconv"
	"strings"

	"github.com/pzkt/cgs-set-builders/internal/models"
	"github.com/pzkt/cgs-set-builders/internal/services"
)

// PokemonRecord wraps a raw Pokémon card.
type PokemonRecord struct {
	Card *services.PokemonCard
}

func (PokemonRecord) Game() models.Game { return models.GamePokemon }

// noImage marks a missing Pokémon image. MTG and Yu-Gi-Oh use "" instead.
const noImage = "NONE"

var pokemonColors = map[string]string{
	"Fire":      models.ColorRed,
	"Fighting":  models.ColorRed,
	"Water":     models.ColorBlue,
	"Lightning": models.ColorWhite,
	"Grass":     models.ColorGreen,
	"Metal":     models.ColorBlack,
	"Darkness":  models.ColorBlack,
	"Psychic":   models.ColorPurple,
	"Fairy":     models.ColorPurple,
	"Dragon":    models.ColorGold,
	"Colorless": models.ColorColorless,
}

var pokemonStageRanks = map[string]int{
	"Basic":  0,
	"Stage1": 1,
	"Stage2": 2,
}

var trainerSubtypes = map[string]bool{
	"Item":      true,
	"Supporter": true,
	"Tool":      true,
	"Stadium":   true,
}

type pokemonNormalizer struct{}

func (pokemonNormalizer) Normalize(rec Record) (models.Card, error) {
	r, ok := rec.(PokemonRecord)
	if !ok {
		return models.Card{}, mismatch(models.GamePokemon, rec)
	}
	pc := r.Card
	if pc == nil {
		return models.Card{}, ErrEmptyRecord
	}

	card := models.Card{
		ID:       pc.ID,
		Name:     pc.Name,
		Colors:   pokemonColorList(pc.Types),
		Grouping: []string{},
		LargeImg: noImage,
		SmallImg: noImage,
		Rank:     pokemonRank(pc),
		Dmg:      maxAttackDamage(pc.Attacks),
		Def:      models.String(""),
		Cost:     models.Int(0),
		GameID:   models.GamePokemon.DisplayID(),
		Types:    pokemonTypeTags(pc),
	}

	if pc.Images != nil {
		card.LargeImg = pc.Images.Large
		card.SmallImg = pc.Images.Small
	}

	if pc.HP != nil {
		card.Def = models.Float(float64(*pc.HP) / 10)
	}

	return card, nil
}

func pokemonColorList(types []string) []string {
	colors := []string{}
	for _, t := range types {
		if color, ok := pokemonColors[t]; ok {
			colors = append(colors, color)
		}
	}
	if len(colors) == 0 {
		return []string{models.ColorColorless}
	}
	return colors
}

// pokemonRank encodes the growth stage. Trainers always rank "trainer".
func pokemonRank(pc *services.PokemonCard) models.Value {
	if pc.Category == "Trainer" {
		return models.String("trainer")
	}
	if rank, ok := pokemonStageRanks[pc.Stage]; ok {
		return models.Int(rank)
	}
	return models.String("rankless")
}

// maxAttackDamage is the highest printed damage divided by ten. Modifiers
// such as "+" or "×" are stripped before parsing.
func maxAttackDamage(attacks []services.PokemonAttack) models.Value {
	best, found := 0, false
	for _, a := range attacks {
		digits := stripNonDigits(a.Damage)
		if digits == "" {
			continue
		}
		n, err := strconv.Atoi(digits)
		if err != nil {
			continue
		}
		if !found || n > best {
			best, found = n, true
		}
	}
	if !found {
		return models.Int(0)
	}
	return models.Float(float64(best) / 10)
}

func stripNonDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// pokemonTypeTags evaluates each signal independently, so one card can carry
// several tags.
func pokemonTypeTags(pc *services.PokemonCard) []string {
	tags := []string{}

	if pc.Stage != "" || strings.HasPrefix(strings.ToLower(pc.Supertype), "pok") {
		tags = models.AppendUnique(tags, models.TypeSummon)
	}

	backrow := pc.Category == "Trainer" || pc.Supertype == "Trainer"
	resource := pc.Category == "Energy" || pc.Supertype == "Energy"
	for _, s := range pc.Subtypes {
		if trainerSubtypes[s] {
			backrow = true
		}
		if strings.Contains(s, "Energy") {
			resource = true
		}
	}

	if backrow {
		tags = models.AppendUnique(tags, models.TypeBackrow)
	}
	if resource {
		tags = models.AppendUnique(tags, models.TypeResource)
	}
	return tags
}
