package models

import "strings"

type Game string

const (
	GameMTG     Game = "mtg"
	GamePokemon Game = "pokemon"
	GameYugioh  Game = "yugioh"
)

// Games lists every supported game in CLI order.
func Games() []Game {
	return []Game{GameMTG, GamePokemon, GameYugioh}
}

// ParseGame accepts the canonical name plus a few common aliases.
func ParseGame(s string) (Game, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mtg", "magic":
		return GameMTG, true
	case "pokemon", "pkm", "ptcg":
		return GamePokemon, true
	case "yugioh", "ygo", "yu-gi-oh":
		return GameYugioh, true
	}
	return "", false
}

// DisplayID is the literal written to the game-id field of every exported card.
func (g Game) DisplayID() string {
	switch g {
	case GameMTG:
		return "Magic: The Gathering"
	case GamePokemon:
		return "pokemon"
	case GameYugioh:
		return "Yu-Gi-Oh"
	}
	return string(g)
}

// Label is the human name used in console summaries.
func (g Game) Label() string {
	switch g {
	case GameMTG:
		return "Magic"
	case GamePokemon:
		return "Pokemon"
	case GameYugioh:
		return "Yu-Gi-Oh"
	}
	return string(g)
}

// Shared color palette.
const (
	ColorWhite     = "white"
	ColorBlue      = "blue"
	ColorBlack     = "black"
	ColorRed       = "red"
	ColorGreen     = "green"
	ColorColorless = "colorless"
	ColorPurple    = "purple"
	ColorGold      = "gold"
)

// Card type tags. A card carries zero or more of these.
const (
	TypeSummon       = "summon"
	TypeBackrow      = "backrow"
	TypeResource     = "resource"
	TypeBattle       = "battle"
	TypePlaneswalker = "planeswalker"
)

// Card is the unified record every game normalizes into. Field order is the
// serialization order of the exported JSON array.
type Card struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Colors   []string `json:"colors"`
	Grouping []string `json:"grouping"`
	LargeImg string   `json:"large-img"`
	SmallImg string   `json:"small-img"`
	Rank     Value    `json:"rank"`
	Dmg      Value    `json:"dmg"`
	Def      Value    `json:"def"`
	Cost     Value    `json:"cost"`
	GameID   string   `json:"game-id"`
	Types    []string `json:"types"`
}

// AppendUnique appends s unless it is already present, keeping first-seen order.
func AppendUnique(list []string, s string) []string {
	for _, existing := range list {
		if existing == s {
			return list
		}
	}
	return append(list, s)
}
