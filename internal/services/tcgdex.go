package services

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const tcgdexBaseURL = "https://api.tcgdex.net/v2/en"

type TCGdexService struct {
	api     apiClient
	baseURL string
}

func NewTCGdexService(requestsPerSecond float64) *TCGdexService {
	return &TCGdexService{
		api:     newAPIClient("tcgdex", 30*time.Second, requestsPerSecond),
		baseURL: tcgdexBaseURL,
	}
}

func (s *TCGdexService) WithBaseURL(baseURL string) *TCGdexService {
	if baseURL != "" {
		s.baseURL = strings.TrimRight(baseURL, "/")
	}
	return s
}

type tcgdexCard struct {
	ID          string         `json:"id"`
	LocalID     string         `json:"localId"`
	Name        string         `json:"name"`
	Image       string         `json:"image"`
	Category    string         `json:"category"`
	Stage       string         `json:"stage"`
	TrainerType string         `json:"trainerType"`
	EnergyType  string         `json:"energyType"`
	HP          flexString     `json:"hp"`
	Types       []string       `json:"types"`
	Attacks     []tcgdexAttack `json:"attacks"`
}

type tcgdexAttack struct {
	Name   string     `json:"name"`
	Damage flexString `json:"damage"`
}

// FetchCard fetches a card by its TCGdex id, e.g. "swsh3-136".
func (s *TCGdexService) FetchCard(ctx context.Context, id string) (*PokemonCard, error) {
	reqURL := fmt.Sprintf("%s/cards/%s", s.baseURL, url.PathEscape(id))

	var card tcgdexCard
	if err := s.api.getJSON(ctx, reqURL, nil, &card); err != nil {
		return nil, fmt.Errorf("failed to get card %s from tcgdex: %w", id, err)
	}
	if card.ID == "" {
		return nil, fmt.Errorf("failed to get card %s from tcgdex: %w", id, ErrNotFound)
	}

	return s.convertToCard(card), nil
}

func (s *TCGdexService) convertToCard(tc tcgdexCard) *PokemonCard {
	card := &PokemonCard{
		ID:       tc.ID,
		Name:     tc.Name,
		Category: tc.Category,
		Stage:    tc.Stage,
		HP:       parseHP(string(tc.HP)),
		Types:    tc.Types,
	}

	// TCGdex reports the trainer kind separately; fold it into the subtypes
	// so Item/Supporter/Tool/Stadium classify the same way for every provider.
	if tc.TrainerType != "" {
		card.Subtypes = append(card.Subtypes, tc.TrainerType)
	}

	// TCGdex provides a base URL; quality suffixes select the size.
	if tc.Image != "" {
		card.Images = &PokemonImages{
			Small: tc.Image + "/low.webp",
			Large: tc.Image + "/high.webp",
		}
	}

	if tc.Attacks != nil {
		card.Attacks = make([]PokemonAttack, len(tc.Attacks))
		for i, a := range tc.Attacks {
			card.Attacks[i] = PokemonAttack{Name: a.Name, Damage: string(a.Damage)}
		}
	}

	return card
}

func parseHP(raw string) *int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	hp, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &hp
}
