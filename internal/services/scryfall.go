package services

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/pzkt/cgs-set-builders/internal/resolve"
)

const scryfallBaseURL = "https://api.scryfall.com"

type ScryfallService struct {
	api     apiClient
	baseURL string
}

// NewScryfallService creates a Scryfall client. Scryfall asks clients to stay
// at or below 10 requests per second.
func NewScryfallService(requestsPerSecond float64) *ScryfallService {
	return &ScryfallService{
		api:     newAPIClient("scryfall", 10*time.Second, requestsPerSecond),
		baseURL: scryfallBaseURL,
	}
}

// WithBaseURL points the client at another API root. An empty url keeps the
// default.
func (s *ScryfallService) WithBaseURL(baseURL string) *ScryfallService {
	if baseURL != "" {
		s.baseURL = strings.TrimRight(baseURL, "/")
	}
	return s
}

// ScryfallCard is the subset of a Scryfall card object the MTG normalizer reads.
type ScryfallCard struct {
	ImageURIs       *ScryfallImages `json:"image_uris"`
	CardFaces       []ScryfallFace  `json:"card_faces"`
	Power           *string         `json:"power"`
	Toughness       *string         `json:"toughness"`
	Colors          []string        `json:"colors"`
	Name            string          `json:"name"`
	TypeLine        string          `json:"type_line"`
	Set             string          `json:"set"`
	CollectorNumber string          `json:"collector_number"`
	CMC             float64         `json:"cmc"`
}

type ScryfallImages struct {
	Small  string `json:"small"`
	Normal string `json:"normal"`
	Large  string `json:"large"`
}

// ScryfallFace is one face of a multi-faced card. Colors stays nil when the
// face object carries no colors key.
type ScryfallFace struct {
	ImageURIs *ScryfallImages `json:"image_uris"`
	Power     *string         `json:"power"`
	Toughness *string         `json:"toughness"`
	Colors    []string        `json:"colors"`
	Name      string          `json:"name"`
	TypeLine  string          `json:"type_line"`
}

// FetchCard looks a printing up by exact name within its set.
func (s *ScryfallService) FetchCard(ctx context.Context, key resolve.MTGKey) (*ScryfallCard, error) {
	params := url.Values{}
	params.Set("exact", key.Name)
	params.Set("set", key.SetCode)
	params.Set("collector_number", key.CollectorNumber)
	reqURL := fmt.Sprintf("%s/cards/named?%s", s.baseURL, params.Encode())

	var card ScryfallCard
	if err := s.api.getJSON(ctx, reqURL, nil, &card); err != nil {
		return nil, fmt.Errorf("failed to get card %s from scryfall: %w", key, err)
	}
	return &card, nil
}
