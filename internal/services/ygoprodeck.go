package services

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"
)

const ygoprodeckBaseURL = "https://db.ygoprodeck.com/api/v7"

// YGOPRODeckService looks cards up in the YGOPRODeck card-info API.
type YGOPRODeckService struct {
	api     apiClient
	baseURL string
}

func NewYGOPRODeckService(requestsPerSecond float64) *YGOPRODeckService {
	return &YGOPRODeckService{
		api:     newAPIClient("ygoprodeck", 5*time.Second, requestsPerSecond),
		baseURL: ygoprodeckBaseURL,
	}
}

func (s *YGOPRODeckService) WithBaseURL(baseURL string) *YGOPRODeckService {
	if baseURL != "" {
		s.baseURL = strings.TrimRight(baseURL, "/")
	}
	return s
}

// YugiohCard is the raw card-info record. Pointer stats are nil when the API
// omits them: spells and traps have no level, link monsters have no def.
type YugiohCard struct {
	Level     *int   `json:"level"`
	LinkVal   *int   `json:"linkval"`
	Atk       *int   `json:"atk"`
	Def       *int   `json:"def"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	Race      string `json:"race"`
	Attribute string `json:"attribute"`
	ID        int    `json:"id"`
}

type ygoprodeckResponse struct {
	Data  []YugiohCard `json:"data"`
	Error string       `json:"error"`
}

func (s *YGOPRODeckService) FetchCard(ctx context.Context, id string) (*YugiohCard, error) {
	params := url.Values{}
	params.Set("id", id)
	reqURL := fmt.Sprintf("%s/cardinfo.php?%s", s.baseURL, params.Encode())

	var resp ygoprodeckResponse
	if err := s.api.getJSON(ctx, reqURL, nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to get card %s from ygoprodeck: %w", id, err)
	}
	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("failed to get card %s from ygoprodeck: %w", id, ErrNotFound)
	}

	return &resp.Data[0], nil
}
