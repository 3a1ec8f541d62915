package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestYGOPRODeck(url string) *YGOPRODeckService {
	return NewYGOPRODeckService(0).WithBaseURL(url + "/")
}

func TestYGOPRODeckService_FetchCard(t *testing.T) {
	var gotID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = r.URL.Query().Get("id")
		w.Write([]byte(`{"data": [{
			"id": 89631139,
			"name": "Blue-Eyes White Dragon",
			"type": "Normal Monster",
			"race": "Dragon",
			"attribute": "LIGHT",
			"level": 8,
			"atk": 3000,
			"def": 2500
		}]}`))
	}))
	defer server.Close()

	card, err := newTestYGOPRODeck(server.URL).FetchCard(context.Background(), "89631139")
	if err != nil {
		t.Fatalf("FetchCard() error = %v", err)
	}

	if gotID != "89631139" {
		t.Errorf("id param = %q", gotID)
	}
	if card.Level == nil || *card.Level != 8 {
		t.Errorf("Level = %v", card.Level)
	}
	if card.LinkVal != nil {
		t.Errorf("LinkVal = %v, want nil", *card.LinkVal)
	}
	if card.Atk == nil || *card.Atk != 3000 || card.Def == nil || *card.Def != 2500 {
		t.Errorf("Atk, Def = %v, %v", card.Atk, card.Def)
	}
	if card.Attribute != "LIGHT" || card.Race != "Dragon" {
		t.Errorf("Attribute, Race = %q, %q", card.Attribute, card.Race)
	}
}

func TestYGOPRODeckService_EmptyDataIsNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": []}`))
	}))
	defer server.Close()

	_, err := newTestYGOPRODeck(server.URL).FetchCard(context.Background(), "1")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestYGOPRODeckService_BadRequestIsTransient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": "No card matching your query was found in the database."}`))
	}))
	defer server.Close()

	_, err := newTestYGOPRODeck(server.URL).FetchCard(context.Background(), "0")
	if !errors.Is(err, ErrTransient) {
		t.Errorf("expected ErrTransient, got %v", err)
	}
}
