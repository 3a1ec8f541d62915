package normalize

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/pzkt/cgs-set-builders/internal/models"
	"github.com/pzkt/cgs-set-builders/internal/resolve"
	"github.com/pzkt/cgs-set-builders/internal/services"
)

func strPtr(s string) *string { return &s }

func TestMTGNormalizeKytheon(t *testing.T) {
	key, ok := resolve.ParseMTGLine("1 Kytheon, Hero of Akros / Gideon, Battle-Forged (ORI) 23")
	if !ok {
		t.Fatal("line did not parse")
	}

	raw := &services.ScryfallCard{
		Name: "Kytheon, Hero of Akros // Gideon, Battle-Forged",
		CMC:  1,
		CardFaces: []services.ScryfallFace{
			{
				Name:      "Kytheon, Hero of Akros",
				TypeLine:  "Legendary Creature — Human Soldier",
				Power:     strPtr("2"),
				Toughness: strPtr("1"),
				Colors:    []string{"W"},
				ImageURIs: &services.ScryfallImages{Small: "https://img/small.jpg", Large: "https://img/large.jpg"},
			},
			{
				Name:     "Gideon, Battle-Forged",
				TypeLine: "Legendary Planeswalker — Gideon",
				Colors:   []string{"W"},
			},
		},
	}

	card, err := Normalize(MTGRecord{Key: key, Card: raw})
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}

	if card.ID != "mtgori23" {
		t.Errorf("ID = %q, want mtgori23", card.ID)
	}
	if card.Name != "Kytheon, Hero of Akros" {
		t.Errorf("Name = %q", card.Name)
	}
	if !reflect.DeepEqual(card.Colors, []string{"white"}) {
		t.Errorf("Colors = %v", card.Colors)
	}
	if !reflect.DeepEqual(card.Grouping, []string{"Human", "Soldier"}) {
		t.Errorf("Grouping = %v", card.Grouping)
	}
	if card.Rank != models.Int(1) || card.Cost != models.Int(1) {
		t.Errorf("Rank, Cost = %v, %v; want 1, 1", card.Rank, card.Cost)
	}
	if card.Dmg != models.Int(2) || card.Def != models.Int(1) {
		t.Errorf("Dmg, Def = %v, %v; want 2, 1", card.Dmg, card.Def)
	}
	if !reflect.DeepEqual(card.Types, []string{"summon"}) {
		t.Errorf("Types = %v", card.Types)
	}
	if card.LargeImg != "https://img/large.jpg" || card.SmallImg != "https://img/small.jpg" {
		t.Errorf("images = %q, %q", card.LargeImg, card.SmallImg)
	}
	if card.GameID != "Magic: The Gathering" {
		t.Errorf("GameID = %q", card.GameID)
	}

	data, err := json.Marshal(card)
	if err != nil {
		t.Fatal(err)
	}
	expected := `{"id":"mtgori23","name":"Kytheon, Hero of Akros","colors":["white"],"grouping":["Human","Soldier"],` +
		`"large-img":"https://img/large.jpg","small-img":"https://img/small.jpg","rank":1,"dmg":2,"def":1,"cost":1,` +
		`"game-id":"Magic: The Gathering","types":["summon"]}`
	if string(data) != expected {
		t.Errorf("JSON =\n%s\nwant\n%s", data, expected)
	}
}

func TestParsePT(t *testing.T) {
	tests := []struct {
		name     string
		input    *string
		expected models.Value
	}{
		{"absent", nil, models.String("")},
		{"star", strPtr("*"), models.Int(0)},
		{"integer", strPtr("4"), models.Int(4)},
		{"negative", strPtr("-1"), models.Int(-1)},
		{"star expression", strPtr("1+*"), models.Int(0)},
		{"fraction", strPtr("½"), models.Int(0)},
		{"empty", strPtr(""), models.Int(0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parsePT(tt.input); got != tt.expected {
				t.Errorf("parsePT() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestMTGTypeTags(t *testing.T) {
	tests := []struct {
		typeLine string
		expected []string
	}{
		{"Legendary Creature — Human Soldier", []string{"summon"}},
		{"Artifact Creature — Golem", []string{"backrow", "summon"}},
		{"Artifact Land", []string{"backrow", "resource"}},
		{"Kindred Instant — Elf", []string{"backrow"}},
		{"Legendary Planeswalker — Jace", []string{"planeswalker"}},
		{"Battle — Siege", []string{"battle"}},
		{"Basic Land — Forest", []string{"resource"}},
		{"Token", []string{}},
		{"", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.typeLine, func(t *testing.T) {
			if got := mtgTypeTags(tt.typeLine); !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("mtgTypeTags(%q) = %v, want %v", tt.typeLine, got, tt.expected)
			}
		})
	}
}

func TestMTGGrouping(t *testing.T) {
	tests := []struct {
		typeLine string
		expected []string
	}{
		{"Legendary Creature — Human Soldier", []string{"Human", "Soldier"}},
		{"Creature - Elf Druid", []string{"Elf", "Druid"}},
		{"Instant", []string{}},
		{"Enchantment — ", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.typeLine, func(t *testing.T) {
			if got := mtgGrouping(tt.typeLine); !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("mtgGrouping(%q) = %v, want %v", tt.typeLine, got, tt.expected)
			}
		})
	}
}

func TestMTGColorList(t *testing.T) {
	tests := []struct {
		name     string
		codes    []string
		expected []string
	}{
		{"mono white", []string{"W"}, []string{"white"}},
		{"multicolor keeps order", []string{"U", "R"}, []string{"blue", "red"}},
		{"none", nil, []string{"colorless"}},
		{"empty", []string{}, []string{"colorless"}},
		{"unknown codes dropped", []string{"C"}, []string{"colorless"}},
		{"mixed known and unknown", []string{"X", "G"}, []string{"green"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mtgColorList(tt.codes); !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("mtgColorList(%v) = %v, want %v", tt.codes, got, tt.expected)
			}
		})
	}
}

func TestMTGNormalizeSingleFaced(t *testing.T) {
	raw := &services.ScryfallCard{
		Name:      "Black Lotus",
		TypeLine:  "Artifact",
		CMC:       0,
		ImageURIs: &services.ScryfallImages{Small: "s", Large: "l"},
	}
	key := resolve.MTGKey{Name: "Black Lotus", SetCode: "lea", CollectorNumber: "232"}

	card, err := Normalize(MTGRecord{Key: key, Card: raw})
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}

	if card.Dmg != models.String("") || card.Def != models.String("") {
		t.Errorf("non-creature stats = %v, %v; want empty strings", card.Dmg, card.Def)
	}
	if !reflect.DeepEqual(card.Colors, []string{"colorless"}) {
		t.Errorf("Colors = %v", card.Colors)
	}
	if card.Rank != models.Int(0) {
		t.Errorf("Rank = %v", card.Rank)
	}
	if card.LargeImg != "l" || card.SmallImg != "s" {
		t.Errorf("images = %q, %q", card.LargeImg, card.SmallImg)
	}
}

func TestMTGNormalizeSplitCardUsesCardImagesAndColors(t *testing.T) {
	raw := &services.ScryfallCard{
		Name:      "Fire // Ice",
		Colors:    []string{"U", "R"},
		CMC:       4,
		ImageURIs: &services.ScryfallImages{Small: "s", Large: "l"},
		CardFaces: []services.ScryfallFace{
			{Name: "Fire", TypeLine: "Instant"},
			{Name: "Ice", TypeLine: "Instant"},
		},
	}
	key := resolve.MTGKey{Name: "Fire", SetCode: "mh2", CollectorNumber: "290"}

	card, err := Normalize(MTGRecord{Key: key, Card: raw})
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}

	if card.Name != "Fire" {
		t.Errorf("Name = %q", card.Name)
	}
	if !reflect.DeepEqual(card.Colors, []string{"blue", "red"}) {
		t.Errorf("Colors = %v, want card colors when the face has none", card.Colors)
	}
	if card.LargeImg != "l" {
		t.Errorf("LargeImg = %q, want card image", card.LargeImg)
	}
	if card.Cost != models.Int(4) {
		t.Errorf("Cost = %v", card.Cost)
	}
}

func TestMTGNormalizeFractionalManaValue(t *testing.T) {
	raw := &services.ScryfallCard{Name: "Little Girl", TypeLine: "Creature — Human", CMC: 0.5}
	card, err := Normalize(MTGRecord{Key: resolve.MTGKey{SetCode: "unh", CollectorNumber: "16"}, Card: raw})
	if err != nil {
		t.Fatal(err)
	}
	if card.Rank != models.Float(0.5) {
		t.Errorf("Rank = %v, want 0.5", card.Rank)
	}
}

func TestNormalizeDispatch(t *testing.T) {
	if _, err := For(models.Game("hearthstone")); err == nil {
		t.Error("expected error for unknown game")
	}

	n, err := For(models.GameMTG)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := n.Normalize(PokemonRecord{}); err == nil {
		t.Error("expected mismatch error")
	}

	if _, err := Normalize(MTGRecord{}); err == nil {
		t.Error("expected error for empty record")
	}
}
