package pipeline

import (
	"bytes"
	"strings"
	"testing"
)

const testCatalogCSV = `id,name,supertype,large_image_source
swsh3-9,Rowlet,Pokémon,https://images.pokemontcg.io/swsh3/9_hires.png
swsh3-20,Charmeleon,Pokémon,https://images.pokemontcg.io/swsh3/20_hires.png
swsh3-20,Charmeleon Duplicate,Pokémon,https://example.invalid/dup.png
`

func TestLoadPokemonCatalog(t *testing.T) {
	catalog, err := LoadPokemonCatalog(strings.NewReader(testCatalogCSV))
	if err != nil {
		t.Fatalf("LoadPokemonCatalog() error = %v", err)
	}
	if len(catalog) != 2 {
		t.Fatalf("catalog size = %d, want 2", len(catalog))
	}
	if got := catalog["swsh3-20"].Name; got != "Charmeleon" {
		t.Errorf("first row should win, got %q", got)
	}
}

func TestLoadPokemonCatalogMissingColumn(t *testing.T) {
	_, err := LoadPokemonCatalog(strings.NewReader("id,name\nswsh3-9,Rowlet\n"))
	if err == nil {
		t.Error("expected error for missing large_image_source column")
	}
}

func TestCheckPokemonList(t *testing.T) {
	catalog, err := LoadPokemonCatalog(strings.NewReader(testCatalogCSV))
	if err != nil {
		t.Fatal(err)
	}
	list := "Pokémon: 3\n1 Rowlet DAA 9\n1 Ghost Card DAA 999\n1 Mystery ZZZ 5\n1 Charmeleon DAA 20\n"

	var out bytes.Buffer
	result, err := CheckPokemonList(testSetTable(), catalog, NewLineInput(strings.NewReader(list)), &out)
	if err != nil {
		t.Fatalf("CheckPokemonList() error = %v", err)
	}

	expected := strings.Join([]string{
		"Rowlet - https://images.pokemontcg.io/swsh3/9_hires.png",
		"ERROR - swsh3-999 - 1 Ghost Card DAA 999",
		"ERROR - unknown set - 1 Mystery ZZZ 5",
		"Charmeleon - https://images.pokemontcg.io/swsh3/20_hires.png",
		"",
	}, "\n")
	if out.String() != expected {
		t.Errorf("output =\n%s\nwant\n%s", out.String(), expected)
	}

	want := CheckResult{Checked: 3, Found: 2, Missing: 1, UnknownSet: 1}
	if *result != want {
		t.Errorf("result = %+v, want %+v", *result, want)
	}
}

func TestCheckPokemonListUsesPrefixedKey(t *testing.T) {
	csv := "id,name,supertype,large_image_source\n" +
		"swsh4.5-SV107,Charizard,Pokémon,https://images.pokemontcg.io/swsh45sv/SV107_hires.png\n" +
		"swsh4.5-107,Bare Key,Pokémon,https://example.invalid/bare.png\n"
	catalog, err := LoadPokemonCatalog(strings.NewReader(csv))
	if err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	_, err = CheckPokemonList(testSetTable(), catalog, NewLineInput(strings.NewReader("1 Charizard SHF 107\n")), &out)
	if err != nil {
		t.Fatalf("CheckPokemonList() error = %v", err)
	}

	expected := "Charizard - https://images.pokemontcg.io/swsh45sv/SV107_hires.png\n"
	if out.String() != expected {
		t.Errorf("output = %q, want %q", out.String(), expected)
	}
}
