package pipeline

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/pzkt/cgs-set-builders/internal/resolve"
)

// CatalogCard is one row of a local pokemontcg.io CSV dump.
type CatalogCard struct {
	ID         string
	Name       string
	LargeImage string
}

// LoadPokemonCatalog indexes a CSV dump by card id. The header row must name
// the id, name and large_image_source columns; other columns are ignored.
func LoadPokemonCatalog(r io.Reader) (map[string]CatalogCard, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog header: %w", err)
	}

	cols := map[string]int{"id": -1, "name": -1, "large_image_source": -1}
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if _, ok := cols[h]; ok {
			cols[h] = i
		}
	}
	for name, i := range cols {
		if i < 0 {
			return nil, fmt.Errorf("catalog is missing column %q", name)
		}
	}

	catalog := make(map[string]CatalogCard)
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog: %w", err)
		}

		card := CatalogCard{
			ID:         field(row, cols["id"]),
			Name:       field(row, cols["name"]),
			LargeImage: field(row, cols["large_image_source"]),
		}
		if card.ID == "" {
			continue
		}
		if _, exists := catalog[card.ID]; !exists {
			catalog[card.ID] = card
		}
	}
	return catalog, nil
}

func field(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// CheckResult counts the outcome of a list check.
type CheckResult struct {
	Checked    int
	Found      int
	Missing    int
	UnknownSet int
}

// CheckPokemonList verifies every list line against a local catalog without
// touching the network. Each card line prints "<name> - <image>" or
// "ERROR - <key> - <line>". Unknown set codes are reported and checking
// continues.
func CheckPokemonList(sets *resolve.SetTable, catalog map[string]CatalogCard, in Input, w io.Writer) (*CheckResult, error) {
	result := &CheckResult{}

	for {
		record, err := in.Next()
		if err == io.EOF {
			return result, nil
		}
		if err != nil {
			return result, fmt.Errorf("failed to read input: %w", err)
		}
		if len(record) == 0 {
			continue
		}

		line, ok, err := sets.ResolveLine(record[0])
		if errors.Is(err, resolve.ErrUnknownSet) {
			result.UnknownSet++
			fmt.Fprintf(w, "ERROR - unknown set - %s\n", record[0])
			continue
		}
		if err != nil {
			return result, err
		}
		if !ok {
			continue
		}
		result.Checked++

		// The build's own key, set prefix included, rather than the bare
		// "<set>-<number>" form, so a hit here is the card a build requests.
		card, found := catalog[line.Key()]
		if !found {
			result.Missing++
			fmt.Fprintf(w, "ERROR - %s - %s\n", line.Key(), line.Raw)
			continue
		}
		result.Found++
		fmt.Fprintf(w, "%s - %s\n", card.Name, card.LargeImage)
	}
}
