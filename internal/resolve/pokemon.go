package resolve

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrUnknownSet means a list line names a set code the set table cannot
// resolve. The input is structurally broken, so callers abort the run.
var ErrUnknownSet = errors.New("no set matches ptcgo code")

// PokemonSet is one entry of the set-info file.
type PokemonSet struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	PTCGOCode string `json:"ptcgoCode"`
	Prefix    string `json:"prefix,omitempty"`
}

// SetTable maps ptcgo codes to canonical set ids. It is built once and never
// modified afterwards.
type SetTable struct {
	byCode map[string]PokemonSet
}

// NewSetTable indexes sets by ptcgo code. The first set carrying a code wins.
func NewSetTable(sets []PokemonSet) *SetTable {
	t := &SetTable{byCode: make(map[string]PokemonSet, len(sets))}
	for _, s := range sets {
		if s.PTCGOCode == "" {
			continue
		}
		if _, exists := t.byCode[s.PTCGOCode]; exists {
			continue
		}
		t.byCode[s.PTCGOCode] = s
	}
	return t
}

// LoadSetTable reads a JSON array of sets from path.
func LoadSetTable(path string) (*SetTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read set info: %w", err)
	}

	var sets []PokemonSet
	if err := json.Unmarshal(data, &sets); err != nil {
		return nil, fmt.Errorf("failed to parse set info: %w", err)
	}

	return NewSetTable(sets), nil
}

func (t *SetTable) Lookup(code string) (PokemonSet, bool) {
	s, ok := t.byCode[code]
	return s, ok
}

func (t *SetTable) Len() int {
	return len(t.byCode)
}

// PokemonLine is a resolved list line.
type PokemonLine struct {
	Raw    string
	Code   string
	Number string
	Set    PokemonSet
}

// SplitPokemonLine tokenizes a list line. Lines with fewer than four tokens
// are not card lines and report false.
func SplitPokemonLine(line string) (code, number string, ok bool) {
	fields := strings.Fields(line)
	if len(fields) < 4 {
		return "", "", false
	}
	return fields[len(fields)-2], fields[len(fields)-1], true
}

// ResolveLine maps a list line onto its set. It reports false for non-card
// lines and wraps ErrUnknownSet when the set code is not in the table.
func (t *SetTable) ResolveLine(line string) (PokemonLine, bool, error) {
	code, number, ok := SplitPokemonLine(line)
	if !ok {
		return PokemonLine{}, false, nil
	}

	set, found := t.Lookup(code)
	if !found {
		return PokemonLine{}, false, fmt.Errorf("%w %q in line %q", ErrUnknownSet, code, strings.TrimSpace(line))
	}

	return PokemonLine{
		Raw:    strings.TrimSpace(line),
		Code:   code,
		Number: number,
		Set:    set,
	}, true, nil
}

// Key is the primary lookup key: "<set>-<number>" or "<set>-<prefix><number>".
func (l PokemonLine) Key() string {
	return buildPokemonKey(l.Set, l.Number)
}

// PaddedKey is the retry key, with the number zero-padded to three digits.
func (l PokemonLine) PaddedKey() string {
	return buildPokemonKey(l.Set, zfill(l.Number, 3))
}

func buildPokemonKey(set PokemonSet, number string) string {
	return set.ID + "-" + set.Prefix + number
}

// zfill left-pads s with zeros to width, keeping a leading sign in front.
func zfill(s string, width int) string {
	if len(s) >= width {
		return s
	}

	sign := ""
	if s != "" && (s[0] == '+' || s[0] == '-') {
		sign, s = s[:1], s[1:]
	}
	return sign + strings.Repeat("0", width-len(sign)-len(s)) + s
}
