// Package resolve turns raw input lines and rows into provider lookup keys.
package resolve

import (
	"fmt"
	"regexp"
	"strings"
)

// mtgLinePattern matches deck export lines such as
// "1 Kytheon, Hero of Akros / Gideon, Battle-Forged (ORI) 23".
var mtgLinePattern = regexp.MustCompile(`^\d+\s+(.+?)\s+\(([^)]+)\)\s+(.+)`)

// MTGKey identifies one printing by name, set and collector number.
type MTGKey struct {
	Name            string
	SetCode         string
	CollectorNumber string
}

// ParseMTGLine extracts the key from one list line. Lines that do not follow
// the "<qty> <name> (<SET>) <number>" grammar are metadata and report false.
func ParseMTGLine(line string) (MTGKey, bool) {
	m := mtgLinePattern.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return MTGKey{}, false
	}

	name, _, _ := strings.Cut(m[1], "/")
	return MTGKey{
		Name:            strings.TrimSpace(name),
		SetCode:         strings.ToLower(m[2]),
		CollectorNumber: m[3],
	}, true
}

// CardID is the exported id: game prefix, lower-case set code, collector number.
func (k MTGKey) CardID() string {
	return "mtg" + k.SetCode + k.CollectorNumber
}

func (k MTGKey) String() string {
	return fmt.Sprintf("%s (%s %s)", k.Name, strings.ToUpper(k.SetCode), k.CollectorNumber)
}
