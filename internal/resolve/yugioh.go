package resolve

import (
	"errors"
	"fmt"
	"strings"
)

// ErrShortRow is returned for CSV rows without id, name and type columns.
var ErrShortRow = errors.New("row needs id, name and type columns")

// YugiohRow is one cube CSV row. Columns after the type are ignored.
type YugiohRow struct {
	ID   string
	Name string
	Type string
}

func ParseYugiohRow(record []string) (YugiohRow, error) {
	if len(record) < 3 {
		return YugiohRow{}, fmt.Errorf("%w: got %d", ErrShortRow, len(record))
	}
	return YugiohRow{
		ID:   strings.TrimSpace(record[0]),
		Name: strings.TrimSpace(record[1]),
		Type: strings.TrimSpace(record[2]),
	}, nil
}

// CardID is the exported id for the row.
func (r YugiohRow) CardID() string {
	return "ygo" + r.ID
}

// Kind is the lower-cased last word of the type column: "monster", "spell",
// "trap" or anything else the cube file contains.
func (r YugiohRow) Kind() string {
	fields := strings.Fields(r.Type)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(fields[len(fields)-1])
}
