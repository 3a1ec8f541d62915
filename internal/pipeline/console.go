package pipeline

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/pzkt/cgs-set-builders/internal/models"
)

// Console prints the per-card progress lines and the final summary.
// Colors follow the fatih/color terminal detection.
type Console struct {
	w  io.Writer
	ok *color.Color
}

func NewConsole(w io.Writer) *Console {
	return &Console{w: w, ok: color.New(color.FgGreen)}
}

// OK reports one exported card.
func (c *Console) OK(name, key string) {
	fmt.Fprintf(c.w, "%s %s (%s)\n", c.ok.Sprint("[OK]"), name, key)
}

// Summary prints the closing line of a run. Skips only show up in the log
// lines written while the run was going.
func (c *Console) Summary(game models.Game, r *Result, dest string) {
	fmt.Fprintf(c.w, "Exported %d %s cards to %s.\n", r.Exported, game.Label(), dest)
}
