package grid

import (
	"io"

	"github.com/goccy/go-json"
)

type exportRow struct {
	Name string `json:"name"`
	Club string `json:"club"`
	Note string `json:"note"`
}

// WriteJSON writes the rows as currently displayed, edits included
func (g *Grid) WriteJSON(w io.Writer) error {
	out := make([]exportRow, 0, len(g.rows))
	for _, r := range g.rows {
		out = append(out, exportRow{Name: r.Name(), Club: r.Club(), Note: r.Note()})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
