package quizexport

import (
	"encoding/json"
	"io"
)

// newEncoder returns a JSON encoder with the export settings: two-space
// indent, HTML escaping off so arrows and glyphs stay readable.
func newEncoder(w io.Writer) *json.Encoder {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc
}
