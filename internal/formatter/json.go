package formatter

import (
	"encoding/json"
	"io"
)

// WriteJSON writes v as indented JSON, for the --output json mode shared by
// every command.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
