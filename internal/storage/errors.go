package storage

import "errors"

// ErrMalformedDocument is returned when the data file parses but is missing
// required top-level keys, or does not parse as JSON at all. Callers match
// with errors.Is and typically fall back to a default document.
var ErrMalformedDocument = errors.New("malformed data file")
