package formatter

import (
	"io"

	"github.com/goccy/go-json"

	"github.com/DevNathan/codemasterpiece-frontend-sub001/domain/result"
)

// JSONFormatter writes values with their wire field names.
type JSONFormatter struct{}

// Name returns the formatter name.
func (JSONFormatter) Name() string { return "json" }

// Format writes v as JSON.
func (f JSONFormatter) Format(w io.Writer, v any, opts FormatOptions) error {
	return f.encode(w, v, opts.Compact)
}

// FormatError writes {"error": {...}}.
func (f JSONFormatter) FormatError(w io.Writer, err *result.Error) error {
	return f.encode(w, map[string]any{"error": err}, false)
}

func (JSONFormatter) encode(w io.Writer, data any, compact bool) error {
	encoder := json.NewEncoder(w)
	if !compact {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(data)
}
