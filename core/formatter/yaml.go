package formatter

import (
	"io"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/DevNathan/codemasterpiece-frontend-sub001/domain/result"
)

// YAMLFormatter writes values as YAML. Values pass through their JSON form
// first so the keys match the API's field names.
type YAMLFormatter struct{}

// Name returns the formatter name.
func (YAMLFormatter) Name() string { return "yaml" }

// Format writes v as YAML.
func (f YAMLFormatter) Format(w io.Writer, v any, _ FormatOptions) error {
	return f.encode(w, v)
}

// FormatError writes an error: mapping.
func (f YAMLFormatter) FormatError(w io.Writer, err *result.Error) error {
	return f.encode(w, map[string]any{"error": err})
}

func (YAMLFormatter) encode(w io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var tree any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return err
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(tree); err != nil {
		return err
	}
	return enc.Close()
}
