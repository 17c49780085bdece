package result

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/goccy/go-json"
)

// FieldError holds the server-reported messages for one form field path.
type FieldError struct {
	Path     string
	Messages []string
}

// Last returns the message a form should display, the last one reported.
func (f FieldError) Last() string {
	if len(f.Messages) == 0 {
		return ""
	}
	return f.Messages[len(f.Messages)-1]
}

// FieldErrors is the wire object {path: [messages]} kept in wire key order.
type FieldErrors []FieldError

// Get returns the messages reported for path.
func (fe FieldErrors) Get(path string) ([]string, bool) {
	for _, f := range fe {
		if f.Path == path {
			return f.Messages, true
		}
	}
	return nil, false
}

// Paths returns the reported paths in wire order.
func (fe FieldErrors) Paths() []string {
	paths := make([]string, len(fe))
	for i, f := range fe {
		paths[i] = f.Path
	}
	return paths
}

// Add appends messages for path, merging into an existing entry.
func (fe FieldErrors) Add(path string, messages ...string) FieldErrors {
	for i := range fe {
		if fe[i].Path == path {
			fe[i].Messages = append(fe[i].Messages, messages...)
			return fe
		}
	}
	return append(fe, FieldError{Path: path, Messages: messages})
}

// MarshalJSON writes the object with keys in slice order.
func (fe FieldErrors) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range fe {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Path)
		if err != nil {
			return nil, err
		}
		msgs := f.Messages
		if msgs == nil {
			msgs = []string{}
		}
		val, err := json.Marshal(msgs)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads the object token by token so that key order survives.
// Values may be a string array or a single string; null entries are dropped.
func (fe *FieldErrors) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("field errors: %w", err)
	}
	if tok == nil {
		*fe = nil
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return errors.New("field errors: expected object")
	}

	var out FieldErrors
	for {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("field errors: %w", err)
		}
		if d, ok := tok.(json.Delim); ok && d == '}' {
			break
		}
		path, ok := tok.(string)
		if !ok {
			return errors.New("field errors: expected key")
		}
		msgs, err := readMessages(dec)
		if err != nil {
			return fmt.Errorf("field errors %q: %w", path, err)
		}
		if msgs == nil {
			continue
		}
		out = out.Add(path, msgs...)
	}

	*fe = out
	return nil
}

func readMessages(dec *json.Decoder) ([]string, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch v := tok.(type) {
	case nil:
		return nil, nil
	case string:
		return []string{v}, nil
	case json.Delim:
		if v != '[' {
			return nil, errors.New("expected string or array")
		}
	default:
		return nil, errors.New("expected string or array")
	}

	msgs := []string{}
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		if d, ok := tok.(json.Delim); ok && d == ']' {
			return msgs, nil
		}
		s, ok := tok.(string)
		if !ok {
			return nil, errors.New("expected string message")
		}
		msgs = append(msgs, s)
	}
}
