package request

// Payload is a JSON object body assembled under a field-inclusion policy.
// An empty optional value is omitted, never sent as "": absent and empty
// are the same thing on the wire.
type Payload map[string]any

// NewPayload returns an empty payload.
func NewPayload() Payload {
	return Payload{}
}

// Set always includes key.
func (p Payload) Set(key string, value any) Payload {
	p[key] = value
	return p
}

// SetIfPresent includes key only for a non-empty value.
func (p Payload) SetIfPresent(key, value string) Payload {
	if value != "" {
		p[key] = value
	}
	return p
}

// SetIf includes key only when cond holds.
func (p Payload) SetIf(cond bool, key string, value any) Payload {
	if cond {
		p[key] = value
	}
	return p
}

// Clone returns a deep copy of p. Nested payloads, maps and slices are
// copied; other values are shared.
func (p Payload) Clone() Payload {
	if p == nil {
		return nil
	}
	out := make(Payload, len(p))
	for k, v := range p {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case Payload:
		return t.Clone()
	case map[string]any:
		return map[string]any(Payload(t).Clone())
	case []any:
		if t == nil {
			return t
		}
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneValue(e)
		}
		return out
	case []string:
		return append([]string(nil), t...)
	case map[string]string:
		out := make(map[string]string, len(t))
		for k, e := range t {
			out[k] = e
		}
		return out
	}
	return v
}
