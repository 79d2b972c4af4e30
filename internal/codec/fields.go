package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"ticketvault/internal/domain"
)

// Fields is a loosely typed listing payload: the raw JSON value of every key
// the client sent. Keeping the raw form lets the codec report type errors per
// field instead of failing on the first one.
type Fields map[string]json.RawMessage

// ParseFields decodes a JSON object. Anything else is rejected.
func ParseFields(data []byte) (Fields, error) {
	var f Fields
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}
	if f == nil {
		return nil, errors.New("payload must be a JSON object")
	}
	return f, nil
}

// FieldsOf encodes a stored listing back into loose fields.
func FieldsOf(l domain.EventListing) (Fields, error) {
	b, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("encode listing: %w", err)
	}
	return ParseFields(b)
}

// Set stores the JSON encoding of v under name.
func (f Fields) Set(name string, v interface{}) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	f[name] = b
	return nil
}

// Has reports whether name is present with a non-null value.
func (f Fields) Has(name string) bool {
	raw, ok := f[name]
	return ok && !isNull(raw)
}

// Merge returns a shallow merge of patch over f. Neither input is modified.
func (f Fields) Merge(patch Fields) Fields {
	out := make(Fields, len(f)+len(patch))
	for k, v := range f {
		out[k] = v
	}
	for k, v := range patch {
		out[k] = v
	}
	return out
}

// Without returns a copy of f minus the named keys.
func (f Fields) Without(names ...string) Fields {
	out := make(Fields, len(f))
	for k, v := range f {
		out[k] = v
	}
	for _, n := range names {
		delete(out, n)
	}
	return out
}

func isNull(raw json.RawMessage) bool {
	return len(bytes.TrimSpace(raw)) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
