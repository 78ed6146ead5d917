package tillbook

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
)

// jsonRecord builds a JSON object whose keys keep the order they were added
// in, so that persisted records read the same from one line to the next.
// Its zero value is an empty object.
type jsonRecord struct {
	buf bytes.Buffer
	err error
}

// Field adds key with the JSON encoding of value.
func (r *jsonRecord) Field(key string, value any) *jsonRecord {
	if r.err != nil {
		return r
	}
	raw, err := json.Marshal(value)
	if err != nil {
		r.err = fmt.Errorf("cannot encode %q: %w", key, err)
		return r
	}
	if r.buf.Len() > 0 {
		r.buf.WriteByte(',')
	}
	k, _ := json.Marshal(key)
	r.buf.Write(k)
	r.buf.WriteByte(':')
	r.buf.Write(raw)
	return r
}

// OmitEmpty adds key unless value is nil or the zero value of its type.
func (r *jsonRecord) OmitEmpty(key string, value any) *jsonRecord {
	if v := reflect.ValueOf(value); !v.IsValid() || v.IsZero() {
		return r
	}
	return r.Field(key, value)
}

// MarshalJSON returns the object, or the first encoding error.
func (r *jsonRecord) MarshalJSON() ([]byte, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]byte, 0, r.buf.Len()+2)
	out = append(out, '{')
	out = append(out, r.buf.Bytes()...)
	return append(out, '}'), nil
}
