package tillbook

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestJSONRecord(t *testing.T) {
	closing := Q(3)
	tests := []struct {
		name  string
		build func(r *jsonRecord)
		want  string
	}{
		{
			name:  "empty object",
			build: func(r *jsonRecord) {},
			want:  `{}`,
		},
		{
			name: "fields keep their order",
			build: func(r *jsonRecord) {
				r.Field("name", "Bread").Field("quantity", Q(12)).Field("unitPrice", M(4.5))
			},
			want: `{"name":"Bread","quantity":12,"unitPrice":4.5}`,
		},
		{
			name: "omit empty",
			build: func(r *jsonRecord) {
				r.Field("a", 0)
				r.OmitEmpty("b", "")
				r.OmitEmpty("c", (*Quantity)(nil))
				r.OmitEmpty("d", nil)
				r.OmitEmpty("e", &closing)
			},
			want: `{"a":0,"e":3}`,
		},
		{
			name: "keys are escaped",
			build: func(r *jsonRecord) {
				r.Field(`say "hi"`, true)
			},
			want: `{"say \"hi\"":true}`,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var r jsonRecord
			tc.build(&r)
			got, err := r.MarshalJSON()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(got) != tc.want {
				t.Errorf("got %s, want %s", got, tc.want)
			}
		})
	}
}

func TestJSONRecord_Error(t *testing.T) {
	var r jsonRecord
	r.Field("bad", math.Inf(1)).Field("good", 1)
	_, err := r.MarshalJSON()
	if err == nil || !strings.Contains(err.Error(), `"bad"`) {
		t.Fatalf("MarshalJSON() error = %v, want an error naming the key", err)
	}
	var unsupported interface{ Unwrap() error }
	if !errors.As(err, &unsupported) {
		t.Errorf("error %v does not wrap the encoding error", err)
	}
}
