package application

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagListUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want TagList
	}{
		{"array", `["work","family"]`, TagList{"work", "family"}},
		{"empty array", `[]`, TagList{}},
		{"null", `null`, TagList{}},
		{"legacy string", `"work, family"`, TagList{"work", "family"}},
		{"legacy single", `"work"`, TagList{"work"}},
		{"legacy messy", `" work ,, family , "`, TagList{"work", "family"}},
		{"legacy empty", `""`, TagList{}},
		{"legacy commas only", `",,,"`, TagList{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got TagList
			require.NoError(t, json.Unmarshal([]byte(tt.in), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTagListUnmarshalRejectsOtherShapes(t *testing.T) {
	for _, in := range []string{`42`, `{"a":1}`, `[1,2]`} {
		var got TagList
		assert.Error(t, json.Unmarshal([]byte(in), &got), "input %s", in)
	}
}
