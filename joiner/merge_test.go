package joiner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeepMerge(t *testing.T) {
	tests := []struct {
		name   string
		first  any
		second any
		want   any
	}{
		{"second scalar wins", "a", "b", "b"},
		{"nil keeps first", "a", nil, "a"},
		{"nil onto nothing", nil, nil, nil},
		{"mapping onto nothing", nil, map[string]any{"a": 1}, map[string]any{"a": 1}},
		{"scalar replaced by mapping", "a", map[string]any{"a": 1}, map[string]any{"a": 1}},
		{"mapping replaced by scalar", map[string]any{"a": 1}, "b", "b"},
		{
			name:   "lists are replaced",
			first:  []any{"a", "b", "c"},
			second: []any{"z"},
			want:   []any{"z"},
		},
		{
			name:   "recursive mapping merge",
			first:  map[string]any{"get": map[string]any{"summary": "one", "tags": []any{"a"}}},
			second: map[string]any{"get": map[string]any{"summary": "two"}, "post": map[string]any{}},
			want: map[string]any{
				"get":  map[string]any{"summary": "two", "tags": []any{"a"}},
				"post": map[string]any{},
			},
		},
		{
			name:   "nested null protects existing value",
			first:  map[string]any{"description": "kept", "deprecated": false},
			second: map[string]any{"description": nil, "deprecated": true},
			want:   map[string]any{"description": "kept", "deprecated": true},
		},
		{
			name:   "nested null recorded where nothing existed",
			first:  map[string]any{},
			second: map[string]any{"description": nil},
			want:   map[string]any{"description": nil},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeepMerge(tt.first, tt.second))
		})
	}
}

func TestDeepMerge_DoesNotAlias(t *testing.T) {
	first := map[string]any{"a": map[string]any{"x": 1}, "l": []any{1}}
	second := map[string]any{"b": map[string]any{"y": 2}}

	out := DeepMerge(first, second).(map[string]any)
	out["a"].(map[string]any)["x"] = 99
	out["b"].(map[string]any)["y"] = 99
	out["l"].([]any)[0] = 99

	assert.Equal(t, 1, first["a"].(map[string]any)["x"])
	assert.Equal(t, 1, first["l"].([]any)[0])
	assert.Equal(t, 2, second["b"].(map[string]any)["y"])
}
