package rmatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandMacro(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		found    bool
	}{
		{name: "uuid", input: "uuid", expected: `[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`, found: true},
		{name: "int", input: "int", expected: `[0-9]+`, found: true},
		{name: "float", input: "float", expected: `[0-9]*\.?[0-9]+`, found: true},
		{name: "slug", input: "slug", expected: `[a-zA-Z0-9]+(?:-[a-zA-Z0-9]+)*`, found: true},
		{name: "alpha", input: "alpha", expected: `[a-zA-Z]+`, found: true},
		{name: "alphanum", input: "alphanum", expected: `[a-zA-Z0-9]+`, found: true},
		{name: "date", input: "date", expected: `[0-9]{4}-[0-9]{2}-[0-9]{2}`, found: true},
		{name: "hex", input: "hex", expected: `[0-9a-fA-F]+`, found: true},
		{name: "unknown", input: "[0-9]+", found: false},
		{name: "empty string", input: "", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, ok := expandMacro(tt.input)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.expected, src)
		})
	}
}

func TestMacrosCompile(t *testing.T) {
	for name := range patternMacros {
		t.Run(name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.NotNil(t, captureMacro(name, "v", true))
				assert.NotNil(t, captureMacro(name, "v", false))
			})
		})
	}

	assert.Nil(t, captureMacro("unknown", "v", true))
}

func TestMacroMatch(t *testing.T) {
	tests := []struct {
		macro string
		valid []string
		bad   []string
	}{
		{macro: "uuid", valid: []string{"550e8400-e29b-41d4-a716-446655440000"}, bad: []string{"550e8400", "550e8400-e29b-41d4-a716-44665544000z"}},
		{macro: "int", valid: []string{"0", "42"}, bad: []string{"-1", "4x", "1.5"}},
		{macro: "float", valid: []string{"3.14", "42", ".5"}, bad: []string{"3.", "a"}},
		{macro: "slug", valid: []string{"my-post-title", "post"}, bad: []string{"-post", "post-", "my_post"}},
		{macro: "alpha", valid: []string{"hello"}, bad: []string{"hello1"}},
		{macro: "alphanum", valid: []string{"abc123"}, bad: []string{"abc-123"}},
		{macro: "date", valid: []string{"2024-01-15"}, bad: []string{"2024-1-15"}},
		{macro: "hex", valid: []string{"deadBEEF"}, bad: []string{"xyz"}},
		{macro: "domain", valid: []string{"example.com", "a.b-c.io"}, bad: []string{"-example.com", "example..com"}},
	}

	for _, tt := range tests {
		t.Run(tt.macro, func(t *testing.T) {
			p := Pattern{captureMacro(tt.macro, "v", true)}
			for _, v := range tt.valid {
				res := RouteMatch(mustRoute(t, v), p)
				require.NotNil(t, res, v)
				assert.Equal(t, map[string]string{"v": v}, RouteCapture(res))
			}
			for _, v := range tt.bad {
				assert.Nil(t, RouteMatch(mustRoute(t, v), p), v)
			}
		})
	}
}
