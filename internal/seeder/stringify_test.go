package seeder

import (
	"encoding/json"
	"testing"

	"playground-seed/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringifyValue(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want string
	}{
		{"string", "lamp.svg", "lamp.svg"},
		{"json number float", json.Number("0.374"), "0.374"},
		{"json number int", json.Number("2000"), "2000"},
		{"json number keeps literal", json.Number("1.0"), "1.0"},
		{"float", 0.052, "0.052"},
		{"float integral", 2000.0, "2000"},
		{"int", 2000, "2000"},
		{"int64", int64(1594418400), "1594418400"},
		{"true", true, "True"},
		{"false", false, "False"},
		{"null", nil, "None"},
		{"list", []any{json.Number("1"), "a"}, `[1,"a"]`},
		{"object", map[string]any{"k": true}, `{"k":true}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := StringifyValue(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestStringify_AllValuesText(t *testing.T) {
	fields, err := Stringify(models.Attributes{
		"x":          json.Number("0.374"),
		"y":          0.552,
		"path":       "tiles/blue1.svg",
		"toggleable": true,
		"state":      0,
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"x":          "0.374",
		"y":          "0.552",
		"path":       "tiles/blue1.svg",
		"toggleable": "True",
		"state":      "0",
	}, fields)
}

func TestStringify_Unencodable(t *testing.T) {
	_, err := Stringify(models.Attributes{"bad": make(chan int)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"bad"`)
}
