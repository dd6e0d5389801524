//go:build !wasm

package palette

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDarken_KnownValues(t *testing.T) {
	tests := []struct {
		name   string
		color  string
		factor float64
		want   string
	}{
		{"white halved", "#FFFFFF", 0.5, "#7f7f7f"},
		{"black stays black", "#000000", 0.8, "#000000"},
		{"hover shade", "#4CAF50", 0.8, "#3c8c40"},
		{"factor one is identity", "#2196F3", 1, "#2196f3"},
		{"factor zero", "#F44336", 0, "#000000"},
		{"short form", "#fff", 0.5, "#7f7f7f"},
		{"named color", "gray", 0.8, "#666666"},
		{"named color is case insensitive", "White", 0.5, "#7f7f7f"},
		{"factor above one clamps", "#C0C0C0", 2, "#ffffff"},
		{"negative factor clamps", "#C0C0C0", -1, "#000000"},
		{"NaN factor clamps to zero", "#4CAF50", math.NaN(), "#000000"},
		{"infinite factor clamps to max", "#FFFFFF", math.Inf(1), "#ffffff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Darken(tt.color, tt.factor)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDarken_NeverBrightens(t *testing.T) {
	samples := []string{"#000000", "#FFFFFF", "#4CAF50", "#F44336", "#2196F3", "#FFC107", "#010203", "#fefdfc"}

	for _, s := range samples {
		in, err := Parse(s)
		require.NoError(t, err)

		for f := 0.0; f <= 1.0; f += 0.05 {
			out := in.Darken(f)
			assert.LessOrEqual(t, out.R, in.R, "%s factor %.2f red", s, f)
			assert.LessOrEqual(t, out.G, in.G, "%s factor %.2f green", s, f)
			assert.LessOrEqual(t, out.B, in.B, "%s factor %.2f blue", s, f)
		}
	}
}

func TestDarken_RejectsMalformedColors(t *testing.T) {
	for _, bad := range []string{"", "#", "#12345", "#12345G", "#1234567", "notacolor", "rgb(1,2,3)"} {
		_, err := Darken(bad, 0.8)
		assert.ErrorIs(t, err, ErrInvalidColorFormat, "input %q", bad)
	}
}

func TestParse(t *testing.T) {
	c, err := Parse("#4caf50")
	require.NoError(t, err)
	assert.Equal(t, RGB{R: 0x4c, G: 0xaf, B: 0x50}, c)
	assert.Equal(t, "#4caf50", c.Hex())

	c, err = Parse("black")
	require.NoError(t, err)
	assert.Equal(t, RGB{}, c)
}
