// Package palette parses CSS color values and derives hover shades from them.
package palette

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ErrInvalidColorFormat is returned when a color is neither a #rgb/#rrggbb
// hex string nor a CSS color name.
var ErrInvalidColorFormat = errors.New("invalid color format")

// RGB is an opaque color with 8-bit channels.
type RGB struct {
	R, G, B uint8
}

// Parse resolves a hex color ("#4CAF50", "#fff") or a CSS color name ("gray").
func Parse(color string) (RGB, error) {
	s := strings.TrimSpace(color)

	if strings.HasPrefix(s, "#") {
		if !isHex(s[1:]) || (len(s) != 7 && len(s) != 4) {
			return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, color)
		}

		c, err := colorful.Hex(strings.ToLower(s))
		if err != nil {
			return RGB{}, fmt.Errorf("%w: %q: %v", ErrInvalidColorFormat, color, err)
		}

		return fromColorful(c), nil
	}

	named, ok := colornames.Map[strings.ToLower(s)]
	if !ok {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, color)
	}

	c, ok := colorful.MakeColor(named)
	if !ok {
		return RGB{}, fmt.Errorf("%w: %q is transparent", ErrInvalidColorFormat, color)
	}

	return fromColorful(c), nil
}

// Hex formats the color as lowercase #rrggbb.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Darken multiplies every channel by factor, flooring and clamping to [0,255].
// For factor in [0,1] no channel gets brighter.
func (c RGB) Darken(factor float64) RGB {
	return RGB{
		R: scaleChannel(c.R, factor),
		G: scaleChannel(c.G, factor),
		B: scaleChannel(c.B, factor),
	}
}

// Darken parses color and returns its darkened shade as #rrggbb.
func Darken(color string, factor float64) (string, error) {
	c, err := Parse(color)
	if err != nil {
		return "", err
	}

	return c.Darken(factor).Hex(), nil
}

func scaleChannel(v uint8, factor float64) uint8 {
	scaled := math.Floor(float64(v) * factor)

	switch {
	case math.IsNaN(scaled), scaled < 0:
		return 0
	case scaled > 255:
		return 255
	default:
		return uint8(scaled)
	}
}

func fromColorful(c colorful.Color) RGB {
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}
}

func isHex(s string) bool {
	if s == "" {
		return false
	}

	for _, ch := range s {
		switch {
		case ch >= '0' && ch <= '9':
		case ch >= 'a' && ch <= 'f':
		case ch >= 'A' && ch <= 'F':
		default:
			return false
		}
	}

	return true
}
