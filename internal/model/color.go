package model

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidColor is returned when a colour string cannot be parsed.
var ErrInvalidColor = errors.New("invalid color")

// Color is an 8-bit-per-channel RGBA colour, non-premultiplied.
// Satisfies image/color.Color so it can be handed directly to image/draw.
type Color struct {
	R uint8
	G uint8
	B uint8
	A uint8
}

// Stock colours, same channel values as the engine's built-in palette.
var (
	White     = RGB(255, 255, 255)
	Black     = RGB(0, 0, 0)
	Red       = RGB(255, 0, 0)
	Green     = RGB(0, 255, 0)
	Blue      = RGB(0, 0, 255)
	Yellow    = RGB(255, 255, 0)
	Cyan      = RGB(0, 255, 255)
	Magenta   = RGB(255, 0, 255)
	Orange    = RGB(243, 156, 18)
	Purple    = RGB(169, 7, 228)
	Turquoise = RGB(26, 188, 156)
	Silver    = RGB(189, 195, 199)
	Emerald   = RGB(46, 204, 113)
	Brown     = RGB(139, 69, 19)
)

var namedColors = map[string]Color{
	"white":     White,
	"black":     Black,
	"red":       Red,
	"green":     Green,
	"blue":      Blue,
	"yellow":    Yellow,
	"cyan":      Cyan,
	"magenta":   Magenta,
	"orange":    Orange,
	"purple":    Purple,
	"turquoise": Turquoise,
	"silver":    Silver,
	"emerald":   Emerald,
	"brown":     Brown,
}

// RGB creates an opaque colour.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// NewColor creates a colour with explicit alpha.
func NewColor(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// ParseColor parses "#RRGGBB", "#RRGGBBAA" or a stock colour name (case-insensitive).
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if c, ok := namedColors[strings.ToLower(s)]; ok {
		return c, nil
	}
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || (len(hex) != 6 && len(hex) != 8) {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	if len(hex) == 6 {
		return RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
	}
	return NewColor(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

// Hex returns "#RRGGBB" for opaque colours and "#RRGGBBAA" otherwise.
func (c Color) Hex() string {
	if c.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

// Packed returns the colour as 0xRRGGBBAA.
func (c Color) Packed() uint32 {
	return uint32(c.R)<<24 | uint32(c.G)<<16 | uint32(c.B)<<8 | uint32(c.A)
}

// UnpackColor is the inverse of Packed.
func UnpackColor(v uint32) Color {
	return NewColor(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v))
}

// WithAlpha returns a copy with alpha replaced (immutable pattern).
func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// RGBA implements image/color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

func (c Color) String() string {
	return c.Hex()
}

// UnmarshalYAML accepts a colour string (see ParseColor) or a mapping {r, g, b, a}.
// A missing alpha in the mapping form means opaque.
func (c *Color) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		parsed, err := ParseColor(node.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		*c = parsed
		return nil
	case yaml.MappingNode:
		m := struct {
			R uint8 `yaml:"r"`
			G uint8 `yaml:"g"`
			B uint8 `yaml:"b"`
			A *uint8 `yaml:"a"`
		}{}
		if err := node.Decode(&m); err != nil {
			return fmt.Errorf("decoding color: %w", err)
		}
		*c = RGB(m.R, m.G, m.B)
		if m.A != nil {
			c.A = *m.A
		}
		return nil
	default:
		return fmt.Errorf("line %d: %w: expected string or mapping", node.Line, ErrInvalidColor)
	}
}

// MarshalYAML writes the hex form.
func (c Color) MarshalYAML() (any, error) {
	return c.Hex(), nil
}
