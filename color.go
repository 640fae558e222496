package flip

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ColorType is the palette a Color is drawn from.
type ColorType uint8

const (
	ColorDefault ColorType = iota // whatever the terminal uses
	ColorANSI                     // 256-color palette index
	ColorRGB                      // 24-bit
)

// Color is a terminal color. The zero value is the terminal default, which
// snapshots carry as "no background".
type Color struct {
	typ ColorType
	// r is the palette index for ANSI colors.
	r, g, b uint8
}

func DefaultColor() Color { return Color{} }

func ANSIColor(index uint8) Color { return Color{typ: ColorANSI, r: index} }

func RGBColor(r, g, b uint8) Color { return Color{typ: ColorRGB, r: r, g: g, b: b} }

// HexColor parses "#rrggbb" or "#rgb". The leading '#' is optional.
func HexColor(s string) (Color, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("hex color %q: want #rgb or #rrggbb", s)
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("hex color %q: %w", s, errors.Unwrap(err))
	}
	return RGBColor(uint8(n>>16), uint8(n>>8), uint8(n)), nil
}

func (c Color) Type() ColorType { return c.typ }

func (c Color) IsDefault() bool { return c.typ == ColorDefault }

// Equal compares palette and components. Unused components are ignored.
func (c Color) Equal(o Color) bool {
	switch {
	case c.typ != o.typ:
		return false
	case c.typ == ColorANSI:
		return c.r == o.r
	case c.typ == ColorRGB:
		return c.r == o.r && c.g == o.g && c.b == o.b
	}
	return true
}

// ansi16RGB maps ANSI colors 0-15 to approximate RGB values.
var ansi16RGB = [16][3]uint8{
	{0, 0, 0},
	{205, 49, 49},
	{13, 188, 121},
	{229, 229, 16},
	{36, 114, 200},
	{188, 63, 188},
	{17, 168, 205},
	{229, 229, 229},
	{102, 102, 102},
	{241, 76, 76},
	{35, 209, 139},
	{245, 245, 67},
	{59, 142, 234},
	{214, 112, 214},
	{41, 184, 219},
	{255, 255, 255},
}

// ToRGBValues returns the red, green, and blue components of any color.
// ANSI colors are approximated; the default color reports (0, 0, 0).
func (c Color) ToRGBValues() (r, g, b uint8) {
	switch c.typ {
	case ColorRGB:
		return c.r, c.g, c.b
	case ColorANSI:
		idx := c.r
		switch {
		case idx < 16:
			rgb := ansi16RGB[idx]
			return rgb[0], rgb[1], rgb[2]
		case idx < 232:
			// 6x6x6 color cube: index = 16 + 36*r + 6*g + b
			idx -= 16
			cube := func(v uint8) uint8 {
				if v == 0 {
					return 0
				}
				return 55 + v*40
			}
			return cube(idx / 36), cube((idx % 36) / 6), cube(idx % 6)
		default:
			gray := 8 + (idx-232)*10
			return gray, gray, gray
		}
	}
	return 0, 0, 0
}

// Lerp blends c toward to by t in [0, 1]. Blending involving the default
// color cannot be expressed, so it switches at the halfway point instead.
func (c Color) Lerp(to Color, t float64) Color {
	if c.IsDefault() || to.IsDefault() {
		if t < 0.5 {
			return c
		}
		return to
	}
	if t <= 0 {
		return c
	}
	if t >= 1 {
		return to
	}
	r1, g1, b1 := c.ToRGBValues()
	r2, g2, b2 := to.ToRGBValues()
	mix := func(a, b uint8) uint8 {
		return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
	}
	return RGBColor(mix(r1, r2), mix(g1, g2), mix(b1, b2))
}

// String renders the color the way a keyframe would carry it.
func (c Color) String() string {
	switch c.typ {
	case ColorANSI:
		return fmt.Sprintf("ansi(%d)", c.r)
	case ColorRGB:
		return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)
	}
	return "default"
}
