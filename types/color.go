package types

import (
	"errors"
	"strconv"
	"strings"

	"motionlight/x/mathx"
)

// Color is an 8-bit per channel RGB triple.
type Color struct {
	R, G, B uint8
}

// RGB builds a Color, clamping each channel to [0,255].
func RGB(r, g, b int) Color {
	return Color{
		R: uint8(mathx.Clamp(r, 0, 255)),
		G: uint8(mathx.Clamp(g, 0, 255)),
		B: uint8(mathx.Clamp(b, 0, 255)),
	}
}

// Hex renders "#rrggbb".
func (c Color) Hex() string {
	const digits = "0123456789abcdef"
	b := []byte{'#', 0, 0, 0, 0, 0, 0}
	for i, v := range [3]uint8{c.R, c.G, c.B} {
		b[1+2*i] = digits[v>>4]
		b[2+2*i] = digits[v&0x0f]
	}
	return string(b)
}

func (c Color) String() string { return c.Hex() }

// Named colors.
var (
	Purple  = Color{0xA0, 0x20, 0xF0}
	Red     = Color{0xFF, 0x00, 0x00}
	Green   = Color{0x00, 0xFF, 0x00}
	Blue    = Color{0x00, 0x00, 0xFF}
	Yellow  = Color{0xFF, 0xFF, 0x00}
	Cyan    = Color{0x00, 0xFF, 0xFF}
	Magenta = Color{0xFF, 0x00, 0xFF}
	White   = Color{0xFF, 0xFF, 0xFF}
	Gold    = Color{0xFF, 0xD7, 0x00}
	Black   = Color{} // off
)

var named = map[string]Color{
	"purple":  Purple,
	"red":     Red,
	"green":   Green,
	"blue":    Blue,
	"yellow":  Yellow,
	"cyan":    Cyan,
	"magenta": Magenta,
	"white":   White,
	"gold":    Gold,
	"black":   Black,
}

var ErrBadColor = errors.New("bad_color")

// ParseColor accepts a color name ("gold") or "#rrggbb" / "rrggbb".
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := named[s]; ok {
		return c, nil
	}
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return Color{}, ErrBadColor
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, ErrBadColor
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}
