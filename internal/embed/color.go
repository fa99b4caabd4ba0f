package embed

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
)

// Color is the accent color of an embed as 24-bit RGB value.
type Color int

const maxColor = 0xFFFFFF

// Named colors
const (
	ColorDefault Color = 0x000000
	ColorBlurple Color = 0x7289DA
	ColorGold    Color = 0xF1C40F
	ColorLatte   Color = 0xECCAB3
	ColorOrange  Color = 0xE67E22
	ColorRed     Color = 0xE74C3C
)

// DefaultColor is used for embeds which are created without a color.
const DefaultColor = ColorBlurple

var palette = map[string]Color{
	"blurple":      ColorBlurple,
	"dark_blue":    0x206694,
	"dark_gold":    0xC27C0E,
	"dark_green":   0x1F8B4C,
	"dark_grey":    0x607D8B,
	"dark_magenta": 0xAD1457,
	"dark_orange":  0xA84300,
	"dark_purple":  0x71368A,
	"dark_red":     0x992D22,
	"dark_teal":    0x11806A,
	"darker_grey":  0x546E7A,
	"default":      ColorDefault,
	"gold":         ColorGold,
	"green":        0x2ECC71,
	"greyple":      0x99AAB5,
	"latte":        ColorLatte,
	"light_grey":   0x979C9F,
	"lighter_grey": 0x95A5A6,
	"magenta":      0xE91E63,
	"orange":       ColorOrange,
	"purple":       0x9B59B6,
	"red":          ColorRed,
	"teal":         0x1ABC9C,
	"blue":         0x3498DB,
}

// ColorNames returns the names of all palette colors in alphabetical order.
func ColorNames() []string {
	return slices.Sorted(maps.Keys(palette))
}

// ColorByName returns the palette color with the given name.
// Names are case-insensitive.
func ColorByName(name string) (Color, bool) {
	c, ok := palette[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}

// IsValid reports whether c is a 24-bit RGB value.
func (c Color) IsValid() bool {
	return c >= 0 && c <= maxColor
}

// String returns the color in hex notation, e.g. "#F1C40F".
func (c Color) String() string {
	return fmt.Sprintf("#%06X", int(c))
}

// ParseColor resolves v into a color.
// Accepted are colors, integers, palette names and hex strings like "#F1C40F".
// An unknown name returns an [ErrUnknownColor] error. There is no fallback color.
func ParseColor(v any) (Color, error) {
	var c Color
	switch x := v.(type) {
	case Color:
		c = x
	case string:
		if p, ok := ColorByName(x); ok {
			return p, nil
		}
		h, ok := strings.CutPrefix(strings.TrimSpace(x), "#")
		if !ok {
			return 0, &ValidationError{Field: "color", Value: v, Err: ErrUnknownColor}
		}
		n, err := strconv.ParseUint(h, 16, 32)
		if err != nil || len(h) != 6 {
			return 0, &ValidationError{Field: "color", Value: v, Reason: "malformed hex color", Err: ErrUnknownColor}
		}
		c = Color(n)
	default:
		n, ok := asInt(v)
		if !ok {
			return 0, shapeError("color", v, "must be an integer or a color name")
		}
		c = Color(n)
	}
	if !c.IsValid() {
		return 0, &ValidationError{Field: "color", Value: v, Reason: "must be between 0 and 0xFFFFFF", Err: ErrLimitExceeded}
	}
	return c, nil
}
