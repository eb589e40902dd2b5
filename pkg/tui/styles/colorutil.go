package styles

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// ParseHexRGB parses a hex color string (#RGB or #RRGGBB) into normalized
// [0,1] sRGB components.
func ParseHexRGB(hex string) (r, g, b float64, ok bool) {
	h := strings.TrimPrefix(hex, "#")
	if len(h) == len(hex) {
		return 0, 0, 0, false
	}
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return 0, 0, 0, false
	}

	r8, err := strconv.ParseUint(h[0:2], 16, 8)
	if err != nil {
		return 0, 0, 0, false
	}
	g8, err := strconv.ParseUint(h[2:4], 16, 8)
	if err != nil {
		return 0, 0, 0, false
	}
	b8, err := strconv.ParseUint(h[4:6], 16, 8)
	if err != nil {
		return 0, 0, 0, false
	}

	return float64(r8) / 255.0, float64(g8) / 255.0, float64(b8) / 255.0, true
}

// RGBToHex formats normalized [0,1] sRGB components as a hex color string.
func RGBToHex(r, g, b float64) string {
	return fmt.Sprintf("#%02x%02x%02x", clamp8(r), clamp8(g), clamp8(b))
}

// BlendHex composites top over base at the given opacity, mixing in linear
// light so mid-fade frames don't go muddy. Invalid inputs return base.
func BlendHex(base, top string, opacity float64) string {
	br, bg, bb, ok := ParseHexRGB(base)
	if !ok {
		return base
	}
	tr, tg, tb, ok := ParseHexRGB(top)
	if !ok {
		return base
	}
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}

	mix := func(b, t float64) float64 {
		lb := srgbToLinear(b)
		lt := srgbToLinear(t)
		return linearToSRGB(lb + (lt-lb)*opacity)
	}
	return RGBToHex(mix(br, tr), mix(bg, tg), mix(bb, tb))
}

// RelativeLuminanceColor returns the WCAG 2.x relative luminance of a
// color.Color.
func RelativeLuminanceColor(c color.Color) float64 {
	ri, gi, bi, _ := c.RGBA()
	r := float64(ri) / 65535
	g := float64(gi) / 65535
	b := float64(bi) / 65535
	return 0.2126*srgbToLinear(r) + 0.7152*srgbToLinear(g) + 0.0722*srgbToLinear(b)
}

// IsDarkColor reports whether a color reads as a dark background.
func IsDarkColor(c color.Color) bool {
	return RelativeLuminanceColor(c) < 0.5
}

// RelativeLuminanceHex returns the WCAG 2.x relative luminance of a hex
// color string.
func RelativeLuminanceHex(hex string) (float64, bool) {
	r, g, b, ok := ParseHexRGB(hex)
	if !ok {
		return 0, false
	}
	return 0.2126*srgbToLinear(r) + 0.7152*srgbToLinear(g) + 0.0722*srgbToLinear(b), true
}

func srgbToLinear(c float64) float64 {
	if c <= 0.03928 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

func linearToSRGB(c float64) float64 {
	if c <= 0.0031308 {
		return c * 12.92
	}
	return 1.055*math.Pow(c, 1.0/2.4) - 0.055
}

func clamp8(v float64) int {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 255
	}
	return int(v*255 + 0.5)
}
