// Package color converts between the hex, RGB and HSV forms of a colour used
// by the style panel. Every function here is total: malformed input falls
// back to white rather than returning an error.
package color

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

const White = "#FFFFFF"

// RGB holds 8-bit channel values. Values outside [0,255] are carried through
// unchanged.
type RGB struct {
	R, G, B int
}

// HSV holds hue in degrees [0,360) and saturation/value as percentages.
type HSV struct {
	H, S, V float64
}

var hexPattern = regexp.MustCompile(`^#?([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// RGBToHex formats a colour as "#RRGGBB". Only the low 24 bits of the packed
// value are kept, so out-of-range channels bleed into their neighbours but the
// result is always seven characters long.
func RGBToHex(r, g, b int) string {
	v := (r<<16 + g<<8 + b) & 0xFFFFFF
	return fmt.Sprintf("#%06X", v)
}

// HexToRGB parses "#RGB", "#RRGGBB" or the same without "#". Anything else
// yields white.
func HexToRGB(hex string) RGB {
	m := hexPattern.FindStringSubmatch(strings.TrimSpace(hex))
	if m == nil {
		return RGB{255, 255, 255}
	}

	digits := m[1]
	if len(digits) == 3 {
		digits = string([]byte{digits[0], digits[0], digits[1], digits[1], digits[2], digits[2]})
	}
	c, err := colorful.Hex("#" + digits)
	if err != nil {
		return RGB{255, 255, 255}
	}
	return fromColorful(c)
}

func (c RGB) toColorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func fromColorful(c colorful.Color) RGB {
	r, g, b := c.RGB255()
	return RGB{int(r), int(g), int(b)}
}

// Blend mixes two hex colours channel by channel in RGB space; t=0 gives a
// and t=1 gives b. Channels round half up.
func Blend(a, b string, t float64) string {
	c1, c2 := HexToRGB(a).toColorful(), HexToRGB(b).toColorful()
	return fromColorful(c1.BlendRgb(c2, t)).Hex()
}

// Hex returns the canonical "#RRGGBB" form of c.
func (c RGB) Hex() string {
	return RGBToHex(c.R, c.G, c.B)
}

// Normalize returns hex in canonical uppercase "#RRGGBB" form, or white if it
// cannot be parsed.
func Normalize(hex string) string {
	return HexToRGB(hex).Hex()
}

// RGBA formats hex with the given alpha fraction as a CSS rgba() term.
func RGBA(hex string, alpha float64) string {
	c := HexToRGB(hex)
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, FormatNumber(alpha))
}

// FormatNumber renders v with the fewest digits that round-trip, so 1 prints
// as "1" and 0.3 as "0.3".
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// RGBToHSV converts 8-bit RGB to HSV. Achromatic colours get hue 0.
func RGBToHSV(r, g, b int) HSV {
	h, sat, v := RGB{r, g, b}.toColorful().Hsv()
	return HSV{H: h, S: sat * 100, V: v * 100}
}

// HSVToRGB converts HSV to 8-bit RGB, rounding each channel. The hue sector
// is taken modulo 6 so that 360 and negative hues wrap; colorful.Hsv has no
// sector for 360 and returns black there.
func HSVToRGB(h, s, v float64) RGB {
	h /= 360
	s /= 100
	v /= 100

	i := int(math.Floor(h * 6))
	f := h*6 - math.Floor(h*6)
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	// Hue 360 (or any multiple) lands on sector 6; wrap it.
	i %= 6
	if i < 0 {
		i += 6
	}

	var r, g, b float64
	switch i {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	case 5:
		r, g, b = v, p, q
	}

	return RGB{
		R: int(math.Round(r * 255)),
		G: int(math.Round(g * 255)),
		B: int(math.Round(b * 255)),
	}
}

// HexToHSV parses hex and converts it to HSV.
func HexToHSV(hex string) HSV {
	c := HexToRGB(hex)
	return RGBToHSV(c.R, c.G, c.B)
}

// HSVToHex converts an HSV colour to "#RRGGBB".
func HSVToHex(c HSV) string {
	return HSVToRGB(c.H, c.S, c.V).Hex()
}
