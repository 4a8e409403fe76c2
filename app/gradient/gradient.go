// Package gradient evaluates, serialises and edits multi-stop colour
// gradients.
//
// A gradient is a Descriptor: a shape (Type), a set of Stops, and the
// shape's parameter (Angle for Linear and Angular, Radius for Radial and
// Diamond). Stops may be stored in any order; they are stable-sorted by offset
// whenever they are evaluated or serialised.
package gradient

import (
	"cmp"
	"math"
	"slices"
	"strings"

	"github.com/bvisness/flowstyle/app/color"
	"github.com/bvisness/flowstyle/util"
	"golang.org/x/text/cases"
)

type Type int

const (
	Linear Type = iota
	Radial
	Angular
	Diamond
)

var typeNames = map[Type]string{
	Linear:  "Linear",
	Radial:  "Radial",
	Angular: "Angular",
	Diamond: "Diamond",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return typeNames[Linear]
}

// ParseType maps a type name to a Type, ignoring case. Unknown names are
// Linear.
func ParseType(name string) Type {
	key := cases.Fold().String(strings.TrimSpace(name))
	for t, n := range typeNames {
		if cases.Fold().String(n) == key {
			return t
		}
	}
	return Linear
}

const (
	DefaultStartColor = "#63D0CD"
	DefaultEndColor   = "#4B3EFE"

	MinRadius     = 10
	MaxRadius     = 200
	DefaultRadius = 100
)

// Stop is one colour on the ramp. Opacity is a percentage and is taken
// literally, so a zero Opacity is fully transparent; use NewStop for an
// opaque stop.
type Stop struct {
	Color   string
	Offset  float64 // 0-100
	Opacity float64 // 0-100
}

func NewStop(hex string, offset float64) Stop {
	return Stop{Color: hex, Offset: offset, Opacity: 100}
}

// SortStops returns a copy of stops sorted by offset. Stops with equal
// offsets keep their relative order.
func SortStops(stops []Stop) []Stop {
	sorted := slices.Clone(stops)
	slices.SortStableFunc(sorted, func(a, b Stop) int {
		return cmp.Compare(a.Offset, b.Offset)
	})
	return sorted
}

// ColorAtOffset returns the colour of the ramp formed by stops at the given
// offset. Offsets outside the stops are clamped to the end colours. Opacity is
// not interpolated.
func ColorAtOffset(offset float64, stops []Stop) string {
	if len(stops) == 0 {
		return color.White
	}

	sorted := SortStops(stops)
	first, last := sorted[0], sorted[len(sorted)-1]
	if offset <= first.Offset {
		return first.Color
	}
	if offset >= last.Offset {
		return last.Color
	}

	for i := 0; i < len(sorted)-1; i++ {
		s1, s2 := sorted[i], sorted[i+1]
		if offset < s1.Offset || offset > s2.Offset {
			continue
		}

		var ratio float64
		if span := s2.Offset - s1.Offset; span > 0 {
			ratio = (offset - s1.Offset) / span
		}

		return color.Blend(s1.Color, s2.Color, ratio)
	}

	// Unreachable for sorted stops.
	return last.Color
}

// GenerateString serialises a gradient as a CSS background value. It returns
// "" when fewer than two stops are given.
func GenerateString(t Type, stops []Stop, angle, radius float64) string {
	if len(stops) < 2 {
		return ""
	}

	sorted := SortStops(stops)
	full := stopTerms(sorted, 1)
	scaled := stopTerms(sorted, radius/100)

	switch t {
	case Radial:
		return "radial-gradient(circle at center, " + scaled + ")"
	case Angular:
		return "conic-gradient(from " + color.FormatNumber(angle) + "deg at center, " + full + ")"
	case Diamond:
		// Four linear ramps, each covering one quadrant and running from the
		// centre out to its corner.
		corners := []string{"top left", "top right", "bottom left", "bottom right"}
		layers := util.Map(corners, func(corner string) string {
			return "linear-gradient(to " + corner + ", " + scaled + ") " + corner + " / 51% 51% no-repeat"
		})
		return strings.Join(layers, ", ")
	default:
		return "linear-gradient(" + color.FormatNumber(angle) + "deg, " + full + ")"
	}
}

func stopTerms(sorted []Stop, scale float64) string {
	terms := util.Map(sorted, func(s Stop) string {
		return color.RGBA(s.Color, s.Opacity/100) + " " + color.FormatNumber(math.Round(s.Offset*scale*100)/100) + "%"
	})
	return strings.Join(terms, ", ")
}
