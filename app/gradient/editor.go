package gradient

import (
	"cmp"
	"math"
	"slices"

	"github.com/bvisness/flowstyle/app/color"
	"github.com/bvisness/flowstyle/util"
)

// Descriptor is a complete gradient. Fill is the serialised form of the
// other fields; every editing function below returns a Descriptor with Fill
// already refreshed.
type Descriptor struct {
	Type   Type
	Stops  []Stop
	Angle  float64
	Radius float64
	Fill   string
}

// Default returns the two-stop teal to indigo linear ramp.
func Default() Descriptor {
	d := Descriptor{
		Type: Linear,
		Stops: []Stop{
			NewStop(DefaultStartColor, 0),
			NewStop(DefaultEndColor, 100),
		},
		Angle:  0,
		Radius: DefaultRadius,
	}
	return d.refresh()
}

// OrDefault returns *d, or the default gradient if d is nil.
func OrDefault(d *Descriptor) Descriptor {
	if d == nil {
		return Default()
	}
	return d.clone().refresh()
}

// String renders the descriptor. It is equivalent to Fill on any descriptor
// returned from this package.
func (d Descriptor) String() string {
	return GenerateString(d.Type, d.Stops, d.Angle, d.Radius)
}

// Sorted returns the stops in ramp order.
func (d Descriptor) Sorted() []Stop {
	return SortStops(d.Stops)
}

func (d Descriptor) clone() Descriptor {
	d.Stops = slices.Clone(d.Stops)
	return d
}

func (d Descriptor) refresh() Descriptor {
	d.Fill = d.String()
	return d
}

func (d Descriptor) hasStop(i int) bool {
	return i >= 0 && i < len(d.Stops)
}

// ClampOffset limits an offset to [0,100] and rounds it to a whole percent.
func ClampOffset(offset float64) float64 {
	return math.Round(util.Clamp(offset, 0, 100))
}

// AddStop inserts a stop at offset whose colour continues the existing ramp.
// It returns the new descriptor and the index of the inserted stop.
func AddStop(d Descriptor, offset float64) (Descriptor, int) {
	offset = ClampOffset(offset)
	stop := NewStop(ColorAtOffset(offset, d.Stops), offset)

	res := d.clone()
	res.Stops = SortStops(append(res.Stops, stop))

	// The new stop sorts after any existing stops at the same offset.
	idx := len(res.Stops) - 1
	for i, s := range res.Stops {
		if s.Offset > offset {
			idx = i - 1
			break
		}
	}
	return res.refresh(), idx
}

// RemoveStop deletes stop i. A gradient keeps at least two stops, so this is
// a no-op when only two remain.
func RemoveStop(d Descriptor, i int) Descriptor {
	if len(d.Stops) <= 2 || !d.hasStop(i) {
		return d.clone().refresh()
	}
	res := d.clone()
	res.Stops = slices.Delete(res.Stops, i, i+1)
	return res.refresh()
}

// MoveStop sets the offset of stop i. Stops are not re-sorted, so i keeps
// referring to the same stop for the rest of a drag.
func MoveStop(d Descriptor, i int, offset float64) Descriptor {
	res := d.clone()
	if res.hasStop(i) {
		res.Stops[i].Offset = ClampOffset(offset)
	}
	return res.refresh()
}

// SetStopColor recolours stop i. The colour is stored in canonical
// "#RRGGBB" form, white if it cannot be parsed.
func SetStopColor(d Descriptor, i int, hex string) Descriptor {
	res := d.clone()
	if res.hasStop(i) {
		res.Stops[i].Color = color.Normalize(hex)
	}
	return res.refresh()
}

func SetStopOpacity(d Descriptor, i int, opacity float64) Descriptor {
	res := d.clone()
	if res.hasStop(i) {
		res.Stops[i].Opacity = util.Clamp(opacity, 0, 100)
	}
	return res.refresh()
}

// Sort puts the stops of d in ramp order and reports where stop i ended up.
func Sort(d Descriptor, i int) (Descriptor, int) {
	order := make([]int, len(d.Stops))
	for k := range order {
		order[k] = k
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(d.Stops[a].Offset, d.Stops[b].Offset)
	})

	res := d.clone()
	newIdx := -1
	for k, src := range order {
		res.Stops[k] = d.Stops[src]
		if src == i {
			newIdx = k
		}
	}
	return res.refresh(), newIdx
}

// Reverse mirrors the ramp: every offset becomes 100-offset.
func Reverse(d Descriptor) Descriptor {
	res := d.clone()
	for i := range res.Stops {
		res.Stops[i].Offset = 100 - res.Stops[i].Offset
	}
	res.Stops = SortStops(res.Stops)
	return res.refresh()
}

// Reset discards all edits.
func Reset() Descriptor {
	return Default()
}

func SetType(d Descriptor, t Type) Descriptor {
	res := d.clone()
	res.Type = t
	return res.refresh()
}

func SetAngle(d Descriptor, angle float64) Descriptor {
	res := d.clone()
	res.Angle = util.Clamp(angle, 0, 360)
	return res.refresh()
}

func SetRadius(d Descriptor, radius float64) Descriptor {
	res := d.clone()
	res.Radius = util.Clamp(radius, MinRadius, MaxRadius)
	return res.refresh()
}

// Normalize brings a descriptor from an untrusted source into range: stops
// are sorted and clamped, the shape parameters are clamped, and a gradient
// with fewer than two stops is replaced by the default ramp.
func Normalize(d Descriptor) Descriptor {
	if len(d.Stops) < 2 {
		def := Default()
		def.Type = d.Type
		d.Stops = def.Stops
	}
	if _, ok := typeNames[d.Type]; !ok {
		d.Type = Linear
	}

	res := d.clone()
	for i := range res.Stops {
		res.Stops[i].Offset = util.Clamp(res.Stops[i].Offset, 0, 100)
		res.Stops[i].Opacity = util.Clamp(res.Stops[i].Opacity, 0, 100)
	}
	res.Stops = SortStops(res.Stops)
	res.Angle = util.Clamp(res.Angle, 0, 360)
	if res.Radius == 0 {
		res.Radius = DefaultRadius
	}
	res.Radius = util.Clamp(res.Radius, MinRadius, MaxRadius)
	return res.refresh()
}
