package core

import (
	"math"

	"github.com/bvisness/flowstyle/util"
)

// A press only becomes a drag once the pointer has moved more than this far
// horizontally. Anything less is a click.
const DragThreshold = 3

type V2 struct {
	X, Y float64
}

func (v V2) Sub(o V2) V2 {
	return V2{v.X - o.X, v.Y - o.Y}
}

type Key int

const (
	KeyEscape Key = iota
)

type InputProvider interface {
	IsKeyPressed(key Key) bool
	IsPointerReleased() bool
	IsPointerDown() bool
	PointerPosition() V2
}

type DragPhase int

const (
	Idle DragPhase = iota
	Pending
	Dragging
)

func (p DragPhase) String() string {
	switch p {
	case Pending:
		return "Pending"
	case Dragging:
		return "Dragging"
	default:
		return "Idle"
	}
}

type GestureKind int

const (
	GestureNone GestureKind = iota
	GestureClick
	GestureDrag
	GestureCanceled
)

// Gesture is the outcome of a completed press on a stop handle.
type Gesture struct {
	Kind  GestureKind
	Index int
	Value float64
}

// StopDrag tracks one press on a gradient stop handle. Press starts a
// gesture, Move updates it, and Release or Cancel end it. All origin data is
// captured at Press and cleared when the gesture ends.
type StopDrag struct {
	Phase DragPhase

	Index      int
	MouseStart V2
	ValueStart float64
	Value      float64
	TrackWidth float64
}

// Press starts a gesture on stop index whose current offset is value. The
// track width converts pointer displacement into offset units; a
// non-positive width treats one pixel as one unit. Press is ignored while a
// gesture is already in progress.
func (d *StopDrag) Press(index int, pos V2, value, trackWidth float64) bool {
	if d.Phase != Idle {
		// can't start a new drag while one is in progress
		return false
	}

	*d = StopDrag{
		Phase:      Pending,
		Index:      index,
		MouseStart: pos,
		ValueStart: value,
		Value:      value,
		TrackWidth: trackWidth,
	}
	return true
}

// Move feeds a new pointer position. It returns the current value and
// whether the gesture has become a drag.
func (d *StopDrag) Move(pos V2) (float64, bool) {
	switch d.Phase {
	case Idle:
		return d.Value, false
	case Pending:
		if math.Abs(pos.Sub(d.MouseStart).X) <= DragThreshold {
			// haven't dragged far enough
			return d.Value, false
		}
		d.Phase = Dragging
	}

	d.Value = d.valueAt(pos)
	return d.Value, true
}

// Release ends the gesture. A press that never crossed the threshold is a
// click and leaves the value untouched.
func (d *StopDrag) Release(pos V2) Gesture {
	var g Gesture
	switch d.Phase {
	case Idle:
		return Gesture{Kind: GestureNone}
	case Pending:
		d.Move(pos)
		if d.Phase == Pending {
			g = Gesture{Kind: GestureClick, Index: d.Index, Value: d.ValueStart}
		} else {
			g = Gesture{Kind: GestureDrag, Index: d.Index, Value: d.Value}
		}
	case Dragging:
		d.Move(pos)
		g = Gesture{Kind: GestureDrag, Index: d.Index, Value: d.Value}
	}

	*d = StopDrag{}
	return g
}

// Cancel abandons the gesture. The reported value is the one captured at
// Press.
func (d *StopDrag) Cancel() Gesture {
	if d.Phase == Idle {
		return Gesture{Kind: GestureNone}
	}
	g := Gesture{Kind: GestureCanceled, Index: d.Index, Value: d.ValueStart}
	*d = StopDrag{}
	return g
}

func (d *StopDrag) valueAt(pos V2) float64 {
	width := util.Tern(d.TrackWidth > 0, d.TrackWidth, 100)
	dx := pos.Sub(d.MouseStart).X
	return math.Round(util.Clamp(d.ValueStart+dx/width*100, 0, 100))
}

// TrackOffset converts a pointer x coordinate into an offset along a track
// starting at left with the given width, clamped to [0,100].
func TrackOffset(x, left, width float64) float64 {
	if width <= 0 {
		return 0
	}
	return util.Clamp((x-left)/width*100, 0, 100)
}
