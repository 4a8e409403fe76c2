package app

import (
	"github.com/bvisness/flowstyle/app/core"
	"github.com/bvisness/flowstyle/app/gradient"
)

// GradientEditor is the interaction state of the gradient bar in the style
// panel. The caller owns the track geometry and hit testing; the editor owns
// the descriptor, the active gesture and the undo history.
type GradientEditor struct {
	Gradient gradient.Descriptor

	// Selected is the active stop, or -1. PopupOpen is set while its colour
	// and opacity popup is shown.
	Selected  int
	PopupOpen bool

	TrackLeft  float64
	TrackWidth float64

	drag    core.StopDrag
	history *HistoryManager
}

// NewGradientEditor starts editing d, or the default gradient if d is nil.
func NewGradientEditor(d *gradient.Descriptor, trackLeft, trackWidth float64) *GradientEditor {
	g := gradient.OrDefault(d)
	return &GradientEditor{
		Gradient:   g,
		Selected:   -1,
		TrackLeft:  trackLeft,
		TrackWidth: trackWidth,
		history:    NewHistoryManager(g),
	}
}

// Dragging reports whether a stop is currently being moved.
func (e *GradientEditor) Dragging() bool {
	return e.drag.Phase == core.Dragging
}

// PointerDown starts a gesture on the handle of stop i.
func (e *GradientEditor) PointerDown(i int, pos core.V2) {
	if i < 0 || i >= len(e.Gradient.Stops) {
		return
	}
	e.drag.Press(i, pos, e.Gradient.Stops[i].Offset, e.TrackWidth)
}

// PointerMove moves the stop being dragged. Stops are not re-sorted until
// the drag ends, so the handle under the pointer keeps its index.
func (e *GradientEditor) PointerMove(pos core.V2) {
	if v, dragging := e.drag.Move(pos); dragging {
		e.Gradient = gradient.MoveStop(e.Gradient, e.drag.Index, v)
	}
}

// PointerUp ends the gesture. A click opens the stop's colour popup; a drag
// commits the new offset as one undo step.
func (e *GradientEditor) PointerUp(pos core.V2) core.Gesture {
	g := e.drag.Release(pos)
	switch g.Kind {
	case core.GestureClick:
		e.Selected = g.Index
		e.PopupOpen = true
	case core.GestureDrag:
		moved := gradient.MoveStop(e.Gradient, g.Index, g.Value)
		e.Gradient, e.Selected = gradient.Sort(moved, g.Index)
		e.PopupOpen = false
		e.history.Push(e.Gradient)
	}
	return g
}

// Update polls input once per frame and advances an active gesture. Escape
// cancels it.
func (e *GradientEditor) Update(input core.InputProvider) {
	if e.drag.Phase == core.Idle {
		return
	}

	if input.IsKeyPressed(core.KeyEscape) {
		e.CancelDrag()
	} else if input.IsPointerReleased() {
		e.PointerUp(input.PointerPosition())
	} else if input.IsPointerDown() {
		e.PointerMove(input.PointerPosition())
	}
}

// CancelDrag abandons a gesture and puts the stop back where it started.
func (e *GradientEditor) CancelDrag() {
	g := e.drag.Cancel()
	if g.Kind == core.GestureCanceled {
		e.Gradient = gradient.MoveStop(e.Gradient, g.Index, g.Value)
	}
}

// TrackClick adds a stop where the empty part of the track was clicked and
// selects it.
func (e *GradientEditor) TrackClick(x float64) {
	res, idx := gradient.AddStop(e.Gradient, core.TrackOffset(x, e.TrackLeft, e.TrackWidth))
	e.Gradient = res
	e.Selected = idx
	e.history.Push(e.Gradient)
}

// Remove deletes the selected stop, unless only two remain.
func (e *GradientEditor) Remove() {
	if e.Selected < 0 {
		return
	}
	before := len(e.Gradient.Stops)
	e.Gradient = gradient.RemoveStop(e.Gradient, e.Selected)
	if len(e.Gradient.Stops) < before {
		e.ClosePopup()
		e.history.Push(e.Gradient)
	}
}

func (e *GradientEditor) SetColor(hex string) {
	if e.Selected < 0 {
		return
	}
	e.Gradient = gradient.SetStopColor(e.Gradient, e.Selected, hex)
	e.history.Push(e.Gradient)
}

func (e *GradientEditor) SetOpacity(opacity float64) {
	if e.Selected < 0 {
		return
	}
	e.Gradient = gradient.SetStopOpacity(e.Gradient, e.Selected, opacity)
	e.history.Push(e.Gradient)
}

func (e *GradientEditor) SetType(t gradient.Type) {
	e.Gradient = gradient.SetType(e.Gradient, t)
	e.history.Push(e.Gradient)
}

func (e *GradientEditor) SetAngle(angle float64) {
	e.Gradient = gradient.SetAngle(e.Gradient, angle)
	e.history.Push(e.Gradient)
}

func (e *GradientEditor) SetRadius(radius float64) {
	e.Gradient = gradient.SetRadius(e.Gradient, radius)
	e.history.Push(e.Gradient)
}

func (e *GradientEditor) Reverse() {
	e.ClosePopup()
	e.Gradient = gradient.Reverse(e.Gradient)
	e.history.Push(e.Gradient)
}

func (e *GradientEditor) Reset() {
	e.ClosePopup()
	e.Gradient = gradient.Reset()
	e.history.Push(e.Gradient)
}

func (e *GradientEditor) ClosePopup() {
	e.Selected = -1
	e.PopupOpen = false
}

func (e *GradientEditor) Undo() bool {
	d, ok := e.history.Undo()
	if ok {
		e.restore(d)
	}
	return ok
}

func (e *GradientEditor) Redo() bool {
	d, ok := e.history.Redo()
	if ok {
		e.restore(d)
	}
	return ok
}

func (e *GradientEditor) restore(d gradient.Descriptor) {
	e.drag = core.StopDrag{}
	e.ClosePopup()
	e.Gradient = d
}
