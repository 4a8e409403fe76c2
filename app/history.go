package app

import (
	"bytes"
	"fmt"

	"github.com/bvisness/flowstyle/app/gradient"
)

const maxHistory = 50

// HistoryManager is the undo stack of a gradient editing session. Each entry
// is a .grad encoding of the descriptor, so restoring one goes through the
// same validation as loading a file.
type HistoryManager struct {
	snapshots [][]byte
	pointer   int
}

func NewHistoryManager(initial gradient.Descriptor) *HistoryManager {
	hm := &HistoryManager{pointer: -1}
	hm.Push(initial)
	return hm
}

// Push records d as the newest state. A state equal to the current one is
// ignored, and anything that could have been redone is discarded. Only the
// last maxHistory states are kept.
func (hm *HistoryManager) Push(d gradient.Descriptor) {
	data, err := SerializeGradient(d)
	if err != nil {
		fmt.Printf("History Push failed: %v\n", err)
		return
	}
	if hm.pointer >= 0 && bytes.Equal(hm.snapshots[hm.pointer], data) {
		return
	}

	hm.snapshots = append(hm.snapshots[:hm.pointer+1], data)
	if over := len(hm.snapshots) - maxHistory; over > 0 {
		hm.snapshots = hm.snapshots[over:]
	}
	hm.pointer = len(hm.snapshots) - 1
}

func (hm *HistoryManager) Undo() (gradient.Descriptor, bool) {
	if !hm.CanUndo() {
		return gradient.Descriptor{}, false
	}
	return hm.step(-1, "Undo")
}

func (hm *HistoryManager) Redo() (gradient.Descriptor, bool) {
	if !hm.CanRedo() {
		return gradient.Descriptor{}, false
	}
	return hm.step(1, "Redo")
}

func (hm *HistoryManager) CanUndo() bool {
	return hm.pointer > 0
}

func (hm *HistoryManager) CanRedo() bool {
	return hm.pointer < len(hm.snapshots)-1
}

// Len is the number of states held, including the current one.
func (hm *HistoryManager) Len() int {
	return len(hm.snapshots)
}

// step moves the pointer by delta and decodes the state it lands on. A
// snapshot that fails to decode leaves the pointer where it was.
func (hm *HistoryManager) step(delta int, op string) (gradient.Descriptor, bool) {
	d, err := DeserializeGradient(hm.snapshots[hm.pointer+delta])
	if err != nil {
		fmt.Printf("History %s failed: %v\n", op, err)
		return gradient.Descriptor{}, false
	}
	hm.pointer += delta
	return d, true
}
