package scenegraph

// DefaultHistoryCap bounds the undo stack so a long editing session
// cannot grow it without limit.
const DefaultHistoryCap = 200

// History is the scene's reversible command journal: two stacks bounded
// by a cap, with any new Execute discarding the redo stack.
type History struct {
	scene *Scene
	undo  []Command
	redo  []Command
	cap   int
}

// NewHistory returns a History bound to scene with the given undo cap.
// A non-positive cap falls back to DefaultHistoryCap.
func NewHistory(scene *Scene, cap int) *History {
	if cap <= 0 {
		cap = DefaultHistoryCap
	}
	return &History{scene: scene, cap: cap}
}

// Execute applies cmd to the scene, pushes it to the undo stack (evicting
// the oldest entry if the cap is exceeded), and clears the redo stack.
func (h *History) Execute(cmd Command) error {
	if err := cmd.Do(h.scene); err != nil {
		return err
	}
	h.undo = append(h.undo, cmd)
	if len(h.undo) > h.cap {
		h.undo = h.undo[len(h.undo)-h.cap:]
	}
	h.redo = nil
	return nil
}

// Undo pops the most recent command, applies its inverse, and pushes it
// to the redo stack.
func (h *History) Undo() error {
	if len(h.undo) == 0 {
		return ErrNothingToUndo
	}
	cmd := h.undo[len(h.undo)-1]
	if err := cmd.Undo(h.scene); err != nil {
		return err
	}
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, cmd)
	return nil
}

// Redo pops the most recently undone command, re-applies it, and pushes
// it back to the undo stack.
func (h *History) Redo() error {
	if len(h.redo) == 0 {
		return ErrNothingToRedo
	}
	cmd := h.redo[len(h.redo)-1]
	if err := cmd.Do(h.scene); err != nil {
		return err
	}
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, cmd)
	return nil
}

// CanUndo and CanRedo report whether a corresponding call would succeed.
func (h *History) CanUndo() bool { return len(h.undo) > 0 }
func (h *History) CanRedo() bool { return len(h.redo) > 0 }

// UndoDepth and RedoDepth report the current stack sizes, mostly useful
// for tests and UI affordances.
func (h *History) UndoDepth() int { return len(h.undo) }
func (h *History) RedoDepth() int { return len(h.redo) }
