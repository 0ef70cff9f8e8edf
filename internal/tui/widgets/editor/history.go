package editor

type snapshot struct {
	text   string
	cursor Pos
}

type editKind int

const (
	editOther editKind = iota
	editTyping
	editDeleting
)

// history keeps whole-text snapshots taken before each edit. Runs of typing
// or deleting collapse into one step. A limit of 0 keeps every step.
type history struct {
	limit int
	undo  []snapshot
	redo  []snapshot
	last  editKind
}

// merges reports whether an edit of kind continues the current run, in which
// case no new snapshot is needed.
func (h *history) merges(kind editKind) bool {
	return kind != editOther && kind == h.last && len(h.undo) > 0
}

func (h *history) record(s snapshot, kind editKind) {
	h.redo = nil
	if h.merges(kind) {
		return
	}
	h.last = kind
	h.undo = append(h.undo, s)
	if h.limit > 0 && len(h.undo) > h.limit {
		h.undo = h.undo[len(h.undo)-h.limit:]
	}
}

// breakRun ends the current typing or deleting run.
func (h *history) breakRun() { h.last = editOther }

func (h *history) reset() {
	h.undo, h.redo = nil, nil
	h.last = editOther
}

func (h *history) canUndo() bool { return len(h.undo) > 0 }
func (h *history) canRedo() bool { return len(h.redo) > 0 }

func (h *history) popUndo(cur snapshot) (snapshot, bool) {
	if len(h.undo) == 0 {
		return snapshot{}, false
	}
	s := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, cur)
	h.last = editOther
	return s, true
}

func (h *history) popRedo(cur snapshot) (snapshot, bool) {
	if len(h.redo) == 0 {
		return snapshot{}, false
	}
	s := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, cur)
	h.last = editOther
	return s, true
}
