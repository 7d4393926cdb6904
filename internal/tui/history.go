package tui

// specsHistory remembers the input triples (resistance, tolerance,
// tcr) of past successful determinations. A cursor of -1 means live
// input, not a recalled entry.
type specsHistory struct {
	entries [][3]string
	cursor  int
}

func newSpecsHistory() specsHistory {
	return specsHistory{cursor: -1}
}

func (h *specsHistory) add(entry [3]string) {
	h.entries = append(h.entries, entry)
}

func (h *specsHistory) clearCursor() {
	h.cursor = -1
}

// prev moves towards the oldest entry, entering at the newest. It
// clamps at the oldest instead of wrapping.
func (h *specsHistory) prev() {
	if len(h.entries) == 0 {
		return
	}
	switch {
	case h.cursor < 0:
		h.cursor = len(h.entries) - 1
	case h.cursor > 0:
		h.cursor--
	}
}

// next moves towards the newest entry and past it back to live input.
func (h *specsHistory) next() {
	if h.cursor < 0 {
		return
	}
	if h.cursor++; h.cursor >= len(h.entries) {
		h.cursor = -1
	}
}

func (h *specsHistory) current() ([3]string, bool) {
	if h.cursor < 0 || h.cursor >= len(h.entries) {
		return [3]string{}, false
	}
	return h.entries[h.cursor], true
}
