package nativemenu

// historyEntry records a menu left through a nested button, with the
// position to restore when navigating back to it.
type historyEntry struct {
	Menu          *Menu
	SelectedIndex int
	ViewStart     int
}

// history manages back navigation between nested menus.
type history struct {
	entries []historyEntry
}

func newHistory() *history {
	return &history{
		entries: make([]historyEntry, 0),
	}
}

// Push records the menu's current position.
func (h *history) Push(m *Menu) {
	h.entries = append(h.entries, historyEntry{
		Menu:          m,
		SelectedIndex: m.selectedIndex,
		ViewStart:     m.viewStart,
	})
}

// Pop removes and returns the top entry.
// Returns nil if the history is empty.
func (h *history) Pop() *historyEntry {
	if len(h.entries) == 0 {
		return nil
	}
	entry := h.entries[len(h.entries)-1]
	h.entries = h.entries[:len(h.entries)-1]
	return &entry
}

// Peek returns the top entry without removing it.
// Returns nil if the history is empty.
func (h *history) Peek() *historyEntry {
	if len(h.entries) == 0 {
		return nil
	}
	return &h.entries[len(h.entries)-1]
}

func (h *history) Len() int {
	return len(h.entries)
}

// Forget drops every entry for m.
func (h *history) Forget(m *Menu) {
	kept := h.entries[:0]
	for _, e := range h.entries {
		if e.Menu != m {
			kept = append(kept, e)
		}
	}
	h.entries = kept
}

func (h *history) Clear() {
	h.entries = h.entries[:0]
}
