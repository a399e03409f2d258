package nativemenu

// Len returns the number of items.
func (m *Menu) Len() int {
	return len(m.items)
}

// Items returns a copy of the items in display order.
func (m *Menu) Items() []Item {
	return append([]Item(nil), m.items...)
}

// ItemAt returns the item at index i.
func (m *Menu) ItemAt(i int) (Item, bool) {
	if i < 0 || i >= len(m.items) {
		return nil, false
	}
	return m.items[i], true
}

// IndexOf returns the index of item, or -1.
func (m *Menu) IndexOf(item Item) int {
	for i, it := range m.items {
		if it == item {
			return i
		}
	}
	return -1
}

// FindItem returns the first item with the given name.
func (m *Menu) FindItem(name string) (Item, bool) {
	for _, it := range m.items {
		if it.Common().Name == name {
			return it, true
		}
	}
	return nil, false
}

func isNilItem(item Item) bool {
	switch v := item.(type) {
	case nil:
		return true
	case *Button:
		return v == nil
	case *Checkbox:
		return v == nil
	case *CyclableList:
		return v == nil
	}
	return false
}

// AddItem appends an item.
func (m *Menu) AddItem(item Item) error {
	if isNilItem(item) {
		return ErrNilItem
	}
	m.items = append(m.items, item)
	m.clampViewport()
	return nil
}

// AddItems appends items in order. Nothing is added when any item is nil.
func (m *Menu) AddItems(items ...Item) error {
	for _, item := range items {
		if isNilItem(item) {
			return ErrNilItem
		}
	}
	m.items = append(m.items, items...)
	m.clampViewport()
	return nil
}

// RemoveItem removes the first occurrence of item.
func (m *Menu) RemoveItem(item Item) bool {
	i := m.IndexOf(item)
	if i < 0 {
		return false
	}
	m.removeAt(i)
	return true
}

// RemoveItemAt removes the item at index i.
func (m *Menu) RemoveItemAt(i int) error {
	if i < 0 || i >= len(m.items) {
		return outOfRange("item", i, len(m.items))
	}
	m.removeAt(i)
	return nil
}

func (m *Menu) removeAt(i int) {
	m.items[i].Common().selected = false
	m.items = append(m.items[:i], m.items[i+1:]...)
	m.clampViewport()
}

// Clear removes every item and resets the selection and viewport.
func (m *Menu) Clear() {
	for _, item := range m.items {
		item.Common().selected = false
	}
	m.items = nil
	m.resetNavigation()
}
