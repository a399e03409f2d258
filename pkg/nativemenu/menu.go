package nativemenu

import (
	"image"

	"github.com/BrandonKowalski/nativemenu/pkg/nativemenu/constants"
)

// Menu is one overlay panel: a banner, a title, a description and an ordered
// list of items, of which at most maxVisible are shown at once.
//
// Menus are created with Registry.NewMenu and are not safe for concurrent use.
type Menu struct {
	Title       string
	Description string

	registry *Registry
	items    []Item
	banner   *Banner

	open          bool
	selectedIndex int
	viewStart     int
	viewEnd       int
	maxVisible    int

	onSelectedIndexChanged []func(*Menu, int)
}

// MenuOption configures a menu at construction.
type MenuOption func(*Menu)

// WithBanner uses b as the menu's banner.
func WithBanner(b *Banner) MenuOption {
	return func(m *Menu) {
		m.banner = b
	}
}

// WithBannerImage uses a static image as the banner. A nil image keeps the
// built-in banner.
func WithBannerImage(img image.Image) MenuOption {
	return func(m *Menu) {
		if img == nil {
			return
		}
		if b, err := NewStaticBanner(img); err == nil {
			m.banner = b
		}
	}
}

// WithMaxVisible sets how many rows are shown at once.
func WithMaxVisible(n int) MenuOption {
	return func(m *Menu) {
		m.SetMaxVisible(n)
	}
}

// WithItems adds items at construction. Nil items are skipped.
func WithItems(items ...Item) MenuOption {
	return func(m *Menu) {
		for _, item := range items {
			_ = m.AddItem(item)
		}
	}
}

func newMenu(r *Registry, title, description string) *Menu {
	return &Menu{
		Title:       title,
		Description: description,
		registry:    r,
		maxVisible:  constants.DefaultMaxVisible,
		viewEnd:     constants.DefaultMaxVisible,
	}
}

// Registry returns the registry that created the menu.
func (m *Menu) Registry() *Registry {
	return m.registry
}

// IsOpen reports whether this is the registry's open menu.
func (m *Menu) IsOpen() bool {
	return m.open
}

// Banner returns the menu's banner, or nil when the built-in one is drawn.
func (m *Menu) Banner() *Banner {
	return m.banner
}

// SetBanner replaces the banner. The old banner is stopped and, when the
// menu is open, the new one is started.
func (m *Menu) SetBanner(b *Banner) {
	if m.banner != nil {
		m.banner.Stop()
	}
	m.banner = b
	if m.open && b != nil {
		b.Start(m.registry.options.FrameInterval())
	}
}

// OnSelectedIndexChanged registers an observer for Up and Down.
func (m *Menu) OnSelectedIndexChanged(fn func(*Menu, int)) {
	if fn != nil {
		m.onSelectedIndexChanged = append(m.onSelectedIndexChanged, fn)
	}
}

// MaxVisible returns how many rows are shown at once.
func (m *Menu) MaxVisible() int {
	return m.maxVisible
}

// SetMaxVisible changes how many rows are shown at once. Values below 2
// reset to the default of 6. The viewport restarts at the top and is then
// moved to keep the selection visible.
func (m *Menu) SetMaxVisible(n int) {
	if n < constants.MinMaxVisible {
		n = constants.DefaultMaxVisible
	}
	m.maxVisible = n
	m.viewStart = 0
	m.viewEnd = n
	m.clampViewport()
}

// SelectedIndex returns the selected item index. It is 0 for an empty menu.
func (m *Menu) SelectedIndex() int {
	return m.selectedIndex
}

// SelectedItem returns the selected item.
func (m *Menu) SelectedItem() (Item, bool) {
	if len(m.items) == 0 {
		return nil, false
	}
	return m.items[m.selectedIndex], true
}

// SetSelectedIndex moves the selection without notifying observers or
// playing sounds, scrolling as needed.
func (m *Menu) SetSelectedIndex(i int) error {
	if i < 0 || i >= len(m.items) {
		return outOfRange("item", i, len(m.items))
	}
	m.selectedIndex = i
	m.clampViewport()
	return nil
}

// Viewport returns the half-open range of item indices the menu scrolls
// over. When the menu holds no more than MaxVisible items every item is
// drawn regardless of the viewport.
func (m *Menu) Viewport() (start, end int) {
	return m.viewStart, m.viewEnd
}

// VisibleRange returns the indices of the rows drawn.
func (m *Menu) VisibleRange() (start, end int) {
	n := len(m.items)
	if n <= m.maxVisible {
		return 0, n
	}
	end = m.viewEnd
	if end > n {
		end = n
	}
	return m.viewStart, end
}

func (m *Menu) resetNavigation() {
	m.selectedIndex = 0
	m.viewStart = 0
	m.viewEnd = m.maxVisible
}

// clampViewport restores the navigation invariants after the item count,
// the selection or maxVisible changed: the selection is a valid index (0
// when empty) and, for menus longer than maxVisible, the viewport is exactly
// maxVisible wide, inside the list, and contains the selection.
func (m *Menu) clampViewport() {
	n := len(m.items)
	if m.selectedIndex >= n {
		m.selectedIndex = n - 1
	}
	if m.selectedIndex < 0 {
		m.selectedIndex = 0
	}

	if n <= m.maxVisible {
		m.viewStart = 0
		m.viewEnd = m.maxVisible
		return
	}

	if m.viewStart < 0 {
		m.viewStart = 0
	}
	if m.selectedIndex < m.viewStart {
		m.viewStart = m.selectedIndex
	}
	if m.selectedIndex >= m.viewStart+m.maxVisible {
		m.viewStart = m.selectedIndex - m.maxVisible + 1
	}
	if m.viewStart > n-m.maxVisible {
		m.viewStart = n - m.maxVisible
	}
	m.viewEnd = m.viewStart + m.maxVisible
}

// moveSelection steps the selection by one with wrap-around, scrolling the
// viewport by one row when the selection leaves it.
func (m *Menu) moveSelection(direction int) bool {
	n := len(m.items)
	if n == 0 {
		return false
	}

	if direction < 0 {
		if m.selectedIndex == 0 {
			m.selectedIndex = n - 1
			m.viewStart = max(0, n-m.maxVisible)
			m.viewEnd = n
		} else {
			m.selectedIndex--
			if m.selectedIndex < m.viewStart {
				m.viewStart--
				m.viewEnd--
			}
		}
	} else {
		if m.selectedIndex == n-1 {
			m.selectedIndex = 0
			m.viewStart = 0
			m.viewEnd = m.maxVisible
		} else {
			m.selectedIndex++
			if m.selectedIndex >= m.viewEnd {
				m.viewStart++
				m.viewEnd++
			}
		}
	}

	for _, fn := range m.onSelectedIndexChanged {
		fn(m, m.selectedIndex)
	}
	return true
}

// markSelected flags the selected item and clears every other item, so at
// most one item reports Selected.
func (m *Menu) markSelected() {
	for i, item := range m.items {
		item.Common().selected = i == m.selectedIndex
	}
}
