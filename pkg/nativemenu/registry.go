package nativemenu

import (
	"log/slog"

	"github.com/BrandonKowalski/nativemenu/pkg/nativemenu/constants"
	"github.com/BrandonKowalski/nativemenu/pkg/nativemenu/internal"
)

// Registry tracks the menus of one host session and which of them is open.
// At most one menu is open at a time.
//
// The host forwards its callbacks to ProcessDrawing, ProcessController and
// ProcessKeyPress. A Registry is not safe for concurrent use; call it from
// the host's callback thread only.
type Registry struct {
	host    Host
	options Options
	logger  *slog.Logger
	theme   internal.Theme

	translator *internal.Translator
	sprites    *internal.SpriteSet
	repeat     *internal.RepeatGate

	menus   []*Menu
	current *Menu
	history *history
	locked  bool
}

// NewRegistry creates an empty registry.
func NewRegistry(host Host, options Options) *Registry {
	r := &Registry{
		host:    host,
		logger:  internal.GetLogger(),
		theme:   internal.DefaultTheme(),
		sprites: internal.NewSpriteSet(),
		history: newHistory(),
	}
	r.repeat = internal.NewRepeatGate()
	r.SetOptions(options)
	return r
}

// SetLogger replaces the library logger for this registry.
func (r *Registry) SetLogger(logger *slog.Logger) {
	if logger != nil {
		r.logger = logger
	}
}

// Options returns the current options.
func (r *Registry) Options() Options {
	return r.options
}

// SetOptions replaces the options shared by every menu.
func (r *Registry) SetOptions(options Options) {
	languageChanged := r.translator == nil || options.Language != r.options.Language
	r.options = options
	if languageChanged {
		r.translator = internal.NewTranslator(options.Language)
	}
	r.repeat.SetTiming(options.ControllerRepeatDelay, options.ControllerRepeatInterval)
	r.logger.Debug("Options updated", "options", options)
}

// Theme returns the active theme.
func (r *Registry) Theme() Theme {
	return r.theme
}

// SetTheme changes the colours of every menu. Items with their own colours
// keep them.
func (r *Registry) SetTheme(theme Theme) {
	r.theme = theme
}

// NewMenu creates a menu and registers it.
func (r *Registry) NewMenu(title, description string, opts ...MenuOption) *Menu {
	m := newMenu(r, title, description)
	for _, opt := range opts {
		opt(m)
	}
	r.menus = append(r.menus, m)
	return m
}

// Menus returns every registered menu in creation order.
func (r *Registry) Menus() []*Menu {
	return append([]*Menu(nil), r.menus...)
}

// Unregister hides m when open and stops tracking it.
func (r *Registry) Unregister(m *Menu) bool {
	for i, menu := range r.menus {
		if menu != m {
			continue
		}
		if m.open {
			r.Hide(m)
		}
		if m.banner != nil {
			m.banner.Stop()
		}
		r.history.Forget(m)
		r.menus = append(r.menus[:i], r.menus[i+1:]...)
		return true
	}
	return false
}

func (r *Registry) owns(m *Menu) bool {
	for _, menu := range r.menus {
		if menu == m {
			return true
		}
	}
	return false
}

// Current returns the open menu, or nil.
func (r *Registry) Current() *Menu {
	return r.current
}

// IsAnyMenuOpen reports whether a menu is open.
func (r *Registry) IsAnyMenuOpen() bool {
	return r.current != nil
}

// Show opens m, closing the open menu first. The selection returns to the
// first item and the banner starts. When configured, the player is locked
// and the phone script is terminated.
func (r *Registry) Show(m *Menu) error {
	if m == nil {
		return nil
	}
	if m.registry != r || !r.owns(m) {
		return ErrForeignMenu
	}

	if prev := r.current; prev != nil {
		r.closeMenu(prev)
	}

	m.open = true
	m.resetNavigation()
	r.current = m
	if m.banner != nil {
		m.banner.Start(r.options.FrameInterval())
	}

	r.applySideEffects()
	r.logger.Debug("Menu shown", "title", m.Title, "items", len(m.items))
	return nil
}

// Hide closes m when it is open. Hiding a closed menu does nothing.
func (r *Registry) Hide(m *Menu) {
	if m == nil || !m.open {
		return
	}
	r.closeMenu(m)
	r.history.Clear()
	r.releaseSideEffects()
	r.logger.Debug("Menu hidden", "title", m.Title)
}

// HideAll closes every open menu and forgets the navigation history.
func (r *Registry) HideAll() {
	anyOpen := false
	for _, m := range r.menus {
		if m.open {
			r.closeMenu(m)
			anyOpen = true
		}
	}
	r.current = nil
	r.history.Clear()
	if anyOpen {
		r.releaseSideEffects()
		r.logger.Debug("All menus hidden")
	}
}

// CanGoBack reports whether Back has a menu to return to.
func (r *Registry) CanGoBack() bool {
	return r.history.Peek() != nil
}

// Back reopens the menu that was open before the last nested button was
// accepted, restoring its selection. It reports false when there is no
// such menu.
func (r *Registry) Back() bool {
	for {
		entry := r.history.Pop()
		if entry == nil {
			return false
		}
		if !r.owns(entry.Menu) {
			continue
		}

		if err := r.Show(entry.Menu); err != nil {
			r.logger.Warn("Failed to restore menu", "title", entry.Menu.Title, "error", err)
			return false
		}
		entry.Menu.selectedIndex = entry.SelectedIndex
		entry.Menu.viewStart = entry.ViewStart
		entry.Menu.viewEnd = entry.ViewStart + entry.Menu.maxVisible
		entry.Menu.clampViewport()
		return true
	}
}

// openNested shows nested from parent and records parent for Back.
func (r *Registry) openNested(parent, nested *Menu) bool {
	r.history.Push(parent)
	if err := r.Show(nested); err != nil {
		r.history.Pop()
		r.logger.Warn("Cannot open nested menu", "parent", parent.Title, "nested", nested.Title, "error", err)
		return false
	}
	return true
}

func (r *Registry) closeMenu(m *Menu) {
	m.open = false
	if m.banner != nil {
		m.banner.Stop()
	}
	if r.current == m {
		r.current = nil
	}
}

func (r *Registry) applySideEffects() {
	if r.options.DisablePlayerMovement {
		if err := r.host.setPlayerControl(false); err != nil {
			r.logger.Warn("Failed to lock player", "error", err)
		}
	}
	if r.options.DisablePhone {
		if err := r.host.terminateScript(constants.PhoneScript); err != nil {
			r.logger.Warn("Failed to suspend phone", "error", err)
		}
	}
	r.locked = true
}

func (r *Registry) releaseSideEffects() {
	if !r.locked {
		return
	}
	if r.options.DisablePlayerMovement {
		if err := r.host.setPlayerControl(true); err != nil {
			r.logger.Warn("Failed to unlock player", "error", err)
		}
	}
	if r.options.DisablePhone {
		if err := r.host.startScript(constants.PhoneScript, constants.PhoneScriptStackSize); err != nil {
			r.logger.Warn("Failed to restart phone", "error", err)
		}
	}
	r.locked = false
}

func (r *Registry) playSound(name string) {
	if !r.options.EnableSounds {
		return
	}
	if err := r.host.playSound(name); err != nil {
		r.logger.Warn("Failed to play sound", "sound", name, "error", err)
	}
}

// ProcessDrawing draws the open menu. Call it from the host's per-frame
// render callback.
func (r *Registry) ProcessDrawing(canvas Canvas) {
	if m := r.current; m != nil {
		m.Draw(canvas)
	}
}

// ProcessKeyPress resolves a host key through the key bindings and applies
// it to the open menu. Only the menu open when the key arrives handles it,
// so a button that opens a nested menu does not pass the key on.
func (r *Registry) ProcessKeyPress(key constants.Key) Outcome {
	action := r.options.Keys.ActionFor(key)
	if action == constants.ActionNone {
		return OutcomeNone
	}
	return r.ProcessAction(action)
}

// ProcessAction applies a logical action to the open menu.
func (r *Registry) ProcessAction(action constants.Action) Outcome {
	m := r.current
	if m == nil {
		return OutcomeNone
	}
	outcome := m.handleAction(action)
	if outcome != OutcomeNone {
		r.logger.Debug("Menu input", "title", m.Title, "action", action.String(), "outcome", outcome.String())
	}
	return outcome
}

// Close hides every menu and stops all banners.
func (r *Registry) Close() {
	r.HideAll()
	for _, m := range r.menus {
		if m.banner != nil {
			m.banner.Stop()
		}
	}
}
