package nativemenu

import (
	"github.com/BrandonKowalski/nativemenu/pkg/nativemenu/constants"
)

// CyclableList is a row whose value cycles through a list of options with
// Left and Right.
type CyclableList struct {
	ItemBase

	// MaxListBoxWidth caps the width of the value box. Defaults to 200.
	MaxListBoxWidth float32

	options []string
	current int

	onClick        []func(*CyclableList)
	onIndexChanged []func(*CyclableList, int)
	onTextChanged  []func(*CyclableList, string)
}

// NewCyclableList creates a list item with optional initial options.
func NewCyclableList(name, text, description string, enabled bool, options ...string) *CyclableList {
	return &CyclableList{
		ItemBase:        newItemBase(name, text, description, enabled),
		MaxListBoxWidth: constants.DefaultListBoxWidth,
		options:         append([]string(nil), options...),
	}
}

func (l *CyclableList) kind() itemKind { return kindCyclableList }

// Len returns the number of options.
func (l *CyclableList) Len() int {
	return len(l.options)
}

// Options returns a copy of the options.
func (l *CyclableList) Options() []string {
	return append([]string(nil), l.options...)
}

// AddOption appends an option. Duplicates are allowed.
func (l *CyclableList) AddOption(option string) {
	l.options = append(l.options, option)
}

// AddOptions appends options in order.
func (l *CyclableList) AddOptions(options ...string) {
	l.options = append(l.options, options...)
}

// RemoveOption removes the first option equal to option.
func (l *CyclableList) RemoveOption(option string) bool {
	for i, o := range l.options {
		if o == option {
			l.removeAt(i)
			return true
		}
	}
	return false
}

// RemoveOptionAt removes the option at index i.
func (l *CyclableList) RemoveOptionAt(i int) error {
	if i < 0 || i >= len(l.options) {
		return outOfRange("option", i, len(l.options))
	}
	l.removeAt(i)
	return nil
}

func (l *CyclableList) removeAt(i int) {
	l.options = append(l.options[:i], l.options[i+1:]...)
	l.clampSelection()
}

// ClearOptions removes every option.
func (l *CyclableList) ClearOptions() {
	l.options = l.options[:0]
	l.current = 0
}

func (l *CyclableList) clampSelection() {
	if l.current >= len(l.options) {
		l.current = len(l.options) - 1
	}
	if l.current < 0 {
		l.current = 0
	}
}

// SelectedIndex returns the current option index. It is 0 for an empty list.
func (l *CyclableList) SelectedIndex() int {
	return l.current
}

// SetSelectedIndex moves to option i without notifying observers.
func (l *CyclableList) SetSelectedIndex(i int) error {
	if i < 0 || i >= len(l.options) {
		return outOfRange("option", i, len(l.options))
	}
	l.current = i
	return nil
}

// SelectedText returns the current option, or false for an empty list.
func (l *CyclableList) SelectedText() (string, bool) {
	if len(l.options) == 0 {
		return "", false
	}
	return l.options[l.current], true
}

// Next advances to the next option with wrap-around and notifies the
// index and text observers. It reports false for an empty list.
func (l *CyclableList) Next() bool {
	if len(l.options) == 0 {
		return false
	}
	l.current++
	if l.current >= len(l.options) {
		l.current = 0
	}
	l.notifyChanged()
	return true
}

// Previous moves to the previous option with wrap-around and notifies the
// index and text observers. It reports false for an empty list.
func (l *CyclableList) Previous() bool {
	if len(l.options) == 0 {
		return false
	}
	l.current--
	if l.current < 0 {
		l.current = len(l.options) - 1
	}
	l.notifyChanged()
	return true
}

func (l *CyclableList) notifyChanged() {
	for _, fn := range l.onIndexChanged {
		fn(l, l.current)
	}
	text := l.options[l.current]
	for _, fn := range l.onTextChanged {
		fn(l, text)
	}
}

// OnClick registers a click observer.
func (l *CyclableList) OnClick(fn func(*CyclableList)) {
	if fn != nil {
		l.onClick = append(l.onClick, fn)
	}
}

// OnSelectedIndexChanged registers an observer for cycling.
func (l *CyclableList) OnSelectedIndexChanged(fn func(*CyclableList, int)) {
	if fn != nil {
		l.onIndexChanged = append(l.onIndexChanged, fn)
	}
}

// OnSelectedTextChanged registers an observer for cycling.
func (l *CyclableList) OnSelectedTextChanged(fn func(*CyclableList, string)) {
	if fn != nil {
		l.onTextChanged = append(l.onTextChanged, fn)
	}
}

// PerformClick notifies the click observers.
func (l *CyclableList) PerformClick() {
	for _, fn := range l.onClick {
		fn(l)
	}
}
