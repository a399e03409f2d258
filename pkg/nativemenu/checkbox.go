package nativemenu

// Checkbox is a row with an on/off state.
type Checkbox struct {
	ItemBase

	checked   bool
	onChanged []func(*Checkbox, bool)
}

// NewCheckbox creates a checkbox.
func NewCheckbox(name, text, description string, enabled, checked bool) *Checkbox {
	return &Checkbox{
		ItemBase: newItemBase(name, text, description, enabled),
		checked:  checked,
	}
}

func (c *Checkbox) kind() itemKind { return kindCheckbox }

func (c *Checkbox) Checked() bool {
	return c.checked
}

// SetChecked stores the state and notifies the observers with the new value.
// Observers are notified even when the value does not change.
func (c *Checkbox) SetChecked(checked bool) {
	c.checked = checked
	for _, fn := range c.onChanged {
		fn(c, checked)
	}
}

// Toggle flips the state and returns the new value.
func (c *Checkbox) Toggle() bool {
	c.SetChecked(!c.checked)
	return c.checked
}

// OnCheckedChanged registers a state observer.
func (c *Checkbox) OnCheckedChanged(fn func(*Checkbox, bool)) {
	if fn != nil {
		c.onChanged = append(c.onChanged, fn)
	}
}
