package nativemenu

import (
	"github.com/BrandonKowalski/nativemenu/pkg/nativemenu/constants"
)

// handleAction applies one logical action to an open menu.
func (m *Menu) handleAction(action constants.Action) Outcome {
	if !m.open {
		return OutcomeNone
	}

	switch action {
	case constants.ActionUp:
		return m.handleVertical(-1)
	case constants.ActionDown:
		return m.handleVertical(1)
	case constants.ActionLeft:
		return m.handleCycle(-1)
	case constants.ActionRight:
		return m.handleCycle(1)
	case constants.ActionAccept:
		return m.handleAccept()
	case constants.ActionBack:
		if m.registry.Back() {
			return OutcomeWentBack
		}
	}
	return OutcomeNone
}

func (m *Menu) handleVertical(direction int) Outcome {
	if !m.moveSelection(direction) {
		return OutcomeNone
	}
	m.registry.playSound(constants.SoundNavigate)
	return OutcomeMoved
}

func (m *Menu) handleCycle(direction int) Outcome {
	item, ok := m.SelectedItem()
	if !ok {
		return OutcomeNone
	}

	list, ok := item.(*CyclableList)
	if !ok || !list.Enabled || list.Len() == 0 {
		return OutcomeNone
	}

	if direction < 0 {
		list.Previous()
		m.registry.playSound(constants.SoundSliderDown)
	} else {
		list.Next()
		m.registry.playSound(constants.SoundSliderUp)
	}
	return OutcomeCycled
}

func (m *Menu) handleAccept() Outcome {
	item, ok := m.SelectedItem()
	if !ok {
		return OutcomeNone
	}

	switch it := item.(type) {
	case *Button:
		if !it.Enabled {
			m.registry.playSound(constants.SoundError)
			return OutcomeRejected
		}
		it.PerformClick()
		outcome := OutcomeClicked
		if it.NestedMenu != nil && m.registry.openNested(m, it.NestedMenu) {
			outcome = OutcomeOpenedNested
		}
		m.registry.playSound(constants.SoundSelect)
		return outcome

	case *Checkbox:
		if !it.Enabled {
			m.registry.playSound(constants.SoundError)
			return OutcomeRejected
		}
		if it.Toggle() {
			m.registry.playSound(constants.SoundToggleOn)
		} else {
			m.registry.playSound(constants.SoundToggleOff)
		}
		return OutcomeToggled

	case *CyclableList:
		if !it.Enabled || it.Len() == 0 {
			m.registry.playSound(constants.SoundError)
			return OutcomeRejected
		}
		it.PerformClick()
		m.registry.playSound(constants.SoundSelect)
		return OutcomeClicked
	}

	return OutcomeNone
}
