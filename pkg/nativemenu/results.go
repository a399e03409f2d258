package nativemenu

// Outcome reports what a key press or controller poll did to the open menu.
type Outcome int

const (
	OutcomeNone         Outcome = iota // No menu open, key unbound, or nothing to act on
	OutcomeMoved                       // Selection moved up or down
	OutcomeCycled                      // A list item changed its option
	OutcomeClicked                     // A button or list item was clicked
	OutcomeToggled                     // A checkbox changed state
	OutcomeRejected                    // The selected item is disabled or empty; the error sound was requested
	OutcomeOpenedNested                // A button opened its nested menu
	OutcomeWentBack                    // The previous menu was restored from history
)

func (o Outcome) String() string {
	switch o {
	case OutcomeMoved:
		return "moved"
	case OutcomeCycled:
		return "cycled"
	case OutcomeClicked:
		return "clicked"
	case OutcomeToggled:
		return "toggled"
	case OutcomeRejected:
		return "rejected"
	case OutcomeOpenedNested:
		return "opened_nested"
	case OutcomeWentBack:
		return "went_back"
	default:
		return "none"
	}
}
