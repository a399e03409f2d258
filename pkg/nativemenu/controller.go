package nativemenu

import (
	"time"

	"github.com/BrandonKowalski/nativemenu/pkg/nativemenu/constants"
)

type controllerPoll struct {
	button constants.ControllerButton
	action constants.Action
}

// Buttons are polled in this order and the first pressed one wins.
var controllerPolls = []controllerPoll{
	{constants.ControllerDPadUp, constants.ActionUp},
	{constants.ControllerDPadDown, constants.ActionDown},
	{constants.ControllerDPadLeft, constants.ActionLeft},
	{constants.ControllerDPadRight, constants.ActionRight},
	{constants.ControllerA, constants.ActionAccept},
	{constants.ControllerB, constants.ActionBack},
}

// ProcessController polls the host controller and applies the pressed
// button to the open menu. Call it from the host's timer tick.
//
// Polling only happens while controller support is enabled, a menu is open
// and the host reports a controller in use. A held button fires once, then
// repeats after ControllerRepeatDelay and every ControllerRepeatInterval.
// B is polled as Back only when a Back key is bound.
//
// Any polling error switches controller support off in the registry's
// options and is returned as a *HostError; re-enable it with SetOptions.
func (r *Registry) ProcessController() error {
	ctrl := r.host.Controller
	if !r.options.EnableControllerSupport || r.current == nil || ctrl == nil {
		r.repeat.Reset()
		return nil
	}

	using, err := ctrl.IsUsingController()
	if err != nil {
		return r.disableController("is_using_controller", err)
	}
	if !using {
		r.repeat.Update(constants.ActionNone)
		return nil
	}

	polled := constants.ActionNone
	for _, p := range controllerPolls {
		if p.action == constants.ActionBack && r.options.Keys.Back == constants.KeyNone {
			continue
		}
		pressed, err := ctrl.IsButtonPressed(constants.ControllerPad, p.button)
		if err != nil {
			return r.disableController("is_button_pressed", err)
		}
		if pressed {
			polled = p.action
			break
		}
	}

	if action := r.repeat.Update(polled); action != constants.ActionNone {
		r.ProcessAction(action)
	}
	return nil
}

func (r *Registry) disableController(op string, err error) error {
	r.options.EnableControllerSupport = false
	r.repeat.Reset()
	r.logger.Error("Controller polling failed, disabling controller support", "op", op, "error", err)
	return NewHostError(op, err)
}

// SetControllerClock replaces the time source of the button repeat.
func (r *Registry) SetControllerClock(now func() time.Time) {
	r.repeat.SetClock(now)
}
