package internal

import (
	"time"

	"github.com/BrandonKowalski/nativemenu/pkg/nativemenu/constants"
)

// RepeatGate turns a polled "currently held" action into discrete presses.
// A new action fires immediately; holding it fires again after the repeat
// delay and then once per repeat interval.
type RepeatGate struct {
	held           constants.Action
	lastRepeatTime time.Time
	repeatDelay    time.Duration
	repeatInterval time.Duration
	hasRepeated    bool

	now func() time.Time
}

// NewRepeatGate creates a gate with default timing.
func NewRepeatGate() *RepeatGate {
	return NewRepeatGateWithTiming(constants.DefaultControllerRepeatDelay, constants.DefaultControllerRepeatInterval)
}

// NewRepeatGateWithTiming creates a gate with custom timing. Non-positive
// durations fall back to the defaults.
func NewRepeatGateWithTiming(delay, interval time.Duration) *RepeatGate {
	if delay <= 0 {
		delay = constants.DefaultControllerRepeatDelay
	}
	if interval <= 0 {
		interval = constants.DefaultControllerRepeatInterval
	}
	return &RepeatGate{
		repeatDelay:    delay,
		repeatInterval: interval,
		now:            time.Now,
	}
}

// SetClock replaces the time source.
func (g *RepeatGate) SetClock(now func() time.Time) {
	if now != nil {
		g.now = now
	}
}

// SetTiming changes the delays without dropping the held state.
func (g *RepeatGate) SetTiming(delay, interval time.Duration) {
	if delay > 0 {
		g.repeatDelay = delay
	}
	if interval > 0 {
		g.repeatInterval = interval
	}
}

// Held returns the action currently held, or ActionNone.
func (g *RepeatGate) Held() constants.Action {
	return g.held
}

// Update reports the action polled this tick and returns the action that
// should be dispatched, or ActionNone.
func (g *RepeatGate) Update(action constants.Action) constants.Action {
	now := g.now()

	if action == constants.ActionNone {
		g.held = constants.ActionNone
		g.hasRepeated = false
		g.lastRepeatTime = now
		return constants.ActionNone
	}

	if action != g.held {
		g.held = action
		g.hasRepeated = false
		g.lastRepeatTime = now
		return action
	}

	// Use repeatDelay for first repeat, then repeatInterval for subsequent repeats
	threshold := g.repeatInterval
	if !g.hasRepeated {
		threshold = g.repeatDelay
	}

	if now.Sub(g.lastRepeatTime) >= threshold {
		g.lastRepeatTime = now
		g.hasRepeated = true
		return action
	}

	return constants.ActionNone
}

// Reset forgets the held action.
func (g *RepeatGate) Reset() {
	g.held = constants.ActionNone
	g.hasRepeated = false
	g.lastRepeatTime = g.now()
}
