package panel

import "github.com/grovetools/jobslots/pkg/slots"

// StateMsg delivers a new console state to the panel.
type StateMsg struct {
	State *slots.ConsoleState
}

// ErrMsg reports a failed adjustment. The panel shows it in the footer.
type ErrMsg struct {
	Intent slots.AdjustmentIntent
	Err    error
}
