// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dialog

// Decision is a vetoable handler's answer.
type Decision int

const (
	Proceed Decision = iota
	Veto
)

func (d Decision) String() string {
	if d == Veto {
		return "veto"
	}
	return "proceed"
}

// Event is passed to lifecycle handlers.
type Event struct {
	DialogID string
	Phase    Phase
	// Button is the activated button, nil when none triggered the event.
	Button *ButtonSpec
	// Forced is set on hiding events that cannot be vetoed.
	Forced bool
}

// Handler observes a lifecycle event.
type Handler func(Event)

// VetoHandler observes a lifecycle event and may refuse the transition.
type VetoHandler func(Event) Decision
