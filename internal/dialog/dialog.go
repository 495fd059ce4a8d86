// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dialog implements the dialog lifecycle: phases, button
// resolution, vetoable notifications, and result conversion.
//
// A Dialog is not safe for concurrent use. Every method must be called on the
// goroutine pumping the dialog's uiloop.Loop; hosts reach the dialog through
// the Input they are handed, which marshals onto that loop.
package dialog

import (
	"fmt"
	"log"

	"github.com/oklog/ulid/v2"

	"github.com/shayne/dialogkit/internal/uiloop"
)

// Option configures a Dialog at construction.
type Option func(*settings)

type settings struct {
	logger *log.Logger
}

// WithLogger logs phase transitions and vetoes to logger.
func WithLogger(logger *log.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

type finishKind int

const (
	finishButton finishKind = iota
	finishClose
	finishForced
)

type waiter[R any] struct {
	done   bool
	result R
	ok     bool
}

// Dialog solicits one decision and converts it to an R.
type Dialog[R any] struct {
	id     string
	loop   *uiloop.Loop
	host   Host
	logger *log.Logger

	phase    Phase
	title    string
	header   string
	content  string
	markdown bool
	role     Role
	modality Modality
	owner    Owner
	convert  ResultConverter[R]

	buttons    []ButtonSpec
	defaultIdx int
	cancelIdx  int

	// per showing
	window      Host
	showing     uint64
	override    *R
	result      R
	hasResult   bool
	hidePending bool
	deciding    bool
	waiters     []*waiter[R]

	onShowing      Handler
	onShown        Handler
	onHiding       VetoHandler
	onHidden       Handler
	onCloseRequest VetoHandler
	onResult       func(R)
}

// New creates an unshown dialog that runs on loop and displays through host.
// A nil convert leaves the result absent unless SetResult provides one.
func New[R any](loop *uiloop.Loop, host Host, convert ResultConverter[R], opts ...Option) *Dialog[R] {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}
	return &Dialog[R]{
		id:         ulid.Make().String(),
		loop:       loop,
		host:       host,
		logger:     s.logger,
		role:       RoleDialog,
		modality:   ModalityApplication,
		convert:    convert,
		defaultIdx: -1,
		cancelIdx:  -1,
	}
}

func (d *Dialog[R]) ID() string   { return d.id }
func (d *Dialog[R]) Phase() Phase { return d.phase }

func (d *Dialog[R]) Title() string           { return d.title }
func (d *Dialog[R]) SetTitle(title string)   { d.title = title }
func (d *Dialog[R]) Header() string          { return d.header }
func (d *Dialog[R]) SetHeader(header string) { d.header = header }
func (d *Dialog[R]) Content() string         { return d.content }

// SetContent sets the body text. markdown asks hosts that can render
// markdown to do so.
func (d *Dialog[R]) SetContent(content string, markdown bool) {
	d.content = content
	d.markdown = markdown
}

// AccessibleRole is the role advertised by the dialog's pane.
func (d *Dialog[R]) AccessibleRole() Role        { return d.role }
func (d *Dialog[R]) SetAccessibleRole(role Role) { d.role = role }

func (d *Dialog[R]) Modality() Modality { return d.modality }

// SetModality must be called before the dialog is shown.
func (d *Dialog[R]) SetModality(m Modality) error {
	if d.phase.Active() {
		return illegal("set modality", d.phase)
	}
	d.modality = m
	return nil
}

// SetOwner sets the surface the dialog is positioned against. It must be
// called before the dialog is shown.
func (d *Dialog[R]) SetOwner(owner Owner) error {
	if d.phase.Active() {
		return illegal("set owner", d.phase)
	}
	d.owner = owner
	return nil
}

func (d *Dialog[R]) SetConverter(convert ResultConverter[R]) { d.convert = convert }

// SetHost replaces the host used by the next showing.
func (d *Dialog[R]) SetHost(host Host) error {
	if d.phase.Active() {
		return illegal("set host", d.phase)
	}
	d.host = host
	return nil
}

// Buttons returns a copy of the button sequence in display order.
func (d *Dialog[R]) Buttons() []ButtonSpec {
	out := make([]ButtonSpec, len(d.buttons))
	copy(out, d.buttons)
	return out
}

// SetButtons replaces the button sequence. It fails while the dialog is
// shown.
func (d *Dialog[R]) SetButtons(buttons ...ButtonSpec) error {
	if d.phase == Shown {
		return illegal("set buttons", d.phase)
	}
	d.buttons = append([]ButtonSpec(nil), buttons...)
	d.resolve()
	return nil
}

// AddButton appends a button. It fails while the dialog is shown.
func (d *Dialog[R]) AddButton(b ButtonSpec) error {
	if d.phase == Shown {
		return illegal("add button", d.phase)
	}
	d.buttons = append(d.buttons, b)
	d.resolve()
	return nil
}

func (d *Dialog[R]) resolve() {
	d.defaultIdx = ResolveDefault(d.buttons)
	d.cancelIdx = ResolveCancel(d.buttons)
}

// DefaultButton returns the resolved default button.
func (d *Dialog[R]) DefaultButton() (ButtonSpec, bool) {
	if d.defaultIdx < 0 {
		return ButtonSpec{}, false
	}
	return d.buttons[d.defaultIdx], true
}

// CancelButton returns the resolved cancel button.
func (d *Dialog[R]) CancelButton() (ButtonSpec, bool) {
	if d.cancelIdx < 0 {
		return ButtonSpec{}, false
	}
	return d.buttons[d.cancelIdx], true
}

func (d *Dialog[R]) OnShowing(h Handler)          { d.onShowing = h }
func (d *Dialog[R]) OnShown(h Handler)            { d.onShown = h }
func (d *Dialog[R]) OnHiding(h VetoHandler)       { d.onHiding = h }
func (d *Dialog[R]) OnHidden(h Handler)           { d.onHidden = h }
func (d *Dialog[R]) OnCloseRequest(h VetoHandler) { d.onCloseRequest = h }

// OnResult registers a listener called after OnHidden whenever a showing
// ends with a result.
func (d *Dialog[R]) OnResult(fn func(R)) { d.onResult = fn }

// Pane snapshots the current configuration.
func (d *Dialog[R]) Pane() Pane {
	return Pane{
		ID:             d.id,
		Title:          d.title,
		Header:         d.header,
		Content:        d.content,
		Markdown:       d.markdown,
		Buttons:        d.Buttons(),
		DefaultIndex:   d.defaultIdx,
		CancelIndex:    d.cancelIdx,
		Modality:       d.modality,
		AccessibleRole: d.role,
	}
}

// Show displays the dialog and returns once it is shown. The result is
// delivered through OnResult, or read with Result after OnHidden.
func (d *Dialog[R]) Show() error {
	if !d.phase.Showable() {
		return illegal("show", d.phase)
	}
	if d.host == nil {
		return ErrNoHost
	}
	prev := d.phase
	d.showing++
	var zero R
	d.override = nil
	d.result = zero
	d.hasResult = false
	d.hidePending = false

	d.transition(Showing)
	d.notify(d.onShowing, nil, false)

	d.window = d.host
	if d.owner != nil {
		d.window.PositionRelativeTo(d.owner)
	}
	if err := d.window.Display(d.Pane(), input[R]{d: d, token: d.showing}); err != nil {
		d.window = nil
		d.transition(prev)
		return fmt.Errorf("display dialog: %w", err)
	}
	d.transition(Shown)
	d.notify(d.onShown, nil, false)
	if d.hidePending && d.phase == Shown {
		d.hidePending = false
		d.Hide()
	}
	return nil
}

// ShowAndWait shows the dialog and pumps the UI loop until it is hidden.
// It must be called on the loop goroutine. ok is false when the showing
// ended without a result.
func (d *Dialog[R]) ShowAndWait() (result R, ok bool, err error) {
	if !d.phase.Showable() {
		return result, false, illegal("show and wait", d.phase)
	}
	if d.loop == nil {
		return result, false, ErrNoLoop
	}
	w := &waiter[R]{}
	d.waiters = append(d.waiters, w)
	if err := d.Show(); err != nil {
		d.waiters = nil
		return result, false, err
	}
	if err := d.loop.RunUntil(func() bool { return w.done }); err != nil {
		return result, false, err
	}
	return w.result, w.ok, nil
}

// Result returns the committed result. It is only defined once the dialog
// is hidden.
func (d *Dialog[R]) Result() (R, bool) {
	if d.phase != Hidden || !d.hasResult {
		var zero R
		return zero, false
	}
	return d.result, true
}

// SetResult overrides the result of the current showing. The converter is
// not consulted when the showing ends. Last write wins.
func (d *Dialog[R]) SetResult(v R) error {
	if d.phase != Showing && d.phase != Shown {
		return illegal("set result", d.phase)
	}
	d.override = &v
	return nil
}

// Press activates the button at index. Buttons whose semantics stay open
// are accepted and ignored.
func (d *Dialog[R]) Press(index int) error {
	if d.phase != Shown {
		return illegal("press", d.phase)
	}
	if index < 0 || index >= len(d.buttons) {
		return fmt.Errorf("%w: index %d", ErrUnknownButton, index)
	}
	if d.deciding {
		return nil
	}
	btn := d.buttons[index]
	if btn.Semantics.StaysOpen() {
		d.logf("dialog %s: %q keeps dialog open", d.id, btn.Label)
		return nil
	}
	d.finish(finishButton, &btn)
	return nil
}

// PressDefault activates the resolved default button. Without one it does
// nothing.
func (d *Dialog[R]) PressDefault() error {
	if d.phase != Shown {
		return illegal("press default", d.phase)
	}
	if d.defaultIdx < 0 {
		return nil
	}
	return d.Press(d.defaultIdx)
}

// RequestClose handles the window manager's close affordance. With a
// resolved cancel button it is the same as pressing that button. Otherwise
// OnCloseRequest may veto, and the dialog hides with the converter applied
// to no button.
func (d *Dialog[R]) RequestClose() {
	if d.phase != Shown || d.deciding {
		return
	}
	if d.cancelIdx >= 0 {
		_ = d.Press(d.cancelIdx)
		return
	}
	if d.onCloseRequest != nil {
		d.deciding = true
		decision := d.onCloseRequest(Event{DialogID: d.id, Phase: d.phase})
		d.deciding = false
		if decision == Veto {
			d.logf("dialog %s: close request vetoed", d.id)
			return
		}
	}
	if d.phase != Shown {
		return
	}
	d.finish(finishClose, nil)
}

// Close is the programmatic form of RequestClose.
func (d *Dialog[R]) Close() {
	d.RequestClose()
}

// Hide forces the dialog down. OnHiding is notified but cannot veto. The
// result is whatever SetResult provided, or absent.
func (d *Dialog[R]) Hide() {
	switch d.phase {
	case Showing:
		d.hidePending = true
	case Shown:
		if !d.deciding {
			d.finish(finishForced, nil)
		}
	}
}

func (d *Dialog[R]) finish(kind finishKind, btn *ButtonSpec) {
	if d.onHiding != nil {
		d.deciding = true
		decision := d.onHiding(Event{DialogID: d.id, Phase: d.phase, Button: btn, Forced: kind == finishForced})
		d.deciding = false
		if decision == Veto && kind != finishForced {
			d.logf("dialog %s: hiding vetoed", d.id)
			return
		}
	}
	if d.phase != Shown {
		return
	}
	d.transition(Hiding)
	switch {
	case d.override != nil:
		d.result = *d.override
		d.hasResult = true
	case kind != finishForced && d.convert != nil:
		d.result = d.convert(btn)
		d.hasResult = true
	}
	if d.window != nil {
		d.window.Dismiss()
		d.window = nil
	}
	d.transition(Hidden)

	waiters := d.waiters
	d.waiters = nil
	for _, w := range waiters {
		w.done = true
		w.result = d.result
		w.ok = d.hasResult
	}
	result, ok := d.result, d.hasResult
	d.notify(d.onHidden, btn, kind == finishForced)
	if ok && d.onResult != nil {
		d.onResult(result)
	}
}

func (d *Dialog[R]) transition(to Phase) {
	from := d.phase
	d.phase = to
	d.logf("dialog %s: %s -> %s", d.id, from, to)
}

func (d *Dialog[R]) notify(h Handler, btn *ButtonSpec, forced bool) {
	if h == nil {
		return
	}
	h(Event{DialogID: d.id, Phase: d.phase, Button: btn, Forced: forced})
}

func (d *Dialog[R]) logf(format string, args ...any) {
	if d.logger == nil {
		return
	}
	d.logger.Printf(format, args...)
}

// BringToFront raises the host window while the dialog is active.
func (d *Dialog[R]) BringToFront() {
	if d.window != nil {
		d.window.BringToFront()
	}
}

type input[R any] struct {
	d     *Dialog[R]
	token uint64
}

func (in input[R]) live() bool {
	return in.d.showing == in.token && in.d.phase == Shown
}

// post runs fn on the loop and reports whether the showing is still live
// afterwards. The reply is false if the loop closes before the task runs.
func (in input[R]) post(fn func()) <-chan bool {
	ch := make(chan bool, 1)
	ok := in.d.loop.Post(func() {
		if in.live() {
			fn()
		}
		ch <- in.live()
	})
	if !ok {
		ch <- false
		return ch
	}
	reply := make(chan bool, 1)
	go func() {
		select {
		case open := <-ch:
			reply <- open
		case <-in.d.loop.Done():
			select {
			case open := <-ch:
				reply <- open
			default:
				reply <- false
			}
		}
	}()
	return reply
}

func (in input[R]) Press(index int) <-chan bool {
	return in.post(func() {
		if err := in.d.Press(index); err != nil {
			in.d.logf("dialog %s: %v", in.d.id, err)
		}
	})
}

func (in input[R]) PressDefault() <-chan bool {
	return in.post(func() {
		_ = in.d.PressDefault()
	})
}

func (in input[R]) RequestClose() <-chan bool {
	return in.post(in.d.RequestClose)
}

func (in input[R]) Lost() {
	in.d.loop.Post(func() {
		if in.live() {
			in.d.logf("dialog %s: host window lost", in.d.id)
			in.d.Hide()
		}
	})
}
