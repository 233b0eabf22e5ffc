package sim

import "github.com/nmxmxh/navcaps/dom"

// Event is a synthetic DOM event.
type Event struct {
	Name         string
	Meta         bool
	Alt          bool
	Ctrl         bool
	Shift        bool
	StateValue   any
	StateDefined bool
}

// Click returns a click event with no modifier keys held.
func Click() Event {
	return Event{Name: "click"}
}

// PopState returns a popstate event carrying state. A nil state models
// history.state === null.
func PopState(state any) Event {
	return Event{Name: "popstate", StateValue: state, StateDefined: true}
}

// UndefinedPopState returns a popstate event whose state is undefined.
func UndefinedPopState() Event {
	return Event{Name: "popstate"}
}

func (e Event) Type() string   { return e.Name }
func (e Event) MetaKey() bool  { return e.Meta }
func (e Event) AltKey() bool   { return e.Alt }
func (e Event) CtrlKey() bool  { return e.Ctrl }
func (e Event) ShiftKey() bool { return e.Shift }

func (e Event) State() (any, bool) {
	return e.StateValue, e.StateDefined
}

type registration struct {
	listener *dom.Listener
	capture  bool
}

// Target is an event target speaking the standard addEventListener
// convention. Like browsers, it ignores a duplicate (type, listener,
// capture) registration.
type Target struct {
	listeners map[string][]registration
}

// NewTarget returns a target with no listeners.
func NewTarget() *Target {
	return &Target{listeners: map[string][]registration{}}
}

func (t *Target) AddEventListener(name string, l *dom.Listener, capture bool) {
	for _, r := range t.listeners[name] {
		if r.listener == l && r.capture == capture {
			return
		}
	}
	t.listeners[name] = append(t.listeners[name], registration{listener: l, capture: capture})
}

func (t *Target) RemoveEventListener(name string, l *dom.Listener, capture bool) {
	regs := t.listeners[name]
	for i, r := range regs {
		if r.listener == l && r.capture == capture {
			t.listeners[name] = append(regs[:i:i], regs[i+1:]...)
			return
		}
	}
}

// Dispatch delivers e to every listener registered for its type and
// returns how many were invoked.
func (t *Target) Dispatch(e dom.Event) int {
	regs := append([]registration(nil), t.listeners[e.Type()]...)
	for _, r := range regs {
		r.listener.Handle(e)
	}
	return len(regs)
}

// Captures returns the capture flag of every registration for name.
func (t *Target) Captures(name string) []bool {
	var out []bool
	for _, r := range t.listeners[name] {
		out = append(out, r.capture)
	}
	return out
}

// LegacyTarget is an event target that only offers attachEvent and
// detachEvent, keyed by "on"-prefixed names as old Internet Explorer does.
type LegacyTarget struct {
	handlers map[string][]*dom.Listener
}

// NewLegacyTarget returns a legacy target with no handlers.
func NewLegacyTarget() *LegacyTarget {
	return &LegacyTarget{handlers: map[string][]*dom.Listener{}}
}

func (t *LegacyTarget) AttachEvent(name string, l *dom.Listener) {
	for _, h := range t.handlers[name] {
		if h == l {
			return
		}
	}
	t.handlers[name] = append(t.handlers[name], l)
}

func (t *LegacyTarget) DetachEvent(name string, l *dom.Listener) {
	hs := t.handlers[name]
	for i, h := range hs {
		if h == l {
			t.handlers[name] = append(hs[:i:i], hs[i+1:]...)
			return
		}
	}
}

// Dispatch fires e through the "on"+type handler list.
func (t *LegacyTarget) Dispatch(e dom.Event) int {
	hs := append([]*dom.Listener(nil), t.handlers["on"+e.Type()]...)
	for _, h := range hs {
		h.Handle(e)
	}
	return len(hs)
}

// Names returns the handler names that currently have handlers attached.
func (t *LegacyTarget) Names() []string {
	var out []string
	for name, hs := range t.handlers {
		if len(hs) > 0 {
			out = append(out, name)
		}
	}
	return out
}
