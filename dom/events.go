package dom

import "errors"

// ErrNoEventBinding is returned when a target supports neither
// addEventListener nor attachEvent.
var ErrNoEventBinding = errors.New("dom: target has no addEventListener or attachEvent method")

// Event is a dispatched DOM event.
type Event interface {
	Type() string
}

// Listener is a registrable event handler. Targets match registrations by
// Listener identity, the way browsers match function references.
type Listener struct {
	fn func(Event)

	// host keeps the runtime-specific callback (a js.Func under wasm) so the
	// same function object is handed to both attach and detach.
	host any
}

// NewListener wraps fn as a Listener.
func NewListener(fn func(Event)) *Listener {
	return &Listener{fn: fn}
}

// Handle invokes the wrapped function.
func (l *Listener) Handle(e Event) {
	if l.fn != nil {
		l.fn(e)
	}
}

// StandardTarget is a target using the W3C registration methods.
type StandardTarget interface {
	AddEventListener(name string, l *Listener, capture bool)
	RemoveEventListener(name string, l *Listener, capture bool)
}

// LegacyTarget is a target using the old IE registration methods, which
// take the "on"-prefixed event name.
type LegacyTarget interface {
	AttachEvent(name string, l *Listener)
	DetachEvent(name string, l *Listener)
}

// EventBinder registers listeners on one target regardless of the
// convention the target speaks.
type EventBinder interface {
	Attach(name string, l *Listener)
	Detach(name string, l *Listener)
}

type standardBinder struct {
	target StandardTarget
}

func (b standardBinder) Attach(name string, l *Listener) {
	b.target.AddEventListener(name, l, false)
}

func (b standardBinder) Detach(name string, l *Listener) {
	b.target.RemoveEventListener(name, l, false)
}

type legacyBinder struct {
	target LegacyTarget
}

func (b legacyBinder) Attach(name string, l *Listener) {
	b.target.AttachEvent("on"+name, l)
}

func (b legacyBinder) Detach(name string, l *Listener) {
	b.target.DetachEvent("on"+name, l)
}

// Bind picks the registration convention of target once. The standard
// methods win when a target offers both.
func Bind(target any) (EventBinder, error) {
	if b, ok := bindHost(target); ok {
		return b, nil
	}
	switch t := target.(type) {
	case StandardTarget:
		return standardBinder{target: t}, nil
	case LegacyTarget:
		return legacyBinder{target: t}, nil
	}
	return nil, ErrNoEventBinding
}

// AddEventListener registers l for the named event on target without
// capture. Duplicate registrations follow the target's own rules.
func AddEventListener(target any, name string, l *Listener) error {
	b, err := Bind(target)
	if err != nil {
		return err
	}
	b.Attach(name, l)
	return nil
}

// RemoveEventListener undoes AddEventListener.
func RemoveEventListener(target any, name string, l *Listener) error {
	b, err := Bind(target)
	if err != nil {
		return err
	}
	b.Detach(name, l)
	return nil
}
