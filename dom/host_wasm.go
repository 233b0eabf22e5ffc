//go:build js && wasm
// +build js,wasm

package dom

import (
	"fmt"
	"syscall/js"
)

// JSWindow adapts a browser window object to Window.
type JSWindow struct {
	js.Value
}

// HostWindow returns the global window, or nil when running in a worker or
// another host without one.
func HostWindow() Window {
	w := js.Global().Get("window")
	if !w.Truthy() {
		return nil
	}
	return JSWindow{Value: w}
}

func (w JSWindow) Document() Document {
	d := w.Get("document")
	if !d.Truthy() {
		return nil
	}
	return jsDocument{d}
}

func (w JSWindow) UserAgent() string {
	return w.Get("navigator").Get("userAgent").String()
}

func (w JSWindow) History() History {
	h := w.Get("history")
	if !h.Truthy() {
		return nil
	}
	return jsHistory{h}
}

func (w JSWindow) Storage(kind StorageKind) (store Store, err error) {
	if kind != LocalStorage && kind != SessionStorage {
		return nil, fmt.Errorf("dom: unknown storage kind %q", kind)
	}
	defer catchJS(&err)

	// Reflect.get so a throwing getter surfaces as a js.Error panic.
	s := js.Global().Get("Reflect").Call("get", w.Value, string(kind))
	if !s.Truthy() {
		return nil, fmt.Errorf("dom: window.%s is not available", kind)
	}
	return jsStore{s}, nil
}

func (w JSWindow) Confirm(message string) bool {
	return w.Call("confirm", message).Bool()
}

type jsDocument struct {
	js.Value
}

func (d jsDocument) CanCreateElement() bool {
	return d.Get("createElement").Truthy()
}

type jsHistory struct {
	js.Value
}

func (h jsHistory) HasPushState() bool {
	return js.Global().Get("Reflect").Call("has", h.Value, "pushState").Bool()
}

type jsStore struct {
	js.Value
}

func (s jsStore) SetItem(key, value string) (err error) {
	defer catchJS(&err)
	s.Call("setItem", key, value)
	return nil
}

func (s jsStore) RemoveItem(key string) (err error) {
	defer catchJS(&err)
	s.Call("removeItem", key)
	return nil
}

func (s jsStore) Len() int {
	return s.Get("length").Int()
}

// catchJS turns a JavaScript exception raised by Call into an error.
// Other panics propagate.
func catchJS(err *error) {
	r := recover()
	if r == nil {
		return
	}
	jsErr, ok := r.(js.Error)
	if !ok {
		panic(r)
	}
	*err = exceptionFromJS(jsErr)
}

func exceptionFromJS(e js.Error) error {
	ctor := js.Global().Get("DOMException")
	if !ctor.Truthy() || !e.Value.InstanceOf(ctor) {
		return e
	}
	ex := &DOMException{
		Name:    e.Value.Get("name").String(),
		Message: e.Value.Get("message").String(),
	}
	if code := e.Value.Get("code"); code.Type() == js.TypeNumber {
		ex.Code = code.Int()
	}
	return ex
}

// JSEvent adapts a browser event object to Event, Modifiers and PopState.
type JSEvent struct {
	js.Value
}

func (e JSEvent) Type() string   { return e.Get("type").String() }
func (e JSEvent) MetaKey() bool  { return e.Get("metaKey").Truthy() }
func (e JSEvent) AltKey() bool   { return e.Get("altKey").Truthy() }
func (e JSEvent) CtrlKey() bool  { return e.Get("ctrlKey").Truthy() }
func (e JSEvent) ShiftKey() bool { return e.Get("shiftKey").Truthy() }

func (e JSEvent) State() (any, bool) {
	s := e.Get("state")
	return s, !s.IsUndefined()
}

type jsStandardTarget struct {
	js.Value
}

func (t jsStandardTarget) AddEventListener(name string, l *Listener, capture bool) {
	t.Call("addEventListener", name, l.jsFunc(), capture)
}

func (t jsStandardTarget) RemoveEventListener(name string, l *Listener, capture bool) {
	t.Call("removeEventListener", name, l.jsFunc(), capture)
}

type jsLegacyTarget struct {
	js.Value
}

func (t jsLegacyTarget) AttachEvent(name string, l *Listener) {
	t.Call("attachEvent", name, l.jsFunc())
}

func (t jsLegacyTarget) DetachEvent(name string, l *Listener) {
	t.Call("detachEvent", name, l.jsFunc())
}

// bindHost binds JavaScript objects by probing their methods.
func bindHost(target any) (EventBinder, bool) {
	var v js.Value
	switch t := target.(type) {
	case js.Value:
		v = t
	case JSWindow:
		v = t.Value
	default:
		return nil, false
	}
	if v.Type() != js.TypeObject && v.Type() != js.TypeFunction {
		return nil, false
	}

	switch {
	case v.Get("addEventListener").Truthy():
		return standardBinder{target: jsStandardTarget{v}}, true
	case v.Get("attachEvent").Truthy():
		return legacyBinder{target: jsLegacyTarget{v}}, true
	}
	return nil, false
}

// jsFunc returns the JavaScript function backing l, creating it once so
// removal sees the same function reference as registration.
func (l *Listener) jsFunc() js.Func {
	if fn, ok := l.host.(js.Func); ok {
		return fn
	}
	fn := js.FuncOf(func(this js.Value, args []js.Value) any {
		var ev JSEvent
		if len(args) > 0 {
			ev = JSEvent{args[0]}
		}
		l.Handle(ev)
		return nil
	})
	l.host = fn
	return fn
}

// Release frees the JavaScript function backing the listener. Call it only
// after every registration has been removed.
func (l *Listener) Release() {
	if fn, ok := l.host.(js.Func); ok {
		fn.Release()
	}
	l.host = nil
}
