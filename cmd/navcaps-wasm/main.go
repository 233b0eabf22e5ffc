//go:build js && wasm
// +build js,wasm

package main

import (
	"syscall/js"

	"github.com/nmxmxh/navcaps/dom"
	"github.com/nmxmxh/navcaps/utils"
)

// listeners maps JavaScript callbacks to the Listener registered for them,
// so removeEventListener(target, name, fn) finds the same registration.
var listeners = map[string][]*registration{}

type registration struct {
	fn       js.Value
	listener *dom.Listener
}

func main() {
	api := js.Global().Get("Object").New()

	api.Set("canUseDOM", dom.HostCanUseDOM())
	api.Set("addEventListener", js.FuncOf(jsAddEventListener))
	api.Set("removeEventListener", js.FuncOf(jsRemoveEventListener))
	api.Set("getConfirmation", js.FuncOf(jsGetConfirmation))
	api.Set("isModifiedEvent", js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		return dom.IsModifiedEvent(dom.JSEvent{Value: args[0]})
	}))
	api.Set("supportsHistory", js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		return dom.SupportsHistory(dom.HostWindow())
	}))
	api.Set("supportsPopStateOnHashChange", js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		return dom.SupportsPopStateOnHashChange(dom.HostWindow())
	}))
	api.Set("supportsGoWithoutReloadUsingHash", js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		return dom.SupportsGoWithoutReloadUsingHash(dom.HostWindow())
	}))
	api.Set("isExtraneousPopstateEvent", js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		return dom.IsExtraneousPopstateEvent(dom.HostWindow(), dom.JSEvent{Value: args[0]})
	}))
	api.Set("storageAvailable", js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		if len(args) < 1 {
			return false
		}
		return dom.StorageAvailable(dom.HostWindow(), dom.StorageKind(args[0].String()))
	}))
	api.Set("detect", js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		return js.ValueOf(dom.Detect(dom.HostWindow()).Map())
	}))

	js.Global().Set("navcaps", api)
	utils.Info("navcaps ready", utils.Bool("can_use_dom", dom.HostCanUseDOM()))

	select {}
}

func jsAddEventListener(this js.Value, args []js.Value) interface{} {
	if len(args) < 3 {
		return jsError("addEventListener(target, name, listener)")
	}
	target, name, fn := args[0], args[1].String(), args[2]

	l := lookup(name, fn)
	if l == nil {
		l = dom.NewListener(func(e dom.Event) {
			if ev, ok := e.(dom.JSEvent); ok {
				fn.Invoke(ev.Value)
				return
			}
			fn.Invoke()
		})
		listeners[name] = append(listeners[name], &registration{fn: fn, listener: l})
	}

	if err := dom.AddEventListener(target, name, l); err != nil {
		return jsError(err.Error())
	}
	return nil
}

func jsRemoveEventListener(this js.Value, args []js.Value) interface{} {
	if len(args) < 3 {
		return jsError("removeEventListener(target, name, listener)")
	}
	target, name, fn := args[0], args[1].String(), args[2]

	l := lookup(name, fn)
	if l == nil {
		return nil
	}
	if err := dom.RemoveEventListener(target, name, l); err != nil {
		return jsError(err.Error())
	}
	return nil
}

func jsGetConfirmation(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return jsError("getConfirmation(message, callback)")
	}
	callback := args[1]
	dom.GetConfirmation(dom.HostWindow(), args[0].String(), func(confirmed bool) {
		callback.Invoke(confirmed)
	})
	return nil
}

func jsError(msg string) js.Value {
	return js.ValueOf(map[string]interface{}{"error": msg})
}

func lookup(name string, fn js.Value) *dom.Listener {
	for _, r := range listeners[name] {
		if r.fn.Equal(fn) {
			return r.listener
		}
	}
	return nil
}
