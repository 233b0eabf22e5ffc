//go:build !js || !wasm
// +build !js !wasm

package dom

// HostWindow returns nil on native platforms: there is no browser window.
func HostWindow() Window {
	return nil
}

func bindHost(target any) (EventBinder, bool) {
	return nil, false
}

// Release frees host resources held by the listener. No-op natively.
func (l *Listener) Release() {
	l.host = nil
}
