// Package sim is an in-memory browser environment for exercising the dom
// package without a JavaScript host.
package sim

import (
	"github.com/nmxmxh/navcaps/dom"
)

// Sample user agents for the engines the dom rules single out.
const (
	UAChrome          = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	UAFirefox         = "Mozilla/5.0 (X11; Linux x86_64; rv:121.0) Gecko/20100101 Firefox/121.0"
	UAIE11            = "Mozilla/5.0 (Windows NT 10.0; WOW64; Trident/7.0; rv:11.0) like Gecko"
	UAAndroid2        = "Mozilla/5.0 (Linux; U; Android 2.3.6; en-us; Nexus S Build/GRK39F) AppleWebKit/533.1 (KHTML, like Gecko) Version/4.0 Mobile Safari/533.1"
	UAAndroid40       = "Mozilla/5.0 (Linux; U; Android 4.0.4; en-us; GT-I9300 Build/IMM76D) AppleWebKit/534.30 (KHTML, like Gecko) Version/4.0 Mobile Safari/534.30"
	UAAndroid40Chrome = "Mozilla/5.0 (Linux; Android 4.0.4; Galaxy Nexus Build/IMM76B) AppleWebKit/535.19 (KHTML, like Gecko) Chrome/18.0.1025.133 Mobile Safari/535.19"
	UAWindowsPhone    = "Mozilla/5.0 (Mobile; Windows Phone 8.1; Android 4.0; ARM; Trident/7.0; Touch; rv:11.0; IEMobile/11.0; NOKIA; Lumia 635) like iPhone OS 7_0_3 Mac OS X AppleWebKit/537 (KHTML, like Gecko) Mobile Safari/537"
	UAChromeIOS       = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) CriOS/120.0.6099.119 Mobile/15E148 Safari/604.1"
)

// Window is a configurable dom.Window. The zero value is not usable; start
// from NewWindow.
type Window struct {
	userAgent string
	document  *Document
	history   *History
	stores    map[dom.StorageKind]*Store
	storeErrs map[dom.StorageKind]error
	confirm   func(message string) bool
	prompts   []string
	*Target
}

// NewWindow returns a window with a document, a pushState-capable history,
// empty working stores, a standard event target and a Chrome user agent.
func NewWindow() *Window {
	return &Window{
		userAgent: UAChrome,
		document:  &Document{createElement: true},
		history:   &History{pushState: true},
		stores: map[dom.StorageKind]*Store{
			dom.LocalStorage:   NewStore(),
			dom.SessionStorage: NewStore(),
		},
		storeErrs: map[dom.StorageKind]error{},
		confirm:   func(string) bool { return true },
		Target:    NewTarget(),
	}
}

// WithUserAgent sets navigator.userAgent.
func (w *Window) WithUserAgent(ua string) *Window {
	w.userAgent = ua
	return w
}

// WithoutDocument removes window.document.
func (w *Window) WithoutDocument() *Window {
	w.document = nil
	return w
}

// WithInertDocument keeps a document that cannot create elements.
func (w *Window) WithInertDocument() *Window {
	w.document = &Document{}
	return w
}

// WithoutHistory removes window.history.
func (w *Window) WithoutHistory() *Window {
	w.history = nil
	return w
}

// WithHistoryWithoutPushState keeps a history object lacking pushState.
func (w *Window) WithHistoryWithoutPushState() *Window {
	w.history = &History{}
	return w
}

// WithStore replaces the store of the given kind.
func (w *Window) WithStore(kind dom.StorageKind, s *Store) *Window {
	w.stores[kind] = s
	delete(w.storeErrs, kind)
	return w
}

// WithStoreAccessError makes resolving the store fail with err.
func (w *Window) WithStoreAccessError(kind dom.StorageKind, err error) *Window {
	w.storeErrs[kind] = err
	return w
}

// WithConfirm sets the prompt answer function.
func (w *Window) WithConfirm(fn func(message string) bool) *Window {
	w.confirm = fn
	return w
}

func (w *Window) Document() dom.Document {
	if w.document == nil {
		return nil
	}
	return w.document
}

func (w *Window) UserAgent() string {
	return w.userAgent
}

func (w *Window) History() dom.History {
	if w.history == nil {
		return nil
	}
	return w.history
}

func (w *Window) Storage(kind dom.StorageKind) (dom.Store, error) {
	if err := w.storeErrs[kind]; err != nil {
		return nil, err
	}
	s, ok := w.stores[kind]
	if !ok || s == nil {
		return nil, nil
	}
	return s, nil
}

func (w *Window) Confirm(message string) bool {
	w.prompts = append(w.prompts, message)
	return w.confirm(message)
}

// Prompts returns every message shown through Confirm, oldest first.
func (w *Window) Prompts() []string {
	return append([]string(nil), w.prompts...)
}

// Store returns the simulated store of the given kind.
func (w *Window) Store(kind dom.StorageKind) *Store {
	return w.stores[kind]
}

// Document is a simulated DOM document.
type Document struct {
	createElement bool
}

func (d *Document) CanCreateElement() bool {
	return d.createElement
}

// History is a simulated window.history.
type History struct {
	pushState bool
}

func (h *History) HasPushState() bool {
	return h.pushState
}
