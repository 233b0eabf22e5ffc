// Package dom is the capability layer a client-side router consults before
// choosing between push-state and hash navigation.
//
// Every function takes the browser environment explicitly as a Window so it
// can be driven by the real host (see HostWindow) or by a simulated one.
// Nothing is cached: each call re-reads the environment it is given.
package dom

// StorageKind names a Web Storage area on the window.
type StorageKind string

const (
	LocalStorage   StorageKind = "localStorage"
	SessionStorage StorageKind = "sessionStorage"
)

// Window is the windowing object of a browser runtime.
type Window interface {
	// Document returns nil when the window exposes no document.
	Document() Document
	UserAgent() string
	// History returns nil when the window exposes no history object.
	History() History
	// Storage resolves a storage area. An error means merely touching the
	// property failed (some browsers throw SecurityError here).
	Storage(kind StorageKind) (Store, error)
	// Confirm shows a blocking yes/no prompt.
	Confirm(message string) bool
}

// Document is the subset of a DOM document the layer inspects.
type Document interface {
	CanCreateElement() bool
}

// History is the subset of window.history the layer inspects.
type History interface {
	HasPushState() bool
}

// Store is a Web Storage area.
type Store interface {
	SetItem(key, value string) error
	RemoveItem(key string) error
	Len() int
}
