package dom

import "sync"

// CanUseDOM reports whether w is a window with a document that can create
// elements. Functions that read the DOM assume the caller checked this first.
func CanUseDOM(w Window) bool {
	if w == nil {
		return false
	}
	doc := w.Document()
	return doc != nil && doc.CanCreateElement()
}

var hostCanUseDOM = sync.OnceValue(func() bool {
	return CanUseDOM(HostWindow())
})

// HostCanUseDOM is CanUseDOM for the runtime this binary is executing in,
// evaluated on first access.
func HostCanUseDOM() bool {
	return hostCanUseDOM()
}
