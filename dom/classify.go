package dom

import "strings"

// Modifiers exposes the modifier-key flags of a mouse or keyboard event.
type Modifiers interface {
	MetaKey() bool
	AltKey() bool
	CtrlKey() bool
	ShiftKey() bool
}

// PopState exposes the state carried by a popstate event. defined is false
// when the state is undefined; a null state is defined with a nil value.
type PopState interface {
	State() (state any, defined bool)
}

// IsModifiedEvent reports whether any modifier key was held, in which case
// a link click should keep its default browser behavior.
func IsModifiedEvent(e Modifiers) bool {
	return e.MetaKey() || e.AltKey() || e.CtrlKey() || e.ShiftKey()
}

// IsExtraneousPopstateEvent reports whether a popstate event should be
// ignored. Chrome on iOS fires popstate with undefined state on ordinary
// navigation, so its events are never treated as extraneous.
func IsExtraneousPopstateEvent(w Window, e PopState) bool {
	_, defined := e.State()
	return !defined && !strings.Contains(w.UserAgent(), "CriOS")
}
