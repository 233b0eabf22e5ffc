package dom

import "strings"

// Capability names a navigation feature a UA rule can veto.
type Capability string

const (
	CapHistory                  Capability = "history"
	CapPopStateOnHashChange     Capability = "popstate_on_hash_change"
	CapGoWithoutReloadUsingHash Capability = "go_without_reload_using_hash"
)

// Rule vetoes a capability for user agents that contain at least one of
// AnyOf, all of AllOf and none of NoneOf. Matching is case-sensitive.
type Rule struct {
	Name       string     `json:"name" yaml:"name"`
	Capability Capability `json:"capability" yaml:"capability"`
	AnyOf      []string   `json:"any_of,omitempty" yaml:"any_of,omitempty"`
	AllOf      []string   `json:"all_of,omitempty" yaml:"all_of,omitempty"`
	NoneOf     []string   `json:"none_of,omitempty" yaml:"none_of,omitempty"`
}

// Matches reports whether ua triggers the rule.
func (r Rule) Matches(ua string) bool {
	if len(r.AnyOf) > 0 {
		hit := false
		for _, s := range r.AnyOf {
			if strings.Contains(ua, s) {
				hit = true
				break
			}
		}
		if !hit {
			return false
		}
	}
	for _, s := range r.AllOf {
		if !strings.Contains(ua, s) {
			return false
		}
	}
	for _, s := range r.NoneOf {
		if strings.Contains(ua, s) {
			return false
		}
	}
	return true
}

// Known-bad engines. Anything not listed is assumed capable.
var uaRules = []Rule{
	{
		// Old Android stock browsers expose pushState but do not restore
		// state correctly. Windows Phone UAs also say "Mobile Safari" and
		// are fine. Adapted from Modernizr's history feature detect.
		Name:       "android-stock-browser",
		Capability: CapHistory,
		AnyOf:      []string{"Android 2.", "Android 4.0"},
		AllOf:      []string{"Mobile Safari"},
		NoneOf:     []string{"Chrome", "Windows Phone"},
	},
	{
		// IE10 and IE11 do not fire popstate when only the hash changes.
		Name:       "trident",
		Capability: CapPopStateOnHashChange,
		AllOf:      []string{"Trident"},
	},
	{
		// go(n) on a hash history triggers a full page reload.
		Name:       "firefox",
		Capability: CapGoWithoutReloadUsingHash,
		AllOf:      []string{"Firefox"},
	},
}

// Rules returns a copy of the user-agent rule table.
func Rules() []Rule {
	out := make([]Rule, len(uaRules))
	copy(out, uaRules)
	return out
}

func vetoed(ua string, c Capability) bool {
	for _, r := range uaRules {
		if r.Capability == c && r.Matches(ua) {
			return true
		}
	}
	return false
}

// SupportsHistory reports whether the HTML5 history API can be trusted.
func SupportsHistory(w Window) bool {
	if vetoed(w.UserAgent(), CapHistory) {
		return false
	}
	h := w.History()
	return h != nil && h.HasPushState()
}

// SupportsPopStateOnHashChange reports whether the browser fires popstate
// when only the URL hash changes.
func SupportsPopStateOnHashChange(w Window) bool {
	return !vetoed(w.UserAgent(), CapPopStateOnHashChange)
}

// SupportsGoWithoutReloadUsingHash reports whether history.go(n) can be
// used with hash history without a full page reload.
func SupportsGoWithoutReloadUsingHash(w Window) bool {
	return !vetoed(w.UserAgent(), CapGoWithoutReloadUsingHash)
}
