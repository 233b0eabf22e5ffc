package dom

import (
	"google.golang.org/protobuf/types/known/structpb"
)

// Routing strategies a router can derive from a capability snapshot.
const (
	RoutingBrowser = "browser"
	RoutingHash    = "hash"
	RoutingMemory  = "memory"
)

// Capabilities is a point-in-time evaluation of every predicate against one
// window. It is a report, not a cache: call Detect again to refresh it.
type Capabilities struct {
	CanUseDOM                        bool   `json:"can_use_dom" yaml:"can_use_dom"`
	UserAgent                        string `json:"user_agent,omitempty" yaml:"user_agent,omitempty"`
	SupportsHistory                  bool   `json:"supports_history" yaml:"supports_history"`
	SupportsPopStateOnHashChange     bool   `json:"supports_pop_state_on_hash_change" yaml:"supports_pop_state_on_hash_change"`
	SupportsGoWithoutReloadUsingHash bool   `json:"supports_go_without_reload_using_hash" yaml:"supports_go_without_reload_using_hash"`
	LocalStorage                     bool   `json:"local_storage" yaml:"local_storage"`
	SessionStorage                   bool   `json:"session_storage" yaml:"session_storage"`
	Routing                          string `json:"routing" yaml:"routing"`
}

// Detect evaluates the layer against w. Without a usable DOM only
// CanUseDOM and Routing are filled in.
func Detect(w Window) Capabilities {
	if !CanUseDOM(w) {
		return Capabilities{Routing: RoutingMemory}
	}

	caps := Capabilities{
		CanUseDOM:                        true,
		UserAgent:                        w.UserAgent(),
		SupportsHistory:                  SupportsHistory(w),
		SupportsPopStateOnHashChange:     SupportsPopStateOnHashChange(w),
		SupportsGoWithoutReloadUsingHash: SupportsGoWithoutReloadUsingHash(w),
		LocalStorage:                     StorageAvailable(w, LocalStorage),
		SessionStorage:                   StorageAvailable(w, SessionStorage),
		Routing:                          RoutingHash,
	}
	if caps.SupportsHistory {
		caps.Routing = RoutingBrowser
	}
	return caps
}

// Map returns the snapshot keyed by its wire names.
func (c Capabilities) Map() map[string]any {
	m := map[string]any{
		"can_use_dom":                           c.CanUseDOM,
		"supports_history":                      c.SupportsHistory,
		"supports_pop_state_on_hash_change":     c.SupportsPopStateOnHashChange,
		"supports_go_without_reload_using_hash": c.SupportsGoWithoutReloadUsingHash,
		"local_storage":                         c.LocalStorage,
		"session_storage":                       c.SessionStorage,
		"routing":                               c.Routing,
	}
	if c.UserAgent != "" {
		m["user_agent"] = c.UserAgent
	}
	return m
}

// AsStruct renders the snapshot as a protobuf Struct.
func (c Capabilities) AsStruct() (*structpb.Struct, error) {
	return structpb.NewStruct(c.Map())
}
