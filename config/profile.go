package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/nmxmxh/navcaps/dom"
	"github.com/nmxmxh/navcaps/sim"
	"github.com/nmxmxh/navcaps/utils"
)

// StateMissing means the window has no store of that kind at all.
// StateAccessError means touching the store property throws.
const (
	StateMissing     = "missing"
	StateAccessError = "access-error"
)

// Profile describes a simulated browser.
//
//	user_agent = "Mozilla/5.0 ... Firefox/121.0"
//	history = true
//	push_state = true
//
//	[storage]
//	local = "ok"
//	session = "disabled"
type Profile struct {
	Name      string  `toml:"name"`
	UserAgent string  `toml:"user_agent"`
	Document  bool    `toml:"document"`
	History   bool    `toml:"history"`
	PushState bool    `toml:"push_state"`
	Storage   Storage `toml:"storage"`
}

// Storage holds the state of each store; see sim.StoreForState.
type Storage struct {
	Local   string `toml:"local"`
	Session string `toml:"session"`
}

// DefaultProfile is a modern desktop Chrome with working storage.
func DefaultProfile() Profile {
	return Profile{
		Name:      "default",
		UserAgent: sim.UAChrome,
		Document:  true,
		History:   true,
		PushState: true,
		Storage:   Storage{Local: sim.StateOK, Session: sim.StateOK},
	}
}

// LoadProfile reads a TOML profile. Keys absent from the file keep their
// DefaultProfile values.
func LoadProfile(path string) (Profile, error) {
	p := DefaultProfile()
	if _, err := toml.DecodeFile(path, &p); err != nil {
		return Profile{}, utils.WrapError(err, fmt.Sprintf("load profile %s", path))
	}
	return p, nil
}

// Window builds the simulated window the profile describes.
func (p Profile) Window() (*sim.Window, error) {
	w := sim.NewWindow().WithUserAgent(p.UserAgent)

	if !p.Document {
		w.WithoutDocument()
	}
	switch {
	case !p.History:
		w.WithoutHistory()
	case !p.PushState:
		w.WithHistoryWithoutPushState()
	}

	stores := []struct {
		kind  dom.StorageKind
		state string
	}{
		{dom.LocalStorage, p.Storage.Local},
		{dom.SessionStorage, p.Storage.Session},
	}
	for _, s := range stores {
		switch s.state {
		case StateMissing:
			w.WithStore(s.kind, nil)
		case StateAccessError:
			w.WithStoreAccessError(s.kind, sim.ErrSecurity)
		default:
			store, ok := sim.StoreForState(s.state)
			if !ok {
				return nil, utils.NewError(fmt.Sprintf("profile %q: unknown %s state %q", p.Name, s.kind, s.state))
			}
			w.WithStore(s.kind, store)
		}
	}
	return w, nil
}
