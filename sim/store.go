package sim

import (
	"sort"

	"go.uber.org/atomic"

	"github.com/nmxmxh/navcaps/dom"
)

// Browser-shaped storage failures.
var (
	// ErrQuotaExceeded is what WebKit and Blink raise.
	ErrQuotaExceeded = &dom.DOMException{Name: "QuotaExceededError", Code: 22, Message: "The quota has been exceeded."}
	// ErrFirefoxQuotaReached is what Gecko raises.
	ErrFirefoxQuotaReached = &dom.DOMException{Name: "NS_ERROR_DOM_QUOTA_REACHED", Code: 1014, Message: "Persistent storage maximum size reached"}
	// ErrSecurity is raised when storage is blocked by policy.
	ErrSecurity = &dom.DOMException{Name: "SecurityError", Code: 18, Message: "The operation is insecure."}
)

// Store is an in-memory Web Storage area with injectable failures.
type Store struct {
	items     map[string]string
	setErr    error
	removeErr error

	sets    atomic.Int64
	removes atomic.Int64
}

// NewStore returns an empty, working store.
func NewStore() *Store {
	return &Store{items: map[string]string{}}
}

// NewFullStore returns a store holding entries that rejects writes with a
// quota error, like a store that really ran out of space.
func NewFullStore() *Store {
	return NewStore().With("session", "x").FailSetWith(ErrQuotaExceeded)
}

// NewDisabledStore returns an empty store that rejects every write with a
// quota error, like Safari private browsing.
func NewDisabledStore() *Store {
	return NewStore().FailSetWith(ErrQuotaExceeded)
}

// With stores an entry directly, bypassing failure injection.
func (s *Store) With(key, value string) *Store {
	s.items[key] = value
	return s
}

// FailSetWith makes SetItem return err.
func (s *Store) FailSetWith(err error) *Store {
	s.setErr = err
	return s
}

// FailRemoveWith makes RemoveItem return err.
func (s *Store) FailRemoveWith(err error) *Store {
	s.removeErr = err
	return s
}

func (s *Store) SetItem(key, value string) error {
	s.sets.Inc()
	if s.setErr != nil {
		return s.setErr
	}
	s.items[key] = value
	return nil
}

func (s *Store) RemoveItem(key string) error {
	s.removes.Inc()
	if s.removeErr != nil {
		return s.removeErr
	}
	delete(s.items, key)
	return nil
}

func (s *Store) Len() int {
	return len(s.items)
}

// Keys returns the stored keys in sorted order.
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.items))
	for k := range s.items {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Sets returns how many times SetItem was called.
func (s *Store) Sets() int64 {
	return s.sets.Load()
}

// Removes returns how many times RemoveItem was called.
func (s *Store) Removes() int64 {
	return s.removes.Load()
}

// Store states accepted by StoreForState.
const (
	StateOK          = "ok"
	StateFull        = "full"
	StateFirefoxFull = "firefox-full"
	StateDisabled    = "disabled"
	StateBroken      = "broken"
)

// StoreForState builds a store matching a named condition. The bool is
// false for unknown names.
func StoreForState(state string) (*Store, bool) {
	switch state {
	case StateOK, "":
		return NewStore(), true
	case StateFull:
		return NewFullStore(), true
	case StateFirefoxFull:
		return NewStore().With("session", "x").FailSetWith(ErrFirefoxQuotaReached), true
	case StateDisabled:
		return NewDisabledStore(), true
	case StateBroken:
		return NewStore().With("session", "x").FailSetWith(ErrSecurity), true
	}
	return nil, false
}
