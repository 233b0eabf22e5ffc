package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmxmxh/navcaps/dom"
)

func TestStoreForState(t *testing.T) {
	for _, state := range []string{StateOK, StateFull, StateFirefoxFull, StateDisabled, StateBroken, ""} {
		s, ok := StoreForState(state)
		require.True(t, ok, state)
		require.NotNil(t, s, state)
	}

	_, ok := StoreForState("flaky")
	assert.False(t, ok)
}

func TestStore_FailureInjection(t *testing.T) {
	s := NewFullStore()
	assert.ErrorIs(t, s.SetItem("k", "v"), ErrQuotaExceeded)
	assert.Equal(t, []string{"session"}, s.Keys())
	assert.NoError(t, s.RemoveItem("session"))
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, int64(1), s.Sets())
	assert.Equal(t, int64(1), s.Removes())
}

func TestWindow_Storage(t *testing.T) {
	w := NewWindow().WithStoreAccessError(dom.LocalStorage, ErrSecurity)

	_, err := w.Storage(dom.LocalStorage)
	assert.ErrorIs(t, err, ErrSecurity)

	store, err := w.Storage(dom.SessionStorage)
	require.NoError(t, err)
	assert.Same(t, w.Store(dom.SessionStorage), store)

	w.WithStore(dom.LocalStorage, NewStore())
	_, err = w.Storage(dom.LocalStorage)
	assert.NoError(t, err)
}

func TestTarget_RemoveMatchesCapture(t *testing.T) {
	target := NewTarget()
	l := dom.NewListener(func(dom.Event) {})

	target.AddEventListener("click", l, true)
	target.RemoveEventListener("click", l, false)
	assert.Equal(t, []bool{true}, target.Captures("click"))

	target.RemoveEventListener("click", l, true)
	assert.Empty(t, target.Captures("click"))
}
