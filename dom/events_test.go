package dom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmxmxh/navcaps/dom"
	"github.com/nmxmxh/navcaps/sim"
)

func TestEventBridge_StandardRoundTrip(t *testing.T) {
	target := sim.NewTarget()
	calls := 0
	l := dom.NewListener(func(dom.Event) { calls++ })

	require.NoError(t, dom.AddEventListener(target, "popstate", l))
	assert.Equal(t, 1, target.Dispatch(sim.UndefinedPopState()))
	assert.Equal(t, 1, calls)

	require.NoError(t, dom.RemoveEventListener(target, "popstate", l))
	assert.Equal(t, 0, target.Dispatch(sim.UndefinedPopState()))
	assert.Equal(t, 1, calls)
}

func TestEventBridge_StandardUsesBubblePhase(t *testing.T) {
	target := sim.NewTarget()
	l := dom.NewListener(func(dom.Event) {})

	require.NoError(t, dom.AddEventListener(target, "hashchange", l))
	assert.Equal(t, []bool{false}, target.Captures("hashchange"))
}

func TestEventBridge_DuplicateAddFollowsTarget(t *testing.T) {
	target := sim.NewTarget()
	calls := 0
	l := dom.NewListener(func(dom.Event) { calls++ })

	require.NoError(t, dom.AddEventListener(target, "click", l))
	require.NoError(t, dom.AddEventListener(target, "click", l))
	target.Dispatch(sim.Click())
	assert.Equal(t, 1, calls)

	// Removing twice is harmless.
	require.NoError(t, dom.RemoveEventListener(target, "click", l))
	require.NoError(t, dom.RemoveEventListener(target, "click", l))
	assert.Equal(t, 0, target.Dispatch(sim.Click()))
}

func TestEventBridge_LegacyRoundTrip(t *testing.T) {
	target := sim.NewLegacyTarget()
	calls := 0
	l := dom.NewListener(func(dom.Event) { calls++ })

	require.NoError(t, dom.AddEventListener(target, "hashchange", l))
	assert.Equal(t, []string{"onhashchange"}, target.Names())
	assert.Equal(t, 1, target.Dispatch(sim.Event{Name: "hashchange"}))

	require.NoError(t, dom.RemoveEventListener(target, "hashchange", l))
	assert.Empty(t, target.Names())
	assert.Equal(t, 0, target.Dispatch(sim.Event{Name: "hashchange"}))
	assert.Equal(t, 1, calls)
}

type dualTarget struct {
	*sim.Target
	*sim.LegacyTarget
}

func TestBind_PrefersStandard(t *testing.T) {
	target := dualTarget{Target: sim.NewTarget(), LegacyTarget: sim.NewLegacyTarget()}
	l := dom.NewListener(func(dom.Event) {})

	b, err := dom.Bind(target)
	require.NoError(t, err)
	b.Attach("popstate", l)

	assert.Equal(t, []bool{false}, target.Captures("popstate"))
	assert.Empty(t, target.Names())
}

func TestEventBridge_NoBinding(t *testing.T) {
	l := dom.NewListener(func(dom.Event) {})

	err := dom.AddEventListener(struct{}{}, "popstate", l)
	assert.ErrorIs(t, err, dom.ErrNoEventBinding)

	err = dom.RemoveEventListener(42, "popstate", l)
	assert.ErrorIs(t, err, dom.ErrNoEventBinding)
}

func TestEventBridge_WindowIsTarget(t *testing.T) {
	w := sim.NewWindow()
	var got []string
	l := dom.NewListener(func(e dom.Event) { got = append(got, e.Type()) })

	require.NoError(t, dom.AddEventListener(w, "popstate", l))
	w.Dispatch(sim.PopState(nil))
	assert.Equal(t, []string{"popstate"}, got)
	l.Release()
}
