package dom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nmxmxh/navcaps/dom"
	"github.com/nmxmxh/navcaps/sim"
)

func TestCanUseDOM_NoWindow(t *testing.T) {
	assert.False(t, dom.CanUseDOM(nil))
}

func TestCanUseDOM_NoDocument(t *testing.T) {
	w := sim.NewWindow().WithoutDocument()
	assert.False(t, dom.CanUseDOM(w))
}

func TestCanUseDOM_DocumentWithoutCreateElement(t *testing.T) {
	w := sim.NewWindow().WithInertDocument()
	assert.False(t, dom.CanUseDOM(w))
}

func TestCanUseDOM_Idempotent(t *testing.T) {
	w := sim.NewWindow()
	for i := 0; i < 3; i++ {
		assert.True(t, dom.CanUseDOM(w))
	}
}

func TestHostCanUseDOM_Native(t *testing.T) {
	assert.Nil(t, dom.HostWindow())
	assert.False(t, dom.HostCanUseDOM())
	assert.False(t, dom.HostCanUseDOM())
}

func TestGetConfirmation_CallsBackOnce(t *testing.T) {
	w := sim.NewWindow().WithConfirm(func(msg string) bool {
		return msg == "Leave page?"
	})

	var answers []bool
	dom.GetConfirmation(w, "Leave page?", func(ok bool) {
		answers = append(answers, ok)
	})
	assert.Equal(t, []bool{true}, answers)
	assert.Equal(t, []string{"Leave page?"}, w.Prompts())

	answers = nil
	dom.GetConfirmation(w, "Discard changes?", func(ok bool) {
		answers = append(answers, ok)
	})
	assert.Equal(t, []bool{false}, answers)
}
