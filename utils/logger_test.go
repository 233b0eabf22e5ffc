package utils

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(LoggerConfig{Level: WARN, Component: "test", Output: &buf})

	l.Info("hidden")
	assert.Empty(t, buf.String())

	l.Warn("shown", String("kind", "localStorage"), Int("n", 2))
	out := buf.String()
	assert.Contains(t, out, "[WARN ] [test] shown")
	assert.Contains(t, out, `kind="localStorage" n=2`)
}

func TestLogger_WithBindsFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(LoggerConfig{Level: DEBUG, Output: &buf}).With(String("profile", "ie11"))

	l.Debug("probe", Bool("ok", false), Err(errors.New("boom")))
	assert.Contains(t, buf.String(), `probe profile="ie11" ok=false error="boom"`)
}

func TestParseLevel(t *testing.T) {
	cases := map[string]LogLevel{
		"debug":   DEBUG,
		"INFO":    INFO,
		"":        INFO,
		"warning": WARN,
		" error ": ERROR,
		"fatal":   FATAL,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLevel("verbose")
	assert.Error(t, err)
}

func TestGlobalLogger(t *testing.T) {
	prev := GlobalLogger()
	defer SetGlobalLogger(prev)

	var buf bytes.Buffer
	SetGlobalLogger(NewLogger(LoggerConfig{Level: DEBUG, Output: &buf}))
	Debug("storage probe failed", Any("available", true))
	assert.Contains(t, buf.String(), "storage probe failed available=true")
}

func TestWrapError(t *testing.T) {
	base := errors.New("base")
	err := WrapError(base, "load profile")
	assert.ErrorIs(t, err, base)
	assert.Equal(t, "load profile: base", err.Error())
	assert.Equal(t, "alone", WrapError(nil, "alone").Error())
}
