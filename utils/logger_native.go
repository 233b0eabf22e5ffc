//go:build !js || !wasm
// +build !js !wasm

package utils

// redirectLogToBridge is a no-op on native platforms; l.output already has the line.
func (l *Logger) redirectLogToBridge(level LogLevel, logLine string) {}
