//go:build js || wasm

package console

import (
	"log/slog"
	"syscall/js"
)

// platformSink writes to the browser console, picking the method by level.
func platformSink(level slog.Level, line string) {
	console := js.Global().Get("console")
	switch {
	case level >= slog.LevelError:
		console.Call("error", line)
	case level >= slog.LevelWarn:
		console.Call("warn", line)
	case level < slog.LevelInfo:
		console.Call("debug", line)
	default:
		console.Call("log", line)
	}
}
