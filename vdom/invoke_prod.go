//go:build !dev
// +build !dev

package vdom

import "log/slog"

// callHandler invokes an event handler in production mode.
// Panics are recovered and logged so one faulty handler doesn't stop the page.
func callHandler(event string, handler func()) {
	defer func() {
		if rec := recover(); rec != nil {
			slog.Error("event handler panic", "event", event, "panic", rec)
		}
	}()
	handler()
}
