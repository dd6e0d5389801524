//go:build dev
// +build dev

package vdom

// callHandler invokes an event handler in development mode.
// In dev mode, panics propagate to aid debugging and fast failure.
func callHandler(event string, handler func()) {
	handler()
}
