// Package events names the DOM events that components register handlers for.
package events

// Pointer events, named as the DOM dispatches them.
const (
	Click     = "click"
	MouseOver = "mouseover"
	MouseOut  = "mouseout"
	MouseDown = "mousedown"
	MouseUp   = "mouseup"
)

// DOMContentLoaded fires once the initial HTML document has been parsed.
const DOMContentLoaded = "DOMContentLoaded"
