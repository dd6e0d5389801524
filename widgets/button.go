// Package widgets contains reusable components built on the runtime package.
package widgets

import (
	"log/slog"
	"strconv"

	"github.com/vcrobe/crosslab/events"
	"github.com/vcrobe/crosslab/palette"
	"github.com/vcrobe/crosslab/runtime"
	"github.com/vcrobe/crosslab/vdom"
)

// HoverFactor is the darken factor applied to the background while hovered.
const HoverFactor = 0.8

// Config is the visual configuration of a Button.
// Values are not validated; the browser decides what a negative width means.
type Config struct {
	Label           string
	Width           int // px
	Height          int // px
	BackgroundColor string
	TextColor       string
	BorderColor     string
	BorderRadius    int // px
}

// DefaultConfig returns the configuration of a Button built without options.
func DefaultConfig() Config {
	return Config{
		Label:           "Button",
		Width:           100,
		Height:          50,
		BackgroundColor: "gray",
		TextColor:       "white",
		BorderColor:     "black",
		BorderRadius:    5,
	}
}

// Button is a styled clickable button with hover and press feedback.
// It owns at most one element in the document at a time. A Button is not
// safe for concurrent use; drive it from the page's event loop.
type Button struct {
	runtime.ComponentBase

	cfg     Config
	pressed bool
	logger  *slog.Logger
}

// Compile-time assertion that Button is a runtime.Component.
var _ runtime.Component = (*Button)(nil)

// NewButton creates a Button. Each option overrides one default.
func NewButton(opts ...Option) *Button {
	b := &Button{
		cfg:    DefaultConfig(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.Init(b)
	return b
}

// Config returns a copy of the current configuration.
func (b *Button) Config() Config { return b.cfg }

// Label returns the text shown on the button.
func (b *Button) Label() string { return b.cfg.Label }

// Pressed reports whether a press is in progress.
func (b *Button) Pressed() bool { return b.pressed }

// Render describes the button element. It does not touch the document.
func (b *Button) Render() *vdom.VNode {
	n := vdom.Button(b.cfg.Label, nil)

	n.SetStyle("width", px(b.cfg.Width)).
		SetStyle("height", px(b.cfg.Height)).
		SetStyle("background-color", b.cfg.BackgroundColor).
		SetStyle("color", b.cfg.TextColor).
		SetStyle("border", "2px solid "+b.cfg.BorderColor).
		SetStyle("border-radius", px(b.cfg.BorderRadius)).
		SetStyle("cursor", "pointer").
		SetStyle("font-size", "16px").
		SetStyle("text-align", "center").
		SetStyle("transition", "background-color 0.3s, transform 0.2s")

	n.On(events.MouseOver, b.handleMouseOver).
		On(events.MouseOut, b.handleMouseOut).
		On(events.MouseDown, b.handleMouseDown).
		On(events.MouseUp, b.handleMouseUp)

	return n
}

// UpdateLabel changes the label. A rendered button only has its text updated;
// the rest of the element is left as is.
func (b *Button) UpdateLabel(label string) {
	b.cfg.Label = label
	if el := b.Element(); el != nil {
		el.SetText(label)
	}
}

// UpdateStyles applies the fields set in u and, when the button is rendered,
// replaces its element with a freshly rendered one in the same container.
func (b *Button) UpdateStyles(u StyleUpdate) error {
	u.apply(&b.cfg)
	return b.StateHasChanged()
}

func (b *Button) handleMouseOver() {
	el := b.Element()
	if el == nil {
		return
	}

	hover, err := palette.Darken(b.cfg.BackgroundColor, HoverFactor)
	if err != nil {
		b.logger.Warn("hover color unavailable, keeping background",
			"label", b.cfg.Label,
			"background", b.cfg.BackgroundColor,
			"error", err,
		)
		return
	}
	el.SetStyle("background-color", hover)
}

func (b *Button) handleMouseOut() {
	el := b.Element()
	if el == nil {
		return
	}

	el.SetStyle("background-color", b.cfg.BackgroundColor)
}

func (b *Button) handleMouseDown() {
	b.pressed = true
	if el := b.Element(); el != nil {
		el.SetStyle("transform", "scale(0.95)")
	}
}

// handleMouseUp ends a press. A mouseup with no mousedown on this button
// (the press started elsewhere) is not a click and logs nothing.
func (b *Button) handleMouseUp() {
	wasPressed := b.pressed
	b.pressed = false
	if el := b.Element(); el != nil {
		el.SetStyle("transform", "scale(1)")
	}

	if wasPressed {
		b.logger.Info("button clicked", "label", b.cfg.Label)
	}
}

func px(v int) string {
	return strconv.Itoa(v) + "px"
}
