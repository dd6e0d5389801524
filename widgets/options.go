package widgets

import "log/slog"

// Option configures a Button at construction time.
type Option func(*Button)

// WithLabel sets the text shown on the button.
func WithLabel(label string) Option {
	return func(b *Button) { b.cfg.Label = label }
}

// WithWidth sets the width in pixels.
func WithWidth(px int) Option {
	return func(b *Button) { b.cfg.Width = px }
}

// WithHeight sets the height in pixels.
func WithHeight(px int) Option {
	return func(b *Button) { b.cfg.Height = px }
}

// WithBackgroundColor sets the background color, as hex or a CSS color name.
func WithBackgroundColor(color string) Option {
	return func(b *Button) { b.cfg.BackgroundColor = color }
}

// WithTextColor sets the label color.
func WithTextColor(color string) Option {
	return func(b *Button) { b.cfg.TextColor = color }
}

// WithBorderColor sets the color of the 2px border.
func WithBorderColor(color string) Option {
	return func(b *Button) { b.cfg.BorderColor = color }
}

// WithBorderRadius sets the corner radius in pixels.
func WithBorderRadius(px int) Option {
	return func(b *Button) { b.cfg.BorderRadius = px }
}

// WithLogger sets the logger that receives click diagnostics.
// A nil logger keeps slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(b *Button) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// StyleUpdate is a partial Config. Nil fields are left unchanged.
type StyleUpdate struct {
	Label           *string
	Width           *int
	Height          *int
	BackgroundColor *string
	TextColor       *string
	BorderColor     *string
	BorderRadius    *int
}

func (u StyleUpdate) apply(cfg *Config) {
	if u.Label != nil {
		cfg.Label = *u.Label
	}
	if u.Width != nil {
		cfg.Width = *u.Width
	}
	if u.Height != nil {
		cfg.Height = *u.Height
	}
	if u.BackgroundColor != nil {
		cfg.BackgroundColor = *u.BackgroundColor
	}
	if u.TextColor != nil {
		cfg.TextColor = *u.TextColor
	}
	if u.BorderColor != nil {
		cfg.BorderColor = *u.BorderColor
	}
	if u.BorderRadius != nil {
		cfg.BorderRadius = *u.BorderRadius
	}
}

// Ptr returns a pointer to v, for filling StyleUpdate fields inline.
func Ptr[T any](v T) *T {
	return &v
}
