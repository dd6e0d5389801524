package console

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
)

// Sink receives one formatted log line together with the record's level.
type Sink func(level slog.Level, line string)

// Handler is a slog.Handler that formats records as text lines and forwards
// them to a Sink, so log levels map onto console.log/warn/error in the browser.
type Handler struct {
	inner slog.Handler
	state *sinkState
}

type sinkState struct {
	mu   sync.Mutex
	buf  bytes.Buffer
	sink Sink
}

// Compile-time assertion that Handler implements slog.Handler.
var _ slog.Handler = (*Handler)(nil)

// NewSinkHandler creates a Handler writing to sink.
func NewSinkHandler(sink Sink, opts *slog.HandlerOptions) *Handler {
	st := &sinkState{sink: sink}
	return &Handler{
		inner: slog.NewTextHandler(&st.buf, opts),
		state: st,
	}
}

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	h.state.mu.Lock()
	defer h.state.mu.Unlock()

	h.state.buf.Reset()
	if err := h.inner.Handle(ctx, r); err != nil {
		return err
	}
	h.state.sink(r.Level, strings.TrimSuffix(h.state.buf.String(), "\n"))
	return nil
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Handler{inner: h.inner.WithAttrs(attrs), state: h.state}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{inner: h.inner.WithGroup(name), state: h.state}
}

// NewHandler creates a Handler writing to the platform console: the browser's
// console object under WASM, stderr otherwise.
func NewHandler(opts *slog.HandlerOptions) *Handler {
	return NewSinkHandler(platformSink, opts)
}
