package log

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
)

// ANSI color codes for pretty printing.
const (
	colorReset  = "\033[0m"
	colorGray   = "\033[90m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
)

// levelColor returns the ANSI color for a level label.
func levelColor(level slog.Level) string {
	switch {
	case level >= slog.Level(LevelError):
		return colorRed
	case level >= slog.Level(LevelWarn):
		return colorYellow
	case level >= slog.Level(LevelInfo):
		return colorGreen
	default:
		return colorGray
	}
}

// prettyHandler implements a colorized text handler for log messages.
type prettyHandler struct {
	opts   slog.HandlerOptions
	mu     *sync.Mutex
	w      io.Writer
	attrs  []slog.Attr
	groups []string
}

func newPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *prettyHandler {
	return &prettyHandler{
		opts: *opts,
		mu:   &sync.Mutex{},
		w:    w,
	}
}

// Enabled implements slog.Handler.
func (h *prettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	min := slog.LevelInfo
	if h.opts.Level != nil {
		min = h.opts.Level.Level()
	}

	return level >= min
}

// Handle implements slog.Handler.
func (h *prettyHandler) Handle(_ context.Context, r slog.Record) error {
	var buf bytes.Buffer

	if !r.Time.IsZero() {
		timeAttr := slog.Time(slog.TimeKey, r.Time)
		if h.opts.ReplaceAttr != nil {
			timeAttr = h.opts.ReplaceAttr(nil, timeAttr)
		}

		if !timeAttr.Equal(slog.Attr{}) {
			buf.WriteString(colorGray)
			buf.WriteString(timeAttr.Value.String())
			buf.WriteString(colorReset)
			buf.WriteByte(' ')
		}
	}

	levelAttr := slog.Any(slog.LevelKey, r.Level)
	if h.opts.ReplaceAttr != nil {
		levelAttr = h.opts.ReplaceAttr(nil, levelAttr)
	}

	buf.WriteString(levelColor(r.Level))
	buf.WriteString(levelAttr.Value.String())
	buf.WriteString(colorReset)
	buf.WriteByte(' ')

	buf.WriteString(r.Message)

	write := func(a slog.Attr) {
		buf.WriteByte(' ')
		buf.WriteString(colorCyan)
		buf.WriteString(h.prefix() + a.Key)
		buf.WriteString(colorReset)
		buf.WriteByte('=')
		buf.WriteString(fmt.Sprintf("%v", a.Value.Resolve().Any()))
	}

	for _, a := range h.attrs {
		write(a)
	}

	r.Attrs(func(a slog.Attr) bool {
		write(a)

		return true
	})

	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf.Bytes())

	return err
}

// WithAttrs implements slog.Handler.
func (h *prettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)

	return &clone
}

// WithGroup implements slog.Handler.
func (h *prettyHandler) WithGroup(name string) slog.Handler {
	clone := *h
	clone.groups = append(append([]string{}, h.groups...), name)

	return &clone
}

// prefix returns the dotted group qualifier for attribute keys.
func (h *prettyHandler) prefix() string {
	p := ""
	for _, g := range h.groups {
		p += g + "."
	}

	return p
}
