package log

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Styles for the pretty text handler.
//
//nolint:gochecknoglobals
var (
	keyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	timeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	msgStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	levelStyle = map[slog.Level]lipgloss.Style{
		slog.Level(LevelTrace): lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
		slog.LevelDebug:        lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		slog.LevelInfo:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		slog.LevelWarn:         lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		slog.LevelError:        lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
	}
)

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

func (h *prettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.Level.Level()
}

func (h *prettyHandler) Handle(_ context.Context, r slog.Record) error {
	buf := new(bytes.Buffer)

	if !r.Time.IsZero() {
		h.write(buf, timeStyle.Render(h.replaced(slog.Time(slog.TimeKey, r.Time))))
	}

	style, ok := levelStyle[r.Level]
	if !ok {
		style = msgStyle
	}

	h.write(buf, style.Render(h.replaced(slog.Any(slog.LevelKey, r.Level))))

	if h.opts.AddSource {
		if src := r.Source(); src != nil {
			h.write(buf, keyStyle.Render(fmt.Sprintf("%s:%d", src.File, src.Line)))
		}
	}

	h.write(buf, msgStyle.Render(r.Message))

	prefix := ""
	for _, g := range h.groups {
		prefix += g + "."
	}

	for _, a := range h.attrs {
		h.writeAttr(buf, prefix, a)
	}

	r.Attrs(func(a slog.Attr) bool {
		h.writeAttr(buf, prefix, a)

		return true
	})

	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf.Bytes())

	return err
}

func (h *prettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(h.attrs[:len(h.attrs):len(h.attrs)], attrs...)

	return &clone
}

func (h *prettyHandler) WithGroup(name string) slog.Handler {
	clone := *h
	clone.groups = append(h.groups[:len(h.groups):len(h.groups)], name)

	return &clone
}

func (h *prettyHandler) write(buf *bytes.Buffer, s string) {
	if buf.Len() > 0 {
		buf.WriteByte(' ')
	}

	buf.WriteString(s)
}

// writeAttr renders one attribute as key=value with the key dimmed. Grouped
// attributes are rendered with dotted key prefixes.
func (h *prettyHandler) writeAttr(buf *bytes.Buffer, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()

	if a.Value.Kind() == slog.KindGroup {
		for _, member := range a.Value.Group() {
			h.writeAttr(buf, prefix+a.Key+".", member)
		}

		return
	}

	h.write(buf, keyStyle.Render(prefix+a.Key+"=")+fmt.Sprint(a.Value.Any()))
}

// replaced applies the configured ReplaceAttr function and renders the
// resulting value as text.
func (h *prettyHandler) replaced(a slog.Attr) string {
	if h.opts.ReplaceAttr != nil {
		a = h.opts.ReplaceAttr(nil, a)
	}

	return fmt.Sprint(a.Value.Any())
}
