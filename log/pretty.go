package log

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Styles used by the pretty text handler.
//
//nolint:gochecknoglobals
var (
	styleTime    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	styleMessage = lipgloss.NewStyle().Bold(true)
	styleKey     = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	styleSource  = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)

	styleLevel = map[Level]lipgloss.Style{
		LevelTrace: lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
		LevelDebug: lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		LevelInfo:  lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		LevelWarn:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		LevelError: lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	}
)

// prettyTextHandler implements a colorized text handler for log messages.
type prettyTextHandler struct {
	opts   slog.HandlerOptions
	mu     *sync.Mutex
	w      io.Writer
	attrs  []slog.Attr
	groups []string
}

func newPrettyTextHandler(w io.Writer, opts *slog.HandlerOptions) *prettyTextHandler {
	return &prettyTextHandler{
		opts: *opts,
		mu:   &sync.Mutex{},
		w:    w,
	}
}

// Enabled implements slog.Handler.
func (h *prettyTextHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.Level.Level()
}

// Handle implements slog.Handler.
func (h *prettyTextHandler) Handle(_ context.Context, r slog.Record) error {
	buf := new(bytes.Buffer)

	if !r.Time.IsZero() {
		if formatted := h.replace(slog.Time(slog.TimeKey, r.Time)); !formatted.Equal(slog.Attr{}) {
			buf.WriteString(styleTime.Render(formatted.Value.String()))
			buf.WriteByte(' ')
		}
	}

	level := Level(r.Level)

	style, ok := styleLevel[level]
	if !ok {
		style = styleMessage
	}

	fmt.Fprintf(buf, "%-5s ", style.Render(strings.ToUpper(level.String())))

	if h.opts.AddSource {
		if src := r.Source(); src != nil {
			buf.WriteString(styleSource.Render(fmt.Sprintf("%s:%d", src.File, src.Line)))
			buf.WriteByte(' ')
		}
	}

	buf.WriteString(styleMessage.Render(r.Message))

	for _, a := range h.attrs {
		h.writeAttr(buf, a)
	}

	r.Attrs(func(a slog.Attr) bool {
		h.writeAttr(buf, a)

		return true
	})

	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf.Bytes())

	return err
}

// WithAttrs implements slog.Handler.
func (h *prettyTextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(append([]slog.Attr(nil), h.attrs...), attrs...)

	return &clone
}

// WithGroup implements slog.Handler.
func (h *prettyTextHandler) WithGroup(name string) slog.Handler {
	clone := *h
	clone.groups = append(append([]string(nil), h.groups...), name)

	return &clone
}

func (h *prettyTextHandler) writeAttr(buf *bytes.Buffer, a slog.Attr) {
	a.Value = a.Value.Resolve()

	if a.Value.Kind() == slog.KindGroup {
		for _, member := range a.Value.Group() {
			if a.Key != "" {
				member.Key = a.Key + "." + member.Key
			}

			h.writeAttr(buf, member)
		}

		return
	}

	key := a.Key
	if len(h.groups) > 0 {
		key = strings.Join(h.groups, ".") + "." + key
	}

	fmt.Fprintf(buf, " %s=%s", styleKey.Render(key), a.Value.String())
}

// replace applies the configured ReplaceAttr to a single attribute.
func (h *prettyTextHandler) replace(a slog.Attr) slog.Attr {
	if h.opts.ReplaceAttr == nil {
		return a
	}

	return h.opts.ReplaceAttr(nil, a)
}
