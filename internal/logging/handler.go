package logging

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

// palette holds the colors used by Handler; nil means plain output.
type palette struct {
	time, key                        *color.Color
	trace, debug, info, warn, danger *color.Color
}

func newPalette() *palette {
	return &palette{
		time:   color.New(color.FgHiBlack),
		key:    color.New(color.FgCyan),
		trace:  color.New(color.FgHiBlack),
		debug:  color.New(color.FgMagenta),
		info:   color.New(color.FgGreen),
		warn:   color.New(color.FgYellow),
		danger: color.New(color.FgRed, color.Bold),
	}
}

// Handler is a slog.Handler writing one human-readable line per record:
//
//	3:04PM INFO  validated document source=flow.json errors=2
//
// Colors are used when the writer supports them. Groups become dotted key
// prefixes.
type Handler struct {
	opts   slog.HandlerOptions
	out    io.Writer
	mu     *sync.Mutex
	colors *palette

	// preformatted holds attributes from WithAttrs, already rendered.
	preformatted []byte
	prefix       string
}

// NewHandler creates a text handler writing to out.
func NewHandler(out io.Writer, opts *slog.HandlerOptions) *Handler {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}
	h := &Handler{
		opts: *opts,
		out:  out,
		mu:   &sync.Mutex{},
	}
	if SupportsColor(out) {
		h.colors = newPalette()
	}
	return h
}

// Enabled reports whether the handler handles records at the given level.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	minLevel := slog.LevelInfo
	if h.opts.Level != nil {
		minLevel = h.opts.Level.Level()
	}
	return level >= minLevel
}

// Handle writes r as a single line.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var buf bytes.Buffer

	if !r.Time.IsZero() {
		buf.WriteString(h.paint(h.colorFor("time"), r.Time.Format(time.Kitchen)))
		buf.WriteByte(' ')
	}

	level := levelName(r.Level)
	fmt.Fprintf(&buf, "%s%s ", h.paint(h.levelColor(r.Level), level), strings.Repeat(" ", max(0, 5-len(level))))
	buf.WriteString(r.Message)

	buf.Write(h.preformatted)
	r.Attrs(func(a slog.Attr) bool {
		h.appendAttr(&buf, h.prefix, a)
		return true
	})
	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.out.Write(buf.Bytes())
	return err
}

// WithAttrs returns a Handler that adds attrs to every record.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	next := *h
	buf := bytes.NewBuffer(bytes.Clone(h.preformatted))
	for _, a := range attrs {
		h.appendAttr(buf, h.prefix, a)
	}
	next.preformatted = buf.Bytes()
	return &next
}

// WithGroup returns a Handler that prefixes later keys with name.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := *h
	next.prefix = h.prefix + name + "."
	return &next
}

func (h *Handler) appendAttr(buf *bytes.Buffer, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	if a.Value.Kind() == slog.KindGroup {
		groupPrefix := prefix
		if a.Key != "" {
			groupPrefix += a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			h.appendAttr(buf, groupPrefix, ga)
		}
		return
	}

	fmt.Fprintf(buf, " %s=%s", h.paint(h.colorFor("key"), prefix+a.Key), formatValue(a.Value))
}

// formatValue quotes strings that would otherwise break key=value parsing.
func formatValue(v slog.Value) string {
	if v.Kind() != slog.KindString {
		return fmt.Sprint(v.Any())
	}
	s := v.String()
	if s == "" || strings.ContainsAny(s, " \t\n\"=") {
		return strconv.Quote(s)
	}
	return s
}

func levelName(l slog.Level) string {
	if l <= LevelTrace {
		return "TRACE"
	}
	return l.String()
}

func (h *Handler) levelColor(l slog.Level) *color.Color {
	if h.colors == nil {
		return nil
	}
	switch {
	case l >= slog.LevelError:
		return h.colors.danger
	case l >= slog.LevelWarn:
		return h.colors.warn
	case l >= slog.LevelInfo:
		return h.colors.info
	case l > LevelTrace:
		return h.colors.debug
	default:
		return h.colors.trace
	}
}

func (h *Handler) colorFor(part string) *color.Color {
	if h.colors == nil {
		return nil
	}
	if part == "time" {
		return h.colors.time
	}
	return h.colors.key
}

func (h *Handler) paint(c *color.Color, s string) string {
	if c == nil {
		return s
	}
	return c.Sprint(s)
}
