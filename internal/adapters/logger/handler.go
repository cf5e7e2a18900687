package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
	"go.trai.ch/pymod2pkg/internal/core/domain"
	"go.trai.ch/pymod2pkg/internal/ui/output"
	"go.trai.ch/pymod2pkg/internal/ui/style"
)

// Attribute keys rendered as the leading "path:line:" of a line.
const (
	AttrPath = "path"
	AttrLine = "line"
)

// PrettyHandler is a slog.Handler writing one line per record:
// level icon, optional "path:line:" location, message, then the remaining
// attributes as key=value.
type PrettyHandler struct {
	out   *termenv.Output
	level slog.Leveler
	attrs []slog.Attr
	group string
}

// NewPrettyHandler creates a new PrettyHandler writing to the provided writer.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	return &PrettyHandler{
		out:   output.New(w),
		level: level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats and outputs the log record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	var loc domain.Location
	fields := make([]string, 0, len(h.attrs)+r.NumAttrs())

	collect := func(attr slog.Attr) bool {
		if h.group == "" && h.takeLocation(&loc, attr) {
			return true
		}
		fields = append(fields, formatAttr(h.group, attr))
		return true
	}
	for _, attr := range h.attrs {
		collect(attr)
	}
	r.Attrs(collect)

	icon, color := levelStyle(r.Level)

	var b strings.Builder
	if icon != "" {
		b.WriteString(h.out.String(icon).Foreground(color).String())
		b.WriteByte(' ')
	}
	if where := loc.String(); where != "" {
		b.WriteString(h.out.String(where + ":").Foreground(h.out.Color(string(style.Slate))).String())
		b.WriteByte(' ')
	}
	b.WriteString(h.out.String(r.Message).Foreground(color).String())
	for _, f := range fields {
		b.WriteByte(' ')
		b.WriteString(f)
	}
	b.WriteByte('\n')

	_, err := h.out.WriteString(b.String())
	return err
}

// takeLocation stores the path and line attributes in loc and reports
// whether attr was one of them.
func (h *PrettyHandler) takeLocation(loc *domain.Location, attr slog.Attr) bool {
	switch {
	case attr.Key == AttrPath && attr.Value.Kind() == slog.KindString:
		loc.Path = attr.Value.String()
		return true
	case attr.Key == AttrLine && attr.Value.Kind() == slog.KindInt64:
		loc.Line = int(attr.Value.Int64())
		return true
	default:
		return false
	}
}

func levelStyle(level slog.Level) (string, termenv.Color) {
	switch {
	case level >= slog.LevelError:
		return style.Cross, termenv.RGBColor(string(style.Red))
	case level >= slog.LevelWarn:
		return style.Warning, termenv.RGBColor(string(style.Yellow))
	default:
		return "", termenv.RGBColor(string(style.Slate))
	}
}

// WithAttrs returns a new Handler with the given attributes appended.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	newAttrs = append(newAttrs, h.attrs...)
	newAttrs = append(newAttrs, attrs...)

	return &PrettyHandler{
		out:   h.out,
		level: h.level,
		attrs: newAttrs,
		group: h.group,
	}
}

// WithGroup returns a new Handler with the given group name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	return &PrettyHandler{
		out:   h.out,
		level: h.level,
		attrs: h.attrs,
		group: name,
	}
}

// formatAttr renders key=value, quoting values with spaces or quotes.
func formatAttr(group string, attr slog.Attr) string {
	key := attr.Key
	if group != "" {
		key = group + "." + key
	}
	value := attr.Value.String()
	if strings.ContainsAny(value, " \t\"=") {
		value = strconv.Quote(value)
	}
	return key + "=" + value
}
