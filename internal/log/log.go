// Package log provides the loggers of the command line tools.
package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"braces.dev/errtrace"
	"github.com/golang-cz/devslog"
	"github.com/phsym/console-slog"
	slogformatter "github.com/samber/slog-formatter"

	"github.com/ghettovoice/siphdr/header"
)

// Supported log formats.
const (
	FormatConsole = "console"
	FormatDev     = "dev"
	FormatJSON    = "json"
)

var newHandler = slogformatter.NewFormatterHandler(
	slogformatter.ErrorFormatter("error"),
	slogformatter.FormatByType(func(hdr header.Header) slog.Value {
		return slog.GroupValue(
			slog.String("type", fmt.Sprintf("%T", hdr)),
			slog.String("name", string(hdr.CanonicName())),
			slog.String("value", hdr.RenderValue()),
			slog.Bool("valid", hdr.IsValid()),
		)
	}),
)

// New returns a logger writing to w in the given format.
// Unknown formats fall back to [FormatConsole].
func New(w io.Writer, format string, level slog.Leveler) *slog.Logger {
	switch format {
	case FormatDev:
		return slog.New(newHandler(
			devslog.NewHandler(w, &devslog.Options{
				HandlerOptions: &slog.HandlerOptions{
					AddSource: true,
					Level:     level,
				},
				SortKeys:   true,
				TimeFormat: time.RFC3339Nano,
			}),
		))
	case FormatJSON:
		return slog.New(newHandler(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})))
	default:
		return slog.New(newHandler(
			console.NewHandler(w, &console.HandlerOptions{
				Level:      level,
				TimeFormat: time.RFC3339Nano,
				NoColor:    true,
			}),
		))
	}
}

// ParseLevel parses a level name like "debug" or "WARN".
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, errtrace.Wrap(err)
	}
	return lvl, nil
}

type noopHandler struct{}

func (noopHandler) Enabled(context.Context, slog.Level) bool { return false }

func (noopHandler) Handle(context.Context, slog.Record) error { return nil }

func (h noopHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h noopHandler) WithGroup(string) slog.Handler { return h }

// Noop is a noop logger.
var Noop = slog.New(noopHandler{})

type byteseq interface {
	~string | ~[]byte
}

type stringValue[T byteseq] struct {
	v T
}

func (v stringValue[T]) LogValue() slog.Value {
	return slog.StringValue(string(v.v))
}

// StringValue returns a value logger that formats v as string.
func StringValue[T byteseq](v T) slog.LogValuer { return stringValue[T]{v} }
