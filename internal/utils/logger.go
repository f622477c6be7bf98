package utils

import (
	"io"
	"log/slog"
	"os"

	"github.com/baalimago/go_away_boilerplate/pkg/misc"
	"github.com/lmittmann/tint"
)

// NewLogger returns a colored structured logger writing to output. The level is
// debug when DEBUG is truthy, warn otherwise.
func NewLogger(output io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if misc.Truthy(os.Getenv("DEBUG")) {
		level = slog.LevelDebug
	}
	handler := tint.NewHandler(output, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05.000",
		NoColor:    misc.Truthy(os.Getenv("NO_COLOR")),
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Value.Kind() == slog.KindAny {
				if _, ok := a.Value.Any().(error); ok {
					return tint.Attr(9, a)
				}
			}
			return a
		},
	})
	return slog.New(handler)
}
