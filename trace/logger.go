package trace

import (
	"context"
	"log/slog"

	"github.com/katalvlaran/cpop/closest"
)

// Logger is a closest.Tracer writing every event to a *slog.Logger.
type Logger struct {
	log   *slog.Logger
	level slog.Level
}

var _ closest.Tracer = (*Logger)(nil)

// NewLogger returns a Logger emitting at Debug level. A nil l means
// slog.Default().
func NewLogger(l *slog.Logger) *Logger {
	if l == nil {
		l = slog.Default()
	}

	return &Logger{log: l, level: slog.LevelDebug}
}

func (l *Logger) isNil() bool { return l == nil }

// WithLevel returns a copy of the Logger emitting at level.
func (l *Logger) WithLevel(level slog.Level) *Logger {
	c := *l
	c.level = level

	return &c
}

// Compare implements closest.Tracer.
func (l *Logger) Compare(a, b closest.Ref, d float64) {
	l.pair("compare", a, b, d)
}

// NewMinimum implements closest.Tracer.
func (l *Logger) NewMinimum(a, b closest.Ref, d float64) {
	l.pair("new minimum", a, b, d)
}

// Divide implements closest.Tracer.
func (l *Logger) Divide(midX float64, depth int) {
	l.log.LogAttrs(context.Background(), l.level, "divide",
		slog.Int("depth", depth),
		slog.Float64("mid_x", midX),
	)
}

// Strip implements closest.Tracer.
func (l *Logger) Strip(midX, delta float64, size, depth int) {
	l.log.LogAttrs(context.Background(), l.level, "strip",
		slog.Int("depth", depth),
		slog.Float64("mid_x", midX),
		slog.Float64("delta", delta),
		slog.Int("size", size),
	)
}

func (l *Logger) pair(msg string, a, b closest.Ref, d float64) {
	l.log.LogAttrs(context.Background(), l.level, msg,
		slog.Int("i", a.Index),
		slog.String("a", a.Point.String()),
		slog.Int("j", b.Index),
		slog.String("b", b.Point.String()),
		slog.Float64("d", d),
	)
}
