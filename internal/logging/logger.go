// SPDX-License-Identifier: MIT
// Package logging wraps log/slog with the field names used across brep.
//
// Loggers are silent by default: New(nil) returns a Logger whose handler
// reports every level as disabled, so message formatting is skipped.
package logging

import (
	"context"
	"log/slog"
	"os"

	"github.com/katalvlaran/brep/kind"
)

// nopHandler discards every record. Enabled returns false so the caller
// never formats the message.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// Logger embeds *slog.Logger and adds topology-specific helpers.
type Logger struct {
	*slog.Logger
}

// New wraps l. A nil l yields a silent Logger.
func New(l *slog.Logger) *Logger {
	if l == nil {
		return Nop()
	}
	return &Logger{Logger: l}
}

// Nop returns a Logger that discards all output.
func Nop() *Logger {
	return &Logger{Logger: slog.New(nopHandler{})}
}

// NewText returns a human-readable Logger writing to stderr at level.
func NewText(level slog.Level) *Logger {
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return &Logger{Logger: slog.New(h)}
}

// WithEntity tags subsequent records with an entity kind and unique id.
func (l *Logger) WithEntity(k kind.Kind, id int64) *Logger {
	return &Logger{Logger: l.Logger.With("kind", k.String(), "id", id)}
}

// WithOp tags subsequent records with the operation name.
func (l *Logger) WithOp(op string) *Logger {
	return &Logger{Logger: l.Logger.With("op", op)}
}

// Precondition logs a refused operation at error level.
func (l *Logger) Precondition(op string, k kind.Kind, id int64, err error) {
	l.ErrorContext(context.Background(), "precondition violated",
		"op", op,
		"kind", k.String(),
		"id", id,
		"error", err,
	)
}

// BestEffort logs a tolerated irregularity at warn level.
func (l *Logger) BestEffort(op, msg string, args ...any) {
	l.WarnContext(context.Background(), msg, append([]any{"op", op}, args...)...)
}

// Built logs a completed construction at debug level.
func (l *Logger) Built(k kind.Kind, id int64, args ...any) {
	l.DebugContext(context.Background(), "entity built",
		append([]any{"kind", k.String(), "id", id}, args...)...)
}

// Destroyed logs a completed destruction at debug level.
func (l *Logger) Destroyed(k kind.Kind, id int64) {
	l.DebugContext(context.Background(), "entity destroyed",
		"kind", k.String(),
		"id", id,
	)
}
