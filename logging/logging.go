// Package logging provides the engine's logger sink (SPEC_FULL.md §4.9/§6)
// plus ready-made adapters for hosts that already have their own logging
// stack, grounded on the teacher's use of go.uber.org/zap for structured
// logging (internal/lsp).
package logging

import (
	"fmt"
	"io"

	"go.uber.org/zap"
)

// Sink is the logger callback the engine reports errors to: a single stable
// tag plus the error that occurred. All engine-originated errors share one
// tag ("interpolate"); the error's message is itself part of the stable
// observable interface.
type Sink interface {
	Log(tag string, err error)
}

// Nop discards every record. It is the engine's default when no logger is
// supplied, and is useful in tests that only care about the returned ok
// flag.
type Nop struct{}

// Log implements Sink.
func (Nop) Log(string, error) {}

// Writer writes "tag: message" lines to W, for hosts that just want
// plain-text output.
type Writer struct {
	W io.Writer
}

// Log implements Sink.
func (w Writer) Log(tag string, err error) {
	fmt.Fprintf(w.W, "%s: %s\n", tag, err)
}

// Zap adapts a *zap.Logger as a Sink, logging each record at Error level
// with "tag" and "error" fields. Used by the HTTP host and the CLI's
// --log-format json mode.
type Zap struct {
	L *zap.Logger
}

// Log implements Sink.
func (z Zap) Log(tag string, err error) {
	if z.L == nil {
		return
	}
	z.L.Error("interpolation failed", zap.String("tag", tag), zap.Error(err))
}
