// Package helpers implements the fixed table of built-in helper functions
// (SPEC_FULL.md §4.6): lowercase, uppercase, replace, dropFirst, dropLast,
// prefix, suffix, dateFormat (alias date), and numberFormat. The registry
// replaces dynamic dispatch with a closed, static mapping from helper name
// to implementation, per the teacher's preference for fixed tables over
// reflection-driven lookup.
package helpers

import (
	"github.com/tmplcore/interpolate/ctxdata"
	"github.com/tmplcore/interpolate/token"
)

// Fn is a helper implementation. name lets one Fn serve multiple registry
// entries (dropFirst/dropLast share a function, as do dateFormat/date).
// args excludes the helper-name token itself.
type Fn func(name string, args []token.Token, ctx ctxdata.DataContext) (string, error)

// Registry maps every known helper name (case-sensitive) to its
// implementation.
var Registry = map[string]Fn{
	"lowercase":    caseHelper,
	"uppercase":    caseHelper,
	"replace":      replaceHelper,
	"dropFirst":    sliceHelper,
	"dropLast":     sliceHelper,
	"prefix":       sliceHelper,
	"suffix":       sliceHelper,
	"dateFormat":   dateHelper,
	"date":         dateHelper,
	"numberFormat": numberHelper,
}

// Known reports whether name is a registered helper.
func Known(name string) bool {
	_, ok := Registry[name]
	return ok
}

// Call dispatches to the named helper. It is the caller's responsibility to
// have already checked Known(name).
func Call(name string, args []token.Token, ctx ctxdata.DataContext) (string, error) {
	return Registry[name](name, args, ctx)
}
