// Package interpolate is a string interpolation engine: a small expression
// language embedded in arbitrary text, used to substitute values from a
// structured data context and to transform them through a fixed set of
// built-in helpers.
//
// Run is the engine's single entry point; everything else in this module
// (cmd/interpolate, cmd/interpolate-server) is a consumer of it, not part of
// the core.
package interpolate

import (
	"github.com/tmplcore/interpolate/ctxdata"
	"github.com/tmplcore/interpolate/internal/eval"
	"github.com/tmplcore/interpolate/internal/lexer"
	"github.com/tmplcore/interpolate/internal/scanner"
	"github.com/tmplcore/interpolate/logging"
)

// Tag is the single stable tag every engine-originated error is logged
// under.
const Tag = "interpolate"

// DataContext is the caller-supplied mapping from top-level keyword (data,
// url, user) to nested maps, strings, and numbers. The engine never
// mutates it.
type DataContext = ctxdata.DataContext

// Logger is the callback sink errors are reported to.
type Logger = logging.Sink

// Run evaluates template against ctx. ok is false if an error occurred; the
// error has already been reported to logger and the caller should treat the
// template as having failed evaluation. A nil logger discards errors
// silently.
//
// Run is a pure, side-effect-free (besides logging) function: it is
// re-entrant and safe to call concurrently from any number of goroutines.
func Run(template string, ctx DataContext, logger Logger) (result string, ok bool) {
	if logger == nil {
		logger = logging.Nop{}
	}

	out, err := scanner.Scan(template, func(expr string) (string, error) {
		tokens := lexer.Tokenize(expr)
		return eval.Expr(tokens, ctx)
	})
	if err != nil {
		logger.Log(Tag, err)
		return "", false
	}

	return out, true
}
