// Package resolve implements the value resolver (SPEC_FULL.md §4.5): turning
// a single token into its string value, either by unquoting a literal,
// returning a bare numeric token verbatim, or navigating a dotted path
// through the data context.
package resolve

import (
	"strconv"
	"strings"

	"github.com/tmplcore/interpolate/ctxdata"
	"github.com/tmplcore/interpolate/ierrors"
	"github.com/tmplcore/interpolate/token"
)

// Raw resolves tok to its underlying value without the display-time
// half-up rounding Value applies to doubles: a quoted token's interior, a
// bare numeric literal's text, or whatever scalar a dotted path navigates
// to (string, int, or float64/float32). Helpers that need full numeric
// fidelity (numberFormat in particular — SPEC_FULL.md §3's "numeric inputs
// retain their original kind... through one level of formatting") resolve
// through Raw instead of Value.
func Raw(tok token.Token, ctx ctxdata.DataContext) (any, error) {
	if tok.Kind == token.Quoted {
		return tok.Literal(), nil
	}

	path := tok.Text

	if isNumericLiteral(path) {
		return path, nil
	}

	segs := strings.Split(path, ".")
	top := segs[0]
	if !ctxdata.IsTopLevelKeyword(top) {
		return nil, &ierrors.UnexpectedValue{Path: path}
	}

	v, ok := ctxdata.Lookup(ctx, segs)
	if !ok {
		return nil, &ierrors.UnexpectedValue{Path: path}
	}
	return v, nil
}

// Value resolves tok to its string value.
//
//   - Quoted tokens return their interior, unquoted, unchanged.
//   - Bare tokens that look like an integer or decimal literal (e.g. "4",
//     "-55.7") are returned verbatim — a bare token may be an identifier
//     path OR a number.
//   - Any other bare token is treated as a dotted path. Its first segment
//     must be one of data/url/user and present in ctx; every intermediate
//     segment must navigate through a nested map; the terminal value must be
//     a scalar (string or number). A string is returned as-is; a number is
//     stringified per ctxdata.Stringify, which half-up rounds doubles to
//     the nearest integer.
//
// Any failure returns *ierrors.UnexpectedValue carrying the full original
// token text as the reported path.
func Value(tok token.Token, ctx ctxdata.DataContext) (string, error) {
	v, err := Raw(tok, ctx)
	if err != nil {
		return "", err
	}

	s, ok := ctxdata.Stringify(v)
	if !ok {
		return "", &ierrors.UnexpectedValue{Path: tok.Text}
	}
	return s, nil
}

func isNumericLiteral(s string) bool {
	if s == "" {
		return false
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}
