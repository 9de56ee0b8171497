// Package eval implements the reducer and dispatcher (SPEC_FULL.md §4.3,
// §4.4): innermost-first parenthesis reduction followed by helper dispatch
// or bare value resolution.
package eval

import (
	"github.com/tmplcore/interpolate/ctxdata"
	"github.com/tmplcore/interpolate/internal/helpers"
	"github.com/tmplcore/interpolate/internal/resolve"
	"github.com/tmplcore/interpolate/token"
)

// Expr evaluates a fully tokenized {{ ... }} expression to its substitution
// string.
func Expr(tokens []token.Token, ctx ctxdata.DataContext) (string, error) {
	tokens, err := reduceParens(tokens, ctx)
	if err != nil {
		return "", err
	}
	return dispatch(tokens, ctx)
}

// reduceParens repeatedly locates the innermost matched parenthesis pair —
// the rightmost LParen together with the nearest RParen following it —
// evaluates the tokens strictly between them, and substitutes the pair with
// a single Quoted token wrapping the result. An LParen with no matching
// RParen is left in the stream: it is not a distinct "paren" error, it
// simply contributes to whatever arity count the enclosing helper observes.
func reduceParens(tokens []token.Token, ctx ctxdata.DataContext) ([]token.Token, error) {
	for {
		lp := lastLParen(tokens)
		if lp == -1 {
			return tokens, nil
		}

		rp := nextRParen(tokens, lp+1)
		if rp == -1 {
			return tokens, nil
		}

		inner := tokens[lp+1 : rp]
		s, err := Expr(inner, ctx)
		if err != nil {
			return nil, err
		}

		reduced := make([]token.Token, 0, len(tokens)-(rp-lp))
		reduced = append(reduced, tokens[:lp]...)
		reduced = append(reduced, token.NewQuoted(`"`+s+`"`))
		reduced = append(reduced, tokens[rp+1:]...)
		tokens = reduced
	}
}

func lastLParen(tokens []token.Token) int {
	idx := -1
	for i, t := range tokens {
		if t.Kind == token.LParen {
			idx = i
		}
	}
	return idx
}

func nextRParen(tokens []token.Token, from int) int {
	for i := from; i < len(tokens); i++ {
		if tokens[i].Kind == token.RParen {
			return i
		}
	}
	return -1
}

// dispatch routes a fully-reduced token stream to a helper, or resolves a
// single value token. An empty stream evaluates to the empty string.
// Helper arity errors are the helper's own responsibility; outside of a
// helper call, excess tokens are not an error — the first token is
// resolved and the rest are ignored.
func dispatch(tokens []token.Token, ctx ctxdata.DataContext) (string, error) {
	if len(tokens) == 0 {
		return "", nil
	}

	first := tokens[0]
	if first.Kind == token.Bare && helpers.Known(first.Text) {
		return helpers.Call(first.Text, tokens[1:], ctx)
	}

	return resolve.Value(first, ctx)
}
