package helpers

import (
	"strings"

	"github.com/tmplcore/interpolate/ctxdata"
	"github.com/tmplcore/interpolate/ierrors"
	"github.com/tmplcore/interpolate/internal/resolve"
	"github.com/tmplcore/interpolate/token"
)

func replaceHelper(name string, args []token.Token, ctx ctxdata.DataContext) (string, error) {
	if len(args) != 3 {
		return "", &ierrors.InvalidArgumentNumber{
			Where:    ierrors.WhereReplaceHelper,
			Expected: "4",
			Actual:   len(args) + 1,
		}
	}

	s, err := resolve.Value(args[0], ctx)
	if err != nil {
		return "", err
	}

	oldTok, newTok := args[1], args[2]

	// The tokenizer does not validate quote balance across argument
	// boundaries (SPEC_FULL.md §4.2); an embedded unescaped quote surfaces
	// here as a bare token, which this check turns into
	// InvalidReplaceArguments rather than a silent wrong replacement.
	if !oldTok.IsQuoted() || !newTok.IsQuoted() {
		return "", &ierrors.InvalidReplaceArguments{Arg1: oldTok.Text, Arg2: newTok.Text}
	}

	old := oldTok.Literal()
	replacement := newTok.Literal()
	return strings.ReplaceAll(s, old, replacement), nil
}
