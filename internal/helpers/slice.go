package helpers

import (
	"strconv"

	"github.com/tmplcore/interpolate/ctxdata"
	"github.com/tmplcore/interpolate/ierrors"
	"github.com/tmplcore/interpolate/internal/resolve"
	"github.com/tmplcore/interpolate/token"
)

func sliceHelper(name string, args []token.Token, ctx ctxdata.DataContext) (string, error) {
	if len(args) != 2 {
		return "", &ierrors.InvalidArgumentNumber{
			Where:    ierrors.WhereThreeArgumentHelper,
			Expected: "3",
			Actual:   len(args) + 1,
		}
	}

	s, err := resolve.Value(args[0], ctx)
	if err != nil {
		return "", err
	}

	nStr, err := resolve.Value(args[1], ctx)
	if err != nil {
		return "", err
	}

	n, err := strconv.Atoi(nStr)
	if err != nil || n < 0 {
		return "", &ierrors.ExpectedInteger{Where: ierrors.WhereThreeArgumentHelper}
	}

	runes := []rune(s)

	switch name {
	case "dropFirst":
		if n >= len(runes) {
			return "", nil
		}
		return string(runes[n:]), nil
	case "dropLast":
		if n >= len(runes) {
			return "", nil
		}
		return string(runes[:len(runes)-n]), nil
	case "prefix":
		if n >= len(runes) {
			return s, nil
		}
		return string(runes[:n]), nil
	default: // "suffix"
		if n >= len(runes) {
			return s, nil
		}
		return string(runes[len(runes)-n:]), nil
	}
}
