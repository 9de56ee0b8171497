package helpers

import (
	"github.com/tmplcore/interpolate/ctxdata"
	"github.com/tmplcore/interpolate/ierrors"
	"github.com/tmplcore/interpolate/internal/resolve"
	"github.com/tmplcore/interpolate/token"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// locale pins case mapping to en-CA per SPEC_FULL.md §9: the ambient process
// locale is irrelevant. Date and currency output are hand-rolled en-CA
// renderings in dateformat.go and numberformat.go and do not read it.
var locale = language.MustParse("en-CA")

var (
	upperCaser = cases.Upper(locale)
	lowerCaser = cases.Lower(locale)
)

func caseHelper(name string, args []token.Token, ctx ctxdata.DataContext) (string, error) {
	if len(args) != 1 {
		return "", &ierrors.InvalidArgumentNumber{
			Where:    ierrors.WhereTwoArgumentHelper,
			Expected: "2",
			Actual:   len(args) + 1,
		}
	}

	s, err := resolve.Value(args[0], ctx)
	if err != nil {
		return "", err
	}

	if name == "lowercase" {
		return lowerCaser.String(s), nil
	}
	return upperCaser.String(s), nil
}
