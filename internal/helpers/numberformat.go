package helpers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tmplcore/interpolate/ctxdata"
	"github.com/tmplcore/interpolate/ierrors"
	"github.com/tmplcore/interpolate/internal/resolve"
	"github.com/tmplcore/interpolate/token"
)

// numberHelper formats a number per SPEC_FULL.md §4.6. Output shaping
// (half-up rounding, trailing-zero trimming, the "$" currency prefix) is
// hand-rolled rather than routed through golang.org/x/text/currency: the
// spec pins exact byte-for-byte output ("$42.50", never "CA$42.50"), and a
// CLDR-correct formatter's locale defaults are not guaranteed to agree with
// that. golang.org/x/text is still used for locale-aware case mapping in
// case.go, where Unicode case folding is exactly what it is for.
func numberHelper(name string, args []token.Token, ctx ctxdata.DataContext) (string, error) {
	if len(args) < 1 || len(args) > 2 {
		return "", &ierrors.InvalidArgumentNumber{
			Where:    ierrors.WhereFormatNumberHelper,
			Expected: "2..3",
			Actual:   len(args) + 1,
		}
	}

	// Resolved through Raw, not Value: Value's double stringification
	// half-up rounds to an integer (right for displaying a bare
	// {{data.x}} reference), which would silently round 42.5 to "43"
	// before numberFormat ever saw the fraction. SPEC_FULL.md §3 requires
	// the original numeric kind to survive this one level of formatting.
	valRaw, err := resolve.Raw(args[0], ctx)
	if err != nil {
		return "", err
	}
	valStr, ok := numericText(valRaw)
	if !ok {
		return "", &ierrors.UnexpectedValue{Path: args[0].Text}
	}

	style := "decimal"
	if len(args) == 2 {
		s, err := resolve.Value(args[1], ctx)
		if err != nil {
			return "", err
		}
		style = s
	}

	value, perr := strconv.ParseFloat(valStr, 64)
	if perr != nil {
		return "", &ierrors.NumberFormatError{Input: valStr}
	}

	switch style {
	case "none":
		return strconv.FormatInt(ctxdata.HalfUpRound(value), 10), nil
	case "currency":
		return formatCurrency(value), nil
	case "percent":
		return fmt.Sprintf("%d%%", ctxdata.HalfUpRound(value*100)), nil
	default:
		// "decimal" and any other resolved style word fall back here; a
		// style token that fails to resolve has already returned its error.
		return formatDecimal(value), nil
	}
}

// numericText renders a resolved value as full-precision decimal text for
// strconv.ParseFloat to consume, preserving whatever fractional digits the
// context held instead of the Value resolver's display-time rounding.
func numericText(v any) (string, bool) {
	switch n := v.(type) {
	case string:
		return n, true
	case int:
		return strconv.Itoa(n), true
	case int32:
		return strconv.FormatInt(int64(n), 10), true
	case int64:
		return strconv.FormatInt(n, 10), true
	case float32:
		return strconv.FormatFloat(float64(n), 'f', -1, 64), true
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64), true
	default:
		return "", false
	}
}

func formatCurrency(value float64) string {
	cents := ctxdata.HalfUpRound(value * 100)
	neg := cents < 0
	if neg {
		cents = -cents
	}
	s := fmt.Sprintf("$%d.%02d", cents/100, cents%100)
	if neg {
		s = "-" + s
	}
	return s
}

func formatDecimal(value float64) string {
	scaled := ctxdata.HalfUpRound(value * 1000)
	neg := scaled < 0
	if neg {
		scaled = -scaled
	}

	intPart := scaled / 1000
	fracPart := scaled % 1000
	frac := strings.TrimRight(fmt.Sprintf("%03d", fracPart), "0")

	s := strconv.FormatInt(intPart, 10)
	if frac != "" {
		s += "." + frac
	}
	if neg {
		s = "-" + s
	}
	return s
}
