package helpers

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/tmplcore/interpolate/ctxdata"
	"github.com/tmplcore/interpolate/ierrors"
	"github.com/tmplcore/interpolate/internal/resolve"
	"github.com/tmplcore/interpolate/token"
)

// candidateLayout is one of the four input formats dateFormat/date try, in
// order, per SPEC_FULL.md §4.6.
type candidateLayout struct {
	layout string
	local  bool // parsed against the process local zone rather than an explicit offset
}

var candidateLayouts = []candidateLayout{
	{"2006-01-02T15:04:05Z0700", false},
	{"2006-01-02 15:04:05Z0700", false},
	{"2006-01-02T15:04:05", true},
	{"2006-01-02 15:04:05", true},
}

func dateHelper(name string, args []token.Token, ctx ctxdata.DataContext) (string, error) {
	if len(args) != 2 {
		return "", &ierrors.InvalidArgumentNumber{
			Where:    ierrors.WhereFormatDateHelper,
			Expected: "3",
			Actual:   len(args) + 1,
		}
	}

	inputTok, patternTok := args[0], args[1]

	inputStr, err := resolve.Value(inputTok, ctx)
	if err != nil {
		return "", err
	}

	if !patternTok.IsQuoted() {
		return "", &ierrors.InvalidDate{Argument: patternTok.Text}
	}
	pattern := patternTok.Literal()

	t, ok := parseDate(inputStr)
	if !ok {
		// The reported argument is the input with spaces normalized to
		// "T", mirroring the last ISO-8601-shaped parse attempt.
		return "", &ierrors.InvalidDate{Argument: strings.ReplaceAll(inputStr, " ", "T")}
	}

	return formatPattern(t, pattern), nil
}

func parseDate(input string) (time.Time, bool) {
	for _, c := range candidateLayouts {
		if c.local {
			if t, err := time.ParseInLocation(c.layout, input, time.Local); err == nil {
				return t, true
			}
			continue
		}
		if t, err := time.Parse(c.layout, input); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

var fullMonthNames = [...]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// en-CA abbreviated month names; May keeps no trailing period since its
// abbreviation equals its full name.
var abbrevMonthNames = [...]string{
	"Jan.", "Feb.", "Mar.", "Apr.", "May", "Jun.",
	"Jul.", "Aug.", "Sep.", "Oct.", "Nov.", "Dec.",
}

var fullWeekdayNames = [...]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

var abbrevWeekdayNames = [...]string{
	"Sun.", "Mon.", "Tue.", "Wed.", "Thu.", "Fri.", "Sat.",
}

// formatPattern renders t using an ICU/CLDR-style pattern string (the same
// pattern family the spec uses to describe its own candidate input
// formats), in locale en-CA. No ICU-equivalent formatting library exists
// among the examples, so this is hand-rolled; only the pattern letters this
// engine's helpers are ever asked to render are implemented.
func formatPattern(t time.Time, pattern string) string {
	runes := []rune(pattern)
	var out strings.Builder

	for i := 0; i < len(runes); {
		r := runes[i]

		if r == '\'' {
			i++
			if i < len(runes) && runes[i] == '\'' {
				out.WriteRune('\'')
				i++
				continue
			}
			for i < len(runes) && runes[i] != '\'' {
				out.WriteRune(runes[i])
				i++
			}
			if i < len(runes) {
				i++ // skip closing quote
			}
			continue
		}

		if isPatternLetter(r) {
			j := i
			for j < len(runes) && runes[j] == r {
				j++
			}
			out.WriteString(formatField(r, j-i, t))
			i = j
			continue
		}

		out.WriteRune(r)
		i++
	}

	return out.String()
}

func isPatternLetter(r rune) bool {
	switch r {
	case 'y', 'M', 'd', 'E', 'H', 'h', 'm', 's', 'a':
		return true
	default:
		return false
	}
}

func formatField(letter rune, count int, t time.Time) string {
	switch letter {
	case 'y':
		year := t.Year()
		switch {
		case count == 2:
			return fmt.Sprintf("%02d", year%100)
		case count >= 3:
			return fmt.Sprintf("%04d", year)
		default:
			return strconv.Itoa(year)
		}
	case 'M':
		month := int(t.Month())
		switch {
		case count >= 4:
			return fullMonthNames[month-1]
		case count == 3:
			return abbrevMonthNames[month-1]
		case count == 2:
			return fmt.Sprintf("%02d", month)
		default:
			return strconv.Itoa(month)
		}
	case 'd':
		if count >= 2 {
			return fmt.Sprintf("%02d", t.Day())
		}
		return strconv.Itoa(t.Day())
	case 'E':
		wd := int(t.Weekday())
		if count >= 4 {
			return fullWeekdayNames[wd]
		}
		return abbrevWeekdayNames[wd]
	case 'H':
		if count >= 2 {
			return fmt.Sprintf("%02d", t.Hour())
		}
		return strconv.Itoa(t.Hour())
	case 'h':
		h := t.Hour() % 12
		if h == 0 {
			h = 12
		}
		if count >= 2 {
			return fmt.Sprintf("%02d", h)
		}
		return strconv.Itoa(h)
	case 'm':
		if count >= 2 {
			return fmt.Sprintf("%02d", t.Minute())
		}
		return strconv.Itoa(t.Minute())
	case 's':
		if count >= 2 {
			return fmt.Sprintf("%02d", t.Second())
		}
		return strconv.Itoa(t.Second())
	case 'a':
		if t.Hour() < 12 {
			return "a.m."
		}
		return "p.m."
	default:
		return ""
	}
}
