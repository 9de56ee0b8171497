// Package ierrors is the engine's closed error taxonomy, grounded on the
// teacher's compiler/errors package: a small set of typed errors, each
// carrying the fields needed to reproduce a stable message, so callers that
// want to branch on kind can use errors.As instead of string matching.
package ierrors

import "fmt"

// Arity "where" tags identifying the helper family that rejected its
// argument count.
const (
	WhereTwoArgumentHelper   = "twoArgumentHelper"
	WhereThreeArgumentHelper = "threeArgumentHelper"
	WhereReplaceHelper       = "replaceHelper"
	WhereFormatDateHelper    = "formatDateHelper"
	WhereFormatNumberHelper  = "formatNumberHelper"
)

// UnexpectedValue reports a value-lookup failure: a missing top-level
// keyword, a missing/non-map intermediate segment, or a bare token that is
// neither a valid path nor a number.
type UnexpectedValue struct {
	Path string
}

func (e *UnexpectedValue) Error() string {
	return fmt.Sprintf("Unexpected value: %s", e.Path)
}

// InvalidArgumentNumber reports a helper arity mismatch. Expected is a
// string rather than an int because numberFormat reports a range ("2..3")
// while every other helper reports an exact count.
type InvalidArgumentNumber struct {
	Where    string
	Expected string
	Actual   int
}

func (e *InvalidArgumentNumber) Error() string {
	return fmt.Sprintf("%s expected %s arguments, got %d", e.Where, e.Expected, e.Actual)
}

// InvalidReplaceArguments reports that replace's 3rd/4th tokens were not
// both quoted literals in the source. Arg1/Arg2 carry the tokens' raw
// textual form, regardless of which one is actually at fault.
type InvalidReplaceArguments struct {
	Arg1 string
	Arg2 string
}

func (e *InvalidReplaceArguments) Error() string {
	return fmt.Sprintf("Invalid replace arguments: %s, %s", e.Arg1, e.Arg2)
}

// InvalidDate reports a dateFormat/date failure: either none of the
// candidate input formats parsed, or the pattern argument was not a quoted
// literal.
type InvalidDate struct {
	Argument string
}

func (e *InvalidDate) Error() string {
	return fmt.Sprintf("Invalid date: %s", e.Argument)
}

// ExpectedInteger reports that a dropFirst/dropLast/prefix/suffix count
// argument did not parse as a non-negative integer.
type ExpectedInteger struct {
	Where string
}

func (e *ExpectedInteger) Error() string {
	return fmt.Sprintf("%s expected integer", e.Where)
}

// NumberFormatError reports that numberFormat's value argument did not
// parse as a number. The message intentionally mirrors the host platform's
// numeric-parse exception wording rather than Go's own strconv phrasing,
// since it is part of the engine's stable observable interface.
type NumberFormatError struct {
	Input string
}

func (e *NumberFormatError) Error() string {
	return fmt.Sprintf("For input string: %q", e.Input)
}
