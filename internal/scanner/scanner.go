// Package scanner implements the outermost pass of the engine: finding
// {{ ... }} spans in a template and handing their contents off to an
// evaluator, concatenating the results with the untouched literal text.
package scanner

import "strings"

// Eval evaluates the raw text found between a single "{{" and "}}" pair and
// returns its substitution.
type Eval func(expr string) (string, error)

// Scan walks template left to right, replacing every "{{ ... }}" span with
// eval's result. Literal text (including line separators U+2028/U+2029) is
// copied through unchanged. An unmatched "{{" is not an error: the scanner
// emits the remainder of the input, orphan brace included, verbatim.
//
// Any error returned by eval aborts the scan immediately; Scan returns that
// error and the partially built output is discarded, matching the engine's
// all-or-nothing evaluation of a template.
func Scan(template string, eval Eval) (string, error) {
	var b strings.Builder
	rest := template
	for {
		open := strings.Index(rest, "{{")
		if open == -1 {
			b.WriteString(rest)
			return b.String(), nil
		}
		b.WriteString(rest[:open])

		afterOpen := rest[open+2:]
		closeIdx := strings.Index(afterOpen, "}}")
		if closeIdx == -1 {
			// No matching "}}": the rest of the input, including the
			// orphan "{{", passes through as a literal.
			b.WriteString(rest[open:])
			return b.String(), nil
		}

		exprContent := afterOpen[:closeIdx]
		result, err := eval(exprContent)
		if err != nil {
			return "", err
		}
		b.WriteString(result)

		rest = afterOpen[closeIdx+2:]
	}
}
