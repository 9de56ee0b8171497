// Package cliui formats interpolation failures for terminal output, grounded
// on the teacher's internal/cli/ui error formatter (color-coded, optional
// --no-color).
package cliui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// FormatError renders a single interpolation failure as a colorized,
// human-readable line: a red "✗ interpolate:" prefix followed by the
// error's own message.
func FormatError(w io.Writer, err error, noColor bool) {
	prefix := color.New(color.FgRed, color.Bold)
	if noColor {
		prefix.DisableColor()
	}
	prefix.Fprint(w, "✗ interpolate: ")
	fmt.Fprintln(w, err)
}
