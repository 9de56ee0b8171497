package cliui_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tmplcore/interpolate/internal/cliui"
)

func TestFormatError_NoColorOmitsEscapeCodes(t *testing.T) {
	var buf bytes.Buffer
	cliui.FormatError(&buf, errors.New("Unexpected value: user.userid"), true)

	out := buf.String()
	assert.True(t, strings.Contains(out, "interpolate:"))
	assert.True(t, strings.Contains(out, "Unexpected value: user.userid"))
	assert.False(t, strings.Contains(out, "\x1b["))
}
