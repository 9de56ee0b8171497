package helpers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmplcore/interpolate/ctxdata"
	"github.com/tmplcore/interpolate/ierrors"
	"github.com/tmplcore/interpolate/internal/helpers"
	"github.com/tmplcore/interpolate/token"
)

func TestReplaceHelper_Basic(t *testing.T) {
	out, err := helpers.Call("replace", []token.Token{
		token.NewQuoted(`"mr. jack reacher"`),
		token.NewQuoted(`"jack"`),
		token.NewQuoted(`"mike"`),
	}, ctxdata.DataContext{})
	require.NoError(t, err)
	assert.Equal(t, "mr. mike reacher", out)
}

func TestReplaceHelper_TargetAbsentLeavesUnchanged(t *testing.T) {
	out, err := helpers.Call("replace", []token.Token{
		token.NewQuoted(`"hello"`),
		token.NewQuoted(`"xyz"`),
		token.NewQuoted(`"abc"`),
	}, ctxdata.DataContext{})
	require.NoError(t, err)
	assert.Equal(t, "hello", out)
}

func TestReplaceHelper_NonQuotedOldArgIsInvalid(t *testing.T) {
	_, err := helpers.Call("replace", []token.Token{
		token.NewQuoted(`"hello"`),
		token.NewBare("xyz"),
		token.NewQuoted(`"abc"`),
	}, ctxdata.DataContext{})
	var ira *ierrors.InvalidReplaceArguments
	require.ErrorAs(t, err, &ira)
}

func TestReplaceHelper_WrongArity(t *testing.T) {
	_, err := helpers.Call("replace", []token.Token{token.NewQuoted(`"a"`)}, ctxdata.DataContext{})
	var ae *ierrors.InvalidArgumentNumber
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, ierrors.WhereReplaceHelper, ae.Where)
}
