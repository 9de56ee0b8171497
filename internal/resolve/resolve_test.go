package resolve_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmplcore/interpolate/ctxdata"
	"github.com/tmplcore/interpolate/ierrors"
	"github.com/tmplcore/interpolate/internal/resolve"
	"github.com/tmplcore/interpolate/token"
)

func TestValue_Quoted(t *testing.T) {
	s, err := resolve.Value(token.NewQuoted(`"hello world"`), ctxdata.DataContext{})
	require.NoError(t, err)
	assert.Equal(t, "hello world", s)
}

func TestValue_BareNumericLiteral(t *testing.T) {
	s, err := resolve.Value(token.NewBare("4"), ctxdata.DataContext{})
	require.NoError(t, err)
	assert.Equal(t, "4", s)
}

func TestValue_Path(t *testing.T) {
	ctx := ctxdata.DataContext{
		"user": map[string]any{
			"name":    "George",
			"age":     int(42),
			"balance": -55.7,
		},
	}

	s, err := resolve.Value(token.NewBare("user.name"), ctx)
	require.NoError(t, err)
	assert.Equal(t, "George", s)

	s, err = resolve.Value(token.NewBare("user.age"), ctx)
	require.NoError(t, err)
	assert.Equal(t, "42", s)

	s, err = resolve.Value(token.NewBare("user.balance"), ctx)
	require.NoError(t, err)
	assert.Equal(t, "-56", s, "doubles half-up round to the nearest integer")
}

func TestValue_MissingTopLevelKeyword(t *testing.T) {
	_, err := resolve.Value(token.NewBare("user.userid"), ctxdata.DataContext{})
	var uv *ierrors.UnexpectedValue
	require.ErrorAs(t, err, &uv)
	assert.Equal(t, "user.userid", uv.Path)
	assert.Equal(t, "Unexpected value: user.userid", err.Error())
}

func TestValue_UnknownTopLevelKeywordNotInAllowlist(t *testing.T) {
	_, err := resolve.Value(token.NewBare("session.id"), ctxdata.DataContext{
		"session": map[string]any{"id": "abc"},
	})
	var uv *ierrors.UnexpectedValue
	require.ErrorAs(t, err, &uv)
	assert.Equal(t, "session.id", uv.Path)
}

func TestValue_IntermediateSegmentMissing(t *testing.T) {
	ctx := ctxdata.DataContext{"user": map[string]any{"name": "George"}}
	_, err := resolve.Value(token.NewBare("user.profile.bio"), ctx)
	var uv *ierrors.UnexpectedValue
	require.ErrorAs(t, err, &uv)
	assert.Equal(t, "user.profile.bio", uv.Path)
}

func TestValue_IntermediateSegmentNotAMap(t *testing.T) {
	ctx := ctxdata.DataContext{"user": map[string]any{"name": "George"}}
	_, err := resolve.Value(token.NewBare("user.name.first"), ctx)
	var uv *ierrors.UnexpectedValue
	require.ErrorAs(t, err, &uv)
	assert.Equal(t, "user.name.first", uv.Path)
}

func TestValue_NeitherPathNorNumeric(t *testing.T) {
	_, err := resolve.Value(token.NewBare("gibberish"), ctxdata.DataContext{})
	var uv *ierrors.UnexpectedValue
	require.ErrorAs(t, err, &uv)
	assert.Equal(t, "gibberish", uv.Path)
}

func TestRaw_PreservesFloatPrecisionForDownstreamParsing(t *testing.T) {
	ctx := ctxdata.DataContext{"data": map[string]any{"number": 42.5}}
	v, err := resolve.Raw(token.NewBare("data.number"), ctx)
	require.NoError(t, err)
	assert.Equal(t, 42.5, v)
}
