package ctxdata_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tmplcore/interpolate/ctxdata"
)

func TestHalfUpRound(t *testing.T) {
	cases := []struct {
		in   float64
		want int64
	}{
		{2.34, 2},
		{2.5, 3},
		{-55.7, -56},
		{-2.5, -2},
		{0, 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ctxdata.HalfUpRound(tc.in))
	}
}

func TestLookup_NestedPath(t *testing.T) {
	ctx := ctxdata.DataContext{
		"user": map[string]any{
			"profile": map[string]any{"bio": "hi"},
		},
	}
	v, ok := ctxdata.Lookup(ctx, []string{"user", "profile", "bio"})
	assert.True(t, ok)
	assert.Equal(t, "hi", v)
}

func TestLookup_MissingTopLevel(t *testing.T) {
	_, ok := ctxdata.Lookup(ctxdata.DataContext{}, []string{"user", "name"})
	assert.False(t, ok)
}

func TestLookup_IntermediateNotAMap(t *testing.T) {
	ctx := ctxdata.DataContext{"user": map[string]any{"name": "George"}}
	_, ok := ctxdata.Lookup(ctx, []string{"user", "name", "first"})
	assert.False(t, ok)
}

func TestStringify(t *testing.T) {
	s, ok := ctxdata.Stringify("hi")
	assert.True(t, ok)
	assert.Equal(t, "hi", s)

	s, ok = ctxdata.Stringify(4)
	assert.True(t, ok)
	assert.Equal(t, "4", s)

	s, ok = ctxdata.Stringify(-55.7)
	assert.True(t, ok)
	assert.Equal(t, "-56", s)

	_, ok = ctxdata.Stringify([]int{1, 2})
	assert.False(t, ok)
}

func TestIsTopLevelKeyword(t *testing.T) {
	assert.True(t, ctxdata.IsTopLevelKeyword("data"))
	assert.True(t, ctxdata.IsTopLevelKeyword("url"))
	assert.True(t, ctxdata.IsTopLevelKeyword("user"))
	assert.False(t, ctxdata.IsTopLevelKeyword("session"))
}
