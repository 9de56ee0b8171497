// Package ctxdata defines the data context the engine resolves value
// references against: a mapping from top-level keyword (data, url, user) to
// a nested tree of maps, strings, and numbers.
package ctxdata

import (
	"math"
	"strconv"
)

// DataContext is the caller-supplied mapping from top-level keyword to
// nested values. The engine never mutates it. An empty DataContext is
// explicitly allowed.
type DataContext map[string]any

// TopLevelKeywords are the only segment-zero names a path may begin with.
var TopLevelKeywords = map[string]bool{
	"data": true,
	"url":  true,
	"user": true,
}

// IsTopLevelKeyword reports whether s is one of data/url/user.
func IsTopLevelKeyword(s string) bool {
	return TopLevelKeywords[s]
}

// Lookup navigates segs (e.g. ["user", "profile", "name"]) through ctx,
// returning the terminal value. ok is false if any segment is missing or an
// intermediate node is not a nested map.
func Lookup(ctx DataContext, segs []string) (any, bool) {
	if len(segs) == 0 {
		return nil, false
	}
	top, present := ctx[segs[0]]
	if !present {
		return nil, false
	}
	cur := top
	for _, seg := range segs[1:] {
		m, isMap := asMap(cur)
		if !isMap {
			return nil, false
		}
		v, present := m[seg]
		if !present {
			return nil, false
		}
		cur = v
	}
	return cur, true
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case DataContext:
		return map[string]any(m), true
	default:
		return nil, false
	}
}

// Stringify renders a terminal scalar value the way the value resolver does:
// strings pass through unchanged; integers render in decimal form; doubles
// render via half-up rounding to the nearest integer.
func Stringify(v any) (string, bool) {
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
		return strconv.FormatInt(HalfUpRound(float64(n)), 10), true
	case float64:
		return strconv.FormatInt(HalfUpRound(n), 10), true
	default:
		return "", false
	}
}

// HalfUpRound rounds v to the nearest integer, ties rounding toward positive
// infinity (the conventional "half-up" rule): 2.34 -> 2, -55.7 -> -56.
func HalfUpRound(v float64) int64 {
	return int64(math.Floor(v + 0.5))
}
