package rmatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchParam(t *testing.T) {
	tests := []struct {
		name    string
		route   string
		matcher Matcher
		match   bool
	}{
		{name: "present", route: "dir?b", matcher: SearchParam("b"), match: true},
		{name: "present with value", route: "dir?a=1", matcher: SearchParam("a"), match: true},
		{name: "absent", route: "dir?a=1", matcher: SearchParam("c"), match: false},
		{name: "no query", route: "dir", matcher: SearchParam("a"), match: false},
		{name: "value", route: "dir?a=1&a=2", matcher: SearchParamValue("a", "2"), match: true},
		{name: "wrong value", route: "dir?a=1&a=2", matcher: SearchParamValue("a", "3"), match: false},
		{name: "decoded value", route: "dir?q=a+b", matcher: SearchParamValue("q", "a b"), match: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := RouteMatch(mustRoute(t, tt.route), Pattern{Name("dir"), tt.matcher})
			if tt.match {
				assert.NotNil(t, res)
			} else {
				assert.Nil(t, res)
			}
		})
	}

	t.Run("after the end of the route", func(t *testing.T) {
		p := Pattern{AnyDirs, SearchParam("a")}
		assert.NotNil(t, RouteMatch(mustRoute(t, "x/y?a"), p))
		assert.Nil(t, RouteMatch(mustRoute(t, "x/y?b"), p))
		assert.NotNil(t, RouteMatch(mustRoute(t, "?a=1"), Pattern{SearchParamValue("a", "1")}))
	})

	t.Run("zero-width", func(t *testing.T) {
		p := Pattern{SearchParam("a"), Name("dir")}
		assert.NotNil(t, RouteMatch(mustRoute(t, "dir?a"), p))
	})
}

func TestMatrixAttr(t *testing.T) {
	tests := []struct {
		name    string
		route   string
		matcher Matcher
		match   bool
	}{
		{name: "present", route: "dir;attr", matcher: MatrixAttr("attr"), match: true},
		{name: "absent", route: "dir;attr", matcher: MatrixAttr("other"), match: false},
		{name: "one of values", route: "dir;attr=wrong;attr=value", matcher: MatrixAttrValue("attr", "value"), match: true},
		{name: "wrong value", route: "dir;attr=wrong", matcher: MatrixAttrValue("attr", "value"), match: false},
		{name: "decoded", route: "dir;a%20b=c%20d", matcher: MatrixAttrValue("a b", "c d"), match: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := RouteMatch(mustMatrixRoute(t, tt.route), Pattern{AnyEntry, tt.matcher})
			if tt.match {
				assert.NotNil(t, res)
			} else {
				assert.Nil(t, res)
			}
		})
	}

	t.Run("scoped to entry", func(t *testing.T) {
		p := Pattern{Name("a"), DirSep, Name("b"), MatrixAttr("x")}
		assert.Nil(t, RouteMatch(mustMatrixRoute(t, "a;x/b"), p))
		assert.NotNil(t, RouteMatch(mustMatrixRoute(t, "a/b;x"), p))
	})

	t.Run("not after the end of the route", func(t *testing.T) {
		assert.Nil(t, RouteMatch(mustMatrixRoute(t, "/"), Pattern{MatrixAttr("x")}))
	})

	t.Run("plain route", func(t *testing.T) {
		assert.Nil(t, RouteMatch(mustRoute(t, "dir;attr"), Pattern{AnyEntry, MatrixAttr("attr")}))
	})
}

func TestMatchInArray(t *testing.T) {
	assert.True(t, matchInArray([]string{"a", "b"}, "b"))
	assert.False(t, matchInArray([]string{"a", "b"}, "c"))
	assert.False(t, matchInArray(nil, "a"))
}
