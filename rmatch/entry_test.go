package rmatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnyEntry(t *testing.T) {
	tests := []struct {
		name  string
		route string
		match bool
	}{
		{name: "file", route: "file", match: true},
		{name: "directory", route: "dir/", match: true},
		{name: "empty route", route: "/", match: false},
		{name: "two entries", route: "a/b", match: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := RouteMatch(mustRoute(t, tt.route), Pattern{AnyEntry})
			if !tt.match {
				assert.Nil(t, res)
				return
			}
			require.NotNil(t, res)
			assert.Empty(t, record(res))
		})
	}

	t.Run("only at entry start", func(t *testing.T) {
		assert.Nil(t, RouteMatch(mustRoute(t, "file"), Pattern{Part("f"), AnyEntry}))
	})
}

func TestCaptureEntry(t *testing.T) {
	t.Run("named", func(t *testing.T) {
		res := RouteMatch(mustRoute(t, "file"), Pattern{CaptureEntry("out")})
		require.NotNil(t, res)
		assert.Equal(t, []string{"capture out=file"}, record(res))
	})

	t.Run("anonymous", func(t *testing.T) {
		res := RouteMatch(mustRoute(t, "file"), Pattern{CaptureEntry("")})
		require.NotNil(t, res)
		assert.Equal(t, []string{"capture $1=file"}, record(res))
	})

	t.Run("decoded name", func(t *testing.T) {
		res := RouteMatch(mustRoute(t, "some%20file"), Pattern{CaptureEntry("out")})
		require.NotNil(t, res)
		assert.Equal(t, []string{"capture out=some file"}, record(res))
	})

	t.Run("directory entry", func(t *testing.T) {
		res := RouteMatch(mustRoute(t, "dir/file"), Pattern{CaptureEntry("dir"), DirSep, Name("file")})
		require.NotNil(t, res)
		assert.Equal(t, []string{"capture dir=dir"}, record(res))
	})

	t.Run("only at entry start", func(t *testing.T) {
		assert.Nil(t, RouteMatch(mustRoute(t, "file"), Pattern{Part("fi"), CaptureEntry("out")}))
	})
}

func TestName(t *testing.T) {
	tests := []struct {
		name    string
		route   string
		pattern Pattern
		match   bool
	}{
		{name: "equal", route: "test", pattern: Pattern{Name("test")}, match: true},
		{name: "longer entry", route: "test2", pattern: Pattern{Name("test")}, match: false},
		{name: "shorter entry", route: "tes", pattern: Pattern{Name("test")}, match: false},
		{name: "mid-name", route: "test", pattern: Pattern{Part("te"), Name("st")}, match: false},
		{name: "empty route", route: "/", pattern: Pattern{Name("test")}, match: false},
		{name: "decoded", route: "a%2Fb", pattern: Pattern{Name("a/b")}, match: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := RouteMatch(mustRoute(t, tt.route), tt.pattern)
			if tt.match {
				assert.NotNil(t, res)
			} else {
				assert.Nil(t, res)
			}
		})
	}
}

func TestPart(t *testing.T) {
	t.Run("prefix", func(t *testing.T) {
		res := RouteMatch(mustRoute(t, "prefix"), Pattern{Part("pre"), CaptureAny("rest")})
		require.NotNil(t, res)
		assert.Equal(t, []string{"capture rest=fix"}, record(res))
	})

	t.Run("whole name", func(t *testing.T) {
		assert.NotNil(t, RouteMatch(mustRoute(t, "name"), Pattern{Part("name")}))
	})

	t.Run("mismatch", func(t *testing.T) {
		assert.Nil(t, RouteMatch(mustRoute(t, "prefix"), Pattern{Part("fix")}))
	})

	t.Run("find", func(t *testing.T) {
		res := RouteMatch(mustRoute(t, "a-b-c"), Pattern{CaptureAny("x"), Part("-c")})
		require.NotNil(t, res)
		assert.Equal(t, []string{"capture x=a-b"}, record(res))
	})

	t.Run("find tries next occurrence", func(t *testing.T) {
		res := RouteMatch(mustRoute(t, "a-b-c"), Pattern{CaptureAny("x"), Part("-"), Part("c")})
		require.NotNil(t, res)
		assert.Equal(t, []string{"capture x=a-b"}, record(res))
	})

	t.Run("find fails", func(t *testing.T) {
		assert.Nil(t, RouteMatch(mustRoute(t, "a-b-c"), Pattern{Any, Part("+")}))
	})

	t.Run("find at start", func(t *testing.T) {
		res := RouteMatch(mustRoute(t, "file"), Pattern{CaptureAny("x"), Part("file")})
		require.NotNil(t, res)
		assert.Empty(t, record(res))
	})
}
