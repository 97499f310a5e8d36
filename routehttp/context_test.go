package routehttp

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalvas/routematch/routetable"
)

func TestVars(t *testing.T) {
	t.Run("returns nil for request without hit", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		assert.Nil(t, Vars(r))
	})

	t.Run("returns vars from request context", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r = SetHit(r, routetable.Hit{Name: "user", Vars: map[string]string{"id": "42"}})
		assert.Equal(t, map[string]string{"id": "42"}, Vars(r))
	})
}

func TestVarGet(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	_, ok := VarGet(r, "id")
	assert.False(t, ok)

	r = SetHit(r, routetable.Hit{Name: "user", Vars: map[string]string{"id": "42"}})
	val, ok := VarGet(r, "id")
	assert.True(t, ok)
	assert.Equal(t, "42", val)

	_, ok = VarGet(r, "missing")
	assert.False(t, ok)
}

func TestCurrentHit(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	_, ok := CurrentHit(r)
	assert.False(t, ok)

	r = SetHit(r, routetable.Hit{Name: "user", Pattern: "users/{id}"})
	hit, ok := CurrentHit(r)
	require.True(t, ok)
	assert.Equal(t, "user", hit.Name)
	assert.Equal(t, "users/{id}", hit.Pattern)
}
