package rtr_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/rohanthewiz/assert"
	"github.com/rohanthewiz/pathroute/core/rtr"
	"github.com/rohanthewiz/pathroute/core/rtr/testdata"
)

func TestStatic(t *testing.T) {
	var tbl rtr.Table[string]
	assert.Nil(t, tbl.Add("/hello", "Hello"))
	assert.Nil(t, tbl.Add("/world", "World"))

	data, params, _, ok := tbl.Lookup("/hello")
	assert.True(t, ok)
	assert.Equal(t, len(params), 0)
	assert.Equal(t, data, "Hello")

	data, params, _, ok = tbl.Lookup("/world")
	assert.True(t, ok)
	assert.Equal(t, len(params), 0)
	assert.Equal(t, data, "World")

	notFound := []string{
		"/",
		"/404",
		"/hell",
		"/helloo",
		"/hello/world",
	}

	for _, path := range notFound {
		data, params, _, ok = tbl.Lookup(path)
		assert.False(t, ok)
		assert.Equal(t, len(params), 0)
		assert.Equal(t, data, "")
	}
}

func TestParameter(t *testing.T) {
	var tbl rtr.Table[string]
	assert.Nil(t, tbl.Add("/blog/:post", "Blog post"))
	assert.Nil(t, tbl.Add("/blog/:post/comments/:id", "Comment"))

	data, params, pattern, ok := tbl.Lookup("/blog/hello-world")
	assert.True(t, ok)
	assert.Equal(t, len(params), 1)
	assert.Equal(t, params[0].Key, "post")
	assert.Equal(t, params[0].Value, "hello-world")
	assert.Equal(t, data, "Blog post")
	assert.Equal(t, pattern.String(), "/blog/:post")

	data, params, _, ok = tbl.Lookup("/blog/hello-world/comments/123")
	assert.True(t, ok)
	assert.Equal(t, len(params), 2)
	assert.Equal(t, params[0].Key, "post")
	assert.Equal(t, params[0].Value, "hello-world")
	assert.Equal(t, params[1].Key, "id")
	assert.Equal(t, params[1].Value, "123")
	assert.Equal(t, data, "Comment")
}

func TestFirstMatchWins(t *testing.T) {
	var tbl rtr.Table[string]
	assert.Nil(t, tbl.Add("/store/new", "NewStore"))
	assert.Nil(t, tbl.Add("/store/:storeId", "Store"))

	data, params, _, _ := tbl.Lookup("/store/new")
	assert.Equal(t, data, "NewStore")
	assert.Equal(t, len(params), 0)

	// reversed registration: the parameter route shadows the literal one
	var rev rtr.Table[string]
	assert.Nil(t, rev.Add("/store/:storeId", "Store"))
	assert.Nil(t, rev.Add("/store/new", "NewStore"))

	data, params, _, _ = rev.Lookup("/store/new")
	assert.Equal(t, data, "Store")
	assert.Equal(t, params[0].Value, "new")
}

func TestCatchAll(t *testing.T) {
	var tbl rtr.Table[string]
	assert.Nil(t, tbl.Add("/", "Home"))
	assert.Nil(t, tbl.Add("/docs/*", "Docs"))
	assert.Nil(t, tbl.Add("*", "NotFound"))

	cases := map[string]string{
		"/":              "Home",
		"/docs":          "Docs",
		"/docs/a/b/c":    "Docs",
		"/unknown":       "NotFound",
		"/unknown/a/b/c": "NotFound",
	}
	for path, want := range cases {
		data, params, _, ok := tbl.Lookup(path)
		assert.True(t, ok)
		assert.Equal(t, data, want)
		assert.Equal(t, len(params), 0)
	}

	assert.Equal(t, tbl.CatchAllIndex(), 2)
}

func TestConflict(t *testing.T) {
	var tbl rtr.Table[string]
	assert.Nil(t, tbl.Add("/users/:id", "User"))

	err := tbl.Add("/users/:userId", "Other user")
	var ce *rtr.ConflictError
	assert.True(t, errors.As(err, &ce))
	assert.Equal(t, ce.Index, 1)
	assert.Equal(t, ce.Existing, "/users/:id")
	assert.Equal(t, ce.ExistingIndex, 0)
	assert.Contains(t, err.Error(), "same shape")

	// the rejected binding is not stored
	assert.Equal(t, tbl.Len(), 1)

	// different depth or a different literal is fine
	assert.Nil(t, tbl.Add("/users/:id/posts", "Posts"))
	assert.Nil(t, tbl.Add("/users/me", "Me"))

	// the catch-all may repeat, the second one is simply unreachable
	assert.Nil(t, tbl.Add("*", "A"))
	assert.Nil(t, tbl.Add("*", "B"))
}

func TestListRoutes(t *testing.T) {
	var tbl rtr.Table[string]
	assert.Nil(t, tbl.Add("/", "Home"))
	assert.Nil(t, tbl.Add("/store/:storeId", "Store"))
	assert.Nil(t, tbl.Add("*", "NotFound"))

	routes := tbl.ListRoutes()
	assert.Equal(t, len(routes), 3)
	assert.Equal(t, routes[1], rtr.RouteList{Priority: 1, Pattern: "/store/:storeId", Shape: "/store/:", HandlerRef: "Store"})
	assert.Equal(t, routes[2].Shape, "*")
}

func TestLookupNoAlloc(t *testing.T) {
	var tbl rtr.Table[string]
	assert.Nil(t, tbl.Add("/store/:storeId", "Store"))

	got := map[string]string{}
	data, ok := tbl.LookupNoAlloc("/store/9", func(k, v string) { got[k] = v })
	assert.True(t, ok)
	assert.Equal(t, data, "Store")
	assert.Equal(t, got["storeId"], "9")

	_, ok = tbl.LookupNoAlloc("/admin", noop)
	assert.False(t, ok)
}

func TestCatalogue(t *testing.T) {
	routes := testdata.Routes("testdata/catalogue.txt")
	assert.Equal(t, len(routes), 8)

	var tbl rtr.Table[string]
	for _, route := range routes {
		assert.Nil(t, tbl.Add(route.Pattern, route.Handler))
	}

	// every non wildcard pattern resolves to its own handler
	for _, route := range routes {
		if strings.Contains(route.Pattern, "*") {
			continue
		}
		data, _, _, ok := tbl.Lookup(route.Pattern)
		assert.True(t, ok)
		assert.Equal(t, data, route.Handler)
	}

	data, params, _, _ := tbl.Lookup("/store/12/products/99")
	assert.Equal(t, data, "Product")
	assert.DeepEqual(t, rtr.ParamMap(params), map[string]string{"storeId": "12", "productId": "99"})

	data, _, _, _ = tbl.Lookup("/docs/getting-started")
	assert.Equal(t, data, "Docs")

	data, _, _, _ = tbl.Lookup("/store")
	assert.Equal(t, data, "NotFound")
}

func TestParamMapNeverNil(t *testing.T) {
	m := rtr.ParamMap(nil)
	assert.True(t, m != nil)
	assert.Equal(t, len(m), 0)
}
