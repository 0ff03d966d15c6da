package graphql

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintSchema(t *testing.T) {
	sdl := PrintSchema(testSchema(t))

	assert.Contains(t, sdl, "type Query {")
	assert.Contains(t, sdl, "hello(name: String): String")
	assert.Contains(t, sdl, "type Node {")
	assert.Contains(t, sdl, "child: Node")
	assert.NotContains(t, sdl, "__Schema")
	assert.NotContains(t, sdl, "scalar String")
	assert.Less(t, strings.Index(sdl, "type Query"), strings.Index(sdl, "type Node"))
}

func TestSDLHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	SDLHandler(testSchema(t)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/schema.graphql", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "type Query {")
}
