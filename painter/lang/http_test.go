package lang_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roman-mazur/p5/painter"
	"github.com/roman-mazur/p5/painter/lang"
)

func TestHttpHandler_ReplacesScene(t *testing.T) {
	scene := &lang.Scene{}
	scene.Replace([]painter.Shape{painter.NoFill{}})
	handler := lang.HttpHandler(scene)

	body := "nostroke\nrect 1 2 3 4\nnot-a-command\n\n# comment\n"
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []painter.Shape{
		painter.NoStroke{},
		painter.Rect{X: 1, Y: 2, W: 3, H: 4},
	}, scene.Shapes())
	assert.Equal(t, 2, scene.Version())
}

func TestHttpHandler_EmptyBodyClearsScene(t *testing.T) {
	scene := &lang.Scene{}
	scene.Replace([]painter.Shape{painter.NoFill{}})

	rec := httptest.NewRecorder()
	lang.HttpHandler(scene)(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("")))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, scene.Shapes())
}

func TestHttpHandler_MethodNotAllowed(t *testing.T) {
	scene := &lang.Scene{}
	rec := httptest.NewRecorder()
	lang.HttpHandler(scene)(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, 0, scene.Version())
}
