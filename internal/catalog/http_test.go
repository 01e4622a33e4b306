package catalog_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"StoreFront/internal/catalog"
)

func newServer() http.Handler {
	s := &catalog.Server{
		Store: catalog.NewMemStore(catalog.SampleProducts()...),
		Log:   zap.NewNop(),
	}
	return s.Routes()
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestList_SampleCatalog(t *testing.T) {
	rec := get(t, newServer(), "/")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var got []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 2)

	assert.Equal(t, "1", got[0]["id"])
	assert.Equal(t, true, got[0]["isNew"])
	assert.NotContains(t, got[0], "originalPrice")
	assert.NotContains(t, got[0], "discount")

	assert.Equal(t, 79.99, got[1]["originalPrice"])
	assert.Equal(t, 25.0, got[1]["discount"])
	assert.NotContains(t, got[1], "isNew")
}

func TestList_Filters(t *testing.T) {
	h := newServer()

	cases := []struct {
		query string
		want  int
	}{
		{"?category=men", 2},
		{"?category=women", 0},
		{"?min_price=30", 1},
		{"?max_price=30", 1},
		{"?min_price=24.99&max_price=59.99", 2},
		{"?category=men&min_price=60", 0},
		{"?min_price=&max_price=", 2},
	}

	for _, tc := range cases {
		t.Run(tc.query, func(t *testing.T) {
			rec := get(t, h, "/"+tc.query)
			require.Equal(t, http.StatusOK, rec.Code)

			var got []catalog.Product
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Len(t, got, tc.want)
		})
	}

	t.Run("empty result is an array", func(t *testing.T) {
		rec := get(t, h, "/?category=women")
		assert.JSONEq(t, `[]`, rec.Body.String())
	})
}

func TestList_MalformedPrice(t *testing.T) {
	h := newServer()

	rec := get(t, h, "/?min_price=cheap")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid min_price"}`, rec.Body.String())

	rec = get(t, h, "/?max_price=NaN")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid max_price"}`, rec.Body.String())
}

func TestGet(t *testing.T) {
	h := newServer()

	rec := get(t, h, "/2")
	require.Equal(t, http.StatusOK, rec.Code)
	var p catalog.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	assert.Equal(t, "Slim Fit Jeans", p.Name)

	rec = get(t, h, "/404")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Product not found"}`, rec.Body.String())
}

func TestRelated(t *testing.T) {
	h := newServer()

	rec := get(t, h, "/related?category=men&exclude_id=1")
	require.Equal(t, http.StatusOK, rec.Code)
	var got []catalog.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)

	rec = get(t, h, "/related")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Category parameter is required"}`, rec.Body.String())
}
