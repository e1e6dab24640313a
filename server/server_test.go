// Package server_test exercises the HTTP surface end-to-end against the
// embedded sample dataset using httptest.
package server_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healthroute/priorityroute/dataset"
	"github.com/healthroute/priorityroute/server"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ds, err := dataset.Default()
	require.NoError(t, err)
	g, err := ds.BuildGraph()
	require.NoError(t, err)

	srv := server.New(ds, g, nil)

	return srv.Router(server.Config{Addr: ":0", AllowOrigins: []string{"*"}})
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	return w
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
	assert.Greater(t, resp["cities"], float64(0))

	// Every response carries a correlation ID.
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestCities(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/cities", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Cities []server.CityResponse `json:"cities"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Cities)

	// Sorted by ID; Abeokuta leads the sample dataset.
	assert.Equal(t, "Abeokuta", string(resp.Cities[0].ID))
}

func TestCities_StateFilter(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/cities?state=Delta", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		State  string   `json:"state"`
		Cities []string `json:"cities"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Delta", resp.State)
	assert.Equal(t, []string{"Abraka", "Asaba", "Warri"}, resp.Cities)
}

func TestRoute_OK(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/route",
		`{"source":"Lagos","destination":"Benin City","urgency":5.0}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp server.RouteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Reachable)
	assert.Equal(t, "Lagos", string(resp.Path[0]))
	assert.Equal(t, "Benin City", string(resp.Path[len(resp.Path)-1]))
	assert.InDelta(t, 290.0, resp.TotalDistance, 1e-9)
	assert.InDelta(t, 116.0, resp.TotalCost, 1e-9)
}

func TestRoute_DefaultUrgency(t *testing.T) {
	r := newTestRouter(t)

	// Omitting urgency applies the default multiplier of 1.0.
	w := doJSON(t, r, http.MethodPost, "/api/route",
		`{"source":"Lagos","destination":"Ibadan"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp server.RouteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Reachable)
}

func TestRoute_Errors(t *testing.T) {
	r := newTestRouter(t)

	// Missing required fields.
	w := doJSON(t, r, http.MethodPost, "/api/route", `{"source":"Lagos"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Out-of-range urgency.
	w = doJSON(t, r, http.MethodPost, "/api/route",
		`{"source":"Lagos","destination":"Kano","urgency":50}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown city.
	w = doJSON(t, r, http.MethodPost, "/api/route",
		`{"source":"Lagos","destination":"Atlantis"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTour(t *testing.T) {
	r := newTestRouter(t)

	for _, strategy := range []string{"nearest-cost", "greedy-priority"} {
		w := doJSON(t, r, http.MethodPost, "/api/tour",
			`{"source":"Lagos","urgency":5.0,"strategy":"`+strategy+`"}`)
		require.Equal(t, http.StatusOK, w.Code, strategy)

		var resp server.RouteResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Reachable)
		assert.Equal(t, "Lagos", string(resp.Path[0]))
		assert.Equal(t, len(resp.Path), resp.CitiesVisited)
	}

	// Unknown strategy fails request binding.
	w := doJSON(t, r, http.MethodPost, "/api/tour",
		`{"source":"Lagos","strategy":"random-walk"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
