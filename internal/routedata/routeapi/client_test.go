package routeapi_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramabhadrarao/route-analytics-pro-v2/internal/routedata"
	"github.com/ramabhadrarao/route-analytics-pro-v2/internal/routedata/routeapi"
)

func newTestClient(baseURL string) *routeapi.Client {
	return routeapi.NewClient(routeapi.ClientConfig{
		BaseURL: baseURL,
		Logger:  zerolog.Nop(),
	})
}

func TestClient_FetchSection_Overview(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/routes/rt_abc/overview", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"route_info": {"id": "rt_abc", "name": "Plant to Depot"},
			"statistics": {"safety_score": 78.5, "total_sharp_turns": 12}
		}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	section, err := client.FetchSection(context.Background(), "rt_abc", routedata.CategoryOverview)
	require.NoError(t, err)

	overview, ok := section.(*routedata.Overview)
	require.True(t, ok)
	assert.Equal(t, "rt_abc", overview.RouteInfo.ID)
	assert.Equal(t, 78.5, overview.Statistics.SafetyScore)
	assert.Equal(t, 12, overview.Statistics.TotalSharpTurns)
}

func TestClient_FetchSection_AllCategoriesRouted(t *testing.T) {
	var paths []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	for _, cat := range routedata.Categories() {
		section, err := client.FetchSection(context.Background(), "rt_abc", cat)
		require.NoError(t, err, "category %s", cat)
		require.NotNil(t, section, "category %s", cat)
		assert.Equal(t, cat, section.SectionCategory(), "category %s", cat)
	}

	require.Len(t, paths, len(routedata.Categories()))
	for i, cat := range routedata.Categories() {
		assert.Equal(t, "/api/routes/rt_abc/"+string(cat), paths[i])
	}
}

func TestClient_FetchSection_UnknownCategory(t *testing.T) {
	client := newTestClient("http://localhost:0")

	_, err := client.FetchSection(context.Background(), "rt_abc", routedata.Category("bogus"))
	assert.ErrorIs(t, err, routedata.ErrUnknownCategory)
}

func TestClient_RouteNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.Overview(context.Background(), "rt_missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, routedata.ErrRouteNotFound)

	var dataErr *routedata.Error
	require.ErrorAs(t, err, &dataErr)
	assert.Equal(t, "ROUTE_NOT_FOUND", dataErr.Code)
	assert.Equal(t, routedata.CategoryOverview, dataErr.Category)
}

func TestClient_InBandErrorBody(t *testing.T) {
	// The upstream reports some failures as HTTP 200 with an error field
	// in the body. Those must surface as errors, not empty payloads.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"error": "route analysis still in progress"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.Turns(context.Background(), "rt_abc")
	require.Error(t, err)

	var dataErr *routedata.Error
	require.ErrorAs(t, err, &dataErr)
	assert.Equal(t, "UPSTREAM_ERROR", dataErr.Code)
	assert.Equal(t, "route analysis still in progress", dataErr.Message)
	assert.NotErrorIs(t, err, routedata.ErrSourceUnavailable)
}

func TestClient_ServerErrorMarksSourceUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.Weather(context.Background(), "rt_abc")
	require.Error(t, err)
	assert.ErrorIs(t, err, routedata.ErrSourceUnavailable)
}

func TestClient_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.Network(context.Background(), "rt_abc")
	require.Error(t, err)
	assert.False(t, errors.Is(err, routedata.ErrSourceUnavailable))
}

func TestClient_Name(t *testing.T) {
	assert.Equal(t, routeapi.SourceName, newTestClient("http://localhost:0").Name())
}
