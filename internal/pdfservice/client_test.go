package pdfservice_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramabhadrarao/route-analytics-pro-v2/internal/pdfservice"
)

func newTestClient(baseURL string) *pdfservice.Client {
	return pdfservice.NewClient(pdfservice.ClientConfig{
		BaseURL: baseURL,
		Logger:  zerolog.Nop(),
	})
}

func TestClient_Generate(t *testing.T) {
	pdfBytes := []byte("%PDF-1.7 fake document")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/pdf/generate", r.URL.Path)

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		var req map[string]interface{}
		require.NoError(t, json.Unmarshal(body, &req))
		assert.Equal(t, "rt_abc", req["route_id"])
		assert.Equal(t, []interface{}{"overview", "turns"}, req["pages"])

		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write(pdfBytes)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	doc, err := client.Generate(context.Background(), "rt_abc", []string{"overview", "turns"})
	require.NoError(t, err)
	assert.Equal(t, pdfBytes, doc)
}

func TestClient_Generate_FullReportOmitsPages(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		var req map[string]interface{}
		require.NoError(t, json.Unmarshal(body, &req))
		_, hasPages := req["pages"]
		assert.False(t, hasPages, "empty page list must be omitted from the request")

		_, _ = w.Write([]byte("%PDF"))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.Generate(context.Background(), "rt_abc", nil)
	require.NoError(t, err)
}

func TestClient_Generate_Rejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.Generate(context.Background(), "rt_abc", nil)
	assert.ErrorIs(t, err, pdfservice.ErrGeneration)
}

func TestClient_Generate_ServerErrorIsUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.Generate(context.Background(), "rt_abc", nil)
	assert.ErrorIs(t, err, pdfservice.ErrUnavailable)
}

func TestClient_Generate_EmptyDocument(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.Generate(context.Background(), "rt_abc", nil)
	assert.ErrorIs(t, err, pdfservice.ErrGeneration)
}
