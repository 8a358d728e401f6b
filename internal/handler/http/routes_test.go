package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/shielded-nft/internal/logger"
)

func TestRoutes_Version(t *testing.T) {
	router := newTestRouter(t, Settings{})

	rec := doRequest(t, router, http.MethodGet, "/api/version", nil, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, testVersion, rec.Body.String())
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}

func TestRoutes_WrongMethodIsNotFound(t *testing.T) {
	router := newTestRouter(t, Settings{})

	tests := []struct {
		method string
		target string
	}{
		{method: http.MethodGet, target: "/api/nft/mint"},
		{method: http.MethodGet, target: "/api/nft/transfer"},
		{method: http.MethodGet, target: "/api/nft/airdrop"},
		{method: http.MethodGet, target: "/api/nft/not-an-id"},
		{method: http.MethodDelete, target: "/api/version"},
		{method: http.MethodPut, target: "/api/ibc/import"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			rec := doRequest(t, router, tt.method, tt.target, nil, nil)
			assert.Equal(t, http.StatusNotFound, rec.Code)
		})
	}
}

func TestRoutes_Metrics(t *testing.T) {
	services, reg := newTestServices(t)
	router := NewHandler(services, Settings{Gatherer: reg}, logger.Nop()).Init()

	mintVia(t, router, "alice", "Counted")

	rec := doRequest(t, router, http.MethodGet, "/metrics", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `op="mint"`)
}

func TestRoutes_MetricsDisabledWithoutGatherer(t *testing.T) {
	router := newTestRouter(t, Settings{})

	rec := doRequest(t, router, http.MethodGet, "/metrics", nil, nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
