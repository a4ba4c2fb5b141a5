package httpapi

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"leadfilter-service/internal/infrastructure/config"
	leadRepo "leadfilter-service/internal/interface/repository"
	"leadfilter-service/internal/usecase"
	"leadfilter-service/pkg/logger"
	"leadfilter-service/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logger.NewNop()
	registry := prometheus.NewRegistry()
	m := metrics.NewMetrics("test", registry)
	processor := usecase.NewLeadProcessor(leadRepo.NewJSONLeadRepository(log), m, log)

	cfg := &config.Config{Port: "0"}
	return NewServer(cfg, processor, registry, log)
}

func doRequest(s *Server, method, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, nil)
	s.httpSrv.Handler.ServeHTTP(w, req)
	return w
}

func TestProcessLeadsEndpoint(t *testing.T) {
	s := newTestServer(t)

	dir := t.TempDir()
	input := filepath.Join(dir, "leads.json")
	output := filepath.Join(dir, "out.json")
	require.NoError(t, os.WriteFile(input, []byte(`{
  "leads": [
    {"_id": "1", "email": "a@x.com", "entryDate": "2024-01-01T10:00:00Z"},
    {"_id": "1", "email": "a@x.com", "entryDate": "2024-01-02T12:00:00Z"}
  ]
}`), 0o644))

	w := doRequest(s, http.MethodPost, "/api/process-leads?input="+input+"&output="+output)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Filtered leads have been written", w.Body.String())

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "2024-01-02T12:00:00Z")
	assert.NotContains(t, string(data), "2024-01-01T10:00:00Z")
}

func TestProcessLeadsEndpointMissingParams(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(s, http.MethodPost, "/api/process-leads?input=leads.json")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(s, http.MethodPost, "/api/process-leads")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProcessLeadsEndpointPropagatesErrorMessage(t *testing.T) {
	s := newTestServer(t)

	dir := t.TempDir()
	input := filepath.Join(dir, "leads.json")
	output := filepath.Join(dir, "out.json")
	require.NoError(t, os.WriteFile(input, []byte(`{"leads": []}`), 0o644))

	w := doRequest(s, http.MethodPost, "/api/process-leads?input="+input+"&output="+output)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "no leads to process")

	_, err := os.Stat(output)
	assert.True(t, os.IsNotExist(err), "no output is written on failure")
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(s, http.MethodGet, "/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Healthy", w.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(s, http.MethodGet, "/metrics")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "test_leads_processed_total"))
}
