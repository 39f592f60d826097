package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorderCounts(t *testing.T) {
	r := NewRecorder()
	r.ObserveDispatch("rule")
	r.ObserveDispatch("rule")
	r.ObserveDispatch("fallback")
	r.ObserveProviderCall("openai", false, 0.2)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.dispatches.WithLabelValues("rule")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.dispatches.WithLabelValues("fallback")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.providerCalls.WithLabelValues("openai", "false")))
}

func TestHandlerExposesMetrics(t *testing.T) {
	r := NewRecorder()
	r.ObserveDispatch("model")

	srv := httptest.NewServer(r.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `vyra_commands_total{path="model"} 1`)
}
