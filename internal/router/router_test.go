package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/libertybench/sampleapp/internal/config"
	"github.com/libertybench/sampleapp/internal/counter"
	"github.com/libertybench/sampleapp/internal/models"
)

func newTestServer(t *testing.T, debug bool) *httptest.Server {
	t.Helper()

	cfg := &config.Config{Debug: debug}
	server := httptest.NewServer(Setup(cfg, counter.New()))
	t.Cleanup(server.Close)

	return server
}

func decodeBody(t *testing.T, resp *http.Response, target interface{}) {
	t.Helper()

	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(target))
}

func TestHTTP_Greet(t *testing.T) {
	server := newTestServer(t, false)

	resp, err := http.Get(server.URL + "/api/hello")
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var greet models.GreetResponse
	decodeBody(t, resp, &greet)
	assert.Equal(t, "Hello from Liberty!", greet.Message)
	assert.False(t, greet.Timestamp.IsZero())
}

func TestHTTP_GreetName(t *testing.T) {
	server := newTestServer(t, false)

	resp, err := http.Get(server.URL + "/api/hello/World")
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var greet models.GreetNameResponse
	decodeBody(t, resp, &greet)
	assert.Equal(t, "Hello, World!", greet.Message)
}

func TestHTTP_GreetName_TooLong(t *testing.T) {
	server := newTestServer(t, false)

	resp, err := http.Get(server.URL + "/api/hello/" + strings.Repeat("a", 101))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHTTP_Echo(t *testing.T) {
	server := newTestServer(t, false)

	body, err := json.Marshal(map[string]string{"message": "日本語"})
	require.NoError(t, err)

	resp, err := http.Post(server.URL+"/api/echo", "application/json", bytes.NewReader(body))
	require.NoError(t, err)

	// Echo does not create a resource, so it answers 200 rather than 201.
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var echo models.EchoResponse
	decodeBody(t, resp, &echo)
	assert.Equal(t, "日本語", echo.Echo)
	assert.Equal(t, 3, echo.Length)
}

func TestHTTP_Echo_MissingBody(t *testing.T) {
	server := newTestServer(t, false)

	resp, err := http.Post(server.URL+"/api/echo", "application/json", nil)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var payload map[string]string
	decodeBody(t, resp, &payload)
	assert.Equal(t, "Request body is required", payload["error"])
}

func TestHTTP_Echo_BlankMessage(t *testing.T) {
	server := newTestServer(t, false)

	resp, err := http.Post(server.URL+"/api/echo", "application/json", strings.NewReader(`{"message":"   "}`))
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var payload map[string]interface{}
	decodeBody(t, resp, &payload)
	// A blank message is a validation failure, not the missing-body case.
	assert.NotEqual(t, "Request body is required", payload["error"])
}

func TestHTTP_Slow(t *testing.T) {
	server := newTestServer(t, false)

	resp, err := http.Get(server.URL + "/api/slow?delay=0")
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var slow models.SlowResponse
	decodeBody(t, resp, &slow)
	assert.Equal(t, 0, slow.DelayMs)
}

func TestHTTP_Slow_OutOfRange(t *testing.T) {
	server := newTestServer(t, false)

	for _, delay := range []string{"20000", "-1"} {
		t.Run("delay="+delay, func(t *testing.T) {
			resp, err := http.Get(server.URL + "/api/slow?delay=" + delay)
			require.NoError(t, err)
			defer resp.Body.Close()

			// Out-of-range delays are rejected, never clamped.
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestHTTP_Slow_MalformedDelay(t *testing.T) {
	server := newTestServer(t, false)

	resp, err := http.Get(server.URL + "/api/slow?delay=abc")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHTTP_Compute(t *testing.T) {
	server := newTestServer(t, false)

	resp, err := http.Get(server.URL + "/api/compute?iterations=5000")
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var compute models.ComputeResponse
	decodeBody(t, resp, &compute)
	assert.Equal(t, 5000, compute.Iterations)
	assert.NotZero(t, compute.Result)
	assert.GreaterOrEqual(t, compute.DurationMs, int64(0))
}

func TestHTTP_Compute_OutOfRange(t *testing.T) {
	server := newTestServer(t, false)

	for _, iterations := range []string{"0", "10000001"} {
		t.Run("iterations="+iterations, func(t *testing.T) {
			resp, err := http.Get(server.URL + "/api/compute?iterations=" + iterations)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestHTTP_StatsFlow(t *testing.T) {
	server := newTestServer(t, false)

	mustGet := func(path string) {
		resp, err := http.Get(server.URL + path)
		require.NoError(t, err)
		resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	mustGet("/api/hello")
	mustGet("/api/hello")
	mustGet("/api/hello/Test")

	body, err := json.Marshal(map[string]string{"message": "test"})
	require.NoError(t, err)
	resp, err := http.Post(server.URL+"/api/echo", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(server.URL + "/api/stats")
	require.NoError(t, err)
	var stats models.StatsResponse
	decodeBody(t, resp, &stats)
	assert.Equal(t, uint64(4), stats.TotalRequests)
	assert.True(t, strings.HasPrefix(stats.AppUptime, "PT"))

	resp, err = http.Post(server.URL+"/api/stats/reset", "application/json", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var reset models.ResetStatsResponse
	decodeBody(t, resp, &reset)
	assert.Equal(t, uint64(4), reset.PreviousRequestCount)

	resp, err = http.Get(server.URL + "/api/stats")
	require.NoError(t, err)
	decodeBody(t, resp, &stats)
	assert.Equal(t, uint64(0), stats.TotalRequests)
}

func TestHTTP_ConcurrentRequestsAllCounted(t *testing.T) {
	const workers = 50

	server := newTestServer(t, false)

	var wg sync.WaitGroup
	wg.Add(workers)
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			resp, err := http.Get(server.URL + "/api/hello")
			if err != nil {
				errs <- err

				return
			}
			resp.Body.Close()
			if resp.StatusCode != http.StatusOK {
				errs <- fmt.Errorf("unexpected status %d", resp.StatusCode)
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	resp, err := http.Get(server.URL + "/api/stats")
	require.NoError(t, err)
	var stats models.StatsResponse
	decodeBody(t, resp, &stats)
	assert.Equal(t, uint64(workers), stats.TotalRequests, "no increment may be lost under concurrency")
}

func TestHTTP_Info_Gated(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		server := newTestServer(t, false)

		resp, err := http.Get(server.URL + "/api/info")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("enabled", func(t *testing.T) {
		server := newTestServer(t, true)

		resp, err := http.Get(server.URL + "/api/info")
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var info models.InfoResponse
		decodeBody(t, resp, &info)
		assert.NotEmpty(t, info.Hostname)
		assert.NotEmpty(t, info.RuntimeVersion)
		assert.GreaterOrEqual(t, info.AvailableProcessors, 1)
	})
}

func TestHTTP_Health(t *testing.T) {
	server := newTestServer(t, false)

	resp, err := http.Get(server.URL + "/health")
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var health models.HealthResponse
	decodeBody(t, resp, &health)
	assert.Equal(t, "UP", health.Status)
}
