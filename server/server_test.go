package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omniscale/pbfserve/element"
	"github.com/omniscale/pbfserve/parser/pbf/pbftest"
	"github.com/omniscale/pbfserve/query"
	"github.com/omniscale/pbfserve/stats"
)

var testFile = &pbftest.File{
	Blocks: []pbftest.Block{{
		Nodes: []pbftest.Node{{
			ID:   1,
			Lat:  53.5,
			Long: 10.0,
			Tags: []pbftest.Tag{{"name", "Hamburg"}, {"place", "city"}},
			Info: &pbftest.Info{Version: pbftest.Int32(3), User: pbftest.String("\xffbad")},
		}},
		DenseNodes: []pbftest.Node{{ID: 2}, {ID: 3}},
	}},
}

func writeFile(t *testing.T, f *pbftest.File) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.osm.pbf")
	require.NoError(t, f.WriteFile(path))
	return path
}

func get(t *testing.T, h http.Handler, path string, header ...string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestIndex(t *testing.T) {
	s := New(query.New(writeFile(t, testFile)), Config{})
	rec := get(t, s, "/")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OSM Rest Server", rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
}

func TestNodes(t *testing.T) {
	s := New(query.New(writeFile(t, testFile)), Config{})

	first := get(t, s, "/v1/nodes")
	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "application/json", first.Header().Get("Content-Type"))

	second := get(t, s, "/v1/nodes")
	assert.Equal(t, first.Body.String(), second.Body.String())

	var nodes []map[string]any
	require.NoError(t, json.Unmarshal(first.Body.Bytes(), &nodes))
	require.Len(t, nodes, 3)
	assert.Equal(t, float64(1), nodes[0]["id"])
	assert.Equal(t, map[string]any{"name": "Hamburg", "place": "city"}, nodes[0]["tags"])
	info := nodes[0]["info"].(map[string]any)
	assert.Nil(t, info["user"])
	assert.Equal(t, float64(3), info["version"])
	assert.Equal(t, true, info["visible"])
	assert.Equal(t, false, info["deleted"])
	assert.Nil(t, nodes[1]["info"])
	assert.Equal(t, map[string]any{}, nodes[1]["tags"])
}

func TestWaysEmpty(t *testing.T) {
	s := New(query.New(writeFile(t, testFile)), Config{})
	rec := get(t, s, "/v1/ways")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestWaysCBOR(t *testing.T) {
	path := writeFile(t, &pbftest.File{Blocks: []pbftest.Block{{
		Ways: []pbftest.Way{{ID: 7, Refs: []int64{5, 3, 5, 9}}},
	}}})
	s := New(query.New(path), Config{})
	rec := get(t, s, "/v1/ways", "Accept", "application/cbor;q=0.9, application/json;q=0.5")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/cbor", rec.Header().Get("Content-Type"))

	var ways []element.Way
	require.NoError(t, cbor.Unmarshal(rec.Body.Bytes(), &ways))
	require.Len(t, ways, 1)
	assert.Equal(t, int64(7), ways[0].Id)
	assert.Equal(t, []int64{5, 3, 5, 9}, ways[0].Refs)
}

func TestTruncatedFile(t *testing.T) {
	data, err := testFile.Bytes()
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "truncated.osm.pbf")
	require.NoError(t, os.WriteFile(path, data[:len(data)-5], 0644))

	s := New(query.New(path), Config{})
	rec := get(t, s, "/v1/nodes")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "decode_error", resp.Kind)
	assert.NotEmpty(t, resp.Error)

	// still serving
	assert.Equal(t, http.StatusOK, get(t, s, "/").Code)
}

func TestMissingFile(t *testing.T) {
	s := New(query.New(filepath.Join(t.TempDir(), "gone.pbf")), Config{})
	rec := get(t, s, "/v1/ways")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "file_unavailable", resp.Kind)
}

func TestRouting(t *testing.T) {
	s := New(query.New(writeFile(t, testFile)), Config{})
	assert.Equal(t, http.StatusNotFound, get(t, s, "/v1/relations").Code)
	assert.Equal(t, http.StatusNotFound, get(t, s, "/metrics").Code)

	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/nodes", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

type panicService struct{}

func (panicService) ListNodes(context.Context) ([]element.Node, error) { panic("boom") }
func (panicService) ListWays(context.Context) ([]element.Way, error)   { return nil, io.ErrUnexpectedEOF }

func TestPanicRecovery(t *testing.T) {
	s := New(panicService{}, Config{MaxScans: 1})
	rec := get(t, s, "/v1/nodes")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "internal", resp.Kind)

	// scan slot was released
	rec = get(t, s, "/v1/ways")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRateLimit(t *testing.T) {
	s := New(query.New(writeFile(t, testFile)), Config{Rate: 0.001, Burst: 2})
	defer s.Close()

	assert.Equal(t, http.StatusOK, get(t, s, "/").Code)
	assert.Equal(t, http.StatusOK, get(t, s, "/").Code)
	rec := get(t, s, "/")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "rate_limited")

	// forwarding headers do not reset the budget
	assert.Equal(t, http.StatusTooManyRequests, get(t, s, "/", "X-Forwarded-For", "10.0.0.1").Code)
	assert.Equal(t, http.StatusTooManyRequests, get(t, s, "/", "X-Real-IP", "10.0.0.2").Code)

	// other clients have their own budget
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:4321"
	rec = httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := stats.NewMetrics(reg)
	s := New(query.New(writeFile(t, testFile), query.WithMetrics(m)), Config{Metrics: m, Gatherer: reg})

	require.Equal(t, http.StatusOK, get(t, s, "/v1/nodes").Code)
	rec := get(t, s, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `pbfserve_http_requests_total{code="200",route="GET /v1/nodes"} 1`)
	assert.Contains(t, body, `pbfserve_scan_elements_total{kind="dense_node"} 2`)
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.1:1234"
	assert.Equal(t, "192.0.2.1", clientIP(req))
	req.Header.Set("X-Forwarded-For", "203.0.113.5, 10.0.0.1")
	req.Header.Set("X-Real-IP", "203.0.113.6")
	assert.Equal(t, "192.0.2.1", clientIP(req))
}

type blockingService struct {
	started chan struct{}
	release chan struct{}
}

func (s blockingService) ListNodes(context.Context) ([]element.Node, error) {
	close(s.started)
	<-s.release
	return []element.Node{}, nil
}

func (blockingService) ListWays(context.Context) ([]element.Way, error) {
	return []element.Way{}, nil
}

func TestCanceledWhileWaitingForScan(t *testing.T) {
	svc := blockingService{started: make(chan struct{}), release: make(chan struct{})}
	reg := prometheus.NewRegistry()
	m := stats.NewMetrics(reg)
	s := New(svc, Config{MaxScans: 1, Metrics: m})

	done := make(chan *httptest.ResponseRecorder)
	go func() {
		rec := httptest.NewRecorder()
		s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/nodes", nil))
		done <- rec
	}()
	<-svc.started

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodGet, "/v1/ways", nil).WithContext(ctx)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	assert.Equal(t, statusClientClosedRequest, rec.Code)
	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "canceled", resp.Kind)

	close(svc.release)
	assert.Equal(t, http.StatusOK, (<-done).Code)

	// scan slot of the finished request is free again
	assert.Equal(t, http.StatusOK, get(t, s, "/v1/ways").Code)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Requests.WithLabelValues("GET /v1/ways", "499")))
}
