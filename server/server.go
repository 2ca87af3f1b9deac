// Package server serves the query results over HTTP.
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"

	"github.com/omniscale/pbfserve/element"
	"github.com/omniscale/pbfserve/logging"
	"github.com/omniscale/pbfserve/query"
	"github.com/omniscale/pbfserve/stats"
	"github.com/omniscale/pbfserve/tracing"
)

var log = logging.NewLogger("server")

const Banner = "OSM Rest Server"

const (
	contentJSON = "application/json"
	contentCBOR = "application/cbor"
)

// Service answers the list queries. *query.Service implements it.
type Service interface {
	ListNodes(ctx context.Context) ([]element.Node, error)
	ListWays(ctx context.Context) ([]element.Way, error)
}

type Config struct {
	// Rate is the number of requests per second allowed for each client.
	// Zero disables rate limiting.
	Rate  float64
	Burst int
	// MaxScans limits the number of concurrent file scans. Zero means no
	// limit. Requests wait for a free slot.
	MaxScans int64
	Metrics  *stats.Metrics
	// Gatherer is exposed at /metrics if set.
	Gatherer prometheus.Gatherer
}

type Server struct {
	service Service
	metrics *stats.Metrics
	scans   *semaphore.Weighted
	limiter *RateLimiter
	handler http.Handler
}

func New(service Service, conf Config) *Server {
	s := &Server{
		service: service,
		metrics: conf.Metrics,
	}
	if conf.MaxScans > 0 {
		s.scans = semaphore.NewWeighted(conf.MaxScans)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.index)
	mux.HandleFunc("GET /v1/nodes", s.nodes)
	mux.HandleFunc("GET /v1/ways", s.ways)
	if conf.Gatherer != nil {
		mux.Handle("GET /metrics", promhttp.HandlerFor(conf.Gatherer, promhttp.HandlerOpts{}))
	}

	var h http.Handler = mux
	if conf.Rate > 0 {
		burst := conf.Burst
		if burst < 1 {
			burst = 1
		}
		s.limiter = NewRateLimiter(rate.Limit(conf.Rate), burst)
		h = s.limiter.Middleware(h)
	}
	h = recoverPanics(h)
	s.handler = s.logRequests(h)
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// Close stops background work of the server. It does not close listeners.
func (s *Server) Close() {
	if s.limiter != nil {
		s.limiter.Stop()
	}
}

func (s *Server) index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(Banner))
}

func (s *Server) nodes(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.StartSpan(r.Context(), "GET /v1/nodes", attribute.String("http.route", "/v1/nodes"))
	var result []element.Node
	err := s.withScan(ctx, func(ctx context.Context) (err error) {
		result, err = s.service.ListNodes(ctx)
		return err
	})
	tracing.EndSpan(span, err, query.ErrorKind(err))
	if err != nil {
		writeError(w, err)
		return
	}
	writeResult(w, r, result)
}

func (s *Server) ways(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.StartSpan(r.Context(), "GET /v1/ways", attribute.String("http.route", "/v1/ways"))
	var result []element.Way
	err := s.withScan(ctx, func(ctx context.Context) (err error) {
		result, err = s.service.ListWays(ctx)
		return err
	})
	tracing.EndSpan(span, err, query.ErrorKind(err))
	if err != nil {
		writeError(w, err)
		return
	}
	writeResult(w, r, result)
}

// withScan runs fn once a scan slot is free.
func (s *Server) withScan(ctx context.Context, fn func(context.Context) error) error {
	if s.scans != nil {
		if err := s.scans.Acquire(ctx, 1); err != nil {
			return errors.Wrap(err, "waiting for scan slot")
		}
		defer s.scans.Release(1)
	}
	return fn(ctx)
}

var cborEnc cbor.EncMode

func init() {
	var err error
	cborEnc, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("server: CBOR encoder initialization failed: " + err.Error())
	}
}

func wantsCBOR(r *http.Request) bool {
	for _, accept := range r.Header.Values("Accept") {
		for _, part := range strings.Split(accept, ",") {
			mediaType, _, _ := strings.Cut(part, ";")
			if strings.EqualFold(strings.TrimSpace(mediaType), contentCBOR) {
				return true
			}
		}
	}
	return false
}

// writeResult encodes the complete result before writing anything, a failed
// encoding results in an error response instead of a partial body.
func writeResult(w http.ResponseWriter, r *http.Request, v any) {
	var body []byte
	var err error
	contentType := contentJSON
	if wantsCBOR(r) {
		contentType = contentCBOR
		body, err = cborEnc.Marshal(v)
	} else {
		buf := &bytes.Buffer{}
		err = json.NewEncoder(buf).Encode(v)
		body = buf.Bytes()
	}
	if err != nil {
		writeError(w, errors.Wrap(err, "encoding response"))
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.Write(body)
}

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

// statusClientClosedRequest is reported for requests the client gave up on.
// The response is not read by anyone but ends up in the request log and
// metrics.
const statusClientClosedRequest = 499

func statusCode(kind string) int {
	switch kind {
	case "file_unavailable":
		return http.StatusServiceUnavailable
	case "rate_limited":
		return http.StatusTooManyRequests
	case "canceled":
		return statusClientClosedRequest
	}
	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, err error) {
	kind := query.ErrorKind(err)
	if kind == "canceled" {
		log.Debugf("%s: %s", kind, err)
	} else {
		log.Errorf("%s: %s", kind, err)
	}
	writeErrorKind(w, kind, err.Error())
}

func writeErrorKind(w http.ResponseWriter, kind, msg string) {
	body, _ := json.Marshal(errorResponse{Error: msg, Kind: kind})
	w.Header().Set("Content-Type", contentJSON)
	w.WriteHeader(statusCode(kind))
	w.Write(body)
	w.Write([]byte("\n"))
}
