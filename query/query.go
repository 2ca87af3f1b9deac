// Package query answers list queries by scanning the PBF file.
package query

import (
	"context"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"

	"github.com/omniscale/pbfserve/element"
	"github.com/omniscale/pbfserve/logging"
	"github.com/omniscale/pbfserve/normalize"
	"github.com/omniscale/pbfserve/parser/pbf"
	"github.com/omniscale/pbfserve/stats"
	"github.com/omniscale/pbfserve/tracing"
)

var log = logging.NewLogger("query")

// Service scans a single PBF file. Every call reads the whole file again,
// nothing is cached between calls. A Service is safe for concurrent use.
type Service struct {
	path    string
	metrics *stats.Metrics
}

type Option func(*Service)

// WithMetrics records scan metrics to m.
func WithMetrics(m *stats.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func New(path string, opts ...Option) *Service {
	s := &Service{path: path}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) Path() string {
	return s.path
}

// ListNodes returns all nodes of the file in file order. Plain and dense
// nodes are interleaved as they appear in the file.
func (s *Service) ListNodes(ctx context.Context) ([]element.Node, error) {
	nodes := []element.Node{}
	err := s.scan(ctx, "nodes", func(e element.Entity) {
		if nd, ok := e.(*element.Node); ok {
			nodes = append(nodes, *nd)
		}
	})
	if err != nil {
		return nil, err
	}
	return nodes, nil
}

// ListWays returns all ways of the file in file order.
func (s *Service) ListWays(ctx context.Context) ([]element.Way, error) {
	ways := []element.Way{}
	err := s.scan(ctx, "ways", func(e element.Entity) {
		if w, ok := e.(*element.Way); ok {
			ways = append(ways, *w)
		}
	})
	if err != nil {
		return nil, err
	}
	return ways, nil
}

// scan reads the file to the end and calls fn for each entity. The context
// is only used for tracing, a started scan always runs to completion.
func (s *Service) scan(ctx context.Context, query string, fn func(element.Entity)) (err error) {
	_, span := tracing.StartSpan(ctx, "query."+query,
		attribute.String(tracing.AttrFile, s.path),
		attribute.String(tracing.AttrQuery, query),
	)
	counter := stats.NewScanCounter()
	entities := 0
	s.metrics.ScanStarted()
	defer func() {
		counter.Stop()
		kind := ErrorKind(err)
		s.metrics.ScanFinished(query, counter, kind)
		span.SetAttributes(
			attribute.Int64(tracing.AttrElements, counter.Total()),
			attribute.Int(tracing.AttrEntities, entities),
		)
		tracing.EndSpan(span, err, kind)
		if err != nil {
			log.Debugf("%s scan of %s failed after %s: %s", query, s.path, counter.Duration(), err)
		} else {
			log.Debugf("%s scan: %d entities. %s", query, entities, counter)
		}
	}()

	r, err := pbf.Open(s.path)
	if err != nil {
		return err
	}
	defer r.Close()

	return r.ForEach(func(e pbf.Element) error {
		counter.Add(e.Kind)
		if entity, ok := normalize.Entity(e); ok {
			entities++
			fn(entity)
		}
		return nil
	})
}

// ErrorKind classifies a scan error: file_unavailable, decode_error,
// canceled or internal. Returns an empty string for nil.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	case pbf.IsFileUnavailable(err):
		return "file_unavailable"
	case pbf.IsDecodeError(err):
		return "decode_error"
	}
	return "internal"
}
