package query

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omniscale/pbfserve/element"
	"github.com/omniscale/pbfserve/parser/pbf"
	"github.com/omniscale/pbfserve/parser/pbf/pbftest"
	"github.com/omniscale/pbfserve/stats"
)

func writeFile(t *testing.T, f *pbftest.File) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.osm.pbf")
	require.NoError(t, f.WriteFile(path))
	return path
}

var mixed = &pbftest.File{
	Compression: pbftest.Zlib,
	Blocks: []pbftest.Block{
		{
			Nodes:      []pbftest.Node{{ID: 1, Lat: 1, Long: 2}},
			DenseNodes: []pbftest.Node{{ID: 2}, {ID: 3, Tags: []pbftest.Tag{{"amenity", "cafe"}}}},
		},
		{
			Ways:      []pbftest.Way{{ID: 10, Refs: []int64{1, 2, 3, 1}}},
			Relations: []pbftest.Relation{{ID: 20}},
		},
		{
			Nodes: []pbftest.Node{{ID: 4}},
			Ways:  []pbftest.Way{{ID: 11, Refs: []int64{5, 3, 5, 9}}},
		},
	},
}

func ids[T element.Entity](entities []T) []int64 {
	result := make([]int64, len(entities))
	for i, e := range entities {
		result[i] = e.ID()
	}
	return result
}

func TestListNodes(t *testing.T) {
	s := New(writeFile(t, mixed))

	nodes, err := s.ListNodes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3, 4}, ids(ptrs(nodes)))
	assert.NotNil(t, nodes[0].Info)
	assert.Nil(t, nodes[1].Info)
	assert.Equal(t, element.Tags{"amenity": "cafe"}, nodes[2].Tags)

	again, err := s.ListNodes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, nodes, again)
}

func TestListWays(t *testing.T) {
	ways, err := New(writeFile(t, mixed)).ListWays(context.Background())
	require.NoError(t, err)
	require.Len(t, ways, 2)
	assert.Equal(t, int64(10), ways[0].Id)
	assert.Equal(t, []int64{1, 2, 3, 1}, ways[0].Refs)
	assert.Equal(t, []int64{5, 3, 5, 9}, ways[1].Refs)
}

func TestEmptyResults(t *testing.T) {
	path := writeFile(t, &pbftest.File{Blocks: []pbftest.Block{{
		Nodes: []pbftest.Node{{ID: 1}},
	}}})
	ways, err := New(path).ListWays(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, ways)
	assert.Empty(t, ways)

	nodes, err := New(writeFile(t, &pbftest.File{})).ListNodes(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, nodes)
	assert.Empty(t, nodes)
}

func TestMissingFile(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing.pbf")).ListNodes(context.Background())
	require.Error(t, err)
	assert.True(t, pbf.IsFileUnavailable(err))
	assert.Equal(t, "file_unavailable", ErrorKind(err))
}

func TestTruncatedFile(t *testing.T) {
	data, err := mixed.Bytes()
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "truncated.osm.pbf")
	require.NoError(t, os.WriteFile(path, data[:len(data)-5], 0644))

	reg := prometheus.NewRegistry()
	m := stats.NewMetrics(reg)
	s := New(path, WithMetrics(m))

	nodes, err := s.ListNodes(context.Background())
	require.Error(t, err)
	assert.Nil(t, nodes)
	assert.True(t, pbf.IsDecodeError(err))
	assert.Equal(t, "decode_error", ErrorKind(err))

	ways, err := s.ListWays(context.Background())
	require.Error(t, err)
	assert.Nil(t, ways)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.ScanErrors.WithLabelValues("nodes", "decode_error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ScanErrors.WithLabelValues("ways", "decode_error")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.ActiveScans))
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := stats.NewMetrics(reg)
	_, err := New(writeFile(t, mixed), WithMetrics(m)).ListWays(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ScanElements.WithLabelValues("node")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.ScanElements.WithLabelValues("dense_node")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.ScanElements.WithLabelValues("way")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ScanElements.WithLabelValues("relation")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.ScanDuration))
}

func TestErrorKind(t *testing.T) {
	assert.Equal(t, "", ErrorKind(nil))
	assert.Equal(t, "internal", ErrorKind(os.ErrClosed))
	assert.Equal(t, "canceled", ErrorKind(errors.Wrap(context.Canceled, "waiting")))
	assert.Equal(t, "canceled", ErrorKind(context.DeadlineExceeded))
}

func ptrs[T any](s []T) []*T {
	result := make([]*T, len(s))
	for i := range s {
		result[i] = &s[i]
	}
	return result
}
