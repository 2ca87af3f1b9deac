package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omniscale/pbfserve/config"
	"github.com/omniscale/pbfserve/parser/pbf/pbftest"
)

func TestPrintQuery(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.osm.pbf")
	f := &pbftest.File{Blocks: []pbftest.Block{{
		DenseNodes: []pbftest.Node{{ID: 1}},
		Ways:       []pbftest.Way{{ID: 2, Refs: []int64{1, 1}}},
	}}}
	require.NoError(t, f.WriteFile(path))
	opts := &config.Options{Config: config.Config{OsmFile: path}}

	buf := &bytes.Buffer{}
	require.NoError(t, printQuery("ways", opts, buf))
	assert.JSONEq(t, `[{"id":2,"tags":{},"info":{"version":null,"milli_timestamp":null,"changeset":null,"uid":null,"user":null,"visible":true,"deleted":false},"refs":[1,1]}]`, buf.String())

	buf.Reset()
	require.NoError(t, printQuery("nodes", opts, buf))
	assert.JSONEq(t, `[{"id":1,"tags":{},"lat":0,"lon":0,"info":null}]`, buf.String())

	opts.OsmFile = filepath.Join(t.TempDir(), "missing.pbf")
	assert.Error(t, printQuery("nodes", opts, buf))
}
