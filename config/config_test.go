package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omniscale/pbfserve/parser/pbf/pbftest"
)

func writeOsmFile(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "test.osm.pbf")
	f := &pbftest.File{
		ReplicationTime:     1700000000,
		ReplicationSequence: 4242,
		Blocks:              []pbftest.Block{{Nodes: []pbftest.Node{{ID: 1}}}},
	}
	require.NoError(t, f.WriteFile(path))
	return path
}

func writeText(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func clearEnv(t *testing.T) {
	for _, key := range []string{EnvOsmFile, EnvListen, EnvOtlpEndpoint} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestParseServeDefaults(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	osmfile := writeOsmFile(t, dir)

	opts, err := ParseServe([]string{"-o", osmfile, "--envfile", filepath.Join(dir, "missing.env")})
	require.NoError(t, err)
	assert.Equal(t, osmfile, opts.OsmFile)
	assert.Equal(t, "127.0.0.1:8080", opts.Listen)
	assert.Equal(t, 10, opts.Burst)
	assert.Equal(t, 0.0, opts.Rate)
	assert.Equal(t, int64(0), opts.MaxScans)
	assert.False(t, opts.Debug)
}

func TestPrecedence(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	osmfile := writeOsmFile(t, dir)
	conf := writeText(t, filepath.Join(dir, "pbfserve.yaml"), `
osmfile: /does/not/exist.pbf
listen: 0.0.0.0:9000
rate: 5
burst: 20
max_scans: 2
otlp_endpoint: config:4317
`)
	envfile := writeText(t, filepath.Join(dir, "test.env"), "PBFSERVE_OSMFILE="+osmfile+"\nPBFSERVE_OTLP_ENDPOINT=dotenv:4317\n")

	opts, err := ParseServe([]string{"-c", conf, "--envfile", envfile})
	require.NoError(t, err)
	// .env before config file
	assert.Equal(t, osmfile, opts.OsmFile)
	assert.Equal(t, "dotenv:4317", opts.OtlpEndpoint)
	// config file before defaults
	assert.Equal(t, "0.0.0.0:9000", opts.Listen)
	assert.Equal(t, 5.0, opts.Rate)
	assert.Equal(t, 20, opts.Burst)
	assert.Equal(t, int64(2), opts.MaxScans)

	// environment before .env
	t.Setenv(EnvOtlpEndpoint, "env:4317")
	t.Setenv(EnvListen, "localhost:7000")
	opts, err = ParseServe([]string{"-c", conf, "--envfile", envfile})
	require.NoError(t, err)
	assert.Equal(t, "env:4317", opts.OtlpEndpoint)
	assert.Equal(t, "localhost:7000", opts.Listen)

	// flags before everything
	opts, err = ParseServe([]string{"-c", conf, "--envfile", envfile, "-l", ":8000", "--burst", "3", "--otlp-endpoint", ""})
	require.NoError(t, err)
	assert.Equal(t, ":8000", opts.Listen)
	assert.Equal(t, 3, opts.Burst)
	assert.Equal(t, "", opts.OtlpEndpoint)
}

func TestOsmFileChecks(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	noenv := []string{"--envfile", ""}

	_, err := ParseServe(noenv)
	assert.ErrorContains(t, err, "missing -osmfile")

	_, err = ParseServe(append(noenv, "-o", filepath.Join(dir, "missing.pbf")))
	assert.Error(t, err)

	_, err = ParseQuery("nodes", append(noenv, "-o", dir))
	assert.ErrorContains(t, err, "not a regular file")
}

func TestParseErrors(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	osmfile := writeOsmFile(t, dir)

	_, err := ParseQuery("ways", []string{"-o", osmfile, "--listen", ":80"})
	assert.Error(t, err)

	_, err = ParseQuery("ways", []string{"-o", osmfile, "extra"})
	assert.ErrorContains(t, err, "unexpected arguments")

	conf := writeText(t, filepath.Join(dir, "bad.yaml"), "unknown_option: 1\n")
	_, err = ParseServe([]string{"-o", osmfile, "-c", conf})
	assert.ErrorContains(t, err, "parsing config")
}

func TestReadHeader(t *testing.T) {
	dir := t.TempDir()
	header, err := ReadHeader(writeOsmFile(t, dir))
	require.NoError(t, err)
	assert.Equal(t, time.Unix(1700000000, 0).UTC(), header.Time.UTC())
	assert.Equal(t, int64(4242), header.Sequence)
	assert.Equal(t, []string{"OsmSchema-V0.6", "DenseNodes"}, header.RequiredFeatures)

	out := FormatHeader(header)
	assert.Contains(t, out, "replication time: 2023-11-14T22:13:20Z\n")
	assert.Contains(t, out, "replication sequence: 4242\n")

	_, err = ReadHeader(writeText(t, filepath.Join(dir, "truncated.pbf"), "\x00\x00\x00\x05abc"))
	assert.Error(t, err)
}
