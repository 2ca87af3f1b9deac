// Package config parses the command line options. Values are taken from
// flags, the environment, a .env file and an optional YAML config file, in
// this order of precedence.
package config

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	osmpbf "github.com/omniscale/go-osm/parser/pbf"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v2"
)

const (
	defaultListen  = "127.0.0.1:8080"
	defaultEnvFile = ".env"
	defaultBurst   = 10
)

const (
	EnvOsmFile      = "PBFSERVE_OSMFILE"
	EnvListen       = "PBFSERVE_LISTEN"
	EnvOtlpEndpoint = "PBFSERVE_OTLP_ENDPOINT"
)

// Config contains the options that can be set in a config file.
type Config struct {
	OsmFile      string  `yaml:"osmfile"`
	Listen       string  `yaml:"listen"`
	Rate         float64 `yaml:"rate"`
	Burst        int     `yaml:"burst"`
	MaxScans     int64   `yaml:"max_scans"`
	OtlpEndpoint string  `yaml:"otlp_endpoint"`
}

type Options struct {
	Config
	ConfigFile  string
	EnvFile     string
	Httpprofile string
	MemProfile  string
	Quiet       bool
	Debug       bool
}

func defaults() Config {
	return Config{
		Listen: defaultListen,
		Burst:  defaultBurst,
	}
}

type command struct {
	flags *pflag.FlagSet
	opts  *Options
	// flag values, merged into opts.Config when set on the command line
	values Config
}

func newCommand(name string, serve bool) *command {
	c := &command{
		flags: pflag.NewFlagSet(name, pflag.ContinueOnError),
		opts:  &Options{},
	}
	c.flags.SetOutput(io.Discard)
	c.flags.StringVarP(&c.values.OsmFile, "osmfile", "o", "", "OSM PBF file ($"+EnvOsmFile+")")
	c.flags.StringVarP(&c.opts.ConfigFile, "config", "c", "", "config file (yaml)")
	c.flags.StringVar(&c.opts.EnvFile, "envfile", defaultEnvFile, "file with environment variables, ignored if missing")
	c.flags.BoolVar(&c.opts.Quiet, "quiet", false, "only log warnings and errors")
	c.flags.BoolVar(&c.opts.Debug, "debug", false, "log debug messages")
	if serve {
		c.flags.StringVarP(&c.values.Listen, "listen", "l", defaultListen, "listen address ($"+EnvListen+")")
		c.flags.Float64Var(&c.values.Rate, "rate", 0, "requests per second for each client, 0 disables limit")
		c.flags.IntVar(&c.values.Burst, "burst", defaultBurst, "request burst for each client")
		c.flags.Int64Var(&c.values.MaxScans, "max-scans", 0, "max concurrent file scans, 0 for no limit")
		c.flags.StringVar(&c.values.OtlpEndpoint, "otlp-endpoint", "", "OTLP/gRPC endpoint for traces ($"+EnvOtlpEndpoint+")")
		c.flags.StringVar(&c.opts.Httpprofile, "httpprofile", "", "bind address for profile server")
		c.flags.StringVar(&c.opts.MemProfile, "memprofile", "", "dir for periodic heap profiles")
	}
	return c
}

// ParseServe parses the options of the serve command.
func ParseServe(args []string) (*Options, error) {
	return newCommand("serve", true).parse(args)
}

// ParseQuery parses the options of the single query commands (nodes, ways
// and header).
func ParseQuery(name string, args []string) (*Options, error) {
	return newCommand(name, false).parse(args)
}

// Usage writes the flags of a command to w.
func Usage(w io.Writer, name string) {
	c := newCommand(name, name == "serve")
	fmt.Fprintf(w, "Usage: %s %s [args]\n\n", os.Args[0], name)
	c.flags.SetOutput(w)
	c.flags.PrintDefaults()
}

func (c *command) parse(args []string) (*Options, error) {
	if err := c.flags.Parse(args); err != nil {
		return nil, err
	}
	if c.flags.NArg() > 0 {
		return nil, errors.Errorf("unexpected arguments: %v", c.flags.Args())
	}

	c.opts.Config = defaults()
	if c.opts.ConfigFile != "" {
		if err := loadConfigFile(c.opts.ConfigFile, &c.opts.Config); err != nil {
			return nil, err
		}
	}
	if err := c.updateFromEnv(); err != nil {
		return nil, err
	}
	c.updateFromFlags()

	if err := checkOsmFile(c.opts.OsmFile); err != nil {
		return nil, err
	}
	return c.opts, nil
}

func loadConfigFile(path string, conf *Config) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "reading config")
	}
	if err := yaml.UnmarshalStrict(b, conf); err != nil {
		return errors.Wrapf(err, "parsing config %s", path)
	}
	return nil
}

func (c *command) updateFromEnv() error {
	dotenv := map[string]string{}
	if c.opts.EnvFile != "" {
		var err error
		dotenv, err = godotenv.Read(c.opts.EnvFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return errors.Wrapf(err, "reading %s", c.opts.EnvFile)
		}
	}
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}

	if v, ok := lookup(EnvOsmFile); ok && v != "" {
		c.opts.OsmFile = v
	}
	if v, ok := lookup(EnvListen); ok && v != "" {
		c.opts.Listen = v
	}
	if v, ok := lookup(EnvOtlpEndpoint); ok {
		c.opts.OtlpEndpoint = v
	}
	return nil
}

func (c *command) updateFromFlags() {
	if c.flags.Changed("osmfile") {
		c.opts.OsmFile = c.values.OsmFile
	}
	if c.flags.Lookup("listen") == nil {
		return
	}
	if c.flags.Changed("listen") {
		c.opts.Listen = c.values.Listen
	}
	if c.flags.Changed("rate") {
		c.opts.Rate = c.values.Rate
	}
	if c.flags.Changed("burst") {
		c.opts.Burst = c.values.Burst
	}
	if c.flags.Changed("max-scans") {
		c.opts.MaxScans = c.values.MaxScans
	}
	if c.flags.Changed("otlp-endpoint") {
		c.opts.OtlpEndpoint = c.values.OtlpEndpoint
	}
}

func checkOsmFile(path string) error {
	if path == "" {
		return errors.New("missing -osmfile")
	}
	fi, err := os.Stat(path)
	if err != nil {
		return errors.Wrap(err, "checking osm file")
	}
	if !fi.Mode().IsRegular() {
		return errors.Errorf("osm file %s is not a regular file", path)
	}
	return nil
}

// ReadHeader reads the OSMHeader of a PBF file.
func ReadHeader(path string) (*osmpbf.Header, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening PBF file")
	}
	defer f.Close()
	header, err := osmpbf.New(f, osmpbf.Config{}).Header()
	if err != nil {
		return nil, errors.Wrapf(err, "reading header of %s", path)
	}
	return header, nil
}

// FormatHeader returns the header fields as key: value lines.
func FormatHeader(h *osmpbf.Header) string {
	ts := "unknown"
	if h.Time.Unix() > 0 {
		ts = h.Time.UTC().Format("2006-01-02T15:04:05Z")
	}
	return fmt.Sprintf("replication time: %s\nreplication sequence: %s\nrequired features: %v\noptional features: %v\n",
		ts, strconv.FormatInt(h.Sequence, 10), h.RequiredFeatures, h.OptionalFeatures)
}
