package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"github.com/omniscale/pbfserve"
	"github.com/omniscale/pbfserve/config"
	"github.com/omniscale/pbfserve/logging"
	"github.com/omniscale/pbfserve/query"
	"github.com/omniscale/pbfserve/server"
	"github.com/omniscale/pbfserve/stats"
	"github.com/omniscale/pbfserve/tracing"
)

var log = logging.NewLogger("")

func PrintCmds() {
	fmt.Fprintf(os.Stderr, "Usage: %s COMMAND [args]\n\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "Available commands:")
	fmt.Fprintln(os.Stderr, "\tserve")
	fmt.Fprintln(os.Stderr, "\tnodes")
	fmt.Fprintln(os.Stderr, "\tways")
	fmt.Fprintln(os.Stderr, "\theader")
	fmt.Fprintln(os.Stderr, "\tversion")
}

func Main(usage func()) {
	if len(os.Args) <= 1 {
		usage()
		logging.Shutdown()
		os.Exit(1)
	}

	cmd := os.Args[1]
	switch cmd {
	case "serve":
		opts := parseOrExit(cmd, config.ParseServe)
		if err := serve(opts); err != nil {
			log.Fatal(err)
		}
	case "nodes", "ways":
		opts := parseOrExit(cmd, func(args []string) (*config.Options, error) {
			return config.ParseQuery(cmd, args)
		})
		if err := printQuery(cmd, opts, os.Stdout); err != nil {
			log.Fatal(err)
		}
	case "header":
		opts := parseOrExit(cmd, func(args []string) (*config.Options, error) {
			return config.ParseQuery(cmd, args)
		})
		header, err := config.ReadHeader(opts.OsmFile)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Print(config.FormatHeader(header))
	case "version":
		fmt.Println(pbfserve.Version)
		os.Exit(0)
	default:
		usage()
		log.Fatalf("invalid command: '%s'", cmd)
	}
	logging.Shutdown()
	os.Exit(0)
}

func parseOrExit(cmd string, parse func([]string) (*config.Options, error)) *config.Options {
	opts, err := parse(os.Args[2:])
	if err == pflag.ErrHelp {
		config.Usage(os.Stderr, cmd)
		logging.Shutdown()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error in options: %s\n\n", err)
		config.Usage(os.Stderr, cmd)
		logging.Shutdown()
		os.Exit(2)
	}
	if opts.Debug {
		logging.SetLevel(logging.DEBUG)
	} else if opts.Quiet {
		logging.SetLevel(logging.WARNING)
		logging.SetQuiet(true)
	}
	return opts
}

func serve(opts *config.Options) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	header, err := config.ReadHeader(opts.OsmFile)
	if err != nil {
		log.Warnf("%s", err)
	} else if header.Time.Unix() > 0 {
		log.Printf("%s: replication time %s, sequence %d", opts.OsmFile, header.Time.UTC().Format(time.RFC3339), header.Sequence)
	}

	shutdownTracing, err := tracing.Init(ctx, opts.OtlpEndpoint, pbfserve.Version)
	if err != nil {
		return errors.Wrap(err, "initializing tracing")
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Warnf("shutting down tracing: %s", err)
		}
	}()

	if opts.Httpprofile != "" {
		stats.StartHttpPProf(opts.Httpprofile)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := stats.NewMetrics(reg)

	srv := server.New(
		query.New(opts.OsmFile, query.WithMetrics(metrics)),
		server.Config{
			Rate:     opts.Rate,
			Burst:    opts.Burst,
			MaxScans: opts.MaxScans,
			Metrics:  metrics,
			Gatherer: reg,
		},
	)
	defer srv.Close()

	ln, err := net.Listen("tcp", opts.Listen)
	if err != nil {
		return errors.Wrapf(err, "listening on %s", opts.Listen)
	}
	host, port, _ := net.SplitHostPort(ln.Addr().String())
	fmt.Printf("Serving HTTP on %s port %s (http://%s/) ...\n", host, port, ln.Addr())

	httpServer := &http.Server{
		Handler:           srv,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := httpServer.Serve(ln); err != http.ErrServerClosed {
			return errors.Wrap(err, "serving http")
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		log.Printf("shutting down")
		return httpServer.Shutdown(shutdownCtx)
	})
	if opts.MemProfile != "" {
		g.Go(func() error {
			return stats.MemProfiler(gctx, opts.MemProfile, time.Minute)
		})
	}
	return g.Wait()
}

// printQuery writes the result of a single query as JSON to w.
func printQuery(cmd string, opts *config.Options, w io.Writer) error {
	svc := query.New(opts.OsmFile)
	var result any
	var err error
	if cmd == "ways" {
		result, err = svc.ListWays(context.Background())
	} else {
		result, err = svc.ListNodes(context.Background())
	}
	if err != nil {
		return err
	}
	return json.NewEncoder(w).Encode(result)
}

func main() {
	Main(PrintCmds)
}
