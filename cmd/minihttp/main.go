package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/indigo-web/minihttp"
	"github.com/indigo-web/minihttp/config"
	"github.com/rs/zerolog"
)

type options struct {
	addr           string
	directory      string
	configPath     string
	concurrent     bool
	strictSegments bool
	logLevel       string
	pretty         bool
	// set holds names of flags passed explicitly.
	set map[string]bool
}

func parseFlags(args []string) (*options, error) {
	opts := &options{set: make(map[string]bool)}

	fs := flag.NewFlagSet("minihttp", flag.ContinueOnError)
	fs.StringVar(&opts.addr, "addr", minihttp.DefaultAddr, "address to listen on")
	fs.StringVar(&opts.directory, "directory", "", "directory served by /files routes")
	fs.StringVar(&opts.configPath, "config", "", "path to a JSON config file")
	fs.BoolVar(&opts.concurrent, "concurrent", false, "serve every connection in its own goroutine")
	fs.BoolVar(&opts.strictSegments, "strict-segments", false, "match route keywords against the first path segment only")
	fs.StringVar(&opts.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	fs.BoolVar(&opts.pretty, "pretty", false, "human-friendly log output")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	fs.Visit(func(f *flag.Flag) {
		opts.set[f.Name] = true
	})

	return opts, nil
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}

		os.Exit(2)
	}

	log := newLogger(opts)

	cfg, err := loadConfig(opts)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := minihttp.New(opts.addr).
		Tune(cfg).
		Logger(log)

	go func() {
		<-ctx.Done()
		app.Stop()
	}()

	if err = app.Serve(nil); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}

func newLogger(opts *options) zerolog.Logger {
	level, err := zerolog.ParseLevel(opts.logLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var log zerolog.Logger
	if opts.pretty {
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		log = zerolog.New(os.Stderr)
	}

	log = log.Level(level).With().Timestamp().Logger()
	if err != nil {
		log.Warn().Str("level", opts.logLevel).Msg("unknown log level, falling back to info")
	}

	return log
}

// loadConfig applies the config file, if any, and then the command-line flags explicitly
// set, so flags always take precedence.
func loadConfig(opts *options) (*config.Config, error) {
	cfg := config.Default()

	if len(opts.configPath) > 0 {
		var err error
		if cfg, err = config.Load(opts.configPath); err != nil {
			return nil, err
		}
	}

	if opts.set["directory"] {
		cfg.Files.Directory = opts.directory
	}

	if opts.set["concurrent"] {
		cfg.NET.Concurrent = opts.concurrent
	}

	if opts.set["strict-segments"] {
		cfg.Router.StrictSegments = opts.strictSegments
	}

	return cfg, nil
}
