// Package main is the entry point for the ropetext editor.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"slices"
	"syscall"

	"github.com/dshills/ropetext/internal/app"
	"github.com/dshills/ropetext/internal/config"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	logFile, err := openLog(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer logFile.Close()

	logger := app.NewLogger(app.LoggerConfig{
		Level:  app.ParseLogLevel(opts.LogLevel),
		Output: logFile,
		Prefix: "ropetext",
	})
	app.SetLogger(logger)
	opts.Logger = logger
	logger.WithFields(map[string]any{"version": version, "commit": commit}).Info("starting")

	application, err := app.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	defer application.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := application.Run(ctx); err != nil {
		logger.Error("%v", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	logger.Info("exiting")
	return 0
}

// openLog opens the log file named by the settings, before the
// application itself loads them. The terminal belongs to the editor, so
// logs never go to stderr.
func openLog(opts app.Options) (*os.File, error) {
	cfg, _ := config.Load(opts.ConfigPath)
	_ = cfg.ApplyEnv(os.LookupEnv)

	path := cfg.LogFile
	if path == "" {
		path = config.DefaultLogFile()
	}
	return app.OpenLogFile(path)
}

func parseFlags() app.Options {
	var opts app.Options
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.ConfigPath, "config", config.DefaultPath(), "Path to the settings file (.toml, .yaml)")
	flag.StringVar(&opts.ConfigPath, "c", config.DefaultPath(), "Path to the settings file (shorthand)")
	flag.StringVar(&opts.KeymapPath, "keymap", config.DefaultKeymapPath(), "Path to a TOML file of key bindings")
	flag.StringVar(&opts.KeymapPath, "k", config.DefaultKeymapPath(), "Path to a TOML file of key bindings (shorthand)")
	flag.StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error); overrides the settings file")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "ropetext - a small multi-cursor text editor\n\n")
		fmt.Fprintf(os.Stderr, "Usage: ropetext [options] [files...]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  ropetext                     Open with an empty buffer\n")
		fmt.Fprintf(os.Stderr, "  ropetext notes.txt           Open a file\n")
		fmt.Fprintf(os.Stderr, "  ropetext -log-level debug a b  Open two files and log every edit\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("ropetext %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	if opts.LogLevel != "" && !slices.Contains(config.LogLevels, opts.LogLevel) {
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.LogLevel)
		os.Exit(1)
	}

	// Remaining arguments are files to open
	opts.Files = flag.Args()

	return opts
}
